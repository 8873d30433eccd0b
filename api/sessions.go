package api

import (
	"net/http"

	"github.com/ecoleplus/drivingschool/internal/auth"
	"github.com/ecoleplus/drivingschool/internal/service/sessions"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	service sessions.SessionUseCase
}

func NewSessionHandler(service sessions.SessionUseCase) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", Require(auth.ActionManageSessions), h.create)
	router.PUT("/:id", Require(auth.ActionManageSessions), h.update)
	router.DELETE("/:id", Require(auth.ActionManageSessions), h.delete)
}

func (h *SessionHandler) list(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (h *SessionHandler) get(c *gin.Context) {
	session, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) create(c *gin.Context) {
	var req sessions.SessionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.InstructorID == "" {
		req.InstructorID = callerID(c)
	}

	session, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) update(c *gin.Context) {
	var req sessions.SessionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
