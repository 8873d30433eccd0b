package api

import (
	"net/http"

	"github.com/ecoleplus/drivingschool/internal/auth"
	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/ecoleplus/drivingschool/internal/service/tickets"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service tickets.TicketUseCase
}

type updateTicketStatusRequest struct {
	Status string `json:"status"`
}

func NewTicketHandler(service tickets.TicketUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/mine", h.listMine)
	router.GET("/", Require(auth.ActionManageTickets), h.list)
	router.GET("/:id", Require(auth.ActionManageTickets), h.get)
	router.PUT("/:id/status", Require(auth.ActionManageTickets), h.updateStatus)
}

func (h *TicketHandler) create(c *gin.Context) {
	var req tickets.TicketInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.service.Create(c.Request.Context(), callerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

func (h *TicketHandler) listMine(c *gin.Context) {
	all, err := h.service.ListByUser(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (h *TicketHandler) list(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (h *TicketHandler) get(c *gin.Context) {
	ticket, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) updateStatus(c *gin.Context) {
	var req updateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), domain.TicketStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
