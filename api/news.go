package api

import (
	"errors"
	"net/http"

	"github.com/ecoleplus/drivingschool/internal/auth"
	"github.com/ecoleplus/drivingschool/internal/service/news"
	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	service news.NewsUseCase
}

type commentRequest struct {
	Body string `json:"body"`
}

func NewNewsHandler(service news.NewsUseCase) *NewsHandler {
	return &NewsHandler{service: service}
}

func (h *NewsHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", Require(auth.ActionPublishNews), h.publish)
	router.PUT("/:id", Require(auth.ActionPublishNews), h.update)
	router.DELETE("/:id", Require(auth.ActionPublishNews), h.delete)

	router.GET("/:id/comments", h.listComments)
	router.POST("/:id/comments", h.addComment)
	router.DELETE("/comments/:commentId", h.deleteComment)
}

func (h *NewsHandler) list(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *NewsHandler) get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *NewsHandler) publish(c *gin.Context) {
	var req news.NewsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.AuthorID = callerID(c)

	item, err := h.service.Publish(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *NewsHandler) update(c *gin.Context) {
	var req news.NewsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *NewsHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NewsHandler) listComments(c *gin.Context) {
	comments, err := h.service.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *NewsHandler) addComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), c.Param("id"), callerID(c), req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *NewsHandler) deleteComment(c *gin.Context) {
	role, _ := callerRole(c)
	err := h.service.DeleteComment(c.Request.Context(), c.Param("commentId"), callerID(c), role)
	if err != nil {
		if errors.Is(err, news.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
