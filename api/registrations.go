package api

import (
	"net/http"
	"time"

	"github.com/ecoleplus/drivingschool/internal/auth"
	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/ecoleplus/drivingschool/internal/service/registration"
	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	service registration.RegistrationUseCase
}

// registrationResponse keeps the wire field names of the original public
// API intact.
type registrationResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FullName      string `json:"nomComplet"`
	Phone         string `json:"telephone"`
	Address       string `json:"adresse"`
	BirthDate     string `json:"dateNaissance"`
	StartDate     string `json:"dateDebut"`
	PreferredTime string `json:"heurePreferee"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

type updateRegistrationStatusRequest struct {
	Status string `json:"status"`
}

func NewRegistrationHandler(service registration.RegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

func (h *RegistrationHandler) Register(public, admin *gin.RouterGroup) {
	public.POST("/", h.create)
	public.GET("/availability", h.checkAvailability)
	public.GET("/slots", h.listSlots)

	admin.GET("/", Require(auth.ActionReviewRegistrations), h.list)
	admin.GET("/by-email", Require(auth.ActionReviewRegistrations), h.listByEmail)
	admin.GET("/:id", Require(auth.ActionReviewRegistrations), h.get)
	admin.PUT("/:id/status", Require(auth.ActionReviewRegistrations), h.updateStatus)
}

func (h *RegistrationHandler) create(c *gin.Context) {
	var req registration.CreateRegistrationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toRegistrationResponse(reg))
}

func (h *RegistrationHandler) checkAvailability(c *gin.Context) {
	availability, err := h.service.CheckAvailability(c.Request.Context(), c.Query("date"), c.Query("time"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

func (h *RegistrationHandler) listSlots(c *gin.Context) {
	slots, err := h.service.ListAvailableSlots(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": c.Query("date"), "slots": slots})
}

func (h *RegistrationHandler) list(c *gin.Context) {
	regs, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRegistrationResponses(regs))
}

func (h *RegistrationHandler) listByEmail(c *gin.Context) {
	regs, err := h.service.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRegistrationResponses(regs))
}

func (h *RegistrationHandler) get(c *gin.Context) {
	reg, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRegistrationResponse(reg))
}

func (h *RegistrationHandler) updateStatus(c *gin.Context) {
	var req updateRegistrationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), domain.RegistrationStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRegistrationResponse(reg))
}

func toRegistrationResponse(reg *domain.Registration) registrationResponse {
	return registrationResponse{
		ID:            reg.ID,
		Email:         reg.Email,
		FullName:      reg.FullName,
		Phone:         reg.Phone,
		Address:       reg.Address,
		BirthDate:     reg.BirthDate,
		StartDate:     reg.StartDate,
		PreferredTime: reg.PreferredTime,
		Status:        string(reg.Status),
		CreatedAt:     reg.CreatedAt.Format(time.RFC3339),
	}
}

func toRegistrationResponses(regs []domain.Registration) []registrationResponse {
	out := make([]registrationResponse, 0, len(regs))
	for i := range regs {
		out = append(out, toRegistrationResponse(&regs[i]))
	}
	return out
}
