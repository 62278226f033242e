package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httpresp"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
	"github.com/u-santos1/barbearia-backend-sub000/internal/usecase/scheduling"
)

// PublicHandler é a vitrine: cliente final consulta horários e agenda sem
// login, identificado por telefone/e-mail.
type PublicHandler struct {
	db    *gorm.DB
	store schedule.Store

	book           *scheduling.BookAppointment
	availability   *scheduling.GetAvailability
	cancelByClient *scheduling.CancelByClient
}

func NewPublicHandler(
	db *gorm.DB,
	store schedule.Store,
	book *scheduling.BookAppointment,
	availability *scheduling.GetAvailability,
	cancelByClient *scheduling.CancelByClient,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		store:          store,
		book:           book,
		availability:   availability,
		cancelByClient: cancelByClient,
	}
}

func (h *PublicHandler) professionalParam(c *gin.Context) (*models.Professional, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "professional id must be numeric")
		return nil, false
	}

	var pro models.Professional
	if err := h.db.First(&pro, uint(id)).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "professional not found")
		return nil, false
	}

	if !pro.Active {
		httperr.NotFound(c, "professional_not_found", "professional not found")
		return nil, false
	}

	return &pro, true
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	pro, ok := h.professionalParam(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("owner_id = ? AND active = ?", pro.TenantID(), true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "list_failed", "could not list services")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) Availability(c *gin.Context) {
	pro, ok := h.professionalParam(c)
	if !ok {
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "service_id is required")
		return
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "expected date YYYY-MM-DD")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), scheduling.AvailabilityInput{
		ProfessionalID: pro.ID,
		ServiceID:      uint(serviceID),
		Date:           date,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

type PublicBookingRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`

	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Notes string `json:"notes"`
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	pro, ok := h.professionalParam(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	start, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "expected date YYYY-MM-DD and time HH:MM")
		return
	}

	client, err := h.store.GetOrCreateClient(
		c.Request.Context(),
		req.ClientName,
		req.ClientPhone,
		req.ClientEmail,
	)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), scheduling.BookAppointmentInput{
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      req.ServiceID,
		Start:          start,
		Notes:          req.Notes,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

type PublicCancelRequest struct {
	ClientPhone string `json:"client_phone" binding:"required"`
}

func (h *PublicHandler) CancelAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "appointment id must be numeric")
		return
	}

	var req PublicCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var client models.Client
	if err := h.db.
		Where("phone = ?", onlyDigits(req.ClientPhone)).
		First(&client).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "appointment not found")
		return
	}

	ap, err := h.cancelByClient.Execute(c.Request.Context(), client.ID, uint(id))
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func onlyDigits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}
