package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/u-santos1/barbearia-backend-sub000/internal/domain/schedule"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/middleware"
	"github.com/u-santos1/barbearia-backend-sub000/internal/timezone"
	"github.com/u-santos1/barbearia-backend-sub000/internal/usecase/scheduling"
)

// AppointmentHandler é a agenda privada do profissional autenticado.
type AppointmentHandler struct {
	store schedule.Store

	book         *scheduling.BookAppointment
	confirm      *scheduling.ConfirmAppointment
	complete     *scheduling.CompleteAppointment
	cancelByPro  *scheduling.CancelByProfessional
	list         *scheduling.ListAppointments
	availability *scheduling.GetAvailability
}

func NewAppointmentHandler(
	store schedule.Store,
	book *scheduling.BookAppointment,
	confirm *scheduling.ConfirmAppointment,
	complete *scheduling.CompleteAppointment,
	cancelByPro *scheduling.CancelByProfessional,
	list *scheduling.ListAppointments,
	availability *scheduling.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		store:        store,
		book:         book,
		confirm:      confirm,
		complete:     complete,
		cancelByPro:  cancelByPro,
		list:         list,
		availability: availability,
	}
}

type CreateAppointmentRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`

	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Notes string `json:"notes"`
}

// Create agenda um cliente na agenda do próprio profissional (walk-in,
// telefone). O cliente é criado ou reaproveitado por telefone/e-mail.
func (h *AppointmentHandler) Create(c *gin.Context) {
	acting := middleware.Acting(c)

	var req CreateAppointmentRequest
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
		ProfessionalID: acting.ID,
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

func (h *AppointmentHandler) Availability(c *gin.Context) {
	acting := middleware.Acting(c)

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
		ProfessionalID: acting.ID,
		ServiceID:      uint(serviceID),
		Date:           date,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	acting := middleware.Acting(c)

	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "expected date YYYY-MM-DD")
		return
	}

	apps, err := h.list.ByDate(c.Request.Context(), acting.ID, date)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": apps, "total": len(apps)})
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	acting := middleware.Acting(c)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "expected year and month query params")
		return
	}

	apps, err := h.list.ByMonth(
		c.Request.Context(),
		acting.ID,
		year,
		time.Month(month),
		timezone.Location(),
	)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": apps, "total": len(apps)})
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, func(id uint) (any, error) {
		return h.confirm.Execute(c.Request.Context(), middleware.Acting(c), id)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(id uint) (any, error) {
		return h.complete.Execute(c.Request.Context(), middleware.Acting(c), id)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(id uint) (any, error) {
		return h.cancelByPro.Execute(c.Request.Context(), middleware.Acting(c), id)
	})
}

func (h *AppointmentHandler) transition(c *gin.Context, fn func(id uint) (any, error)) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "appointment id must be numeric")
		return
	}

	ap, err := fn(uint(id))
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}
