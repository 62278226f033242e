package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/middleware"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingHoursEntry struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

type UpdateWorkingHoursRequest struct {
	Entries []WorkingHoursEntry `json:"entries" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	acting := middleware.Acting(c)

	var hours []models.WorkingHours
	if err := h.db.
		Where("professional_id = ?", acting.ID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "list_failed", "could not load working hours")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": hours})
}

// Update substitui a grade semanal inteira de uma vez.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	acting := middleware.Acting(c)

	var req UpdateWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	for _, e := range req.Entries {
		if e.Active && !validHM(e.StartTime, e.EndTime) {
			httperr.BadRequest(c, "invalid_hours", "start/end must be HH:MM with end after start")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ?", acting.ID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		for _, e := range req.Entries {
			wh := models.WorkingHours{
				ProfessionalID: acting.ID,
				Weekday:        e.Weekday,
				StartTime:      e.StartTime,
				EndTime:        e.EndTime,
				Active:         e.Active,
			}
			if err := tx.Create(&wh).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "update_failed", "could not update working hours")
		return
	}

	c.Status(http.StatusNoContent)
}

func validHM(start, end string) bool {
	s, err1 := time.Parse("15:04", start)
	e, err2 := time.Parse("15:04", end)
	return err1 == nil && err2 == nil && e.After(s)
}
