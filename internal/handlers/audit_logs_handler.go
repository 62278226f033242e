package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/middleware"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	acting := middleware.Acting(c)
	if !acting.IsOwner() {
		httperr.Forbidden(c, "not_tenant_admin", "only the owner reads audit logs")
		return
	}

	limit := 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}

	var logs []models.AuditLog
	if err := h.db.
		Where("tenant_id = ?", acting.ID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "list_failed", "could not list audit logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": logs, "total": len(logs)})
}
