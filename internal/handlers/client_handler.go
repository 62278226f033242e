package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httpresp"
	"github.com/u-santos1/barbearia-backend-sub000/internal/middleware"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// List traz os clientes que já agendaram com alguém do tenant.
func (h *ClientHandler) List(c *gin.Context) {
	acting := middleware.Acting(c)

	var clients []models.Client
	err := h.db.
		Distinct("clients.*").
		Joins("JOIN appointments ON appointments.client_id = clients.id").
		Joins("JOIN professionals ON professionals.id = appointments.professional_id").
		Where("professionals.owner_id = ? OR professionals.id = ?", acting.TenantID(), acting.TenantID()).
		Order("clients.name ASC").
		Find(&clients).Error
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list clients")
		return
	}

	httpresp.List(c, clients)
}
