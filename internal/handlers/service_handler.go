package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httpresp"
	"github.com/u-santos1/barbearia-backend-sub000/internal/middleware"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type ServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	// preço como string para não passar por float binário
	Price       string `json:"price" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required"`
	Active      *bool  `json:"active"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	acting := middleware.Acting(c)

	var services []models.Service
	if err := h.db.
		Where("owner_id = ?", acting.TenantID()).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "list_failed", "could not list services")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	acting := middleware.Acting(c)
	if !acting.IsOwner() {
		httperr.Forbidden(c, "not_tenant_admin", "only the owner manages services")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "price must be a non-negative decimal")
		return
	}

	if req.DurationMin < models.MinServiceDurationMin {
		httperr.BadRequest(c, "invalid_duration", "duration must be at least 15 minutes")
		return
	}

	service := models.Service{
		OwnerID:     acting.TenantID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		DurationMin: req.DurationMin,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "create_failed", "could not create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	acting := middleware.Acting(c)
	if !acting.IsOwner() {
		httperr.Forbidden(c, "not_tenant_admin", "only the owner manages services")
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND owner_id = ?", c.Param("id"), acting.TenantID()).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "service not found")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "price must be a non-negative decimal")
		return
	}

	if req.DurationMin < models.MinServiceDurationMin {
		httperr.BadRequest(c, "invalid_duration", "duration must be at least 15 minutes")
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = price
	service.DurationMin = req.DurationMin
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "update_failed", "could not update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	acting := middleware.Acting(c)
	if !acting.IsOwner() {
		httperr.Forbidden(c, "not_tenant_admin", "only the owner manages services")
		return
	}

	res := h.db.
		Where("id = ? AND owner_id = ?", c.Param("id"), acting.TenantID()).
		Delete(&models.Service{})
	if res.Error != nil {
		httperr.Internal(c, "delete_failed", "could not delete service")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "service not found")
		return
	}

	c.Status(http.StatusNoContent)
}
