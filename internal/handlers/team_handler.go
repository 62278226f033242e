package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/middleware"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

// TeamHandler administra a equipe do tenant: só o dono cria membros,
// ativa/desativa e ajusta comissão. A hierarquia tem um nível: membro
// nunca vira dono de outro membro.
type TeamHandler struct {
	db *gorm.DB
}

func NewTeamHandler(db *gorm.DB) *TeamHandler {
	return &TeamHandler{db: db}
}

type CreateMemberRequest struct {
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=6"`
	Phone             string `json:"phone"`
	CommissionPercent int    `json:"commission_percent"`
}

type UpdateMemberRequest struct {
	Active            *bool `json:"active"`
	CommissionPercent *int  `json:"commission_percent"`
}

func (h *TeamHandler) List(c *gin.Context) {
	acting := middleware.Acting(c)

	var team []models.Professional
	if err := h.db.
		Where("owner_id = ? OR id = ?", acting.TenantID(), acting.TenantID()).
		Order("id ASC").
		Find(&team).Error; err != nil {
		httperr.Internal(c, "list_failed", "could not list team")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": team, "total": len(team)})
}

func (h *TeamHandler) Create(c *gin.Context) {
	acting := middleware.Acting(c)
	if !acting.IsOwner() {
		httperr.Forbidden(c, "not_tenant_admin", "only the owner manages the team")
		return
	}

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Professional{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "hash_failed", "could not hash password")
		return
	}

	commission := req.CommissionPercent
	if commission <= 0 || commission > 100 {
		commission = models.DefaultCommissionPercent
	}

	ownerID := acting.ID
	member := models.Professional{
		Name:              req.Name,
		Email:             email,
		PasswordHash:      string(hashed),
		Phone:             req.Phone,
		Role:              models.RoleBarber,
		Active:            true,
		CommissionPercent: commission,
		Plan:              acting.Plan,
		OwnerID:           &ownerID,
	}

	if err := h.db.Create(&member).Error; err != nil {
		httperr.Internal(c, "create_failed", "could not create member")
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *TeamHandler) Update(c *gin.Context) {
	acting := middleware.Acting(c)
	if !acting.IsOwner() {
		httperr.Forbidden(c, "not_tenant_admin", "only the owner manages the team")
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var member models.Professional
	if err := h.db.
		Where("id = ? AND owner_id = ?", c.Param("id"), acting.ID).
		First(&member).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "member not in your team")
		return
	}

	// desativação é o "delete": agenda e histórico ficam
	if req.Active != nil {
		member.Active = *req.Active
	}
	if req.CommissionPercent != nil && *req.CommissionPercent > 0 && *req.CommissionPercent <= 100 {
		member.CommissionPercent = *req.CommissionPercent
	}

	if err := h.db.Save(&member).Error; err != nil {
		httperr.Internal(c, "update_failed", "could not update member")
		return
	}

	c.JSON(http.StatusOK, member)
}
