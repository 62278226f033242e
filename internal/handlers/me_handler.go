package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/u-santos1/barbearia-backend-sub000/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	pro := middleware.Acting(c)

	c.JSON(http.StatusOK, gin.H{
		"id":                 pro.ID,
		"name":               pro.Name,
		"email":              pro.Email,
		"phone":              pro.Phone,
		"role":               pro.Role,
		"plan":               pro.Plan,
		"active":             pro.Active,
		"commission_percent": pro.Commission(),
		"owner_id":           pro.OwnerID,
		"avatar_url":         pro.AvatarURL,
	})
}
