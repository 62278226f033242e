package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/httpresp"
	"github.com/u-santos1/barbearia-backend-sub000/internal/middleware"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
	ucBlock "github.com/u-santos1/barbearia-backend-sub000/internal/usecase/block"
)

type BlockHandler struct {
	db     *gorm.DB
	create *ucBlock.CreateBlock
	remove *ucBlock.RemoveBlock
}

func NewBlockHandler(
	db *gorm.DB,
	create *ucBlock.CreateBlock,
	remove *ucBlock.RemoveBlock,
) *BlockHandler {
	return &BlockHandler{db: db, create: create, remove: remove}
}

type CreateBlockRequest struct {
	// vazio = bloqueia a própria agenda
	ProfessionalID uint `json:"professional_id"`

	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
}

func (h *BlockHandler) Create(c *gin.Context) {
	acting := middleware.Acting(c)

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	start, err1 := parseDateTime(req.Date, req.StartTime)
	end, err2 := parseDateTime(req.Date, req.EndTime)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "expected date YYYY-MM-DD and times HH:MM")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), acting, ucBlock.CreateBlockInput{
		ProfessionalID: req.ProfessionalID,
		Start:          start,
		End:            end,
		Reason:         req.Reason,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *BlockHandler) List(c *gin.Context) {
	acting := middleware.Acting(c)

	var blocks []models.Block
	if err := h.db.
		Where("professional_id = ?", acting.ID).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		httperr.Internal(c, "list_failed", "could not list blocks")
		return
	}

	httpresp.List(c, blocks)
}

func (h *BlockHandler) Delete(c *gin.Context) {
	acting := middleware.Acting(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "block id must be numeric")
		return
	}

	if err := h.remove.Execute(c.Request.Context(), acting, uint(id)); err != nil {
		httperr.Handle(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
