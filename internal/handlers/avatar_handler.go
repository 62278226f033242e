package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/u-santos1/barbearia-backend-sub000/internal/httperr"
	"github.com/u-santos1/barbearia-backend-sub000/internal/media"
	"github.com/u-santos1/barbearia-backend-sub000/internal/middleware"
)

const maxAvatarBytes = 5 << 20 // 5 MiB

type AvatarHandler struct {
	db      *gorm.DB
	storage *media.AvatarStorage
}

func NewAvatarHandler(db *gorm.DB, storage *media.AvatarStorage) *AvatarHandler {
	return &AvatarHandler{db: db, storage: storage}
}

func (h *AvatarHandler) Upload(c *gin.Context) {
	acting := middleware.Acting(c)

	file, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "multipart field 'avatar' is required")
		return
	}

	if file.Size > maxAvatarBytes {
		httperr.BadRequest(c, "file_too_large", "avatar must be at most 5 MiB")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "read_failed", "could not read upload")
		return
	}
	defer src.Close()

	url, err := h.storage.Upload(c.Request.Context(), acting.ID, src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "upload must be a JPEG or PNG image")
		return
	}

	acting.AvatarURL = url
	if err := h.db.Model(acting).Update("avatar_url", url).Error; err != nil {
		httperr.Internal(c, "update_failed", "could not save avatar url")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
