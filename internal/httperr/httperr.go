package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Handle converte erros de domínio no status HTTP correspondente.
func Handle(c *gin.Context, err error) {
	switch e := err.(type) {
	case NotFoundError:
		NotFound(c, e.Error(), "resource not found")
	case BusinessError:
		BadRequest(c, e.Code, "business rule violated")
	case PermissionError:
		Forbidden(c, e.Code, "operation not allowed")
	default:
		Internal(c, "internal_error", "unexpected error")
	}
}
