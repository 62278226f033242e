package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/u-santos1/barbearia-backend-sub000/internal/config"
	"github.com/u-santos1/barbearia-backend-sub000/internal/models"
)

// ContextProfessional carrega o profissional autenticado. Os casos de uso
// recebem esse ator explicitamente; nenhum deles busca "usuário atual" por
// conta própria.
const ContextProfessional = "actingProfessional"

func AuthMiddleware(cfg *config.Config, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		var pro models.Professional
		if err := db.First(&pro, uint(sub)).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown_professional"})
			return
		}

		if !pro.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "professional_inactive"})
			return
		}

		c.Set(ContextProfessional, &pro)

		c.Next()
	}
}

// Acting devolve o profissional autenticado já carregado pelo middleware.
func Acting(c *gin.Context) *models.Professional {
	v, ok := c.Get(ContextProfessional)
	if !ok {
		return nil
	}
	pro, _ := v.(*models.Professional)
	return pro
}
