package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/agendavivo/agenda-api/internal/config"
)

const (
	ContextUserID          = "userID"
	ContextEstablishmentID = "establishmentID"
	ContextUserRole        = "userRole"
	ContextUserEmail       = "userEmail"
	ContextUserName        = "userName"
)

// Revoker consulta a lista de tokens revogados (logout).
type Revoker interface {
	IsRevoked(c *gin.Context, jti string) bool
}

func AuthMiddleware(cfg *config.Config, revoker Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token não fornecido"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token não fornecido"})
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
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			return
		}

		sub, ok1 := claims["sub"].(string)
		estID, ok2 := claims["estabelecimentoId"].(string)
		role, _ := claims["role"].(string)
		email, _ := claims["email"].(string)
		name, _ := claims["nome"].(string)
		if !ok1 || !ok2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			return
		}

		userID, err1 := uuid.Parse(sub)
		establishmentID, err2 := uuid.Parse(estID)
		if err1 != nil || err2 != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			return
		}

		if revoker != nil {
			if jti, _ := claims["jti"].(string); jti != "" && revoker.IsRevoked(c, jti) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
				return
			}
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextEstablishmentID, establishmentID)
		c.Set(ContextUserRole, role)
		c.Set(ContextUserEmail, email)
		c.Set(ContextUserName, name)

		c.Next()
	}
}
