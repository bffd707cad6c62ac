package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, _ := actingUser(c)

	var user models.User
	if err := h.db.Preload("Establishment").First(&user, "id = ?", userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Erro ao buscar usuário.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
