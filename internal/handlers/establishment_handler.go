package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/httpresp"
	"github.com/agendavivo/agenda-api/internal/models"
)

type EstablishmentHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewEstablishmentHandler(db *gorm.DB, logger *slog.Logger) *EstablishmentHandler {
	return &EstablishmentHandler{db: db, logger: logger}
}

// --------- Requests ---------

type CreateEstablishmentRequest struct {
	Name         string              `json:"nome" binding:"required,min=2"`
	ServiceType  string              `json:"tipo_servico" binding:"required,min=2"`
	Phone        string              `json:"telefone" binding:"required,min=10"`
	Email        string              `json:"email" binding:"required,email"`
	Address      string              `json:"endereco" binding:"required,min=5"`
	WhatsApp     string              `json:"whatsapp" binding:"required,min=10"`
	OpeningHours models.WeekSchedule `json:"horario_funcionamento"`
}

// --------- Handlers ---------

// List é o diretório de estabelecimentos ativos; o tenant é a raiz
// do isolamento e não é filtrado por si mesmo.
func (h *EstablishmentHandler) List(c *gin.Context) {
	var establishments []models.Establishment
	if err := h.db.
		Where("ativo = ?", true).
		Order("nome ASC").
		Find(&establishments).Error; err != nil {

		h.logger.Error("establishment list failed", "error", err)
		httperr.Internal(c, "failed_to_list_establishments", "Erro ao buscar estabelecimentos: "+err.Error())
		return
	}

	httpresp.Collection(c, "estabelecimentos", establishments)
}

func (h *EstablishmentHandler) Create(c *gin.Context) {
	var req CreateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
		return
	}

	establishment := models.Establishment{
		Name:         req.Name,
		ServiceType:  req.ServiceType,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		WhatsApp:     req.WhatsApp,
		OpeningHours: req.OpeningHours,
		Active:       true,
	}

	if err := h.db.Create(&establishment).Error; err != nil {
		h.logger.Error("establishment create failed", "error", err)
		httperr.Internal(c, "failed_to_create_establishment", "Erro ao criar estabelecimento: "+err.Error())
		return
	}

	httpresp.Created(c, "Estabelecimento criado com sucesso", "estabelecimento", establishment)
}
