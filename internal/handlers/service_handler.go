package handlers

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendavivo/agenda-api/internal/audit"
	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/httpresp"
	"github.com/agendavivo/agenda-api/internal/models"
)

type ServiceHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	logger *slog.Logger
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher, logger *slog.Logger) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit, logger: logger}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string  `json:"nome" binding:"required,min=2"`
	Description     string  `json:"descricao" binding:"required,min=5"`
	Price           float64 `json:"preco" binding:"required,gt=0"`
	DurationMinutes int     `json:"duracao_minutos" binding:"required,gt=0"`
	Category        string  `json:"categoria" binding:"required,min=2"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"nome,omitempty" binding:"omitempty,min=2"`
	Description     *string  `json:"descricao,omitempty" binding:"omitempty,min=5"`
	Price           *float64 `json:"preco,omitempty" binding:"omitempty,gt=0"`
	DurationMinutes *int     `json:"duracao_minutos,omitempty" binding:"omitempty,gt=0"`
	Category        *string  `json:"categoria,omitempty" binding:"omitempty,min=2"`
	Active          *bool    `json:"ativo,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	_, establishmentID := actingUser(c)

	var services []models.Service
	if err := h.db.
		Where("estabelecimento_id = ? AND ativo = ?", establishmentID, true).
		Order("nome ASC").
		Find(&services).Error; err != nil {

		h.logger.Error("service list failed", "estabelecimento_id", establishmentID, "error", err)
		httperr.Internal(c, "failed_to_list_services", "Erro ao buscar serviços: "+err.Error())
		return
	}

	httpresp.Collection(c, "servicos", services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actorID, establishmentID := actingUser(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
		return
	}

	service := models.Service{
		EstablishmentID: establishmentID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Category:        strings.ToLower(req.Category),
		Active:          true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		h.logger.Error("service create failed", "estabelecimento_id", establishmentID, "error", err)
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço: "+err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		EstablishmentID: establishmentID,
		UserID:          &actorID,
		Action:          "servico_criado",
		Entity:          "servico",
		EntityID:        &service.ID,
	})

	httpresp.Created(c, "Serviço criado com sucesso", "servico", service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	actorID, establishmentID := actingUser(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND estabelecimento_id = ?", id, establishmentID).
		First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "servico_not_found", "Serviço não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço: "+err.Error())
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
		return
	}

	// Alterar o preço aqui nunca reprecifica agendamentos passados:
	// valor_total é snapshot de criação.
	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.Category != nil {
		service.Category = strings.ToLower(*req.Category)
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço: "+err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		EstablishmentID: establishmentID,
		UserID:          &actorID,
		Action:          "servico_atualizado",
		Entity:          "servico",
		EntityID:        &service.ID,
	})

	httpresp.OK(c, "Serviço atualizado com sucesso", "servico", service)
}

func (h *ServiceHandler) SoftDelete(c *gin.Context) {
	actorID, establishmentID := actingUser(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := h.db.Model(&models.Service{}).
		Where("id = ? AND estabelecimento_id = ?", id, establishmentID).
		Update("ativo", false)

	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "servico_not_found", "Serviço não encontrado")
		return
	}

	h.audit.Dispatch(audit.Event{
		EstablishmentID: establishmentID,
		UserID:          &actorID,
		Action:          "servico_desativado",
		Entity:          "servico",
		EntityID:        &id,
	})

	httpresp.Message(c, "Serviço removido com sucesso")
}
