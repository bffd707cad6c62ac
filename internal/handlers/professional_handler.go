package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendavivo/agenda-api/internal/audit"
	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/httpresp"
	"github.com/agendavivo/agenda-api/internal/models"
)

type ProfessionalHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	logger *slog.Logger
}

func NewProfessionalHandler(db *gorm.DB, audit *audit.Dispatcher, logger *slog.Logger) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, audit: audit, logger: logger}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name        string              `json:"nome" binding:"required,min=2"`
	Email       string              `json:"email" binding:"required,email"`
	Phone       string              `json:"telefone" binding:"required,min=10"`
	Specialties []string            `json:"especialidades"`
	WorkHours   models.WeekSchedule `json:"horario_trabalho"`
}

type UpdateProfessionalRequest struct {
	Name        *string              `json:"nome,omitempty" binding:"omitempty,min=2"`
	Email       *string              `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string              `json:"telefone,omitempty" binding:"omitempty,min=10"`
	Specialties *[]string            `json:"especialidades,omitempty"`
	WorkHours   *models.WeekSchedule `json:"horario_trabalho,omitempty"`
	Active      *bool                `json:"ativo,omitempty"`
}

// --------- Handlers ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	_, establishmentID := actingUser(c)

	var professionals []models.Professional
	if err := h.db.
		Where("estabelecimento_id = ? AND ativo = ?", establishmentID, true).
		Order("nome ASC").
		Find(&professionals).Error; err != nil {

		h.logger.Error("professional list failed", "estabelecimento_id", establishmentID, "error", err)
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao buscar profissionais: "+err.Error())
		return
	}

	httpresp.Collection(c, "profissionais", professionals)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	actorID, establishmentID := actingUser(c)

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
		return
	}

	professional := models.Professional{
		EstablishmentID: establishmentID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Specialties:     req.Specialties,
		WorkHours:       req.WorkHours,
		Active:          true,
	}
	if professional.Specialties == nil {
		professional.Specialties = models.StringList{}
	}

	if err := h.db.Create(&professional).Error; err != nil {
		h.logger.Error("professional create failed", "estabelecimento_id", establishmentID, "error", err)
		httperr.Internal(c, "failed_to_create_professional", "Erro ao criar profissional: "+err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		EstablishmentID: establishmentID,
		UserID:          &actorID,
		Action:          "profissional_criado",
		Entity:          "profissional",
		EntityID:        &professional.ID,
	})

	httpresp.Created(c, "Profissional criado com sucesso", "profissional", professional)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	actorID, establishmentID := actingUser(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var professional models.Professional
	if err := h.db.
		Where("id = ? AND estabelecimento_id = ?", id, establishmentID).
		First(&professional).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "profissional_not_found", "Profissional não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_professional", "Erro ao buscar profissional: "+err.Error())
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
		return
	}

	if req.Name != nil {
		professional.Name = *req.Name
	}
	if req.Email != nil {
		professional.Email = *req.Email
	}
	if req.Phone != nil {
		professional.Phone = *req.Phone
	}
	if req.Specialties != nil {
		professional.Specialties = *req.Specialties
	}
	if req.WorkHours != nil {
		professional.WorkHours = *req.WorkHours
	}
	if req.Active != nil {
		professional.Active = *req.Active
	}

	if err := h.db.Save(&professional).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional: "+err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		EstablishmentID: establishmentID,
		UserID:          &actorID,
		Action:          "profissional_atualizado",
		Entity:          "profissional",
		EntityID:        &professional.ID,
	})

	httpresp.OK(c, "Profissional atualizado com sucesso", "profissional", professional)
}

func (h *ProfessionalHandler) SoftDelete(c *gin.Context) {
	actorID, establishmentID := actingUser(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := h.db.Model(&models.Professional{}).
		Where("id = ? AND estabelecimento_id = ?", id, establishmentID).
		Update("ativo", false)

	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_professional", "Erro ao remover profissional: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "profissional_not_found", "Profissional não encontrado")
		return
	}

	h.audit.Dispatch(audit.Event{
		EstablishmentID: establishmentID,
		UserID:          &actorID,
		Action:          "profissional_desativado",
		Entity:          "profissional",
		EntityID:        &id,
	})

	httpresp.Message(c, "Profissional removido com sucesso")
}
