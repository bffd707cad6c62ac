package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendavivo/agenda-api/internal/audit"
	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/httpresp"
	"github.com/agendavivo/agenda-api/internal/models"
)

type ClientHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	logger *slog.Logger
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{db: db, audit: audit, logger: logger}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name      string  `json:"nome" binding:"required,min=2"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     string  `json:"telefone" binding:"required,min=10"`
	BirthDate *string `json:"data_nascimento"`
	Address   *string `json:"endereco"`
	Notes     *string `json:"observacoes"`
}

type UpdateClientRequest struct {
	Name      *string `json:"nome,omitempty" binding:"omitempty,min=2"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone     *string `json:"telefone,omitempty" binding:"omitempty,min=10"`
	BirthDate *string `json:"data_nascimento,omitempty"`
	Address   *string `json:"endereco,omitempty"`
	Notes     *string `json:"observacoes,omitempty"`
}

// --------- Handlers ---------

// List retorna os clientes ativos do estabelecimento do usuário,
// com o saldo de fidelidade embutido. O parâmetro estabelecimento_id
// da query é ignorado: o tenant vem sempre do token.
func (h *ClientHandler) List(c *gin.Context) {
	_, establishmentID := actingUser(c)

	var clients []models.Client
	if err := h.db.
		Preload("Loyalty").
		Where("estabelecimento_id = ? AND ativo = ?", establishmentID, true).
		Order("nome ASC").
		Find(&clients).Error; err != nil {

		h.logger.Error("client list failed", "estabelecimento_id", establishmentID, "error", err)
		httperr.Internal(c, "failed_to_list_clients", "Erro ao buscar clientes: "+err.Error())
		return
	}

	httpresp.Collection(c, "clientes", clients)
}

// Create grava cliente e registro de fidelidade na mesma transação:
// um cliente nunca fica sem fidelidade.
func (h *ClientHandler) Create(c *gin.Context) {
	actorID, establishmentID := actingUser(c)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
		return
	}

	client := models.Client{
		EstablishmentID: establishmentID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Active:          true,
	}

	if req.BirthDate != nil && *req.BirthDate != "" {
		birth, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return
		}
		client.BirthDate = &birth
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&client).Error; err != nil {
			return err
		}
		loyalty := models.Loyalty{ClientID: client.ID}
		return tx.Create(&loyalty).Error
	})
	if err != nil {
		h.logger.Error("client create failed", "estabelecimento_id", establishmentID, "error", err)
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente: "+err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		EstablishmentID: establishmentID,
		UserID:          &actorID,
		Action:          "cliente_criado",
		Entity:          "cliente",
		EntityID:        &client.ID,
	})

	httpresp.Created(c, "Cliente criado com sucesso", "cliente", client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	actorID, establishmentID := actingUser(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.
		Where("id = ? AND estabelecimento_id = ?", id, establishmentID).
		First(&client).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "cliente_not_found", "Cliente não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente: "+err.Error())
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			client.BirthDate = nil
		} else {
			birth, err := time.Parse("2006-01-02", *req.BirthDate)
			if err != nil {
				httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
				return
			}
			client.BirthDate = &birth
		}
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente: "+err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		EstablishmentID: establishmentID,
		UserID:          &actorID,
		Action:          "cliente_atualizado",
		Entity:          "cliente",
		EntityID:        &client.ID,
	})

	httpresp.OK(c, "Cliente atualizado com sucesso", "cliente", client)
}

// SoftDelete apenas desativa o cliente; agendamentos passados
// continuam resolvendo a referência.
func (h *ClientHandler) SoftDelete(c *gin.Context) {
	actorID, establishmentID := actingUser(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := h.db.Model(&models.Client{}).
		Where("id = ? AND estabelecimento_id = ?", id, establishmentID).
		Update("ativo", false)

	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao remover cliente: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "cliente_not_found", "Cliente não encontrado")
		return
	}

	h.audit.Dispatch(audit.Event{
		EstablishmentID: establishmentID,
		UserID:          &actorID,
		Action:          "cliente_desativado",
		Entity:          "cliente",
		EntityID:        &id,
	})

	httpresp.Message(c, "Cliente removido com sucesso")
}
