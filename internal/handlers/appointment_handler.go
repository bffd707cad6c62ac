package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/httpresp"
	ucAppointment "github.com/agendavivo/agenda-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	cancelUC *ucAppointment.CancelAppointment
	listUC   *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		cancelUC: cancelUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID       string `json:"cliente_id" binding:"required,uuid"`
	ProfessionalID string `json:"profissional_id" binding:"required,uuid"`
	ServiceID      string `json:"servico_id" binding:"required,uuid"`
	DateTime       string `json:"data_hora" binding:"required"`
	Notes          string `json:"observacoes"`
}

type UpdateAppointmentRequest struct {
	Status       *string `json:"status,omitempty"`
	DateTime     *string `json:"data_hora,omitempty"`
	Notes        *string `json:"observacoes,omitempty"`
	ReminderSent *bool   `json:"lembrete_enviado,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

// List aceita data_inicio, data_fim e status na query string.
// estabelecimento_id da query é ignorado: o tenant vem do token.
func (h *AppointmentHandler) List(c *gin.Context) {
	_, establishmentID := actingUser(c)

	apps, err := h.listUC.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		EstablishmentID: establishmentID,
		DataInicio:      c.Query("data_inicio"),
		DataFim:         c.Query("data_fim"),
		Status:          c.Query("status"),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Collection(c, "agendamentos", apps)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	actorID, establishmentID := actingUser(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
		return
	}

	clientID, _ := uuid.Parse(req.ClientID)
	professionalID, _ := uuid.Parse(req.ProfessionalID)
	serviceID, _ := uuid.Parse(req.ServiceID)

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		EstablishmentID: establishmentID,
		ActorID:         actorID,
		ClientID:        clientID,
		ProfessionalID:  professionalID,
		ServiceID:       serviceID,
		DateTime:        req.DateTime,
		Notes:           req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, "Agendamento criado com sucesso", "agendamento", ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	actorID, establishmentID := actingUser(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		EstablishmentID: establishmentID,
		ActorID:         actorID,
		AppointmentID:   id,
		Status:          req.Status,
		DateTime:        req.DateTime,
		Notes:           req.Notes,
		ReminderSent:    req.ReminderSent,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, "Agendamento atualizado com sucesso", "agendamento", ap)
}

// Cancel responde ao DELETE: soft-cancel, nunca remoção de linha.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actorID, establishmentID := actingUser(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := h.cancelUC.Execute(c.Request.Context(), establishmentID, actorID, id); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Message(c, "Agendamento cancelado com sucesso")
}
