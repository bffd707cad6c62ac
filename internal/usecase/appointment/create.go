package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agendavivo/agenda-api/internal/audit"
	domain "github.com/agendavivo/agenda-api/internal/domain/appointment"
	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	EstablishmentID uuid.UUID
	ActorID         uuid.UUID

	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	ServiceID      uuid.UUID

	DateTime string
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Data/hora
	// --------------------------------------------------
	at, err := time.Parse(time.RFC3339, in.DateTime)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateTime)
	}

	// --------------------------------------------------
	// 2. Entidades referenciadas, sempre dentro do tenant
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.EstablishmentID, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("cliente_not_found")
	}

	professional, err := uc.repo.GetProfessional(ctx, in.EstablishmentID, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("profissional_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.EstablishmentID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("servico_not_found")
	}

	// --------------------------------------------------
	// 3. Conflito de horário (timestamp exato)
	// --------------------------------------------------
	if err := uc.repo.AssertSlotFree(ctx, professional.ID, at); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Criação com snapshot de preço
	// --------------------------------------------------
	ap := &models.Appointment{
		EstablishmentID: in.EstablishmentID,
		ClientID:        client.ID,
		ProfessionalID:  professional.ID,
		ServiceID:       service.ID,
		DateTime:        at,
		Status:          string(domain.InitialStatus()),
		TotalValue:      service.Price,
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if err := uc.repo.ReloadWithRelations(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		EstablishmentID: in.EstablishmentID,
		UserID:          &in.ActorID,
		Action:          "agendamento_criado",
		Entity:          "agendamento",
		EntityID:        &ap.ID,
	})

	return ap, nil
}
