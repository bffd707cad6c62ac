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

// UpdateAppointmentInput é parcial: campos nil não são alterados.
// valor_total nunca é atualizável (snapshot de criação).
type UpdateAppointmentInput struct {
	EstablishmentID uuid.UUID
	ActorID         uuid.UUID
	AppointmentID   uuid.UUID

	Status       *string
	DateTime     *string
	Notes        *string
	ReminderSent *bool
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	// A busca já valida o tenant: id certo em estabelecimento errado
	// é indistinguível de inexistente.
	ap, err := uc.repo.GetAppointmentForEstablishment(
		ctx,
		in.AppointmentID,
		in.EstablishmentID,
	)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	previous := domain.Status(ap.Status)

	if in.Status != nil {
		next := domain.Status(*in.Status)
		if !domain.IsValid(next) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidStatus)
		}
		ap.Status = string(next)
	}

	if in.DateTime != nil {
		at, err := time.Parse(time.RFC3339, *in.DateTime)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidDateTime)
		}
		ap.DateTime = at
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if in.ReminderSent != nil {
		ap.ReminderSent = *in.ReminderSent
	}

	// Pontua uma única vez por transição para concluido;
	// salvar um agendamento já concluído não acumula de novo.
	points := 0
	if domain.ShouldAwardPoints(previous, domain.Status(ap.Status)) {
		points = domain.LoyaltyPoints(ap.TotalValue)
	}

	if err := uc.repo.UpdateAppointment(ctx, ap, points); err != nil {
		return nil, err
	}

	if err := uc.repo.ReloadWithRelations(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		EstablishmentID: in.EstablishmentID,
		UserID:          &in.ActorID,
		Action:          "agendamento_atualizado",
		Entity:          "agendamento",
		EntityID:        &ap.ID,
		Metadata: map[string]any{
			"status_anterior": string(previous),
			"status":          ap.Status,
			"pontos":          points,
		},
	})

	return ap, nil
}
