package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/agendavivo/agenda-api/internal/audit"
	domain "github.com/agendavivo/agenda-api/internal/domain/appointment"
	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute marca o agendamento como cancelado. A linha nunca é
// removida: o histórico do cliente e do profissional é preservado.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	establishmentID uuid.UUID,
	actorID uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForEstablishment(
		ctx,
		appointmentID,
		establishmentID,
	)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	previous := ap.Status
	ap.Status = string(domain.StatusCancelled)

	if err := uc.repo.UpdateAppointment(ctx, ap, 0); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		EstablishmentID: establishmentID,
		UserID:          &actorID,
		Action:          "agendamento_cancelado",
		Entity:          "agendamento",
		EntityID:        &ap.ID,
		Metadata: map[string]any{
			"status_anterior": previous,
		},
	})

	return ap, nil
}
