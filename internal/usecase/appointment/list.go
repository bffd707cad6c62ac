package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/agendavivo/agenda-api/internal/domain/appointment"
	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/models"
)

type ListAppointmentsInput struct {
	EstablishmentID uuid.UUID

	// Filtros opcionais vindos da query string.
	DataInicio string
	DataFim    string
	Status     string
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]models.Appointment, error) {

	var filter domain.ListFilter

	if in.DataInicio != "" {
		from, err := parseDateOrDateTime(in.DataInicio)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidDateTime)
		}
		filter.From = &from
	}

	if in.DataFim != "" {
		to, err := parseDateOrDateTime(in.DataFim)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidDateTime)
		}
		filter.To = &to
	}

	if in.Status != "" {
		if !domain.IsValid(domain.Status(in.Status)) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidStatus)
		}
		filter.Status = in.Status
	}

	return uc.repo.ListAppointments(ctx, in.EstablishmentID, filter)
}

// parseDateOrDateTime aceita "2006-01-02" ou RFC 3339 completo.
func parseDateOrDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
