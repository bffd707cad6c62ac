package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agendavivo/agenda-api/internal/models"
)

// ListFilter restringe a listagem de agendamentos de um estabelecimento.
type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Status string
}

type Repository interface {
	// -------- Entidades referenciadas (sempre no tenant) --------
	GetClient(
		ctx context.Context,
		establishmentID uuid.UUID,
		clientID uuid.UUID,
	) (*models.Client, error)

	GetProfessional(
		ctx context.Context,
		establishmentID uuid.UUID,
		professionalID uuid.UUID,
	) (*models.Professional, error)

	GetService(
		ctx context.Context,
		establishmentID uuid.UUID,
		serviceID uuid.UUID,
	) (*models.Service, error)

	// -------- Agendamento (criação / conflito) --------
	AssertSlotFree(
		ctx context.Context,
		professionalID uuid.UUID,
		at time.Time,
	) error

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Agendamento (mudança de estado) --------
	GetAppointmentForEstablishment(
		ctx context.Context,
		appointmentID uuid.UUID,
		establishmentID uuid.UUID,
	) (*models.Appointment, error)

	// UpdateAppointment persiste o agendamento e, quando loyaltyPoints > 0,
	// credita os pontos ao cliente na mesma transação.
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		loyaltyPoints int,
	) error

	// -------- Listagem --------
	ListAppointments(
		ctx context.Context,
		establishmentID uuid.UUID,
		filter ListFilter,
	) ([]models.Appointment, error)

	ReloadWithRelations(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
