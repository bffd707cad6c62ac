package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	domain "github.com/agendavivo/agenda-api/internal/domain/appointment"
	"github.com/agendavivo/agenda-api/internal/models"
)

// MockRepository é o mock de domain.Repository usado pelos testes
// de usecase.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetClient(
	ctx context.Context,
	establishmentID uuid.UUID,
	clientID uuid.UUID,
) (*models.Client, error) {
	args := m.Called(ctx, establishmentID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockRepository) GetProfessional(
	ctx context.Context,
	establishmentID uuid.UUID,
	professionalID uuid.UUID,
) (*models.Professional, error) {
	args := m.Called(ctx, establishmentID, professionalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Professional), args.Error(1)
}

func (m *MockRepository) GetService(
	ctx context.Context,
	establishmentID uuid.UUID,
	serviceID uuid.UUID,
) (*models.Service, error) {
	args := m.Called(ctx, establishmentID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockRepository) AssertSlotFree(
	ctx context.Context,
	professionalID uuid.UUID,
	at time.Time,
) error {
	args := m.Called(ctx, professionalID, at)
	return args.Error(0)
}

func (m *MockRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) GetAppointmentForEstablishment(
	ctx context.Context,
	appointmentID uuid.UUID,
	establishmentID uuid.UUID,
) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, establishmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	loyaltyPoints int,
) error {
	args := m.Called(ctx, ap, loyaltyPoints)
	return args.Error(0)
}

func (m *MockRepository) ListAppointments(
	ctx context.Context,
	establishmentID uuid.UUID,
	filter domain.ListFilter,
) ([]models.Appointment, error) {
	args := m.Called(ctx, establishmentID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) ReloadWithRelations(
	ctx context.Context,
	ap *models.Appointment,
) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

// Compile-time check
var _ domain.Repository = (*MockRepository)(nil)
