package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/agendavivo/agenda-api/internal/domain/appointment"
	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/models"
)

func newCreateFixture() (CreateAppointmentInput, *models.Client, *models.Professional, *models.Service) {
	establishmentID := uuid.New()
	client := &models.Client{ID: uuid.New(), EstablishmentID: establishmentID}
	professional := &models.Professional{ID: uuid.New(), EstablishmentID: establishmentID}
	service := &models.Service{
		ID:              uuid.New(),
		EstablishmentID: establishmentID,
		Price:           85.00,
		DurationMinutes: 60,
	}

	in := CreateAppointmentInput{
		EstablishmentID: establishmentID,
		ActorID:         uuid.New(),
		ClientID:        client.ID,
		ProfessionalID:  professional.ID,
		ServiceID:       service.ID,
		DateTime:        "2024-03-01T09:00:00Z",
	}
	return in, client, professional, service
}

func TestCreateAppointment_Success(t *testing.T) {
	in, client, professional, service := newCreateFixture()

	repo := new(MockRepository)
	repo.On("GetClient", mock.Anything, in.EstablishmentID, in.ClientID).Return(client, nil)
	repo.On("GetProfessional", mock.Anything, in.EstablishmentID, in.ProfessionalID).Return(professional, nil)
	repo.On("GetService", mock.Anything, in.EstablishmentID, in.ServiceID).Return(service, nil)

	wantAt, _ := time.Parse(time.RFC3339, in.DateTime)
	repo.On("AssertSlotFree", mock.Anything, professional.ID, wantAt).Return(nil)
	repo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)
	repo.On("ReloadWithRelations", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)

	uc := NewCreateAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// Snapshot do preço do serviço e status inicial.
	assert.Equal(t, 85.00, ap.TotalValue)
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Equal(t, in.EstablishmentID, ap.EstablishmentID)
	assert.True(t, ap.DateTime.Equal(wantAt))

	repo.AssertExpectations(t)
}

func TestCreateAppointment_SlotConflict(t *testing.T) {
	in, client, professional, service := newCreateFixture()

	repo := new(MockRepository)
	repo.On("GetClient", mock.Anything, in.EstablishmentID, in.ClientID).Return(client, nil)
	repo.On("GetProfessional", mock.Anything, in.EstablishmentID, in.ProfessionalID).Return(professional, nil)
	repo.On("GetService", mock.Anything, in.EstablishmentID, in.ServiceID).Return(service, nil)
	repo.On("AssertSlotFree", mock.Anything, professional.ID, mock.Anything).
		Return(httperr.ErrBusiness(httperr.CodeSlotConflict))

	uc := NewCreateAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.Nil(t, ap)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))

	// Conflito detectado: nenhuma linha pode ser gravada.
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_InvalidDateTime(t *testing.T) {
	in, _, _, _ := newCreateFixture()
	in.DateTime = "01/03/2024 09:00"

	repo := new(MockRepository)
	uc := NewCreateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidDateTime))

	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_ServiceFromOtherTenant(t *testing.T) {
	in, client, professional, _ := newCreateFixture()

	repo := new(MockRepository)
	repo.On("GetClient", mock.Anything, in.EstablishmentID, in.ClientID).Return(client, nil)
	repo.On("GetProfessional", mock.Anything, in.EstablishmentID, in.ProfessionalID).Return(professional, nil)
	// Serviço de outro estabelecimento: a busca no tenant não encontra.
	repo.On("GetService", mock.Anything, in.EstablishmentID, in.ServiceID).
		Return(nil, assert.AnError)

	uc := NewCreateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "servico_not_found"))

	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}
