package appointment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/agendavivo/agenda-api/internal/domain/appointment"
	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/models"
)

func strPtr(s string) *string { return &s }

func newStoredAppointment(status string) *models.Appointment {
	return &models.Appointment{
		ID:              uuid.New(),
		EstablishmentID: uuid.New(),
		ClientID:        uuid.New(),
		ProfessionalID:  uuid.New(),
		ServiceID:       uuid.New(),
		Status:          status,
		TotalValue:      85.00,
	}
}

func TestUpdateAppointment_CompletionAwardsPoints(t *testing.T) {
	ap := newStoredAppointment(string(domain.StatusScheduled))

	repo := new(MockRepository)
	repo.On("GetAppointmentForEstablishment", mock.Anything, ap.ID, ap.EstablishmentID).Return(ap, nil)
	// floor(85 / 10) = 8 pontos creditados na mesma transação.
	repo.On("UpdateAppointment", mock.Anything, ap, 8).Return(nil)
	repo.On("ReloadWithRelations", mock.Anything, ap).Return(nil)

	uc := NewUpdateAppointment(repo, nil)

	got, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		EstablishmentID: ap.EstablishmentID,
		ActorID:         uuid.New(),
		AppointmentID:   ap.ID,
		Status:          strPtr(string(domain.StatusCompleted)),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), got.Status)

	repo.AssertExpectations(t)
}

func TestUpdateAppointment_ResaveCompletedDoesNotAwardAgain(t *testing.T) {
	ap := newStoredAppointment(string(domain.StatusCompleted))

	repo := new(MockRepository)
	repo.On("GetAppointmentForEstablishment", mock.Anything, ap.ID, ap.EstablishmentID).Return(ap, nil)
	// Já concluído: zero pontos no re-save.
	repo.On("UpdateAppointment", mock.Anything, ap, 0).Return(nil)
	repo.On("ReloadWithRelations", mock.Anything, ap).Return(nil)

	uc := NewUpdateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		EstablishmentID: ap.EstablishmentID,
		ActorID:         uuid.New(),
		AppointmentID:   ap.ID,
		Status:          strPtr(string(domain.StatusCompleted)),
	})
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestUpdateAppointment_NonCompletionTransitionNoPoints(t *testing.T) {
	ap := newStoredAppointment(string(domain.StatusScheduled))

	repo := new(MockRepository)
	repo.On("GetAppointmentForEstablishment", mock.Anything, ap.ID, ap.EstablishmentID).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap, 0).Return(nil)
	repo.On("ReloadWithRelations", mock.Anything, ap).Return(nil)

	uc := NewUpdateAppointment(repo, nil)

	got, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		EstablishmentID: ap.EstablishmentID,
		ActorID:         uuid.New(),
		AppointmentID:   ap.ID,
		Status:          strPtr(string(domain.StatusConfirmed)),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), got.Status)

	repo.AssertExpectations(t)
}

func TestUpdateAppointment_InvalidStatus(t *testing.T) {
	ap := newStoredAppointment(string(domain.StatusScheduled))

	repo := new(MockRepository)
	repo.On("GetAppointmentForEstablishment", mock.Anything, ap.ID, ap.EstablishmentID).Return(ap, nil)

	uc := NewUpdateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		EstablishmentID: ap.EstablishmentID,
		ActorID:         uuid.New(),
		AppointmentID:   ap.ID,
		Status:          strPtr("finalizado"),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidStatus))

	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAppointment_WrongTenantIsNotFound(t *testing.T) {
	ap := newStoredAppointment(string(domain.StatusScheduled))
	otherEstablishment := uuid.New()

	repo := new(MockRepository)
	repo.On("GetAppointmentForEstablishment", mock.Anything, ap.ID, otherEstablishment).
		Return(nil, assert.AnError)

	uc := NewUpdateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		EstablishmentID: otherEstablishment,
		ActorID:         uuid.New(),
		AppointmentID:   ap.ID,
		Status:          strPtr(string(domain.StatusCompleted)),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestCancelAppointment_SetsStatusCancelado(t *testing.T) {
	ap := newStoredAppointment(string(domain.StatusScheduled))

	repo := new(MockRepository)
	repo.On("GetAppointmentForEstablishment", mock.Anything, ap.ID, ap.EstablishmentID).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap, 0).Return(nil)

	uc := NewCancelAppointment(repo, nil)

	got, err := uc.Execute(context.Background(), ap.EstablishmentID, uuid.New(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)

	repo.AssertExpectations(t)
}
