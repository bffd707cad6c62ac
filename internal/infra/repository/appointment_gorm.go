package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/agendavivo/agenda-api/internal/domain/appointment"
	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Entidades referenciadas
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	establishmentID uuid.UUID,
	clientID uuid.UUID,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND estabelecimento_id = ?", clientID, establishmentID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	establishmentID uuid.UUID,
	professionalID uuid.UUID,
) (*models.Professional, error) {

	var professional models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND estabelecimento_id = ?", professionalID, establishmentID).
		First(&professional).Error; err != nil {
		return nil, err
	}
	return &professional, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	establishmentID uuid.UUID,
	serviceID uuid.UUID,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND estabelecimento_id = ?", serviceID, establishmentID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Agendamento (criação / conflito)
// --------------------------------------------------

// AssertSlotFree aplica a regra de conflito por timestamp exato:
// mesmo profissional, mesmo data_hora, status diferente de cancelado.
// Seleciona ids sob FOR UPDATE (Postgres não aceita lock em agregação),
// travando o agendamento concorrente que ocupa o horário.
func (r *AppointmentGormRepository) AssertSlotFree(
	ctx context.Context,
	professionalID uuid.UUID,
	at time.Time,
) error {

	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"profissional_id = ? AND data_hora = ? AND status <> ?",
			professionalID,
			at,
			string(domain.StatusCancelled),
		).
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return err
	}

	if len(ids) > 0 {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	return nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// --------------------------------------------------
// Agendamento (mudança de estado)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForEstablishment(
	ctx context.Context,
	appointmentID uuid.UUID,
	establishmentID uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND estabelecimento_id = ?", appointmentID, establishmentID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	loyaltyPoints int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ap).Error; err != nil {
			return err
		}

		if loyaltyPoints <= 0 {
			return nil
		}

		var loyalty models.Loyalty
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("cliente_id = ?", ap.ClientID).
			First(&loyalty).Error; err != nil {
			return err
		}

		if err := tx.Model(&loyalty).Updates(map[string]any{
			"pontos_totais":      gorm.Expr("pontos_totais + ?", loyaltyPoints),
			"pontos_disponiveis": gorm.Expr("pontos_disponiveis + ?", loyaltyPoints),
		}).Error; err != nil {
			return err
		}

		event := models.LoyaltyEvent{
			LoyaltyID:     loyalty.ID,
			AppointmentID: &ap.ID,
			Points:        loyaltyPoints,
			Reason:        "agendamento_concluido",
		}
		return tx.Create(&event).Error
	})
}

// --------------------------------------------------
// Listagem
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	establishmentID uuid.UUID,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		Where("estabelecimento_id = ?", establishmentID)

	if filter.From != nil {
		q = q.Where("data_hora >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("data_hora <= ?", *filter.To)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var apps []models.Appointment
	if err := q.
		Order("data_hora ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ReloadWithRelations(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		First(ap, "id = ?", ap.ID).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
