package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/agendavivo/agenda-api/internal/domain/appointment"
	"github.com/agendavivo/agenda-api/internal/models"
	"github.com/agendavivo/agenda-api/internal/stats"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

func (r *StatsGormRepository) CountAppointments(
	ctx context.Context,
	establishmentID uuid.UUID,
	from time.Time,
	to time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"estabelecimento_id = ? AND data_hora >= ? AND data_hora < ?",
			establishmentID, from, to,
		).
		Count(&count).Error
	return count, err
}

func (r *StatsGormRepository) CountAppointmentsWithStatus(
	ctx context.Context,
	establishmentID uuid.UUID,
	status string,
	from time.Time,
	to time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"estabelecimento_id = ? AND status = ? AND data_hora >= ? AND data_hora < ?",
			establishmentID, status, from, to,
		).
		Count(&count).Error
	return count, err
}

func (r *StatsGormRepository) SumCompletedRevenue(
	ctx context.Context,
	establishmentID uuid.UUID,
	from time.Time,
	to time.Time,
) (float64, error) {

	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("COALESCE(SUM(valor_total), 0)").
		Where(
			"estabelecimento_id = ? AND status = ? AND data_hora >= ? AND data_hora < ?",
			establishmentID, string(domain.StatusCompleted), from, to,
		).
		Scan(&total).Error
	return total, err
}

func (r *StatsGormRepository) CountActiveClients(
	ctx context.Context,
	establishmentID uuid.UUID,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("estabelecimento_id = ? AND ativo = ?", establishmentID, true).
		Count(&count).Error
	return count, err
}

func (r *StatsGormRepository) CountActiveProfessionals(
	ctx context.Context,
	establishmentID uuid.UUID,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("estabelecimento_id = ? AND ativo = ?", establishmentID, true).
		Count(&count).Error
	return count, err
}

// Compile-time check
var _ stats.Repository = (*StatsGormRepository)(nil)
