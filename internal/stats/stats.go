package stats

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/agendavivo/agenda-api/internal/domain/appointment"
	"github.com/agendavivo/agenda-api/internal/timezone"
)

// Stats é o retrato do painel no momento da consulta. Nada é cacheado.
type Stats struct {
	AppointmentsToday   int64   `json:"agendamentosHoje"`
	AppointmentsMonth   int64   `json:"agendamentosMes"`
	TotalClients        int64   `json:"clientesTotal"`
	ActiveProfessionals int64   `json:"profissionaisAtivos"`
	MonthRevenue        float64 `json:"receitaMes"`
	PendingToday        int64   `json:"agendamentosPendentes"`
}

type Repository interface {
	CountAppointments(
		ctx context.Context,
		establishmentID uuid.UUID,
		from time.Time,
		to time.Time,
	) (int64, error)

	CountAppointmentsWithStatus(
		ctx context.Context,
		establishmentID uuid.UUID,
		status string,
		from time.Time,
		to time.Time,
	) (int64, error)

	// SumCompletedRevenue soma valor_total apenas de agendamentos concluidos.
	SumCompletedRevenue(
		ctx context.Context,
		establishmentID uuid.UUID,
		from time.Time,
		to time.Time,
	) (float64, error)

	CountActiveClients(
		ctx context.Context,
		establishmentID uuid.UUID,
	) (int64, error)

	CountActiveProfessionals(
		ctx context.Context,
		establishmentID uuid.UUID,
	) (int64, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  timezone.Now,
	}
}

// NewServiceWithClock permite fixar o relógio em testes.
func NewServiceWithClock(repo Repository, now func() time.Time) *Service {
	return &Service{repo: repo, now: now}
}

func (s *Service) Compute(
	ctx context.Context,
	establishmentID uuid.UUID,
) (*Stats, error) {

	now := s.now()
	dayStart, dayEnd := DayWindow(now)
	monthStart, monthEnd := MonthWindow(now)

	today, err := s.repo.CountAppointments(ctx, establishmentID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	month, err := s.repo.CountAppointments(ctx, establishmentID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	clients, err := s.repo.CountActiveClients(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	professionals, err := s.repo.CountActiveProfessionals(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	revenue, err := s.repo.SumCompletedRevenue(ctx, establishmentID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	pending, err := s.repo.CountAppointmentsWithStatus(
		ctx,
		establishmentID,
		string(domain.StatusScheduled),
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	return &Stats{
		AppointmentsToday:   today,
		AppointmentsMonth:   month,
		TotalClients:        clients,
		ActiveProfessionals: professionals,
		MonthRevenue:        revenue,
		PendingToday:        pending,
	}, nil
}

// DayWindow retorna [início do dia, início do dia seguinte).
func DayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// MonthWindow retorna [início do mês, início do mês seguinte).
func MonthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}
