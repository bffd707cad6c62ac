// Package appstate guarda o estado da interface após o login: identidade,
// coleções carregadas e estatísticas do painel. É um objeto explícito,
// injetado em quem precisa ler, sem singleton global.
package appstate

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/agendavivo/agenda-api/internal/models"
	"github.com/agendavivo/agenda-api/internal/stats"
)

type View string

const (
	ViewDashboard     View = "dashboard"
	ViewAppointments  View = "agendamentos"
	ViewClients       View = "clientes"
	ViewProfessionals View = "profissionais"
	ViewServices      View = "servicos"
)

// Session é a identidade autenticada, extraída da resposta de login.
type Session struct {
	UserID          uuid.UUID
	EstablishmentID uuid.UUID
	Name            string
	Email           string
	Role            string
	Token           string
}

// State é um retrato do estado; leituras recebem uma cópia.
type State struct {
	Session *Session

	Clients       []models.Client
	Professionals []models.Professional
	Services      []models.Service
	Appointments  []models.Appointment

	Stats *stats.Stats

	Loading bool
	View    View
}

// Fetcher é quem busca as coleções no servidor; os callbacks de
// conclusão aplicam o resultado via reducers.
type Fetcher interface {
	FetchClients(ctx context.Context) ([]models.Client, error)
	FetchProfessionals(ctx context.Context) ([]models.Professional, error)
	FetchServices(ctx context.Context) ([]models.Service, error)
	FetchAppointments(ctx context.Context) ([]models.Appointment, error)
	FetchStats(ctx context.Context) (*stats.Stats, error)
}

// Store serializa as escritas. O flag Loading não é um mutex de
// requisições: disparos concorrentes do mesmo fetch são possíveis e
// a última escrita vence.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore() *Store {
	return &Store{
		state: State{View: ViewDashboard},
	}
}

// State retorna um retrato do estado atual.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// --------- Reducers ---------

func (s *Store) SetSession(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Session = &session
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = loading
}

func (s *Store) SetView(view View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.View = view
}

func (s *Store) SetClients(clients []models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Clients = clients
}

func (s *Store) SetProfessionals(professionals []models.Professional) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Professionals = professionals
}

func (s *Store) SetServices(services []models.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Services = services
}

func (s *Store) SetAppointments(appointments []models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Appointments = appointments
}

func (s *Store) SetStats(st *stats.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Stats = st
}

// Reset limpa tudo no logout: identidade e coleções voltam ao vazio.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{View: ViewDashboard}
}

// Refresh recarrega todas as coleções e o painel. Erros interrompem a
// sequência; o que já foi aplicado permanece (última escrita vence).
func (s *Store) Refresh(ctx context.Context, f Fetcher) error {
	s.SetLoading(true)
	defer s.SetLoading(false)

	clients, err := f.FetchClients(ctx)
	if err != nil {
		return err
	}
	s.SetClients(clients)

	professionals, err := f.FetchProfessionals(ctx)
	if err != nil {
		return err
	}
	s.SetProfessionals(professionals)

	services, err := f.FetchServices(ctx)
	if err != nil {
		return err
	}
	s.SetServices(services)

	appointments, err := f.FetchAppointments(ctx)
	if err != nil {
		return err
	}
	s.SetAppointments(appointments)

	st, err := f.FetchStats(ctx)
	if err != nil {
		return err
	}
	s.SetStats(st)

	return nil
}
