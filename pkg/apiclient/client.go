// Package apiclient é o cliente REST da API, usado pelo painel para
// popular o appstate.Store.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/agendavivo/agenda-api/internal/models"
	"github.com/agendavivo/agenda-api/internal/stats"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SetToken define o bearer usado nas chamadas autenticadas.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError é a resposta {error} da API com o status HTTP.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// --------- Auth ---------

type LoginResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
	Token   string      `json:"token"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.token = ""
	return err
}

// --------- Coleções (appstate.Fetcher) ---------

func (c *Client) FetchClients(ctx context.Context) ([]models.Client, error) {
	var resp struct {
		Clients []models.Client `json:"clientes"`
	}
	if err := c.do(ctx, http.MethodGet, "/clientes", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Clients, nil
}

func (c *Client) FetchProfessionals(ctx context.Context) ([]models.Professional, error) {
	var resp struct {
		Professionals []models.Professional `json:"profissionais"`
	}
	if err := c.do(ctx, http.MethodGet, "/profissionais", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Professionals, nil
}

func (c *Client) FetchServices(ctx context.Context) ([]models.Service, error) {
	var resp struct {
		Services []models.Service `json:"servicos"`
	}
	if err := c.do(ctx, http.MethodGet, "/servicos", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Services, nil
}

func (c *Client) FetchAppointments(ctx context.Context) ([]models.Appointment, error) {
	var resp struct {
		Appointments []models.Appointment `json:"agendamentos"`
	}
	if err := c.do(ctx, http.MethodGet, "/agendamentos", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Appointments, nil
}

// ListAppointments aceita os filtros da query string.
func (c *Client) ListAppointments(ctx context.Context, dataInicio, dataFim, status string) ([]models.Appointment, error) {
	q := url.Values{}
	if dataInicio != "" {
		q.Set("data_inicio", dataInicio)
	}
	if dataFim != "" {
		q.Set("data_fim", dataFim)
	}
	if status != "" {
		q.Set("status", status)
	}

	path := "/agendamentos"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp struct {
		Appointments []models.Appointment `json:"agendamentos"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Appointments, nil
}

func (c *Client) FetchStats(ctx context.Context) (*stats.Stats, error) {
	var resp struct {
		Stats stats.Stats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}

// --------- Transporte ---------

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
