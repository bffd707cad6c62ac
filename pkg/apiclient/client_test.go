package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "dono@barbearia.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Login realizado com sucesso",
			"user":    map[string]any{"nome": "Dono"},
			"token":   "tok-123",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login(context.Background(), "dono@barbearia.com", "senha123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", resp.Token)
	assert.Equal(t, "Dono", resp.User.Name)
	assert.Equal(t, "tok-123", c.token)
}

func TestFetchClientsSendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		require.Equal(t, "/clientes", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"clientes": [{"nome": "João"}, {"nome": "Maria"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-123")

	clients, err := c.FetchClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "João", clients[0].Name)
}

func TestListAppointmentsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2025-03-01", q.Get("data_inicio"))
		assert.Equal(t, "2025-03-31", q.Get("data_fim"))
		assert.Equal(t, "agendado", q.Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"agendamentos": [{"status": "agendado"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok")

	aps, err := c.ListAppointments(context.Background(), "2025-03-01", "2025-03-31", "agendado")
	require.NoError(t, err)
	require.Len(t, aps, 1)
	assert.Equal(t, "agendado", aps[0].Status)
}

func TestFetchStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/dashboard/stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"stats": {"agendamentosHoje": 5, "receitaMes": 3250.5}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok")

	st, err := c.FetchStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), st.AppointmentsToday)
	assert.Equal(t, 3250.5, st.MonthRevenue)
}

func TestErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Horário já ocupado para este profissional"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok")

	_, err := c.FetchClients(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Horário já ocupado para este profissional", apiErr.Message)
}

func TestLogoutClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/logout", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "Logout realizado com sucesso"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-123")

	require.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, c.token)
}
