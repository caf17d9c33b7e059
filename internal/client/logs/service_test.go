package logs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucasAlmeida-cmd/vitalog/internal/client/api"
	"github.com/LucasAlmeida-cmd/vitalog/internal/models"
	pkgapi "github.com/LucasAlmeida-cmd/vitalog/pkg/api"
)

// staticTokens is a TokenProvider with a fixed token or error.
type staticTokens struct {
	token string
	err   error
}

func (s *staticTokens) Token(ctx context.Context) (string, error) {
	return s.token, s.err
}

func newTestService(t *testing.T, handler http.HandlerFunc) Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.DiscardHandler)
	client := api.NewClient(server.URL, 0, logger)
	return NewService(client, &staticTokens{token: "token-abc"}, logger)
}

func TestService_GetLogs_UnwrapsEnvelope(t *testing.T) {
	entries := []models.LogEntry{
		{ID: 3, Date: "2024-06-03", Emotion: "calmo", SleepHours: 7, WaterLiters: 2, UserID: 5},
		{ID: 1, Date: "2024-06-01", Emotion: "feliz", SleepHours: 8, WaterLiters: 1.5, UserID: 5},
		{ID: 2, Date: "2024-06-02", Emotion: "cansado", SleepHours: 5, WaterLiters: 3, UserID: 5},
	}

	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/log/meusLogs", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(pkgapi.LogsPage{
			Content:       entries,
			TotalElements: 3,
			TotalPages:    1,
		})
	})

	got, err := service.GetLogs(context.Background())

	require.NoError(t, err)
	// backend order is preserved, no client-side resort
	assert.Equal(t, entries, got)
}

func TestService_GetLogs_Empty(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(pkgapi.LogsPage{Content: []models.LogEntry{}})
	})

	got, err := service.GetLogs(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_GetLogs_TokenProviderError(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	client := api.NewClient("http://127.0.0.1:1", 0, logger)
	tokenErr := errors.New("no session")
	service := NewService(client, &staticTokens{err: tokenErr}, logger)

	_, err := service.GetLogs(context.Background())

	assert.ErrorIs(t, err, tokenErr)
}

func TestService_CreateLog(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/log/criar", r.URL.Path)

		var req pkgapi.LogRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2024-06-01", req.Date)
		assert.Equal(t, 7.5, req.SleepHours)
		assert.True(t, req.Exercised)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.LogEntry{
			ID:          11,
			Date:        req.Date,
			Emotion:     req.Emotion,
			SleepHours:  req.SleepHours,
			WaterLiters: req.WaterLiters,
			Exercised:   req.Exercised,
			RestedMind:  req.RestedMind,
			Notes:       req.Notes,
			UserID:      5,
		})
	})

	entry, err := service.CreateLog(context.Background(), pkgapi.LogRequest{
		Date:        "2024-06-01",
		Emotion:     "feliz",
		SleepHours:  7.5,
		WaterLiters: 2,
		Exercised:   true,
		Notes:       "caminhada no parque",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), entry.ID)
	assert.Equal(t, "feliz", entry.Emotion)
}

func TestService_GetLogByID(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/log/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.LogEntry{ID: 7, Date: "2024-06-01"})
	})

	entry, err := service.GetLogByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), entry.ID)
}

func TestService_UpdateLog(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/log/atualizar/7", r.URL.Path)

		var req pkgapi.LogRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		_ = json.NewEncoder(w).Encode(models.LogEntry{ID: 7, Emotion: req.Emotion})
	})

	entry, err := service.UpdateLog(context.Background(), 7, pkgapi.LogRequest{Emotion: "animado"})

	require.NoError(t, err)
	assert.Equal(t, "animado", entry.Emotion)
}

func TestService_DeleteLog_ThenListDoesNotContainIt(t *testing.T) {
	remaining := []models.LogEntry{{ID: 1}, {ID: 3}}
	var deletedPath string

	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			deletedPath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(pkgapi.LogsPage{Content: remaining})
		}
	})

	ctx := context.Background()
	require.NoError(t, service.DeleteLog(ctx, 2))
	assert.Equal(t, "/log/excluir/2", deletedPath)

	got, err := service.GetLogs(ctx)
	require.NoError(t, err)
	for _, entry := range got {
		assert.NotEqual(t, int64(2), entry.ID)
	}
}

func TestService_DeleteLog_ErrorPropagates(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := service.DeleteLog(context.Background(), 99)

	require.Error(t, err)
	var httpErr *api.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}
