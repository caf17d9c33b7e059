// Package logs implements the wellness log CRUD operations against the backend.
package logs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LucasAlmeida-cmd/vitalog/internal/client/api"
	"github.com/LucasAlmeida-cmd/vitalog/internal/models"
	pkgapi "github.com/LucasAlmeida-cmd/vitalog/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// TokenProvider supplies the bearer token for authenticated requests. The
// session controller implements it; each call fetches the current token so no
// stale credential is cached inside this service.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Service defines the log operations available to the screens.
type Service interface {
	// GetLogs fetches the current user's logs, in backend order.
	GetLogs(ctx context.Context) ([]models.LogEntry, error)

	// CreateLog creates a new log entry.
	CreateLog(ctx context.Context, req pkgapi.LogRequest) (*models.LogEntry, error)

	// GetLogByID fetches a single log entry.
	GetLogByID(ctx context.Context, id int64) (*models.LogEntry, error)

	// UpdateLog replaces the fields of an existing log entry.
	UpdateLog(ctx context.Context, id int64, req pkgapi.LogRequest) (*models.LogEntry, error)

	// DeleteLog removes a log entry.
	DeleteLog(ctx context.Context, id int64) error
}

type service struct {
	client *api.Client
	tokens TokenProvider
	logger *slog.Logger
}

// NewService creates a new log service.
func NewService(client *api.Client, tokens TokenProvider, logger *slog.Logger) Service {
	return &service{
		client: client,
		tokens: tokens,
		logger: logger,
	}
}

// GetLogs unwraps the backend's pagination envelope into a flat sequence.
// The order is whatever the backend returned; no client-side resort.
func (s *service) GetLogs(ctx context.Context) ([]models.LogEntry, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var page pkgapi.LogsPage
	if err := s.client.Get(ctx, "/log/meusLogs", token, &page); err != nil {
		s.logger.Warn("failed to fetch logs", "error", err)
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}

	return page.Content, nil
}

func (s *service) CreateLog(ctx context.Context, req pkgapi.LogRequest) (*models.LogEntry, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var entry models.LogEntry
	if err := s.client.Post(ctx, "/log/criar", token, req, &entry); err != nil {
		s.logger.Warn("failed to create log", "date", req.Date, "error", err)
		return nil, fmt.Errorf("failed to create log: %w", err)
	}

	s.logger.Info("log created", "log_id", entry.ID, "date", entry.Date)
	return &entry, nil
}

func (s *service) GetLogByID(ctx context.Context, id int64) (*models.LogEntry, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var entry models.LogEntry
	if err := s.client.Get(ctx, fmt.Sprintf("/log/%d", id), token, &entry); err != nil {
		s.logger.Warn("failed to fetch log", "log_id", id, "error", err)
		return nil, fmt.Errorf("failed to fetch log %d: %w", id, err)
	}

	return &entry, nil
}

func (s *service) UpdateLog(ctx context.Context, id int64, req pkgapi.LogRequest) (*models.LogEntry, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var entry models.LogEntry
	if err := s.client.Put(ctx, fmt.Sprintf("/log/atualizar/%d", id), token, req, &entry); err != nil {
		s.logger.Warn("failed to update log", "log_id", id, "error", err)
		return nil, fmt.Errorf("failed to update log %d: %w", id, err)
	}

	s.logger.Info("log updated", "log_id", id)
	return &entry, nil
}

func (s *service) DeleteLog(ctx context.Context, id int64) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return err
	}

	if err := s.client.Delete(ctx, fmt.Sprintf("/log/excluir/%d", id), token); err != nil {
		s.logger.Warn("failed to delete log", "log_id", id, "error", err)
		return fmt.Errorf("failed to delete log %d: %w", id, err)
	}

	s.logger.Info("log deleted", "log_id", id)
	return nil
}
