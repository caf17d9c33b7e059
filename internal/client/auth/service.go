// Package auth wraps the backend's authentication and profile endpoints,
// normalizing their failures into the generic errors shown to the user.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/LucasAlmeida-cmd/vitalog/internal/client/api"
	"github.com/LucasAlmeida-cmd/vitalog/internal/models"
	pkgapi "github.com/LucasAlmeida-cmd/vitalog/pkg/api"
)

// Service provides sign-in, registration and profile update against the backend.
type Service struct {
	client *api.Client
	logger *slog.Logger
}

// NewService creates a new auth service.
func NewService(client *api.Client, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// SignIn posts the credentials and returns the authenticated user with its
// bearer token. Every failure mode (network, HTTP status, malformed body,
// missing token) is normalized to ErrInvalidCredentials; the original cause
// is logged and kept wrapped, not surfaced in the message.
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	var resp pkgapi.LoginResponse
	err := s.client.Post(ctx, "/login", "", pkgapi.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		s.logger.Warn("sign in failed", "email", email, "error", err)
		return nil, "", newError(ErrInvalidCredentials, err)
	}

	if resp.Token == "" {
		s.logger.Warn("sign in response missing token", "email", email)
		return nil, "", newError(ErrInvalidCredentials, fmt.Errorf("empty token in login response"))
	}

	s.logger.Info("signed in", "user_id", resp.User.ID)
	return &resp.User, resp.Token, nil
}

// registerEnvelope tolerates both register response shapes: the bare created
// user, or a login-style {user, token} pair.
type registerEnvelope struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register posts the registration fields and returns the created user plus
// the bearer token when the backend issues one (empty otherwise). Failures
// are normalized to ErrRegistrationFailed with the cause kept wrapped.
func (s *Service) Register(ctx context.Context, req pkgapi.RegisterRequest) (*models.User, string, error) {
	var raw json.RawMessage
	err := s.client.Post(ctx, "/usuarios/salvar", "", req, &raw)
	if err != nil {
		s.logger.Warn("registration failed", "email", req.Email, "error", err)
		return nil, "", newError(ErrRegistrationFailed, err)
	}

	var envelope registerEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.User != nil {
		s.logger.Info("registered", "user_id", envelope.User.ID)
		return envelope.User, envelope.Token, nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.logger.Warn("registration response malformed", "error", err)
		return nil, "", newError(ErrRegistrationFailed, err)
	}

	s.logger.Info("registered", "user_id", user.ID)
	return &user, "", nil
}

// UpdateUser PUTs the partial profile fields for the given user. An empty
// password in req is omitted from the payload (meaning "unchanged"). Failures
// are normalized to ErrUpdateFailed with the cause kept wrapped.
func (s *Service) UpdateUser(ctx context.Context, token string, id int64, req pkgapi.UpdateUserRequest) (*models.User, error) {
	var user models.User
	path := fmt.Sprintf("/usuarios/atualizar/%d", id)
	if err := s.client.Put(ctx, path, token, req, &user); err != nil {
		s.logger.Warn("profile update failed", "user_id", id, "error", err)
		return nil, newError(ErrUpdateFailed, err)
	}

	s.logger.Info("profile updated", "user_id", id)
	return &user, nil
}

// SignOut ends the session. The backend holds no session state, so there is
// nothing remote to revoke; the call never fails.
func (s *Service) SignOut(ctx context.Context) error {
	s.logger.Info("signed out")
	return nil
}
