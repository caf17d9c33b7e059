package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/LucasAlmeida-cmd/vitalog/internal/client/storage"
	"github.com/LucasAlmeida-cmd/vitalog/internal/models"
	pkgapi "github.com/LucasAlmeida-cmd/vitalog/pkg/api"
)

// AuthService is the slice of the auth service the controller needs.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*models.User, string, error)
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*models.User, string, error)
	UpdateUser(ctx context.Context, token string, id int64, req pkgapi.UpdateUserRequest) (*models.User, error)
	SignOut(ctx context.Context) error
}

// Compile-time check that Controller implements Session
var _ Session = (*Controller)(nil)

// Controller is the auth session state machine. The mutex keeps transitions
// memory-safe; concurrent transitions are not deduplicated, the last one to
// complete wins (the screens disable their action while a request is in
// flight).
type Controller struct {
	mu     sync.Mutex
	state  State
	user   *models.User
	token  string
	store  storage.SessionStorage
	auth   AuthService
	logger *slog.Logger
}

// NewController creates a controller in StateLoading. Call Initialize to
// resolve the initial state before use.
func NewController(store storage.SessionStorage, auth AuthService, logger *slog.Logger) *Controller {
	return &Controller{
		state:  StateLoading,
		store:  store,
		auth:   auth,
		logger: logger,
	}
}

// Initialize reads the stored session. A missing, corrupt or expired session
// resolves to StateUnauthenticated without error; only storage failures are
// reported (and still resolve to StateUnauthenticated so the app stays usable).
func (c *Controller) Initialize(ctx context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, err := c.store.GetSession(ctx)
	if err != nil {
		c.state = StateUnauthenticated
		if err == storage.ErrSessionNotFound {
			return c.state, nil
		}
		return c.state, fmt.Errorf("failed to load session: %w", err)
	}

	if TokenExpired(stored.Token) {
		c.logger.Info("stored session expired", "user_id", stored.User.ID)
		c.state = StateUnauthenticated
		if err := c.store.DeleteSession(ctx); err != nil {
			c.logger.Warn("failed to clear expired session", "error", err)
		}
		return c.state, nil
	}

	user := stored.User
	c.user = &user
	c.token = stored.Token
	c.state = StateAuthenticated
	c.logger.Info("session restored", "user_id", user.ID)
	return c.state, nil
}

// SignIn authenticates against the backend and writes the session through to
// the store. If persisting fails the sign-in is reported as failed and the
// state is unchanged, so the in-memory state never outruns the store.
func (c *Controller) SignIn(ctx context.Context, email, password string) error {
	user, token, err := c.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	return c.establish(ctx, user, token)
}

// Register creates the account. The session is only established when the
// backend issued a token; otherwise the caller is expected to sign in next.
func (c *Controller) Register(ctx context.Context, req pkgapi.RegisterRequest) error {
	user, token, err := c.auth.Register(ctx, req)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}
	return c.establish(ctx, user, token)
}

func (c *Controller) establish(ctx context.Context, user *models.User, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.store.SaveSession(ctx, &storage.SessionData{User: *user, Token: token})
	if err != nil {
		c.logger.Error("failed to persist session", "user_id", user.ID, "error", err)
		return fmt.Errorf("failed to persist session: %w", err)
	}

	c.user = user
	c.token = token
	c.state = StateAuthenticated
	return nil
}

// SignOut clears the in-memory session and the store. Failures during cleanup
// are logged and swallowed; there is no meaningful recovery for the user.
func (c *Controller) SignOut(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.auth.SignOut(ctx); err != nil {
		c.logger.Warn("sign out notification failed", "error", err)
	}
	if err := c.store.DeleteSession(ctx); err != nil {
		c.logger.Warn("failed to clear stored session", "error", err)
	}

	c.user = nil
	c.token = ""
	c.state = StateUnauthenticated
	return nil
}

// UpdateUser sends the partial profile update for the current user. On
// success the merged profile replaces the in-memory user and is persisted
// with the existing token; on any failure the state is left untouched.
func (c *Controller) UpdateUser(ctx context.Context, req pkgapi.UpdateUserRequest) error {
	c.mu.Lock()
	if c.state != StateAuthenticated || c.user == nil {
		c.mu.Unlock()
		return ErrNotAuthenticated
	}
	id := c.user.ID
	token := c.token
	c.mu.Unlock()

	updated, err := c.auth.UpdateUser(ctx, token, id, req)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.SaveSession(ctx, &storage.SessionData{User: *updated, Token: c.token}); err != nil {
		c.logger.Error("failed to persist updated profile", "user_id", id, "error", err)
		return fmt.Errorf("failed to persist updated profile: %w", err)
	}

	c.user = updated
	return nil
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (c *Controller) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return nil
	}
	user := *c.user
	return &user
}

// State returns the current authentication state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Token returns the current bearer token. Implements logs.TokenProvider.
func (c *Controller) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateAuthenticated || c.token == "" {
		return "", ErrNotAuthenticated
	}
	return c.token, nil
}
