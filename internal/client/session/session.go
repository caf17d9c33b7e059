// Package session holds the in-memory authentication state and keeps the
// local session store consistent with remote auth outcomes.
package session

import (
	"context"
	"errors"

	"github.com/LucasAlmeida-cmd/vitalog/internal/models"
	pkgapi "github.com/LucasAlmeida-cmd/vitalog/pkg/api"
)

//go:generate moq -out session_mock.go . Session

// ErrNotAuthenticated indicates that an operation requiring a session was
// attempted without one.
var ErrNotAuthenticated = errors.New("not authenticated")

// State is the controller's authentication state.
type State int

const (
	// StateLoading is the initial state, before the stored session is read.
	StateLoading State = iota
	// StateUnauthenticated means no session exists.
	StateUnauthenticated
	// StateAuthenticated means a user is signed in.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the controller surface consumed by the screens.
type Session interface {
	// Initialize reads the stored session once and resolves the initial
	// state. It is called explicitly by the composition root before any
	// command runs.
	Initialize(ctx context.Context) (State, error)

	// SignIn authenticates and, on success, writes the session through to
	// the store and transitions to StateAuthenticated.
	SignIn(ctx context.Context, email, password string) error

	// Register creates the account. When the backend issues a token the
	// session is established exactly like SignIn; otherwise the state
	// remains StateUnauthenticated and the user signs in separately.
	Register(ctx context.Context, req pkgapi.RegisterRequest) error

	// SignOut clears the session store and in-memory state. It never
	// returns an error; cleanup failures are only logged.
	SignOut(ctx context.Context) error

	// UpdateUser updates the profile of the current user. On success the
	// merged profile is persisted; on failure the state is unchanged and
	// the error is returned for the screen to surface.
	UpdateUser(ctx context.Context, req pkgapi.UpdateUserRequest) error

	// CurrentUser returns the signed-in user, or nil.
	CurrentUser() *models.User

	// State returns the current authentication state.
	State() State

	// Token returns the bearer token for the current session, or
	// ErrNotAuthenticated. Implements logs.TokenProvider.
	Token(ctx context.Context) (string, error)
}
