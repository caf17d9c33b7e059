package session

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucasAlmeida-cmd/vitalog/internal/client/storage"
	"github.com/LucasAlmeida-cmd/vitalog/internal/models"
	pkgapi "github.com/LucasAlmeida-cmd/vitalog/pkg/api"
)

// mockSessionStorage implements storage.SessionStorage for testing
type mockSessionStorage struct {
	data      *storage.SessionData
	saveErr   error
	getErr    error
	deleteErr error
	saveCalls int
}

func (m *mockSessionStorage) SaveSession(ctx context.Context, session *storage.SessionData) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := *session
	m.data = &copied
	return nil
}

func (m *mockSessionStorage) GetSession(ctx context.Context) (*storage.SessionData, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.data == nil {
		return nil, storage.ErrSessionNotFound
	}
	copied := *m.data
	return &copied, nil
}

func (m *mockSessionStorage) DeleteSession(ctx context.Context) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.data = nil
	return nil
}

// mockAuthService implements AuthService for testing
type mockAuthService struct {
	signInUser   *models.User
	signInToken  string
	signInErr    error
	registerUser *models.User
	registerTok  string
	registerErr  error
	updateUser   *models.User
	updateErr    error
	updateToken  string // token the controller passed in
}

func (m *mockAuthService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	if m.signInErr != nil {
		return nil, "", m.signInErr
	}
	return m.signInUser, m.signInToken, nil
}

func (m *mockAuthService) Register(ctx context.Context, req pkgapi.RegisterRequest) (*models.User, string, error) {
	if m.registerErr != nil {
		return nil, "", m.registerErr
	}
	return m.registerUser, m.registerTok, nil
}

func (m *mockAuthService) UpdateUser(ctx context.Context, token string, id int64, req pkgapi.UpdateUserRequest) (*models.User, error) {
	m.updateToken = token
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return m.updateUser, nil
}

func (m *mockAuthService) SignOut(ctx context.Context) error {
	return nil
}

func testUser() models.User {
	return models.User{
		ID:        5,
		Name:      "Lucas Almeida",
		Email:     "lucas@example.com",
		CPF:       "123.456.789-00",
		BirthDate: "2000-01-15",
		Role:      models.RoleUsuario,
	}
}

func newTestController(store storage.SessionStorage, auth AuthService) *Controller {
	return NewController(store, auth, slog.New(slog.DiscardHandler))
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "5",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestController_Initialize_NoStoredSession(t *testing.T) {
	controller := newTestController(&mockSessionStorage{}, &mockAuthService{})

	assert.Equal(t, StateLoading, controller.State())

	state, err := controller.Initialize(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateUnauthenticated, state)
	assert.Nil(t, controller.CurrentUser())
}

func TestController_Initialize_StoredSession(t *testing.T) {
	user := testUser()
	store := &mockSessionStorage{data: &storage.SessionData{User: user, Token: "opaque-token"}}
	controller := newTestController(store, &mockAuthService{})

	state, err := controller.Initialize(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, state)
	require.NotNil(t, controller.CurrentUser())
	assert.Equal(t, user, *controller.CurrentUser())

	token, err := controller.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)
}

func TestController_Initialize_ExpiredToken(t *testing.T) {
	store := &mockSessionStorage{data: &storage.SessionData{
		User:  testUser(),
		Token: signedToken(t, time.Now().Add(-time.Hour)),
	}}
	controller := newTestController(store, &mockAuthService{})

	state, err := controller.Initialize(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateUnauthenticated, state)
	// the expired session is also cleared from the store
	assert.Nil(t, store.data)
}

func TestController_Initialize_StorageError(t *testing.T) {
	store := &mockSessionStorage{getErr: errors.New("disk on fire")}
	controller := newTestController(store, &mockAuthService{})

	state, err := controller.Initialize(context.Background())

	require.Error(t, err)
	// the app stays usable in the unauthenticated state
	assert.Equal(t, StateUnauthenticated, state)
}

func TestController_SignIn_Success(t *testing.T) {
	user := testUser()
	store := &mockSessionStorage{}
	auth := &mockAuthService{signInUser: &user, signInToken: "token-xyz"}
	controller := newTestController(store, auth)
	_, err := controller.Initialize(context.Background())
	require.NoError(t, err)

	err = controller.SignIn(context.Background(), "lucas@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, controller.State())
	require.NotNil(t, controller.CurrentUser())
	assert.Equal(t, user, *controller.CurrentUser())

	// written through to the store, token exactly as returned
	require.NotNil(t, store.data)
	assert.Equal(t, user, store.data.User)
	assert.Equal(t, "token-xyz", store.data.Token)
}

func TestController_SignIn_Failure(t *testing.T) {
	store := &mockSessionStorage{}
	auth := &mockAuthService{signInErr: errors.New("invalid credentials")}
	controller := newTestController(store, auth)
	_, err := controller.Initialize(context.Background())
	require.NoError(t, err)

	err = controller.SignIn(context.Background(), "lucas@example.com", "wrong")

	require.Error(t, err)
	assert.Equal(t, StateUnauthenticated, controller.State())
	assert.Nil(t, store.data)
	assert.Zero(t, store.saveCalls)
}

func TestController_SignIn_PersistFailure(t *testing.T) {
	user := testUser()
	store := &mockSessionStorage{saveErr: errors.New("disk full")}
	auth := &mockAuthService{signInUser: &user, signInToken: "token-xyz"}
	controller := newTestController(store, auth)
	_, err := controller.Initialize(context.Background())
	require.NoError(t, err)

	err = controller.SignIn(context.Background(), "lucas@example.com", "secret123")

	// in-memory state never outruns the store
	require.Error(t, err)
	assert.Equal(t, StateUnauthenticated, controller.State())
	assert.Nil(t, controller.CurrentUser())
}

func TestController_Register_WithToken(t *testing.T) {
	user := testUser()
	store := &mockSessionStorage{}
	auth := &mockAuthService{registerUser: &user, registerTok: "token-reg"}
	controller := newTestController(store, auth)
	_, err := controller.Initialize(context.Background())
	require.NoError(t, err)

	err = controller.Register(context.Background(), pkgapi.RegisterRequest{Email: user.Email})

	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, controller.State())
	require.NotNil(t, store.data)
	assert.Equal(t, "token-reg", store.data.Token)
}

func TestController_Register_WithoutToken(t *testing.T) {
	user := testUser()
	store := &mockSessionStorage{}
	auth := &mockAuthService{registerUser: &user}
	controller := newTestController(store, auth)
	_, err := controller.Initialize(context.Background())
	require.NoError(t, err)

	err = controller.Register(context.Background(), pkgapi.RegisterRequest{Email: user.Email})

	// account created, but the user still signs in separately
	require.NoError(t, err)
	assert.Equal(t, StateUnauthenticated, controller.State())
	assert.Nil(t, store.data)
}

func TestController_SignOut(t *testing.T) {
	user := testUser()
	store := &mockSessionStorage{data: &storage.SessionData{User: user, Token: "token-xyz"}}
	controller := newTestController(store, &mockAuthService{})
	state, err := controller.Initialize(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateAuthenticated, state)

	err = controller.SignOut(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateUnauthenticated, controller.State())
	assert.Nil(t, controller.CurrentUser())

	// stored session is gone
	_, err = store.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	_, err = controller.Token(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestController_SignOut_StoreFailureSwallowed(t *testing.T) {
	user := testUser()
	store := &mockSessionStorage{
		data:      &storage.SessionData{User: user, Token: "token-xyz"},
		deleteErr: errors.New("disk on fire"),
	}
	controller := newTestController(store, &mockAuthService{})
	_, err := controller.Initialize(context.Background())
	require.NoError(t, err)

	// cleanup failures are logged only; sign-out must not throw
	assert.NoError(t, controller.SignOut(context.Background()))
	assert.Equal(t, StateUnauthenticated, controller.State())
}

func TestController_UpdateUser_Success(t *testing.T) {
	user := testUser()
	updated := user
	updated.Name = "Lucas A."
	updated.Email = "novo@example.com"

	store := &mockSessionStorage{data: &storage.SessionData{User: user, Token: "token-xyz"}}
	auth := &mockAuthService{updateUser: &updated}
	controller := newTestController(store, auth)
	_, err := controller.Initialize(context.Background())
	require.NoError(t, err)

	err = controller.UpdateUser(context.Background(), pkgapi.UpdateUserRequest{
		Name:  "Lucas A.",
		Email: "novo@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, updated, *controller.CurrentUser())
	// merged profile persisted with the existing token
	assert.Equal(t, updated, store.data.User)
	assert.Equal(t, "token-xyz", store.data.Token)
	// the controller passed its own token down to the service
	assert.Equal(t, "token-xyz", auth.updateToken)
}

func TestController_UpdateUser_FailureLeavesStateUnchanged(t *testing.T) {
	user := testUser()
	store := &mockSessionStorage{data: &storage.SessionData{User: user, Token: "token-xyz"}}
	auth := &mockAuthService{updateErr: errors.New("update failed")}
	controller := newTestController(store, auth)
	_, err := controller.Initialize(context.Background())
	require.NoError(t, err)

	err = controller.UpdateUser(context.Background(), pkgapi.UpdateUserRequest{Name: "X"})

	require.Error(t, err)
	assert.Equal(t, StateAuthenticated, controller.State())
	assert.Equal(t, user, *controller.CurrentUser())
	assert.Equal(t, user, store.data.User)
}

func TestController_UpdateUser_RequiresSession(t *testing.T) {
	controller := newTestController(&mockSessionStorage{}, &mockAuthService{})
	_, err := controller.Initialize(context.Background())
	require.NoError(t, err)

	err = controller.UpdateUser(context.Background(), pkgapi.UpdateUserRequest{})

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestController_Token_Unauthenticated(t *testing.T) {
	controller := newTestController(&mockSessionStorage{}, &mockAuthService{})
	_, err := controller.Initialize(context.Background())
	require.NoError(t, err)

	_, err = controller.Token(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
