package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/auth"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/ports"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/infrastructure/api"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/infrastructure/storage"
)

// fakeAuthAPI implementa ports.AuthAPI con respuestas programables.
type fakeAuthAPI struct {
	mu          sync.Mutex
	loginResp   *dto.AuthResponse
	loginErr    error
	registerErr error
	userResp    *entity.User
	userErr     error
	logoutErr   error
	calls       map[string]int
}

func newFakeAuthAPI() *fakeAuthAPI {
	return &fakeAuthAPI{calls: map[string]int{}}
}

func (f *fakeAuthAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAuthAPI) hit(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeAuthAPI) Login(_ context.Context, _, _ string) (*dto.AuthResponse, error) {
	f.hit("login")
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) Register(_ context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	f.hit("register")
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &dto.AuthResponse{Token: "9|reg", User: entity.User{ID: 9, Name: in.Name, Username: in.Username, Role: entity.RoleUser}}, nil
}

func (f *fakeAuthAPI) Logout(context.Context) error {
	f.hit("logout")
	return f.logoutErr
}

func (f *fakeAuthAPI) CurrentUser(context.Context) (*entity.User, error) {
	f.hit("user")
	return f.userResp, f.userErr
}

func newSession(t *testing.T, fake ports.AuthAPI) (*auth.SessionManager, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	return auth.NewSessionManager(fake, kv, nil, nil), kv
}

func storedToken(t *testing.T, kv ports.KeyValueStore) (string, bool) {
	t.Helper()
	v, ok, err := kv.Get(context.Background(), ports.KeyAuthToken)
	require.NoError(t, err)
	return v, ok
}

func TestInitialize_SinTokenQuedaAnonima(t *testing.T) {
	fake := newFakeAuthAPI()
	s, _ := newSession(t, fake)

	assert.Equal(t, entity.SessionUninitialized, s.Status())
	assert.Equal(t, entity.SessionAnonymous, s.Initialize(context.Background()))
	assert.Zero(t, fake.count("user"), "sin token no hay llamada")
}

func TestInitialize_TokenValidoRestauraUsuario(t *testing.T) {
	fake := newFakeAuthAPI()
	fake.userResp = &entity.User{ID: 3, Name: "Juan", Role: entity.RoleAdmin}
	s, kv := newSession(t, fake)
	require.NoError(t, kv.Set(context.Background(), ports.KeyAuthToken, "3|vigente"))

	status := s.Initialize(context.Background())

	assert.Equal(t, entity.SessionAuthenticated, status)
	assert.Equal(t, "3|vigente", s.Token())
	assert.True(t, s.IsAdmin())
	assert.Equal(t, int64(3), s.CurrentUser().ID)
}

func TestInitialize_TokenRechazadoSeBorra(t *testing.T) {
	fake := newFakeAuthAPI()
	fake.userErr = &domain.APIError{Kind: domain.KindAuth, Status: 401}
	s, kv := newSession(t, fake)
	require.NoError(t, kv.Set(context.Background(), ports.KeyAuthToken, "3|vencido"))

	status := s.Initialize(context.Background())

	assert.Equal(t, entity.SessionAnonymous, status)
	assert.Empty(t, s.Token())
	assert.Nil(t, s.CurrentUser())
	_, ok := storedToken(t, kv)
	assert.False(t, ok, "el token inválido no queda guardado")
}

func TestInitialize_FalloDeRedTambienTerminaAnonima(t *testing.T) {
	fake := newFakeAuthAPI()
	fake.userErr = &domain.APIError{Kind: domain.KindNetwork, Err: errors.New("connection refused")}
	s, kv := newSession(t, fake)
	require.NoError(t, kv.Set(context.Background(), ports.KeyAuthToken, "3|x"))

	assert.Equal(t, entity.SessionAnonymous, s.Initialize(context.Background()))
	_, ok := storedToken(t, kv)
	assert.False(t, ok)
}

func TestInitialize_JWTVencidoNoConsultaAlServidor(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tok, err := gjwt.NewWithClaims(gjwt.SigningMethodHS256, gjwt.RegisteredClaims{
		ExpiresAt: gjwt.NewNumericDate(now.Add(-time.Hour)),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	fake := newFakeAuthAPI()
	s, kv := newSession(t, fake)
	s.SetClock(func() time.Time { return now })
	require.NoError(t, kv.Set(context.Background(), ports.KeyAuthToken, tok))

	assert.Equal(t, entity.SessionAnonymous, s.Initialize(context.Background()))
	assert.Zero(t, fake.count("user"))
	_, ok := storedToken(t, kv)
	assert.False(t, ok)
}

func TestLogin_ExitoGuardaToken(t *testing.T) {
	fake := newFakeAuthAPI()
	fake.loginResp = &dto.AuthResponse{Token: "1|nuevo", User: entity.User{ID: 1, Role: entity.RoleUser}}
	s, kv := newSession(t, fake)

	user, err := s.Login(context.Background(), dto.LoginRequest{Username: "juan", Password: "secreto"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, entity.SessionAuthenticated, s.Status())
	assert.False(t, s.IsAdmin())
	v, ok := storedToken(t, kv)
	assert.True(t, ok)
	assert.Equal(t, "1|nuevo", v)
}

func TestLogin_CredencialesIncorrectasMensajeGeneral(t *testing.T) {
	fake := newFakeAuthAPI()
	fake.loginErr = &domain.APIError{Kind: domain.KindAuth, Status: 401, Message: "Unauthenticated."}
	s, _ := newSession(t, fake)

	_, err := s.Login(context.Background(), dto.LoginRequest{Username: "juan", Password: "malaclave"})

	var fe *domain.FormError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, auth.MsgLoginFailed, fe.General)
	assert.Equal(t, entity.SessionAnonymous, s.Status())
	assert.Equal(t, fe, s.Errors())
}

func TestRegister_ErroresDelServidorReemplazanLosAnteriores(t *testing.T) {
	fake := newFakeAuthAPI()
	s, _ := newSession(t, fake)

	fake.registerErr = &domain.APIError{Kind: domain.KindValidation, Status: 422, Fields: map[string]string{"email": "El email ya está registrado."}}
	_, err := s.Register(context.Background(), dto.RegisterRequest{Name: "Ana"})
	require.Error(t, err)
	assert.Contains(t, s.Errors().Fields, "email")

	fake.registerErr = &domain.APIError{Kind: domain.KindValidation, Status: 422, Fields: map[string]string{"username": "El usuario ya existe."}}
	_, err = s.Register(context.Background(), dto.RegisterRequest{Name: "Ana"})
	require.Error(t, err)

	fields := s.Errors().Fields
	assert.Equal(t, domain.FieldErrors{"username": "El usuario ya existe."}, fields, "no se mezclan con los anteriores")
}

func TestRegister_ExitoAutentica(t *testing.T) {
	fake := newFakeAuthAPI()
	s, _ := newSession(t, fake)

	user, err := s.Register(context.Background(), dto.RegisterRequest{Name: "Ana", Username: "ana"})
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
	assert.Equal(t, "9|reg", s.Token())
	assert.Nil(t, s.Errors())
}

func TestLogout_IdempotenteAunqueFalleElServidor(t *testing.T) {
	fake := newFakeAuthAPI()
	fake.loginResp = &dto.AuthResponse{Token: "1|t", User: entity.User{ID: 1}}
	fake.logoutErr = &domain.APIError{Kind: domain.KindNetwork}
	s, kv := newSession(t, fake)
	logouts := 0
	s.OnLogout(func() { logouts++ })

	_, err := s.Login(context.Background(), dto.LoginRequest{Username: "juan", Password: "secreto"})
	require.NoError(t, err)

	s.Logout(context.Background())
	s.Logout(context.Background())

	assert.Equal(t, entity.SessionAnonymous, s.Status())
	assert.Equal(t, 1, fake.count("logout"), "sin token el segundo logout no llama al servidor")
	assert.Equal(t, 2, logouts)
	_, ok := storedToken(t, kv)
	assert.False(t, ok)
}

func TestForceLogout_401DeCualquierEndpointCierraSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":4,"name":"Rosa","role":"user"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Unauthenticated."}`))
		}
	}))
	t.Cleanup(srv.Close)

	client := api.New(api.Options{BaseURL: srv.URL}, nil, nil)
	kv := storage.NewMemoryStore()
	s := auth.NewSessionManager(client, kv, nil, nil)
	client.UseSession(s)
	require.NoError(t, kv.Set(context.Background(), ports.KeyAuthToken, "4|ok"))

	require.Equal(t, entity.SessionAuthenticated, s.Initialize(context.Background()))

	_, err := client.ListOrders(context.Background())
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.Equal(t, entity.SessionAnonymous, s.Status())
	assert.Empty(t, s.Token())
	_, ok := storedToken(t, kv)
	assert.False(t, ok)
}
