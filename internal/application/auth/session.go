package auth

import (
	"context"
	"sync"
	"time"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/ports"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/pkg/jwt"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/pkg/logger"
)

// Mensajes generales cuando el backend no envía uno utilizable.
const (
	MsgLoginFailed    = "Usuario o contraseña incorrectos"
	MsgRegisterFailed = "No se pudo completar el registro. Intente nuevamente"
)

var _ ports.SessionHooks = (*SessionManager)(nil)

// SessionManager dueño de la identidad del usuario actual y del token.
// Hay una sola instancia por proceso; se construye en main y se inyecta.
//
// Nunca mantiene el mutex durante una llamada de red: el cliente HTTP puede
// invocar ForceLogout desde dentro de cualquier llamada.
type SessionManager struct {
	api ports.AuthAPI
	kv  ports.KeyValueStore
	log *logger.Logger
	obs ports.Observer
	now func() time.Time

	mu       sync.RWMutex
	status   entity.SessionStatus
	user     *entity.User
	token    string
	errors   *domain.FormError
	onLogout []func()
}

// NewSessionManager construye la sesión en estado uninitialized.
func NewSessionManager(api ports.AuthAPI, kv ports.KeyValueStore, log *logger.Logger, obs ports.Observer) *SessionManager {
	if log == nil {
		log = logger.Nop()
	}
	if obs == nil {
		obs = ports.NopObserver{}
	}
	return &SessionManager{
		api:    api,
		kv:     kv,
		log:    log.Named("session"),
		obs:    obs,
		now:    time.Now,
		status: entity.SessionUninitialized,
	}
}

// SetClock reemplaza el reloj usado para detectar tokens JWT vencidos.
func (s *SessionManager) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// OnLogout registra fn para ejecutarse cada vez que la sesión se cierra
// (logout explícito o forzado).
func (s *SessionManager) OnLogout(fn func()) {
	s.mu.Lock()
	s.onLogout = append(s.onLogout, fn)
	s.mu.Unlock()
}

// ── Ciclo de vida ─────────────────────────────────────────────────────────────

// Initialize restaura la sesión desde el token guardado. Cualquier fallo
// (token vencido o inválido, red caída) termina en anonymous y borra el token.
func (s *SessionManager) Initialize(ctx context.Context) entity.SessionStatus {
	s.mu.Lock()
	s.status = entity.SessionLoading
	now := s.now
	s.mu.Unlock()

	token, ok, err := s.kv.Get(ctx, ports.KeyAuthToken)
	if err != nil {
		s.log.Warn().Err(err).Msg("no se pudo leer el token guardado")
	}
	if err != nil || !ok || token == "" {
		s.setAnonymous()
		return entity.SessionAnonymous
	}

	if jwt.Expired(token, now()) {
		s.log.Info().Msg("token guardado vencido; se descarta sin consultar al servidor")
		s.clearLocal(ctx)
		return entity.SessionAnonymous
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.log.Info().Err(err).Msg("token guardado rechazado; sesión anónima")
		s.clearLocal(ctx)
		return entity.SessionAnonymous
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// un ForceLogout concurrente pudo vaciar el token mientras tanto
	if s.token != token {
		s.status = entity.SessionAnonymous
		return s.status
	}
	s.user = user
	s.status = entity.SessionAuthenticated
	s.errors = nil
	s.log.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("sesión restaurada")
	return s.status
}

// Login envía credenciales ya validadas por el llamador. En caso de fallo
// devuelve *domain.FormError listo para mostrar y la sesión queda anónima.
func (s *SessionManager) Login(ctx context.Context, in dto.LoginRequest) (*entity.User, error) {
	out, err := s.api.Login(ctx, in.Username, in.Password)
	if err != nil {
		return nil, s.fail(err, MsgLoginFailed)
	}
	return s.authenticate(ctx, out), nil
}

// Register crea la cuenta e inicia sesión. Los errores del servidor reemplazan
// por completo a los anteriores.
func (s *SessionManager) Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	out, err := s.api.Register(ctx, in)
	if err != nil {
		return nil, s.fail(err, MsgRegisterFailed)
	}
	return s.authenticate(ctx, out), nil
}

// Logout avisa al servidor (ignorando el resultado) y limpia siempre el estado local.
// Es idempotente.
func (s *SessionManager) Logout(ctx context.Context) {
	if s.Token() != "" {
		if err := s.api.Logout(ctx); err != nil {
			s.log.Debug().Err(err).Msg("logout remoto falló; se ignora")
		}
	}
	s.clearLocal(ctx)
	s.log.Info().Msg("sesión cerrada")
}

// ForceLogout cierra la sesión sin llamar al servidor. Lo usa el cliente HTTP
// ante cualquier 401.
func (s *SessionManager) ForceLogout(reason string) {
	had := s.Token() != ""
	s.clearLocal(context.Background())
	if had {
		s.obs.ForcedLogout(reason)
		s.log.Warn().Str("reason", reason).Msg("sesión cerrada por el servidor")
	}
}

// ── Lectura ───────────────────────────────────────────────────────────────────

// Token credencial vigente; vacío si no hay sesión.
func (s *SessionManager) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionManager) Status() entity.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// CurrentUser copia del usuario actual, o nil.
func (s *SessionManager) CurrentUser() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	u.Addresses = append([]entity.Address(nil), s.user.Addresses...)
	return &u
}

func (s *SessionManager) IsAuthenticated() bool {
	return s.Status() == entity.SessionAuthenticated
}

func (s *SessionManager) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status == entity.SessionAuthenticated && s.user.IsAdmin()
}

// Errors último error de login/registro, o nil.
func (s *SessionManager) Errors() *domain.FormError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errors
}

func (s *SessionManager) ClearErrors() {
	s.mu.Lock()
	s.errors = nil
	s.mu.Unlock()
}

// Snapshot estado completo para la vista.
func (s *SessionManager) Snapshot() dto.SessionResponse {
	return dto.SessionResponse{
		Status: s.Status(),
		User:   s.CurrentUser(),
		Errors: s.Errors(),
	}
}

// ── Internos ──────────────────────────────────────────────────────────────────

func (s *SessionManager) authenticate(ctx context.Context, out *dto.AuthResponse) *entity.User {
	if err := s.kv.Set(ctx, ports.KeyAuthToken, out.Token); err != nil {
		// la sesión sigue válida en memoria; solo no sobrevivirá a un reinicio
		s.log.Error().Err(err).Msg("no se pudo guardar el token")
	}
	user := out.User

	s.mu.Lock()
	s.token = out.Token
	s.user = &user
	s.status = entity.SessionAuthenticated
	s.errors = nil
	s.mu.Unlock()

	s.log.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("sesión iniciada")
	return s.CurrentUser()
}

func (s *SessionManager) fail(err error, fallback string) error {
	fe := domain.FormErrorFrom(err, fallback)

	s.mu.Lock()
	s.errors = fe
	if s.status != entity.SessionAuthenticated {
		s.status = entity.SessionAnonymous
	}
	s.mu.Unlock()

	s.log.Info().Err(err).Msg("autenticación rechazada")
	return fe
}

func (s *SessionManager) setAnonymous() {
	s.mu.Lock()
	s.status = entity.SessionAnonymous
	s.mu.Unlock()
}

// clearLocal borra token y usuario en memoria y en el almacenamiento.
func (s *SessionManager) clearLocal(ctx context.Context) {
	if err := s.kv.Delete(ctx, ports.KeyAuthToken); err != nil {
		s.log.Error().Err(err).Msg("no se pudo borrar el token guardado")
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.errors = nil
	s.status = entity.SessionAnonymous
	hooks := append([]func(){}, s.onLogout...)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}
