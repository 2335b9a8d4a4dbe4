// Package session implementa la máquina de estados de autenticación del
// cliente. El Manager es el único dueño y escritor de la tupla
// (estado, usuario, token); el resto de la aplicación la consume vía
// Snapshot y Subscribe.
//
// Transiciones válidas:
//
//	Uninitialized -> Loading                    (arranque, siempre)
//	Loading       -> Authenticated              (token + whoami OK)
//	Loading       -> Anonymous                  (sin token, o whoami falla)
//	Anonymous     -> Loading -> Authenticated   (login exitoso)
//	Authenticated -> Anonymous                  (logout explícito o 401 global)
//
// Loading nunca se reentra desde Authenticated salvo por un ciclo completo
// logout -> login.
package session

import (
	"context"
	"net/http"
	"sync"

	"github.com/jhoicas/Inventario-cli/internal/application/dto"
	"github.com/jhoicas/Inventario-cli/internal/application/ports"
	"github.com/jhoicas/Inventario-cli/internal/domain/entity"
	"github.com/jhoicas/Inventario-cli/pkg/logger"
)

// State estado de la sesión del cliente.
type State string

const (
	StateUninitialized State = "UNINITIALIZED"
	StateLoading       State = "LOADING"
	StateAuthenticated State = "AUTHENTICATED"
	StateAnonymous     State = "ANONYMOUS"
)

// Snapshot vista inmutable del estado actual de la sesión.
type Snapshot struct {
	State State
	User  *entity.User
}

// RoleName nombre de rol del usuario autenticado ("" si no hay usuario).
// Con "" toda decisión de navegación falla cerrada.
func (s Snapshot) RoleName() string {
	if s.State != StateAuthenticated || s.User == nil {
		return ""
	}
	return s.User.RoleName()
}

// Listener recibe cada transición de estado.
type Listener func(Snapshot)

// Manager máquina de estados de sesión. Único escritor del TokenStore; el
// gateway solo lo lee (y lo purga en la intercepción global de 401).
type Manager struct {
	gw    ports.Gateway
	store ports.TokenStore
	log   *logger.Logger

	mu        sync.Mutex
	state     State
	user      *entity.User
	listeners []Listener
}

// NewManager construye el manager en estado Uninitialized.
func NewManager(gw ports.Gateway, store ports.TokenStore, log *logger.Logger) *Manager {
	return &Manager{
		gw:    gw,
		store: store,
		log:   log,
		state: StateUninitialized,
	}
}

// Snapshot devuelve el estado actual.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, User: m.user}
}

// Subscribe registra un listener que recibirá cada transición de estado.
func (m *Manager) Subscribe(fn Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// setState aplica la transición y notifica fuera del lock.
func (m *Manager) setState(state State, user *entity.User) {
	m.mu.Lock()
	m.state = state
	m.user = user
	snap := Snapshot{State: state, User: user}
	listeners := make([]Listener, len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// CheckSession revalida la sesión desde el token persistido. Idempotente y
// seguro ante invocaciones solapadas: la última transición en completarse
// gana, y una respuesta cuyo token ya no es el activo se descarta.
//
// Sin token almacenado pasa a Anonymous sin emitir ninguna llamada de red.
// Con token, pasa a Loading y consulta GET /users/me; cualquier fallo
// (token inválido, red caída, respuesta malformada) se trata igual:
// degradar a Anonymous y purgar el token.
func (m *Manager) CheckSession(ctx context.Context) {
	m.mu.Lock()
	if m.state == StateAuthenticated {
		// Sesión ya establecida: no se reentra Loading desde Authenticated.
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	token, ok := m.store.Get()
	if !ok {
		m.setState(StateAnonymous, nil)
		return
	}

	m.setState(StateLoading, nil)

	var me dto.MeResponse
	err := m.gw.Do(ctx, http.MethodGet, "/users/me", nil, &me)
	if err != nil {
		m.log.Warn().Err(err).Msg("revalidación de sesión fallida")
		if !m.tokenStillActive(token) {
			// El fallo es de una petición obsoleta: un login concurrente ya
			// instaló otro token y no debe purgarse ni degradarse la sesión.
			return
		}
		_ = m.store.Clear()
		m.setState(StateAnonymous, nil)
		return
	}

	if !m.tokenStillActive(token) {
		// Un logout ganó la carrera mientras la petición estaba en vuelo:
		// no resucitar la sesión con una respuesta obsoleta.
		return
	}

	user := me.User
	m.log.Info().Str("email", user.Email).Str("role", user.RoleName()).Msg("sesión restaurada")
	m.setState(StateAuthenticated, &user)
}

// Login autentica con email y password. En éxito persiste el token, intenta
// traer el perfil completo (con fallback al usuario que vino en el login) y
// pasa a Authenticated. En fallo el estado queda Anonymous y el error se
// propaga al caller para mostrarlo junto al formulario.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	var resp dto.AuthResponse
	err := m.gw.Do(ctx, http.MethodPost, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		m.setState(StateAnonymous, nil)
		return err
	}

	token := resp.BearerToken()
	if err := m.store.Set(token); err != nil {
		m.setState(StateAnonymous, nil)
		return err
	}

	m.setState(StateLoading, nil)

	// Refetch del perfil completo; si falla se usa el resumen del login.
	user := resp.User
	var me dto.MeResponse
	if err := m.gw.Do(ctx, http.MethodGet, "/users/me", nil, &me); err == nil && me.User.ID != 0 {
		user = me.User
	}

	if !m.tokenStillActive(token) {
		return nil
	}

	m.log.Info().Str("email", user.Email).Str("role", user.RoleName()).Msg("login exitoso")
	m.setState(StateAuthenticated, &user)
	return nil
}

// Logout cierra la sesión localmente: purga el token y pasa a Anonymous.
// Siempre tiene éxito; no espera ningún round-trip al backend. Idempotente.
func (m *Manager) Logout() {
	_ = m.store.Clear()
	m.setState(StateAnonymous, nil)
}

// ForceLogout es el hook que el gateway invoca al interceptar un 401 en una
// ruta no exenta (el gateway ya purgó el token). Degrada a Anonymous para
// que la UI vuelva al punto de entrada anónimo sin acción del usuario.
func (m *Manager) ForceLogout() {
	m.log.Warn().Msg("sesión invalidada por el backend (401)")
	_ = m.store.Clear()
	m.setState(StateAnonymous, nil)
}

// tokenStillActive indica si el token que autorizó una petición en vuelo
// sigue siendo el activo en el store.
func (m *Manager) tokenStillActive(token string) bool {
	current, ok := m.store.Get()
	return ok && current == token
}
