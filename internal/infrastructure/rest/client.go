// Package rest implementa el gateway HTTP hacia el backend de la plataforma.
// Es el único punto de la aplicación que habla net/http: adjunta el bearer
// token en cada petición y aplica la intercepción global de 401.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-cli/internal/application/ports"
	"github.com/jhoicas/Inventario-cli/internal/domain"
	"github.com/jhoicas/Inventario-cli/pkg/config"
	"github.com/jhoicas/Inventario-cli/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa el puerto Gateway.
var _ ports.Gateway = (*Client)(nil)

// Rutas excluidas de la intercepción de 401: en login y registro un 401
// significa "credenciales malas", no "sesión expirada".
var authExemptPaths = []string{"/auth/login", "/auth/register"}

// Client gateway autenticado hacia el backend REST.
// Un 401 en cualquier ruta no exenta limpia el TokenStore y dispara el hook
// OnUnauthorized una sola vez por respuesta; es el único punto de
// re-autenticación forzada de toda la aplicación.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	store          ports.TokenStore
	log            *logger.Logger
	onUnauthorized func()
}

// New construye el gateway. baseURL se toma de la configuración y se lee una
// sola vez; el timeout lo impone el http.Client subyacente.
func New(cfg config.APIConfig, store ports.TokenStore, log *logger.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		store:      store,
		log:        log,
	}
}

// SetOnUnauthorized registra el hook invocado al recibir un 401 en una ruta
// no exenta (normalmente el logout forzado del SessionManager).
func (c *Client) SetOnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// Do emite una petición contra el backend. body se serializa a JSON si no es
// nil; out se deserializa desde la respuesta si no es nil. Todo fallo se
// devuelve como *domain.APIError.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return domain.NewAPIError(0, "serializar petición: "+err.Error())
		}
		reader = bytes.NewReader(raw)
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return domain.NewAPIError(0, "crear petición: "+err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if token, ok := c.store.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("fallo de red")
		if ctx.Err() != nil {
			return domain.NewAPIError(0, "petición cancelada o con timeout")
		}
		return domain.NewAPIError(0, "no se pudo contactar al servidor")
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return domain.NewAPIError(resp.StatusCode, "leer respuesta: "+err.Error())
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("petición al backend")

	if resp.StatusCode == http.StatusUnauthorized && !isAuthExempt(path) {
		// Sesión inválida o expirada: purgar la credencial y avisar al
		// SessionManager, venga de donde venga la petición.
		_ = c.store.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return domain.NewAPIError(resp.StatusCode, extractMessage(rawBody, "la sesión expiró, vuelve a iniciar sesión"))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.NewAPIError(resp.StatusCode, extractMessage(rawBody, http.StatusText(resp.StatusCode)))
	}

	if out != nil && len(rawBody) > 0 {
		if err := json.Unmarshal(rawBody, out); err != nil {
			return domain.NewAPIError(resp.StatusCode, "respuesta malformada del servidor")
		}
	}
	return nil
}

// isAuthExempt indica si la ruta queda fuera de la intercepción global de 401.
func isAuthExempt(path string) bool {
	for _, p := range authExemptPaths {
		if path == p {
			return true
		}
	}
	return false
}

// errorBody forma habitual de los cuerpos de error del backend. message puede
// ser un string o una lista de mensajes de validación.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

// extractMessage normaliza el mensaje de error del cuerpo a un solo string
// mostrable; las listas de validación se unen con "; ". Si no hay cuerpo
// utilizable devuelve fallback.
func extractMessage(raw []byte, fallback string) string {
	if len(raw) == 0 {
		return fallback
	}
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil {
		return fallback
	}
	if len(eb.Message) > 0 {
		var single string
		if err := json.Unmarshal(eb.Message, &single); err == nil && single != "" {
			return single
		}
		var list []string
		if err := json.Unmarshal(eb.Message, &list); err == nil && len(list) > 0 {
			return strings.Join(list, "; ")
		}
	}
	if eb.Error != "" {
		return eb.Error
	}
	return fallback
}

// Get es azúcar sobre Do para peticiones GET.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post es azúcar sobre Do para peticiones POST.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Patch es azúcar sobre Do para peticiones PATCH.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, body, out)
}

// Delete es azúcar sobre Do para peticiones DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// String descripción corta para logs de arranque.
func (c *Client) String() string {
	return fmt.Sprintf("rest.Client{%s}", c.baseURL)
}
