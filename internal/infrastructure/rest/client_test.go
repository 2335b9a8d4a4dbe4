package rest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-cli/internal/domain"
	"github.com/jhoicas/Inventario-cli/internal/infrastructure/rest"
	"github.com/jhoicas/Inventario-cli/internal/infrastructure/tokenstore"
	"github.com/jhoicas/Inventario-cli/pkg/config"
	"github.com/jhoicas/Inventario-cli/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// buildClient levanta un backend falso y construye el gateway apuntándole.
func buildClient(t *testing.T, handler http.Handler) (*rest.Client, *tokenstore.FileStore, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := tokenstore.NewFileStore(filepath.Join(t.TempDir(), "token"))
	client := rest.New(config.APIConfig{BaseURL: srv.URL, TimeoutSeconds: 5}, store, testLogger())
	return client, store, srv
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación de peticiones
// ──────────────────────────────────────────────────────────────────────────────

// Con token almacenado, toda petición lleva Authorization: Bearer <token>.
func TestDo_AdjuntaBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	client, store, _ := buildClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	require.NoError(t, store.Set("tok-123"))

	err := client.Do(context.Background(), http.MethodGet, "/products", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID, "cada petición lleva un X-Request-ID")
}

// Sin token almacenado no se envía header de autorización.
func TestDo_SinToken_NoEnviaAuthorization(t *testing.T) {
	var gotAuth string
	client, _, _ := buildClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/products", nil, nil))
	assert.Empty(t, gotAuth)
}

// ──────────────────────────────────────────────────────────────────────────────
// Intercepción global de 401
// ──────────────────────────────────────────────────────────────────────────────

// Un 401 en cualquier ruta no exenta purga el token y dispara el hook,
// sin importar qué componente emitió la petición.
func TestDo_401EnRutaProtegida_PurgaTokenYDisparaHook(t *testing.T) {
	client, store, _ := buildClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expirado"}`))
	}))
	require.NoError(t, store.Set("tok-expirado"))

	hookCalled := false
	client.SetOnUnauthorized(func() { hookCalled = true })

	err := client.Do(context.Background(), http.MethodGet, "/inventory/status", nil, nil)
	require.Error(t, err)
	assert.True(t, domain.IsUnauthenticated(err))
	assert.True(t, hookCalled, "el hook OnUnauthorized debe dispararse")

	_, ok := store.Get()
	assert.False(t, ok, "el token debe quedar purgado")
}

// En login y registro un 401 significa credenciales malas: no se purga el
// token ni se dispara el logout global.
func TestDo_401EnLoginYRegistro_NoIntercepta(t *testing.T) {
	for _, path := range []string{"/auth/login", "/auth/register"} {
		client, store, _ := buildClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"credenciales inválidas"}`))
		}))
		require.NoError(t, store.Set("tok-activo"))

		hookCalled := false
		client.SetOnUnauthorized(func() { hookCalled = true })

		err := client.Do(context.Background(), http.MethodPost, path, map[string]string{}, nil)
		require.Error(t, err, path)
		assert.False(t, hookCalled, "401 en %s no debe disparar el hook", path)

		token, ok := store.Get()
		assert.True(t, ok, "401 en %s no debe purgar el token", path)
		assert.Equal(t, "tok-activo", token)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de errores
// ──────────────────────────────────────────────────────────────────────────────

// El mensaje de error puede venir como string simple.
func TestDo_MensajeDeErrorSimple(t *testing.T) {
	client, _, _ := buildClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"el SKU ya existe"}`))
	}))

	err := client.Do(context.Background(), http.MethodPost, "/products", map[string]string{}, nil)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, domain.KindValidation, apiErr.Kind)
	assert.Equal(t, "el SKU ya existe", apiErr.Message)
}

// Una lista de mensajes de validación se une en un solo string mostrable.
func TestDo_ListaDeMensajes_SeUnen(t *testing.T) {
	client, _, _ := buildClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":["email es requerido","password muy corto"]}`))
	}))

	err := client.Do(context.Background(), http.MethodPost, "/products", map[string]string{}, nil)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "email es requerido; password muy corto", apiErr.Message)
}

// Un 5xx se clasifica como error de servidor con mensaje de respaldo.
func TestDo_ErrorDeServidor(t *testing.T) {
	client, _, _ := buildClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := client.Do(context.Background(), http.MethodGet, "/products", nil, nil)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, domain.KindServer, apiErr.Kind)
	assert.NotEmpty(t, apiErr.Message)
}

// Fallo de transporte: APIError con status 0 y clasificación de red.
func TestDo_FalloDeRed(t *testing.T) {
	store := tokenstore.NewFileStore(filepath.Join(t.TempDir(), "token"))
	// Puerto cerrado: nadie escucha.
	client := rest.New(config.APIConfig{BaseURL: "http://127.0.0.1:1", TimeoutSeconds: 1}, store, testLogger())

	err := client.Do(context.Background(), http.MethodGet, "/products", nil, nil)
	require.Error(t, err)
	assert.True(t, domain.IsNetwork(err))
}

// Una respuesta 200 con JSON malformado también es un APIError tipado.
func TestDo_RespuestaMalformada(t *testing.T) {
	client, _, _ := buildClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user": `)) // truncado
	}))

	var out map[string]any
	err := client.Do(context.Background(), http.MethodGet, "/users/me", nil, &out)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "malformada")
}
