package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio del cliente (sin dependencias externas).
var (
	ErrNoSession       = errors.New("no hay sesión activa")
	ErrSessionExpired  = errors.New("la sesión expiró")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrRouteNotAllowed = errors.New("ruta no permitida para el rol actual")
)

// Kind clasifica los fallos del backend para decidir cómo presentarlos al usuario.
type Kind string

const (
	// KindUnauthenticated token ausente o inválido: fuerza logout global y vuelta al login.
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	// KindValidation 4xx con mensajes por campo: se muestran junto al formulario.
	KindValidation Kind = "VALIDATION"
	// KindNetwork fallo de transporte: notificación genérica reintentable.
	KindNetwork Kind = "NETWORK"
	// KindServer 5xx: notificación genérica de fallo.
	KindServer Kind = "SERVER"
)

// APIError error tipado del backend: estado HTTP (0 si no hubo respuesta),
// clasificación y mensaje legible ya normalizado (las listas de mensajes de
// validación se unen en un solo string).
type APIError struct {
	Status  int
	Kind    Kind
	Message string
}

// Error implementa error.
func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// NewAPIError construye un APIError clasificando por estado HTTP.
// 401 -> Unauthenticated, otro 4xx -> Validation, 5xx -> Server, 0 -> Network.
func NewAPIError(status int, message string) *APIError {
	var kind Kind
	switch {
	case status == 0:
		kind = KindNetwork
	case status == 401:
		kind = KindUnauthenticated
	case status >= 400 && status < 500:
		kind = KindValidation
	default:
		kind = KindServer
	}
	return &APIError{Status: status, Kind: kind, Message: message}
}

// IsUnauthenticated indica si err es un APIError 401 (sesión inválida o credenciales malas).
func IsUnauthenticated(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindUnauthenticated
}

// IsNetwork indica si err es un fallo de transporte (sin respuesta HTTP).
func IsNetwork(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindNetwork
}
