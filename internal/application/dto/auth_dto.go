package dto

import "github.com/jhoicas/Inventario-cli/internal/domain/entity"

// LoginRequest body para POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest body para POST /auth/register.
type RegisterRequest struct {
	RoleID           int64  `json:"role_id"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	FirstName        string `json:"first_name"`
	LastNamePaternal string `json:"last_name_paternal"`
	LastNameMaternal string `json:"last_name_maternal"`
	DNI              string `json:"dni"`
	DNIVerifier      string `json:"dni_verifier,omitempty"`
	BirthDate        string `json:"birth_date"`
	Gender           string `json:"gender"` // MASCULINO | FEMENINO
}

// AuthResponse respuesta de login: usuario + bearer token.
// Algunos despliegues del backend devuelven el token como access_token.
type AuthResponse struct {
	User        entity.User `json:"user"`
	Token       string      `json:"token"`
	AccessToken string      `json:"accessToken,omitempty"`
}

// BearerToken devuelve el token sea cual sea el campo en que llegó.
func (r AuthResponse) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

// MeResponse respuesta de GET /users/me. El backend envuelve el usuario.
type MeResponse struct {
	User entity.User `json:"user"`
}
