package usecase

import (
	"context"
	"net/http"

	"github.com/jhoicas/Inventario-cli/internal/application/dto"
	"github.com/jhoicas/Inventario-cli/internal/application/ports"
	"github.com/jhoicas/Inventario-cli/internal/domain"
	"github.com/jhoicas/Inventario-cli/internal/domain/entity"
)

// ProfileUseCase perfil del usuario autenticado, catálogo de roles y registro
// de cuentas nuevas.
type ProfileUseCase struct {
	gw ports.Gateway
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(gw ports.Gateway) *ProfileUseCase {
	return &ProfileUseCase{gw: gw}
}

// Get trae el perfil extendido del usuario autenticado.
func (uc *ProfileUseCase) Get(ctx context.Context) (*entity.Profile, error) {
	var out entity.Profile
	if err := uc.gw.Do(ctx, http.MethodGet, "/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifica el perfil y devuelve el perfil refetcheado.
func (uc *ProfileUseCase) Update(ctx context.Context, req dto.UpdateProfileRequest) (*entity.Profile, error) {
	if err := uc.gw.Do(ctx, http.MethodPatch, "/profile", req, nil); err != nil {
		return nil, err
	}
	return uc.Get(ctx)
}

// Roles trae el catálogo de roles (para el formulario de registro).
func (uc *ProfileUseCase) Roles(ctx context.Context) ([]entity.Role, error) {
	var out []entity.Role
	if err := uc.gw.Do(ctx, http.MethodGet, "/roles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Register crea una cuenta nueva. No inicia sesión: el flujo vuelve al login.
func (uc *ProfileUseCase) Register(ctx context.Context, req dto.RegisterRequest) error {
	if req.Email == "" || req.Password == "" {
		return domain.ErrInvalidInput
	}
	if len(req.Password) < 8 {
		return domain.NewAPIError(http.StatusBadRequest, "password debe tener al menos 8 caracteres")
	}
	return uc.gw.Do(ctx, http.MethodPost, "/auth/register", req, nil)
}
