package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/Inventario-cli/internal/application/dto"
	"github.com/jhoicas/Inventario-cli/internal/application/ports"
	"github.com/jhoicas/Inventario-cli/internal/domain"
	"github.com/jhoicas/Inventario-cli/internal/domain/entity"
)

// SellerUseCase administración de los vendedores de la empresa.
type SellerUseCase struct {
	gw ports.Gateway
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(gw ports.Gateway) *SellerUseCase {
	return &SellerUseCase{gw: gw}
}

// List trae los vendedores de la empresa del usuario autenticado.
func (uc *SellerUseCase) List(ctx context.Context) ([]entity.Seller, error) {
	var out []entity.Seller
	if err := uc.gw.Do(ctx, http.MethodGet, "/users/sellers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registra un vendedor y devuelve la lista refetcheada.
func (uc *SellerUseCase) Create(ctx context.Context, req dto.CreateSellerRequest) ([]entity.Seller, error) {
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.DNI == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.gw.Do(ctx, http.MethodPost, "/users/sellers", req, nil); err != nil {
		return nil, err
	}
	return uc.List(ctx)
}

// Update modifica un vendedor y devuelve la lista refetcheada.
func (uc *SellerUseCase) Update(ctx context.Context, id int64, req dto.UpdateSellerRequest) ([]entity.Seller, error) {
	if err := uc.gw.Do(ctx, http.MethodPatch, fmt.Sprintf("/users/sellers/%d", id), req, nil); err != nil {
		return nil, err
	}
	return uc.List(ctx)
}

// Delete elimina un vendedor y devuelve la lista refetcheada.
func (uc *SellerUseCase) Delete(ctx context.Context, id int64) ([]entity.Seller, error) {
	if err := uc.gw.Do(ctx, http.MethodDelete, fmt.Sprintf("/users/sellers/%d", id), nil, nil); err != nil {
		return nil, err
	}
	return uc.List(ctx)
}
