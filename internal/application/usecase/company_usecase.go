// Package usecase contiene los casos de uso CRUD del cliente. Todos hablan
// con el backend a través del puerto Gateway y, tras cada mutación exitosa,
// refetchean la lista afectada para que la vista se re-renderice con datos
// frescos (nunca se recurre a recargar la aplicación).
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

// CompanyUseCase administración de empresas (área de admin) y de la tienda
// propia (área de empresa).
type CompanyUseCase struct {
	gw ports.Gateway
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(gw ports.Gateway) *CompanyUseCase {
	return &CompanyUseCase{gw: gw}
}

// List trae todas las empresas registradas (solo admin).
func (uc *CompanyUseCase) List(ctx context.Context) ([]entity.Company, error) {
	var out []entity.Company
	if err := uc.gw.Do(ctx, http.MethodGet, "/company", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// My trae la empresa del usuario autenticado.
func (uc *CompanyUseCase) My(ctx context.Context) (*entity.Company, error) {
	var out entity.Company
	if err := uc.gw.Do(ctx, http.MethodGet, "/company/my", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registra una empresa y devuelve la lista refetcheada.
func (uc *CompanyUseCase) Create(ctx context.Context, req dto.CreateCompanyRequest) ([]entity.Company, error) {
	if req.Name == "" || req.Sector == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.gw.Do(ctx, http.MethodPost, "/company/create", req, nil); err != nil {
		return nil, err
	}
	return uc.List(ctx)
}

// Update modifica una empresa y devuelve la lista refetcheada.
func (uc *CompanyUseCase) Update(ctx context.Context, id int64, req dto.UpdateCompanyRequest) ([]entity.Company, error) {
	if err := uc.gw.Do(ctx, http.MethodPatch, fmt.Sprintf("/company/%d", id), req, nil); err != nil {
		return nil, err
	}
	return uc.List(ctx)
}

// Delete elimina una empresa y devuelve la lista refetcheada.
func (uc *CompanyUseCase) Delete(ctx context.Context, id int64) ([]entity.Company, error) {
	if err := uc.gw.Do(ctx, http.MethodDelete, fmt.Sprintf("/company/%d", id), nil, nil); err != nil {
		return nil, err
	}
	return uc.List(ctx)
}

// UpdateMy modifica la tienda propia y devuelve la empresa refetcheada.
func (uc *CompanyUseCase) UpdateMy(ctx context.Context, id int64, req dto.UpdateCompanyRequest) (*entity.Company, error) {
	if err := uc.gw.Do(ctx, http.MethodPatch, fmt.Sprintf("/company/%d", id), req, nil); err != nil {
		return nil, err
	}
	return uc.My(ctx)
}
