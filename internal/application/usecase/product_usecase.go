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

// ProductUseCase catálogo de productos de la empresa más sus catálogos
// auxiliares (grupos y unidades de medida).
type ProductUseCase struct {
	gw ports.Gateway
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(gw ports.Gateway) *ProductUseCase {
	return &ProductUseCase{gw: gw}
}

// List trae los productos visibles para el usuario autenticado.
func (uc *ProductUseCase) List(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := uc.gw.Do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Groups trae los grupos de productos de la empresa.
func (uc *ProductUseCase) Groups(ctx context.Context) ([]entity.ProductGroup, error) {
	var out []entity.ProductGroup
	if err := uc.gw.Do(ctx, http.MethodGet, "/products/groups", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Units trae las unidades de medida de la empresa.
func (uc *ProductUseCase) Units(ctx context.Context) ([]entity.UnitOfMeasure, error) {
	var out []entity.UnitOfMeasure
	if err := uc.gw.Do(ctx, http.MethodGet, "/products/units", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registra un producto y devuelve la lista refetcheada.
func (uc *ProductUseCase) Create(ctx context.Context, req dto.CreateProductRequest) ([]entity.Product, error) {
	if req.SKU == "" || req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.gw.Do(ctx, http.MethodPost, "/products", req, nil); err != nil {
		return nil, err
	}
	return uc.List(ctx)
}

// Update modifica un producto y devuelve la lista refetcheada.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, req dto.UpdateProductRequest) ([]entity.Product, error) {
	if err := uc.gw.Do(ctx, http.MethodPatch, fmt.Sprintf("/products/%d", id), req, nil); err != nil {
		return nil, err
	}
	return uc.List(ctx)
}

// Delete elimina un producto y devuelve la lista refetcheada.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) ([]entity.Product, error) {
	if err := uc.gw.Do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil); err != nil {
		return nil, err
	}
	return uc.List(ctx)
}
