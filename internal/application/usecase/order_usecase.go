package usecase

import (
	"context"
	"net/http"

	"github.com/jhoicas/Inventario-cli/internal/application/dto"
	"github.com/jhoicas/Inventario-cli/internal/application/ports"
	"github.com/jhoicas/Inventario-cli/internal/domain"
	"github.com/jhoicas/Inventario-cli/internal/domain/entity"
)

// OrderUseCase pedidos: los del cliente autenticado y los recibidos por la
// empresa sobre sus productos.
type OrderUseCase struct {
	gw ports.Gateway
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(gw ports.Gateway) *OrderUseCase {
	return &OrderUseCase{gw: gw}
}

// ListMine trae los pedidos del cliente autenticado.
func (uc *OrderUseCase) ListMine(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	if err := uc.gw.Do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListForCompany trae los pedidos recibidos sobre los productos de la empresa.
func (uc *OrderUseCase) ListForCompany(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	if err := uc.gw.Do(ctx, http.MethodGet, "/products/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListVisible trae los pedidos que corresponden al rol: los propios para el
// cliente, los recibidos sobre los productos de la empresa para los demás.
// Esto elige la fuente de datos de la pantalla, no es una decisión de acceso:
// el acceso a la ruta ya lo resolvió navigation.CanAccess.
func (uc *OrderUseCase) ListVisible(ctx context.Context, role string) ([]entity.Order, error) {
	if role == entity.RoleClient {
		return uc.ListMine(ctx)
	}
	return uc.ListForCompany(ctx)
}

// Create registra un pedido y devuelve la lista refetcheada del cliente.
func (uc *OrderUseCase) Create(ctx context.Context, req dto.CreateOrderRequest) ([]entity.Order, error) {
	if req.ProductID == 0 || req.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.gw.Do(ctx, http.MethodPost, "/orders", req, nil); err != nil {
		return nil, err
	}
	return uc.ListMine(ctx)
}
