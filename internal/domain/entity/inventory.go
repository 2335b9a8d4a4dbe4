package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados del stock de un producto. Son los literales que también
// muestra la UI, por eso van en español.
const (
	StatusSinStock  = "Sin Stock"
	StatusStockBajo = "Stock Bajo"
	StatusStockOK   = "Stock OK"
)

// Tipos de movimiento de inventario.
const (
	MovementIngreso = "INGRESO"
	MovementEgreso  = "EGRESO"
)

// InventoryStatusRow fila del reporte de estado de inventario que entrega
// GET /inventory/status. Estado se recalcula en el cliente en cada fetch;
// las filas nunca se mutan in place.
type InventoryStatusRow struct {
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Unidad      string          `json:"unidad"`
	Grupo       string          `json:"grupo"`
	StockMinimo decimal.Decimal `json:"stock_minimo"`
	StockActual decimal.Decimal `json:"stock_actual"`
	Estado      string          `json:"estado"`
}

// InventoryMovement movimiento de inventario registrado en el backend.
type InventoryMovement struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	Type         string          `json:"type"` // INGRESO | EGRESO
	Quantity     decimal.Decimal `json:"quantity"`
	MovementDate time.Time       `json:"movement_date"`
	Observations string          `json:"observations,omitempty"`
	UserID       int64           `json:"user_id"`
	CompanyID    int64           `json:"company_id"`
	CreatedAt    time.Time       `json:"created_at"`
}

// KardexEntry línea del kardex de un producto: movimiento con saldo corrido.
type KardexEntry struct {
	Fecha         time.Time       `json:"fecha"`
	Tipo          string          `json:"tipo"` // INGRESO | EGRESO
	Cantidad      decimal.Decimal `json:"cantidad"`
	Saldo         decimal.Decimal `json:"saldo"`
	Observaciones string          `json:"observaciones,omitempty"`
	RegistradoPor string          `json:"registrado_por"`
}

// ProductKardex kardex completo de un producto (ledger cronológico con saldo).
type ProductKardex struct {
	Producto struct {
		SKU    string `json:"sku"`
		Nombre string `json:"nombre"`
	} `json:"producto"`
	Kardex []KardexEntry `json:"kardex"`
}
