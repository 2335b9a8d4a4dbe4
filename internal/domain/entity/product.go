package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitOfMeasure unidad de medida de un producto (ej. "Kilogramo", "KG").
type UnitOfMeasure struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	CompanyID    int64  `json:"company_id,omitempty"`
}

// ProductGroup agrupación/categoría de productos de una empresa.
type ProductGroup struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CompanyID int64  `json:"company_id,omitempty"`
}

// Product representa un producto/SKU tal como lo reporta el backend.
// Las cantidades monetarias y de stock se manejan como decimal.
type Product struct {
	ID        int64            `json:"id"`
	SKU       string           `json:"sku"`
	Name      string           `json:"name"`
	Slug      string           `json:"slug"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	MinStock  decimal.Decimal  `json:"min_stock"`
	Stock     decimal.Decimal  `json:"stock"`
	UnitID    int64            `json:"unit_id"`
	GroupID   int64            `json:"group_id"`
	UserID    int64            `json:"user_id"`
	CompanyID int64            `json:"company_id"`
	Unit      *UnitOfMeasure   `json:"unit,omitempty"`
	Group     *ProductGroup    `json:"group,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
