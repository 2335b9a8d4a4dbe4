package dto

import "github.com/shopspring/decimal"

// CreateMovementRequest body para POST /inventory/movements.
// MovementDate va en formato ISO-8601 (el backend espera un instante completo).
type CreateMovementRequest struct {
	ProductCode  string          `json:"product_code"`
	Type         string          `json:"type"` // INGRESO | EGRESO
	Quantity     decimal.Decimal `json:"quantity"`
	MovementDate string          `json:"movement_date"`
	Observations string          `json:"observations,omitempty"`
}

// MessageResponse respuesta genérica de mutaciones ({"message": "..."}).
type MessageResponse struct {
	Message string `json:"message"`
}
