package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /products.
type CreateProductRequest struct {
	SKU      string           `json:"sku"`
	Name     string           `json:"name"`
	UnitID   int64            `json:"unit_id"`
	GroupID  int64            `json:"group_id"`
	MinStock decimal.Decimal  `json:"min_stock"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

// UpdateProductRequest body para PATCH /products/{id}. Campos nil no se envían.
type UpdateProductRequest struct {
	Name     *string          `json:"name,omitempty"`
	UnitID   *int64           `json:"unit_id,omitempty"`
	GroupID  *int64           `json:"group_id,omitempty"`
	MinStock *decimal.Decimal `json:"min_stock,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

// CreateCompanyRequest body para POST /company/create.
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	RUC         string `json:"ruc,omitempty"`
	Sector      string `json:"sector"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// UpdateCompanyRequest body para PATCH /company/{id}.
type UpdateCompanyRequest struct {
	Name        *string `json:"name,omitempty"`
	RUC         *string `json:"ruc,omitempty"`
	Sector      *string `json:"sector,omitempty"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

// CreateSellerRequest body para POST /users/sellers.
type CreateSellerRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	FirstName        string `json:"first_name"`
	LastNamePaternal string `json:"last_name_paternal"`
	LastNameMaternal string `json:"last_name_maternal"`
	DNI              string `json:"dni"`
	BirthDate        string `json:"birth_date"`
	Gender           string `json:"gender"`
}

// UpdateSellerRequest body para PATCH /users/sellers/{id}.
type UpdateSellerRequest struct {
	FirstName        *string `json:"first_name,omitempty"`
	LastNamePaternal *string `json:"last_name_paternal,omitempty"`
	LastNameMaternal *string `json:"last_name_maternal,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Address          *string `json:"address,omitempty"`
	Status           *string `json:"status,omitempty"`
}

// UpdateProfileRequest body para PATCH /profile.
type UpdateProfileRequest struct {
	FirstName        *string `json:"first_name,omitempty"`
	LastNamePaternal *string `json:"last_name_paternal,omitempty"`
	LastNameMaternal *string `json:"last_name_maternal,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Address          *string `json:"address,omitempty"`
}

// CreateOrderRequest body para POST /orders.
type CreateOrderRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}
