package entity

import "time"

// Seller vendedor asociado a una empresa (lo administra el dueño de la tienda).
type Seller struct {
	ID               int64     `json:"id"`
	RoleID           int64     `json:"role_id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	LastNamePaternal string    `json:"last_name_paternal"`
	LastNameMaternal string    `json:"last_name_maternal"`
	DNI              string    `json:"dni"`
	BirthDate        string    `json:"birth_date"`
	Gender           string    `json:"gender"` // MASCULINO | FEMENINO
	Status           string    `json:"status"` // ACTIVE | INACTIVE
	Phone            string    `json:"phone,omitempty"`
	Address          string    `json:"address,omitempty"`
	CompanyID        *int64    `json:"company_id,omitempty"`
	Role             Role      `json:"role"`
	Company          *Company  `json:"company,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Profile datos extendidos del usuario autenticado (GET /profile).
type Profile struct {
	ID               int64  `json:"id"`
	Email            string `json:"email"`
	FirstName        string `json:"first_name"`
	LastNamePaternal string `json:"last_name_paternal"`
	LastNameMaternal string `json:"last_name_maternal"`
	DNI              string `json:"dni"`
	DNIVerifier      string `json:"dni_verifier"`
	BirthDate        string `json:"birth_date"`
	Gender           string `json:"gender"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	ProfileImage     string `json:"profile_image"`
}
