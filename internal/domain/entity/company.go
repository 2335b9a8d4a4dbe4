package entity

import "time"

// Company representa una empresa/tienda registrada en la plataforma.
type Company struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	RUC         string    `json:"ruc,omitempty"`
	AdminID     int64     `json:"admin_id"`
	Sector      string    `json:"sector"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
