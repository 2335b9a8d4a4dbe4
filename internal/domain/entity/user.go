package entity

import "time"

// Nombres de rol que el backend reporta en role.name.
// "vendor" y "seller" comparten el área de empresa; la decisión de acceso
// siempre pasa por navigation.CanAccess, nunca por comparación directa.
const (
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
	RoleSeller = "seller"
	RoleClient = "client"
)

// Role nivel de capacidad de un usuario (id, nombre de máquina y alias visible).
type Role struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Alias string `json:"alias"`
}

// User identidad recibida del backend en login y en la revalidación de sesión.
// Nunca se muta localmente: solo se reemplaza al refetchear.
type User struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	LastNamePaternal string    `json:"last_name_paternal"`
	LastNameMaternal string    `json:"last_name_maternal"`
	Role             Role      `json:"role"`
	CompanyID        *int64    `json:"company_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FullName nombre completo para mostrar.
func (u User) FullName() string {
	name := u.FirstName
	if u.LastNamePaternal != "" {
		name += " " + u.LastNamePaternal
	}
	if u.LastNameMaternal != "" {
		name += " " + u.LastNameMaternal
	}
	return name
}

// RoleName devuelve el nombre de máquina del rol ("" si el usuario es cero).
func (u User) RoleName() string {
	return u.Role.Name
}
