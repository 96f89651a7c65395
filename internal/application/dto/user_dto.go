package dto

import "time"

// LoginRequest entrada para login con email + password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token de sesión firmado y el usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// BootstrapRequest entrada para el alta inicial: crea el tenant y su primer
// usuario administrador en un solo paso. Único endpoint de escritura fuera del
// pipeline de autorización (no puede exigir credencial: aún no existe ninguna).
type BootstrapRequest struct {
	TenantName string `json:"tenant_name" validate:"required,min=1,max=200"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Name       string `json:"name" validate:"omitempty,max=200"`
}

// BootstrapResponse salida del alta inicial.
type BootstrapResponse struct {
	TenantID int64        `json:"tenant_id"`
	User     UserResponse `json:"user"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	TenantID  int64     `json:"tenant_id"`
	RoleID    int64     `json:"role_id"`
	BranchID  *int64    `json:"branch_id,omitempty"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
