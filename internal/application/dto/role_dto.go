package dto

import "time"

// CreateRoleRequest entrada para crear un rol del tenant. El nombre es libre;
// el ordinal canónico se deriva, no se envía.
type CreateRoleRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// RoleResponse salida de un rol, con su ordinal canónico derivado (1..5).
type RoleResponse struct {
	ID          int64     `json:"id"`
	TenantID    int64     `json:"tenant_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Ordinal     int       `json:"ordinal"`
	CreatedAt   time.Time `json:"created_at"`
}
