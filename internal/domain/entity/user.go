package entity

import "time"

// User representa un usuario del sistema (pertenece a un Tenant y tiene un Role).
type User struct {
	ID           int64
	TenantID     int64
	RoleID       int64
	BranchID     *int64 // sucursal asignada; nil = todas las sucursales
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
