package entity

import "time"

// Tenant representa una empresa cliente. Todo dato de negocio (usuarios, roles,
// permisos) pertenece exactamente a un tenant; nunca se comparte entre tenants.
type Tenant struct {
	ID        int64
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
