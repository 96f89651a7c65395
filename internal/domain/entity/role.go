package entity

import "time"

// Role es un rol definido por el tenant. El nombre es texto libre; el ordinal
// canónico (1..5) se deriva en pkg/rolecatalog, nunca se persiste aquí.
// Dos tenants pueden tener roles con el mismo nombre sin compartir nada.
type Role struct {
	ID          int64
	TenantID    int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
