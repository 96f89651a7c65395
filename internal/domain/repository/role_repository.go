package repository

import (
	"context"

	"github.com/puntoventa/backpos-api/internal/domain/entity"
)

// RoleRepository define el puerto de persistencia para Role (DIP).
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, id int64) (*entity.Role, error)
	// GetByIDAndTenant devuelve (nil, nil) si el rol no existe O pertenece a
	// otro tenant; el caller no puede distinguir ambos casos.
	GetByIDAndTenant(ctx context.Context, id, tenantID int64) (*entity.Role, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]*entity.Role, error)
}
