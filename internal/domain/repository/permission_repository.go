package repository

import (
	"context"

	"github.com/puntoventa/backpos-api/internal/domain/entity"
)

// PermissionRepository define el puerto de persistencia de la matriz de permisos.
type PermissionRepository interface {
	// GetMatrix devuelve la matriz completa de (tenant, rol) ordenada por el
	// display_order del catálogo de módulos. Snapshot consistente: nunca se
	// observa una escritura parcial de ReplaceAll.
	GetMatrix(ctx context.Context, tenantID, roleID int64) ([]*entity.Permission, error)
	// ReplaceAll sustituye la matriz completa de (tenant, rol) en una sola
	// transacción: o queda la matriz nueva entera o queda la anterior intacta.
	// Dos llamadas concurrentes sobre el mismo (tenant, rol) se serializan.
	ReplaceAll(ctx context.Context, tenantID, roleID int64, rows []*entity.Permission) error
}
