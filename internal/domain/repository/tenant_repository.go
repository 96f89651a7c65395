package repository

import (
	"context"

	"github.com/puntoventa/backpos-api/internal/domain/entity"
)

// TenantRepository define el puerto de persistencia para Tenant (DIP).
type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	GetByID(ctx context.Context, id int64) (*entity.Tenant, error)
}
