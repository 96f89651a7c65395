package repository

import (
	"context"

	"github.com/puntoventa/backpos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las implementaciones devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmailAndTenant(ctx context.Context, email string, tenantID int64) (*entity.User, error)
	ListByTenant(ctx context.Context, tenantID int64, limit, offset int) ([]*entity.User, error)
}
