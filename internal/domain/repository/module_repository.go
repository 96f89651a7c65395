package repository

import (
	"context"

	"github.com/puntoventa/backpos-api/internal/domain/entity"
)

// ModuleRepository define el puerto de lectura del catálogo global de módulos.
// El catálogo es inmutable desde este servicio; solo lectura.
type ModuleRepository interface {
	// List devuelve el catálogo completo ordenado por display_order.
	List(ctx context.Context) ([]*entity.Module, error)
	GetByID(ctx context.Context, id int64) (*entity.Module, error)
}
