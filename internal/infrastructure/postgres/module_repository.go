package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/puntoventa/backpos-api/internal/domain/entity"
	"github.com/puntoventa/backpos-api/internal/domain/repository"
)

var _ repository.ModuleRepository = (*ModuleRepo)(nil)

// ModuleRepo lectura del catálogo global de módulos sobre PostgreSQL.
type ModuleRepo struct {
	pool *pgxpool.Pool
}

// NewModuleRepository construye el adaptador de lectura del catálogo.
func NewModuleRepository(pool *pgxpool.Pool) *ModuleRepo {
	return &ModuleRepo{pool: pool}
}

// List devuelve el catálogo completo ordenado por display_order.
func (r *ModuleRepo) List(ctx context.Context) ([]*entity.Module, error) {
	query := `SELECT id, name, route, display_order FROM modules ORDER BY display_order, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	defer rows.Close()
	var list []*entity.Module
	for rows.Next() {
		var m entity.Module
		if err := rows.Scan(&m.ID, &m.Name, &m.Route, &m.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// GetByID obtiene un módulo por ID. Devuelve (nil, nil) si no existe.
func (r *ModuleRepo) GetByID(ctx context.Context, id int64) (*entity.Module, error) {
	query := `SELECT id, name, route, display_order FROM modules WHERE id = $1`
	var m entity.Module
	err := r.pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Route, &m.DisplayOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get module: %w", err)
	}
	return &m, nil
}
