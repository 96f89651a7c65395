package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/puntoventa/backpos-api/internal/domain"
	"github.com/puntoventa/backpos-api/internal/domain/entity"
	"github.com/puntoventa/backpos-api/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo persistencia de la matriz de permisos sobre PostgreSQL.
type PermissionRepo struct {
	pool *pgxpool.Pool
}

// NewPermissionRepository construye el adaptador de la matriz de permisos.
func NewPermissionRepository(pool *pgxpool.Pool) *PermissionRepo {
	return &PermissionRepo{pool: pool}
}

// lockMatrixQuery toma un advisory lock transaccional derivado de
// (tenant, rol). Serializa los ReplaceAll sobre el mismo par sin bloquear
// pares distintos; el lock se libera solo en COMMIT/ROLLBACK.
const lockMatrixQuery = `SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || $2::text, 0))`

// GetMatrix devuelve la matriz del rol ordenada por el catálogo de módulos.
// Al ser una sola sentencia, lee un snapshot consistente: nunca ve un
// ReplaceAll a medias.
func (r *PermissionRepo) GetMatrix(ctx context.Context, tenantID, roleID int64) ([]*entity.Permission, error) {
	query := `
		SELECT p.tenant_id, p.role_id, p.module_id, p.can_view, p.can_create, p.can_edit, p.can_delete
		FROM permissions p
		JOIN modules m ON m.id = p.module_id
		WHERE p.tenant_id = $1 AND p.role_id = $2
		ORDER BY m.display_order, m.id`
	rows, err := r.pool.Query(ctx, query, tenantID, roleID)
	if err != nil {
		return nil, fmt.Errorf("get permission matrix: %w", err)
	}
	defer rows.Close()
	var list []*entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.TenantID, &p.RoleID, &p.ModuleID, &p.CanView, &p.CanCreate, &p.CanEdit, &p.CanDelete); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ReplaceAll sustituye la matriz completa de (tenant, rol) en una transacción:
// advisory lock, DELETE de las filas actuales, INSERT del juego nuevo, COMMIT.
// Cualquier fallo intermedio (incluido un timeout del request) hace rollback y
// deja la matriz anterior como autoritativa.
func (r *PermissionRepo) ReplaceAll(ctx context.Context, tenantID, roleID int64, perms []*entity.Permission) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, lockMatrixQuery, tenantID, roleID); err != nil {
		return fmt.Errorf("lock permission matrix: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM permissions WHERE tenant_id = $1 AND role_id = $2`, tenantID, roleID); err != nil {
		return fmt.Errorf("delete permission matrix: %w", err)
	}

	if len(perms) > 0 {
		batch := &pgx.Batch{}
		for _, p := range perms {
			batch.Queue(`
				INSERT INTO permissions (tenant_id, role_id, module_id, can_view, can_create, can_edit, can_delete)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				p.TenantID, p.RoleID, p.ModuleID, p.CanView, p.CanCreate, p.CanEdit, p.CanDelete,
			)
		}
		br := tx.SendBatch(ctx, batch)
		for range perms {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				switch {
				case isForeignKeyViolation(err):
					// Módulo o rol borrado entre la validación y el insert.
					return fmt.Errorf("%w: referencia inexistente en la matriz", domain.ErrValidation)
				case isUniqueViolation(err):
					return fmt.Errorf("%w: fila duplicada en la matriz", domain.ErrConflict)
				}
				return fmt.Errorf("insert permission: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("close batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
