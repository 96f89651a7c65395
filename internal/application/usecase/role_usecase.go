package usecase

import (
	"context"
	"time"

	"github.com/puntoventa/backpos-api/internal/application/dto"
	"github.com/puntoventa/backpos-api/internal/domain/entity"
	"github.com/puntoventa/backpos-api/internal/domain/repository"
	"github.com/puntoventa/backpos-api/pkg/rolecatalog"
)

// RoleUseCase gestiona los roles definidos por cada tenant.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso de roles.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// Create crea un rol del tenant. El nombre es texto libre; la respuesta incluye
// el ordinal canónico derivado para que el front sepa a qué nivel quedó.
func (uc *RoleUseCase) Create(ctx context.Context, tenantID int64, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	now := time.Now()
	role := &entity.Role{
		TenantID:    tenantID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// ListByTenant lista los roles del tenant con su ordinal canónico.
func (uc *RoleUseCase) ListByTenant(ctx context.Context, tenantID int64) ([]*dto.RoleResponse, error) {
	roles, err := uc.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, toRoleResponse(r))
	}
	return out, nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{
		ID:          r.ID,
		TenantID:    r.TenantID,
		Name:        r.Name,
		Description: r.Description,
		Ordinal:     int(rolecatalog.Canonicalize(r.Name)),
		CreatedAt:   r.CreatedAt,
	}
}
