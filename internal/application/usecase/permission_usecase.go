package usecase

import (
	"context"
	"fmt"

	"github.com/puntoventa/backpos-api/internal/application/dto"
	"github.com/puntoventa/backpos-api/internal/domain"
	"github.com/puntoventa/backpos-api/internal/domain/entity"
	"github.com/puntoventa/backpos-api/internal/domain/repository"
)

// PermissionUseCase gestiona la matriz de permisos por (tenant, rol).
type PermissionUseCase struct {
	roleRepo   repository.RoleRepository
	moduleRepo repository.ModuleRepository
	permRepo   repository.PermissionRepository
	userRepo   repository.UserRepository
}

// NewPermissionUseCase construye el caso de uso con sus puertos.
func NewPermissionUseCase(roleRepo repository.RoleRepository, moduleRepo repository.ModuleRepository, permRepo repository.PermissionRepository, userRepo repository.UserRepository) *PermissionUseCase {
	return &PermissionUseCase{roleRepo: roleRepo, moduleRepo: moduleRepo, permRepo: permRepo, userRepo: userRepo}
}

// GetMatrix devuelve la matriz completa del rol en el orden del catálogo.
// El rol debe pertenecer al tenant; si no, ErrRoleNotFound (sin revelar si el
// rol existe bajo otro tenant).
func (uc *PermissionUseCase) GetMatrix(ctx context.Context, tenantID, roleID int64) (*dto.MatrixResponse, error) {
	role, err := uc.roleRepo.GetByIDAndTenant(ctx, roleID, tenantID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}
	modules, err := uc.moduleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	perms, err := uc.permRepo.GetMatrix(ctx, tenantID, roleID)
	if err != nil {
		return nil, err
	}
	return buildMatrix(roleID, modules, perms), nil
}

// ReplaceAll valida el payload completo y sustituye la matriz del rol en una
// sola transacción. Si cualquier fila es inválida (módulo inexistente o
// duplicado) no se escribe nada y la matriz anterior queda intacta.
func (uc *PermissionUseCase) ReplaceAll(ctx context.Context, tenantID, roleID int64, in dto.ReplacePermissionsRequest) (*dto.MatrixResponse, error) {
	role, err := uc.roleRepo.GetByIDAndTenant(ctx, roleID, tenantID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}
	modules, err := uc.moduleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[int64]*entity.Module, len(modules))
	for _, m := range modules {
		known[m.ID] = m
	}

	// Validación completa antes de tocar la base: todo-o-nada.
	seen := make(map[int64]bool, len(in.Permissions))
	rows := make([]*entity.Permission, 0, len(in.Permissions))
	for _, p := range in.Permissions {
		if known[p.ModuleID] == nil {
			return nil, fmt.Errorf("%w: módulo %d no existe en el catálogo", domain.ErrValidation, p.ModuleID)
		}
		if seen[p.ModuleID] {
			return nil, fmt.Errorf("%w: módulo %d repetido en el payload", domain.ErrValidation, p.ModuleID)
		}
		seen[p.ModuleID] = true
		rows = append(rows, &entity.Permission{
			TenantID:  tenantID,
			RoleID:    roleID,
			ModuleID:  p.ModuleID,
			CanView:   p.CanView,
			CanCreate: p.CanCreate,
			CanEdit:   p.CanEdit,
			CanDelete: p.CanDelete,
		})
	}

	if err := uc.permRepo.ReplaceAll(ctx, tenantID, roleID, rows); err != nil {
		return nil, err
	}
	perms, err := uc.permRepo.GetMatrix(ctx, tenantID, roleID)
	if err != nil {
		return nil, err
	}
	return buildMatrix(roleID, modules, perms), nil
}

// HasPermission informa si el usuario (vía su rol) puede ejecutar la acción
// sobre el módulo identificado por su ruta. Devuelve false sin error cuando la
// fila no existe o no concede la acción; error solo ante fallos de
// infraestructura. Un usuario fuera del tenant nunca tiene permiso.
func (uc *PermissionUseCase) HasPermission(ctx context.Context, tenantID, subjectID int64, moduleRoute, action string) (bool, error) {
	user, err := uc.userRepo.GetByID(ctx, subjectID)
	if err != nil {
		return false, err
	}
	if user == nil || user.TenantID != tenantID || !user.Active {
		return false, nil
	}
	modules, err := uc.moduleRepo.List(ctx)
	if err != nil {
		return false, err
	}
	var moduleID int64
	for _, m := range modules {
		if m.Route == moduleRoute {
			moduleID = m.ID
			break
		}
	}
	if moduleID == 0 {
		return false, nil
	}
	perms, err := uc.permRepo.GetMatrix(ctx, tenantID, user.RoleID)
	if err != nil {
		return false, err
	}
	for _, p := range perms {
		if p.ModuleID != moduleID {
			continue
		}
		switch action {
		case entity.ActionView:
			return p.CanView, nil
		case entity.ActionCreate:
			return p.CanCreate, nil
		case entity.ActionEdit:
			return p.CanEdit, nil
		case entity.ActionDelete:
			return p.CanDelete, nil
		}
		return false, nil
	}
	return false, nil
}

// buildMatrix ordena las filas según el display_order del catálogo y las
// enriquece con nombre y ruta del módulo.
func buildMatrix(roleID int64, modules []*entity.Module, perms []*entity.Permission) *dto.MatrixResponse {
	byModule := make(map[int64]*entity.Permission, len(perms))
	for _, p := range perms {
		byModule[p.ModuleID] = p
	}
	out := &dto.MatrixResponse{RoleID: roleID, Permissions: make([]dto.MatrixRow, 0, len(perms))}
	for _, m := range modules {
		p, ok := byModule[m.ID]
		if !ok {
			continue
		}
		out.Permissions = append(out.Permissions, dto.MatrixRow{
			ModuleID:   m.ID,
			ModuleName: m.Name,
			Route:      m.Route,
			CanView:    p.CanView,
			CanCreate:  p.CanCreate,
			CanEdit:    p.CanEdit,
			CanDelete:  p.CanDelete,
		})
	}
	return out
}
