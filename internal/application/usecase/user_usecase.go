package usecase

import (
	"context"

	"github.com/puntoventa/backpos-api/internal/application/dto"
	"github.com/puntoventa/backpos-api/internal/domain/entity"
	"github.com/puntoventa/backpos-api/internal/domain/repository"
)

// UserUseCase lecturas de usuarios, siempre scoped por tenant.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID dentro del tenant. Devuelve (nil, nil) si
// no existe o pertenece a otro tenant.
func (uc *UserUseCase) GetByID(ctx context.Context, tenantID, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.TenantID != tenantID {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// ListByTenant lista los usuarios del tenant con paginación.
func (uc *UserUseCase) ListByTenant(ctx context.Context, tenantID int64, page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.repo.ListByTenant(ctx, tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, entityToUserResponse(u))
	}
	return out, nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		TenantID:  u.TenantID,
		RoleID:    u.RoleID,
		BranchID:  u.BranchID,
		Email:     u.Email,
		Name:      u.Name,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
