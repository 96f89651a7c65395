package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/puntoventa/backpos-api/internal/application/dto"
	"github.com/puntoventa/backpos-api/internal/domain"
	"github.com/puntoventa/backpos-api/internal/domain/entity"
	"github.com/puntoventa/backpos-api/internal/domain/repository"
	"github.com/puntoventa/backpos-api/pkg/rolecatalog"
	"github.com/puntoventa/backpos-api/pkg/token"
)

// AuthUseCase casos de uso de autenticación: login y alta inicial (bootstrap).
type AuthUseCase struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	tenantRepo repository.TenantRepository
	tokens     *token.Service
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, tenantRepo repository.TenantRepository, tokens *token.Service) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, tenantRepo: tenantRepo, tokens: tokens}
}

// Login verifica email/password, deriva el rol canónico y emite la credencial.
//
// Regla de negocio: un usuario cuyo rol canonicaliza a super administrador
// (ordinal 1) se rechaza en esta ruta con ErrUnauthorized, sea cual sea el
// password. Ese rol solo entra por el login federado, fuera de este servicio.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	role, err := uc.roleRepo.GetByID(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}
	ordinal := rolecatalog.Canonicalize(role.Name)
	// El rechazo va antes de comparar el password: el resultado no debe
	// depender de si el password era correcto.
	if ordinal == rolecatalog.SuperAdmin {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	tok, err := uc.tokens.Issue(token.Identity{
		SubjectID:   user.ID,
		TenantID:    user.TenantID,
		RoleOrdinal: ordinal,
		BranchID:    user.BranchID,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: tok,
		User:  *toUserResponse(user),
	}, nil
}

// Bootstrap crea un tenant nuevo junto con su rol "Administrador" y su primer
// usuario. Es el único alta que no exige credencial previa.
func (uc *AuthUseCase) Bootstrap(ctx context.Context, in dto.BootstrapRequest) (*dto.BootstrapResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	tenant := &entity.Tenant{Name: in.TenantName, Active: true, CreatedAt: now, UpdatedAt: now}
	if err := uc.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	role := &entity.Role{
		TenantID:    tenant.ID,
		Name:        "Administrador",
		Description: "Rol administrador creado en el alta inicial",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		TenantID:     tenant.ID,
		RoleID:       role.ID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.BootstrapResponse{
		TenantID: tenant.ID,
		User:     *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
