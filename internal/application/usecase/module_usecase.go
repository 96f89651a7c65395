package usecase

import (
	"context"

	"github.com/puntoventa/backpos-api/internal/application/dto"
	"github.com/puntoventa/backpos-api/internal/domain/repository"
)

// ModuleUseCase expone el catálogo global de módulos (solo lectura).
type ModuleUseCase struct {
	repo repository.ModuleRepository
}

// NewModuleUseCase construye el caso de uso del catálogo.
func NewModuleUseCase(repo repository.ModuleRepository) *ModuleUseCase {
	return &ModuleUseCase{repo: repo}
}

// List devuelve el catálogo completo en orden de despliegue.
func (uc *ModuleUseCase) List(ctx context.Context) ([]*dto.ModuleResponse, error) {
	modules, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ModuleResponse, 0, len(modules))
	for _, m := range modules {
		out = append(out, &dto.ModuleResponse{
			ID:           m.ID,
			Name:         m.Name,
			Route:        m.Route,
			DisplayOrder: m.DisplayOrder,
		})
	}
	return out, nil
}
