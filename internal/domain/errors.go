package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrRoleNotFound       = errors.New("rol no encontrado")
	ErrTenantNotFound     = errors.New("empresa no encontrada")
	ErrModuleNotFound     = errors.New("módulo no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrValidation         = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrTenantMismatch     = errors.New("el recurso pertenece a otra empresa")
	ErrConflict           = errors.New("conflicto con el estado actual")
)
