package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/puntoventa/backpos-api/internal/application/dto"
)

// permissionChecker es el contrato mínimo que necesita el middleware para
// consultar la matriz. Lo implementa *usecase.PermissionUseCase; el uso de
// interfaz evita el import circular.
type permissionChecker interface {
	HasPermission(ctx context.Context, tenantID, subjectID int64, moduleRoute, action string) (bool, error)
}

// RequirePermission devuelve un middleware que verifica en la matriz de
// permisos si el rol del usuario puede ejecutar la acción sobre el módulo.
// Debe usarse DESPUÉS de AuthMiddleware y RequireTenant.
//
// Comportamiento:
//   - 403 Forbidden → la fila del módulo no existe o no concede la acción.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - 401 si no hay claims en el contexto (AuthMiddleware debería haberlos puesto).
func RequirePermission(moduleRoute, action string, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "claims no encontrados en el contexto",
			})
		}

		allowed, err := checker.HasPermission(c.Context(), claims.TenantID, claims.SubjectID, moduleRoute, action)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}

		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "sin permiso de '" + action + "' sobre el módulo '" + moduleRoute + "'",
			})
		}

		return c.Next()
	}
}
