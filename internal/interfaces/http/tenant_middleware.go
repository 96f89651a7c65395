package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/puntoventa/backpos-api/internal/application/dto"
)

// RequireTenant compara el tenant del token contra el tenant objetivo del
// request (path param :tenantId y, si viene, el query param tenant_id).
// Debe montarse DESPUÉS de AuthMiddleware. Ante cualquier discrepancia corta
// con 403 antes de que corra el handler: ni siquiera se consulta si el recurso
// del otro tenant existe.
func RequireTenant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "claims no encontrados en el contexto"})
		}

		raw := c.Params("tenantId")
		if raw == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tenantId requerido en la ruta"})
		}
		target, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tenantId inválido"})
		}
		if target != claims.TenantID {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "TENANT_MISMATCH", Message: "no puede operar sobre otra empresa"})
		}

		// Un tenant_id en query que no coincida también es intento de cruce.
		if q := c.Query("tenant_id"); q != "" {
			qid, err := strconv.ParseInt(q, 10, 64)
			if err != nil || qid != claims.TenantID {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "TENANT_MISMATCH", Message: "no puede operar sobre otra empresa"})
			}
		}

		return c.Next()
	}
}
