package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/puntoventa/backpos-api/internal/application/dto"
	"github.com/puntoventa/backpos-api/pkg/rolecatalog"
)

// RequireRole autoriza solo a los roles del conjunto permitido. Los requisitos
// se aceptan como nombres ("gerente", "manager") o como ordinales canónicos
// (rolecatalog.Admin, 3); ambas formas pasan por la misma tabla de alias y se
// comportan igual. Debe montarse DESPUÉS de AuthMiddleware.
func RequireRole(allowed ...any) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "claims no encontrados en el contexto"})
		}
		ordinal := claims.Ordinal()
		if !ordinal.Valid() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin rol válido"})
		}
		if !rolecatalog.Allows(ordinal, allowed...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a esta ruta"})
		}
		return c.Next()
	}
}
