package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/puntoventa/backpos-api/internal/application/dto"
	"github.com/puntoventa/backpos-api/pkg/rolecatalog"
	"github.com/puntoventa/backpos-api/pkg/token"
)

// LocalClaims clave de c.Locals donde AuthMiddleware deja los claims verificados.
const LocalClaims = "claims"

// tokenVerifier es el contrato mínimo que necesita el middleware.
// Lo implementa *token.Service; la interfaz permite fakes en tests.
type tokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// AuthMiddleware valida el Bearer Token y deja los claims en c.Locals.
// Fallo de autenticación = 401 siempre, sin ejecutar nada aguas abajo.
// No se loguea el token ni el contenido de los claims.
func AuthMiddleware(verifier tokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := verifier.Verify(tokenString)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_EXPIRED", Message: "token expirado"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// GetClaims devuelve los claims verificados del contexto (después de AuthMiddleware).
func GetClaims(c *fiber.Ctx) *token.Claims {
	claims, _ := c.Locals(LocalClaims).(*token.Claims)
	return claims
}

// GetTenantID devuelve el tenant del token, o 0 si no hay claims.
func GetTenantID(c *fiber.Ctx) int64 {
	if claims := GetClaims(c); claims != nil {
		return claims.TenantID
	}
	return 0
}

// GetSubjectID devuelve el usuario del token, o 0 si no hay claims.
func GetSubjectID(c *fiber.Ctx) int64 {
	if claims := GetClaims(c); claims != nil {
		return claims.SubjectID
	}
	return 0
}

// GetOrdinal devuelve el rol canónico del token, o 0 si no hay claims.
func GetOrdinal(c *fiber.Ctx) rolecatalog.Ordinal {
	if claims := GetClaims(c); claims != nil {
		return claims.Ordinal()
	}
	return 0
}
