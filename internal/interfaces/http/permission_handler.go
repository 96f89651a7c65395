package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/puntoventa/backpos-api/internal/application/dto"
	"github.com/puntoventa/backpos-api/internal/application/usecase"
	"github.com/puntoventa/backpos-api/internal/domain"
)

// PermissionHandler lectura y reemplazo masivo de la matriz de permisos.
type PermissionHandler struct {
	uc *usecase.PermissionUseCase
}

// NewPermissionHandler construye el handler de permisos.
func NewPermissionHandler(uc *usecase.PermissionUseCase) *PermissionHandler {
	return &PermissionHandler{uc: uc}
}

// GetMatrix godoc
// @Summary      Matriz de permisos de un rol
// @Tags         permissions
// @Produce      json
// @Param        tenantId  path  int  true  "ID del tenant"
// @Param        roleId    path  int  true  "ID del rol"
// @Success      200  {object}  dto.MatrixResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tenants/{tenantId}/roles/{roleId}/permissions [get]
func (h *PermissionHandler) GetMatrix(c *fiber.Ctx) error {
	roleID, err := strconv.ParseInt(c.Params("roleId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "roleId inválido"})
	}
	out, err := h.uc.GetMatrix(c.Context(), GetTenantID(c), roleID)
	if err != nil {
		return permissionError(c, err)
	}
	return c.JSON(out)
}

// Replace godoc
// @Summary      Reemplazo masivo de la matriz de un rol
// @Description  Sustituye la matriz completa en una sola transacción. Si alguna
// @Description  fila es inválida no se escribe nada y la matriz previa queda intacta.
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        tenantId  path  int                            true  "ID del tenant"
// @Param        roleId    path  int                            true  "ID del rol"
// @Param        body      body  dto.ReplacePermissionsRequest  true  "filas de la matriz"
// @Success      200  {object}  dto.MatrixResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tenants/{tenantId}/roles/{roleId}/permissions [put]
func (h *PermissionHandler) Replace(c *fiber.Ctx) error {
	roleID, err := strconv.ParseInt(c.Params("roleId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "roleId inválido"})
	}
	var in dto.ReplacePermissionsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "payload de permisos malformado"})
	}
	out, err := h.uc.ReplaceAll(c.Context(), GetTenantID(c), roleID, in)
	if err != nil {
		return permissionError(c, err)
	}
	return c.JSON(out)
}

// permissionError mapea los errores del caso de uso de permisos a HTTP.
func permissionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrRoleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ROLE_NOT_FOUND", Message: "el rol no existe"})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto al reemplazar la matriz, reintente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
