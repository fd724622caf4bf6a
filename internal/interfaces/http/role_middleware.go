package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/estoque-api/internal/application/dto"
)

// RequireRole devuelve un middleware que autoriza solo a los roles listados.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 MISSING_ROLE → el token no trae claim de rol (token legacy o corrupto).
//   - 403 FORBIDDEN    → rol presente pero no autorizado para la ruta.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "rol sin permiso para esta operación",
		})
	}
}
