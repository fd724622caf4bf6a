package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
	"github.com/estoquepro/estoque-api/pkg/jwt"
)

// Locals keys en Fiber después del AuthMiddleware.
const (
	LocalUserID   = "user_id"
	LocalRole     = "role"
	LocalJTI      = "jti"
	LocalTokenExp = "token_exp"
)

// revocationChecker es el contrato mínimo que necesita el middleware para
// rechazar tokens revocados. Lo implementa *auth.Revoker; la interfaz evita
// el import circular.
type revocationChecker interface {
	IsRevoked(jti string) bool
}

// AuthMiddleware valida el Bearer Token JWT, rechaza tokens revocados y
// extrae user_id, role y jti a c.Locals.
func AuthMiddleware(jwtSecret string, revoked revocationChecker) fiber.Handler {
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
		token, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if revoked != nil && revoked.IsRevoked(token.JTI) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "REVOKED_TOKEN", Message: "sesión cerrada"})
		}
		c.Locals(LocalUserID, token.UserID)
		c.Locals(LocalRole, token.Role)
		c.Locals(LocalJTI, token.JTI)
		c.Locals(LocalTokenExp, token.ExpiresAt)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetJTI devuelve el jti del token actual.
func GetJTI(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalJTI).(string)
	return s
}

// GetTokenExpiry devuelve la expiración del token actual.
func GetTokenExpiry(c *fiber.Ctx) time.Time {
	t, _ := c.Locals(LocalTokenExp).(time.Time)
	return t
}

// currentUser carga la entidad del usuario autenticado. nil si el usuario
// del token ya no existe (fue eliminado después de emitirlo).
func currentUser(c *fiber.Ctx, users repository.UserRepository) (*entity.User, error) {
	id := GetUserID(c)
	if id == "" {
		return nil, nil
	}
	return users.GetByID(id)
}
