package http

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/maturin/inventario-api/internal/domain"
	"github.com/maturin/inventario-api/pkg/jwt"
)

// Locals keys para UserID y Rol en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// TokenVerifier valida un token y devuelve sus claims (implementado por *jwt.Manager).
type TokenVerifier interface {
	Parse(token string) (*jwt.Claims, error)
}

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y Rol a c.Locals.
// Falta de header → MISSING_TOKEN; formato, firma o expiración inválidos → INVALID_TOKEN.
func AuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return errMissingToken
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return errInvalidToken
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return errMissingToken
		}
		claims, err := verifier.Parse(tokenString)
		if err != nil || claims.UserID == "" {
			return errInvalidToken
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Rol)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe ir después de AuthMiddleware;
// sin identidad en el contexto también responde 403.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" || !slices.Contains(roles, GetRole(c)) {
			return domain.ErrForbidden
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
