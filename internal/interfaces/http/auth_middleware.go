package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sistemaarroz/ingenio-api/internal/application/dto"
	"github.com/sistemaarroz/ingenio-api/pkg/jwt"
)

// Locals keys para los datos de sesión en Fiber.
const (
	LocalUserID      = "user_id"
	LocalIngenioID   = "ingenio_id"
	LocalNivelAcceso = "nivel_acceso"
)

// AuthMiddleware valida el Bearer Token JWT y deja userID, ingenioID y nivel
// de acceso en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
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
		userID, ingenioID, nivelAcceso, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalIngenioID, ingenioID)
		c.Locals(LocalNivelAcceso, nivelAcceso)
		return c.Next()
	}
}

// RequireNivel permite el paso solo a los niveles de acceso listados.
// Debe ir después de AuthMiddleware.
func RequireNivel(niveles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actual := GetNivelAcceso(c)
		for _, nivel := range niveles {
			if actual == nivel {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "nivel de acceso insuficiente"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetIngenioID devuelve el IngenioID del contexto (después del middleware de auth).
func GetIngenioID(c *fiber.Ctx) string {
	return localString(c, LocalIngenioID)
}

// GetNivelAcceso devuelve el nivel de acceso del contexto.
func GetNivelAcceso(c *fiber.Ctx) string {
	return localString(c, LocalNivelAcceso)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
