package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID mengambil user_id dari Locals (diisi auth middleware).
// Return uuid.Nil + error fiber 401 jika tidak ada / tidak valid.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("user_id")
	if raw == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	switch v := raw.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		id, err := uuid.Parse(strings.TrimSpace(v))
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}
}

// GetUserRole mengambil role dari Locals ("" jika tidak ada).
func GetUserRole(c *fiber.Ctx) string {
	if role, ok := c.Locals("userRole").(string); ok {
		return role
	}
	return ""
}
