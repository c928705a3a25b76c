// helpers/token.go
package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Locals keys yang di-set AuthJWT middleware.
const (
	LocUserID   = "user_id"
	LocUsername = "username"
	LocName     = "name"
	LocRole     = "role"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "pelanggan"
)

// GetUserIDFromToken: id principal (admin atau pelanggan) dari Locals.
func GetUserIDFromToken(c *fiber.Ctx) (int64, error) {
	v, ok := c.Locals(LocUserID).(int64)
	if !ok || v <= 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return v, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return v
	}
	return ""
}

func GetUsernameFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUsername).(string); ok {
		return v
	}
	return ""
}

func GetNameFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocName).(string); ok {
		return v
	}
	return ""
}
