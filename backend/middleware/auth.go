package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskbar/backend/utils"
)

// Guard сообщает, включена ли защита моста и каким секретом подписаны токены.
type Guard interface {
	AuthRequired() bool
	TokenSecret() string
}

// AuthMiddleware пропускает запросы без проверки, пока пароль не задан.
func AuthMiddleware(guard Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !guard.AuthRequired() {
			return c.Next()
		}
		if _, err := utils.ExtractBridgeToken(c, guard.TokenSecret()); err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}
