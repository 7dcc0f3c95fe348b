package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskbar/backend/bridge"
	"taskbar/backend/utils"
)

type AuthController struct {
	Bridge *bridge.Bridge
}

func NewAuthController(b *bridge.Bridge) *AuthController {
	return &AuthController{Bridge: b}
}

// [+] Login godoc
// @Summary Вход в мост
// @Description Обменивает пароль моста на JWT токен
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Пароль"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Passphrase string `json:"passphrase"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	token, err := ac.Bridge.Login(input.Passphrase)
	if errors.Is(err, bridge.ErrInvalidPassphrase) {
		return utils.Unauthorized(c, "Invalid credentials")
	}
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.OK(c, fiber.Map{
		"token":      token,
		"expires_in": int(bridge.TokenTTL.Seconds()),
	})
}
