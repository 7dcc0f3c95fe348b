package controllers

import (
	"github.com/gofiber/fiber/v2"

	"taskbar/backend/bridge"
	"taskbar/backend/utils"
)

type SettingsController struct {
	Bridge *bridge.Bridge
}

func NewSettingsController(b *bridge.Bridge) *SettingsController {
	return &SettingsController{Bridge: b}
}

func (sc *SettingsController) GetSettings(c *fiber.Ctx) error {
	return utils.OK(c, sc.Bridge.Settings())
}

func (sc *SettingsController) SaveSettings(c *fiber.Ctx) error {
	settings := map[string]interface{}{}
	if err := c.BodyParser(&settings); err != nil {
		return utils.BadRequest(c, "Settings must be a JSON object")
	}
	if err := sc.Bridge.SaveSettings(settings); err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, settings)
}
