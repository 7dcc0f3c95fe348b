package controllers

import (
	"github.com/gofiber/fiber/v2"

	"taskbar/backend/bridge"
	"taskbar/backend/models"
	"taskbar/backend/utils"
)

type HostController struct {
	Bridge *bridge.Bridge
}

func NewHostController(b *bridge.Bridge) *HostController {
	return &HostController{Bridge: b}
}

// [+] PushState godoc
// @Summary Передать состояние хоста
// @Description Дополнение хоста сообщает номер дня, дерево элементов и итоги повторений
// @Tags host
// @Accept json
// @Produce json
// @Param state body models.HostState true "Состояние хоста"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /host/state [put]
func (hc *HostController) PushState(c *fiber.Ctx) error {
	var st models.HostState
	if err := c.BodyParser(&st); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := hc.Bridge.PushHostState(st); err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, fiber.Map{"today": *st.Today})
}

// GetTree возвращает дерево элементов с количеством к выполнению
func (hc *HostController) GetTree(c *fiber.Ctx) error {
	return utils.OK(c, hc.Bridge.Tree())
}

// GetReviewTotals возвращает итоги повторений за сегодня
func (hc *HostController) GetReviewTotals(c *fiber.Ctx) error {
	return utils.OK(c, hc.Bridge.ReviewTotals())
}
