package controllers

import (
	"github.com/gofiber/fiber/v2"

	"taskbar/backend/bridge"
	"taskbar/backend/utils"
)

type TasksController struct {
	Bridge *bridge.Bridge
}

func NewTasksController(b *bridge.Bridge) *TasksController {
	return &TasksController{Bridge: b}
}

// [+] GetTasks godoc
// @Summary Задачи на сегодня
// @Description Прогресс каждого отслеживаемого элемента относительно начала дня
// @Tags tasks
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /tasks [get]
func (tc *TasksController) GetTasks(c *fiber.Ctx) error {
	return utils.OK(c, tc.Bridge.Tasks())
}

// GetSelection возвращает отслеживаемые элементы
func (tc *TasksController) GetSelection(c *fiber.Ctx) error {
	return utils.OK(c, fiber.Map{"ids": tc.Bridge.Selection()})
}

// [+] SaveSelection godoc
// @Summary Заменить выбор
// @Description Сохраняет id без повторов и вложенных элементов
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Список id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /selection [put]
func (tc *TasksController) SaveSelection(c *fiber.Ctx) error {
	var input struct {
		IDs []int64 `json:"ids"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	stored, err := tc.Bridge.SaveSelection(input.IDs)
	if err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, fiber.Map{"ids": stored})
}
