package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"taskbar/backend/bridge"
	"taskbar/backend/utils"
)

type StatsController struct {
	Bridge *bridge.Bridge
}

func NewStatsController(b *bridge.Bridge) *StatsController {
	return &StatsController{Bridge: b}
}

// [+] GetDailyStats godoc
// @Summary Дневные сводки
// @Description Сводки за последние N дней, сначала новые
// @Tags stats
// @Produce json
// @Param days query int false "Количество дней" default(7)
// @Success 200 {object} utils.SuccessResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /stats/daily [get]
func (sc *StatsController) GetDailyStats(c *fiber.Ctx) error {
	rows, err := sc.Bridge.DailyStats(c.QueryInt("days", 7))
	if err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, rows)
}

// GetItemHistory возвращает историю одного элемента
func (sc *StatsController) GetItemHistory(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.BadRequest(c, "Invalid item ID")
	}
	rows, err := sc.Bridge.ItemHistory(id, c.QueryInt("days", 30))
	if err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, rows)
}

// GetTotalStats возвращает общую статистику
func (sc *StatsController) GetTotalStats(c *fiber.Ctx) error {
	total, err := sc.Bridge.TotalStats()
	if err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, total)
}

// [+] SaveSnapshot godoc
// @Summary Сохранить снимок за сегодня
// @Description Записывает итоги дня и строки по каждому элементу в историю
// @Tags stats
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /stats/snapshot [post]
func (sc *StatsController) SaveSnapshot(c *fiber.Ctx) error {
	summary, err := sc.Bridge.SaveDailySnapshot()
	if err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, summary)
}

// ExportCSV выгружает таблицу сводок в CSV
func (sc *StatsController) ExportCSV(c *fiber.Ctx) error {
	var input pathInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	n, err := sc.Bridge.ExportCSV(input.Path, input.Days)
	if err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, fiber.Map{"path": input.Path, "rows": n})
}
