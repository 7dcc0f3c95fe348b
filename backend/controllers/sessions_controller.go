package controllers

import (
	"github.com/gofiber/fiber/v2"

	"taskbar/backend/bridge"
	"taskbar/backend/models"
	"taskbar/backend/utils"
)

type SessionsController struct {
	Bridge *bridge.Bridge
}

func NewSessionsController(b *bridge.Bridge) *SessionsController {
	return &SessionsController{Bridge: b}
}

// [+] GetSessions godoc
// @Summary Список сессий
// @Description Сессии с групповым прогрессом, активная сессия и папки
// @Tags sessions
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /sessions [get]
func (sc *SessionsController) GetSessions(c *fiber.Ctx) error {
	return utils.OK(c, sc.Bridge.Sessions())
}

// [+] UpsertSession godoc
// @Summary Создать или обновить сессию
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body models.Session true "Сессия"
// @Success 200 {object} utils.SuccessResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /sessions [post]
func (sc *SessionsController) UpsertSession(c *fiber.Ctx) error {
	var input models.Session
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	sess, err := sc.Bridge.UpsertSession(input)
	if err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, sess)
}

// DeleteSession удаляет сессию
func (sc *SessionsController) DeleteSession(c *fiber.Ctx) error {
	if err := sc.Bridge.DeleteSession(c.Params("id")); err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, fiber.Map{"id": c.Params("id")})
}

// ActivateSession заменяет выбор элементами сессии
func (sc *SessionsController) ActivateSession(c *fiber.Ctx) error {
	sess, err := sc.Bridge.ActivateSession(c.Params("id"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, sess)
}

// MoveToFolder переносит сессию в папку
func (sc *SessionsController) MoveToFolder(c *fiber.Ctx) error {
	var input struct {
		Folder string `json:"folder"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := sc.Bridge.MoveSessionToFolder(c.Params("id"), input.Folder); err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, fiber.Map{"id": c.Params("id"), "folder": input.Folder})
}

type pathInput struct {
	Path string `json:"path"`
	Days int    `json:"days"`
}

// Import заменяет сессии содержимым файла
func (sc *SessionsController) Import(c *fiber.Ctx) error {
	var input pathInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := sc.Bridge.ImportSessions(input.Path); err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, fiber.Map{"path": input.Path})
}

// Export сохраняет сессии в файл
func (sc *SessionsController) Export(c *fiber.Ctx) error {
	var input pathInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := sc.Bridge.ExportSessions(input.Path); err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, fiber.Map{"path": input.Path})
}

// CreateFolder создает папку
func (sc *SessionsController) CreateFolder(c *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := sc.Bridge.CreateFolder(input.Name); err != nil {
		return utils.FromError(c, err)
	}
	return utils.Created(c, fiber.Map{"name": input.Name})
}

// RenameFolder переименовывает папку вместе с сессиями
func (sc *SessionsController) RenameFolder(c *fiber.Ctx) error {
	var input struct {
		NewName string `json:"new_name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := sc.Bridge.RenameFolder(c.Params("name"), input.NewName); err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, fiber.Map{"name": input.NewName})
}

// DeleteFolder удаляет папку, сессии остаются без папки
func (sc *SessionsController) DeleteFolder(c *fiber.Ctx) error {
	moved, err := sc.Bridge.DeleteFolder(c.Params("name"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return utils.OK(c, fiber.Map{"moved_sessions": moved})
}
