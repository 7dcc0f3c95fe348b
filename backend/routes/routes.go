package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskbar/backend/bridge"
	"taskbar/backend/controllers"
	"taskbar/backend/middleware"
)

func SetupRoutes(app *fiber.App, b *bridge.Bridge) {
	// Маршруты авторизации
	authController := controllers.NewAuthController(b)
	app.Post("/api/auth/login", authController.Login)

	// Промежуточные обработчики
	api := app.Group("/api", middleware.AuthMiddleware(b))

	// Маршруты хоста
	hostController := controllers.NewHostController(b)
	api.Put("/host/state", hostController.PushState)
	api.Get("/host/tree", hostController.GetTree)
	api.Get("/host/review-totals", hostController.GetReviewTotals)

	// Маршруты задач и выбора
	tasksController := controllers.NewTasksController(b)
	api.Get("/tasks", tasksController.GetTasks)
	api.Get("/selection", tasksController.GetSelection)
	api.Put("/selection", tasksController.SaveSelection)

	// Маршруты сессий
	sessionsController := controllers.NewSessionsController(b)
	sessions := api.Group("/sessions")
	sessions.Get("/", sessionsController.GetSessions)
	sessions.Post("/", sessionsController.UpsertSession)
	sessions.Post("/import", sessionsController.Import)
	sessions.Post("/export", sessionsController.Export)
	sessions.Delete("/:id", sessionsController.DeleteSession)
	sessions.Post("/:id/activate", sessionsController.ActivateSession)
	sessions.Put("/:id/folder", sessionsController.MoveToFolder)

	// Маршруты папок
	folders := api.Group("/folders")
	folders.Post("/", sessionsController.CreateFolder)
	folders.Put("/:name", sessionsController.RenameFolder)
	folders.Delete("/:name", sessionsController.DeleteFolder)

	// Маршруты статистики
	statsController := controllers.NewStatsController(b)
	stats := api.Group("/stats")
	stats.Get("/daily", statsController.GetDailyStats)
	stats.Get("/items/:id", statsController.GetItemHistory)
	stats.Get("/total", statsController.GetTotalStats)
	stats.Post("/snapshot", statsController.SaveSnapshot)
	stats.Post("/export", statsController.ExportCSV)

	// Маршруты настроек
	settingsController := controllers.NewSettingsController(b)
	api.Get("/settings", settingsController.GetSettings)
	api.Put("/settings", settingsController.SaveSettings)
}
