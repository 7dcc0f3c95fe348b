package routes

import (
	"log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"taskbar/backend/bridge"
	"taskbar/backend/middleware"
	"taskbar/backend/utils"
)

// NewApp собирает fiber-приложение моста: кодек JSON, middleware и маршруты.
func NewApp(b *bridge.Bridge, logger *log.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "taskbar",
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return utils.FromError(c, err)
		},
	})

	// Промежуточные обработчики
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	SetupRoutes(app, b)
	return app
}
