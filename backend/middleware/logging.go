package middleware

import (
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2"
)

func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Передаем управление следующему обработчику
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		logger.Printf("%s %s %s %s %v",
			c.IP(),
			methodColor(c.Method()).Sprint(c.Method()),
			c.Path(),
			statusColor(status).Sprint(status),
			time.Since(start),
		)

		return err
	}
}

func statusColor(status int) *color.Color {
	switch {
	case status >= 500:
		return color.New(color.FgRed)
	case status >= 400:
		return color.New(color.FgYellow)
	case status >= 300:
		return color.New(color.FgCyan)
	case status >= 200:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

func methodColor(method string) *color.Color {
	switch method {
	case fiber.MethodGet:
		return color.New(color.FgBlue)
	case fiber.MethodPost:
		return color.New(color.FgYellow)
	case fiber.MethodPut:
		return color.New(color.FgCyan)
	case fiber.MethodDelete:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgWhite)
	}
}
