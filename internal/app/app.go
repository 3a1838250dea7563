package app

import (
	"errors"

	"qr2svg/internal/handlers"
	u "qr2svg/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
)

const notFoundBody = "404, not found!"

// SetupApp creates and configures a new Fiber app instance
func SetupApp(cfg u.Config) (*fiber.App, error) {
	svc, err := handlers.NewQRService(cfg)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		Prefork:               cfg.Server.Prefork,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	RegisterMiddleware(app, cfg)
	RegisterRoutes(app, cfg, svc)

	// Everything not matched above is a plain-text 404.
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return app, nil
}

// RegisterRoutes mounts all route handlers to the app
func RegisterRoutes(app *fiber.App, cfg u.Config, svc *handlers.QRService) {
	// Add instead of Get: Get also registers HEAD, which must fall through to 404.
	app.Add(fiber.MethodGet, "/", svc.HandleQR)

	if cfg.Server.EnableMonitor {
		app.Get("/ops/monitor", monitor.New())
	}
}

// errorHandler renders 404s as plain text and every other error as a
// {"message": ...} JSON body. Non-fiber errors never leak their text.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		msg = e.Message
	} else {
		u.Error("Unhandled error", "path", c.Path(), "error", err)
	}

	if code == fiber.StatusNotFound {
		return c.Status(code).SendString(notFoundBody)
	}

	u.Warn("Request failed", "path", c.Path(), "status", code, "message", msg)

	return c.Status(code).JSON(fiber.Map{
		"message": msg,
	})
}
