package api

import (
	"fmt"
	"log/slog"
	"os-scheduler/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber application with all scheduler routes.
func NewApp(cfg *config.SchedulerConfig, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "os-scheduler",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	Register(app, NewSchedulerHandlerImpl(cfg, log))
	return app
}

// Serve listens on the configured port until the server fails.
func Serve(cfg *config.SchedulerConfig, log *slog.Logger) error {
	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("listening", "addr", addr)
	return NewApp(cfg, log).Listen(addr)
}
