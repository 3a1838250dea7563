package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"qr2svg/internal/app"
	u "qr2svg/internal/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// runServe loads the configuration and serves HTTP until a shutdown signal.
func runServe() error {
	cfg := u.LoadConfig()
	u.InitLogger(
		cfg.Logger.File,
		cfg.Logger.MaxSizeMB,
		cfg.Logger.MaxBackups,
		cfg.Logger.MaxAgeDays,
		cfg.Logger.Compress,
		cfg.Logger.Level,
	)
	u.SetLogLevel(cfg.Logger.Level)

	app, err := app.SetupApp(cfg)
	if err != nil {
		u.Error("Failed to set up app", "error", err)
		return err
	}

	idleConnsClosed := make(chan struct{})
	err = startServer(app, cfg, idleConnsClosed)
	<-idleConnsClosed
	return err
}

// startServer runs the Fiber app until a shutdown signal arrives or the
// listener fails, then closes idleConnsClosed. A listener failure is returned.
func startServer(app *fiber.App, cfg u.Config, idleConnsClosed chan struct{}) error {
	defer close(idleConnsClosed)

	addr := cfg.Server.Host + cfg.Server.Port
	listenErr := make(chan error, 1)
	go func() {
		u.Info("Server listening", "addr", addr)
		listenErr <- app.Listen(addr)
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigint)

	select {
	case err := <-listenErr:
		if err == nil {
			return nil
		}
		u.Error("Server failed to listen", "addr", addr, "error", err)
		return err
	case <-sigint:
	}

	u.Warn("Shutdown signal received, closing server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		u.Error("Server forced to shutdown", "error", err)
	}

	u.Info("Server stopped cleanly")
	return nil
}
