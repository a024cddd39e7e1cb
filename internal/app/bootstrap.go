package app

import (
	"context"
	"fmt"
	"strings"

	"skill-matrix/internal/config"
	"skill-matrix/internal/database/migration"
	"skill-matrix/internal/database/seeder"
	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap connects the store, applies migrations and seeds, then
// builds the fiber app. The returned cleanup closes the pool.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx := context.Background()

	mig := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := mig.Run(ctx, container.DB.SQLDB()); err != nil {
		_ = container.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	seed := seeder.Runner{Seeders: seeder.Defaults()}
	if err := seed.Run(ctx, container.DB); err != nil {
		_ = container.Close()
		return nil, nil, fmt.Errorf("seed: %w", err)
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(nil).Middleware())

	routes.Register(f, cfg, container.DB)

	app := &App{Fiber: f, Container: container}
	return app, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
