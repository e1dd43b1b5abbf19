package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/maturin/inventario-api/docs"
	"github.com/maturin/inventario-api/internal/bootstrap"
	"github.com/maturin/inventario-api/internal/infrastructure/metrics"
	httpRouter "github.com/maturin/inventario-api/internal/interfaces/http"
	"github.com/maturin/inventario-api/pkg/config"
	"github.com/maturin/inventario-api/pkg/logger"
)

// @title                       Inventario Maturin API
// @version                     1.0
// @description                 API de inventario de equipos: autenticación JWT, roles admin/usuario y CRUD de equipos.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.StorageDriver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	storage, err := bootstrap.OpenStorage(ctx, cfg, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer storage.Close()

	svc, err := bootstrap.NewServices(cfg, storage)
	if err != nil {
		log.Fatal().Err(err).Msg("construir servicios")
	}

	// En memoria no hay datos previos: se cargan las cuentas y equipos de demostración.
	if storage.Driver == config.StorageMemory {
		if _, err := svc.Seed.SeedUsers(ctx); err != nil {
			log.Fatal().Err(err).Msg("seed de usuarios")
		}
		if _, err := svc.Seed.SeedEquipment(ctx); err != nil {
			log.Fatal().Err(err).Msg("seed de equipos")
		}
	}

	var httpMetrics *metrics.HTTP
	if cfg.App.MetricsEnabled {
		httpMetrics = metrics.New("inventario")
	}

	app := httpRouter.NewServer(httpRouter.ServerConfig{
		AppName:      cfg.App.Name,
		AllowOrigins: cfg.HTTP.AllowOrigins,
		Logger:       log.Zerolog(),
		Metrics:      httpMetrics,
		Docs:         []byte(docs.SwaggerInfo.ReadDoc()),
	}, httpRouter.RouterDeps{
		AuthUC:      svc.Auth,
		UserUC:      svc.Users,
		EquipmentUC: svc.Equipment,
		ReportUC:    svc.Reports,
		Tokens:      svc.Tokens,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if err := serve(app, cfg.HTTP.Addr(), quit, log.Zerolog()); err != nil {
		log.Error().Err(err).Msg("servidor detenido con error")
		storage.Close()
		os.Exit(1)
	}

	log.Info().Msg("aplicación detenida")
}
