package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/maturin/inventario-api/internal/infrastructure/metrics"
)

// ServerConfig opciones de la app Fiber. Metrics y Docs son opcionales.
type ServerConfig struct {
	AppName      string
	AllowOrigins string
	Logger       zerolog.Logger
	Metrics      *metrics.HTTP
	Docs         []byte // documento OpenAPI servido en /docs
}

// NewServer arma la app: ErrorHandler central, middlewares, rutas operativas y rutas de la API.
// Orden: requestid → métricas → log → recover → cors → rutas.
func NewServer(cfg ServerConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: ErrorHandler(cfg.Logger),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})

	app.Use(requestid.New())
	if cfg.Metrics != nil {
		app.Use(cfg.Metrics.Middleware())
	}
	app.Use(RequestLogger(cfg.Logger))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	if len(cfg.Docs) > 0 {
		// Swagger UI: http://localhost:<port>/docs
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FileContent: cfg.Docs,
			Path:        "docs",
			Title:       "Inventario Maturin API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.AppName})
	})
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics.Handler())
	}

	Router(app, deps)
	return app
}
