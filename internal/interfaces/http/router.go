package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maturin/inventario-api/internal/application/auth"
	"github.com/maturin/inventario-api/internal/application/inventory"
	"github.com/maturin/inventario-api/internal/application/usecase"
	"github.com/maturin/inventario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	EquipmentUC *usecase.EquipmentUseCase
	ReportUC    *inventory.ReportUseCase
	Tokens      TokenVerifier
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authn := AuthMiddleware(deps.Tokens)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Usuarios: registro y login públicos
	users := app.Group("/api/users")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)
	users.Get("/me", authn, authHandler.Me)

	// Inventario: lectura con cualquier rol, escritura solo admin
	inv := app.Group("/inventario", authn)
	h := NewEquipmentHandler(deps.EquipmentUC, deps.ReportUC)
	inv.Get("/", h.List)
	inv.Get("/resumen", h.Summary)
	inv.Get("/export/xlsx", h.ExportXLSX)
	inv.Get("/export/pdf", h.ExportPDF)
	inv.Get("/:id", h.GetByID)
	inv.Post("/", adminOnly, h.Create)
	inv.Put("/:id", adminOnly, h.Update)
	inv.Delete("/:id", adminOnly, h.Delete)
}
