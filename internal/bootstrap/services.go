package bootstrap

import (
	"github.com/maturin/inventario-api/internal/application/auth"
	"github.com/maturin/inventario-api/internal/application/inventory"
	"github.com/maturin/inventario-api/internal/application/seed"
	"github.com/maturin/inventario-api/internal/application/usecase"
	"github.com/maturin/inventario-api/internal/application/validation"
	"github.com/maturin/inventario-api/internal/infrastructure/export"
	"github.com/maturin/inventario-api/internal/infrastructure/pdf"
	"github.com/maturin/inventario-api/internal/infrastructure/security"
	"github.com/maturin/inventario-api/pkg/config"
	"github.com/maturin/inventario-api/pkg/jwt"
)

// Services casos de uso construidos sobre un Storage.
type Services struct {
	Tokens    *jwt.Manager
	Auth      *auth.AuthUseCase
	Users     *usecase.UserUseCase
	Equipment *usecase.EquipmentUseCase
	Reports   *inventory.ReportUseCase
	Seed      *seed.SeedUseCase
}

// NewServices construye los casos de uso. El secret JWT se lee una sola vez aquí.
func NewServices(cfg *config.Config, st *Storage) (*Services, error) {
	tokens, err := jwt.NewManager(jwt.Config{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		TTL:    cfg.JWT.TTL(),
	})
	if err != nil {
		return nil, err
	}

	v := validation.New()
	authUC := auth.NewAuthUseCase(st.Users, security.NewBcryptHasher(cfg.Security.BcryptCost), tokens, v)
	equipmentUC := usecase.NewEquipmentUseCase(st.Equipment, v)

	return &Services{
		Tokens:    tokens,
		Auth:      authUC,
		Users:     usecase.NewUserUseCase(st.Users),
		Equipment: equipmentUC,
		Reports:   inventory.NewReportUseCase(equipmentUC, export.NewExcelExporter(), pdf.NewMarotoReportGenerator(cfg.App.Name)),
		Seed:      seed.NewSeedUseCase(st.Users, st.Equipment, authUC, equipmentUC),
	}, nil
}
