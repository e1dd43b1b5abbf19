package inventory

import (
	"context"
	"time"

	"github.com/maturin/inventario-api/internal/application/dto"
	"github.com/maturin/inventario-api/internal/domain/entity"
)

// EquipmentFinder resuelve el listado filtrado (lo implementa usecase.EquipmentUseCase).
type EquipmentFinder interface {
	Find(ctx context.Context, q dto.EquipmentQuery) ([]*entity.Equipment, error)
}

// SpreadsheetExporter genera la planilla del inventario.
type SpreadsheetExporter interface {
	ExportEquipment(ctx context.Context, items []*entity.Equipment) ([]byte, error)
}

// ReportGenerator genera el reporte PDF del inventario.
type ReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, report Report) ([]byte, error)
}

// Report datos que necesita el generador de PDF.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Summary     dto.InventorySummary
	Items       []*entity.Equipment
}
