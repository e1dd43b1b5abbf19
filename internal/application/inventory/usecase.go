package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/maturin/inventario-api/internal/application/dto"
	"github.com/maturin/inventario-api/internal/domain"
	"github.com/maturin/inventario-api/internal/domain/entity"
)

// FilePrefix prefijo de los archivos exportados: inventario_maturin_<YYYY-MM-DD>.<ext>.
const FilePrefix = "inventario_maturin_"

// ReportUseCase resumen del inventario y exportaciones a planilla y PDF.
type ReportUseCase struct {
	finder      EquipmentFinder
	spreadsheet SpreadsheetExporter
	pdf         ReportGenerator
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(finder EquipmentFinder, spreadsheet SpreadsheetExporter, pdf ReportGenerator) *ReportUseCase {
	return &ReportUseCase{
		finder:      finder,
		spreadsheet: spreadsheet,
		pdf:         pdf,
		now:         time.Now,
	}
}

// Summary cuenta registros y stock, por estado y por categoría.
// Todos los estados y categorías aparecen, con 0 si no hay equipos.
func (uc *ReportUseCase) Summary(ctx context.Context, q dto.EquipmentQuery) (*dto.InventorySummary, error) {
	items, err := uc.finder.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	s := Summarize(items)
	return &s, nil
}

// Summarize calcula los totales de una lista ya filtrada.
func Summarize(items []*entity.Equipment) dto.InventorySummary {
	s := dto.InventorySummary{
		ByStatus:   make(map[string]int, len(entity.Statuses)),
		ByCategory: make(map[string]int, len(entity.Categories)),
	}
	for _, st := range entity.Statuses {
		s.ByStatus[st] = 0
	}
	for _, c := range entity.Categories {
		s.ByCategory[c] = 0
	}
	for _, e := range items {
		s.Total++
		s.TotalStock += e.Stock
		s.ByStatus[e.Status]++
		s.ByCategory[e.Category]++
	}
	return s
}

// ExportSpreadsheet genera la planilla con los equipos filtrados.
//
// Retorna:
//   - (bytes, filename, nil)      si hay equipos.
//   - domain.ErrNothingToExport   si el filtro no devuelve equipos.
func (uc *ReportUseCase) ExportSpreadsheet(ctx context.Context, q dto.EquipmentQuery) ([]byte, string, error) {
	items, err := uc.exportable(ctx, q)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.spreadsheet.ExportEquipment(ctx, items)
	if err != nil {
		return nil, "", fmt.Errorf("exportar planilla: %w", err)
	}
	return b, uc.filename("xlsx"), nil
}

// ExportPDF genera el reporte PDF con resumen y detalle de los equipos filtrados.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, q dto.EquipmentQuery) ([]byte, string, error) {
	items, err := uc.exportable(ctx, q)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateInventoryReport(ctx, Report{
		Title:       "Inventario de Equipos",
		GeneratedAt: uc.now(),
		Summary:     Summarize(items),
		Items:       items,
	})
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf: %w", err)
	}
	return b, uc.filename("pdf"), nil
}

func (uc *ReportUseCase) exportable(ctx context.Context, q dto.EquipmentQuery) ([]*entity.Equipment, error) {
	items, err := uc.finder.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNothingToExport
	}
	return items, nil
}

func (uc *ReportUseCase) filename(ext string) string {
	return FilePrefix + uc.now().Format("2006-01-02") + "." + ext
}
