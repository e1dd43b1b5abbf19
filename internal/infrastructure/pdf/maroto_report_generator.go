// Package pdf genera el reporte PDF del inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total equipos / Stock total / conteo por estado   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Categoría | Marca | ... | Última Modif.    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cantidad de registros                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/maturin/inventario-api/internal/application/dto"
	appinventory "github.com/maturin/inventario-api/internal/application/inventory"
	"github.com/maturin/inventario-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// columnSizes ancho en la grilla de 12 de cada columna de appinventory.ExportHeaders.
var columnSizes = []int{2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appinventory.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa inventory.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador. author aparece en los metadatos del PDF.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(_ context.Context, report appinventory.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		WithTitle(report.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, g.author))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report.Summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(report.Items)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report appinventory.Report, author string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(author, "Inventario"), props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Local().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRows: totales y una celda por estado.
func summaryRows(s dto.InventorySummary) []core.Row {
	totals := row.New(8).Add(
		col.New(6).Add(text.New(fmt.Sprintf("Total de equipos: %d", s.Total), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2,
		})),
		col.New(6).Add(text.New(fmt.Sprintf("Stock total: %d", s.TotalStock), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Right,
		})),
	)

	cols := make([]core.Col, 0, len(entity.Statuses))
	size := 12 / len(entity.Statuses)
	for _, st := range entity.Statuses {
		cols = append(cols, col.New(size).Add(text.New(
			fmt.Sprintf("%s: %d", st, s.ByStatus[st]),
			props.Text{Size: 8, Top: 1, Color: colorGray, Align: align.Center},
		)))
	}
	return []core.Row{totals, row.New(6).Add(cols...)}
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(appinventory.ExportHeaders))
	for i, h := range appinventory.ExportHeaders {
		cols = append(cols, col.New(columnSizes[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 6.5, Align: align.Left,
			Color: colorPrimary, Top: 2, Left: 0.5, Right: 0.5,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableRows: una fila por equipo.
func tableRows(items []*entity.Equipment) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, e := range items {
		cells := appinventory.ExportCells(e)
		cols := make([]core.Col, 0, len(cells))
		for i, c := range cells {
			a := align.Left
			if i == appinventory.StockColumn {
				a = align.Center
			}
			cols = append(cols, col.New(columnSizes[i]).Add(text.New(c, props.Text{
				Size: 6.5, Align: a, Top: 1, Left: 0.5, Right: 0.5,
			})))
		}
		result = append(result, row.New(7).Add(cols...))
	}
	return result
}

func footerRow(count int) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d registro(s)", count), props.Text{
			Size: 7, Align: align.Right, Color: colorGray, Top: 1,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
