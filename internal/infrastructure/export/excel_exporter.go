// Package export genera la planilla .xlsx del inventario con excelize.
package export

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	appinventory "github.com/maturin/inventario-api/internal/application/inventory"
	"github.com/maturin/inventario-api/internal/domain/entity"
)

// SheetName nombre de la hoja exportada.
const SheetName = "Equipos"

var _ appinventory.SpreadsheetExporter = (*ExcelExporter)(nil)

// ExcelExporter implementa inventory.SpreadsheetExporter.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// ExportEquipment escribe encabezados y una fila por equipo. El ancho de cada columna es
// el del valor más largo + 2; la fila de encabezados queda fija y con autofiltro.
func (x *ExcelExporter) ExportEquipment(_ context.Context, items []*entity.Equipment) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	widths := make([]int, len(appinventory.ExportHeaders))
	header := make([]interface{}, len(appinventory.ExportHeaders))
	for i, h := range appinventory.ExportHeaders {
		header[i] = h
		widths[i] = utf8.RuneCountInString(h)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: encabezados: %w", err)
	}

	for r, e := range items {
		cells := appinventory.ExportCells(e)
		row := make([]interface{}, len(cells))
		for i, c := range cells {
			row[i] = c
			if n := utf8.RuneCountInString(c); n > widths[i] {
				widths[i] = n
			}
		}
		row[appinventory.StockColumn] = e.Stock
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", r+2, err)
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(SheetName, col, col, float64(w+2)); err != nil {
			return nil, fmt.Errorf("excel: ancho de columna: %w", err)
		}
	}

	if err := styleHeader(f, len(items)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func styleHeader(f *excelize.File, rows int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return fmt.Errorf("excel: estilo: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, style); err != nil {
		return fmt.Errorf("excel: estilo encabezado: %w", err)
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("excel: fijar encabezado: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(appinventory.ExportHeaders), rows+1)
	if err != nil {
		return err
	}
	if err := f.AutoFilter(SheetName, "A1:"+last, nil); err != nil {
		return fmt.Errorf("excel: autofiltro: %w", err)
	}
	return nil
}
