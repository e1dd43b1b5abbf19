package inventory

import (
	"strconv"
	"time"

	"github.com/maturin/inventario-api/internal/domain/entity"
)

// Placeholder reemplaza los valores ausentes en las exportaciones.
const Placeholder = "—"

// DateLayout formato de fecha de las exportaciones (dd/mm/yyyy).
const DateLayout = "02/01/2006"

// ExportHeaders encabezados de columna de planilla y PDF, en orden.
var ExportHeaders = []string{
	"Nombre",
	"Categoría",
	"Marca",
	"Modelo",
	"N° Serie",
	"Estado",
	"Ubicación",
	"Stock",
	"Observaciones",
	"Fecha Registro",
	"Última Modif.",
}

// StockColumn índice de la columna numérica.
const StockColumn = 7

// ExportCells devuelve las celdas de un equipo como texto, alineadas con ExportHeaders.
func ExportCells(e *entity.Equipment) []string {
	return []string{
		orPlaceholder(e.Name),
		orPlaceholder(e.Category),
		orPlaceholder(e.Brand),
		orPlaceholder(e.Model),
		orPlaceholder(e.Serial()),
		orPlaceholder(e.Status),
		orPlaceholder(e.Location),
		strconv.Itoa(e.Stock),
		orPlaceholder(e.Observations),
		formatDate(e.CreatedAt),
		formatDate(e.UpdatedAt),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Local().Format(DateLayout)
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
