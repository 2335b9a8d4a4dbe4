package inventory

import (
	"strings"

	"github.com/jhoicas/Inventario-cli/internal/domain/entity"
)

// Columnas exportables del reporte, en el orden del encabezado.
var csvColumns = []string{
	"Código", "Nombre", "Unidad", "Grupo", "Stock Mínimo", "Stock Actual", "Estado",
}

// csvField devuelve el valor de la columna para una fila.
func csvField(r entity.InventoryStatusRow, column string) string {
	switch column {
	case "Código":
		return r.Codigo
	case "Nombre":
		return r.Nombre
	case "Unidad":
		return r.Unidad
	case "Grupo":
		return r.Grupo
	case "Stock Mínimo":
		return r.StockMinimo.String()
	case "Stock Actual":
		return r.StockActual.String()
	case "Estado":
		return r.Estado
	}
	return ""
}

// ToCSV serializa el snapshot: una línea de encabezado y una por fila, campos
// unidos por coma, en el orden de entrada.
//
// Limitación conocida (comportamiento heredado de la exportación original):
// no se escapan comas ni comillas embebidas en campos de texto libre, así que
// un nombre con coma descuadra la fila. Cambiarlo alteraría los archivos que
// los usuarios ya procesan; queda documentado en vez de corregido.
func ToCSV(rows []entity.InventoryStatusRow, columns ...string) string {
	if len(columns) == 0 {
		columns = csvColumns
	}

	var b strings.Builder
	b.WriteString(strings.Join(columns, ","))
	for _, r := range rows {
		b.WriteString("\n")
		fields := make([]string, len(columns))
		for i, col := range columns {
			fields[i] = csvField(r, col)
		}
		b.WriteString(strings.Join(fields, ","))
	}
	return b.String()
}
