// Package pdf genera el reporte imprimible del estado de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Control de Inventario  │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total | Stock OK | Stock Bajo | Sin Stock          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Nombre | Unidad | Grupo | Mín | Actual |   │
//	│         Estado                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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

	appinventory "github.com/jhoicas/Inventario-cli/internal/application/inventory"
	"github.com/jhoicas/Inventario-cli/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 120, Blue: 0}
	colorDanger  = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// InventoryReportGenerator genera el PDF del reporte de estado de inventario
// usando Maroto v2.
type InventoryReportGenerator struct{}

// NewInventoryReportGenerator construye el generador.
func NewInventoryReportGenerator() *InventoryReportGenerator { return &InventoryReportGenerator{} }

// Generate genera el PDF del snapshot y devuelve sus bytes.
func (g *InventoryReportGenerator) Generate(companyName string, rows []entity.InventoryStatusRow, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Control de Inventario", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(appinventory.Counts(rows)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(companyName string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Control de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(companyName, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRow: conteos por bucket de estado.
func summaryRow(c appinventory.BucketCounts) core.Row {
	cell := func(label string, n int, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", n), props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 6, Color: color,
			}),
		)
	}
	return row.New(14).Add(
		cell("Total Productos", c.Total, colorPrimary),
		cell("Stock OK", c.StockOK, colorPrimary),
		cell("Stock Bajo", c.StockBajo, colorAlert),
		cell("Sin Stock", c.SinStock, colorDanger),
	)
}

// tableHeaderRow: cabecera de la tabla del reporte.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Nombre", 3, align.Left),
		h("Unidad", 1, align.Center),
		h("Grupo", 2, align.Left),
		h("Mín.", 1, align.Right),
		h("Actual", 1, align.Right),
		h("Estado", 2, align.Center),
	)
}

// tableRows: una fila por producto; Stock Bajo y Sin Stock van coloreados.
func tableRows(rows []entity.InventoryStatusRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		estadoColor := colorGray
		switch r.Estado {
		case entity.StatusStockBajo:
			estadoColor = colorAlert
		case entity.StatusSinStock:
			estadoColor = colorDanger
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(r.Codigo, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(r.Nombre, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(r.Unidad, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(r.Grupo, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(r.StockMinimo.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(r.StockActual.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(r.Estado, props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: estadoColor, Style: fontstyle.Bold,
			})),
		))
	}
	return result
}
