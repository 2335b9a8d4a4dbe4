// Package inventory implementa la vista derivada de inventario del cliente:
// clasificación de stock, filtros, búsqueda, kardex y exportación. Todo son
// cómputos puros sobre un snapshot ya traído del backend; el backend es quien
// agrega, aquí solo se deriva estado presentable.
package inventory

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Inventario-cli/internal/application/dto"
	"github.com/jhoicas/Inventario-cli/internal/application/ports"
	"github.com/jhoicas/Inventario-cli/internal/domain/entity"
	"github.com/jhoicas/Inventario-cli/pkg/logger"
)

// UseCase consultas de inventario contra el backend más las derivaciones
// locales sobre el snapshot.
type UseCase struct {
	gw  ports.Gateway
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(gw ports.Gateway, log *logger.Logger) *UseCase {
	return &UseCase{gw: gw, log: log}
}

// Classify deriva el estado de stock. Es función pura de (actual, mínimo):
// actual == 0 -> Sin Stock; 0 < actual < mínimo -> Stock Bajo; resto -> Stock OK.
func Classify(current, min decimal.Decimal) string {
	switch {
	case current.IsZero():
		return entity.StatusSinStock
	case current.LessThan(min):
		return entity.StatusStockBajo
	default:
		return entity.StatusStockOK
	}
}

// FetchStatus trae el snapshot de GET /inventory/status y recalcula el estado
// de cada fila en el cliente (no se confía en el estado que venga serializado;
// se recalcula en cada fetch).
func (uc *UseCase) FetchStatus(ctx context.Context) ([]entity.InventoryStatusRow, error) {
	var rows []entity.InventoryStatusRow
	if err := uc.gw.Do(ctx, http.MethodGet, "/inventory/status", nil, &rows); err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Estado = Classify(rows[i].StockActual, rows[i].StockMinimo)
	}
	uc.log.Debug().Int("filas", len(rows)).Msg("snapshot de inventario actualizado")
	return rows, nil
}

// FilterByStatus filtra el snapshot ya traído por estado; "" o "ALL" devuelven
// todas las filas. No refetchea.
func FilterByStatus(rows []entity.InventoryStatusRow, estado string) []entity.InventoryStatusRow {
	if estado == "" || estado == "ALL" {
		return rows
	}
	var out []entity.InventoryStatusRow
	for _, r := range rows {
		if r.Estado == estado {
			out = append(out, r)
		}
	}
	return out
}

// BucketCounts conteo de filas por estado de stock.
type BucketCounts struct {
	Total     int
	SinStock  int
	StockBajo int
	StockOK   int
}

// Counts cuenta filas por bucket para las tarjetas de resumen.
func Counts(rows []entity.InventoryStatusRow) BucketCounts {
	c := BucketCounts{Total: len(rows)}
	for _, r := range rows {
		switch r.Estado {
		case entity.StatusSinStock:
			c.SinStock++
		case entity.StatusStockBajo:
			c.StockBajo++
		case entity.StatusStockOK:
			c.StockOK++
		}
	}
	return c
}

// foldTransformer descompone acentos (NFD), elimina las marcas combinantes y
// recompone, para comparar "Almacén" con "almacen".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldString normaliza un texto para búsqueda: sin acentos y en minúsculas.
func foldString(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// SearchByName filtra por código o nombre, insensible a mayúsculas y acentos.
// Query vacío devuelve todas las filas.
func SearchByName(rows []entity.InventoryStatusRow, query string) []entity.InventoryStatusRow {
	q := foldString(strings.TrimSpace(query))
	if q == "" {
		return rows
	}
	var out []entity.InventoryStatusRow
	for _, r := range rows {
		if strings.Contains(foldString(r.Nombre), q) || strings.Contains(foldString(r.Codigo), q) {
			out = append(out, r)
		}
	}
	return out
}

// RegisterMovement registra un INGRESO/EGRESO y refetchea el snapshot para
// que la vista se re-renderice con datos frescos (sin recargas de página).
// Devuelve el mensaje del backend y el inventario actualizado.
func (uc *UseCase) RegisterMovement(ctx context.Context, req dto.CreateMovementRequest) (string, []entity.InventoryStatusRow, error) {
	if req.ProductCode == "" {
		return "", nil, fmt.Errorf("producto requerido")
	}
	if req.Type != entity.MovementIngreso && req.Type != entity.MovementEgreso {
		return "", nil, fmt.Errorf("tipo de movimiento inválido: %s", req.Type)
	}
	if !req.Quantity.GreaterThan(decimal.Zero) {
		return "", nil, fmt.Errorf("la cantidad debe ser mayor a cero")
	}

	var resp dto.MessageResponse
	if err := uc.gw.Do(ctx, http.MethodPost, "/inventory/movements", req, &resp); err != nil {
		return "", nil, err
	}
	msg := resp.Message
	if msg == "" {
		msg = "Movimiento registrado exitosamente"
	}

	rows, err := uc.FetchStatus(ctx)
	if err != nil {
		// El movimiento quedó registrado; el refetch fallido no lo deshace.
		return msg, nil, err
	}
	return msg, rows, nil
}
