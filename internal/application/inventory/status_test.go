package inventory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-cli/internal/application/dto"
	"github.com/jhoicas/Inventario-cli/internal/application/inventory"
	"github.com/jhoicas/Inventario-cli/internal/domain/entity"
	"github.com/jhoicas/Inventario-cli/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeGateway implementación de ports.Gateway que registra las llamadas y
// delega la respuesta a un handler por llamada.
type fakeGateway struct {
	calls   []string
	handler func(method, path string, body, out any) error
}

func (f *fakeGateway) Do(ctx context.Context, method, path string, body, out any) error {
	f.calls = append(f.calls, method+" "+path)
	if f.handler == nil {
		return nil
	}
	return f.handler(method, path, body, out)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func row(codigo, nombre string, min, actual string) entity.InventoryStatusRow {
	r := entity.InventoryStatusRow{
		Codigo:      codigo,
		Nombre:      nombre,
		Unidad:      "UND",
		Grupo:       "General",
		StockMinimo: dec(min),
		StockActual: dec(actual),
	}
	r.Estado = inventory.Classify(r.StockActual, r.StockMinimo)
	return r
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación
// ──────────────────────────────────────────────────────────────────────────────

// La clasificación es función pura de (actual, mínimo).
func TestClassify(t *testing.T) {
	cases := []struct {
		actual, minimo string
		want           string
	}{
		{"0", "5", entity.StatusSinStock},
		{"0", "0", entity.StatusSinStock},
		{"3", "5", entity.StatusStockBajo},
		{"4.99", "5", entity.StatusStockBajo},
		{"5", "5", entity.StatusStockOK},
		{"10", "5", entity.StatusStockOK},
		{"1", "0", entity.StatusStockOK},
	}
	for _, c := range cases {
		got := inventory.Classify(dec(c.actual), dec(c.minimo))
		assert.Equal(t, c.want, got, "actual=%s minimo=%s", c.actual, c.minimo)
	}
}

// FetchStatus recalcula el estado en el cliente aunque el backend mande otro.
func TestFetchStatus_RecalculaEstado(t *testing.T) {
	gw := &fakeGateway{handler: func(method, path string, body, out any) error {
		rows := out.(*[]entity.InventoryStatusRow)
		*rows = []entity.InventoryStatusRow{
			{Codigo: "SKU-1", Nombre: "Tornillo", StockMinimo: dec("5"), StockActual: dec("0"), Estado: "Stock OK"},
			{Codigo: "SKU-2", Nombre: "Tuerca", StockMinimo: dec("5"), StockActual: dec("9"), Estado: ""},
		}
		return nil
	}}
	uc := inventory.NewUseCase(gw, testLogger())

	rows, err := uc.FetchStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, entity.StatusSinStock, rows[0].Estado)
	assert.Equal(t, entity.StatusStockOK, rows[1].Estado)
	assert.Equal(t, []string{"GET /inventory/status"}, gw.calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros y búsqueda sobre el snapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterByStatus(t *testing.T) {
	rows := []entity.InventoryStatusRow{
		row("SKU-1", "Tornillo", "5", "0"),
		row("SKU-2", "Tuerca", "5", "3"),
		row("SKU-3", "Arandela", "5", "9"),
	}

	assert.Len(t, inventory.FilterByStatus(rows, ""), 3, "filtro vacío no filtra")
	assert.Len(t, inventory.FilterByStatus(rows, "ALL"), 3)

	bajo := inventory.FilterByStatus(rows, entity.StatusStockBajo)
	require.Len(t, bajo, 1)
	assert.Equal(t, "SKU-2", bajo[0].Codigo)

	assert.Empty(t, inventory.FilterByStatus(rows, "Inexistente"))
}

func TestCounts(t *testing.T) {
	rows := []entity.InventoryStatusRow{
		row("SKU-1", "Tornillo", "5", "0"),
		row("SKU-2", "Tuerca", "5", "3"),
		row("SKU-3", "Arandela", "5", "9"),
		row("SKU-4", "Clavo", "5", "12"),
	}

	c := inventory.Counts(rows)
	assert.Equal(t, 4, c.Total)
	assert.Equal(t, 1, c.SinStock)
	assert.Equal(t, 1, c.StockBajo)
	assert.Equal(t, 2, c.StockOK)
}

// La búsqueda ignora mayúsculas y acentos en ambos lados.
func TestSearchByName_InsensibleAAcentos(t *testing.T) {
	rows := []entity.InventoryStatusRow{
		row("SKU-1", "Lámpara de Almacén", "5", "9"),
		row("SKU-2", "Tuerca", "5", "3"),
	}

	for _, q := range []string{"almacen", "ALMACÉN", "lámpara", "lampara"} {
		got := inventory.SearchByName(rows, q)
		require.Len(t, got, 1, "query %q", q)
		assert.Equal(t, "SKU-1", got[0].Codigo)
	}

	// También busca por código.
	got := inventory.SearchByName(rows, "sku-2")
	require.Len(t, got, 1)
	assert.Equal(t, "Tuerca", got[0].Nombre)

	assert.Len(t, inventory.SearchByName(rows, "   "), 2, "query en blanco devuelve todo")
	assert.Empty(t, inventory.SearchByName(rows, "inexistente"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de movimientos
// ──────────────────────────────────────────────────────────────────────────────

// Tras registrar un movimiento se refetchea el snapshot completo.
func TestRegisterMovement_RefetcheaSnapshot(t *testing.T) {
	gw := &fakeGateway{handler: func(method, path string, body, out any) error {
		switch path {
		case "/inventory/movements":
			resp := out.(*dto.MessageResponse)
			resp.Message = "Movimiento registrado exitosamente"
		case "/inventory/status":
			rows := out.(*[]entity.InventoryStatusRow)
			*rows = []entity.InventoryStatusRow{
				{Codigo: "SKU-1", Nombre: "Tornillo", StockMinimo: dec("5"), StockActual: dec("7")},
			}
		}
		return nil
	}}
	uc := inventory.NewUseCase(gw, testLogger())

	msg, rows, err := uc.RegisterMovement(context.Background(), dto.CreateMovementRequest{
		ProductCode: "SKU-1",
		Type:        entity.MovementIngreso,
		Quantity:    dec("7"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Movimiento registrado exitosamente", msg)
	require.Len(t, rows, 1)
	assert.Equal(t, entity.StatusStockOK, rows[0].Estado)

	assert.Equal(t, []string{
		"POST /inventory/movements",
		"GET /inventory/status",
	}, gw.calls)
}

// La validación local corta antes de tocar la red.
func TestRegisterMovement_ValidacionLocal(t *testing.T) {
	cases := []struct {
		name string
		req  dto.CreateMovementRequest
	}{
		{"sin producto", dto.CreateMovementRequest{Type: entity.MovementIngreso, Quantity: dec("1")}},
		{"tipo inválido", dto.CreateMovementRequest{ProductCode: "SKU-1", Type: "TRASLADO", Quantity: dec("1")}},
		{"cantidad cero", dto.CreateMovementRequest{ProductCode: "SKU-1", Type: entity.MovementEgreso, Quantity: dec("0")}},
		{"cantidad negativa", dto.CreateMovementRequest{ProductCode: "SKU-1", Type: entity.MovementEgreso, Quantity: dec("-2")}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gw := &fakeGateway{}
			uc := inventory.NewUseCase(gw, testLogger())

			_, _, err := uc.RegisterMovement(context.Background(), c.req)
			require.Error(t, err)
			assert.Empty(t, gw.calls, "no debe haber tráfico de red")
		})
	}
}

// Si el refetch falla el movimiento no se pierde: mensaje sí, filas no.
func TestRegisterMovement_RefetchFalla(t *testing.T) {
	gw := &fakeGateway{handler: func(method, path string, body, out any) error {
		if path == "/inventory/status" {
			return fmt.Errorf("red caída")
		}
		return nil
	}}
	uc := inventory.NewUseCase(gw, testLogger())

	msg, rows, err := uc.RegisterMovement(context.Background(), dto.CreateMovementRequest{
		ProductCode: "SKU-1",
		Type:        entity.MovementIngreso,
		Quantity:    dec("1"),
	})
	require.Error(t, err)
	assert.Equal(t, "Movimiento registrado exitosamente", msg)
	assert.Nil(t, rows)
}
