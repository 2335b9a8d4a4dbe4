package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-cli/internal/application/inventory"
	"github.com/jhoicas/Inventario-cli/internal/domain/entity"
)

func entry(tipo, cantidad, saldo string) entity.KardexEntry {
	return entity.KardexEntry{Tipo: tipo, Cantidad: dec(cantidad), Saldo: dec(saldo)}
}

// INGRESO suma, EGRESO resta, partiendo de cero.
func TestRunningBalance(t *testing.T) {
	balances := inventory.RunningBalance([]entity.KardexEntry{
		entry(entity.MovementIngreso, "10", "10"),
		entry(entity.MovementEgreso, "3", "7"),
		entry(entity.MovementIngreso, "0.5", "7.5"),
		entry(entity.MovementEgreso, "7.5", "0"),
	})

	require.Len(t, balances, 4)
	assert.True(t, balances[0].Equal(dec("10")))
	assert.True(t, balances[1].Equal(dec("7")))
	assert.True(t, balances[2].Equal(dec("7.5")))
	assert.True(t, balances[3].Equal(dec("0")))
}

// Un kardex coherente no reporta desajustes.
func TestVerifyKardex_Coherente(t *testing.T) {
	mismatches := inventory.VerifyKardex([]entity.KardexEntry{
		entry(entity.MovementIngreso, "10", "10"),
		entry(entity.MovementEgreso, "4", "6"),
	})
	assert.Empty(t, mismatches)
}

// Los saldos que no cuadran con el recálculo local se reportan por índice.
func TestVerifyKardex_Desajustes(t *testing.T) {
	mismatches := inventory.VerifyKardex([]entity.KardexEntry{
		entry(entity.MovementIngreso, "10", "10"),
		entry(entity.MovementEgreso, "4", "5"), // el backend dice 5, local da 6
		entry(entity.MovementIngreso, "1", "7"),
	})
	assert.Equal(t, []int{1}, mismatches)
}

// FetchKardex consulta el endpoint por SKU.
func TestFetchKardex(t *testing.T) {
	gw := &fakeGateway{handler: func(method, path string, body, out any) error {
		kardex := out.(*entity.ProductKardex)
		kardex.Producto.SKU = "SKU-1"
		kardex.Producto.Nombre = "Tornillo"
		kardex.Kardex = []entity.KardexEntry{entry(entity.MovementIngreso, "10", "10")}
		return nil
	}}
	uc := inventory.NewUseCase(gw, testLogger())

	kardex, err := uc.FetchKardex(context.Background(), "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, "SKU-1", kardex.Producto.SKU)
	require.Len(t, kardex.Kardex, 1)
	assert.Equal(t, []string{"GET /inventory/kardex/SKU-1"}, gw.calls)
}
