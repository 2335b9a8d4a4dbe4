package inventory

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-cli/internal/domain/entity"
)

// FetchKardex trae el ledger cronológico de movimientos de un SKU con su
// saldo corrido, tal como lo calcula el backend.
func (uc *UseCase) FetchKardex(ctx context.Context, sku string) (*entity.ProductKardex, error) {
	var kardex entity.ProductKardex
	if err := uc.gw.Do(ctx, http.MethodGet, "/inventory/kardex/"+sku, nil, &kardex); err != nil {
		return nil, err
	}
	return &kardex, nil
}

// RunningBalance recalcula el saldo corrido de un kardex en el cliente:
// INGRESO suma, EGRESO resta, partiendo de cero en orden de entrada.
func RunningBalance(entries []entity.KardexEntry) []decimal.Decimal {
	out := make([]decimal.Decimal, len(entries))
	saldo := decimal.Zero
	for i, e := range entries {
		switch e.Tipo {
		case entity.MovementIngreso:
			saldo = saldo.Add(e.Cantidad)
		case entity.MovementEgreso:
			saldo = saldo.Sub(e.Cantidad)
		}
		out[i] = saldo
	}
	return out
}

// VerifyKardex compara el saldo que reporta el backend con el recálculo local
// y devuelve los índices de las líneas que no cuadran (vacío si es coherente).
func VerifyKardex(entries []entity.KardexEntry) []int {
	recomputed := RunningBalance(entries)
	var mismatches []int
	for i, e := range entries {
		if !e.Saldo.Equal(recomputed[i]) {
			mismatches = append(mismatches, i)
		}
	}
	return mismatches
}
