package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	domledger "github.com/sistemaarroz/ingenio-api/internal/domain/ledger"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// DevolucionInput entrada para registrar una devolución sobre una venta.
type DevolucionInput struct {
	IngenioID           string
	TransaccionOrigenID string
	CantidadDevuelta    decimal.Decimal
}

// RegistrarDevolucion registra una devolución: crea una transacción
// 'devolucion' con total negativo, un detalle espejo de la venta y suma la
// cantidad devuelta al lote original (buscado por lote+producto+ingenio, no
// por id de fila). Si el lote ya no existe en inventario, la operación falla
// completa y no queda ninguna transacción huérfana.
func (uc *LedgerUseCase) RegistrarDevolucion(ctx context.Context, in DevolucionInput) error {
	if !in.CantidadDevuelta.GreaterThan(decimal.Zero) {
		return domain.Invalidf("la cantidad a devolver debe ser mayor a cero")
	}
	ahora := time.Now()

	return uc.txRunner.Run(ctx, func(
		invRepo repository.InventarioRepository,
		txRepo repository.TransaccionRepository,
		detRepo repository.DetalleRepository,
		_ repository.LoteAncestroRepository,
	) error {
		venta, err := txRepo.GetConDetalle(in.TransaccionOrigenID, in.IngenioID)
		if err != nil {
			return err
		}
		if venta == nil || venta.Transaccion.Tipo != entity.TipoVenta {
			return domain.Conflictf("la transacción de origen no es una venta válida")
		}

		vendida := venta.Detalle
		if in.CantidadDevuelta.GreaterThan(vendida.Cantidad) {
			return domain.Conflictf("no se puede devolver más de la cantidad vendida (%s %s)", vendida.Cantidad, vendida.Unidad)
		}

		totalDevolucion := redondear2(in.CantidadDevuelta.Mul(vendida.PrecioUnitario)).Neg()
		kgDevueltos := domledger.KgProporcional(vendida.Cantidad, vendida.CantidadKg, in.CantidadDevuelta)

		transaccion := &entity.Transaccion{
			Tipo:          entity.TipoDevolucion,
			Nombre:        venta.Transaccion.Nombre,
			Fecha:         ahora,
			Total:         totalDevolucion,
			Observaciones: fmt.Sprintf("Devolución de venta ID %s", in.TransaccionOrigenID),
			IngenioID:     in.IngenioID,
		}
		if err := txRepo.Create(transaccion); err != nil {
			return err
		}

		detalle := &entity.DetalleTransaccion{
			TransaccionID:  transaccion.ID,
			ProductoID:     vendida.ProductoID,
			Variedad:       vendida.Variedad,
			Cantidad:       in.CantidadDevuelta,
			CantidadKg:     kgDevueltos,
			Unidad:         vendida.Unidad,
			PrecioUnitario: vendida.PrecioUnitario,
			Subtotal:       totalDevolucion,
			Lote:           vendida.Lote,
		}
		if err := detRepo.Create(detalle); err != nil {
			return err
		}

		filas, err := invRepo.AjustarPorLote(vendida.Lote, vendida.ProductoID, in.IngenioID, in.CantidadDevuelta, kgDevueltos)
		if err != nil {
			return err
		}
		if filas == 0 {
			return domain.Conflictf("no se encontró el lote '%s' en el inventario para ajustar el stock; la devolución no se pudo completar", vendida.Lote)
		}
		return nil
	})
}
