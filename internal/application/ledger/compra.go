package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	domledger "github.com/sistemaarroz/ingenio-api/internal/domain/ledger"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
	"github.com/sistemaarroz/ingenio-api/internal/domain/unidad"
)

// CompraInput entrada para registrar una compra de materia prima.
type CompraInput struct {
	IngenioID  string
	Proveedor  string
	ProductoID string
	Variedad   string
	Cantidad   decimal.Decimal
	Unidad     string // quintal | fanega; otra unidad se asume ya en kg
	Precio     decimal.Decimal
	Estado     string // mojado | seco
	AlmacenID  string
	Lote       string
}

// RegistrarCompra registra una compra completa: transacción + detalle + lote
// nuevo en inventario, en una sola transacción de BD. Devuelve el código de
// lote registrado.
func (uc *LedgerUseCase) RegistrarCompra(ctx context.Context, in CompraInput) (string, error) {
	if in.Proveedor == "" {
		return "", domain.Invalidf("el proveedor es obligatorio")
	}
	if in.Lote == "" {
		return "", domain.Invalidf("el número de lote es obligatorio")
	}
	if !in.Cantidad.GreaterThan(decimal.Zero) || in.Precio.IsNegative() {
		return "", domain.Invalidf("cantidad y precio deben ser números positivos")
	}
	if in.Estado != entity.EstadoMojado && in.Estado != entity.EstadoSeco {
		return "", domain.Invalidf("el estado debe ser 'mojado' o 'seco'")
	}
	if err := uc.validarAlmacen(in.AlmacenID, in.IngenioID); err != nil {
		return "", err
	}
	if err := uc.validarProducto(in.ProductoID); err != nil {
		return "", err
	}

	cantidadKg := unidad.AKilogramos(in.Cantidad, in.Unidad)
	total := redondear2(in.Cantidad.Mul(in.Precio))
	ahora := time.Now()

	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventarioRepository,
		txRepo repository.TransaccionRepository,
		detRepo repository.DetalleRepository,
		_ repository.LoteAncestroRepository,
	) error {
		existe, err := invRepo.ExisteLote(in.Lote, in.IngenioID)
		if err != nil {
			return err
		}
		if existe {
			return domain.Invalidf("el número de lote '%s' ya existe en este ingenio", in.Lote)
		}

		transaccion := &entity.Transaccion{
			Tipo:      entity.TipoCompra,
			Nombre:    in.Proveedor,
			Fecha:     ahora,
			Total:     total,
			IngenioID: in.IngenioID,
		}
		if err := txRepo.Create(transaccion); err != nil {
			return err
		}

		abono := domledger.NuevoAbono(in.Cantidad, cantidadKg)
		detalle := &entity.DetalleTransaccion{
			TransaccionID:  transaccion.ID,
			ProductoID:     in.ProductoID,
			Variedad:       in.Variedad,
			Cantidad:       abono.CantidadFirmada(),
			CantidadKg:     abono.CantidadKgFirmada(),
			Unidad:         in.Unidad,
			PrecioUnitario: in.Precio,
			Subtotal:       total,
			Lote:           in.Lote,
		}
		if err := detRepo.Create(detalle); err != nil {
			return err
		}

		item := &entity.ItemInventario{
			ProductoID:   in.ProductoID,
			Variedad:     in.Variedad,
			Lote:         in.Lote,
			Cantidad:     in.Cantidad,
			CantidadKg:   cantidadKg,
			Unidad:       in.Unidad,
			Estado:       in.Estado,
			FechaEntrada: ahora,
			IngenioID:    in.IngenioID,
			AlmacenID:    in.AlmacenID,
		}
		return invRepo.Create(item)
	})
	if err != nil {
		return "", err
	}
	return in.Lote, nil
}
