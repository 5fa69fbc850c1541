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
	"github.com/sistemaarroz/ingenio-api/internal/domain/unidad"
)

// SalidaTransformacion un producto resultante del pelado, en quintales.
type SalidaTransformacion struct {
	ProductoID string
	Cantidad   decimal.Decimal
}

// TransformacionInput entrada para registrar una transformación (pelado).
type TransformacionInput struct {
	IngenioID        string
	ItemOrigenID     string
	CantidadUsada    decimal.Decimal
	Salidas          []SalidaTransformacion
	Observaciones    string
	AlmacenDestinoID string
}

// RegistrarTransformacion divide un lote seco en lotes derivados: descuenta el
// origen proporcionalmente, registra una pierna de consumo y crea un lote
// `<origen>-T<n>` por salida (en quintales) en el almacén destino, junto con
// su arista de procedencia. Devuelve el ID de la transacción.
func (uc *LedgerUseCase) RegistrarTransformacion(ctx context.Context, in TransformacionInput) (string, error) {
	if !in.CantidadUsada.GreaterThan(decimal.Zero) {
		return "", domain.Invalidf("la cantidad a transformar debe ser mayor a 0")
	}
	if len(in.Salidas) == 0 {
		return "", domain.Invalidf("debe haber al menos un producto resultante")
	}
	for _, salida := range in.Salidas {
		if !salida.Cantidad.GreaterThan(decimal.Zero) {
			return "", domain.Invalidf("la cantidad de cada producto resultante debe ser mayor a 0")
		}
		if err := uc.validarProducto(salida.ProductoID); err != nil {
			return "", err
		}
	}
	if err := uc.validarAlmacen(in.AlmacenDestinoID, in.IngenioID); err != nil {
		return "", err
	}
	ahora := time.Now()

	var transaccionID string
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventarioRepository,
		txRepo repository.TransaccionRepository,
		detRepo repository.DetalleRepository,
		ancRepo repository.LoteAncestroRepository,
	) error {
		origen, err := invRepo.GetByIDForUpdate(in.ItemOrigenID, in.IngenioID)
		if err != nil {
			return err
		}
		if origen == nil {
			return domain.ErrNotFound
		}
		if origen.Estado != entity.EstadoSeco {
			return domain.Conflictf("solo se pueden transformar (pelar) lotes con estado 'seco'")
		}
		if origen.Cantidad.LessThan(in.CantidadUsada) {
			return domain.Conflictf("stock insuficiente en el lote de origen")
		}

		kgUsados := domledger.KgProporcional(origen.Cantidad, origen.CantidadKg, in.CantidadUsada)
		origen.Cantidad, origen.CantidadKg = domledger.Mermar(origen.Cantidad, origen.CantidadKg, in.CantidadUsada)
		if err := invRepo.UpdateCantidades(origen); err != nil {
			return err
		}

		total := decimal.Zero
		for _, salida := range in.Salidas {
			total = total.Add(salida.Cantidad)
		}
		transaccion := &entity.Transaccion{
			Tipo:          entity.TipoTransformacion,
			Nombre:        fmt.Sprintf("Desde Lote %s", origen.Lote),
			Fecha:         ahora,
			Total:         total,
			Observaciones: in.Observaciones,
			IngenioID:     in.IngenioID,
		}
		if err := txRepo.Create(transaccion); err != nil {
			return err
		}
		transaccionID = transaccion.ID

		consumo := domledger.NuevoConsumo(in.CantidadUsada, kgUsados)
		if err := detRepo.Create(&entity.DetalleTransaccion{
			TransaccionID: transaccion.ID,
			ProductoID:    origen.ProductoID,
			Variedad:      origen.Variedad,
			Cantidad:      consumo.CantidadFirmada(),
			CantidadKg:    consumo.CantidadKgFirmada(),
			Unidad:        origen.Unidad,
			Lote:          origen.Lote,
		}); err != nil {
			return err
		}

		// El sufijo -T<n> sigue contando desde los derivados que el origen ya
		// tenga de transformaciones anteriores.
		sufijo := 1
		for _, salida := range in.Salidas {
			var nuevoLote string
			for {
				nuevoLote = fmt.Sprintf("%s-T%d", origen.Lote, sufijo)
				sufijo++
				existe, err := invRepo.ExisteLote(nuevoLote, in.IngenioID)
				if err != nil {
					return err
				}
				if !existe {
					break
				}
			}
			// Los productos resultantes están en quintales.
			kgSalida := unidad.AKilogramos(salida.Cantidad, entity.UnidadQuintales)

			derivado := &entity.ItemInventario{
				ProductoID:   salida.ProductoID,
				Variedad:     origen.Variedad,
				Lote:         nuevoLote,
				Cantidad:     salida.Cantidad,
				CantidadKg:   kgSalida,
				Unidad:       entity.UnidadQuintales,
				Estado:       entity.EstadoSeco, // default de la tabla
				FechaEntrada: ahora,
				IngenioID:    in.IngenioID,
				AlmacenID:    in.AlmacenDestinoID,
			}
			if err := invRepo.Create(derivado); err != nil {
				return err
			}
			if err := ancRepo.Create(&entity.LoteAncestro{
				OrigenItemID:   origen.ID,
				DerivadoItemID: derivado.ID,
				CreatedAt:      ahora,
			}); err != nil {
				return err
			}

			abono := domledger.NuevoAbono(salida.Cantidad, kgSalida)
			if err := detRepo.Create(&entity.DetalleTransaccion{
				TransaccionID: transaccion.ID,
				ProductoID:    salida.ProductoID,
				Variedad:      origen.Variedad,
				Cantidad:      abono.CantidadFirmada(),
				CantidadKg:    abono.CantidadKgFirmada(),
				Unidad:        entity.UnidadQuintales,
				Lote:          nuevoLote,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return transaccionID, nil
}
