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

// SecadoInput entrada para registrar el secado de un lote mojado.
type SecadoInput struct {
	IngenioID        string
	ItemID           string
	PerdidaQuintales decimal.Decimal
	Observaciones    string
}

// SecarLote pasa un lote de 'mojado' a 'seco' descontando la merma por pérdida
// de humedad. La pérdida se recibe en quintales y se convierte a la unidad del
// lote antes de aplicarla. Devuelve el ID de la transacción.
func (uc *LedgerUseCase) SecarLote(ctx context.Context, in SecadoInput) (string, error) {
	if in.PerdidaQuintales.IsNegative() {
		return "", domain.Invalidf("la pérdida no puede ser negativa")
	}
	ahora := time.Now()

	var transaccionID string
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventarioRepository,
		txRepo repository.TransaccionRepository,
		detRepo repository.DetalleRepository,
		_ repository.LoteAncestroRepository,
	) error {
		item, err := invRepo.GetByIDForUpdate(in.ItemID, in.IngenioID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.Estado != entity.EstadoMojado {
			return domain.Conflictf("solo se pueden secar lotes con estado 'mojado'")
		}

		perdida, err := unidad.DeQuintales(in.PerdidaQuintales, item.Unidad)
		if err != nil {
			return domain.Invalidf("no se puede convertir la pérdida a la unidad '%s'", item.Unidad)
		}
		if item.Cantidad.LessThan(perdida) {
			return domain.Conflictf("la pérdida no puede superar la cantidad del lote")
		}

		kgPerdidos := domledger.KgProporcional(item.Cantidad, item.CantidadKg, perdida)
		item.Cantidad, item.CantidadKg = domledger.Mermar(item.Cantidad, item.CantidadKg, perdida)
		item.Estado = entity.EstadoSeco
		if err := invRepo.UpdateCantidades(item); err != nil {
			return err
		}

		transaccion := &entity.Transaccion{
			Tipo:          entity.TipoSecado,
			Nombre:        fmt.Sprintf("Secado Lote %s", item.Lote),
			Fecha:         ahora,
			Total:         perdida.Neg(),
			Observaciones: in.Observaciones,
			IngenioID:     in.IngenioID,
		}
		if err := txRepo.Create(transaccion); err != nil {
			return err
		}
		transaccionID = transaccion.ID

		consumo := domledger.NuevoConsumo(perdida, kgPerdidos)
		return detRepo.Create(&entity.DetalleTransaccion{
			TransaccionID: transaccion.ID,
			ProductoID:    item.ProductoID,
			Variedad:      item.Variedad,
			Cantidad:      consumo.CantidadFirmada(),
			CantidadKg:    consumo.CantidadKgFirmada(),
			Unidad:        item.Unidad,
			Lote:          item.Lote,
		})
	})
	if err != nil {
		return "", err
	}
	return transaccionID, nil
}
