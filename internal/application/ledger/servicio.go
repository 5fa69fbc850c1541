package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
	"github.com/sistemaarroz/ingenio-api/internal/domain/unidad"
)

// ServicioInput entrada para registrar un servicio prestado a un cliente
// externo (secado o pelado de grano ajeno).
type ServicioInput struct {
	IngenioID       string
	Tipo            string // entity.TipoServicioSecado o entity.TipoServicioPelado
	Cliente         string
	ProductoID      string
	Variedad        string
	Cantidad        decimal.Decimal
	Unidad          string
	PrecioPorFanega decimal.Decimal
	Observaciones   string
	LoteCliente     string // identificación del lote del cliente, queda en el detalle
}

// RegistrarServicioCliente registra el cobro de un servicio sobre grano de un
// cliente. El grano nunca entra al inventario del ingenio: solo queda la
// transacción con su detalle, expresado en fanegas, y el ingreso cobrado.
// Devuelve el ID de la transacción.
func (uc *LedgerUseCase) RegistrarServicioCliente(ctx context.Context, in ServicioInput) (*ResultadoFacturable, error) {
	if in.Tipo != entity.TipoServicioSecado && in.Tipo != entity.TipoServicioPelado {
		return nil, domain.Invalidf("tipo de servicio inválido: %s", in.Tipo)
	}
	if in.Cliente == "" {
		return nil, domain.Invalidf("el nombre del cliente es obligatorio")
	}
	if !in.Cantidad.GreaterThan(decimal.Zero) {
		return nil, domain.Invalidf("la cantidad debe ser mayor a 0")
	}
	if in.PrecioPorFanega.IsNegative() {
		return nil, domain.Invalidf("el precio por fanega no puede ser negativo")
	}
	if err := uc.validarProducto(in.ProductoID); err != nil {
		return nil, err
	}

	fanegas, err := unidad.AFanegas(in.Cantidad, in.Unidad)
	if err != nil {
		return nil, domain.Invalidf("no se puede convertir '%s' a fanegas", in.Unidad)
	}
	ingreso := redondear2(fanegas.Mul(in.PrecioPorFanega))
	facturaUUID := uuid.New().String()
	ahora := time.Now()

	var transaccionID string
	err = uc.txRunner.Run(ctx, func(
		_ repository.InventarioRepository,
		txRepo repository.TransaccionRepository,
		detRepo repository.DetalleRepository,
		_ repository.LoteAncestroRepository,
	) error {
		transaccion := &entity.Transaccion{
			Tipo:          in.Tipo,
			Nombre:        in.Cliente,
			Fecha:         ahora,
			Total:         ingreso,
			Observaciones: in.Observaciones,
			FacturaUUID:   &facturaUUID,
			IngenioID:     in.IngenioID,
		}
		if err := txRepo.Create(transaccion); err != nil {
			return err
		}
		transaccionID = transaccion.ID

		return detRepo.Create(&entity.DetalleTransaccion{
			TransaccionID:  transaccion.ID,
			ProductoID:     in.ProductoID,
			Variedad:       in.Variedad,
			Cantidad:       fanegas,
			CantidadKg:     decimal.Zero,
			Unidad:         entity.UnidadFanega,
			Lote:           in.LoteCliente,
			PrecioUnitario: in.PrecioPorFanega,
			Subtotal:       ingreso,
		})
	})
	if err != nil {
		return nil, err
	}
	return &ResultadoFacturable{TransaccionID: transaccionID, FacturaUUID: facturaUUID}, nil
}
