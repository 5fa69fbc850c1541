package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// LineaCarrito una línea del carrito de venta. StockDisponible y
// CantidadKgDisponible son la foto del lote al momento de añadirlo al carrito:
// el prorrateo de kg usa esa foto, no una relectura, para que una sesión larga
// no cambie lo que el vendedor acordó.
type LineaCarrito struct {
	ItemID               string
	ProductoID           string
	Variedad             string
	Lote                 string
	Unidad               string
	Cantidad             decimal.Decimal
	Precio               decimal.Decimal
	StockDisponible      decimal.Decimal
	CantidadKgDisponible decimal.Decimal
}

// VentaInput entrada para registrar una venta multiproducto.
type VentaInput struct {
	IngenioID     string
	Comprador     string
	Observaciones string
	Carrito       []LineaCarrito
}

// ResultadoFacturable identifica la transacción creada y su factura.
type ResultadoFacturable struct {
	TransaccionID string
	FacturaUUID   string
}

// LineaPedido lo mínimo que manda el cliente por línea; el resto del carrito
// se arma con la foto actual del lote.
type LineaPedido struct {
	ItemID   string
	Cantidad decimal.Decimal
	Precio   decimal.Decimal
}

// ArmarCarrito resuelve cada línea del pedido contra el inventario y arma las
// líneas de carrito con la foto del lote (stock y kg disponibles).
func (uc *LedgerUseCase) ArmarCarrito(ingenioID string, lineas []LineaPedido) ([]LineaCarrito, error) {
	carrito := make([]LineaCarrito, 0, len(lineas))
	for _, linea := range lineas {
		item, err := uc.invRepo.GetByID(linea.ItemID, ingenioID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.Invalidf("el lote '%s' no existe en inventario", linea.ItemID)
		}
		carrito = append(carrito, LineaCarrito{
			ItemID:               item.ID,
			ProductoID:           item.ProductoID,
			Variedad:             item.Variedad,
			Lote:                 item.Lote,
			Unidad:               item.Unidad,
			Cantidad:             linea.Cantidad,
			Precio:               linea.Precio,
			StockDisponible:      item.Cantidad,
			CantidadKgDisponible: item.CantidadKg,
		})
	}
	return carrito, nil
}

// RegistrarVenta registra una venta de múltiples lotes desde el carrito:
// una transacción 'venta' con UUID de factura recién generado, un detalle por
// línea y el descuento de stock de cada lote. Cualquier línea que falle aborta
// la venta completa; el stock se verifica (con bloqueo de fila) antes de mutar
// ninguna fila.
func (uc *LedgerUseCase) RegistrarVenta(ctx context.Context, in VentaInput) (*ResultadoFacturable, error) {
	if in.Comprador == "" {
		return nil, domain.Invalidf("el nombre del comprador es obligatorio")
	}
	if len(in.Carrito) == 0 {
		return nil, domain.Invalidf("el carrito está vacío, no se puede registrar la venta")
	}
	for _, linea := range in.Carrito {
		if !linea.Cantidad.GreaterThan(decimal.Zero) {
			return nil, domain.Invalidf("la cantidad a vender debe ser mayor a cero")
		}
		if linea.Precio.IsNegative() {
			return nil, domain.Invalidf("el precio de venta no puede ser negativo")
		}
	}

	granTotal := decimal.Zero
	for _, linea := range in.Carrito {
		granTotal = granTotal.Add(linea.Cantidad.Mul(linea.Precio))
	}
	ahora := time.Now()
	facturaUUID := uuid.New().String()

	var transaccionID string
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventarioRepository,
		txRepo repository.TransaccionRepository,
		detRepo repository.DetalleRepository,
		_ repository.LoteAncestroRepository,
	) error {
		// Primera pasada: bloquear y verificar todos los lotes antes de mutar.
		items := make([]*entity.ItemInventario, len(in.Carrito))
		for i, linea := range in.Carrito {
			item, err := invRepo.GetByIDForUpdate(linea.ItemID, in.IngenioID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.Conflictf("el lote de la línea %d ya no existe en inventario", i+1)
			}
			if item.Cantidad.LessThan(linea.Cantidad) {
				return domain.ErrInsufficientStock
			}
			items[i] = item
		}

		transaccion := &entity.Transaccion{
			Tipo:          entity.TipoVenta,
			Nombre:        in.Comprador,
			Fecha:         ahora,
			FacturaUUID:   &facturaUUID,
			Total:         granTotal,
			Observaciones: in.Observaciones,
			IngenioID:     in.IngenioID,
		}
		if err := txRepo.Create(transaccion); err != nil {
			return err
		}
		transaccionID = transaccion.ID

		for i, linea := range in.Carrito {
			// Prorrateo con la foto del carrito, no con el lote releído.
			kgVendidos := decimal.Zero
			if linea.StockDisponible.GreaterThan(decimal.Zero) {
				kgVendidos = linea.Cantidad.Mul(linea.CantidadKgDisponible.Div(linea.StockDisponible))
			}
			subtotal := linea.Cantidad.Mul(linea.Precio)

			detalle := &entity.DetalleTransaccion{
				TransaccionID:  transaccion.ID,
				ProductoID:     linea.ProductoID,
				Variedad:       linea.Variedad,
				Cantidad:       linea.Cantidad,
				CantidadKg:     kgVendidos,
				Unidad:         linea.Unidad,
				PrecioUnitario: linea.Precio,
				Subtotal:       subtotal,
				Lote:           linea.Lote,
			}
			if err := detRepo.Create(detalle); err != nil {
				return err
			}

			// El lote pierde cantidad y kg en la misma proporción del detalle.
			item := items[i]
			item.Cantidad = item.Cantidad.Sub(linea.Cantidad)
			item.CantidadKg = item.CantidadKg.Sub(kgVendidos)
			if err := invRepo.UpdateCantidades(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ResultadoFacturable{TransaccionID: transaccionID, FacturaUUID: facturaUUID}, nil
}
