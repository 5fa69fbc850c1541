// Package ledger implementa las operaciones atómicas del libro mayor de
// inventario: compra, venta, devolución, transformación, secado y servicios a
// clientes. Cada operación abre una única transacción de BD (Commit/Rollback)
// y bloquea con SELECT FOR UPDATE las filas de inventario que muta.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/sistemaarroz/ingenio-api/internal/application/lote"
	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// LedgerUseCase agrupa las operaciones de escritura del libro mayor.
type LedgerUseCase struct {
	txRunner     TxRunner
	invRepo      repository.InventarioRepository
	productoRepo repository.ProductoRepository
	almacenRepo  repository.AlmacenRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	invRepo repository.InventarioRepository,
	productoRepo repository.ProductoRepository,
	almacenRepo repository.AlmacenRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:     txRunner,
		invRepo:      invRepo,
		productoRepo: productoRepo,
		almacenRepo:  almacenRepo,
	}
}

// validarAlmacen verifica que el almacén exista y pertenezca al ingenio.
func (uc *LedgerUseCase) validarAlmacen(almacenID, ingenioID string) error {
	if almacenID == "" {
		return domain.Invalidf("debe seleccionar un almacén")
	}
	almacen, err := uc.almacenRepo.GetByID(almacenID)
	if err != nil {
		return err
	}
	if almacen == nil || almacen.IngenioID != ingenioID {
		return domain.ErrNotFound
	}
	return nil
}

// validarProducto verifica que el producto exista en el catálogo.
func (uc *LedgerUseCase) validarProducto(productoID string) error {
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return nil
}

// redondear2 redondea un monto a 2 decimales (totales y subtotales).
func redondear2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ActualizarPrecioVenta fija el precio de venta unitario de un lote.
func (uc *LedgerUseCase) ActualizarPrecioVenta(ingenioID, itemID string, precio decimal.Decimal) error {
	if precio.IsNegative() {
		return domain.Invalidf("el precio de venta no puede ser negativo")
	}
	return uc.invRepo.UpdatePrecioVenta(itemID, ingenioID, precio)
}

// GenerarLote propone un código de lote libre para el formulario de compra.
// La compra en sí exige el código ya resuelto.
func (uc *LedgerUseCase) GenerarLote(ingenioID string) (string, error) {
	return lote.GenerarUnico(uc.invRepo, ingenioID)
}
