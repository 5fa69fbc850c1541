package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
)

// FiltroInventario filtros opcionales para el listado de inventario activo.
type FiltroInventario struct {
	ProductoID  string
	Lote        string // coincidencia parcial
	Variedad    string
	FechaInicio *time.Time
	FechaFin    *time.Time
	AlmacenID   string
}

// ItemInventarioVista es un lote con los nombres denormalizados para listados
// y, en la vista de detalle, el precio de compra original resuelto vía la
// relación de ancestros.
type ItemInventarioVista struct {
	Item           entity.ItemInventario
	ProductoNombre string
	ProductoCodigo string
	AlmacenNombre  string
	PrecioCompra   *decimal.Decimal
	UnidadCompra   string
}

// InventarioRepository define el puerto de persistencia para lotes de inventario.
// Usado dentro de transacciones para garantizar consistencia; GetByIDForUpdate
// bloquea la fila (SELECT FOR UPDATE) antes de una mutación.
type InventarioRepository interface {
	Create(item *entity.ItemInventario) error
	GetByID(id, ingenioID string) (*entity.ItemInventario, error)
	GetByIDForUpdate(id, ingenioID string) (*entity.ItemInventario, error)
	ExisteLote(lote, ingenioID string) (bool, error)
	// UpdateCantidades fija cantidad, cantidad_kg y estado del lote.
	UpdateCantidades(item *entity.ItemInventario) error
	// AjustarPorLote suma los deltas al lote identificado por (lote, producto,
	// ingenio) y devuelve cuántas filas afectó. Cero filas significa que el
	// lote ya no existe en inventario.
	AjustarPorLote(lote, productoID, ingenioID string, deltaCantidad, deltaKg decimal.Decimal) (int64, error)
	UpdatePrecioVenta(id, ingenioID string, precio decimal.Decimal) error
	// ListActivos lista lotes con cantidad_kg por encima del umbral de agotado.
	ListActivos(ingenioID string, filtro FiltroInventario) ([]*ItemInventarioVista, error)
	// GetVista devuelve el lote con nombres y precio de compra resuelto.
	GetVista(id, ingenioID string) (*ItemInventarioVista, error)
	// ListTransformables: lotes secos de arroz semilla o en chala con cantidad > 0.
	ListTransformables(ingenioID string) ([]*ItemInventarioVista, error)
	// ListSecables: lotes mojados de arroz semilla o en chala con cantidad > 0.
	ListSecables(ingenioID string) ([]*ItemInventarioVista, error)
}

// LoteAncestroRepository define el puerto para las aristas de procedencia de lotes.
type LoteAncestroRepository interface {
	Create(ancestro *entity.LoteAncestro) error
	GetOrigen(derivadoItemID string) (*entity.LoteAncestro, error)
}
