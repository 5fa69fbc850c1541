package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventarioItemResponse un lote del inventario con nombres denormalizados y
// la cantidad mostrada también en quintales y fanegas.
type InventarioItemResponse struct {
	ID                  string           `json:"id"`
	ProductoID          string           `json:"producto_id"`
	ProductoNombre      string           `json:"producto_nombre"`
	ProductoCodigo      string           `json:"producto_codigo"`
	Variedad            string           `json:"variedad,omitempty"`
	Lote                string           `json:"lote"`
	Cantidad            decimal.Decimal  `json:"cantidad"`
	CantidadKg          decimal.Decimal  `json:"cantidad_kg"`
	Unidad              string           `json:"unidad"`
	Quintales           decimal.Decimal  `json:"quintales"`
	Fanegas             decimal.Decimal  `json:"fanegas"`
	Estado              string           `json:"estado"`
	FechaEntrada        time.Time        `json:"fecha_entrada"`
	FechaSalida         *time.Time       `json:"fecha_salida,omitempty"`
	PrecioVentaUnitario *decimal.Decimal `json:"precio_venta_unitario,omitempty"`
	AlmacenID           string           `json:"almacen_id"`
	AlmacenNombre       string           `json:"almacen_nombre"`
	PrecioCompra        *decimal.Decimal `json:"precio_compra,omitempty"`
	UnidadCompra        string           `json:"unidad_compra,omitempty"`
}

// HistorialItemResponse una fila del historial de transacciones, aplanada.
type HistorialItemResponse struct {
	TransaccionID  string           `json:"transaccion_id"`
	Tipo           string           `json:"tipo"`
	Nombre         string           `json:"nombre"`
	Fecha          time.Time        `json:"fecha"`
	Total          decimal.Decimal  `json:"total"`
	Observaciones  string           `json:"observaciones,omitempty"`
	FacturaUUID    *string          `json:"factura_uuid,omitempty"`
	ProductoNombre string           `json:"producto_nombre,omitempty"`
	ProductoCodigo string           `json:"producto_codigo,omitempty"`
	Variedad       string           `json:"variedad,omitempty"`
	Lote           string           `json:"lote,omitempty"`
	Cantidad       *decimal.Decimal `json:"cantidad,omitempty"`
	CantidadKg     *decimal.Decimal `json:"cantidad_kg,omitempty"`
	Unidad         string           `json:"unidad,omitempty"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
	Subtotal       *decimal.Decimal `json:"subtotal,omitempty"`
}
