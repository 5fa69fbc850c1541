package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FacturaDetalleResponse una línea de la factura pública.
type FacturaDetalleResponse struct {
	ProductoNombre string          `json:"producto_nombre"`
	Variedad       string          `json:"variedad,omitempty"`
	Lote           string          `json:"lote"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Unidad         string          `json:"unidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// FacturaResponse la factura pública completa, accesible por su UUID.
type FacturaResponse struct {
	UUID           string                   `json:"uuid"`
	Tipo           string                   `json:"tipo"`
	Fecha          time.Time                `json:"fecha"`
	Contraparte    string                   `json:"contraparte"`
	IngenioNombre  string                   `json:"ingenio_nombre"`
	IngenioNIT     string                   `json:"ingenio_nit,omitempty"`
	IngenioDir     string                   `json:"ingenio_direccion,omitempty"`
	IngenioCelular string                   `json:"ingenio_celular,omitempty"`
	Detalles       []FacturaDetalleResponse `json:"detalles"`
	Subtotal       decimal.Decimal          `json:"subtotal"`
	IVA            decimal.Decimal          `json:"iva"`
	Total          decimal.Decimal          `json:"total"`
}

// FacturaUUIDResponse respuesta del lookup de UUID por transacción.
type FacturaUUIDResponse struct {
	TransaccionID string `json:"transaccion_id"`
	FacturaUUID   string `json:"factura_uuid"`
}
