package dto

import "github.com/shopspring/decimal"

// CompraRequest registro de una compra de grano.
type CompraRequest struct {
	Proveedor  string          `json:"proveedor" validate:"required,min=1,max=200"`
	ProductoID string          `json:"producto_id" validate:"required,uuid"`
	Variedad   string          `json:"variedad"`
	Lote       string          `json:"lote"` // vacío: se genera LOTE-YYMMDD-HHMMSS
	Cantidad   decimal.Decimal `json:"cantidad"`
	Unidad     string          `json:"unidad" validate:"required"`
	Precio     decimal.Decimal `json:"precio"`
	Estado     string          `json:"estado" validate:"required,oneof=mojado seco"`
	AlmacenID  string          `json:"almacen_id" validate:"required,uuid"`
}

// LineaVentaRequest una línea del carrito de venta.
type LineaVentaRequest struct {
	ItemID   string          `json:"item_id" validate:"required,uuid"`
	Cantidad decimal.Decimal `json:"cantidad"`
	Precio   decimal.Decimal `json:"precio"`
}

// VentaRequest registro de una venta multi-lote.
type VentaRequest struct {
	Comprador     string              `json:"comprador" validate:"required,min=1,max=200"`
	Lineas        []LineaVentaRequest `json:"lineas" validate:"required,min=1,dive"`
	Observaciones string              `json:"observaciones"`
}

// VentaResponse resultado de una venta: transacción y UUID de la factura.
type VentaResponse struct {
	TransaccionID string `json:"transaccion_id"`
	FacturaUUID   string `json:"factura_uuid"`
}

// DevolucionRequest devolución parcial o total de una venta.
type DevolucionRequest struct {
	VentaID  string          `json:"venta_id" validate:"required,uuid"`
	Cantidad decimal.Decimal `json:"cantidad"`
}

// SalidaTransformacionRequest un producto resultante del pelado, en quintales.
type SalidaTransformacionRequest struct {
	ProductoID string          `json:"producto_id" validate:"required,uuid"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}

// TransformacionRequest pelado de un lote seco en productos derivados.
type TransformacionRequest struct {
	ItemOrigenID     string                        `json:"item_origen_id" validate:"required,uuid"`
	CantidadUsada    decimal.Decimal               `json:"cantidad_usada"`
	Salidas          []SalidaTransformacionRequest `json:"salidas" validate:"required,min=1,dive"`
	AlmacenDestinoID string                        `json:"almacen_destino_id" validate:"required,uuid"`
	Observaciones    string                        `json:"observaciones"`
}

// SecadoRequest secado de un lote mojado con su merma en quintales.
type SecadoRequest struct {
	ItemID           string          `json:"item_id" validate:"required,uuid"`
	PerdidaQuintales decimal.Decimal `json:"perdida_quintales"`
	Observaciones    string          `json:"observaciones"`
}

// ServicioRequest cobro de un servicio de secado o pelado a un cliente externo.
type ServicioRequest struct {
	Tipo            string          `json:"tipo" validate:"required,oneof=servicio_secado servicio_pelado"`
	Cliente         string          `json:"cliente" validate:"required,min=1,max=200"`
	ProductoID      string          `json:"producto_id" validate:"required,uuid"`
	Variedad        string          `json:"variedad"`
	Cantidad        decimal.Decimal `json:"cantidad"`
	Unidad          string          `json:"unidad" validate:"required"`
	PrecioPorFanega decimal.Decimal `json:"precio_por_fanega"`
	Observaciones   string          `json:"observaciones"`
	LoteCliente     string          `json:"lote_cliente"`
}

// ServicioResponse resultado de un servicio: transacción y UUID de la factura.
type ServicioResponse struct {
	TransaccionID string `json:"transaccion_id"`
	FacturaUUID   string `json:"factura_uuid"`
}

// PrecioVentaRequest fija el precio de venta unitario de un lote.
type PrecioVentaRequest struct {
	Precio decimal.Decimal `json:"precio"`
}
