package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del libro mayor.
const (
	TipoCompra         = "compra"
	TipoVenta          = "venta"
	TipoTransformacion = "transformacion"
	TipoSecado         = "secado"
	TipoDevolucion     = "devolucion"
	TipoServicioSecado = "servicio_secado"
	TipoServicioPelado = "servicio_pelado"
)

// TiposFacturables son los tipos que pueden exponerse como factura pública.
var TiposFacturables = []string{TipoVenta, TipoServicioSecado, TipoServicioPelado}

// Transaccion es la cabecera de una operación del libro mayor.
// Total es con signo: negativo para mermas y devoluciones.
type Transaccion struct {
	ID            string
	Tipo          string
	Nombre        string // contraparte: proveedor, comprador, cliente o descripción
	Fecha         time.Time
	FacturaUUID   *string // único cuando existe; se asigna al crear ventas/servicios
	Total         decimal.Decimal
	Observaciones string
	IngenioID     string
}

// EsFacturable indica si el tipo admite factura (venta o servicios).
func (t *Transaccion) EsFacturable() bool {
	for _, tipo := range TiposFacturables {
		if t.Tipo == tipo {
			return true
		}
	}
	return false
}
