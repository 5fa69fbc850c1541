package entity

import "github.com/shopspring/decimal"

// DetalleTransaccion es una línea de detalle de una transacción.
//
// Convención de signos en la persistencia: las piernas de consumo de una
// transformación y las mermas de secado llevan cantidad/cantidad_kg negativas
// con precio y subtotal en cero. En el dominio esos detalles se construyen
// a través de ledger.Consumo para no manipular negativos sueltos.
type DetalleTransaccion struct {
	ID             string
	TransaccionID  string
	ProductoID     string
	Variedad       string
	Cantidad       decimal.Decimal
	CantidadKg     decimal.Decimal
	Unidad         string
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
	Lote           string // texto libre; puede referir a un lote derivado LOTE-X-T1
}
