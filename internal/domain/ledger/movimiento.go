// Package ledger contiene los servicios de dominio puros del libro mayor:
// piernas de movimiento con signo etiquetado y la aritmética de merma
// proporcional de los lotes.
package ledger

import "github.com/shopspring/decimal"

// TipoMovimiento etiqueta una pierna de detalle como abono o consumo, en lugar
// de depender del signo de un número suelto.
type TipoMovimiento int

const (
	// Abono suma stock o registra una salida vendida/devuelta con precio.
	Abono TipoMovimiento = iota
	// Consumo registra la pierna negativa de una transformación o la merma de
	// un secado: cantidad negativa, precio y subtotal en cero.
	Consumo
)

// Movimiento es una pierna de detalle todavía sin persistir. Cantidad y
// CantidadKg son siempre positivas; el signo lo aporta el tipo.
type Movimiento struct {
	Tipo       TipoMovimiento
	Cantidad   decimal.Decimal
	CantidadKg decimal.Decimal
}

// NuevoAbono construye una pierna positiva.
func NuevoAbono(cantidad, cantidadKg decimal.Decimal) Movimiento {
	return Movimiento{Tipo: Abono, Cantidad: cantidad.Abs(), CantidadKg: cantidadKg.Abs()}
}

// NuevoConsumo construye una pierna de consumo/merma.
func NuevoConsumo(cantidad, cantidadKg decimal.Decimal) Movimiento {
	return Movimiento{Tipo: Consumo, Cantidad: cantidad.Abs(), CantidadKg: cantidadKg.Abs()}
}

// CantidadFirmada devuelve la cantidad con la convención de signos persistida.
func (m Movimiento) CantidadFirmada() decimal.Decimal {
	if m.Tipo == Consumo {
		return m.Cantidad.Neg()
	}
	return m.Cantidad
}

// CantidadKgFirmada devuelve los kilogramos con la convención de signos persistida.
func (m Movimiento) CantidadKgFirmada() decimal.Decimal {
	if m.Tipo == Consumo {
		return m.CantidadKg.Neg()
	}
	return m.CantidadKg
}
