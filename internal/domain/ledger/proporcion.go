package ledger

import "github.com/shopspring/decimal"

// KgProporcional calcula los kilogramos que corresponden a una porción de un
// lote, conservando la razón CantidadKg/Cantidad del lote:
//
//	kg = porcion × (cantidadKg / cantidad)
//
// Con cantidad cero devuelve cero (lote agotado, nada que prorratear).
func KgProporcional(cantidad, cantidadKg, porcion decimal.Decimal) decimal.Decimal {
	if !cantidad.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return porcion.Mul(cantidadKg.Div(cantidad))
}

// Mermar devuelve cantidad y kilogramos restantes tras retirar una porción,
// manteniendo la proporción kg/cantidad del lote.
func Mermar(cantidad, cantidadKg, porcion decimal.Decimal) (nuevaCantidad, nuevaCantidadKg decimal.Decimal) {
	nuevaCantidad = cantidad.Sub(porcion)
	nuevaCantidadKg = KgProporcional(cantidad, cantidadKg, nuevaCantidad)
	return nuevaCantidad, nuevaCantidadKg
}
