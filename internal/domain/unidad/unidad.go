// Package unidad contiene las conversiones puras entre quintal, fanega y
// kilogramo (servicio de dominio, sin estado).
package unidad

import (
	"github.com/shopspring/decimal"

	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
)

// Factores fijos de conversión a kilogramos.
var (
	KgPorQuintal = decimal.NewFromInt(46)
	KgPorFanega  = decimal.NewFromInt(200)
)

// AKilogramos convierte una cantidad en la unidad dada a kilogramos.
// Una unidad no reconocida se trata como si ya fueran kilogramos, sin error:
// comportamiento heredado que los llamadores asumen, no "corregirlo" aquí.
func AKilogramos(cantidad decimal.Decimal, unidad string) decimal.Decimal {
	switch unidad {
	case entity.UnidadQuintal, entity.UnidadQuintales:
		return cantidad.Mul(KgPorQuintal)
	case entity.UnidadFanega:
		return cantidad.Mul(KgPorFanega)
	default:
		return cantidad
	}
}

// AFanegas convierte una cantidad en quintales o fanegas a fanegas.
// Se usa para liquidar servicios a clientes, que se cobran por fanega.
func AFanegas(cantidad decimal.Decimal, unidad string) (decimal.Decimal, error) {
	switch unidad {
	case entity.UnidadFanega:
		return cantidad, nil
	case entity.UnidadQuintal, entity.UnidadQuintales:
		return cantidad.Mul(KgPorQuintal).Div(KgPorFanega), nil
	default:
		return decimal.Zero, domain.Invalidf("unidad '%s' no soportada para el cálculo de servicio", unidad)
	}
}

// DeQuintales convierte una cantidad expresada en quintales a la unidad destino.
// Solo soporta quintal y fanega; se usa para aplicar la merma de secado
// (capturada en quintales) sobre lotes almacenados en otra unidad.
func DeQuintales(cantidad decimal.Decimal, unidadDestino string) (decimal.Decimal, error) {
	switch unidadDestino {
	case entity.UnidadQuintal, entity.UnidadQuintales:
		return cantidad, nil
	case entity.UnidadFanega:
		return cantidad.Mul(KgPorQuintal).Div(KgPorFanega), nil
	default:
		return decimal.Zero, domain.Invalidf("no se puede convertir la merma para la unidad '%s'; solo se soporta 'quintal' y 'fanega'", unidadDestino)
	}
}

// KgAQuintales y KgAFanegas componen la vista "X quintales (Y fanegas)".
func KgAQuintales(kg decimal.Decimal) decimal.Decimal { return kg.Div(KgPorQuintal) }
func KgAFanegas(kg decimal.Decimal) decimal.Decimal   { return kg.Div(KgPorFanega) }

// MostrarEnUnidades devuelve la cantidad convertida para presentación
// ("X quintales (Y fanegas)"). Si el valor en kg no es un número no negativo,
// convertido es false y el llamador debe mostrar el valor original sin tocar.
func MostrarEnUnidades(kg decimal.Decimal) (quintales, fanegas decimal.Decimal, convertido bool) {
	if kg.IsNegative() {
		return decimal.Zero, decimal.Zero, false
	}
	return KgAQuintales(kg), KgAFanegas(kg), true
}
