package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote en inventario. La única transición válida es mojado -> seco.
const (
	EstadoMojado = "mojado"
	EstadoSeco   = "seco"
)

// Unidades de masa usadas en inventario y detalles.
// Los lotes derivados de una transformación se registran con 'quintales'.
const (
	UnidadQuintal   = "quintal"
	UnidadFanega    = "fanega"
	UnidadQuintales = "quintales"
)

// ItemInventario representa un lote físico en stock.
//
// Invariante: CantidadKg/Cantidad se fija al crear el lote según la unidad y se
// conserva en cada merma parcial (la merma es proporcional, no independiente).
// Los lotes nunca se borran; un lote agotado queda con cantidad ~0 y se filtra
// de las vistas activas con un umbral sobre CantidadKg.
type ItemInventario struct {
	ID                  string
	ProductoID          string
	Variedad            string
	Lote                string // código visible; único solo dentro del ingenio
	Cantidad            decimal.Decimal
	CantidadKg          decimal.Decimal
	Unidad              string
	Estado              string // mojado | seco
	FechaEntrada        time.Time
	FechaSalida         *time.Time
	PrecioVentaUnitario *decimal.Decimal // nulo hasta que se fija
	IngenioID           string
	AlmacenID           string
}
