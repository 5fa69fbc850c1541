package entity

import "time"

// LoteAncestro es la arista de procedencia entre un lote de origen y un lote
// derivado de una transformación. Sustituye el parseo del sufijo -T<n> en los
// joins de valoración: la relación vive como FK real en la base de datos.
type LoteAncestro struct {
	OrigenItemID   string
	DerivadoItemID string
	CreatedAt      time.Time
}
