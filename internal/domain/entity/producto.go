package entity

// Códigos de los productos fijos del catálogo (sembrados en la migración).
const (
	CodigoArrozSemilla = "SEM"
	CodigoArrozT34     = "T34"
	CodigoArrozChala   = "ACH"
	CodigoGranillo     = "GRN"
	CodigoArrozBlanco  = "ARZ"
	CodigoAfrecho      = "AFR"
	CodigoColilla      = "COL"
	CodigoArrozPopular = "POP"
)

// Producto es un producto del catálogo fijo (no pertenece a ningún ingenio).
type Producto struct {
	ID               string
	Nombre           string
	Codigo           string // único
	RequiereVariedad bool
}
