package entity

// Almacen representa una bodega física de un ingenio (nombre único por ingenio).
type Almacen struct {
	ID        string
	Nombre    string
	IngenioID string
}
