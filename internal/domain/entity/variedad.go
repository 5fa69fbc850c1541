package entity

// Variedad etiqueta libre de cultivar (nombre único por ingenio). Se copia como
// texto a inventario y detalle de transacción; no es una referencia fuerte.
type Variedad struct {
	ID        string
	Nombre    string
	IngenioID string
}
