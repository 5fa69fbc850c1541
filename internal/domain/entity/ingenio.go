package entity

// Ingenio representa un ingenio arrocero: la frontera multi-tenant del sistema.
// Todo inventario, transacción, almacén, variedad y usuario pertenece a un ingenio.
type Ingenio struct {
	ID        string
	Nombre    string // único a nivel global
	Direccion string
	NIT       string // opcional
	Celular   string
}
