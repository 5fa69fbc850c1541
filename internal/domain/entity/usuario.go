package entity

// Niveles de acceso válidos para Usuario.
const (
	NivelJefe     = "jefe"
	NivelSubJefe  = "sub-jefe"
	NivelEmpleado = "empleado"
)

// Usuario representa un usuario del sistema (pertenece a un Ingenio).
type Usuario struct {
	ID           string
	Email        string // único global
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	NivelAcceso  string // jefe, sub-jefe, empleado
	IngenioID    string // vacío solo durante el bootstrap
	Activo       bool
}
