package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y datos de la sesión.
type LoginResponse struct {
	Token       string `json:"token"`
	UsuarioID   string `json:"usuario_id"`
	Email       string `json:"email"`
	NivelAcceso string `json:"nivel_acceso"`
	IngenioID   string `json:"ingenio_id"`
}

// RegistroRequest alta de un ingenio nuevo con su usuario jefe.
type RegistroRequest struct {
	NombreIngenio string `json:"nombre_ingenio" validate:"required,min=1,max=200"`
	Direccion     string `json:"direccion"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
}

// CrearUsuarioRequest alta de un sub-jefe o empleado (solo jefe).
type CrearUsuarioRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	NivelAcceso string `json:"nivel_acceso" validate:"required,oneof=sub-jefe empleado"`
}

// UsuarioResponse salida de un usuario (sin hash).
type UsuarioResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	NivelAcceso string `json:"nivel_acceso"`
	IngenioID   string `json:"ingenio_id"`
	Activo      bool   `json:"activo"`
}

// CambiarPasswordRequest cambio de contraseña del propio usuario.
type CambiarPasswordRequest struct {
	PasswordActual string `json:"password_actual" validate:"required"`
	PasswordNueva  string `json:"password_nueva" validate:"required,min=6"`
}

// ToggleAccesoResponse estado resultante de la cuenta tras el toggle.
type ToggleAccesoResponse struct {
	UsuarioID string `json:"usuario_id"`
	Activo    bool   `json:"activo"`
}
