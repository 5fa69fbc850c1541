package dto

// AlmacenRequest alta de una bodega.
type AlmacenRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=200"`
}

// AlmacenResponse salida de una bodega.
type AlmacenResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	IngenioID string `json:"ingenio_id"`
}

// VariedadRequest alta de una variedad de cultivar.
type VariedadRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=200"`
}

// VariedadResponse salida de una variedad.
type VariedadResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	IngenioID string `json:"ingenio_id"`
}

// ProductoResponse un producto del catálogo fijo.
type ProductoResponse struct {
	ID               string `json:"id"`
	Nombre           string `json:"nombre"`
	Codigo           string `json:"codigo"`
	RequiereVariedad bool   `json:"requiere_variedad"`
}

// IngenioResponse perfil del ingenio.
type IngenioResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion,omitempty"`
	NIT       string `json:"nit,omitempty"`
	Celular   string `json:"celular,omitempty"`
}

// ActualizarIngenioRequest actualización del perfil del ingenio (solo jefe).
type ActualizarIngenioRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Direccion string `json:"direccion"`
	NIT       string `json:"nit"`
	Celular   string `json:"celular"`
}
