package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDResponse respuesta mínima con el ID del recurso creado.
type IDResponse struct {
	ID string `json:"id"`
}
