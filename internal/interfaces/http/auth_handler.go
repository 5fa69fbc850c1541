package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sistemaarroz/ingenio-api/internal/application/auth"
	"github.com/sistemaarroz/ingenio-api/internal/application/dto"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
)

// AuthHandler maneja registro, login y administración de cuentas.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Registro da de alta un ingenio nuevo con su usuario jefe y devuelve la sesión.
func (h *AuthHandler) Registro(c *fiber.Ctx) error {
	var in dto.RegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sesion, err := h.uc.RegistrarIngenioYJefe(c.Context(), in.NombreIngenio, in.Direccion, in.Email, in.Password)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sesionToResponse(sesion))
}

// Login verifica credenciales y devuelve el token de sesión.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	sesion, err := h.uc.Login(in.Email, in.Password)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(sesionToResponse(sesion))
}

// CrearUsuario crea una cuenta sub-jefe o empleado en el ingenio del actor.
func (h *AuthHandler) CrearUsuario(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	usuario, err := h.uc.CrearUsuario(GetNivelAcceso(c), GetIngenioID(c), in.Email, in.Password, in.NivelAcceso)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuarioToResponse(usuario))
}

// ListarUsuarios lista las cuentas del ingenio del actor.
func (h *AuthHandler) ListarUsuarios(c *fiber.Ctx) error {
	usuarios, err := h.uc.ListarUsuarios(GetNivelAcceso(c), GetIngenioID(c))
	if err != nil {
		return responderError(c, err)
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, *usuarioToResponse(u))
	}
	return c.JSON(out)
}

// CambiarPassword cambia la contraseña del usuario autenticado.
func (h *AuthHandler) CambiarPassword(c *fiber.Ctx) error {
	var in dto.CambiarPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CambiarPassword(GetUserID(c), in.PasswordActual, in.PasswordNueva); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleAcceso activa o desactiva la cuenta indicada (solo jefe).
func (h *AuthHandler) ToggleAcceso(c *fiber.Ctx) error {
	targetID := c.Params("id")
	activo, err := h.uc.ToggleAcceso(GetUserID(c), GetNivelAcceso(c), GetIngenioID(c), targetID)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.ToggleAccesoResponse{UsuarioID: targetID, Activo: activo})
}

func sesionToResponse(s *auth.SesionIniciada) dto.LoginResponse {
	return dto.LoginResponse{
		Token:       s.Token,
		UsuarioID:   s.UsuarioID,
		Email:       s.Email,
		NivelAcceso: s.NivelAcceso,
		IngenioID:   s.IngenioID,
	}
}

func usuarioToResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:          u.ID,
		Email:       u.Email,
		NivelAcceso: u.NivelAcceso,
		IngenioID:   u.IngenioID,
		Activo:      u.Activo,
	}
}
