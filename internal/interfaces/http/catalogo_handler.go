package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sistemaarroz/ingenio-api/internal/application/dto"
	"github.com/sistemaarroz/ingenio-api/internal/application/usecase"
)

// CatalogoHandler expone productos, almacenes, variedades y el perfil
// del ingenio.
type CatalogoHandler struct {
	productoUC *usecase.ProductoUseCase
	almacenUC  *usecase.AlmacenUseCase
	ingenioUC  *usecase.IngenioUseCase
}

// NewCatalogoHandler construye el handler de catálogos.
func NewCatalogoHandler(productoUC *usecase.ProductoUseCase, almacenUC *usecase.AlmacenUseCase, ingenioUC *usecase.IngenioUseCase) *CatalogoHandler {
	return &CatalogoHandler{productoUC: productoUC, almacenUC: almacenUC, ingenioUC: ingenioUC}
}

// ListarProductos devuelve el catálogo fijo de productos.
func (h *CatalogoHandler) ListarProductos(c *fiber.Ctx) error {
	productos, err := h.productoUC.Listar()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(productos)
}

// CrearAlmacen da de alta una bodega.
func (h *CatalogoHandler) CrearAlmacen(c *fiber.Ctx) error {
	var req dto.AlmacenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "cuerpo inválido",
		})
	}
	almacen, err := h.almacenUC.CrearAlmacen(GetIngenioID(c), req.Nombre)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(almacen)
}

// ListarAlmacenes lista las bodegas del ingenio.
func (h *CatalogoHandler) ListarAlmacenes(c *fiber.Ctx) error {
	almacenes, err := h.almacenUC.ListarAlmacenes(GetIngenioID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(almacenes)
}

// CrearVariedad da de alta una variedad de cultivar.
func (h *CatalogoHandler) CrearVariedad(c *fiber.Ctx) error {
	var req dto.VariedadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "cuerpo inválido",
		})
	}
	variedad, err := h.almacenUC.CrearVariedad(GetIngenioID(c), req.Nombre)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(variedad)
}

// ListarVariedades lista las variedades del ingenio.
func (h *CatalogoHandler) ListarVariedades(c *fiber.Ctx) error {
	variedades, err := h.almacenUC.ListarVariedades(GetIngenioID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(variedades)
}

// ObtenerIngenio devuelve el perfil del ingenio del actor.
func (h *CatalogoHandler) ObtenerIngenio(c *fiber.Ctx) error {
	perfil, err := h.ingenioUC.ObtenerPerfil(GetIngenioID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(perfil)
}

// ActualizarIngenio actualiza el perfil del ingenio (solo jefe).
func (h *CatalogoHandler) ActualizarIngenio(c *fiber.Ctx) error {
	var req dto.ActualizarIngenioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "cuerpo inválido",
		})
	}
	perfil, err := h.ingenioUC.ActualizarPerfil(GetNivelAcceso(c), GetIngenioID(c), req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(perfil)
}
