package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sistemaarroz/ingenio-api/internal/application/usecase"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// InventarioHandler expone las vistas de inventario y el historial.
type InventarioHandler struct {
	uc *usecase.InventarioUseCase
}

// NewInventarioHandler construye el handler de inventario.
func NewInventarioHandler(uc *usecase.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Listar lista los lotes activos del ingenio con filtros por query string.
func (h *InventarioHandler) Listar(c *fiber.Ctx) error {
	filtro := repository.FiltroInventario{
		ProductoID: c.Query("producto_id"),
		Lote:       c.Query("lote"),
		Variedad:   c.Query("variedad"),
		AlmacenID:  c.Query("almacen_id"),
	}
	filtro.FechaInicio = parseFecha(c.Query("fecha_inicio"))
	filtro.FechaFin = parseFecha(c.Query("fecha_fin"))

	items, err := h.uc.ListarActivos(GetIngenioID(c), filtro)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(items)
}

// Obtener devuelve el detalle de un lote, con su precio de compra original.
func (h *InventarioHandler) Obtener(c *fiber.Ctx) error {
	item, err := h.uc.Obtener(c.Params("id"), GetIngenioID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(item)
}

// ListarTransformables lista los lotes secos de materia prima con stock.
func (h *InventarioHandler) ListarTransformables(c *fiber.Ctx) error {
	items, err := h.uc.ListarTransformables(GetIngenioID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(items)
}

// ListarSecables lista los lotes mojados de materia prima con stock.
func (h *InventarioHandler) ListarSecables(c *fiber.Ctx) error {
	items, err := h.uc.ListarSecables(GetIngenioID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(items)
}

// Historial lista el historial de transacciones con filtros por query string.
func (h *InventarioHandler) Historial(c *fiber.Ctx) error {
	filtro := repository.FiltroHistorial{
		Tipo:       c.Query("tipo"),
		ProductoID: c.Query("producto_id"),
		Nombre:     c.Query("nombre"),
		Lote:       c.Query("lote"),
	}
	filtro.FechaInicio = parseFecha(c.Query("fecha_inicio"))
	filtro.FechaFin = parseFecha(c.Query("fecha_fin"))

	movimientos, err := h.uc.ListarHistorial(GetIngenioID(c), filtro)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(movimientos)
}

// parseFecha interpreta YYYY-MM-DD; nil si viene vacío o malformado.
func parseFecha(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
