package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sistemaarroz/ingenio-api/internal/application/dto"
	"github.com/sistemaarroz/ingenio-api/internal/application/ledger"
)

// LedgerHandler maneja las operaciones del libro mayor: compras, ventas,
// devoluciones, transformaciones, secado y servicios a clientes.
type LedgerHandler struct {
	uc *ledger.LedgerUseCase
}

// NewLedgerHandler construye el handler del libro mayor.
func NewLedgerHandler(uc *ledger.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// RegistrarCompra registra una compra de grano y crea el lote en inventario.
func (h *LedgerHandler) RegistrarCompra(c *fiber.Ctx) error {
	var in dto.CompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	loteRegistrado, err := h.uc.RegistrarCompra(c.Context(), ledger.CompraInput{
		IngenioID:  GetIngenioID(c),
		Proveedor:  in.Proveedor,
		ProductoID: in.ProductoID,
		Variedad:   in.Variedad,
		Cantidad:   in.Cantidad,
		Unidad:     in.Unidad,
		Precio:     in.Precio,
		Estado:     in.Estado,
		AlmacenID:  in.AlmacenID,
		Lote:       in.Lote,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"lote": loteRegistrado})
}

// RegistrarVenta registra una venta multi-lote desde el carrito.
func (h *LedgerHandler) RegistrarVenta(c *fiber.Ctx) error {
	var in dto.VentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lineas := make([]ledger.LineaPedido, 0, len(in.Lineas))
	for _, l := range in.Lineas {
		lineas = append(lineas, ledger.LineaPedido{ItemID: l.ItemID, Cantidad: l.Cantidad, Precio: l.Precio})
	}
	carrito, err := h.uc.ArmarCarrito(GetIngenioID(c), lineas)
	if err != nil {
		return responderError(c, err)
	}
	res, err := h.uc.RegistrarVenta(c.Context(), ledger.VentaInput{
		IngenioID:     GetIngenioID(c),
		Comprador:     in.Comprador,
		Observaciones: in.Observaciones,
		Carrito:       carrito,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.VentaResponse{
		TransaccionID: res.TransaccionID,
		FacturaUUID:   res.FacturaUUID,
	})
}

// RegistrarDevolucion registra la devolución parcial o total de una venta.
func (h *LedgerHandler) RegistrarDevolucion(c *fiber.Ctx) error {
	var in dto.DevolucionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.RegistrarDevolucion(c.Context(), ledger.DevolucionInput{
		IngenioID:           GetIngenioID(c),
		TransaccionOrigenID: in.VentaID,
		CantidadDevuelta:    in.Cantidad,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// RegistrarTransformacion divide un lote seco en productos derivados.
func (h *LedgerHandler) RegistrarTransformacion(c *fiber.Ctx) error {
	var in dto.TransformacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	salidas := make([]ledger.SalidaTransformacion, 0, len(in.Salidas))
	for _, s := range in.Salidas {
		salidas = append(salidas, ledger.SalidaTransformacion{ProductoID: s.ProductoID, Cantidad: s.Cantidad})
	}
	id, err := h.uc.RegistrarTransformacion(c.Context(), ledger.TransformacionInput{
		IngenioID:        GetIngenioID(c),
		ItemOrigenID:     in.ItemOrigenID,
		CantidadUsada:    in.CantidadUsada,
		Salidas:          salidas,
		Observaciones:    in.Observaciones,
		AlmacenDestinoID: in.AlmacenDestinoID,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// SecarLote pasa un lote mojado a seco descontando la merma.
func (h *LedgerHandler) SecarLote(c *fiber.Ctx) error {
	var in dto.SecadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.SecarLote(c.Context(), ledger.SecadoInput{
		IngenioID:        GetIngenioID(c),
		ItemID:           in.ItemID,
		PerdidaQuintales: in.PerdidaQuintales,
		Observaciones:    in.Observaciones,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// RegistrarServicio registra el cobro de un servicio a un cliente externo.
func (h *LedgerHandler) RegistrarServicio(c *fiber.Ctx) error {
	var in dto.ServicioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.RegistrarServicioCliente(c.Context(), ledger.ServicioInput{
		IngenioID:       GetIngenioID(c),
		Tipo:            in.Tipo,
		Cliente:         in.Cliente,
		ProductoID:      in.ProductoID,
		Variedad:        in.Variedad,
		Cantidad:        in.Cantidad,
		Unidad:          in.Unidad,
		PrecioPorFanega: in.PrecioPorFanega,
		Observaciones:   in.Observaciones,
		LoteCliente:     in.LoteCliente,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ServicioResponse{
		TransaccionID: res.TransaccionID,
		FacturaUUID:   res.FacturaUUID,
	})
}

// GenerarLote propone un código de lote libre para el formulario de compra.
func (h *LedgerHandler) GenerarLote(c *fiber.Ctx) error {
	generado, err := h.uc.GenerarLote(GetIngenioID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"lote": generado})
}

// ActualizarPrecioVenta fija el precio de venta unitario de un lote.
func (h *LedgerHandler) ActualizarPrecioVenta(c *fiber.Ctx) error {
	var in dto.PrecioVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ActualizarPrecioVenta(GetIngenioID(c), c.Params("id"), in.Precio); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
