package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sistemaarroz/ingenio-api/internal/application/billing"
	"github.com/sistemaarroz/ingenio-api/internal/application/dto"
)

// FacturaHandler expone las facturas: lookup de UUID para usuarios autenticados
// y las vistas públicas accesibles solo con el UUID.
type FacturaHandler struct {
	uc *billing.BillingUseCase
}

// NewFacturaHandler construye el handler de facturación.
func NewFacturaHandler(uc *billing.BillingUseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc}
}

// ObtenerUUID devuelve el UUID de factura de una transacción del ingenio,
// generándolo si la transacción es anterior a los UUIDs.
func (h *FacturaHandler) ObtenerUUID(c *fiber.Ctx) error {
	transaccionID := c.Params("id")
	facturaUUID, err := h.uc.ObtenerUUIDFactura(transaccionID, GetIngenioID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.FacturaUUIDResponse{
		TransaccionID: transaccionID,
		FacturaUUID:   facturaUUID,
	})
}

// ObtenerPublica resuelve una factura por su UUID. Ruta pública: el UUID es
// la credencial.
func (h *FacturaHandler) ObtenerPublica(c *fiber.Ctx) error {
	factura, err := h.uc.ObtenerFacturaPorUUID(c.Params("uuid"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(facturaToResponse(factura))
}

// DescargarPDF devuelve la factura renderizada como PDF. Ruta pública.
func (h *FacturaHandler) DescargarPDF(c *fiber.Ctx) error {
	documento, err := h.uc.FacturaPDF(c.Params("uuid"))
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="factura-`+c.Params("uuid")+`.pdf"`)
	return c.Send(documento)
}

func facturaToResponse(f *billing.Factura) dto.FacturaResponse {
	detalles := make([]dto.FacturaDetalleResponse, 0, len(f.Detalles))
	for _, d := range f.Detalles {
		detalles = append(detalles, dto.FacturaDetalleResponse{
			ProductoNombre: d.ProductoNombre,
			Variedad:       d.Detalle.Variedad,
			Lote:           d.Detalle.Lote,
			Cantidad:       d.Detalle.Cantidad,
			Unidad:         d.Detalle.Unidad,
			PrecioUnitario: d.Detalle.PrecioUnitario,
			Subtotal:       d.Detalle.Subtotal,
		})
	}
	return dto.FacturaResponse{
		UUID:           f.UUID,
		Tipo:           f.Cabecera.Transaccion.Tipo,
		Fecha:          f.Cabecera.Transaccion.Fecha,
		Contraparte:    f.Cabecera.Transaccion.Nombre,
		IngenioNombre:  f.Cabecera.Ingenio.Nombre,
		IngenioNIT:     f.Cabecera.Ingenio.NIT,
		IngenioDir:     f.Cabecera.Ingenio.Direccion,
		IngenioCelular: f.Cabecera.Ingenio.Celular,
		Detalles:       detalles,
		Subtotal:       f.Subtotal,
		IVA:            f.IVA,
		Total:          f.Total,
	}
}
