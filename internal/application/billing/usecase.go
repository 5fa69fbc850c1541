// Package billing expone las facturas públicas de ventas y servicios.
package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// TasaIVAVentas es el impuesto aplicado a ventas de producto. Los servicios
// de secado y pelado no gravan IVA.
var TasaIVAVentas = decimal.NewFromFloat(0.12)

// GeneradorPDF renderiza una factura como documento PDF.
type GeneradorPDF interface {
	GenerarFactura(f *Factura) ([]byte, error)
}

// Factura es la vista completa de una factura pública.
type Factura struct {
	UUID     string
	Cabecera repository.FacturaCabecera
	Detalles []*repository.DetalleVista
	Subtotal decimal.Decimal
	IVA      decimal.Decimal
	Total    decimal.Decimal
}

// BillingUseCase aplica reglas de negocio de facturación.
type BillingUseCase struct {
	txRepo  repository.TransaccionRepository
	detRepo repository.DetalleRepository
	pdfGen  GeneradorPDF
}

// NewBillingUseCase construye el caso de uso con sus puertos.
func NewBillingUseCase(txRepo repository.TransaccionRepository, detRepo repository.DetalleRepository, pdfGen GeneradorPDF) *BillingUseCase {
	return &BillingUseCase{txRepo: txRepo, detRepo: detRepo, pdfGen: pdfGen}
}

// ObtenerUUIDFactura devuelve el UUID de factura de una transacción facturable
// del ingenio. Las ventas y servicios registrados antes de que existieran los
// UUIDs no tienen uno: en ese caso se genera y persiste en el momento.
func (uc *BillingUseCase) ObtenerUUIDFactura(transaccionID, ingenioID string) (string, error) {
	facturaUUID, found, err := uc.txRepo.GetFacturaUUID(transaccionID, ingenioID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", domain.ErrNotFound
	}
	if facturaUUID != nil && *facturaUUID != "" {
		return *facturaUUID, nil
	}
	nuevo := uuid.New().String()
	if err := uc.txRepo.SetFacturaUUID(transaccionID, ingenioID, nuevo); err != nil {
		return "", err
	}
	return nuevo, nil
}

// ObtenerFacturaPorUUID resuelve una factura pública por su UUID. No exige
// autenticación: el UUID mismo es la capacidad de acceso. Solo resuelve
// transacciones facturables.
func (uc *BillingUseCase) ObtenerFacturaPorUUID(facturaUUID string) (*Factura, error) {
	if facturaUUID == "" {
		return nil, domain.Invalidf("uuid de factura vacío")
	}
	cabecera, err := uc.txRepo.GetPorFacturaUUID(facturaUUID)
	if err != nil {
		return nil, err
	}
	if cabecera == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.detRepo.ListByTransaccion(cabecera.Transaccion.ID)
	if err != nil {
		return nil, err
	}
	subtotal, iva, total := CalcularTotales(&cabecera.Transaccion)
	return &Factura{
		UUID:     facturaUUID,
		Cabecera: *cabecera,
		Detalles: detalles,
		Subtotal: subtotal,
		IVA:      iva,
		Total:    total,
	}, nil
}

// FacturaPDF genera el PDF de una factura pública.
func (uc *BillingUseCase) FacturaPDF(facturaUUID string) ([]byte, error) {
	factura, err := uc.ObtenerFacturaPorUUID(facturaUUID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerarFactura(factura)
}

// AsignarUUIDsFaltantes asigna UUID a toda transacción facturable que no tenga
// uno. Devuelve cuántas se actualizaron. Pensado para la herramienta de
// mantenimiento, no para el flujo normal.
func (uc *BillingUseCase) AsignarUUIDsFaltantes() (int, error) {
	pendientes, err := uc.txRepo.ListSinFacturaUUID()
	if err != nil {
		return 0, err
	}
	asignadas := 0
	for _, p := range pendientes {
		if err := uc.txRepo.SetFacturaUUID(p.ID, p.IngenioID, uuid.New().String()); err != nil {
			return asignadas, err
		}
		asignadas++
	}
	return asignadas, nil
}

// CalcularTotales devuelve subtotal, IVA y total de una transacción facturable.
// Las ventas gravan 12%; los servicios van con IVA cero.
func CalcularTotales(t *entity.Transaccion) (subtotal, iva, total decimal.Decimal) {
	subtotal = t.Total
	if t.Tipo == entity.TipoVenta {
		iva = subtotal.Mul(TasaIVAVentas).Round(2)
	} else {
		iva = decimal.Zero
	}
	return subtotal, iva, subtotal.Add(iva)
}
