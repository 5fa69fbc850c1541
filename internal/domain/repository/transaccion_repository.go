package repository

import (
	"time"

	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
)

// TransaccionDetallada es una transacción junto con su primer detalle
// (suficiente para devoluciones y la vista de detalle de transacción).
type TransaccionDetallada struct {
	Transaccion    entity.Transaccion
	Detalle        entity.DetalleTransaccion
	ProductoNombre string
}

// FacturaCabecera es la cabecera de una factura pública: la transacción y los
// datos del ingenio emisor.
type FacturaCabecera struct {
	Transaccion entity.Transaccion
	Ingenio     entity.Ingenio
}

// FiltroHistorial filtros opcionales del historial de transacciones.
type FiltroHistorial struct {
	Tipo        string
	ProductoID  string
	Nombre      string // coincidencia parcial sobre la contraparte
	Lote        string // coincidencia parcial
	FechaInicio *time.Time
	FechaFin    *time.Time
}

// MovimientoHistorial es una fila del historial: transacción + detalle aplanados.
type MovimientoHistorial struct {
	Transaccion    entity.Transaccion
	Detalle        *entity.DetalleTransaccion // nulo si la transacción no tiene detalles
	ProductoNombre string
	ProductoCodigo string
}

// TransaccionRepository define el puerto de persistencia para transacciones.
type TransaccionRepository interface {
	// Create persiste la cabecera; asigna ID si viene vacío.
	Create(t *entity.Transaccion) error
	GetByID(id, ingenioID string) (*entity.Transaccion, error)
	// GetConDetalle devuelve la transacción con su primer detalle.
	GetConDetalle(id, ingenioID string) (*TransaccionDetallada, error)
	// GetFacturaUUID devuelve el UUID de factura de una transacción facturable.
	// found es false si la transacción no existe o no es facturable.
	GetFacturaUUID(id, ingenioID string) (uuid *string, found bool, err error)
	SetFacturaUUID(id, ingenioID, facturaUUID string) error
	// GetPorFacturaUUID búsqueda pública (sin filtro de ingenio), restringida
	// a los tipos facturables.
	GetPorFacturaUUID(facturaUUID string) (*FacturaCabecera, error)
	ListHistorial(ingenioID string, filtro FiltroHistorial) ([]*MovimientoHistorial, error)
	// ListSinFacturaUUID lista transacciones facturables sin UUID
	// (utilidad de mantenimiento).
	ListSinFacturaUUID() ([]TransaccionSinFactura, error)
}

// TransaccionSinFactura identifica una transacción facturable sin UUID asignado.
type TransaccionSinFactura struct {
	ID        string
	IngenioID string
}

// DetalleVista es un detalle con el nombre de producto resuelto.
type DetalleVista struct {
	Detalle        entity.DetalleTransaccion
	ProductoNombre string
}

// DetalleRepository define el puerto de persistencia para detalles de transacción.
type DetalleRepository interface {
	Create(d *entity.DetalleTransaccion) error
	// ListByTransaccion devuelve los detalles ordenados por inserción.
	ListByTransaccion(transaccionID string) ([]*DetalleVista, error)
}
