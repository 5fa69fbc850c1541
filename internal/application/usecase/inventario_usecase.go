package usecase

import (
	"github.com/sistemaarroz/ingenio-api/internal/application/dto"
	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
	"github.com/sistemaarroz/ingenio-api/internal/domain/unidad"
)

// InventarioUseCase expone las vistas de solo lectura del inventario y del
// historial de transacciones. Las mutaciones viven en ledger.LedgerUseCase.
type InventarioUseCase struct {
	invRepo repository.InventarioRepository
	txRepo  repository.TransaccionRepository
}

// NewInventarioUseCase construye el caso de uso con sus puertos de lectura.
func NewInventarioUseCase(invRepo repository.InventarioRepository, txRepo repository.TransaccionRepository) *InventarioUseCase {
	return &InventarioUseCase{invRepo: invRepo, txRepo: txRepo}
}

// ListarActivos lista los lotes activos del ingenio aplicando los filtros.
func (uc *InventarioUseCase) ListarActivos(ingenioID string, filtro repository.FiltroInventario) ([]dto.InventarioItemResponse, error) {
	vistas, err := uc.invRepo.ListActivos(ingenioID, filtro)
	if err != nil {
		return nil, err
	}
	return vistasToResponses(vistas), nil
}

// Obtener devuelve un lote con sus nombres y el precio de compra original
// resuelto por la cadena de procedencia.
func (uc *InventarioUseCase) Obtener(id, ingenioID string) (*dto.InventarioItemResponse, error) {
	vista, err := uc.invRepo.GetVista(id, ingenioID)
	if err != nil {
		return nil, err
	}
	if vista == nil {
		return nil, domain.ErrNotFound
	}
	resp := vistaToResponse(vista)
	return &resp, nil
}

// ListarTransformables lista los lotes secos de materia prima con stock.
func (uc *InventarioUseCase) ListarTransformables(ingenioID string) ([]dto.InventarioItemResponse, error) {
	vistas, err := uc.invRepo.ListTransformables(ingenioID)
	if err != nil {
		return nil, err
	}
	return vistasToResponses(vistas), nil
}

// ListarSecables lista los lotes mojados de materia prima con stock.
func (uc *InventarioUseCase) ListarSecables(ingenioID string) ([]dto.InventarioItemResponse, error) {
	vistas, err := uc.invRepo.ListSecables(ingenioID)
	if err != nil {
		return nil, err
	}
	return vistasToResponses(vistas), nil
}

// ListarHistorial lista el historial de transacciones aplicando los filtros.
func (uc *InventarioUseCase) ListarHistorial(ingenioID string, filtro repository.FiltroHistorial) ([]dto.HistorialItemResponse, error) {
	movimientos, err := uc.txRepo.ListHistorial(ingenioID, filtro)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistorialItemResponse, 0, len(movimientos))
	for _, m := range movimientos {
		item := dto.HistorialItemResponse{
			TransaccionID:  m.Transaccion.ID,
			Tipo:           m.Transaccion.Tipo,
			Nombre:         m.Transaccion.Nombre,
			Fecha:          m.Transaccion.Fecha,
			Total:          m.Transaccion.Total,
			Observaciones:  m.Transaccion.Observaciones,
			FacturaUUID:    m.Transaccion.FacturaUUID,
			ProductoNombre: m.ProductoNombre,
			ProductoCodigo: m.ProductoCodigo,
		}
		if m.Detalle != nil {
			cantidad := m.Detalle.Cantidad
			cantidadKg := m.Detalle.CantidadKg
			precio := m.Detalle.PrecioUnitario
			subtotal := m.Detalle.Subtotal
			item.Variedad = m.Detalle.Variedad
			item.Lote = m.Detalle.Lote
			item.Cantidad = &cantidad
			item.CantidadKg = &cantidadKg
			item.Unidad = m.Detalle.Unidad
			item.PrecioUnitario = &precio
			item.Subtotal = &subtotal
		}
		out = append(out, item)
	}
	return out, nil
}

func vistasToResponses(vistas []*repository.ItemInventarioVista) []dto.InventarioItemResponse {
	out := make([]dto.InventarioItemResponse, 0, len(vistas))
	for _, v := range vistas {
		out = append(out, vistaToResponse(v))
	}
	return out
}

func vistaToResponse(v *repository.ItemInventarioVista) dto.InventarioItemResponse {
	resp := dto.InventarioItemResponse{
		ID:                  v.Item.ID,
		ProductoID:          v.Item.ProductoID,
		ProductoNombre:      v.ProductoNombre,
		ProductoCodigo:      v.ProductoCodigo,
		Variedad:            v.Item.Variedad,
		Lote:                v.Item.Lote,
		Cantidad:            v.Item.Cantidad,
		CantidadKg:          v.Item.CantidadKg,
		Unidad:              v.Item.Unidad,
		Estado:              v.Item.Estado,
		FechaEntrada:        v.Item.FechaEntrada,
		FechaSalida:         v.Item.FechaSalida,
		PrecioVentaUnitario: v.Item.PrecioVentaUnitario,
		AlmacenID:           v.Item.AlmacenID,
		AlmacenNombre:       v.AlmacenNombre,
		PrecioCompra:        v.PrecioCompra,
		UnidadCompra:        v.UnidadCompra,
	}
	if quintales, fanegas, ok := unidad.MostrarEnUnidades(v.Item.CantidadKg); ok {
		resp.Quintales = quintales.Round(2)
		resp.Fanegas = fanegas.Round(2)
	}
	return resp
}
