package dto

import "github.com/shopspring/decimal"

// VentaPeriodoResponse un punto de la serie de ventas (día o mes).
type VentaPeriodoResponse struct {
	Periodo string          `json:"periodo"`
	Total   decimal.Decimal `json:"total"`
}

// ValorProductoResponse valor de inventario por producto (gráfico de pastel).
type ValorProductoResponse struct {
	ProductoNombre string          `json:"producto_nombre"`
	ValorTotal     decimal.Decimal `json:"valor_total"`
}

// EstadisticasResponse el dashboard completo de un ingenio.
type EstadisticasResponse struct {
	Desde            string                  `json:"desde"`
	Hasta            string                  `json:"hasta"`
	Agrupacion       string                  `json:"agrupacion"`
	TotalVentas      decimal.Decimal         `json:"total_ventas"`
	TotalCompras     decimal.Decimal         `json:"total_compras"`
	TotalServicios   decimal.Decimal         `json:"total_servicios"`
	Balance          decimal.Decimal         `json:"balance"`
	LotesActivos     int                     `json:"lotes_activos"`
	ValorInventario  decimal.Decimal         `json:"valor_inventario"`
	Ventas           []VentaPeriodoResponse  `json:"ventas"`
	ValorPorProducto []ValorProductoResponse `json:"valor_por_producto"`
}
