package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Agrupaciones para el gráfico de ventas.
const (
	AgruparPorDia = "dia"
	AgruparPorMes = "mes"
)

// TotalesTransacciones totales por tipo dentro de un rango de fechas.
type TotalesTransacciones struct {
	TotalVentas    decimal.Decimal
	TotalCompras   decimal.Decimal
	TotalServicios decimal.Decimal
}

// VentaPeriodo total de ventas en un periodo (día YYYY-MM-DD o mes YYYY-MM).
type VentaPeriodo struct {
	Periodo string
	Total   decimal.Decimal
}

// ValorProducto valor de inventario agrupado por producto (gráfico de pastel).
type ValorProducto struct {
	ProductoNombre string
	ValorTotal     decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el dashboard de un ingenio.
type AnalyticsRepository interface {
	GetTotales(ctx context.Context, ingenioID string, desde, hasta time.Time) (TotalesTransacciones, error)
	GetVentasAgrupadas(ctx context.Context, ingenioID string, desde, hasta time.Time, agrupacion string) ([]VentaPeriodo, error)
	CountLotesActivos(ctx context.Context, ingenioID string) (int, error)
	// GetValorInventario valora los lotes activos al precio de compra original,
	// resuelto vía lote_ancestria, con factor cruzado quintal<->fanega.
	GetValorInventario(ctx context.Context, ingenioID string) (decimal.Decimal, error)
	GetValorPorProducto(ctx context.Context, ingenioID string) ([]ValorProducto, error)
}
