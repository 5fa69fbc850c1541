package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sistemaarroz/ingenio-api/internal/application/analytics"
	"github.com/sistemaarroz/ingenio-api/internal/application/dto"
)

// DashboardHandler expone las estadísticas del ingenio.
type DashboardHandler struct {
	uc *analytics.AnalyticsUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.AnalyticsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Estadisticas devuelve totales, serie de ventas y valoración de inventario
// para el rango pedido (?fecha_inicio=YYYY-MM-DD&fecha_fin=YYYY-MM-DD,
// por defecto los últimos 30 días).
func (h *DashboardHandler) Estadisticas(c *fiber.Ctx) error {
	est, err := h.uc.ObtenerEstadisticas(c.Context(), GetIngenioID(c), c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		return responderError(c, err)
	}

	ventas := make([]dto.VentaPeriodoResponse, 0, len(est.Ventas))
	for _, v := range est.Ventas {
		ventas = append(ventas, dto.VentaPeriodoResponse{Periodo: v.Periodo, Total: v.Total})
	}
	porProducto := make([]dto.ValorProductoResponse, 0, len(est.ValorPorProducto))
	for _, v := range est.ValorPorProducto {
		porProducto = append(porProducto, dto.ValorProductoResponse{
			ProductoNombre: v.ProductoNombre,
			ValorTotal:     v.ValorTotal,
		})
	}

	tot := est.Totales
	return c.JSON(dto.EstadisticasResponse{
		Desde:            est.Desde,
		Hasta:            est.Hasta,
		Agrupacion:       est.Agrupacion,
		TotalVentas:      tot.TotalVentas,
		TotalCompras:     tot.TotalCompras,
		TotalServicios:   tot.TotalServicios,
		Balance:          tot.TotalVentas.Add(tot.TotalServicios).Sub(tot.TotalCompras),
		LotesActivos:     est.LotesActivos,
		ValorInventario:  est.ValorInventario,
		Ventas:           ventas,
		ValorPorProducto: porProducto,
	})
}
