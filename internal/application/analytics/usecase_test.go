package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

func TestParsePeriodo_Defaults(t *testing.T) {
	desde, hasta, err := parsePeriodo("", "")
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now(), hasta, time.Minute, "sin fecha_fin se usa ahora")
	assert.WithinDuration(t, hasta.AddDate(0, 0, -30), desde, time.Minute, "sin fecha_inicio, 30 días atrás")
}

func TestParsePeriodo_HastaInclusivoFinDeDia(t *testing.T) {
	desde, hasta, err := parsePeriodo("2026-01-01", "2026-01-15")
	require.NoError(t, err)

	assert.Equal(t, 1, desde.Day())
	assert.Equal(t, 15, hasta.Day())
	assert.Equal(t, 23, hasta.Hour(), "fecha_fin debe cubrir el día entero")
	assert.Equal(t, 59, hasta.Minute())
}

func TestParsePeriodo_DesdePosteriorAHastaFalla(t *testing.T) {
	_, _, err := parsePeriodo("2026-02-01", "2026-01-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParsePeriodo_FechaMalformada(t *testing.T) {
	_, _, err := parsePeriodo("01/02/2026", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAgrupacion_RangoCortoPorDia(t *testing.T) {
	desde, hasta, err := parsePeriodo("2026-01-01", "2026-01-31")
	require.NoError(t, err)
	// 30 días y fracción: sigue dentro del umbral diario.
	assert.False(t, hasta.Sub(desde) > diasMaxAgrupacionDiaria*24*time.Hour)

	desde, hasta, err = parsePeriodo("2026-01-01", "2026-03-01")
	require.NoError(t, err)
	assert.True(t, hasta.Sub(desde) > diasMaxAgrupacionDiaria*24*time.Hour,
		"dos meses deben agruparse por mes")
}

// repoStub devuelve cifras fijas para verificar que el caso de uso las
// reporta tal cual las entrega el almacén.
type repoStub struct {
	totales repository.TotalesTransacciones
	ventas  []repository.VentaPeriodo
}

func (r *repoStub) GetTotales(context.Context, string, time.Time, time.Time) (repository.TotalesTransacciones, error) {
	return r.totales, nil
}

func (r *repoStub) GetVentasAgrupadas(context.Context, string, time.Time, time.Time, string) ([]repository.VentaPeriodo, error) {
	return r.ventas, nil
}

func (r *repoStub) CountLotesActivos(context.Context, string) (int, error) {
	return 3, nil
}

func (r *repoStub) GetValorInventario(context.Context, string) (decimal.Decimal, error) {
	return decimal.RequireFromString("1234.567"), nil
}

func (r *repoStub) GetValorPorProducto(context.Context, string) ([]repository.ValorProducto, error) {
	return nil, nil
}

func TestObtenerEstadisticas_ReportaVentaBrutaSinAjustes(t *testing.T) {
	// El total de ventas es la venta bruta que entrega el almacén: las
	// devoluciones no lo netean, ni aquí ni en ninguna capa superior.
	stub := &repoStub{
		totales: repository.TotalesTransacciones{
			TotalVentas:    decimal.RequireFromString("500"),
			TotalCompras:   decimal.RequireFromString("200"),
			TotalServicios: decimal.RequireFromString("80"),
		},
		ventas: []repository.VentaPeriodo{{Periodo: "2026-08-01", Total: decimal.RequireFromString("500")}},
	}
	uc := NewAnalyticsUseCase(stub)

	stats, err := uc.ObtenerEstadisticas(context.Background(), "ing-1", "2026-08-01", "2026-08-15")
	require.NoError(t, err)

	assert.True(t, stats.Totales.TotalVentas.Equal(decimal.RequireFromString("500")))
	assert.True(t, stats.Totales.TotalCompras.Equal(decimal.RequireFromString("200")))
	assert.True(t, stats.Totales.TotalServicios.Equal(decimal.RequireFromString("80")))
	require.Len(t, stats.Ventas, 1)
	assert.True(t, stats.Ventas[0].Total.Equal(decimal.RequireFromString("500")))
	assert.Equal(t, 3, stats.LotesActivos)
	assert.True(t, stats.ValorInventario.Equal(decimal.RequireFromString("1234.57")), "la valoración se redondea a 2 decimales")
}
