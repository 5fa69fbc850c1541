// Package analytics arma las estadísticas del dashboard de un ingenio.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// diasMaxAgrupacionDiaria umbral de rango a partir del cual la serie de ventas
// se agrupa por mes en lugar de por día.
const diasMaxAgrupacionDiaria = 31

// Estadisticas es el resultado completo del dashboard para un rango de fechas.
type Estadisticas struct {
	Desde            string
	Hasta            string
	Agrupacion       string // "dia" o "mes"
	Totales          repository.TotalesTransacciones
	Ventas           []repository.VentaPeriodo
	LotesActivos     int
	ValorInventario  decimal.Decimal
	ValorPorProducto []repository.ValorProducto
}

// AnalyticsUseCase orquesta las consultas de solo lectura del dashboard.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo}
}

// ObtenerEstadisticas consulta totales, serie de ventas y valoración de
// inventario para el rango pedido. Si el rango supera 31 días la serie de
// ventas se agrupa por mes; si no, por día.
func (uc *AnalyticsUseCase) ObtenerEstadisticas(ctx context.Context, ingenioID, desdeStr, hastaStr string) (*Estadisticas, error) {
	desde, hasta, err := parsePeriodo(desdeStr, hastaStr)
	if err != nil {
		return nil, err
	}
	agrupacion := repository.AgruparPorDia
	if hasta.Sub(desde) > diasMaxAgrupacionDiaria*24*time.Hour {
		agrupacion = repository.AgruparPorMes
	}

	// Las consultas son independientes: se lanzan en paralelo.
	type totalesResult struct {
		totales repository.TotalesTransacciones
		err     error
	}
	type ventasResult struct {
		ventas []repository.VentaPeriodo
		err    error
	}
	type valorResult struct {
		lotes       int
		valor       decimal.Decimal
		porProducto []repository.ValorProducto
		err         error
	}

	totalesCh := make(chan totalesResult, 1)
	ventasCh := make(chan ventasResult, 1)
	valorCh := make(chan valorResult, 1)

	go func() {
		totales, err := uc.analyticsRepo.GetTotales(ctx, ingenioID, desde, hasta)
		totalesCh <- totalesResult{totales, err}
	}()
	go func() {
		ventas, err := uc.analyticsRepo.GetVentasAgrupadas(ctx, ingenioID, desde, hasta, agrupacion)
		ventasCh <- ventasResult{ventas, err}
	}()
	go func() {
		lotes, err := uc.analyticsRepo.CountLotesActivos(ctx, ingenioID)
		if err != nil {
			valorCh <- valorResult{err: err}
			return
		}
		valor, err := uc.analyticsRepo.GetValorInventario(ctx, ingenioID)
		if err != nil {
			valorCh <- valorResult{err: err}
			return
		}
		porProducto, err := uc.analyticsRepo.GetValorPorProducto(ctx, ingenioID)
		valorCh <- valorResult{lotes, valor, porProducto, err}
	}()

	totRes := <-totalesCh
	venRes := <-ventasCh
	valRes := <-valorCh

	if totRes.err != nil {
		return nil, fmt.Errorf("analytics: totales: %w", totRes.err)
	}
	if venRes.err != nil {
		return nil, fmt.Errorf("analytics: ventas: %w", venRes.err)
	}
	if valRes.err != nil {
		return nil, fmt.Errorf("analytics: valoración: %w", valRes.err)
	}

	return &Estadisticas{
		Desde:            desde.Format("2006-01-02"),
		Hasta:            hasta.Format("2006-01-02"),
		Agrupacion:       agrupacion,
		Totales:          totRes.totales,
		Ventas:           venRes.ventas,
		LotesActivos:     valRes.lotes,
		ValorInventario:  valRes.valor.Round(2),
		ValorPorProducto: valRes.porProducto,
	}, nil
}

// parsePeriodo convierte los strings de fecha en time.Time; por defecto los
// últimos 30 días hasta hoy.
func parsePeriodo(desdeStr, hastaStr string) (desde, hasta time.Time, err error) {
	now := time.Now()

	if hastaStr == "" {
		hasta = now
	} else {
		hasta, err = time.ParseInLocation("2006-01-02", hastaStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, domain.Invalidf("fecha_fin inválida: %v", err)
		}
		hasta = hasta.Add(23*time.Hour + 59*time.Minute + 59*time.Second) // inclusive hasta el final del día
	}

	if desdeStr == "" {
		desde = hasta.AddDate(0, 0, -30)
	} else {
		desde, err = time.ParseInLocation("2006-01-02", desdeStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, domain.Invalidf("fecha_inicio inválida: %v", err)
		}
	}

	if desde.After(hasta) {
		return time.Time{}, time.Time{}, domain.Invalidf("fecha_inicio no puede ser posterior a fecha_fin")
	}
	return desde, hasta, nil
}
