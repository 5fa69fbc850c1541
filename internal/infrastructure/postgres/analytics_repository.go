package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura del dashboard sobre PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetTotales suma los totales por tipo dentro del rango. Las devoluciones no
// entran en la cifra de ventas: el dashboard reporta la venta bruta.
func (r *AnalyticsRepo) GetTotales(ctx context.Context, ingenioID string, desde, hasta time.Time) (repository.TotalesTransacciones, error) {
	query := `
		SELECT
			COALESCE(SUM(total) FILTER (WHERE tipo = 'venta'), 0),
			COALESCE(SUM(total) FILTER (WHERE tipo = 'compra'), 0),
			COALESCE(SUM(total) FILTER (WHERE tipo IN ('servicio_secado', 'servicio_pelado')), 0)
		FROM transacciones
		WHERE ingenio_id = $1 AND fecha BETWEEN $2 AND $3`
	var t repository.TotalesTransacciones
	err := r.q.QueryRow(ctx, query, ingenioID, desde, hasta).Scan(
		&t.TotalVentas, &t.TotalCompras, &t.TotalServicios,
	)
	if err != nil {
		return repository.TotalesTransacciones{}, fmt.Errorf("get totales: %w", err)
	}
	return t, nil
}

// GetVentasAgrupadas devuelve la serie de ventas agrupada por día o por mes.
func (r *AnalyticsRepo) GetVentasAgrupadas(ctx context.Context, ingenioID string, desde, hasta time.Time, agrupacion string) ([]repository.VentaPeriodo, error) {
	formato := "YYYY-MM-DD"
	if agrupacion == repository.AgruparPorMes {
		formato = "YYYY-MM"
	}
	query := fmt.Sprintf(`
		SELECT to_char(fecha, '%s') AS periodo, COALESCE(SUM(total), 0)
		FROM transacciones
		WHERE ingenio_id = $1 AND fecha BETWEEN $2 AND $3 AND tipo = 'venta'
		GROUP BY periodo
		ORDER BY periodo`, formato)

	rows, err := r.q.Query(ctx, query, ingenioID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("get ventas agrupadas: %w", err)
	}
	defer rows.Close()

	var out []repository.VentaPeriodo
	for rows.Next() {
		var v repository.VentaPeriodo
		if err := rows.Scan(&v.Periodo, &v.Total); err != nil {
			return nil, fmt.Errorf("scan venta periodo: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// CountLotesActivos cuenta los lotes con cantidad positiva. El dashboard
// cuenta por cantidad en la unidad propia del lote, no por el umbral en kg
// de las vistas de inventario.
func (r *AnalyticsRepo) CountLotesActivos(ctx context.Context, ingenioID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventario WHERE ingenio_id = $1 AND cantidad > 0`,
		ingenioID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count lotes activos: %w", err)
	}
	return n, nil
}

// valoracionCTE resuelve, para cada lote activo, el precio de compra del lote
// raíz de su cadena de procedencia. El CASE ajusta el precio cuando la unidad
// del lote no coincide con la unidad de compra: un precio por fanega se divide
// entre 4.3478 para valuar quintales, y un precio por quintal entre 0.23 para
// valuar fanegas.
const valoracionCTE = `
	WITH RECURSIVE cadena AS (
		SELECT i.id, i.id AS raiz_id
		FROM inventario i
		WHERE i.ingenio_id = $1 AND i.cantidad > 0
		UNION ALL
		SELECT c.id, la.origen_item_id
		FROM cadena c
		JOIN lote_ancestria la ON la.derivado_item_id = c.raiz_id
	),
	precios AS (
		SELECT DISTINCT ON (c.id) c.id, d.precio_unitario, d.unidad AS unidad_compra
		FROM cadena c
		JOIN inventario origen ON origen.id = c.raiz_id
		JOIN detalle_transaccion d ON d.lote = origen.lote
		JOIN transacciones t ON t.id = d.transaccion_id
			AND t.tipo = 'compra' AND t.ingenio_id = $1
	),
	valores AS (
		-- Un lote sin compra en su cadena de procedencia se valora en 0.
		SELECT i.id, i.producto_id,
			i.cantidad * CASE
				WHEN i.unidad IN ('quintal', 'quintales') AND pr.unidad_compra = 'fanega'
					THEN pr.precio_unitario / 4.3478
				WHEN i.unidad = 'fanega' AND pr.unidad_compra IN ('quintal', 'quintales')
					THEN pr.precio_unitario / 0.23
				ELSE COALESCE(pr.precio_unitario, 0)
			END AS valor
		FROM inventario i
		LEFT JOIN precios pr ON pr.id = i.id
		WHERE i.ingenio_id = $1 AND i.cantidad > 0
	)`

// GetValorInventario valora los lotes activos al precio de compra original.
func (r *AnalyticsRepo) GetValorInventario(ctx context.Context, ingenioID string) (decimal.Decimal, error) {
	query := valoracionCTE + `
	SELECT COALESCE(SUM(valor), 0) FROM valores`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, ingenioID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("get valor inventario: %w", err)
	}
	return total, nil
}

// GetValorPorProducto agrupa la valoración por producto para el gráfico de pastel.
func (r *AnalyticsRepo) GetValorPorProducto(ctx context.Context, ingenioID string) ([]repository.ValorProducto, error) {
	query := valoracionCTE + `
	SELECT p.nombre, COALESCE(SUM(v.valor), 0) AS valor_total
	FROM valores v
	JOIN productos p ON p.id = v.producto_id
	GROUP BY p.nombre
	HAVING SUM(v.valor) > 0
	ORDER BY valor_total DESC`
	rows, err := r.q.Query(ctx, query, ingenioID)
	if err != nil {
		return nil, fmt.Errorf("get valor por producto: %w", err)
	}
	defer rows.Close()

	var out []repository.ValorProducto
	for rows.Next() {
		var v repository.ValorProducto
		if err := rows.Scan(&v.ProductoNombre, &v.ValorTotal); err != nil {
			return nil, fmt.Errorf("scan valor producto: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
