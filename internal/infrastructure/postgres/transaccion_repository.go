package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// tiposFacturablesSQL mantenerlo en línea con entity.TiposFacturables.
const tiposFacturablesSQL = `('venta', 'servicio_secado', 'servicio_pelado')`

var _ repository.TransaccionRepository = (*TransaccionRepo)(nil)

// TransaccionRepo implementación de TransaccionRepository sobre PostgreSQL (usable con pool o tx).
type TransaccionRepo struct {
	q Querier
}

// NewTransaccionRepository construye el adaptador de transacciones. Pasar pool o tx (Querier).
func NewTransaccionRepository(q Querier) *TransaccionRepo {
	return &TransaccionRepo{q: q}
}

// Create persiste la cabecera; asigna ID si viene vacío.
func (r *TransaccionRepo) Create(t *entity.Transaccion) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transacciones (id, tipo, nombre, fecha, factura_uuid, total, observaciones, ingenio_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Tipo, t.Nombre, t.Fecha, t.FacturaUUID, t.Total, t.Observaciones, t.IngenioID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaccion: %w", err)
	}
	return nil
}

const transaccionCols = `id, tipo, nombre, fecha, factura_uuid, total, observaciones, ingenio_id`

// GetByID obtiene una transacción por ID dentro del ingenio; nil si no existe.
func (r *TransaccionRepo) GetByID(id, ingenioID string) (*entity.Transaccion, error) {
	query := `SELECT ` + transaccionCols + ` FROM transacciones WHERE id = $1 AND ingenio_id = $2`
	var t entity.Transaccion
	err := r.q.QueryRow(context.Background(), query, id, ingenioID).Scan(
		&t.ID, &t.Tipo, &t.Nombre, &t.Fecha, &t.FacturaUUID, &t.Total, &t.Observaciones, &t.IngenioID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaccion: %w", err)
	}
	return &t, nil
}

// GetConDetalle devuelve la transacción con su primer detalle y el nombre del
// producto; nil si no existe.
func (r *TransaccionRepo) GetConDetalle(id, ingenioID string) (*repository.TransaccionDetallada, error) {
	query := `
		SELECT t.id, t.tipo, t.nombre, t.fecha, t.factura_uuid, t.total, t.observaciones, t.ingenio_id,
			d.id, d.transaccion_id, d.producto_id, d.variedad, d.cantidad, d.cantidad_kg,
			d.unidad, d.precio_unitario, d.subtotal, d.lote, p.nombre
		FROM transacciones t
		JOIN LATERAL (
			SELECT * FROM detalle_transaccion d
			WHERE d.transaccion_id = t.id ORDER BY d.orden LIMIT 1
		) d ON TRUE
		JOIN productos p ON p.id = d.producto_id
		WHERE t.id = $1 AND t.ingenio_id = $2`
	var td repository.TransaccionDetallada
	err := r.q.QueryRow(context.Background(), query, id, ingenioID).Scan(
		&td.Transaccion.ID, &td.Transaccion.Tipo, &td.Transaccion.Nombre, &td.Transaccion.Fecha,
		&td.Transaccion.FacturaUUID, &td.Transaccion.Total, &td.Transaccion.Observaciones,
		&td.Transaccion.IngenioID,
		&td.Detalle.ID, &td.Detalle.TransaccionID, &td.Detalle.ProductoID, &td.Detalle.Variedad,
		&td.Detalle.Cantidad, &td.Detalle.CantidadKg, &td.Detalle.Unidad,
		&td.Detalle.PrecioUnitario, &td.Detalle.Subtotal, &td.Detalle.Lote,
		&td.ProductoNombre,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaccion con detalle: %w", err)
	}
	return &td, nil
}

// GetFacturaUUID devuelve el UUID de factura de una transacción facturable del
// ingenio. found es false si no existe o si el tipo no es facturable.
func (r *TransaccionRepo) GetFacturaUUID(id, ingenioID string) (*string, bool, error) {
	query := `
		SELECT factura_uuid FROM transacciones
		WHERE id = $1 AND ingenio_id = $2 AND tipo IN ` + tiposFacturablesSQL
	var facturaUUID *string
	err := r.q.QueryRow(context.Background(), query, id, ingenioID).Scan(&facturaUUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get factura uuid: %w", err)
	}
	return facturaUUID, true, nil
}

// SetFacturaUUID fija el UUID de factura de una transacción.
func (r *TransaccionRepo) SetFacturaUUID(id, ingenioID, facturaUUID string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE transacciones SET factura_uuid = $3 WHERE id = $1 AND ingenio_id = $2`,
		id, ingenioID, facturaUUID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("set factura uuid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetPorFacturaUUID búsqueda pública de una factura por UUID (sin filtro de
// ingenio), restringida a tipos facturables; nil si no existe.
func (r *TransaccionRepo) GetPorFacturaUUID(facturaUUID string) (*repository.FacturaCabecera, error) {
	query := `
		SELECT t.id, t.tipo, t.nombre, t.fecha, t.factura_uuid, t.total, t.observaciones, t.ingenio_id,
			g.id, g.nombre, g.direccion, g.nit, g.celular
		FROM transacciones t
		JOIN ingenios g ON g.id = t.ingenio_id
		WHERE t.factura_uuid = $1 AND t.tipo IN ` + tiposFacturablesSQL
	var fc repository.FacturaCabecera
	err := r.q.QueryRow(context.Background(), query, facturaUUID).Scan(
		&fc.Transaccion.ID, &fc.Transaccion.Tipo, &fc.Transaccion.Nombre, &fc.Transaccion.Fecha,
		&fc.Transaccion.FacturaUUID, &fc.Transaccion.Total, &fc.Transaccion.Observaciones,
		&fc.Transaccion.IngenioID,
		&fc.Ingenio.ID, &fc.Ingenio.Nombre, &fc.Ingenio.Direccion, &fc.Ingenio.NIT, &fc.Ingenio.Celular,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get por factura uuid: %w", err)
	}
	return &fc, nil
}

// ListHistorial lista el historial del ingenio, cada transacción con su primer
// detalle aplanado, más reciente primero.
func (r *TransaccionRepo) ListHistorial(ingenioID string, filtro repository.FiltroHistorial) ([]*repository.MovimientoHistorial, error) {
	query := `
		SELECT t.id, t.tipo, t.nombre, t.fecha, t.factura_uuid, t.total, t.observaciones, t.ingenio_id,
			d.id, d.transaccion_id, d.producto_id, d.variedad, d.cantidad, d.cantidad_kg,
			d.unidad, d.precio_unitario, d.subtotal, d.lote,
			COALESCE(p.nombre, ''), COALESCE(p.codigo, '')
		FROM transacciones t
		LEFT JOIN LATERAL (
			SELECT * FROM detalle_transaccion d
			WHERE d.transaccion_id = t.id ORDER BY d.orden LIMIT 1
		) d ON TRUE
		LEFT JOIN productos p ON p.id = d.producto_id
		WHERE t.ingenio_id = $1`
	args := []any{ingenioID}

	if filtro.Tipo != "" {
		args = append(args, filtro.Tipo)
		query += fmt.Sprintf(" AND t.tipo = $%d", len(args))
	}
	if filtro.ProductoID != "" {
		args = append(args, filtro.ProductoID)
		query += fmt.Sprintf(" AND d.producto_id = $%d", len(args))
	}
	if filtro.Nombre != "" {
		args = append(args, "%"+filtro.Nombre+"%")
		query += fmt.Sprintf(" AND t.nombre ILIKE $%d", len(args))
	}
	if filtro.Lote != "" {
		args = append(args, "%"+filtro.Lote+"%")
		query += fmt.Sprintf(" AND d.lote ILIKE $%d", len(args))
	}
	if filtro.FechaInicio != nil {
		args = append(args, *filtro.FechaInicio)
		query += fmt.Sprintf(" AND t.fecha >= $%d", len(args))
	}
	if filtro.FechaFin != nil {
		args = append(args, *filtro.FechaFin)
		query += fmt.Sprintf(" AND t.fecha <= $%d", len(args))
	}
	query += " ORDER BY t.fecha DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list historial: %w", err)
	}
	defer rows.Close()

	var out []*repository.MovimientoHistorial
	for rows.Next() {
		var m repository.MovimientoHistorial
		var d detalleNullable
		err := rows.Scan(
			&m.Transaccion.ID, &m.Transaccion.Tipo, &m.Transaccion.Nombre, &m.Transaccion.Fecha,
			&m.Transaccion.FacturaUUID, &m.Transaccion.Total, &m.Transaccion.Observaciones,
			&m.Transaccion.IngenioID,
			&d.ID, &d.TransaccionID, &d.ProductoID, &d.Variedad, &d.Cantidad, &d.CantidadKg,
			&d.Unidad, &d.PrecioUnitario, &d.Subtotal, &d.Lote,
			&m.ProductoNombre, &m.ProductoCodigo,
		)
		if err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		m.Detalle = d.toEntity()
		out = append(out, &m)
	}
	return out, rows.Err()
}

// ListSinFacturaUUID lista transacciones facturables sin UUID asignado.
func (r *TransaccionRepo) ListSinFacturaUUID() ([]repository.TransaccionSinFactura, error) {
	query := `
		SELECT id, ingenio_id FROM transacciones
		WHERE factura_uuid IS NULL AND tipo IN ` + tiposFacturablesSQL
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sin factura uuid: %w", err)
	}
	defer rows.Close()

	var out []repository.TransaccionSinFactura
	for rows.Next() {
		var t repository.TransaccionSinFactura
		if err := rows.Scan(&t.ID, &t.IngenioID); err != nil {
			return nil, fmt.Errorf("scan sin factura uuid: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
