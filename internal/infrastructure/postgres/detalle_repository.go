package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

var _ repository.DetalleRepository = (*DetalleRepo)(nil)

// DetalleRepo implementación de DetalleRepository sobre PostgreSQL (usable con pool o tx).
type DetalleRepo struct {
	q Querier
}

// NewDetalleRepository construye el adaptador de detalles. Pasar pool o tx (Querier).
func NewDetalleRepository(q Querier) *DetalleRepo {
	return &DetalleRepo{q: q}
}

// Create persiste un detalle; asigna ID si viene vacío.
func (r *DetalleRepo) Create(d *entity.DetalleTransaccion) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	query := `
		INSERT INTO detalle_transaccion
			(id, transaccion_id, producto_id, variedad, cantidad, cantidad_kg, unidad, precio_unitario, subtotal, lote)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.TransaccionID, d.ProductoID, d.Variedad, d.Cantidad, d.CantidadKg,
		d.Unidad, d.PrecioUnitario, d.Subtotal, d.Lote,
	)
	if err != nil {
		return fmt.Errorf("insert detalle: %w", err)
	}
	return nil
}

// ListByTransaccion devuelve los detalles en orden de inserción, con el nombre
// de producto resuelto.
func (r *DetalleRepo) ListByTransaccion(transaccionID string) ([]*repository.DetalleVista, error) {
	query := `
		SELECT d.id, d.transaccion_id, d.producto_id, d.variedad, d.cantidad, d.cantidad_kg,
			d.unidad, d.precio_unitario, d.subtotal, d.lote, p.nombre
		FROM detalle_transaccion d
		JOIN productos p ON p.id = d.producto_id
		WHERE d.transaccion_id = $1
		ORDER BY d.orden`
	rows, err := r.q.Query(context.Background(), query, transaccionID)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()

	var out []*repository.DetalleVista
	for rows.Next() {
		var dv repository.DetalleVista
		err := rows.Scan(
			&dv.Detalle.ID, &dv.Detalle.TransaccionID, &dv.Detalle.ProductoID, &dv.Detalle.Variedad,
			&dv.Detalle.Cantidad, &dv.Detalle.CantidadKg, &dv.Detalle.Unidad,
			&dv.Detalle.PrecioUnitario, &dv.Detalle.Subtotal, &dv.Detalle.Lote,
			&dv.ProductoNombre,
		)
		if err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		out = append(out, &dv)
	}
	return out, rows.Err()
}

// detalleNullable se usa en joins LEFT donde el detalle puede no existir
// (transacciones viejas sin líneas).
type detalleNullable struct {
	ID             *string
	TransaccionID  *string
	ProductoID     *string
	Variedad       *string
	Cantidad       *decimal.Decimal
	CantidadKg     *decimal.Decimal
	Unidad         *string
	PrecioUnitario *decimal.Decimal
	Subtotal       *decimal.Decimal
	Lote           *string
}

func (d *detalleNullable) toEntity() *entity.DetalleTransaccion {
	if d.ID == nil {
		return nil
	}
	return &entity.DetalleTransaccion{
		ID:             *d.ID,
		TransaccionID:  *d.TransaccionID,
		ProductoID:     *d.ProductoID,
		Variedad:       *d.Variedad,
		Cantidad:       *d.Cantidad,
		CantidadKg:     *d.CantidadKg,
		Unidad:         *d.Unidad,
		PrecioUnitario: *d.PrecioUnitario,
		Subtotal:       *d.Subtotal,
		Lote:           *d.Lote,
	}
}
