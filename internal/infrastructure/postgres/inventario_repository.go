package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// umbralAgotadoKg los lotes nunca se borran: por debajo de este residuo en kg
// se consideran agotados y salen de las vistas activas.
const umbralAgotadoKg = "0.01"

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementación de InventarioRepository sobre PostgreSQL (usable con pool o tx).
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

const itemCols = `id, producto_id, variedad, lote, cantidad, cantidad_kg, unidad,
	estado, fecha_entrada, fecha_salida, precio_venta_unitario, ingenio_id, almacen_id`

func scanItem(row pgx.Row) (*entity.ItemInventario, error) {
	var it entity.ItemInventario
	err := row.Scan(
		&it.ID, &it.ProductoID, &it.Variedad, &it.Lote, &it.Cantidad, &it.CantidadKg,
		&it.Unidad, &it.Estado, &it.FechaEntrada, &it.FechaSalida, &it.PrecioVentaUnitario,
		&it.IngenioID, &it.AlmacenID,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Create persiste un lote nuevo; asigna ID si viene vacío.
func (r *InventarioRepo) Create(item *entity.ItemInventario) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventario (id, producto_id, variedad, lote, cantidad, cantidad_kg,
			unidad, estado, fecha_entrada, precio_venta_unitario, ingenio_id, almacen_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProductoID, item.Variedad, item.Lote, item.Cantidad, item.CantidadKg,
		item.Unidad, item.Estado, item.FechaEntrada, item.PrecioVentaUnitario,
		item.IngenioID, item.AlmacenID,
	)
	if err != nil {
		return fmt.Errorf("insert item inventario: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID dentro del ingenio; nil si no existe.
func (r *InventarioRepo) GetByID(id, ingenioID string) (*entity.ItemInventario, error) {
	query := `SELECT ` + itemCols + ` FROM inventario WHERE id = $1 AND ingenio_id = $2`
	it, err := scanItem(r.q.QueryRow(context.Background(), query, id, ingenioID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item inventario: %w", err)
	}
	return it, nil
}

// GetByIDForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE).
func (r *InventarioRepo) GetByIDForUpdate(id, ingenioID string) (*entity.ItemInventario, error) {
	query := `SELECT ` + itemCols + ` FROM inventario WHERE id = $1 AND ingenio_id = $2 FOR UPDATE`
	it, err := scanItem(r.q.QueryRow(context.Background(), query, id, ingenioID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item inventario for update: %w", err)
	}
	return it, nil
}

// ExisteLote verifica si el código de lote ya está usado dentro del ingenio.
func (r *InventarioRepo) ExisteLote(lote, ingenioID string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM inventario WHERE lote = $1 AND ingenio_id = $2)`,
		lote, ingenioID).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe lote: %w", err)
	}
	return existe, nil
}

// UpdateCantidades fija cantidad, cantidad_kg y estado del lote. Si el lote
// queda agotado se estampa fecha_salida; si vuelve a tener stock, se limpia.
func (r *InventarioRepo) UpdateCantidades(item *entity.ItemInventario) error {
	query := `
		UPDATE inventario
		SET cantidad = $3, cantidad_kg = $4, estado = $5,
			fecha_salida = CASE
				WHEN $4 <= ` + umbralAgotadoKg + ` AND fecha_salida IS NULL THEN now()
				WHEN $4 > ` + umbralAgotadoKg + ` THEN NULL
				ELSE fecha_salida
			END
		WHERE id = $1 AND ingenio_id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.IngenioID, item.Cantidad, item.CantidadKg, item.Estado)
	if err != nil {
		return fmt.Errorf("update cantidades: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update cantidades: lote %s no existe", item.ID)
	}
	return nil
}

// AjustarPorLote suma los deltas al lote identificado por (lote, producto,
// ingenio). Devuelve cuántas filas afectó: cero significa que el lote ya no
// existe en inventario.
func (r *InventarioRepo) AjustarPorLote(lote, productoID, ingenioID string, deltaCantidad, deltaKg decimal.Decimal) (int64, error) {
	query := `
		UPDATE inventario
		SET cantidad = cantidad + $4, cantidad_kg = cantidad_kg + $5,
			fecha_salida = CASE WHEN cantidad_kg + $5 > ` + umbralAgotadoKg + ` THEN NULL ELSE fecha_salida END
		WHERE lote = $1 AND producto_id = $2 AND ingenio_id = $3`
	tag, err := r.q.Exec(context.Background(), query, lote, productoID, ingenioID, deltaCantidad, deltaKg)
	if err != nil {
		return 0, fmt.Errorf("ajustar por lote: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdatePrecioVenta fija el precio de venta unitario de un lote.
func (r *InventarioRepo) UpdatePrecioVenta(id, ingenioID string, precio decimal.Decimal) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE inventario SET precio_venta_unitario = $3 WHERE id = $1 AND ingenio_id = $2`,
		id, ingenioID, precio)
	if err != nil {
		return fmt.Errorf("update precio venta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update precio venta: lote %s no existe", id)
	}
	return nil
}

const vistaCols = `i.id, i.producto_id, i.variedad, i.lote, i.cantidad, i.cantidad_kg,
	i.unidad, i.estado, i.fecha_entrada, i.fecha_salida, i.precio_venta_unitario,
	i.ingenio_id, i.almacen_id, p.nombre, p.codigo, a.nombre`

func scanVista(rows pgx.Rows) (*repository.ItemInventarioVista, error) {
	var v repository.ItemInventarioVista
	err := rows.Scan(
		&v.Item.ID, &v.Item.ProductoID, &v.Item.Variedad, &v.Item.Lote, &v.Item.Cantidad,
		&v.Item.CantidadKg, &v.Item.Unidad, &v.Item.Estado, &v.Item.FechaEntrada,
		&v.Item.FechaSalida, &v.Item.PrecioVentaUnitario, &v.Item.IngenioID, &v.Item.AlmacenID,
		&v.ProductoNombre, &v.ProductoCodigo, &v.AlmacenNombre,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListActivos lista los lotes con stock por encima del umbral de agotado,
// aplicando los filtros opcionales.
func (r *InventarioRepo) ListActivos(ingenioID string, filtro repository.FiltroInventario) ([]*repository.ItemInventarioVista, error) {
	query := `
		SELECT ` + vistaCols + `
		FROM inventario i
		JOIN productos p ON p.id = i.producto_id
		JOIN almacenes a ON a.id = i.almacen_id
		WHERE i.ingenio_id = $1 AND i.cantidad_kg > ` + umbralAgotadoKg
	args := []any{ingenioID}

	if filtro.ProductoID != "" {
		args = append(args, filtro.ProductoID)
		query += fmt.Sprintf(" AND i.producto_id = $%d", len(args))
	}
	if filtro.Lote != "" {
		args = append(args, "%"+filtro.Lote+"%")
		query += fmt.Sprintf(" AND i.lote ILIKE $%d", len(args))
	}
	if filtro.Variedad != "" {
		args = append(args, filtro.Variedad)
		query += fmt.Sprintf(" AND i.variedad = $%d", len(args))
	}
	if filtro.AlmacenID != "" {
		args = append(args, filtro.AlmacenID)
		query += fmt.Sprintf(" AND i.almacen_id = $%d", len(args))
	}
	if filtro.FechaInicio != nil {
		args = append(args, *filtro.FechaInicio)
		query += fmt.Sprintf(" AND i.fecha_entrada >= $%d", len(args))
	}
	if filtro.FechaFin != nil {
		args = append(args, *filtro.FechaFin)
		query += fmt.Sprintf(" AND i.fecha_entrada <= $%d", len(args))
	}
	query += " ORDER BY i.fecha_entrada DESC, i.lote"

	return r.queryVistas(query, args...)
}

// GetVista devuelve el lote con nombres y el precio de compra original
// resuelto siguiendo la cadena de procedencia hasta el lote raíz.
func (r *InventarioRepo) GetVista(id, ingenioID string) (*repository.ItemInventarioVista, error) {
	query := `
		WITH RECURSIVE raiz AS (
			SELECT i.id, i.id AS raiz_id FROM inventario i WHERE i.id = $1
			UNION ALL
			SELECT r.id, la.origen_item_id
			FROM raiz r
			JOIN lote_ancestria la ON la.derivado_item_id = r.raiz_id
		)
		SELECT ` + vistaCols + `, d.precio_unitario, d.unidad
		FROM inventario i
		JOIN productos p ON p.id = i.producto_id
		JOIN almacenes a ON a.id = i.almacen_id
		LEFT JOIN LATERAL (
			-- Solo el lote raíz de la cadena tiene detalle de compra, así que
			-- a lo sumo matchea una fila.
			SELECT d.precio_unitario, d.unidad
			FROM raiz r
			JOIN inventario origen ON origen.id = r.raiz_id
			JOIN detalle_transaccion d ON d.lote = origen.lote
			JOIN transacciones t ON t.id = d.transaccion_id
				AND t.tipo = 'compra' AND t.ingenio_id = i.ingenio_id
			LIMIT 1
		) d ON TRUE
		WHERE i.id = $1 AND i.ingenio_id = $2`

	rows, err := r.q.Query(context.Background(), query, id, ingenioID)
	if err != nil {
		return nil, fmt.Errorf("get vista inventario: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var v repository.ItemInventarioVista
	var precio *decimal.Decimal
	var unidadCompra *string
	err = rows.Scan(
		&v.Item.ID, &v.Item.ProductoID, &v.Item.Variedad, &v.Item.Lote, &v.Item.Cantidad,
		&v.Item.CantidadKg, &v.Item.Unidad, &v.Item.Estado, &v.Item.FechaEntrada,
		&v.Item.FechaSalida, &v.Item.PrecioVentaUnitario, &v.Item.IngenioID, &v.Item.AlmacenID,
		&v.ProductoNombre, &v.ProductoCodigo, &v.AlmacenNombre,
		&precio, &unidadCompra,
	)
	if err != nil {
		return nil, fmt.Errorf("scan vista inventario: %w", err)
	}
	v.PrecioCompra = precio
	if unidadCompra != nil {
		v.UnidadCompra = *unidadCompra
	}
	return &v, nil
}

// ListTransformables lista los lotes secos de materia prima (arroz semilla o
// en chala) con stock, candidatos al pelado.
func (r *InventarioRepo) ListTransformables(ingenioID string) ([]*repository.ItemInventarioVista, error) {
	return r.listMateriaPrima(ingenioID, entity.EstadoSeco)
}

// ListSecables lista los lotes mojados de materia prima con stock.
func (r *InventarioRepo) ListSecables(ingenioID string) ([]*repository.ItemInventarioVista, error) {
	return r.listMateriaPrima(ingenioID, entity.EstadoMojado)
}

func (r *InventarioRepo) listMateriaPrima(ingenioID, estado string) ([]*repository.ItemInventarioVista, error) {
	query := `
		SELECT ` + vistaCols + `
		FROM inventario i
		JOIN productos p ON p.id = i.producto_id
		JOIN almacenes a ON a.id = i.almacen_id
		WHERE i.ingenio_id = $1 AND i.estado = $2 AND i.cantidad > 0
			AND p.codigo IN ($3, $4)
		ORDER BY i.fecha_entrada DESC`
	return r.queryVistas(query, ingenioID, estado, entity.CodigoArrozSemilla, entity.CodigoArrozChala)
}

func (r *InventarioRepo) queryVistas(query string, args ...any) ([]*repository.ItemInventarioVista, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()

	var out []*repository.ItemInventarioVista
	for rows.Next() {
		v, err := scanVista(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

var _ repository.LoteAncestroRepository = (*LoteAncestroRepo)(nil)

// LoteAncestroRepo persistencia de las aristas de procedencia de lotes.
type LoteAncestroRepo struct {
	q Querier
}

// NewLoteAncestroRepository construye el adaptador de procedencia. Pasar pool o tx (Querier).
func NewLoteAncestroRepository(q Querier) *LoteAncestroRepo {
	return &LoteAncestroRepo{q: q}
}

// Create registra que un lote deriva de otro.
func (r *LoteAncestroRepo) Create(ancestro *entity.LoteAncestro) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO lote_ancestria (origen_item_id, derivado_item_id, created_at) VALUES ($1, $2, $3)`,
		ancestro.OrigenItemID, ancestro.DerivadoItemID, ancestro.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert lote ancestro: %w", err)
	}
	return nil
}

// GetOrigen devuelve la arista hacia el lote del que deriva; nil si es raíz.
func (r *LoteAncestroRepo) GetOrigen(derivadoItemID string) (*entity.LoteAncestro, error) {
	var la entity.LoteAncestro
	err := r.q.QueryRow(context.Background(),
		`SELECT origen_item_id, derivado_item_id, created_at FROM lote_ancestria WHERE derivado_item_id = $1`,
		derivadoItemID).Scan(&la.OrigenItemID, &la.DerivadoItemID, &la.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote ancestro: %w", err)
	}
	return &la, nil
}
