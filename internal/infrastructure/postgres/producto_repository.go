package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo lectura del catálogo fijo de productos sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.getWhere(`id = $1`, id)
}

// GetByCodigo obtiene un producto por su código corto (SEM, ARZ, ...).
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	return r.getWhere(`codigo = $1`, codigo)
}

func (r *ProductoRepo) getWhere(cond string, arg any) (*entity.Producto, error) {
	query := `SELECT id, nombre, codigo, requiere_variedad FROM productos WHERE ` + cond
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Nombre, &p.Codigo, &p.RequiereVariedad,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List lista el catálogo completo.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, codigo, requiere_variedad FROM productos ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Codigo, &p.RequiereVariedad); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
