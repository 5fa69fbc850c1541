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

var _ repository.AlmacenRepository = (*AlmacenRepo)(nil)

// AlmacenRepo implementación de AlmacenRepository sobre PostgreSQL.
type AlmacenRepo struct {
	q Querier
}

// NewAlmacenRepository construye el adaptador de almacenes. Pasar pool o tx (Querier).
func NewAlmacenRepository(q Querier) *AlmacenRepo {
	return &AlmacenRepo{q: q}
}

// Create persiste un almacén nuevo; asigna ID si viene vacío.
// El nombre repetido dentro del ingenio llega como domain.ErrDuplicate.
func (r *AlmacenRepo) Create(almacen *entity.Almacen) error {
	if almacen.ID == "" {
		almacen.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO almacenes (id, nombre, ingenio_id) VALUES ($1, $2, $3)`,
		almacen.ID, almacen.Nombre, almacen.IngenioID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert almacen: %w", err)
	}
	return nil
}

// GetByID obtiene un almacén por ID; nil si no existe.
func (r *AlmacenRepo) GetByID(id string) (*entity.Almacen, error) {
	var a entity.Almacen
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, ingenio_id FROM almacenes WHERE id = $1`, id).
		Scan(&a.ID, &a.Nombre, &a.IngenioID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get almacen: %w", err)
	}
	return &a, nil
}

// ListByIngenio lista los almacenes de un ingenio.
func (r *AlmacenRepo) ListByIngenio(ingenioID string) ([]*entity.Almacen, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, ingenio_id FROM almacenes WHERE ingenio_id = $1 ORDER BY nombre`, ingenioID)
	if err != nil {
		return nil, fmt.Errorf("list almacenes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Almacen
	for rows.Next() {
		var a entity.Almacen
		if err := rows.Scan(&a.ID, &a.Nombre, &a.IngenioID); err != nil {
			return nil, fmt.Errorf("scan almacen: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

var _ repository.VariedadRepository = (*VariedadRepo)(nil)

// VariedadRepo implementación de VariedadRepository sobre PostgreSQL.
type VariedadRepo struct {
	q Querier
}

// NewVariedadRepository construye el adaptador de variedades. Pasar pool o tx (Querier).
func NewVariedadRepository(q Querier) *VariedadRepo {
	return &VariedadRepo{q: q}
}

// Create persiste una variedad nueva; asigna ID si viene vacío.
func (r *VariedadRepo) Create(variedad *entity.Variedad) error {
	if variedad.ID == "" {
		variedad.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO variedades (id, nombre, ingenio_id) VALUES ($1, $2, $3)`,
		variedad.ID, variedad.Nombre, variedad.IngenioID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert variedad: %w", err)
	}
	return nil
}

// ListByIngenio lista las variedades de un ingenio.
func (r *VariedadRepo) ListByIngenio(ingenioID string) ([]*entity.Variedad, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, ingenio_id FROM variedades WHERE ingenio_id = $1 ORDER BY nombre`, ingenioID)
	if err != nil {
		return nil, fmt.Errorf("list variedades: %w", err)
	}
	defer rows.Close()

	var out []*entity.Variedad
	for rows.Next() {
		var v entity.Variedad
		if err := rows.Scan(&v.ID, &v.Nombre, &v.IngenioID); err != nil {
			return nil, fmt.Errorf("scan variedad: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}
