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

var _ repository.IngenioRepository = (*IngenioRepo)(nil)

// IngenioRepo implementación de IngenioRepository sobre PostgreSQL (usable con pool o tx).
type IngenioRepo struct {
	q Querier
}

// NewIngenioRepository construye el adaptador de ingenios. Pasar pool o tx (Querier).
func NewIngenioRepository(q Querier) *IngenioRepo {
	return &IngenioRepo{q: q}
}

// Create persiste un ingenio nuevo; asigna ID si viene vacío.
func (r *IngenioRepo) Create(ingenio *entity.Ingenio) error {
	if ingenio.ID == "" {
		ingenio.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ingenios (id, nombre, direccion, nit, celular)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		ingenio.ID, ingenio.Nombre, ingenio.Direccion, ingenio.NIT, ingenio.Celular,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingenio: %w", err)
	}
	return nil
}

// GetByID obtiene un ingenio por ID; nil si no existe.
func (r *IngenioRepo) GetByID(id string) (*entity.Ingenio, error) {
	query := `
		SELECT id, nombre, direccion, nit, celular
		FROM ingenios WHERE id = $1`
	var i entity.Ingenio
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Nombre, &i.Direccion, &i.NIT, &i.Celular,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingenio: %w", err)
	}
	return &i, nil
}

// List lista todos los ingenios.
func (r *IngenioRepo) List() ([]*entity.Ingenio, error) {
	query := `
		SELECT id, nombre, direccion, nit, celular
		FROM ingenios ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ingenios: %w", err)
	}
	defer rows.Close()

	var out []*entity.Ingenio
	for rows.Next() {
		var i entity.Ingenio
		if err := rows.Scan(&i.ID, &i.Nombre, &i.Direccion, &i.NIT, &i.Celular); err != nil {
			return nil, fmt.Errorf("scan ingenio: %w", err)
		}
		out = append(out, &i)
	}
	return out, rows.Err()
}

// Update actualiza nombre y datos de facturación del ingenio.
func (r *IngenioRepo) Update(ingenio *entity.Ingenio) error {
	query := `
		UPDATE ingenios SET nombre = $2, direccion = $3, nit = $4, celular = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		ingenio.ID, ingenio.Nombre, ingenio.Direccion, ingenio.NIT, ingenio.Celular,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ingenio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
