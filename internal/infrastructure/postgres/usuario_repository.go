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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un usuario nuevo; asigna ID si viene vacío.
// Un email repetido llega como domain.ErrEmailAlreadyExists.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	if usuario.ID == "" {
		usuario.ID = uuid.New().String()
	}
	query := `
		INSERT INTO usuarios (id, email, password_hash, nivel_acceso, ingenio_id, activo)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Email, usuario.PasswordHash, usuario.NivelAcceso, usuario.IngenioID, usuario.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.getWhere(`id = $1`, id)
}

// GetByEmail obtiene un usuario por email; nil si no existe.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.getWhere(`email = $1`, email)
}

func (r *UsuarioRepo) getWhere(cond string, arg any) (*entity.Usuario, error) {
	query := `
		SELECT id, email, password_hash, nivel_acceso, COALESCE(ingenio_id::text, ''), activo
		FROM usuarios WHERE ` + cond
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.NivelAcceso, &u.IngenioID, &u.Activo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// ListByIngenio lista los usuarios de un ingenio.
func (r *UsuarioRepo) ListByIngenio(ingenioID string) ([]*entity.Usuario, error) {
	query := `
		SELECT id, email, password_hash, nivel_acceso, COALESCE(ingenio_id::text, ''), activo
		FROM usuarios WHERE ingenio_id = $1 ORDER BY email`
	rows, err := r.q.Query(context.Background(), query, ingenioID)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var out []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.NivelAcceso, &u.IngenioID, &u.Activo); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// UpdatePasswordHash fija el hash de contraseña de un usuario.
func (r *UsuarioRepo) UpdatePasswordHash(id, passwordHash string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateActivo activa o desactiva la cuenta.
func (r *UsuarioRepo) UpdateActivo(id string, activo bool) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET activo = $2 WHERE id = $1`, id, activo)
	if err != nil {
		return fmt.Errorf("update activo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
