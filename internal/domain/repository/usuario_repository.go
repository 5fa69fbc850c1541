package repository

import "github.com/sistemaarroz/ingenio-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para usuarios.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	ListByIngenio(ingenioID string) ([]*entity.Usuario, error)
	UpdatePasswordHash(id, passwordHash string) error
	UpdateActivo(id string, activo bool) error
}
