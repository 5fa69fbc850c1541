package repository

import "github.com/sistemaarroz/ingenio-api/internal/domain/entity"

// AlmacenRepository define el puerto de persistencia para almacenes.
type AlmacenRepository interface {
	Create(almacen *entity.Almacen) error
	GetByID(id string) (*entity.Almacen, error)
	ListByIngenio(ingenioID string) ([]*entity.Almacen, error)
}

// VariedadRepository define el puerto de persistencia para variedades.
type VariedadRepository interface {
	Create(variedad *entity.Variedad) error
	ListByIngenio(ingenioID string) ([]*entity.Variedad, error)
}
