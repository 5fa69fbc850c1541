package repository

import "github.com/sistemaarroz/ingenio-api/internal/domain/entity"

// IngenioRepository define el puerto de persistencia para ingenios.
type IngenioRepository interface {
	Create(ingenio *entity.Ingenio) error
	GetByID(id string) (*entity.Ingenio, error)
	List() ([]*entity.Ingenio, error)
	Update(ingenio *entity.Ingenio) error
}
