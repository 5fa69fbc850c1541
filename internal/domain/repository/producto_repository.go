package repository

import "github.com/sistemaarroz/ingenio-api/internal/domain/entity"

// ProductoRepository define el puerto de lectura del catálogo fijo de productos.
type ProductoRepository interface {
	GetByID(id string) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	List() ([]*entity.Producto, error)
}
