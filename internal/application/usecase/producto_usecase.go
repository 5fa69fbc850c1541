package usecase

import (
	"github.com/sistemaarroz/ingenio-api/internal/application/dto"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// ProductoUseCase expone el catálogo fijo de productos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso con el puerto de lectura.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Listar devuelve el catálogo completo de productos.
func (uc *ProductoUseCase) Listar() ([]dto.ProductoResponse, error) {
	productos, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, dto.ProductoResponse{
			ID:               p.ID,
			Nombre:           p.Nombre,
			Codigo:           p.Codigo,
			RequiereVariedad: p.RequiereVariedad,
		})
	}
	return out, nil
}
