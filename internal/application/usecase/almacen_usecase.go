package usecase

import (
	"github.com/sistemaarroz/ingenio-api/internal/application/dto"
	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// AlmacenUseCase administra bodegas y variedades de un ingenio.
type AlmacenUseCase struct {
	almacenRepo  repository.AlmacenRepository
	variedadRepo repository.VariedadRepository
}

// NewAlmacenUseCase construye el caso de uso con sus puertos de persistencia.
func NewAlmacenUseCase(almacenRepo repository.AlmacenRepository, variedadRepo repository.VariedadRepository) *AlmacenUseCase {
	return &AlmacenUseCase{almacenRepo: almacenRepo, variedadRepo: variedadRepo}
}

// CrearAlmacen da de alta una bodega en el ingenio del actor.
// El nombre es único por ingenio; el duplicado llega como domain.ErrDuplicate.
func (uc *AlmacenUseCase) CrearAlmacen(ingenioID, nombre string) (*dto.AlmacenResponse, error) {
	if nombre == "" {
		return nil, domain.Invalidf("el nombre del almacén es obligatorio")
	}
	almacen := &entity.Almacen{Nombre: nombre, IngenioID: ingenioID}
	if err := uc.almacenRepo.Create(almacen); err != nil {
		return nil, err
	}
	return &dto.AlmacenResponse{ID: almacen.ID, Nombre: almacen.Nombre, IngenioID: almacen.IngenioID}, nil
}

// ListarAlmacenes lista las bodegas del ingenio del actor.
func (uc *AlmacenUseCase) ListarAlmacenes(ingenioID string) ([]dto.AlmacenResponse, error) {
	almacenes, err := uc.almacenRepo.ListByIngenio(ingenioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlmacenResponse, 0, len(almacenes))
	for _, a := range almacenes {
		out = append(out, dto.AlmacenResponse{ID: a.ID, Nombre: a.Nombre, IngenioID: a.IngenioID})
	}
	return out, nil
}

// CrearVariedad da de alta una variedad en el ingenio del actor.
func (uc *AlmacenUseCase) CrearVariedad(ingenioID, nombre string) (*dto.VariedadResponse, error) {
	if nombre == "" {
		return nil, domain.Invalidf("el nombre de la variedad es obligatorio")
	}
	variedad := &entity.Variedad{Nombre: nombre, IngenioID: ingenioID}
	if err := uc.variedadRepo.Create(variedad); err != nil {
		return nil, err
	}
	return &dto.VariedadResponse{ID: variedad.ID, Nombre: variedad.Nombre, IngenioID: variedad.IngenioID}, nil
}

// ListarVariedades lista las variedades del ingenio del actor.
func (uc *AlmacenUseCase) ListarVariedades(ingenioID string) ([]dto.VariedadResponse, error) {
	variedades, err := uc.variedadRepo.ListByIngenio(ingenioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VariedadResponse, 0, len(variedades))
	for _, v := range variedades {
		out = append(out, dto.VariedadResponse{ID: v.ID, Nombre: v.Nombre, IngenioID: v.IngenioID})
	}
	return out, nil
}
