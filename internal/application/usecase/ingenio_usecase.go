package usecase

import (
	"github.com/sistemaarroz/ingenio-api/internal/application/dto"
	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// IngenioUseCase aplica reglas de negocio para el perfil del ingenio.
type IngenioUseCase struct {
	repo repository.IngenioRepository
}

// NewIngenioUseCase construye el caso de uso con el puerto de persistencia.
func NewIngenioUseCase(repo repository.IngenioRepository) *IngenioUseCase {
	return &IngenioUseCase{repo: repo}
}

// ObtenerPerfil devuelve el perfil del ingenio del actor.
func (uc *IngenioUseCase) ObtenerPerfil(ingenioID string) (*dto.IngenioResponse, error) {
	ingenio, err := uc.repo.GetByID(ingenioID)
	if err != nil {
		return nil, err
	}
	if ingenio == nil {
		return nil, domain.ErrNotFound
	}
	return entityToIngenioResponse(ingenio), nil
}

// ActualizarPerfil actualiza nombre y datos de facturación del ingenio.
// Solo el jefe puede hacerlo.
func (uc *IngenioUseCase) ActualizarPerfil(actorNivel, ingenioID string, req dto.ActualizarIngenioRequest) (*dto.IngenioResponse, error) {
	if actorNivel != entity.NivelJefe {
		return nil, domain.ErrForbidden
	}
	if req.Nombre == "" {
		return nil, domain.Invalidf("el nombre del ingenio es obligatorio")
	}
	ingenio, err := uc.repo.GetByID(ingenioID)
	if err != nil {
		return nil, err
	}
	if ingenio == nil {
		return nil, domain.ErrNotFound
	}
	ingenio.Nombre = req.Nombre
	ingenio.Direccion = req.Direccion
	ingenio.NIT = req.NIT
	ingenio.Celular = req.Celular
	if err := uc.repo.Update(ingenio); err != nil {
		return nil, err
	}
	return entityToIngenioResponse(ingenio), nil
}

func entityToIngenioResponse(i *entity.Ingenio) *dto.IngenioResponse {
	return &dto.IngenioResponse{
		ID:        i.ID,
		Nombre:    i.Nombre,
		Direccion: i.Direccion,
		NIT:       i.NIT,
		Celular:   i.Celular,
	}
}
