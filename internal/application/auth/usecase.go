// Package auth implementa login, registro y administración de cuentas.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
	"github.com/sistemaarroz/ingenio-api/pkg/config"
	"github.com/sistemaarroz/ingenio-api/pkg/jwt"
)

// RegistroRunner ejecuta el alta atómica de un ingenio con su primer jefe.
type RegistroRunner interface {
	Run(ctx context.Context, fn func(ingRepo repository.IngenioRepository, usrRepo repository.UsuarioRepository) error) error
}

// AuthUseCase aplica reglas de negocio de autenticación y cuentas.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	regRunner   RegistroRunner
	jwtCfg      config.JWTConfig
}

// NewAuthUseCase construye el caso de uso con sus puertos de persistencia.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, regRunner RegistroRunner, jwtCfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		usuarioRepo: usuarioRepo,
		regRunner:   regRunner,
		jwtCfg:      jwtCfg,
	}
}

// SesionIniciada resultado de un login exitoso.
type SesionIniciada struct {
	Token       string
	UsuarioID   string
	Email       string
	NivelAcceso string
	IngenioID   string
}

// Login verifica credenciales y emite el token de sesión. Devuelve el mismo
// error genérico para email inexistente y contraseña incorrecta.
func (uc *AuthUseCase) Login(email, password string) (*SesionIniciada, error) {
	usuario, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !usuario.Activo {
		return nil, domain.ErrForbidden
	}
	if usuario.IngenioID == "" {
		return nil, domain.Conflictf("el usuario no tiene un ingenio asignado")
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.IngenioID, usuario.NivelAcceso, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &SesionIniciada{
		Token:       token,
		UsuarioID:   usuario.ID,
		Email:       usuario.Email,
		NivelAcceso: usuario.NivelAcceso,
		IngenioID:   usuario.IngenioID,
	}, nil
}

// RegistrarIngenioYJefe da de alta un ingenio nuevo junto con su usuario jefe
// en una sola transacción: o quedan los dos, o ninguno.
func (uc *AuthUseCase) RegistrarIngenioYJefe(ctx context.Context, nombreIngenio, direccion, email, password string) (*SesionIniciada, error) {
	if nombreIngenio == "" || email == "" {
		return nil, domain.Invalidf("nombre del ingenio y email son obligatorios")
	}
	if len(password) < 6 {
		return nil, domain.Invalidf("la contraseña debe tener al menos 6 caracteres")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var jefe *entity.Usuario
	err = uc.regRunner.Run(ctx, func(ingRepo repository.IngenioRepository, usrRepo repository.UsuarioRepository) error {
		ingenio := &entity.Ingenio{Nombre: nombreIngenio, Direccion: direccion}
		if err := ingRepo.Create(ingenio); err != nil {
			return err
		}
		jefe = &entity.Usuario{
			Email:        email,
			PasswordHash: string(hash),
			NivelAcceso:  entity.NivelJefe,
			IngenioID:    ingenio.ID,
			Activo:       true,
		}
		return usrRepo.Create(jefe)
	})
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jefe.ID, jefe.IngenioID, jefe.NivelAcceso, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &SesionIniciada{
		Token:       token,
		UsuarioID:   jefe.ID,
		Email:       jefe.Email,
		NivelAcceso: jefe.NivelAcceso,
		IngenioID:   jefe.IngenioID,
	}, nil
}

// CrearUsuario crea una cuenta sub-jefe o empleado dentro del ingenio del
// actor. Solo el jefe puede crear usuarios, y nunca otro jefe.
func (uc *AuthUseCase) CrearUsuario(actorNivel, actorIngenioID, email, password, nivelAcceso string) (*entity.Usuario, error) {
	if actorNivel != entity.NivelJefe {
		return nil, domain.ErrForbidden
	}
	if nivelAcceso != entity.NivelSubJefe && nivelAcceso != entity.NivelEmpleado {
		return nil, domain.Invalidf("nivel de acceso inválido: %s", nivelAcceso)
	}
	if email == "" {
		return nil, domain.Invalidf("el email es obligatorio")
	}
	if len(password) < 6 {
		return nil, domain.Invalidf("la contraseña debe tener al menos 6 caracteres")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		Email:        email,
		PasswordHash: string(hash),
		NivelAcceso:  nivelAcceso,
		IngenioID:    actorIngenioID,
		Activo:       true,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// ListarUsuarios devuelve los usuarios del ingenio del actor (solo jefe).
func (uc *AuthUseCase) ListarUsuarios(actorNivel, actorIngenioID string) ([]*entity.Usuario, error) {
	if actorNivel != entity.NivelJefe {
		return nil, domain.ErrForbidden
	}
	return uc.usuarioRepo.ListByIngenio(actorIngenioID)
}

// CambiarPassword cambia la contraseña del propio usuario tras verificar la actual.
func (uc *AuthUseCase) CambiarPassword(usuarioID, actual, nueva string) error {
	if len(nueva) < 6 {
		return domain.Invalidf("la contraseña nueva debe tener al menos 6 caracteres")
	}
	usuario, err := uc.usuarioRepo.GetByID(usuarioID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(actual)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(nueva), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.usuarioRepo.UpdatePasswordHash(usuario.ID, string(hash))
}

// ToggleAcceso activa o desactiva la cuenta de otro usuario del mismo ingenio.
// Solo el jefe puede hacerlo y no puede desactivarse a sí mismo.
func (uc *AuthUseCase) ToggleAcceso(actorID, actorNivel, actorIngenioID, targetID string) (bool, error) {
	if actorNivel != entity.NivelJefe {
		return false, domain.ErrForbidden
	}
	if actorID == targetID {
		return false, domain.Conflictf("no puedes desactivar tu propia cuenta")
	}
	target, err := uc.usuarioRepo.GetByID(targetID)
	if err != nil {
		return false, err
	}
	if target == nil || target.IngenioID != actorIngenioID {
		return false, domain.ErrUserNotFound
	}
	nuevoEstado := !target.Activo
	if err := uc.usuarioRepo.UpdateActivo(target.ID, nuevoEstado); err != nil {
		return false, err
	}
	return nuevoEstado, nil
}
