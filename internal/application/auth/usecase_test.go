package auth_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sistemaarroz/ingenio-api/internal/application/auth"
	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
	"github.com/sistemaarroz/ingenio-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUsuarios struct {
	seq      int
	porID    map[string]*entity.Usuario
	ingenios map[string]*entity.Ingenio
}

func newMemUsuarios() *memUsuarios {
	return &memUsuarios{
		porID:    make(map[string]*entity.Usuario),
		ingenios: make(map[string]*entity.Ingenio),
	}
}

func (m *memUsuarios) Create(u *entity.Usuario) error {
	for _, otro := range m.porID {
		if otro.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	m.seq++
	u.ID = fmt.Sprintf("usr-%d", m.seq)
	v := *u
	m.porID[u.ID] = &v
	return nil
}

func (m *memUsuarios) GetByID(id string) (*entity.Usuario, error) {
	u, ok := m.porID[id]
	if !ok {
		return nil, nil
	}
	v := *u
	return &v, nil
}

func (m *memUsuarios) GetByEmail(email string) (*entity.Usuario, error) {
	for _, u := range m.porID {
		if u.Email == email {
			v := *u
			return &v, nil
		}
	}
	return nil, nil
}

func (m *memUsuarios) ListByIngenio(ingenioID string) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range m.porID {
		if u.IngenioID == ingenioID {
			v := *u
			out = append(out, &v)
		}
	}
	return out, nil
}

func (m *memUsuarios) UpdatePasswordHash(id, passwordHash string) error {
	u, ok := m.porID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *memUsuarios) UpdateActivo(id string, activo bool) error {
	u, ok := m.porID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Activo = activo
	return nil
}

type memIngenios struct{ m *memUsuarios }

func (r *memIngenios) Create(i *entity.Ingenio) error {
	for _, otro := range r.m.ingenios {
		if otro.Nombre == i.Nombre {
			return domain.ErrDuplicate
		}
	}
	r.m.seq++
	i.ID = fmt.Sprintf("ing-%d", r.m.seq)
	v := *i
	r.m.ingenios[i.ID] = &v
	return nil
}

func (r *memIngenios) GetByID(id string) (*entity.Ingenio, error) {
	i, ok := r.m.ingenios[id]
	if !ok {
		return nil, nil
	}
	v := *i
	return &v, nil
}

func (r *memIngenios) List() ([]*entity.Ingenio, error) { return nil, nil }
func (r *memIngenios) Update(*entity.Ingenio) error     { return nil }

// memRegistroRunner ejecuta fn sobre los dobles; si falla, restaura el estado.
type memRegistroRunner struct{ m *memUsuarios }

func (rn *memRegistroRunner) Run(_ context.Context, fn func(repository.IngenioRepository, repository.UsuarioRepository) error) error {
	usuariosAntes := make(map[string]*entity.Usuario, len(rn.m.porID))
	for k, v := range rn.m.porID {
		c := *v
		usuariosAntes[k] = &c
	}
	ingeniosAntes := make(map[string]*entity.Ingenio, len(rn.m.ingenios))
	for k, v := range rn.m.ingenios {
		c := *v
		ingeniosAntes[k] = &c
	}
	err := fn(&memIngenios{rn.m}, rn.m)
	if err != nil {
		rn.m.porID = usuariosAntes
		rn.m.ingenios = ingeniosAntes
	}
	return err
}

var cfgTest = config.JWTConfig{Secret: "secreto-de-test", Expiration: 60, Issuer: "test"}

func nuevoAuth() (*auth.AuthUseCase, *memUsuarios) {
	m := newMemUsuarios()
	return auth.NewAuthUseCase(m, &memRegistroRunner{m}, cfgTest), m
}

// sembrarUsuario crea un usuario directo en el store y devuelve su ID.
func sembrarUsuario(t *testing.T, m *memUsuarios, email, password, nivel, ingenioID string, activo bool) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Usuario{
		Email:        email,
		PasswordHash: string(hash),
		NivelAcceso:  nivel,
		IngenioID:    ingenioID,
		Activo:       activo,
	}
	require.NoError(t, m.Create(u))
	return u.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	uc, m := nuevoAuth()
	sembrarUsuario(t, m, "jefe@ingenio.ec", "secreto1", entity.NivelJefe, "ing-1", true)

	sesion, err := uc.Login("jefe@ingenio.ec", "secreto1")
	require.NoError(t, err)
	assert.NotEmpty(t, sesion.Token)
	assert.Equal(t, entity.NivelJefe, sesion.NivelAcceso)
	assert.Equal(t, "ing-1", sesion.IngenioID)
}

func TestLogin_CredencialesMalas_MismoError(t *testing.T) {
	// Email inexistente y contraseña incorrecta deben ser indistinguibles.
	uc, m := nuevoAuth()
	sembrarUsuario(t, m, "jefe@ingenio.ec", "secreto1", entity.NivelJefe, "ing-1", true)

	_, errEmail := uc.Login("nadie@ingenio.ec", "secreto1")
	_, errPass := uc.Login("jefe@ingenio.ec", "incorrecta")

	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)
	assert.ErrorIs(t, errPass, domain.ErrUnauthorized)
	assert.Equal(t, errEmail, errPass)
}

func TestLogin_CuentaDesactivada(t *testing.T) {
	uc, m := nuevoAuth()
	sembrarUsuario(t, m, "ex@ingenio.ec", "secreto1", entity.NivelEmpleado, "ing-1", false)

	_, err := uc.Login("ex@ingenio.ec", "secreto1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_SinIngenioAsignado(t *testing.T) {
	uc, m := nuevoAuth()
	sembrarUsuario(t, m, "suelto@ingenio.ec", "secreto1", entity.NivelEmpleado, "", true)

	_, err := uc.Login("suelto@ingenio.ec", "secreto1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de ingenio + jefe
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarIngenioYJefe_CreaAmbosYDevuelveSesion(t *testing.T) {
	uc, m := nuevoAuth()

	sesion, err := uc.RegistrarIngenioYJefe(context.Background(), "Ingenio La Esperanza", "Km 4 vía Daule", "duena@esperanza.ec", "secreto1")
	require.NoError(t, err)
	assert.NotEmpty(t, sesion.Token)
	assert.Equal(t, entity.NivelJefe, sesion.NivelAcceso)
	assert.NotEmpty(t, sesion.IngenioID)

	assert.Len(t, m.ingenios, 1)
	assert.Len(t, m.porID, 1)
}

func TestRegistrarIngenioYJefe_EmailDuplicadoNoDejaIngenio(t *testing.T) {
	uc, m := nuevoAuth()
	sembrarUsuario(t, m, "duena@esperanza.ec", "secreto1", entity.NivelJefe, "ing-otro", true)

	_, err := uc.RegistrarIngenioYJefe(context.Background(), "Ingenio La Esperanza", "", "duena@esperanza.ec", "secreto1")
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, m.ingenios, "el alta es atómica: sin jefe no queda ingenio")
}

func TestRegistrarIngenioYJefe_PasswordCorta(t *testing.T) {
	uc, _ := nuevoAuth()
	_, err := uc.RegistrarIngenioYJefe(context.Background(), "Ingenio La Esperanza", "", "duena@esperanza.ec", "123")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Administración de cuentas
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearUsuario_SoloJefe(t *testing.T) {
	uc, _ := nuevoAuth()

	_, err := uc.CrearUsuario(entity.NivelSubJefe, "ing-1", "nuevo@ingenio.ec", "secreto1", entity.NivelEmpleado)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCrearUsuario_NoPuedeCrearOtroJefe(t *testing.T) {
	uc, _ := nuevoAuth()

	_, err := uc.CrearUsuario(entity.NivelJefe, "ing-1", "otro@ingenio.ec", "secreto1", entity.NivelJefe)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrearUsuario_HeredaIngenioDelActor(t *testing.T) {
	uc, m := nuevoAuth()

	creado, err := uc.CrearUsuario(entity.NivelJefe, "ing-1", "empleado@ingenio.ec", "secreto1", entity.NivelEmpleado)
	require.NoError(t, err)
	assert.Equal(t, "ing-1", creado.IngenioID)
	assert.True(t, creado.Activo)

	guardado, _ := m.GetByID(creado.ID)
	require.NotNil(t, guardado)
	assert.NotEqual(t, "secreto1", guardado.PasswordHash, "la contraseña nunca se guarda en claro")
}

func TestCambiarPassword_VerificaLaActual(t *testing.T) {
	uc, m := nuevoAuth()
	id := sembrarUsuario(t, m, "jefe@ingenio.ec", "secreto1", entity.NivelJefe, "ing-1", true)

	err := uc.CambiarPassword(id, "incorrecta", "nuevosecreto")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	require.NoError(t, uc.CambiarPassword(id, "secreto1", "nuevosecreto"))

	_, err = uc.Login("jefe@ingenio.ec", "nuevosecreto")
	assert.NoError(t, err, "la contraseña nueva debe servir para el login")
}

func TestToggleAcceso_DesactivaYReactiva(t *testing.T) {
	uc, m := nuevoAuth()
	jefeID := sembrarUsuario(t, m, "jefe@ingenio.ec", "secreto1", entity.NivelJefe, "ing-1", true)
	empleadoID := sembrarUsuario(t, m, "empleado@ingenio.ec", "secreto1", entity.NivelEmpleado, "ing-1", true)

	activo, err := uc.ToggleAcceso(jefeID, entity.NivelJefe, "ing-1", empleadoID)
	require.NoError(t, err)
	assert.False(t, activo)

	activo, err = uc.ToggleAcceso(jefeID, entity.NivelJefe, "ing-1", empleadoID)
	require.NoError(t, err)
	assert.True(t, activo)
}

func TestToggleAcceso_NoASiMismo(t *testing.T) {
	uc, m := nuevoAuth()
	jefeID := sembrarUsuario(t, m, "jefe@ingenio.ec", "secreto1", entity.NivelJefe, "ing-1", true)

	_, err := uc.ToggleAcceso(jefeID, entity.NivelJefe, "ing-1", jefeID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestToggleAcceso_OtroIngenioComoInexistente(t *testing.T) {
	uc, m := nuevoAuth()
	jefeID := sembrarUsuario(t, m, "jefe@ingenio.ec", "secreto1", entity.NivelJefe, "ing-1", true)
	ajenoID := sembrarUsuario(t, m, "ajeno@otro.ec", "secreto1", entity.NivelEmpleado, "ing-2", true)

	_, err := uc.ToggleAcceso(jefeID, entity.NivelJefe, "ing-1", ajenoID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
