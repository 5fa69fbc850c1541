package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	apphttp "github.com/sistemaarroz/ingenio-api/internal/interfaces/http"
	pkgjwt "github.com/sistemaarroz/ingenio-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIngenioID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "ingenio-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireNivel para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(nivelesPermitidos ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Ruta protegida: JWT + nivel de acceso
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireNivel(nivelesPermitidos...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":    true,
				"nivel": apphttp.GetNivelAcceso(c),
			})
		},
	)
	return app
}

// tokenConNivel genera un JWT con el nivel de acceso indicado.
func tokenConNivel(t *testing.T, nivel string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIngenioID, nivel, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireNivel
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el nivel requerido → debe pasar (HTTP 200).
func TestRequireNivel_JefeAccedeRutaJefe(t *testing.T) {
	app := buildTestApp(entity.NivelJefe)
	resp := doRequest(t, app, tokenConNivel(t, entity.NivelJefe))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el jefe debe poder acceder a una ruta restringida a jefe")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, entity.NivelJefe, body["nivel"], "el nivel debe ser jefe")
}

// Caso 1b: El usuario tiene uno de los niveles permitidos → HTTP 200.
func TestRequireNivel_SubJefeAccedeRutaJefeOSubJefe(t *testing.T) {
	app := buildTestApp(entity.NivelJefe, entity.NivelSubJefe)
	resp := doRequest(t, app, tokenConNivel(t, entity.NivelSubJefe))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"sub-jefe debe poder acceder a ruta que permite jefe o sub-jefe")
}

// Caso 2: El usuario tiene un nivel distinto al requerido → HTTP 403 Forbidden.
func TestRequireNivel_EmpleadoBloqueadoEnRutaJefe(t *testing.T) {
	app := buildTestApp(entity.NivelJefe)
	resp := doRequest(t, app, tokenConNivel(t, entity.NivelEmpleado))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un empleado no debe poder acceder a ruta restringida a jefe")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 3: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireNivel_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.NivelJefe)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 4: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireNivel_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.NivelJefe)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"ingenio_id": apphttp.GetIngenioID(c),
			"nivel":      apphttp.GetNivelAcceso(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenConNivel(t, entity.NivelSubJefe))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testIngenioID, body["ingenio_id"])
	assert.Equal(t, entity.NivelSubJefe, body["nivel"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con nivel de acceso
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConNivel(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIngenioID, entity.NivelEmpleado, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, ingenioID, nivel, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testIngenioID, ingenioID)
	assert.Equal(t, entity.NivelEmpleado, nivel)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIngenioID, entity.NivelJefe, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIngenioID, entity.NivelJefe, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "firma con otro secret debe retornar error")
}
