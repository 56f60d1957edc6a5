package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NotSleepp/possbien/internal/application/ports/mocks"
	"github.com/NotSleepp/possbien/internal/infrastructure/cache"
	apphttp "github.com/NotSleepp/possbien/internal/interfaces/http"
	pkgjwt "github.com/NotSleepp/possbien/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testRoleID    = "00000000-0000-0000-0000-000000000003"
	testIssuer    = "possbien-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, nil),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":  true,
				"rol": apphttp.GetRole(c),
			})
		},
	)
	return app
}

func identity(role string) pkgjwt.Identity {
	return pkgjwt.Identity{UserID: testUserID, CompanyID: testCompanyID, RoleID: testRoleID, Role: role}
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, identity(role), testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET al path y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out struct {
		Code string `json:"codigo"`
	}
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out.Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["rol"])
}

func TestRequireRole_CajeroAccedeRutaAdminOCajero(t *testing.T) {
	app := buildTestApp("admin", "cajero")
	resp := doRequest(t, app, "/protected", tokenForRole(t, "Cajero"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "la comparación de roles no distingue mayúsculas")
}

func TestRequireRole_CajeroBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected", tokenForRole(t, "cajero"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "PROHIBIDO", errorCode(t, resp))
}

func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected", tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "ROL_FALTANTE", errorCode(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader_TokenFaltante(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_FALTANTE", errorCode(t, resp))
}

func TestAuthMiddleware_TokenMalformado_TokenInvalido(t *testing.T) {
	cases := map[string]string{
		"sin bearer":     "Token abc",
		"token invalido": "Bearer token.invalido.aqui",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			app := buildTestApp("admin")
			resp := doRequest(t, app, "/protected", header)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "TOKEN_INVALIDO", errorCode(t, resp))
		})
	}
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, identity("admin"), testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, buildTestApp("admin"), "/protected", "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, nil), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"company_id": apphttp.GetCompanyID(c),
			"role_id":    apphttp.GetRoleID(c),
			"role":       apphttp.GetRole(c),
			"jti":        apphttp.GetClaims(c).ID,
		})
	})

	resp := doRequest(t, app, "/me", tokenForRole(t, "admin"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testCompanyID, body["company_id"])
	assert.Equal(t, testRoleID, body["role_id"])
	assert.Equal(t, "admin", body["role"])
	assert.NotEmpty(t, body["jti"])
}

func TestAuthMiddleware_TokenRevocado(t *testing.T) {
	blacklist := cache.NewMemoryTokenBlacklist()
	tok, err := pkgjwt.Generate(testJWTSecret, identity("admin"), testIssuer, testExpMin)
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Hour))

	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret, blacklist), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := doRequest(t, app, "/protected", "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_INVALIDO", errorCode(t, resp))
}

func TestAuthMiddleware_ListaNegraCaida_503(t *testing.T) {
	blacklist := new(mocks.MockTokenBlacklist)
	blacklist.On("IsBlacklisted", mock.Anything, mock.Anything).Return(false, errors.New("redis caído"))

	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret, blacklist), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := doRequest(t, app, "/protected", tokenForRole(t, "admin"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	blacklist.AssertExpectations(t)
}

func TestAuthMiddleware_UsuarioRevocado(t *testing.T) {
	blacklist := cache.NewMemoryTokenBlacklist()
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret, blacklist), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	before := tokenForRole(t, "admin")

	require.NoError(t, blacklist.RevokeUser(context.Background(), testUserID, time.Now(), time.Hour))

	resp := doRequest(t, app, "/protected", before)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_INVALIDO", errorCode(t, resp))
}

func TestAuthMiddleware_LoginPosteriorALaRevocacion(t *testing.T) {
	blacklist := cache.NewMemoryTokenBlacklist()
	require.NoError(t, blacklist.RevokeUser(context.Background(), testUserID, time.Now().Add(-time.Minute), time.Hour))
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret, blacklist), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := doRequest(t, app, "/protected", tokenForRole(t, "admin"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_RevocacionDeUsuarioCaida_503(t *testing.T) {
	blacklist := new(mocks.MockTokenBlacklist)
	blacklist.On("IsBlacklisted", mock.Anything, mock.Anything).Return(false, nil)
	blacklist.On("IsUserRevoked", mock.Anything, testUserID, mock.AnythingOfType("time.Time")).Return(false, errors.New("redis caído"))

	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret, blacklist), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := doRequest(t, app, "/protected", tokenForRole(t, "admin"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	blacklist.AssertExpectations(t)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

type stubChecker struct {
	codes map[string]bool
	err   error
	calls []string
}

func (s *stubChecker) HasPermission(_ context.Context, roleID, code string) (bool, error) {
	s.calls = append(s.calls, roleID+"|"+code)
	return s.codes[code], s.err
}

func permissionApp(checker *stubChecker, code string) *fiber.App {
	app := fiber.New()
	app.Get("/ventas",
		apphttp.AuthMiddleware(testJWTSecret, nil),
		apphttp.RequirePermission(checker, code),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestRequirePermission(t *testing.T) {
	t.Run("con permiso pasa", func(t *testing.T) {
		checker := &stubChecker{codes: map[string]bool{"ventas:crear": true}}
		resp := doRequest(t, permissionApp(checker, "ventas:crear"), "/ventas", tokenForRole(t, "cajero"))
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{testRoleID + "|ventas:crear"}, checker.calls)
	})

	t.Run("sin permiso 403", func(t *testing.T) {
		checker := &stubChecker{codes: map[string]bool{}}
		resp := doRequest(t, permissionApp(checker, "ventas:eliminar"), "/ventas", tokenForRole(t, "cajero"))
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "PROHIBIDO", errorCode(t, resp))
	})

	t.Run("fallo de consulta 503", func(t *testing.T) {
		checker := &stubChecker{err: errors.New("db caída")}
		resp := doRequest(t, permissionApp(checker, "ventas:leer"), "/ventas", tokenForRole(t, "cajero"))
		defer resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "PERMISOS_NO_DISPONIBLES", errorCode(t, resp))
	})

	t.Run("token sin rol 401", func(t *testing.T) {
		id := identity("cajero")
		id.RoleID = ""
		tok, err := pkgjwt.Generate(testJWTSecret, id, testIssuer, testExpMin)
		require.NoError(t, err)

		checker := &stubChecker{}
		resp := doRequest(t, permissionApp(checker, "ventas:leer"), "/ventas", "Bearer "+tok)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Empty(t, checker.calls)
	})
}
