package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/puntoventa/backpos-api/internal/interfaces/http"
	"github.com/puntoventa/backpos-api/pkg/rolecatalog"
	"github.com/puntoventa/backpos-api/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "backpos-test"
	testTenantID  = int64(7)
	testSubjectID = int64(42)
)

func testTokenService(t *testing.T, opts ...token.Option) *token.Service {
	t.Helper()
	svc, err := token.New(testJWTSecret, testIssuer, opts...)
	require.NoError(t, err)
	return svc
}

// buildTestApp construye una aplicación Fiber mínima con el pipeline completo:
// AuthMiddleware → RequireTenant → RequireRole → handler dummy que devuelve 200.
func buildTestApp(t *testing.T, allowedRoles ...any) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/api/tenants/:tenantId/protected",
		apphttp.AuthMiddleware(testTokenService(t)),
		apphttp.RequireTenant(),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"ordinal": int(apphttp.GetOrdinal(c)),
			})
		},
	)
	return app
}

// tokenFor genera una credencial firmada para el tenant y ordinal indicados.
func tokenFor(t *testing.T, tenantID int64, ordinal rolecatalog.Ordinal) string {
	t.Helper()
	tok, err := testTokenService(t).Issue(token.Identity{
		SubjectID:   testSubjectID,
		TenantID:    tenantID,
		RoleOrdinal: ordinal,
	})
	require.NoError(t, err, "debe generarse un token válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, target, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func protectedPath(tenantID int64) string {
	return fmt.Sprintf("/api/tenants/%d/protected", tenantID)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware — autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeaderRetorna401(t *testing.T) {
	app := buildTestApp(t, "admin")
	resp := doRequest(t, app, protectedPath(testTenantID), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalidoRetorna401(t *testing.T) {
	app := buildTestApp(t, "admin")
	resp := doRequest(t, app, protectedPath(testTenantID), "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenBasuraRetorna401(t *testing.T) {
	app := buildTestApp(t, "admin")
	resp := doRequest(t, app, protectedPath(testTenantID), "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpiradoRetorna401(t *testing.T) {
	// Emitir con un reloj 25h en el pasado: ya venció la ventana de 24h.
	past := time.Now().Add(-25 * time.Hour)
	issuer := testTokenService(t, token.WithClock(func() time.Time { return past }))
	tok, err := issuer.Issue(token.Identity{SubjectID: testSubjectID, TenantID: testTenantID, RoleOrdinal: rolecatalog.Admin})
	require.NoError(t, err)

	app := buildTestApp(t, "admin")
	resp := doRequest(t, app, protectedPath(testTenantID), "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TOKEN_EXPIRED")
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	branch := int64(3)
	svc := testTokenService(t)
	tok, err := svc.Issue(token.Identity{
		SubjectID: testSubjectID, TenantID: testTenantID,
		RoleOrdinal: rolecatalog.Cajero, BranchID: &branch,
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(svc), func(c *fiber.Ctx) error {
		claims := apphttp.GetClaims(c)
		return c.JSON(fiber.Map{
			"subject_id": claims.SubjectID,
			"tenant_id":  claims.TenantID,
			"ordinal":    claims.RoleOrdinal,
			"branch_id":  claims.BranchID,
		})
	})

	resp := doRequest(t, app, "/me", "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]float64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(testSubjectID), body["subject_id"])
	assert.Equal(t, float64(testTenantID), body["tenant_id"])
	assert.Equal(t, float64(rolecatalog.Cajero), body["ordinal"])
	assert.Equal(t, float64(3), body["branch_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireTenant — aislamiento de tenant
// ──────────────────────────────────────────────────────────────────────────────

// Barrido de pares (tenant del token, tenant objetivo) distintos, incluyendo
// cero, negativos y límites: todos deben cortar con 403 antes del handler.
func TestRequireTenant_TenantDistintoRetorna403(t *testing.T) {
	app := buildTestApp(t, "admin")
	auth := tokenFor(t, testTenantID, rolecatalog.Admin)

	for _, target := range []int64{0, -1, 8, 1, 9223372036854775807} {
		resp := doRequest(t, app, protectedPath(target), auth)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode,
			"tenant objetivo %d ≠ tenant del token %d debe dar 403", target, testTenantID)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "TENANT_MISMATCH")
		resp.Body.Close()
	}
}

func TestRequireTenant_TenantPropioPermite(t *testing.T) {
	app := buildTestApp(t, "admin")
	resp := doRequest(t, app, protectedPath(testTenantID), tokenFor(t, testTenantID, rolecatalog.Admin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireTenant_QueryParamCruzadoRetorna403(t *testing.T) {
	app := buildTestApp(t, "admin")
	target := protectedPath(testTenantID) + "?tenant_id=9"
	resp := doRequest(t, app, target, tokenFor(t, testTenantID, rolecatalog.Admin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireTenant_TenantIdNoNumericoRetorna400(t *testing.T) {
	app := buildTestApp(t, "admin")
	resp := doRequest(t, app, "/api/tenants/abc/protected", tokenFor(t, testTenantID, rolecatalog.Admin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole — allow-list por nombre u ordinal
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(t, "admin")
	resp := doRequest(t, app, protectedPath(testTenantID), tokenFor(t, testTenantID, rolecatalog.Admin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(rolecatalog.Admin), body["ordinal"])
}

func TestRequireRole_CajeroBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(t, "admin")
	resp := doRequest(t, app, protectedPath(testTenantID), tokenFor(t, testTenantID, rolecatalog.Cajero))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// La misma ruta configurada con nombre y con ordinal se comporta idéntico.
func TestRequireRole_NombreYOrdinalEquivalentes(t *testing.T) {
	byName := buildTestApp(t, "gerente")
	byOrdinal := buildTestApp(t, 3)
	auth := tokenFor(t, testTenantID, rolecatalog.Gerente)

	for _, app := range []*fiber.App{byName, byOrdinal} {
		resp := doRequest(t, app, protectedPath(testTenantID), auth)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	deny := tokenFor(t, testTenantID, rolecatalog.Cajero)
	for _, app := range []*fiber.App{byName, byOrdinal} {
		resp := doRequest(t, app, protectedPath(testTenantID), deny)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		resp.Body.Close()
	}
}

func TestRequireRole_MultiRol(t *testing.T) {
	app := buildTestApp(t, "admin", "gerente")
	resp := doRequest(t, app, protectedPath(testTenantID), tokenFor(t, testTenantID, rolecatalog.Gerente))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"gerente debe poder acceder a ruta que permite admin o gerente")
}

// ──────────────────────────────────────────────────────────────────────────────
// RequirePermission — gate por la matriz
// ──────────────────────────────────────────────────────────────────────────────

// fakeChecker implementa el contrato del middleware sin tocar la DB.
type fakeChecker struct {
	allowed bool
	err     error
}

func (f *fakeChecker) HasPermission(ctx context.Context, tenantID, subjectID int64, moduleRoute, action string) (bool, error) {
	return f.allowed, f.err
}

func buildPermissionApp(t *testing.T, checker *fakeChecker) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/api/tenants/:tenantId/usuarios",
		apphttp.AuthMiddleware(testTokenService(t)),
		apphttp.RequireTenant(),
		apphttp.RequirePermission("usuarios", "view", checker),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestRequirePermission_Concedido(t *testing.T) {
	app := buildPermissionApp(t, &fakeChecker{allowed: true})
	resp := doRequest(t, app, fmt.Sprintf("/api/tenants/%d/usuarios", testTenantID), tokenFor(t, testTenantID, rolecatalog.Cajero))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequirePermission_DenegadoRetorna403(t *testing.T) {
	app := buildPermissionApp(t, &fakeChecker{allowed: false})
	resp := doRequest(t, app, fmt.Sprintf("/api/tenants/%d/usuarios", testTenantID), tokenFor(t, testTenantID, rolecatalog.Cajero))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequirePermission_ErrorDeInfraRetorna503(t *testing.T) {
	app := buildPermissionApp(t, &fakeChecker{err: errors.New("db caída")})
	resp := doRequest(t, app, fmt.Sprintf("/api/tenants/%d/usuarios", testTenantID), tokenFor(t, testTenantID, rolecatalog.Cajero))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
