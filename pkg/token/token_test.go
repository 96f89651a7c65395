package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puntoventa/backpos-api/pkg/rolecatalog"
	"github.com/puntoventa/backpos-api/pkg/token"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "backpos-test"
)

func newService(t *testing.T, opts ...token.Option) *token.Service {
	t.Helper()
	svc, err := token.New(testSecret, testIssuer, opts...)
	require.NoError(t, err)
	return svc
}

func TestNew_SecretVacioFalla(t *testing.T) {
	_, err := token.New("", testIssuer)
	assert.Error(t, err)
}

// Ley de ida y vuelta: Verify(Issue(identidad)) devuelve los mismos claims.
func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := newService(t)
	branch := int64(12)
	id := token.Identity{
		SubjectID:   42,
		TenantID:    7,
		RoleOrdinal: rolecatalog.Gerente,
		BranchID:    &branch,
	}

	tok, err := svc.Issue(id)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.SubjectID)
	assert.Equal(t, int64(7), claims.TenantID)
	assert.Equal(t, rolecatalog.Gerente, claims.Ordinal())
	require.NotNil(t, claims.BranchID)
	assert.Equal(t, int64(12), *claims.BranchID)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID, "cada token lleva un jti propio")
}

func TestIssueVerify_SinSucursal(t *testing.T) {
	svc := newService(t)
	tok, err := svc.Issue(token.Identity{SubjectID: 1, TenantID: 1, RoleOrdinal: rolecatalog.Cajero})
	require.NoError(t, err)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Nil(t, claims.BranchID)
}

func TestIssue_OrdinalFueraDeRangoFalla(t *testing.T) {
	svc := newService(t)
	_, err := svc.Issue(token.Identity{SubjectID: 1, TenantID: 1, RoleOrdinal: 0})
	assert.Error(t, err)
	_, err = svc.Issue(token.Identity{SubjectID: 1, TenantID: 1, RoleOrdinal: 9})
	assert.Error(t, err)
}

// Frontera de expiración con reloj inyectado: válido 1s antes de exp,
// expirado 1s después.
func TestVerify_FronteraDeExpiracion(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	issuer := newService(t, token.WithClock(func() time.Time { return t0 }))
	tok, err := issuer.Issue(token.Identity{SubjectID: 1, TenantID: 1, RoleOrdinal: rolecatalog.Admin})
	require.NoError(t, err)

	justBefore := newService(t, token.WithClock(func() time.Time { return t0.Add(token.TTL - time.Second) }))
	_, err = justBefore.Verify(tok)
	assert.NoError(t, err, "1s antes de exp el token sigue vigente")

	justAfter := newService(t, token.WithClock(func() time.Time { return t0.Add(token.TTL + time.Second) }))
	_, err = justAfter.Verify(tok)
	assert.ErrorIs(t, err, token.ErrExpired, "1s después de exp debe fallar con ErrExpired")
}

// Alterar un byte del segmento de firma produce ErrSignatureInvalid, nunca
// otros claims.
func TestVerify_FirmaAlterada(t *testing.T) {
	svc := newService(t)
	tok, err := svc.Issue(token.Identity{SubjectID: 1, TenantID: 1, RoleOrdinal: rolecatalog.Admin})
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	// Se altera el primer carácter de la firma: ahí todos los bits cuentan
	// (el último puede llevar bits de relleno que el decoder ignora).
	sig := []byte(parts[2])
	if sig[0] != 'A' {
		sig[0] = 'A'
	} else {
		sig[0] = 'B'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, err := svc.Verify(tampered)
	assert.ErrorIs(t, err, token.ErrSignatureInvalid)
	assert.Nil(t, claims)
}

func TestVerify_SecretDistinto(t *testing.T) {
	svc := newService(t)
	tok, err := svc.Issue(token.Identity{SubjectID: 1, TenantID: 1, RoleOrdinal: rolecatalog.Admin})
	require.NoError(t, err)

	other, err := token.New("otro-secret-completamente-distinto", testIssuer)
	require.NoError(t, err)
	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, token.ErrSignatureInvalid)
}

func TestVerify_TokenMalformado(t *testing.T) {
	svc := newService(t)
	for _, bad := range []string{"", "no-es-un-jwt", "a.b", "a.b.c", "....."} {
		_, err := svc.Verify(bad)
		assert.ErrorIs(t, err, token.ErrMalformed, "entrada %q", bad)
	}
}
