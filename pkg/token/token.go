package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/puntoventa/backpos-api/pkg/rolecatalog"
)

// TTL es la ventana de validez fija de toda credencial de sesión.
// No hay revocación: un token emitido vale hasta su expiración natural.
const TTL = 24 * time.Hour

// Errores tipados de verificación. El caller distingue con errors.Is.
var (
	ErrMalformed        = errors.New("token malformado")
	ErrSignatureInvalid = errors.New("firma de token inválida")
	ErrExpired          = errors.New("token expirado")
)

// Identity es la identidad a acuñar en una credencial. Inmutable una vez
// emitida: un cambio de tenant o de rol exige emitir un token nuevo.
type Identity struct {
	SubjectID   int64
	TenantID    int64
	RoleOrdinal rolecatalog.Ordinal
	BranchID    *int64
}

// Claims son los claims de sesión: identidad + tenant + rol canónico.
type Claims struct {
	jwt.RegisteredClaims
	SubjectID   int64  `json:"subject_id"`
	TenantID    int64  `json:"tenant_id"`
	RoleOrdinal int    `json:"role_ordinal"`
	BranchID    *int64 `json:"branch_id,omitempty"`
}

// Ordinal devuelve el rol canónico de los claims como tipo cerrado.
func (c *Claims) Ordinal() rolecatalog.Ordinal {
	return rolecatalog.Ordinal(c.RoleOrdinal)
}

// Service emite y verifica credenciales firmadas (JWT HS256). Sin estado
// mutable compartido: seguro bajo concurrencia ilimitada.
type Service struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// Option configura el Service al construirlo.
type Option func(*Service)

// WithClock inyecta el reloj (tests de frontera de expiración).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New construye el servicio con el secreto de firma cargado de configuración.
func New(secret, issuer string, opts ...Option) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: secret vacío")
	}
	s := &Service{secret: []byte(secret), issuer: issuer, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue acuña una credencial firmada para la identidad, con ventana fija TTL.
// Función pura de su entrada más el secreto; sin efectos secundarios.
func (s *Service) Issue(id Identity) (string, error) {
	if !id.RoleOrdinal.Valid() {
		return "", fmt.Errorf("token: ordinal de rol fuera de rango: %d", id.RoleOrdinal)
	}
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(id.SubjectID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
		SubjectID:   id.SubjectID,
		TenantID:    id.TenantID,
		RoleOrdinal: int(id.RoleOrdinal),
		BranchID:    id.BranchID,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify valida firma y vigencia y devuelve los claims. Errores:
// ErrSignatureInvalid si la firma no corresponde al payload bajo el secreto,
// ErrExpired si now > exp, ErrMalformed para todo lo que no se pueda decodificar.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		default:
			return nil, ErrMalformed
		}
	}
	if !tok.Valid {
		return nil, ErrMalformed
	}
	return claims, nil
}
