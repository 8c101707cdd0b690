package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService emite y valida los tokens de sesión firmados.
// El secreto se fija al construir el servicio y no se muta después, por
// lo que es seguro para uso concurrente sin locks.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// TokenClaims es el contenido tipado de un token de sesión válido.
type TokenClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// ErrTokenInvalid cubre cualquier rechazo: firma inválida, token
// malformado, vacío o expirado. No se distingue la causa hacia el caller.
var ErrTokenInvalid = errors.New("token invalid or expired")

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "webapp-auth",
	}
}

// Issue firma un token HS256 con el usuario como subject y expiración
// absoluta now + ttl.
func (s *TokenService) Issue(userID string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrTokenInvalid
	}
	now := time.Now().UTC()
	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify valida firma y expiración y devuelve los claims tipados.
// La verificación es pura: el mismo token produce siempre el mismo
// resultado mientras no haya pasado su expiración.
func (s *TokenService) Verify(tokenString string) (TokenClaims, error) {
	if len(s.secret) == 0 {
		return TokenClaims{}, ErrTokenInvalid
	}
	if strings.TrimSpace(tokenString) == "" {
		return TokenClaims{}, ErrTokenInvalid
	}
	var claims TokenClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return TokenClaims{}, ErrTokenInvalid
	}
	if !s.isValidClaims(claims) {
		return TokenClaims{}, ErrTokenInvalid
	}
	return claims, nil
}

func (s *TokenService) isValidClaims(claims TokenClaims) bool {
	if strings.TrimSpace(claims.UserID) == "" {
		return false
	}
	if claims.Subject != claims.UserID {
		return false
	}
	return claims.Issuer == s.issuer
}
