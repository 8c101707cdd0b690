package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"webapp-auth/internal/domain"
	"webapp-auth/internal/repository"
)

// AuthService orquesta login y autorización contra el repositorio de
// usuarios y el servicio de tokens. No guarda estado entre llamadas.
type AuthService struct {
	logger *zap.Logger
	users  repository.UserRepository
	tokens *TokenService
}

var (
	ErrUnknownUser   = errors.New("unknown username")
	ErrWrongPassword = errors.New("wrong password")
	ErrUserNotFound  = errors.New("user not found")
)

func NewAuthService(logger *zap.Logger, users repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		logger: logger,
		users:  users,
		tokens: tokens,
	}
}

// Login busca el registro de credenciales por username, verifica la
// contraseña y emite un token de sesión. Un username ausente (incluido
// el vacío) resulta en ErrUnknownUser; una contraseña incorrecta en
// ErrWrongPassword. Cualquier otro fallo del repositorio se propaga
// tal cual para que el boundary lo trate como error interno.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.User{}, ErrUnknownUser
		}
		return "", domain.User{}, err
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return "", domain.User{}, ErrWrongPassword
	}
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

// Authorize valida el token de sesión y resuelve el usuario que
// identifica. Un token rechazado propaga ErrTokenInvalid; un subject
// que ya no existe (cuenta borrada) resulta en ErrUserNotFound. La
// operación es idempotente: el mismo token válido devuelve siempre el
// mismo usuario.
func (s *AuthService) Authorize(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return domain.User{}, err
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// ValidateLoginInput aplica la precondición del boundary: ambos campos
// presentes y no vacíos.
func ValidateLoginInput(username, password string) bool {
	return username != "" && password != ""
}
