package service

import "golang.org/x/crypto/bcrypt"

// VerifyPassword compara una contraseña en claro contra un hash bcrypt.
// Un hash malformado o una contraseña incorrecta devuelven false; nunca
// hay panic ni error para entradas esperadas.
func VerifyPassword(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}

// HashPassword genera un hash bcrypt con el costo por defecto.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
