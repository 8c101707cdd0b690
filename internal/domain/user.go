package domain

import "time"

// User representa el registro de credenciales y perfil de un usuario.
// El hash de contraseña nunca se serializa.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	DOB          time.Time `json:"dob"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser es la proyección del usuario que se expone por la API.
type PublicUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	DOB       string `json:"dob"`
}

// Public devuelve la vista pública del usuario, con la fecha de
// nacimiento en formato YYYY-MM-DD.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		DOB:       u.DOB.Format("2006-01-02"),
	}
}
