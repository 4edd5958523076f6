package users

import "time"

// User es la cuenta de un usuario. PasswordHash nunca sale por la API.
type User struct {
	ID    string
	Name  string
	Email string // trim + lower-case; único
	Phone string

	PasswordHash string
	Image        string // referencia (nombre de archivo), opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}
