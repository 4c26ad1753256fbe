package models

import "time"

const (
	RoleAuthor = "author"
	RoleAdmin  = "admin"
	RoleUser   = "user"
)

// Login — учётная запись редакции (author/admin). Пароль хранится
// только в виде bcrypt-хеша.
type Login struct {
	Email        string    `db:"email"         json:"email"`
	PasswordHash string    `db:"password_hash" json:"passwordHash"`
	Role         string    `db:"role"          json:"role"`
	CreatedAt    time.Time `db:"created_at"    json:"createdAt"`
}
