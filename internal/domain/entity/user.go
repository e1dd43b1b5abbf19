package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleUsuario = "usuario"
)

// User representa una cuenta con acceso al inventario.
type User struct {
	ID           string
	Nombre       string
	Email        string // clave de login, única
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Rol          string // admin, usuario
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole indica si r es un rol conocido.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUsuario
}
