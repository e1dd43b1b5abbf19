package dto

// RegisterRequest entrada para registro: nombre, email, password y rol opcional.
type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,bcrypt_len"`
	Rol      string `json:"rol" validate:"omitempty,oneof=admin usuario"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserProfile perfil público del usuario (sin password).
type UserProfile struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

// LoginResponse salida con token JWT y perfil.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
