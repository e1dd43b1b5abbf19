package auth

// PasswordHasher hash lento con sal y su verificación.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare devuelve nil si plain corresponde a hash.
	Compare(hash, plain string) error
}

// TokenIssuer firma el token de sesión con la identidad del usuario.
type TokenIssuer interface {
	Generate(userID, rol string) (string, error)
}
