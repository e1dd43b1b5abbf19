package repository

import (
	"context"

	"github.com/maturin/inventario-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Find* devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	// Create persiste un usuario. Devuelve domain.ErrEmailAlreadyExists si el email ya existe
	// (la restricción única del almacenamiento es la fuente de verdad).
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// DeleteAll elimina todos los usuarios (solo para seed).
	DeleteAll(ctx context.Context) error
}
