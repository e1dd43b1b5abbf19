package usecase

import (
	"context"
	"fmt"

	"github.com/maturin/inventario-api/internal/application/dto"
	"github.com/maturin/inventario-api/internal/domain"
	"github.com/maturin/inventario-api/internal/domain/entity"
	"github.com/maturin/inventario-api/internal/domain/repository"
)

// UserUseCase consultas sobre la cuenta autenticada.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Profile devuelve el perfil público del usuario id (sin hash).
// Un token válido de un usuario ya borrado (p. ej. tras un seed) da ErrUserNotFound.
func (uc *UserUseCase) Profile(ctx context.Context, id string) (*dto.UserProfile, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usuario: buscar %s: %w", id, err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return entityToUserProfile(user), nil
}

func entityToUserProfile(u *entity.User) *dto.UserProfile {
	return &dto.UserProfile{
		Nombre: u.Nombre,
		Email:  u.Email,
		Rol:    u.Rol,
	}
}
