package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maturin/inventario-api/internal/application/dto"
	"github.com/maturin/inventario-api/internal/application/validation"
	"github.com/maturin/inventario-api/internal/domain"
	"github.com/maturin/inventario-api/internal/domain/entity"
	"github.com/maturin/inventario-api/internal/domain/repository"
)

// dummyPassword se hashea una vez para igualar el tiempo de login cuando el email no existe.
const dummyPassword = "inventario-timing-equalizer"

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	hasher    PasswordHasher
	tokens    TokenIssuer
	validator *validation.Validator
	now       func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer, v *validation.Validator) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		validator: v,
		now:       time.Now,
	}
}

// Register valida, verifica unicidad del email, hashea la contraseña y persiste.
// No devuelve datos del usuario. La consulta previa solo da un mensaje amigable;
// la restricción única del almacenamiento resuelve registros concurrentes.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Email = strings.TrimSpace(in.Email)
	in.Rol = strings.TrimSpace(in.Rol)
	if err := uc.validator.Struct(in); err != nil {
		return err
	}

	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return fmt.Errorf("buscar usuario por email: %w", err)
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return fmt.Errorf("hashear contraseña: %w", err)
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RoleUsuario
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: hash,
		Rol:          rol,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("crear usuario: %w", err)
	}
	return nil
}

// Login verifica email/password, genera el token y retorna token + perfil.
// Email inexistente y contraseña incorrecta devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario por email: %w", err)
	}
	if user == nil {
		_ = uc.hasher.Compare(uc.timingHash(), in.Password)
		return nil, domain.ErrInvalidCredentials
	}
	if err := uc.hasher.Compare(user.PasswordHash, in.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Generate(user.ID, user.Rol)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserProfile(user),
	}, nil
}

func (uc *AuthUseCase) timingHash() string {
	uc.dummyOnce.Do(func() {
		uc.dummyHash, _ = uc.hasher.Hash(dummyPassword)
	})
	return uc.dummyHash
}

func toUserProfile(u *entity.User) dto.UserProfile {
	return dto.UserProfile{
		Nombre: u.Nombre,
		Email:  u.Email,
		Rol:    u.Rol,
	}
}
