package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maturin/inventario-api/internal/domain"
	"github.com/maturin/inventario-api/internal/domain/entity"
)

var userCols = []string{"id", "nombre", "email", "password_hash", "rol", "created_at", "updated_at"}

const testUserID = "0e9d8c7b-6a5f-4e3d-2c1b-0a9f8e7d6c5b"

func TestUserRepo_Create(t *testing.T) {
	ts := time.Now().UTC()
	u := &entity.User{ID: testUserID, Nombre: "Ana", Email: "a@x.com", PasswordHash: "$2a$10$x", Rol: entity.RoleUsuario, CreatedAt: ts, UpdatedAt: ts}

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
		anyErr    bool
	}{
		{
			name: "ok",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs(u.ID, u.Nombre, u.Email, u.PasswordHash, u.Rol, u.CreatedAt, u.UpdatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "email duplicado",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs(u.ID, u.Nombre, u.Email, u.PasswordHash, u.Rol, u.CreatedAt, u.UpdatedAt).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})
			},
			wantErr: domain.ErrEmailAlreadyExists,
		},
		{
			name: "error de conexión",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs(u.ID, u.Nombre, u.Email, u.PasswordHash, u.Rol, u.CreatedAt, u.UpdatedAt).
					WillReturnError(errors.New("connection refused"))
			},
			anyErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()
			tt.setupMock(mock)

			err = NewUserRepository(mock).Create(context.Background(), u)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.ErrorContains(t, err, "connection refused")
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_FindByEmail(t *testing.T) {
	ts := time.Now().UTC()

	t.Run("encontrado", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		mock.ExpectQuery(`FROM users WHERE email = \$1`).WithArgs("a@x.com").
			WillReturnRows(pgxmock.NewRows(userCols).AddRow(testUserID, "Ana", "a@x.com", "hash", "admin", ts, ts))

		got, err := NewUserRepository(mock).FindByEmail(context.Background(), "a@x.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Ana", got.Nombre)
		assert.Equal(t, entity.RoleAdmin, got.Rol)
		assert.Equal(t, "hash", got.PasswordHash)
	})

	t.Run("no existe", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		mock.ExpectQuery(`FROM users WHERE email = \$1`).WithArgs("x@x.com").WillReturnRows(pgxmock.NewRows(userCols))

		got, err := NewUserRepository(mock).FindByEmail(context.Background(), "x@x.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestUserRepo_FindByID_UUIDInvalido(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	mock.ExpectQuery(`FROM users WHERE id = \$1`).WithArgs("nope").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation})

	got, err := NewUserRepository(mock).FindByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepo_DeleteAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	mock.ExpectExec(`DELETE FROM users`).WillReturnResult(pgxmock.NewResult("DELETE", 2))

	require.NoError(t, NewUserRepository(mock).DeleteAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
