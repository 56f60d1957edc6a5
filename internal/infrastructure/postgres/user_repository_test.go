package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
)

func TestUserRepo_GetByEmailConSucursales(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("lower\\(u.email\\)").
		WithArgs("caja@tienda.co").
		WillReturnRows(pgxmock.NewRows([]string{"id", "id_empresa", "id_rol", "nombre", "email", "password_hash", "estado",
			"ultimo_acceso", "sucursales", "eliminado", "created_at", "updated_at"}).
			AddRow("u-1", "emp-1", "r-1", "Ana", "caja@tienda.co", "$2a$10$hash", "activo",
				&now, []string{"b-1", "b-2"}, false, now, now))

	u, err := NewUserRepository(mock).GetByEmail(context.Background(), "caja@tienda.co")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, []string{"b-1", "b-2"}, u.BranchIDs)
	require.NotNil(t, u.LastAccessAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_EmailDuplicado(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO usuarios").
		WithArgs(argList(9, "u-1")...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "ux_usuarios_email"})
	err = NewUserRepository(mock).Create(context.Background(), &entity.User{ID: "u-1", Email: "a@b.co"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SoftDeleteNoExiste(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE usuarios SET eliminado = true").
		WithArgs("u-404", "emp-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err = NewUserRepository(mock).SoftDelete(context.Background(), "emp-1", "u-404")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepo_ReplaceBranches(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM usuarios_sucursales").
		WithArgs("u-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("unnest").
		WithArgs("u-1", []string{"b-1", "b-2"}).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	require.NoError(t, NewUserRepository(mock).ReplaceBranches(context.Background(), "u-1", []string{"b-1", "b-2"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
