package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/NotSleepp/possbien/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// emailConstraint índice único parcial sobre usuarios.email.
const emailConstraint = "ux_usuarios_email"

func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), pgUniqueViolation)
}

// mapWriteError traduce errores del driver en escrituras: 23505 -> ErrDuplicate
// (ErrEmailAlreadyExists para el email de usuarios), 23503 -> ErrInvalidInput.
// El resto se envuelve con op.
func mapWriteError(op string, err error) error {
	if err == nil {
		return nil
	}
	if pgErr := pgError(err); pgErr != nil {
		switch pgErr.Code {
		case pgUniqueViolation:
			if pgErr.ConstraintName == emailConstraint {
				return domain.ErrEmailAlreadyExists
			}
			return domain.ErrDuplicate
		case pgForeignKeyViolation:
			return domain.Errorf(domain.ErrInvalidInput, "referencia inválida (%s)", pgErr.ConstraintName)
		}
	}
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}

// mustAffect devuelve ErrNotFound si el comando no tocó filas.
func mustAffect(tag pgconn.CommandTag, what string) error {
	if tag.RowsAffected() == 0 {
		return domain.Errorf(domain.ErrNotFound, "%s no encontrado", what)
	}
	return nil
}

// noRows convierte pgx.ErrNoRows en (nil, nil) según la convención de los repositorios.
func noRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// nullable pasa "" como NULL (columnas uuid opcionales).
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// collect escanea todas las filas con scan y cierra rows.
func collect[T any](rows pgx.Rows, op string, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	list := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}
