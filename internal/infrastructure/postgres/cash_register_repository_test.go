package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
)

func TestCashRegisterRepo_GetForUpdateBloquea(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("FROM cajas WHERE id = \\$1 AND id_empresa = \\$2 AND eliminado = false FOR UPDATE").
		WithArgs("c-1", "emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "id_empresa", "id_sucursal", "nombre", "estado", "eliminado", "created_at", "updated_at"}).
			AddRow("c-1", "emp-1", "b-1", "Caja 1", entity.CashStatusClosed, false, now, now))

	reg, err := NewCashRegisterRepository(mock).GetForUpdate(context.Background(), "emp-1", "c-1")
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.Equal(t, "b-1", reg.BranchID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCashSessionRepo_GetOpenByRegister(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	opened := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("estado = 'abierta'").
		WithArgs("c-1", "emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "id_empresa", "id_caja", "id_usuario", "monto_apertura", "monto_contado",
			"monto_esperado", "diferencia", "estado", "abierta_en", "cerrada_en"}).
			AddRow("s-1", "emp-1", "c-1", "u-1", decimal.NewFromInt(100000), decimal.Zero, decimal.Zero, decimal.Zero,
				entity.CashStatusOpen, opened, nil))

	s, err := NewCashSessionRepository(mock).GetOpenByRegister(context.Background(), "emp-1", "c-1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.True(t, s.IsOpen())
	assert.Nil(t, s.ClosedAt)
	assert.True(t, s.OpeningAmount.Equal(decimal.NewFromInt(100000)))
}

func TestCashSessionRepo_CloseYaCerrada(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	closed := time.Now().UTC()
	mock.ExpectExec("UPDATE sesiones_caja").
		WithArgs(argList(6, "s-1")...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err = NewCashSessionRepository(mock).Close(context.Background(),
		&entity.CashSession{ID: "s-1", Status: entity.CashStatusClosed, ClosedAt: &closed})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCashSessionRepo_TotalsByPaymentMethod(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("GROUP BY metodo_pago").
		WithArgs("s-1").
		WillReturnRows(pgxmock.NewRows([]string{"metodo_pago", "total"}).
			AddRow("efectivo", decimal.NewFromInt(250000)).
			AddRow("tarjeta", decimal.NewFromInt(80000)))

	totals, err := NewCashSessionRepository(mock).TotalsByPaymentMethod(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Len(t, totals, 2)
	assert.True(t, totals[entity.PaymentCash].Equal(decimal.NewFromInt(250000)))
	assert.True(t, totals[entity.PaymentTransfer].IsZero())
}
