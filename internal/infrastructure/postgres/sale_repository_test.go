package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
)

func TestSaleRepo_CreateInsertaCabeceraYLineas(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	sale := &entity.Sale{
		ID: "v-1", CompanyID: "emp-1", Number: 7, Status: entity.SaleStatusCompleted, PaymentMethod: entity.PaymentCash,
		Items: []entity.SaleItem{
			{ID: "d-1", ProductID: "p-1", Quantity: decimal.NewFromInt(2)},
			{ID: "d-2", ProductID: "p-2", Quantity: decimal.NewFromInt(1)},
		},
	}
	mock.ExpectExec("INSERT INTO ventas").
		WithArgs(argList(16, "v-1", "emp-1")...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO detalle_ventas").
		WithArgs("d-1", "v-1", "p-1", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO detalle_ventas").
		WithArgs("d-2", "v-1", "p-2", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewSaleRepository(mock).Create(context.Background(), sale))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_GetByIDConLineas(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Date(2026, 3, 2, 15, 4, 0, 0, time.UTC)
	d := decimal.NewFromInt
	mock.ExpectQuery("FROM ventas WHERE id = \\$1").
		WithArgs("v-1", "emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "id_empresa", "id_caja", "id_sesion", "id_almacen", "id_usuario",
			"numero", "subtotal", "impuesto", "total", "metodo_pago", "monto_recibido", "cambio", "estado", "created_at", "updated_at"}).
			AddRow("v-1", "emp-1", "c-1", "s-1", "w-1", "u-1", int64(7), d(20000), d(3800), d(23800),
				"efectivo", d(30000), d(6200), "completada", now, now))
	mock.ExpectQuery("FROM detalle_ventas d").
		WithArgs("v-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "id_venta", "id_producto", "nombre", "cantidad", "precio_unitario",
			"tasa_impuesto", "subtotal", "impuesto", "total"}).
			AddRow("d-1", "v-1", "p-1", "Arroz", d(2), d(10000), d(19), d(20000), d(3800), d(23800)))

	sale, err := NewSaleRepository(mock).GetByID(context.Background(), "emp-1", "v-1")
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, int64(7), sale.Number)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "Arroz", sale.Items[0].ProductName)
	assert.True(t, sale.Items[0].Total.Equal(d(23800)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_GetByIDNoExiste(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM ventas").WithArgs("v-404", "emp-1").WillReturnError(pgx.ErrNoRows)
	sale, err := NewSaleRepository(mock).GetByID(context.Background(), "emp-1", "v-404")
	assert.NoError(t, err)
	assert.Nil(t, sale)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_GetForUpdateBloqueaCabecera(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM ventas WHERE id = \\$1 AND id_empresa = \\$2 FOR UPDATE").
		WithArgs("v-1", "emp-1").
		WillReturnError(pgx.ErrNoRows)
	sale, err := NewSaleRepository(mock).GetForUpdate(context.Background(), "emp-1", "v-1")
	assert.NoError(t, err)
	assert.Nil(t, sale)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_MarkVoided(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE ventas SET estado = \\$2, updated_at = now\\(\\) WHERE id = \\$1 AND estado = \\$3").
		WithArgs("v-1", entity.SaleStatusVoided, entity.SaleStatusCompleted).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, NewSaleRepository(mock).MarkVoided(context.Background(), "v-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Otra tx ya la anuló: el UPDATE condicionado no encuentra la fila completada.
func TestSaleRepo_MarkVoidedYaAnulada(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE ventas SET estado").
		WithArgs("v-1", entity.SaleStatusVoided, entity.SaleStatusCompleted).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err = NewSaleRepository(mock).MarkVoided(context.Background(), "v-1")
	assert.ErrorIs(t, err, domain.ErrSaleVoided)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSequenceRepo_Next(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("ON CONFLICT \\(id_empresa, tipo\\) DO UPDATE").
		WithArgs("emp-1", "venta").
		WillReturnRows(pgxmock.NewRows([]string{"valor"}).AddRow(int64(1)))
	n, err := NewSequenceRepository(mock).Next(context.Background(), "emp-1", "venta")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
