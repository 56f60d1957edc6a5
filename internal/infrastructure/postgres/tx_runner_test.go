package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/domain/entity"
)

func TestTxRunner_Commit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO consecutivos").
		WithArgs("emp-1", entity.SequenceSale).
		WillReturnRows(pgxmock.NewRows([]string{"valor"}).AddRow(int64(3)))
	mock.ExpectCommit()

	var got int64
	err = NewTxRunner(mock).Run(context.Background(), func(tx ports.TxRepos) error {
		var err error
		got, err = tx.Sequences.Next(context.Background(), "emp-1", entity.SequenceSale)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_RollbackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err = NewTxRunner(mock).Run(context.Background(), func(ports.TxRepos) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_BeginFails(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin().WillReturnError(errors.New("pool closed"))
	called := false
	err = NewTxRunner(mock).Run(context.Background(), func(ports.TxRepos) error { called = true; return nil })
	assert.ErrorContains(t, err, "begin transaction")
	assert.False(t, called)
}
