package cash

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/application/ports"
	portmocks "github.com/NotSleepp/possbien/internal/application/ports/mocks"
	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository/mocks"
)

const (
	companyID  = "c1"
	userID     = "u1"
	registerID = "r1"
)

type fixture struct {
	uc        *SessionUseCase
	tx        *portmocks.TxRunner
	registers *mocks.MockCashRegisterRepository
	sessions  *mocks.MockCashSessionRepository
	companies *mocks.MockCompanyRepository
	users     *mocks.MockUserRepository
	pdf       *portmocks.MockPDFGenerator
}

func newFixture() *fixture {
	f := &fixture{
		registers: new(mocks.MockCashRegisterRepository),
		sessions:  new(mocks.MockCashSessionRepository),
		companies: new(mocks.MockCompanyRepository),
		users:     new(mocks.MockUserRepository),
		pdf:       new(portmocks.MockPDFGenerator),
	}
	f.tx = &portmocks.TxRunner{Repos: ports.TxRepos{Registers: f.registers, Sessions: f.sessions}}
	f.uc = NewSessionUseCase(f.tx, f.registers, f.sessions, f.companies, f.users, f.pdf)
	return f
}

func (f *fixture) registerExists() {
	f.registers.On("GetForUpdate", mock.Anything, companyID, registerID).
		Return(&entity.CashRegister{ID: registerID, CompanyID: companyID, Status: entity.CashStatusClosed}, nil)
}

func TestOpen_OK(t *testing.T) {
	f := newFixture()
	f.registerExists()
	f.sessions.On("GetOpenByRegister", mock.Anything, companyID, registerID).Return(nil, nil)
	f.sessions.On("Create", mock.Anything, mock.AnythingOfType("*entity.CashSession")).Return(nil)
	f.registers.On("UpdateStatus", mock.Anything, registerID, entity.CashStatusOpen).Return(nil)

	out, err := f.uc.Open(context.Background(), companyID, userID, registerID, dto.OpenSessionRequest{OpeningAmount: decimal.NewFromInt(50000)})
	require.NoError(t, err)
	assert.Equal(t, entity.CashStatusOpen, out.Status)
	assert.Equal(t, userID, out.UserID)
	assert.True(t, out.OpeningAmount.Equal(decimal.NewFromInt(50000)))
	assert.Nil(t, out.ClosedAt)
	assert.True(t, f.tx.Committed)
	f.registers.AssertExpectations(t)
}

func TestOpen_YaAbierta(t *testing.T) {
	f := newFixture()
	f.registerExists()
	f.sessions.On("GetOpenByRegister", mock.Anything, companyID, registerID).Return(&entity.CashSession{ID: "s0", Status: entity.CashStatusOpen}, nil)

	_, err := f.uc.Open(context.Background(), companyID, userID, registerID, dto.OpenSessionRequest{})
	assert.ErrorIs(t, err, domain.ErrCashRegisterOpen)
	f.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOpen_CajaDeOtraEmpresa(t *testing.T) {
	f := newFixture()
	f.registers.On("GetForUpdate", mock.Anything, companyID, registerID).Return(nil, nil)

	_, err := f.uc.Open(context.Background(), companyID, userID, registerID, dto.OpenSessionRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClose_CalculaEsperadoYDiferencia(t *testing.T) {
	f := newFixture()
	f.registerExists()
	session := &entity.CashSession{ID: "s1", CashRegisterID: registerID, UserID: userID, OpeningAmount: decimal.NewFromInt(100000), Status: entity.CashStatusOpen}
	f.sessions.On("GetOpenByRegister", mock.Anything, companyID, registerID).Return(session, nil)
	f.sessions.On("TotalsByPaymentMethod", mock.Anything, "s1").Return(map[string]decimal.Decimal{
		entity.PaymentCash: decimal.NewFromInt(250000),
		entity.PaymentCard: decimal.NewFromInt(90000),
	}, nil)
	f.sessions.On("Close", mock.Anything, session).Return(nil)
	f.registers.On("UpdateStatus", mock.Anything, registerID, entity.CashStatusClosed).Return(nil)

	out, err := f.uc.Close(context.Background(), companyID, registerID, dto.CloseSessionRequest{CountedAmount: decimal.NewFromInt(345000)})
	require.NoError(t, err)
	// esperado = 100000 + 250000; la tarjeta no entra al cajón
	assert.True(t, out.ExpectedAmount.Equal(decimal.NewFromInt(350000)), out.ExpectedAmount.String())
	assert.True(t, out.Difference.Equal(decimal.NewFromInt(-5000)), out.Difference.String())
	assert.Equal(t, entity.CashStatusClosed, out.Status)
	require.NotNil(t, out.ClosedAt)
	assert.Len(t, out.TotalsByMethod, 2)
	f.registers.AssertExpectations(t)
}

func TestClose_SinSesionAbierta(t *testing.T) {
	f := newFixture()
	f.registerExists()
	f.sessions.On("GetOpenByRegister", mock.Anything, companyID, registerID).Return(nil, nil)

	_, err := f.uc.Close(context.Background(), companyID, registerID, dto.CloseSessionRequest{})
	assert.ErrorIs(t, err, domain.ErrCashRegisterClosed)
	assert.False(t, f.tx.Committed)
}

func TestCurrent_TotalesParciales(t *testing.T) {
	f := newFixture()
	f.registers.On("GetByID", mock.Anything, companyID, registerID).Return(&entity.CashRegister{ID: registerID}, nil)
	f.sessions.On("GetOpenByRegister", mock.Anything, companyID, registerID).
		Return(&entity.CashSession{ID: "s1", OpeningAmount: decimal.NewFromInt(1000), Status: entity.CashStatusOpen}, nil)
	f.sessions.On("TotalsByPaymentMethod", mock.Anything, "s1").Return(map[string]decimal.Decimal{entity.PaymentCash: decimal.NewFromInt(500)}, nil)

	out, err := f.uc.Current(context.Background(), companyID, registerID)
	require.NoError(t, err)
	assert.True(t, out.ExpectedAmount.Equal(decimal.NewFromInt(1500)))
}

func TestCurrent_CajaCerrada(t *testing.T) {
	f := newFixture()
	f.registers.On("GetByID", mock.Anything, companyID, registerID).Return(&entity.CashRegister{ID: registerID}, nil)
	f.sessions.On("GetOpenByRegister", mock.Anything, companyID, registerID).Return(nil, nil)

	_, err := f.uc.Current(context.Background(), companyID, registerID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClosingReport_UsaNombreDelCajero(t *testing.T) {
	f := newFixture()
	session := &entity.CashSession{ID: "s1", CashRegisterID: registerID, UserID: userID, Status: entity.CashStatusClosed}
	f.sessions.On("GetByID", mock.Anything, companyID, "s1").Return(session, nil)
	f.registers.On("GetByID", mock.Anything, companyID, registerID).Return(&entity.CashRegister{ID: registerID, Name: "Caja 1"}, nil)
	f.companies.On("GetByID", mock.Anything, companyID).Return(&entity.Company{ID: companyID, Name: "Tienda"}, nil)
	f.users.On("GetByID", mock.Anything, companyID, userID).Return(&entity.User{ID: userID, Name: "Ana Caja"}, nil)
	f.sessions.On("TotalsByPaymentMethod", mock.Anything, "s1").Return(map[string]decimal.Decimal{}, nil)
	f.pdf.On("CashClosingReport", mock.Anything, mock.MatchedBy(func(r ports.ClosingReport) bool {
		return r.Cashier == "Ana Caja" && r.Session == session
	})).Return([]byte("%PDF"), nil)

	pdf, err := f.uc.ClosingReport(context.Background(), companyID, "s1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), pdf)
}

func TestClosingReport_CajeroNoEncontradoUsaID(t *testing.T) {
	f := newFixture()
	session := &entity.CashSession{ID: "s1", CashRegisterID: registerID, UserID: userID, Status: entity.CashStatusClosed}
	f.sessions.On("GetByID", mock.Anything, companyID, "s1").Return(session, nil)
	f.registers.On("GetByID", mock.Anything, companyID, registerID).Return(&entity.CashRegister{ID: registerID}, nil)
	f.companies.On("GetByID", mock.Anything, companyID).Return(&entity.Company{ID: companyID}, nil)
	f.users.On("GetByID", mock.Anything, companyID, userID).Return(nil, errors.New("boom"))
	f.sessions.On("TotalsByPaymentMethod", mock.Anything, "s1").Return(map[string]decimal.Decimal{}, nil)
	f.pdf.On("CashClosingReport", mock.Anything, mock.MatchedBy(func(r ports.ClosingReport) bool { return r.Cashier == userID })).
		Return([]byte("%PDF"), nil)

	_, err := f.uc.ClosingReport(context.Background(), companyID, "s1")
	require.NoError(t, err)
	f.pdf.AssertExpectations(t)
}

func TestExpectedCash_SinEfectivo(t *testing.T) {
	got := ExpectedCash(decimal.NewFromInt(2000), map[string]decimal.Decimal{entity.PaymentTransfer: decimal.NewFromInt(10)})
	assert.True(t, got.Equal(decimal.NewFromInt(2000)))
}
