package sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/application/inventory"
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
	branchID   = "b1"
	warehouse  = "w1"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// fakeInventory registra las líneas recibidas; err simula stock insuficiente.
type fakeInventory struct {
	out []inventory.LineMovement
	in  []inventory.LineMovement
	err error
}

func (f *fakeInventory) RegisterOUTInTx(_ context.Context, _ ports.TxRepos, lm inventory.LineMovement) error {
	if f.err != nil {
		return f.err
	}
	f.out = append(f.out, lm)
	return nil
}

func (f *fakeInventory) RegisterINInTx(_ context.Context, _ ports.TxRepos, lm inventory.LineMovement) error {
	f.in = append(f.in, lm)
	return nil
}

type fixture struct {
	uc         *SaleUseCase
	tx         *portmocks.TxRunner
	inv        *fakeInventory
	registers  *mocks.MockCashRegisterRepository
	sessions   *mocks.MockCashSessionRepository
	warehouses *mocks.MockWarehouseRepository
	products   *mocks.MockProductRepository
	sales      *mocks.MockSaleRepository
	sequences  *mocks.MockSequenceRepository
	companies  *mocks.MockCompanyRepository
	pdf        *portmocks.MockPDFGenerator
	metrics    *portmocks.SalesRecorder
}

func newFixture() *fixture {
	f := &fixture{
		inv:        &fakeInventory{},
		registers:  new(mocks.MockCashRegisterRepository),
		sessions:   new(mocks.MockCashSessionRepository),
		warehouses: new(mocks.MockWarehouseRepository),
		products:   new(mocks.MockProductRepository),
		sales:      new(mocks.MockSaleRepository),
		sequences:  new(mocks.MockSequenceRepository),
		companies:  new(mocks.MockCompanyRepository),
		pdf:        new(portmocks.MockPDFGenerator),
		metrics:    &portmocks.SalesRecorder{},
	}
	f.tx = &portmocks.TxRunner{Repos: ports.TxRepos{
		Registers:  f.registers,
		Sessions:   f.sessions,
		Warehouses: f.warehouses,
		Products:   f.products,
		Sales:      f.sales,
		Sequences:  f.sequences,
	}}
	f.uc = NewSaleUseCase(f.tx, f.inv, f.sales, f.companies, f.pdf, f.metrics)
	return f
}

// openRegister deja la caja con sesión abierta, el almacén en su sucursal y dos productos.
func (f *fixture) openRegister() {
	f.registers.On("GetForUpdate", mock.Anything, companyID, registerID).Return(&entity.CashRegister{ID: registerID, BranchID: branchID}, nil)
	f.sessions.On("GetOpenByRegister", mock.Anything, companyID, registerID).Return(&entity.CashSession{ID: "s1", Status: entity.CashStatusOpen}, nil)
	f.warehouses.On("GetByID", mock.Anything, companyID, warehouse).Return(&entity.Warehouse{ID: warehouse, BranchID: branchID}, nil)
	f.products.On("GetByID", mock.Anything, companyID, "p1").
		Return(&entity.Product{ID: "p1", Name: "Arroz", Price: dec(10000), TaxRate: dec(19), Cost: dec(7000)}, nil)
	f.products.On("GetByID", mock.Anything, companyID, "p2").
		Return(&entity.Product{ID: "p2", Name: "Sal", Price: dec(2000), TaxRate: dec(0)}, nil)
}

func cart(method string, received int64) dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		CashRegisterID: registerID,
		WarehouseID:    warehouse,
		PaymentMethod:  method,
		AmountReceived: dec(received),
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: dec(2)},
			{ProductID: "p2", Quantity: dec(1)},
		},
	}
}

func TestCheckout_Efectivo(t *testing.T) {
	f := newFixture()
	f.openRegister()
	f.sequences.On("Next", mock.Anything, companyID, entity.SequenceSale).Return(int64(7), nil)
	var saved *entity.Sale
	f.sales.On("Create", mock.Anything, mock.AnythingOfType("*entity.Sale")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.Sale) }).
		Return(nil)

	out, err := f.uc.Checkout(context.Background(), companyID, userID, cart(entity.PaymentCash, 30000))
	require.NoError(t, err)

	// 2*10000 + 19% = 23800; 1*2000 sin IVA
	assert.True(t, out.Subtotal.Equal(dec(22000)), out.Subtotal.String())
	assert.True(t, out.Tax.Equal(dec(3800)), out.Tax.String())
	assert.True(t, out.Total.Equal(dec(25800)), out.Total.String())
	assert.True(t, out.Change.Equal(dec(4200)), out.Change.String())
	assert.Equal(t, int64(7), out.Number)
	assert.Equal(t, "s1", out.SessionID)
	assert.Equal(t, entity.SaleStatusCompleted, out.Status)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Arroz", out.Items[0].ProductName)

	require.Len(t, f.inv.out, 2)
	assert.Equal(t, "venta #7", f.inv.out[0].Reference)
	assert.Equal(t, saved.ID, f.inv.out[0].TransactionID)
	assert.Equal(t, warehouse, f.inv.out[1].WarehouseID)
	for _, it := range saved.Items {
		assert.Equal(t, saved.ID, it.SaleID)
		assert.NotEmpty(t, it.ID)
	}

	assert.Equal(t, []string{entity.PaymentCash}, f.metrics.Completed)
	assert.True(t, f.tx.Committed)
	f.registers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckout_TarjetaSinMontoRecibido(t *testing.T) {
	f := newFixture()
	f.openRegister()
	f.sequences.On("Next", mock.Anything, companyID, entity.SequenceSale).Return(int64(1), nil)
	f.sales.On("Create", mock.Anything, mock.Anything).Return(nil)

	out, err := f.uc.Checkout(context.Background(), companyID, userID, cart(entity.PaymentCard, 0))
	require.NoError(t, err)
	assert.True(t, out.AmountReceived.Equal(out.Total))
	assert.True(t, out.Change.IsZero())
}

func TestCheckout_PrecioManual(t *testing.T) {
	f := newFixture()
	f.openRegister()
	f.sequences.On("Next", mock.Anything, companyID, entity.SequenceSale).Return(int64(1), nil)
	f.sales.On("Create", mock.Anything, mock.Anything).Return(nil)

	in := cart(entity.PaymentCard, 0)
	price := dec(1500)
	in.Items = []dto.SaleItemRequest{{ProductID: "p2", Quantity: dec(2), UnitPrice: &price}}
	out, err := f.uc.Checkout(context.Background(), companyID, userID, in)
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(dec(3000)))
}

func TestCheckout_CajaCerrada(t *testing.T) {
	f := newFixture()
	f.registers.On("GetForUpdate", mock.Anything, companyID, registerID).Return(&entity.CashRegister{ID: registerID, BranchID: branchID}, nil)
	f.sessions.On("GetOpenByRegister", mock.Anything, companyID, registerID).Return(nil, nil)

	_, err := f.uc.Checkout(context.Background(), companyID, userID, cart(entity.PaymentCash, 30000))
	assert.ErrorIs(t, err, domain.ErrCashRegisterClosed)
	assert.Empty(t, f.inv.out)
	assert.Empty(t, f.metrics.Completed)
}

func TestCheckout_AlmacenDeOtraSucursal(t *testing.T) {
	f := newFixture()
	f.registers.On("GetForUpdate", mock.Anything, companyID, registerID).Return(&entity.CashRegister{ID: registerID, BranchID: branchID}, nil)
	f.sessions.On("GetOpenByRegister", mock.Anything, companyID, registerID).Return(&entity.CashSession{ID: "s1", Status: entity.CashStatusOpen}, nil)
	f.warehouses.On("GetByID", mock.Anything, companyID, warehouse).Return(&entity.Warehouse{ID: warehouse, BranchID: "otra"}, nil)

	_, err := f.uc.Checkout(context.Background(), companyID, userID, cart(entity.PaymentCash, 30000))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_PagoInsuficiente(t *testing.T) {
	f := newFixture()
	f.openRegister()

	_, err := f.uc.Checkout(context.Background(), companyID, userID, cart(entity.PaymentCash, 20000))
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
	f.sequences.AssertNotCalled(t, "Next", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckout_StockInsuficienteRevierte(t *testing.T) {
	f := newFixture()
	f.openRegister()
	f.inv.err = domain.Errorf(domain.ErrInsufficientStock, "stock insuficiente de A")
	f.sequences.On("Next", mock.Anything, companyID, entity.SequenceSale).Return(int64(3), nil)

	_, err := f.uc.Checkout(context.Background(), companyID, userID, cart(entity.PaymentCash, 30000))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.False(t, f.tx.Committed)
	f.sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckout_ProductoInexistente(t *testing.T) {
	f := newFixture()
	f.openRegister()
	f.products.On("GetByID", mock.Anything, companyID, "px").Return(nil, nil)

	in := cart(entity.PaymentCash, 30000)
	in.Items = append(in.Items, dto.SaleItemRequest{ProductID: "px", Quantity: dec(1)})
	_, err := f.uc.Checkout(context.Background(), companyID, userID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckout_SinItems(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Checkout(context.Background(), companyID, userID, dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, f.tx.Runs)
}

func completedSale() *entity.Sale {
	return &entity.Sale{
		ID: "sale-1", CashRegisterID: registerID, SessionID: "s1", WarehouseID: warehouse, Number: 9, Status: entity.SaleStatusCompleted,
		Items: []entity.SaleItem{{ProductID: "p1", Quantity: dec(2)}},
	}
}

func TestVoid_DevuelveStock(t *testing.T) {
	f := newFixture()
	f.openRegister()
	f.sales.On("GetForUpdate", mock.Anything, companyID, "sale-1").Return(completedSale(), nil)
	f.sessions.On("GetByID", mock.Anything, companyID, "s1").Return(&entity.CashSession{ID: "s1", Status: entity.CashStatusOpen}, nil)
	f.sales.On("MarkVoided", mock.Anything, "sale-1").Return(nil)

	out, err := f.uc.Void(context.Background(), companyID, userID, "sale-1")
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusVoided, out.Status)
	require.Len(t, f.inv.in, 1)
	assert.Equal(t, "anulación venta #9", f.inv.in[0].Reference)
	assert.True(t, f.inv.in[0].Quantity.Equal(dec(2)))
	assert.Equal(t, 1, f.metrics.Voided)
}

func TestVoid_YaAnulada(t *testing.T) {
	f := newFixture()
	s := completedSale()
	s.Status = entity.SaleStatusVoided
	f.sales.On("GetForUpdate", mock.Anything, companyID, "sale-1").Return(s, nil)

	_, err := f.uc.Void(context.Background(), companyID, userID, "sale-1")
	assert.ErrorIs(t, err, domain.ErrSaleVoided)
	assert.Zero(t, f.metrics.Voided)
}

func TestVoid_SesionCerrada(t *testing.T) {
	f := newFixture()
	f.sales.On("GetForUpdate", mock.Anything, companyID, "sale-1").Return(completedSale(), nil)
	f.registers.On("GetForUpdate", mock.Anything, companyID, registerID).Return(&entity.CashRegister{ID: registerID}, nil)
	f.sessions.On("GetByID", mock.Anything, companyID, "s1").Return(&entity.CashSession{ID: "s1", Status: entity.CashStatusClosed}, nil)

	_, err := f.uc.Void(context.Background(), companyID, userID, "sale-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, f.inv.in)
}

// Una segunda anulación que llega después de la primera ve la fila ya anulada al tomar el bloqueo;
// si la carrera se da igual, el UPDATE condicionado la rechaza y la tx se deshace.
func TestVoid_CarreraConOtraAnulacion(t *testing.T) {
	f := newFixture()
	f.openRegister()
	f.sales.On("GetForUpdate", mock.Anything, companyID, "sale-1").Return(completedSale(), nil)
	f.sessions.On("GetByID", mock.Anything, companyID, "s1").Return(&entity.CashSession{ID: "s1", Status: entity.CashStatusOpen}, nil)
	f.sales.On("MarkVoided", mock.Anything, "sale-1").Return(domain.ErrSaleVoided)

	_, err := f.uc.Void(context.Background(), companyID, userID, "sale-1")
	assert.ErrorIs(t, err, domain.ErrSaleVoided)
	assert.False(t, f.tx.Committed)
	assert.Zero(t, f.metrics.Voided)
}

func TestVoid_BloqueaVentaYCaja(t *testing.T) {
	f := newFixture()
	f.openRegister()
	f.sales.On("GetForUpdate", mock.Anything, companyID, "sale-1").Return(completedSale(), nil)
	f.sessions.On("GetByID", mock.Anything, companyID, "s1").Return(&entity.CashSession{ID: "s1", Status: entity.CashStatusOpen}, nil)
	f.sales.On("MarkVoided", mock.Anything, "sale-1").Return(nil)

	_, err := f.uc.Void(context.Background(), companyID, userID, "sale-1")
	require.NoError(t, err)
	f.sales.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	f.registers.AssertCalled(t, "GetForUpdate", mock.Anything, companyID, registerID)
}

func TestTicket(t *testing.T) {
	f := newFixture()
	sale := completedSale()
	company := &entity.Company{ID: companyID, Name: "Tienda"}
	f.sales.On("GetByID", mock.Anything, companyID, "sale-1").Return(sale, nil)
	f.companies.On("GetByID", mock.Anything, companyID).Return(company, nil)
	f.pdf.On("SaleTicket", mock.Anything, company, sale).Return([]byte("%PDF-1.4"), nil)

	b, err := f.uc.Ticket(context.Background(), companyID, "sale-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), b)
}

func TestGetByID_NoEncontrada(t *testing.T) {
	f := newFixture()
	f.sales.On("GetByID", mock.Anything, companyID, "nope").Return(nil, nil)
	_, err := f.uc.GetByID(context.Background(), companyID, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
