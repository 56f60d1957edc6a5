package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/domain"
	apphttp "github.com/NotSleepp/possbien/internal/interfaces/http"
)

type mockRegisters struct{ mock.Mock }

func (m *mockRegisters) Create(ctx context.Context, companyID string, in dto.CreateCashRegisterRequest) (*dto.CashRegisterResponse, error) {
	args := m.Called(ctx, companyID, in)
	out, _ := args.Get(0).(*dto.CashRegisterResponse)
	return out, args.Error(1)
}

func (m *mockRegisters) GetByID(ctx context.Context, companyID, id string) (*dto.CashRegisterResponse, error) {
	args := m.Called(ctx, companyID, id)
	out, _ := args.Get(0).(*dto.CashRegisterResponse)
	return out, args.Error(1)
}

func (m *mockRegisters) List(ctx context.Context, companyID string, limit, offset int) ([]dto.CashRegisterResponse, error) {
	args := m.Called(ctx, companyID, limit, offset)
	out, _ := args.Get(0).([]dto.CashRegisterResponse)
	return out, args.Error(1)
}

func (m *mockRegisters) ListByBranch(ctx context.Context, companyID, branchID string) ([]dto.CashRegisterResponse, error) {
	args := m.Called(ctx, companyID, branchID)
	out, _ := args.Get(0).([]dto.CashRegisterResponse)
	return out, args.Error(1)
}

func (m *mockRegisters) Update(ctx context.Context, companyID, id string, in dto.UpdateCashRegisterRequest) (*dto.CashRegisterResponse, error) {
	args := m.Called(ctx, companyID, id, in)
	out, _ := args.Get(0).(*dto.CashRegisterResponse)
	return out, args.Error(1)
}

func (m *mockRegisters) Delete(ctx context.Context, companyID, id string) (*dto.CashRegisterResponse, error) {
	args := m.Called(ctx, companyID, id)
	out, _ := args.Get(0).(*dto.CashRegisterResponse)
	return out, args.Error(1)
}

type mockSessions struct{ mock.Mock }

func (m *mockSessions) Open(ctx context.Context, companyID, userID, registerID string, in dto.OpenSessionRequest) (*dto.CashSessionResponse, error) {
	args := m.Called(ctx, companyID, userID, registerID, in)
	out, _ := args.Get(0).(*dto.CashSessionResponse)
	return out, args.Error(1)
}

func (m *mockSessions) Close(ctx context.Context, companyID, registerID string, in dto.CloseSessionRequest) (*dto.CashSessionResponse, error) {
	args := m.Called(ctx, companyID, registerID, in)
	out, _ := args.Get(0).(*dto.CashSessionResponse)
	return out, args.Error(1)
}

func (m *mockSessions) Current(ctx context.Context, companyID, registerID string) (*dto.CashSessionResponse, error) {
	args := m.Called(ctx, companyID, registerID)
	out, _ := args.Get(0).(*dto.CashSessionResponse)
	return out, args.Error(1)
}

func (m *mockSessions) ClosingReport(ctx context.Context, companyID, sessionID string) ([]byte, error) {
	args := m.Called(ctx, companyID, sessionID)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

func mountCash(registers *mockRegisters, sessions *mockSessions) *fiber.App {
	h := apphttp.NewCashHandler(registers, sessions)
	app := newHandlerApp()
	app.Post("/api/cajas", h.Create)
	app.Get("/api/cajas/por-sucursal/:id", h.ListByBranch)
	app.Get("/api/cajas/sesiones/:id/reporte", h.ClosingReport)
	app.Post("/api/cajas/:id/abrir", h.Open)
	app.Post("/api/cajas/:id/cerrar", h.Close)
	app.Get("/api/cajas/:id/sesion-actual", h.CurrentSession)
	app.Get("/api/cajas/:id", h.GetByID)
	return app
}

func TestCashHandler_Create(t *testing.T) {
	registers := new(mockRegisters)
	registers.On("Create", mock.Anything, testCompanyID, dto.CreateCashRegisterRequest{BranchID: testSaleID, Name: "Caja 1"}).
		Return(&dto.CashRegisterResponse{ID: testRegisterID, Name: "Caja 1", Status: "cerrada"}, nil)

	resp := doJSON(t, mountCash(registers, new(mockSessions)), http.MethodPost, "/api/cajas",
		map[string]string{"id_sucursal": testSaleID, "nombre": "Caja 1"})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var env envelope
	decode(t, resp, &env)
	assert.Equal(t, "Caja creada correctamente", env.Message)
}

func TestCashHandler_Open(t *testing.T) {
	sessions := new(mockSessions)
	sessions.On("Open", mock.Anything, testCompanyID, testUserID, testRegisterID, mock.MatchedBy(func(in dto.OpenSessionRequest) bool {
		return in.OpeningAmount.Equal(decimal.NewFromInt(50000))
	})).Return(&dto.CashSessionResponse{ID: testSaleID, Status: "abierta"}, nil).Once()
	sessions.On("Open", mock.Anything, testCompanyID, testUserID, testRegisterID, mock.Anything).
		Return(nil, domain.ErrCashRegisterOpen).Once()

	app := mountCash(new(mockRegisters), sessions)

	resp := doJSON(t, app, http.MethodPost, "/api/cajas/"+testRegisterID+"/abrir", `{"monto_apertura":50000}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var env envelope
	decode(t, resp, &env)
	assert.Equal(t, "Caja abierta correctamente", env.Message)

	resp = doJSON(t, app, http.MethodPost, "/api/cajas/"+testRegisterID+"/abrir", `{"monto_apertura":50000}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var eb errorBody
	decode(t, resp, &eb)
	assert.Equal(t, "CAJA_ABIERTA", eb.Code)
}

func TestCashHandler_Open_MontoNegativo(t *testing.T) {
	sessions := new(mockSessions)
	resp := doJSON(t, mountCash(new(mockRegisters), sessions), http.MethodPost, "/api/cajas/"+testRegisterID+"/abrir", `{"monto_apertura":-1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	sessions.AssertNotCalled(t, "Open", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCashHandler_Close(t *testing.T) {
	sessions := new(mockSessions)
	sessions.On("Close", mock.Anything, testCompanyID, testRegisterID, mock.Anything).Return(&dto.CashSessionResponse{
		ID:             testSaleID,
		Status:         "cerrada",
		ExpectedAmount: decimal.NewFromInt(80000),
		CountedAmount:  decimal.NewFromInt(79000),
		Difference:     decimal.NewFromInt(-1000),
	}, nil)

	resp := doJSON(t, mountCash(new(mockRegisters), sessions), http.MethodPost, "/api/cajas/"+testRegisterID+"/cerrar", `{"monto_contado":79000}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var env envelope
	decode(t, resp, &env)
	assert.Equal(t, "Caja cerrada correctamente", env.Message)
	assert.Contains(t, string(env.Data), `"diferencia":"-1000"`)
}

func TestCashHandler_CurrentSession_SinSesion404(t *testing.T) {
	sessions := new(mockSessions)
	sessions.On("Current", mock.Anything, testCompanyID, testRegisterID).
		Return(nil, domain.Errorf(domain.ErrNotFound, "la caja no tiene una sesión abierta"))

	resp := doJSON(t, mountCash(new(mockRegisters), sessions), http.MethodGet, "/api/cajas/"+testRegisterID+"/sesion-actual", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var eb errorBody
	decode(t, resp, &eb)
	assert.Equal(t, "la caja no tiene una sesión abierta", eb.Message)
}

func TestCashHandler_ClosingReport(t *testing.T) {
	sessions := new(mockSessions)
	sessions.On("ClosingReport", mock.Anything, testCompanyID, testSaleID).Return([]byte("%PDF-1.4"), nil)

	resp := doJSON(t, mountCash(new(mockRegisters), sessions), http.MethodGet, "/api/cajas/sesiones/"+testSaleID+"/reporte", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestCashHandler_ListByBranch(t *testing.T) {
	registers := new(mockRegisters)
	registers.On("ListByBranch", mock.Anything, testCompanyID, testSaleID).
		Return([]dto.CashRegisterResponse{{ID: testRegisterID}}, nil)

	resp := doJSON(t, mountCash(registers, new(mockSessions)), http.MethodGet, "/api/cajas/por-sucursal/"+testSaleID, nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.CashRegisterResponse
	decode(t, resp, &list)
	assert.Len(t, list, 1)
}
