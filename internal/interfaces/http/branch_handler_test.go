package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/domain"
	apphttp "github.com/NotSleepp/possbien/internal/interfaces/http"
)

const (
	testBranchID    = "9c4f4f41-bf4d-4c88-8d8a-4f2a8a3eac44"
	testWarehouseID = "ad5a5a52-c05e-4d99-9e9b-5a3b9b4fbd55"
)

type mockBranches struct{ mock.Mock }

func (m *mockBranches) Create(ctx context.Context, companyID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	args := m.Called(ctx, companyID, in)
	out, _ := args.Get(0).(*dto.BranchResponse)
	return out, args.Error(1)
}

func (m *mockBranches) GetByID(ctx context.Context, companyID, id string) (*dto.BranchResponse, error) {
	args := m.Called(ctx, companyID, id)
	out, _ := args.Get(0).(*dto.BranchResponse)
	return out, args.Error(1)
}

func (m *mockBranches) List(ctx context.Context, companyID string, limit, offset int) ([]dto.BranchResponse, error) {
	args := m.Called(ctx, companyID, limit, offset)
	out, _ := args.Get(0).([]dto.BranchResponse)
	return out, args.Error(1)
}

func (m *mockBranches) Update(ctx context.Context, companyID, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	args := m.Called(ctx, companyID, id, in)
	out, _ := args.Get(0).(*dto.BranchResponse)
	return out, args.Error(1)
}

func (m *mockBranches) Delete(ctx context.Context, companyID, id string) (*dto.BranchResponse, error) {
	args := m.Called(ctx, companyID, id)
	out, _ := args.Get(0).(*dto.BranchResponse)
	return out, args.Error(1)
}

func mountBranches(uc *mockBranches) *fiber.App {
	h := apphttp.NewBranchHandler(uc)
	app := newHandlerApp()
	app.Get("/api/sucursales", h.List)
	app.Post("/api/sucursales", h.Create)
	app.Get("/api/sucursales/:id", h.GetByID)
	app.Put("/api/sucursales/:id", h.Update)
	app.Delete("/api/sucursales/:id", h.Delete)
	return app
}

func TestBranchHandler_Create201(t *testing.T) {
	uc := new(mockBranches)
	uc.On("Create", mock.Anything, testCompanyID, dto.CreateBranchRequest{Name: "Centro", Address: "Cra 7"}).
		Return(&dto.BranchResponse{ID: testBranchID, CompanyID: testCompanyID, Name: "Centro"}, nil)

	resp := doJSON(t, mountBranches(uc), http.MethodPost, "/api/sucursales", map[string]string{"nombre": "Centro", "direccion": "Cra 7"})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var env envelope
	decode(t, resp, &env)
	assert.Equal(t, "Sucursal creada correctamente", env.Message)
	assert.Contains(t, string(env.Data), `"id_empresa":"`+testCompanyID+`"`)
}

func TestBranchHandler_CreateNombreDuplicado409(t *testing.T) {
	uc := new(mockBranches)
	uc.On("Create", mock.Anything, testCompanyID, mock.Anything).
		Return(nil, domain.Errorf(domain.ErrDuplicate, "ya existe una sucursal con ese nombre"))

	resp := doJSON(t, mountBranches(uc), http.MethodPost, "/api/sucursales", map[string]string{"nombre": "Centro"})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var eb errorBody
	decode(t, resp, &eb)
	assert.Equal(t, "DUPLICADO", eb.Code)
	assert.Equal(t, "ya existe una sucursal con ese nombre", eb.Message)
}

func TestBranchHandler_GetByIDOtraEmpresa404(t *testing.T) {
	uc := new(mockBranches)
	uc.On("GetByID", mock.Anything, testCompanyID, testBranchID).
		Return(nil, domain.Errorf(domain.ErrNotFound, "sucursal no encontrada"))

	resp := doJSON(t, mountBranches(uc), http.MethodGet, "/api/sucursales/"+testBranchID, nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var eb errorBody
	decode(t, resp, &eb)
	assert.Equal(t, "NO_ENCONTRADO", eb.Code)
}

func TestBranchHandler_IDInvalido400(t *testing.T) {
	uc := new(mockBranches)

	resp := doJSON(t, mountBranches(uc), http.MethodGet, "/api/sucursales/no-es-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	uc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestBranchHandler_ListPaginado(t *testing.T) {
	uc := new(mockBranches)
	uc.On("List", mock.Anything, testCompanyID, dto.DefaultLimit, 0).
		Return([]dto.BranchResponse{{ID: testBranchID}}, nil)

	resp := doJSON(t, mountBranches(uc), http.MethodGet, "/api/sucursales", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.BranchResponse
	decode(t, resp, &list)
	assert.Len(t, list, 1)
}

func TestBranchHandler_UpdateParcial(t *testing.T) {
	uc := new(mockBranches)
	uc.On("Update", mock.Anything, testCompanyID, testBranchID, mock.MatchedBy(func(in dto.UpdateBranchRequest) bool {
		return in.Name == nil && in.Phone != nil && *in.Phone == "3001234567"
	})).Return(&dto.BranchResponse{ID: testBranchID, Phone: "3001234567"}, nil)

	resp := doJSON(t, mountBranches(uc), http.MethodPut, "/api/sucursales/"+testBranchID, map[string]string{"telefono": "3001234567"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var env envelope
	decode(t, resp, &env)
	assert.Equal(t, "Sucursal actualizada correctamente", env.Message)
}

func TestBranchHandler_DeleteMarcaEliminado(t *testing.T) {
	uc := new(mockBranches)
	uc.On("Delete", mock.Anything, testCompanyID, testBranchID).Return(&dto.BranchResponse{ID: testBranchID, Deleted: true}, nil)

	resp := doJSON(t, mountBranches(uc), http.MethodDelete, "/api/sucursales/"+testBranchID, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var env envelope
	decode(t, resp, &env)
	assert.Equal(t, "Sucursal eliminada correctamente", env.Message)
	assert.Contains(t, string(env.Data), `"eliminado":true`)
}

// ─────────────────────────────────────────────────────────────────────────────
// Almacenes
// ─────────────────────────────────────────────────────────────────────────────

type mockWarehouses struct{ mock.Mock }

func (m *mockWarehouses) Create(ctx context.Context, companyID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	args := m.Called(ctx, companyID, in)
	out, _ := args.Get(0).(*dto.WarehouseResponse)
	return out, args.Error(1)
}

func (m *mockWarehouses) GetByID(ctx context.Context, companyID, id string) (*dto.WarehouseResponse, error) {
	args := m.Called(ctx, companyID, id)
	out, _ := args.Get(0).(*dto.WarehouseResponse)
	return out, args.Error(1)
}

func (m *mockWarehouses) List(ctx context.Context, companyID string, limit, offset int) ([]dto.WarehouseResponse, error) {
	args := m.Called(ctx, companyID, limit, offset)
	out, _ := args.Get(0).([]dto.WarehouseResponse)
	return out, args.Error(1)
}

func (m *mockWarehouses) ListByBranch(ctx context.Context, companyID, branchID string) ([]dto.WarehouseResponse, error) {
	args := m.Called(ctx, companyID, branchID)
	out, _ := args.Get(0).([]dto.WarehouseResponse)
	return out, args.Error(1)
}

func (m *mockWarehouses) Update(ctx context.Context, companyID, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	args := m.Called(ctx, companyID, id, in)
	out, _ := args.Get(0).(*dto.WarehouseResponse)
	return out, args.Error(1)
}

func (m *mockWarehouses) Delete(ctx context.Context, companyID, id string) (*dto.WarehouseResponse, error) {
	args := m.Called(ctx, companyID, id)
	out, _ := args.Get(0).(*dto.WarehouseResponse)
	return out, args.Error(1)
}

func mountWarehouses(uc *mockWarehouses) *fiber.App {
	h := apphttp.NewWarehouseHandler(uc)
	app := newHandlerApp()
	app.Post("/api/almacenes", h.Create)
	app.Get("/api/almacenes/por-sucursal/:id", h.ListByBranch)
	app.Get("/api/almacenes/:id", h.GetByID)
	app.Delete("/api/almacenes/:id", h.Delete)
	return app
}

func TestWarehouseHandler_CreateSucursalNoUUID400(t *testing.T) {
	uc := new(mockWarehouses)

	resp := doJSON(t, mountWarehouses(uc), http.MethodPost, "/api/almacenes", map[string]string{"id_sucursal": "x", "nombre": "Bodega"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var eb errorBody
	decode(t, resp, &eb)
	assert.Equal(t, "VALIDACION", eb.Code)
	require.NotEmpty(t, eb.Details)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestWarehouseHandler_Create201(t *testing.T) {
	uc := new(mockWarehouses)
	uc.On("Create", mock.Anything, testCompanyID, dto.CreateWarehouseRequest{BranchID: testBranchID, Name: "Bodega"}).
		Return(&dto.WarehouseResponse{ID: testWarehouseID, BranchID: testBranchID, Name: "Bodega"}, nil)

	resp := doJSON(t, mountWarehouses(uc), http.MethodPost, "/api/almacenes", map[string]string{"id_sucursal": testBranchID, "nombre": "Bodega"})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var env envelope
	decode(t, resp, &env)
	assert.Equal(t, "Almacén creado correctamente", env.Message)
}

func TestWarehouseHandler_PorSucursal(t *testing.T) {
	uc := new(mockWarehouses)
	uc.On("ListByBranch", mock.Anything, testCompanyID, testBranchID).
		Return([]dto.WarehouseResponse{{ID: testWarehouseID}, {ID: testProductID}}, nil)

	resp := doJSON(t, mountWarehouses(uc), http.MethodGet, "/api/almacenes/por-sucursal/"+testBranchID, nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.WarehouseResponse
	decode(t, resp, &list)
	assert.Len(t, list, 2)
}

func TestWarehouseHandler_DeleteNoEncontrado(t *testing.T) {
	uc := new(mockWarehouses)
	uc.On("Delete", mock.Anything, testCompanyID, testWarehouseID).
		Return(nil, domain.Errorf(domain.ErrNotFound, "almacén no encontrado"))

	resp := doJSON(t, mountWarehouses(uc), http.MethodDelete, "/api/almacenes/"+testWarehouseID, nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
