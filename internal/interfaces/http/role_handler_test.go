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

const testPermissionID = "cf7c7c74-e270-4fbb-9abd-7c5dbd61df77"

type mockRoles struct{ mock.Mock }

func (m *mockRoles) Create(ctx context.Context, companyID string, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	args := m.Called(ctx, companyID, in)
	out, _ := args.Get(0).(*dto.RoleResponse)
	return out, args.Error(1)
}

func (m *mockRoles) GetByID(ctx context.Context, companyID, id string) (*dto.RoleResponse, error) {
	args := m.Called(ctx, companyID, id)
	out, _ := args.Get(0).(*dto.RoleResponse)
	return out, args.Error(1)
}

func (m *mockRoles) List(ctx context.Context, companyID string, limit, offset int) ([]dto.RoleResponse, error) {
	args := m.Called(ctx, companyID, limit, offset)
	out, _ := args.Get(0).([]dto.RoleResponse)
	return out, args.Error(1)
}

func (m *mockRoles) Update(ctx context.Context, companyID, id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	args := m.Called(ctx, companyID, id, in)
	out, _ := args.Get(0).(*dto.RoleResponse)
	return out, args.Error(1)
}

func (m *mockRoles) Delete(ctx context.Context, companyID, id string) (*dto.RoleResponse, error) {
	args := m.Called(ctx, companyID, id)
	out, _ := args.Get(0).(*dto.RoleResponse)
	return out, args.Error(1)
}

func mountRoles(uc *mockRoles) *fiber.App {
	h := apphttp.NewRoleHandler(uc)
	app := newHandlerApp()
	app.Get("/api/roles", h.List)
	app.Post("/api/roles", h.Create)
	app.Get("/api/roles/:id", h.GetByID)
	app.Put("/api/roles/:id", h.Update)
	app.Delete("/api/roles/:id", h.Delete)
	return app
}

func TestRoleHandler_Create201(t *testing.T) {
	uc := new(mockRoles)
	uc.On("Create", mock.Anything, testCompanyID, dto.CreateRoleRequest{Name: "cajero", Description: "Caja"}).
		Return(&dto.RoleResponse{ID: testRoleID, CompanyID: testCompanyID, Name: "cajero"}, nil)

	resp := doJSON(t, mountRoles(uc), http.MethodPost, "/api/roles", map[string]string{"nombre": "cajero", "descripcion": "Caja"})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var env envelope
	decode(t, resp, &env)
	assert.Equal(t, "Rol creado correctamente", env.Message)
	assert.Contains(t, string(env.Data), `"nombre":"cajero"`)
}

func TestRoleHandler_CreateDuplicado409(t *testing.T) {
	uc := new(mockRoles)
	uc.On("Create", mock.Anything, testCompanyID, mock.Anything).
		Return(nil, domain.Errorf(domain.ErrDuplicate, "ya existe un rol con ese nombre"))

	resp := doJSON(t, mountRoles(uc), http.MethodPost, "/api/roles", map[string]string{"nombre": "cajero"})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var eb errorBody
	decode(t, resp, &eb)
	assert.Equal(t, "DUPLICADO", eb.Code)
}

func TestRoleHandler_CreateNombreReservado400(t *testing.T) {
	uc := new(mockRoles)
	uc.On("Create", mock.Anything, testCompanyID, mock.Anything).
		Return(nil, domain.Errorf(domain.ErrInvalidInput, "el nombre de rol 'plataforma' está reservado"))

	resp := doJSON(t, mountRoles(uc), http.MethodPost, "/api/roles", map[string]string{"nombre": "plataforma"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var eb errorBody
	decode(t, resp, &eb)
	assert.Equal(t, "VALIDACION", eb.Code)
}

func TestRoleHandler_GetByIDOtraEmpresa404(t *testing.T) {
	uc := new(mockRoles)
	uc.On("GetByID", mock.Anything, testCompanyID, testRoleID).Return(nil, domain.Errorf(domain.ErrNotFound, "rol no encontrado"))

	resp := doJSON(t, mountRoles(uc), http.MethodGet, "/api/roles/"+testRoleID, nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var eb errorBody
	decode(t, resp, &eb)
	assert.Equal(t, "NO_ENCONTRADO", eb.Code)
}

func TestRoleHandler_UpdateYDelete(t *testing.T) {
	uc := new(mockRoles)
	uc.On("Update", mock.Anything, testCompanyID, testRoleID, mock.MatchedBy(func(in dto.UpdateRoleRequest) bool {
		return in.Name == nil && in.Description != nil && *in.Description == "Turno noche"
	})).Return(&dto.RoleResponse{ID: testRoleID, Description: "Turno noche"}, nil)
	uc.On("Delete", mock.Anything, testCompanyID, testRoleID).Return(&dto.RoleResponse{ID: testRoleID, Deleted: true}, nil)
	app := mountRoles(uc)

	resp := doJSON(t, app, http.MethodPut, "/api/roles/"+testRoleID, map[string]string{"descripcion": "Turno noche"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var env envelope
	decode(t, resp, &env)
	assert.Equal(t, "Rol actualizado correctamente", env.Message)

	resp = doJSON(t, app, http.MethodDelete, "/api/roles/"+testRoleID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &env)
	assert.Equal(t, "Rol eliminado correctamente", env.Message)
	assert.Contains(t, string(env.Data), `"eliminado":true`)
}

func TestRoleHandler_DeleteConUsuarios409(t *testing.T) {
	uc := new(mockRoles)
	uc.On("Delete", mock.Anything, testCompanyID, testRoleID).
		Return(nil, domain.Errorf(domain.ErrConflict, "el rol tiene usuarios asignados"))

	resp := doJSON(t, mountRoles(uc), http.MethodDelete, "/api/roles/"+testRoleID, nil)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var eb errorBody
	decode(t, resp, &eb)
	assert.Equal(t, "CONFLICTO", eb.Code)
}

// ─────────────────────────────────────────────────────────────────────────────
// Permisos
// ─────────────────────────────────────────────────────────────────────────────

type mockPermissions struct{ mock.Mock }

func (m *mockPermissions) Create(ctx context.Context, companyID string, in dto.CreatePermissionRequest) (*dto.PermissionResponse, error) {
	args := m.Called(ctx, companyID, in)
	out, _ := args.Get(0).(*dto.PermissionResponse)
	return out, args.Error(1)
}

func (m *mockPermissions) GetByID(ctx context.Context, companyID, id string) (*dto.PermissionResponse, error) {
	args := m.Called(ctx, companyID, id)
	out, _ := args.Get(0).(*dto.PermissionResponse)
	return out, args.Error(1)
}

func (m *mockPermissions) List(ctx context.Context, companyID string, limit, offset int) ([]dto.PermissionResponse, error) {
	args := m.Called(ctx, companyID, limit, offset)
	out, _ := args.Get(0).([]dto.PermissionResponse)
	return out, args.Error(1)
}

func (m *mockPermissions) ListByRole(ctx context.Context, companyID, roleID string) ([]dto.PermissionResponse, error) {
	args := m.Called(ctx, companyID, roleID)
	out, _ := args.Get(0).([]dto.PermissionResponse)
	return out, args.Error(1)
}

func (m *mockPermissions) Update(ctx context.Context, companyID, id string, in dto.UpdatePermissionRequest) (*dto.PermissionResponse, error) {
	args := m.Called(ctx, companyID, id, in)
	out, _ := args.Get(0).(*dto.PermissionResponse)
	return out, args.Error(1)
}

func (m *mockPermissions) Delete(ctx context.Context, companyID, id string) (*dto.PermissionResponse, error) {
	args := m.Called(ctx, companyID, id)
	out, _ := args.Get(0).(*dto.PermissionResponse)
	return out, args.Error(1)
}

func mountPermissions(uc *mockPermissions) *fiber.App {
	h := apphttp.NewPermissionHandler(uc)
	app := newHandlerApp()
	app.Get("/api/permisos", h.List)
	app.Post("/api/permisos", h.Create)
	app.Get("/api/permisos/por-rol/:id", h.ListByRole)
	app.Get("/api/permisos/:id", h.GetByID)
	app.Put("/api/permisos/:id", h.Update)
	app.Delete("/api/permisos/:id", h.Delete)
	return app
}

func TestPermissionHandler_Create201(t *testing.T) {
	uc := new(mockPermissions)
	uc.On("Create", mock.Anything, testCompanyID, dto.CreatePermissionRequest{RoleID: testRoleID, Code: "ventas:crear"}).
		Return(&dto.PermissionResponse{ID: testPermissionID, RoleID: testRoleID, Code: "ventas:crear"}, nil)

	resp := doJSON(t, mountPermissions(uc), http.MethodPost, "/api/permisos", map[string]string{"id_rol": testRoleID, "codigo": "ventas:crear"})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var env envelope
	decode(t, resp, &env)
	assert.Equal(t, "Permiso creado correctamente", env.Message)
	assert.Contains(t, string(env.Data), `"codigo":"ventas:crear"`)
}

func TestPermissionHandler_CodigoMalFormado400(t *testing.T) {
	cases := []string{"ventas", "ventas:borrar", "Ventas:crear", "ventas:crear:todo"}
	for _, code := range cases {
		t.Run(code, func(t *testing.T) {
			uc := new(mockPermissions)

			resp := doJSON(t, mountPermissions(uc), http.MethodPost, "/api/permisos", map[string]string{"id_rol": testRoleID, "codigo": code})

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var eb errorBody
			decode(t, resp, &eb)
			assert.Equal(t, "VALIDACION", eb.Code)
			require.Len(t, eb.Details, 1)
			assert.Equal(t, "codigo", eb.Details[0].Field)
			uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPermissionHandler_CreateDuplicado409(t *testing.T) {
	uc := new(mockPermissions)
	uc.On("Create", mock.Anything, testCompanyID, mock.Anything).
		Return(nil, domain.Errorf(domain.ErrDuplicate, "el rol ya tiene ese permiso"))

	resp := doJSON(t, mountPermissions(uc), http.MethodPost, "/api/permisos", map[string]string{"id_rol": testRoleID, "codigo": "*"})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var eb errorBody
	decode(t, resp, &eb)
	assert.Equal(t, "DUPLICADO", eb.Code)
}

func TestPermissionHandler_PorRol(t *testing.T) {
	uc := new(mockPermissions)
	uc.On("ListByRole", mock.Anything, testCompanyID, testRoleID).
		Return([]dto.PermissionResponse{{Code: "ventas:crear"}, {Code: "productos:*"}}, nil)

	resp := doJSON(t, mountPermissions(uc), http.MethodGet, "/api/permisos/por-rol/"+testRoleID, nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.PermissionResponse
	decode(t, resp, &list)
	assert.Len(t, list, 2)
}

func TestPermissionHandler_RolDeOtraEmpresa404(t *testing.T) {
	uc := new(mockPermissions)
	uc.On("ListByRole", mock.Anything, testCompanyID, testRoleID).Return(nil, domain.Errorf(domain.ErrNotFound, "rol no encontrado"))

	resp := doJSON(t, mountPermissions(uc), http.MethodGet, "/api/permisos/por-rol/"+testRoleID, nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPermissionHandler_UpdateYDelete(t *testing.T) {
	uc := new(mockPermissions)
	uc.On("Update", mock.Anything, testCompanyID, testPermissionID, mock.MatchedBy(func(in dto.UpdatePermissionRequest) bool {
		return in.Code != nil && *in.Code == "ventas:*"
	})).Return(&dto.PermissionResponse{ID: testPermissionID, Code: "ventas:*"}, nil)
	uc.On("Delete", mock.Anything, testCompanyID, testPermissionID).Return(&dto.PermissionResponse{ID: testPermissionID, Deleted: true}, nil)
	app := mountPermissions(uc)

	resp := doJSON(t, app, http.MethodPut, "/api/permisos/"+testPermissionID, map[string]string{"codigo": "ventas:*"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var env envelope
	decode(t, resp, &env)
	assert.Equal(t, "Permiso actualizado correctamente", env.Message)

	resp = doJSON(t, app, http.MethodDelete, "/api/permisos/"+testPermissionID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &env)
	assert.Equal(t, "Permiso eliminado correctamente", env.Message)
	assert.Contains(t, string(env.Data), `"eliminado":true`)
}
