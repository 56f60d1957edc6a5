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
	"github.com/NotSleepp/possbien/internal/application/ports"
	portmocks "github.com/NotSleepp/possbien/internal/application/ports/mocks"
	"github.com/NotSleepp/possbien/internal/application/usecase"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository/mocks"
	apphttp "github.com/NotSleepp/possbien/internal/interfaces/http"
)

const testOtherCompanyID = "11111111-1111-4111-8111-111111111111"

// mountCompanies usa el caso de uso real para cubrir el alcance por empresa de extremo a extremo.
func mountCompanies(repo *mocks.MockCompanyRepository) *fiber.App {
	uc := usecase.NewCompanyUseCase(&portmocks.TxRunner{Repos: ports.TxRepos{Companies: repo}}, repo)
	h := apphttp.NewCompanyHandler(uc)
	app := newHandlerApp()
	app.Get("/api/empresas", h.List)
	app.Post("/api/empresas", apphttp.RequireRole(entity.RolePlatform), h.Create)
	app.Get("/api/empresas/:id", h.GetByID)
	app.Put("/api/empresas/:id", h.Update)
	app.Delete("/api/empresas/:id", h.Delete)
	return app
}

func TestCompanyHandler_OtraEmpresa404(t *testing.T) {
	cases := []struct {
		method string
		body   interface{}
	}{
		{http.MethodGet, nil},
		{http.MethodPut, map[string]string{"nombre": "Ajena"}},
		{http.MethodDelete, nil},
	}
	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			repo := new(mocks.MockCompanyRepository)

			resp := doJSON(t, mountCompanies(repo), tc.method, "/api/empresas/"+testOtherCompanyID, tc.body)

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			var eb errorBody
			decode(t, resp, &eb)
			assert.Equal(t, "NO_ENCONTRADO", eb.Code)
			repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
		})
	}
}

func TestCompanyHandler_PropiaGetYDelete(t *testing.T) {
	repo := new(mocks.MockCompanyRepository)
	repo.On("GetByID", mock.Anything, testCompanyID).Return(&entity.Company{ID: testCompanyID, Name: "Tienda"}, nil)
	repo.On("SoftDelete", mock.Anything, testCompanyID).Return(nil)
	app := mountCompanies(repo)

	resp := doJSON(t, app, http.MethodGet, "/api/empresas/"+testCompanyID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.CompanyResponse
	decode(t, resp, &got)
	assert.Equal(t, "Tienda", got.Name)

	resp = doJSON(t, app, http.MethodDelete, "/api/empresas/"+testCompanyID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var env envelope
	decode(t, resp, &env)
	assert.Equal(t, "Empresa eliminada correctamente", env.Message)
	assert.Contains(t, string(env.Data), `"eliminado":true`)
}

func TestCompanyHandler_ListSoloLaPropia(t *testing.T) {
	repo := new(mocks.MockCompanyRepository)
	repo.On("GetByID", mock.Anything, testCompanyID).Return(&entity.Company{ID: testCompanyID}, nil)

	resp := doJSON(t, mountCompanies(repo), http.MethodGet, "/api/empresas", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.CompanyResponse
	decode(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, testCompanyID, list[0].ID)
}

func TestCompanyHandler_AltaSoloPlataforma(t *testing.T) {
	repo := new(mocks.MockCompanyRepository)

	resp := doJSON(t, mountCompanies(repo), http.MethodPost, "/api/empresas", map[string]interface{}{
		"nombre": "Otra Tienda",
		"nit":    "901000000",
		"administrador": map[string]string{
			"nombre": "Laura", "email": "laura@otra.co", "password": "secreta123",
		},
	})

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	var eb errorBody
	decode(t, resp, &eb)
	assert.Equal(t, "PROHIBIDO", eb.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompanyHandler_AltaSinAdministrador400(t *testing.T) {
	repo := new(mocks.MockCompanyRepository)
	app := newHandlerApp()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(apphttp.LocalRole, entity.RolePlatform)
		return c.Next()
	})
	h := apphttp.NewCompanyHandler(usecase.NewCompanyUseCase(&portmocks.TxRunner{}, repo))
	app.Post("/api/empresas", apphttp.RequireRole(entity.RolePlatform), h.Create)

	resp := doJSON(t, app, http.MethodPost, "/api/empresas", map[string]string{"nombre": "Otra Tienda", "nit": "901000000"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var eb errorBody
	decode(t, resp, &eb)
	assert.Equal(t, "VALIDACION", eb.Code)
	assert.NotEmpty(t, eb.Details)
}

// companyCreateStub prueba el 201 del alta sin pasar por la transacción.
type companyCreateStub struct {
	mock.Mock
}

func (m *companyCreateStub) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dto.CompanyResponse)
	return out, args.Error(1)
}

func (m *companyCreateStub) GetByID(ctx context.Context, companyID, id string) (*dto.CompanyResponse, error) {
	return nil, nil
}

func (m *companyCreateStub) List(ctx context.Context, companyID string, limit, offset int) ([]dto.CompanyResponse, error) {
	return nil, nil
}

func (m *companyCreateStub) Update(ctx context.Context, companyID, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	return nil, nil
}

func (m *companyCreateStub) Delete(ctx context.Context, companyID, id string) (*dto.CompanyResponse, error) {
	return nil, nil
}

func TestCompanyHandler_Alta201(t *testing.T) {
	svc := new(companyCreateStub)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in dto.CreateCompanyRequest) bool {
		return in.NIT == "901000000" && in.Admin.Email == "laura@otra.co"
	})).Return(&dto.CompanyResponse{ID: testOtherCompanyID, Name: "Otra Tienda", AdminUserID: testUserID}, nil)

	app := newHandlerApp()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(apphttp.LocalRole, "Plataforma")
		return c.Next()
	})
	app.Post("/api/empresas", apphttp.RequireRole(entity.RolePlatform), apphttp.NewCompanyHandler(svc).Create)

	resp := doJSON(t, app, http.MethodPost, "/api/empresas", map[string]interface{}{
		"nombre": "Otra Tienda",
		"nit":    "901000000",
		"administrador": map[string]string{
			"nombre": "Laura", "email": "laura@otra.co", "password": "secreta123",
		},
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var env envelope
	decode(t, resp, &env)
	assert.Equal(t, "Empresa creada correctamente", env.Message)
	assert.Contains(t, string(env.Data), `"id_usuario_admin":"`+testUserID+`"`)
	svc.AssertExpectations(t)
}
