package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/NotSleepp/possbien/internal/application/dto"
)

type companyService interface {
	Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*dto.CompanyResponse, error)
	List(ctx context.Context, companyID string, limit, offset int) ([]dto.CompanyResponse, error)
	Update(ctx context.Context, companyID, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
	Delete(ctx context.Context, companyID, id string) (*dto.CompanyResponse, error)
}

// CompanyHandler maneja las peticiones HTTP para empresas. Todas las rutas salvo el alta
// operan sobre la empresa del token.
type CompanyHandler struct {
	uc companyService
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc companyService) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Alta de empresa con su administrador (rol plataforma)
// @Tags         empresas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.MessageResponse{datos=dto.CompanyResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empresas [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "Empresa creada correctamente", out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         empresas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Empresa del token (lista de un elemento)
// @Tags         empresas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.CompanyResponse
// @Router       /api/empresas [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         empresas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse{datos=dto.CompanyResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateCompanyRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Empresa actualizada correctamente", out)
}

// Delete godoc
// @Summary      Eliminar empresa (lógico)
// @Tags         empresas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.MessageResponse{datos=dto.CompanyResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Delete(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Empresa eliminada correctamente", out)
}
