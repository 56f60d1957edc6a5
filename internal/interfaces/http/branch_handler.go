package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/NotSleepp/possbien/internal/application/dto"
)

type branchService interface {
	Create(ctx context.Context, companyID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*dto.BranchResponse, error)
	List(ctx context.Context, companyID string, limit, offset int) ([]dto.BranchResponse, error)
	Update(ctx context.Context, companyID, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error)
	Delete(ctx context.Context, companyID, id string) (*dto.BranchResponse, error)
}

// BranchHandler sucursales de la empresa del token.
type BranchHandler struct {
	uc branchService
}

// NewBranchHandler construye el handler.
func NewBranchHandler(uc branchService) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sucursal
// @Tags         sucursales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBranchRequest  true  "Datos de la sucursal"
// @Success      201   {object}  dto.MessageResponse{datos=dto.BranchResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sucursales [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBranchRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "Sucursal creada correctamente", out)
}

// GetByID godoc
// @Summary      Obtener sucursal
// @Tags         sucursales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sucursal"
// @Success      200  {object}  dto.BranchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sucursales/{id} [get]
func (h *BranchHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar sucursales
// @Tags         sucursales
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.BranchResponse
// @Router       /api/sucursales [get]
func (h *BranchHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar sucursal
// @Tags         sucursales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la sucursal"
// @Param        body  body  dto.UpdateBranchRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse{datos=dto.BranchResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sucursales/{id} [put]
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateBranchRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Sucursal actualizada correctamente", out)
}

// Delete godoc
// @Summary      Eliminar sucursal (lógico)
// @Tags         sucursales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sucursal"
// @Success      200  {object}  dto.MessageResponse{datos=dto.BranchResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sucursales/{id} [delete]
func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Delete(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Sucursal eliminada correctamente", out)
}
