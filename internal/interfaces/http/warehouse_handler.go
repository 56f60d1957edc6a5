package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/NotSleepp/possbien/internal/application/dto"
)

type warehouseService interface {
	Create(ctx context.Context, companyID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*dto.WarehouseResponse, error)
	List(ctx context.Context, companyID string, limit, offset int) ([]dto.WarehouseResponse, error)
	ListByBranch(ctx context.Context, companyID, branchID string) ([]dto.WarehouseResponse, error)
	Update(ctx context.Context, companyID, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error)
	Delete(ctx context.Context, companyID, id string) (*dto.WarehouseResponse, error)
}

// WarehouseHandler maneja las peticiones HTTP para almacenes (protegido).
type WarehouseHandler struct {
	uc warehouseService
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc warehouseService) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear almacén
// @Tags         almacenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "Datos del almacén"
// @Success      201   {object}  dto.MessageResponse{datos=dto.WarehouseResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/almacenes [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "Almacén creado correctamente", out)
}

// GetByID godoc
// @Summary      Obtener almacén por ID
// @Tags         almacenes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar almacenes
// @Tags         almacenes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.WarehouseResponse
// @Router       /api/almacenes [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByBranch godoc
// @Summary      Almacenes de una sucursal
// @Tags         almacenes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sucursal"
// @Success      200  {array}   dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes/por-sucursal/{id} [get]
func (h *WarehouseHandler) ListByBranch(c *fiber.Ctx) error {
	branchID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListByBranch(c.UserContext(), GetCompanyID(c), branchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar almacén
// @Tags         almacenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del almacén"
// @Param        body  body  dto.UpdateWarehouseRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse{datos=dto.WarehouseResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/almacenes/{id} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateWarehouseRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Almacén actualizado correctamente", out)
}

// Delete godoc
// @Summary      Eliminar almacén (lógico)
// @Tags         almacenes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {object}  dto.MessageResponse{datos=dto.WarehouseResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{id} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Delete(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Almacén eliminado correctamente", out)
}
