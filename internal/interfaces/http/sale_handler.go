package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/NotSleepp/possbien/internal/application/dto"
)

type saleService interface {
	Checkout(ctx context.Context, companyID, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error)
	Void(ctx context.Context, companyID, userID, saleID string) (*dto.SaleResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*dto.SaleResponse, error)
	List(ctx context.Context, companyID string, limit, offset int) ([]dto.SaleResponse, error)
	Ticket(ctx context.Context, companyID, id string) ([]byte, error)
}

// SaleHandler ventas del punto de venta.
type SaleHandler struct {
	uc saleService
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc saleService) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Checkout godoc
// @Summary      Registrar venta (cobro del carrito)
// @Description  Requiere sesión abierta en la caja. Descuenta stock y genera un movimiento SALIDA por línea.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Caja, almacén, pago e items"
// @Success      201   {object}  dto.MessageResponse{datos=dto.SaleResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Checkout(c.UserContext(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "Venta registrada correctamente", out)
}

// GetByID godoc
// @Summary      Obtener venta con sus líneas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar ventas (más reciente primero)
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.SaleResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Void godoc
// @Summary      Anular venta
// @Description  Devuelve el stock con movimientos ENTRADA. Solo mientras la sesión de la venta siga abierta.
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.MessageResponse{datos=dto.SaleResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/anular [post]
func (h *SaleHandler) Void(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Void(c.UserContext(), GetCompanyID(c), GetUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Venta anulada correctamente", out)
}

// Ticket godoc
// @Summary      Tirilla PDF de la venta
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/ticket [get]
func (h *SaleHandler) Ticket(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	doc, err := h.uc.Ticket(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, "venta-"+id+".pdf", doc)
}
