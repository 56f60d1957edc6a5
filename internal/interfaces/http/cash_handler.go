package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/NotSleepp/possbien/internal/application/dto"
)

type cashRegisterService interface {
	Create(ctx context.Context, companyID string, in dto.CreateCashRegisterRequest) (*dto.CashRegisterResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*dto.CashRegisterResponse, error)
	List(ctx context.Context, companyID string, limit, offset int) ([]dto.CashRegisterResponse, error)
	ListByBranch(ctx context.Context, companyID, branchID string) ([]dto.CashRegisterResponse, error)
	Update(ctx context.Context, companyID, id string, in dto.UpdateCashRegisterRequest) (*dto.CashRegisterResponse, error)
	Delete(ctx context.Context, companyID, id string) (*dto.CashRegisterResponse, error)
}

type cashSessionService interface {
	Open(ctx context.Context, companyID, userID, registerID string, in dto.OpenSessionRequest) (*dto.CashSessionResponse, error)
	Close(ctx context.Context, companyID, registerID string, in dto.CloseSessionRequest) (*dto.CashSessionResponse, error)
	Current(ctx context.Context, companyID, registerID string) (*dto.CashSessionResponse, error)
	ClosingReport(ctx context.Context, companyID, sessionID string) ([]byte, error)
}

// CashHandler cajas registradoras y sus sesiones (apertura, cierre, arqueo).
type CashHandler struct {
	registers cashRegisterService
	sessions  cashSessionService
}

// NewCashHandler construye el handler.
func NewCashHandler(registers cashRegisterService, sessions cashSessionService) *CashHandler {
	return &CashHandler{registers: registers, sessions: sessions}
}

// Create godoc
// @Summary      Crear caja
// @Tags         cajas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashRegisterRequest  true  "Sucursal y nombre"
// @Success      201   {object}  dto.MessageResponse{datos=dto.CashRegisterResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cajas [post]
func (h *CashHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashRegisterRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.registers.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "Caja creada correctamente", out)
}

// GetByID godoc
// @Summary      Obtener caja
// @Tags         cajas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la caja"
// @Success      200  {object}  dto.CashRegisterResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cajas/{id} [get]
func (h *CashHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.registers.GetByID(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cajas
// @Tags         cajas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CashRegisterResponse
// @Router       /api/cajas [get]
func (h *CashHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.registers.List(c.UserContext(), GetCompanyID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByBranch GET /api/cajas/por-sucursal/:id
func (h *CashHandler) ListByBranch(c *fiber.Ctx) error {
	branchID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.registers.ListByBranch(c.UserContext(), GetCompanyID(c), branchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar caja
// @Tags         cajas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID de la caja"
// @Param        body  body  dto.UpdateCashRegisterRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse{datos=dto.CashRegisterResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cajas/{id} [put]
func (h *CashHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateCashRegisterRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.registers.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Caja actualizada correctamente", out)
}

// Delete godoc
// @Summary      Eliminar caja (lógico)
// @Tags         cajas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la caja"
// @Success      200  {object}  dto.MessageResponse{datos=dto.CashRegisterResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cajas/{id} [delete]
func (h *CashHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.registers.Delete(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Caja eliminada correctamente", out)
}

// Open godoc
// @Summary      Abrir caja
// @Tags         cajas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la caja"
// @Param        body  body  dto.OpenSessionRequest  true  "monto_apertura"
// @Success      201   {object}  dto.MessageResponse{datos=dto.CashSessionResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cajas/{id}/abrir [post]
func (h *CashHandler) Open(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.OpenSessionRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.sessions.Open(c.UserContext(), GetCompanyID(c), GetUserID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "Caja abierta correctamente", out)
}

// Close godoc
// @Summary      Cerrar caja (arqueo)
// @Description  esperado = apertura + ventas en efectivo; diferencia = contado - esperado.
// @Tags         cajas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la caja"
// @Param        body  body  dto.CloseSessionRequest  true  "monto_contado"
// @Success      200   {object}  dto.MessageResponse{datos=dto.CashSessionResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cajas/{id}/cerrar [post]
func (h *CashHandler) Close(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CloseSessionRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.sessions.Close(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Caja cerrada correctamente", out)
}

// CurrentSession godoc
// @Summary      Sesión abierta de la caja
// @Tags         cajas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la caja"
// @Success      200  {object}  dto.CashSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cajas/{id}/sesion-actual [get]
func (h *CashHandler) CurrentSession(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.sessions.Current(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ClosingReport godoc
// @Summary      Reporte PDF de cierre de caja
// @Tags         cajas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cajas/sesiones/{id}/reporte [get]
func (h *CashHandler) ClosingReport(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	doc, err := h.sessions.ClosingReport(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, "cierre-"+id+".pdf", doc)
}
