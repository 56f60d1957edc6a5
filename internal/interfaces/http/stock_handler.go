package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/domain"
)

type stockService interface {
	Create(ctx context.Context, companyID, userID string, in dto.CreateStockRequest) (*dto.StockResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*dto.StockResponse, error)
	List(ctx context.Context, companyID string, limit, offset int) ([]dto.StockResponse, error)
	ListByProduct(ctx context.Context, companyID, productID string) ([]dto.StockResponse, error)
	ListByWarehouse(ctx context.Context, companyID, warehouseID string) ([]dto.StockResponse, error)
	ListBelowMinimum(ctx context.Context, companyID string) ([]dto.StockResponse, error)
	Update(ctx context.Context, companyID, id string, in dto.UpdateStockRequest) (*dto.StockResponse, error)
	Delete(ctx context.Context, companyID, id string) (*dto.StockResponse, error)
}

type movementService interface {
	RegisterMovementFromRequest(ctx context.Context, companyID, userID string, in dto.RegisterMovementRequest) ([]dto.MovementResponse, error)
	ListByProduct(ctx context.Context, companyID, productID string, limit, offset int) ([]dto.MovementResponse, error)
}

type replenishmentService interface {
	GenerateReplenishmentList(ctx context.Context, companyID, warehouseID string) ([]dto.ReplenishmentSuggestionDTO, error)
}

// StockHandler existencias por producto/almacén, kardex y reposición.
type StockHandler struct {
	stock         stockService
	movements     movementService
	replenishment replenishmentService
}

// NewStockHandler construye el handler.
func NewStockHandler(stock stockService, movements movementService, replenishment replenishmentService) *StockHandler {
	return &StockHandler{stock: stock, movements: movements, replenishment: replenishment}
}

// Create godoc
// @Summary      Crear registro de stock
// @Description  Crea la fila producto/almacén; la cantidad inicial queda en el kardex como AJUSTE.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRequest  true  "Producto, almacén y cantidad inicial"
// @Success      201   {object}  dto.MessageResponse{datos=dto.StockResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.stock.Create(c.UserContext(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "Stock creado correctamente", out)
}

// GetByID godoc
// @Summary      Obtener registro de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.stock.GetByID(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.StockResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.stock.List(c.UserContext(), GetCompanyID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct GET /api/stock/por-producto/:id
func (h *StockHandler) ListByProduct(c *fiber.Ctx) error {
	productID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.stock.ListByProduct(c.UserContext(), GetCompanyID(c), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByWarehouse GET /api/stock/por-almacen/:id
func (h *StockHandler) ListByWarehouse(c *fiber.Ctx) error {
	warehouseID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.stock.ListByWarehouse(c.UserContext(), GetCompanyID(c), warehouseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBelowMinimum godoc
// @Summary      Stock bajo el mínimo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockResponse
// @Router       /api/stock/bajo-minimo [get]
func (h *StockHandler) ListBelowMinimum(c *fiber.Ctx) error {
	out, err := h.stock.ListBelowMinimum(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar stock mínimo
// @Description  La cantidad solo cambia con movimientos.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del registro"
// @Param        body  body  dto.UpdateStockRequest  true  "stock_minimo"
// @Success      200   {object}  dto.MessageResponse{datos=dto.StockResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateStockRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.stock.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Stock actualizado correctamente", out)
}

// Delete godoc
// @Summary      Eliminar registro de stock (lógico)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.MessageResponse{datos=dto.StockResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.stock.Delete(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Stock eliminado correctamente", out)
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  ENTRADA recalcula el costo promedio ponderado; SALIDA y AJUSTE nunca dejan stock negativo;
// @Description  TRANSFERENCIA genera una salida y una entrada con la misma transacción.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MessageResponse{datos=[]dto.MovementResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/movimientos [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.movements.RegisterMovementFromRequest(c.UserContext(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "Movimiento registrado correctamente", out)
}

// ListMovementsByProduct godoc
// @Summary      Kardex de un producto (más reciente primero)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Límite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}   dto.MovementResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/stock/movimientos/por-producto/{id} [get]
func (h *StockHandler) ListMovementsByProduct(c *fiber.Ctx) error {
	productID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	limit, offset := page(c)
	out, err := h.movements.ListByProduct(c.UserContext(), GetCompanyID(c), productID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Replenishment godoc
// @Summary      Lista de reposición sugerida
// @Description  Productos bajo el mínimo con la cantidad sugerida, priorizados por ventas de los últimos 30 días.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id_almacen  query  string  false  "Filtrar por almacén"
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/reposicion [get]
func (h *StockHandler) Replenishment(c *fiber.Ctx) error {
	warehouseID := c.Query("id_almacen")
	if warehouseID != "" && uuid.Validate(warehouseID) != nil {
		return respondError(c, domain.Errorf(domain.ErrInvalidInput, "id_almacen debe ser un UUID válido"))
	}
	out, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), GetCompanyID(c), warehouseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
