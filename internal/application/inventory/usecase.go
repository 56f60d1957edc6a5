// Package inventory es el motor de movimientos del kardex: entradas, salidas, ajustes y
// transferencias con bloqueo de fila y costo promedio ponderado.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/inventory"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario de forma transaccional
// (ENTRADA, SALIDA, AJUSTE, TRANSFERENCIA) con bloqueo de fila (SELECT FOR UPDATE).
type RegisterMovementUseCase struct {
	txRunner      ports.TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	movementRepo  repository.StockMovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner ports.TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	movementRepo repository.StockMovementRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		movementRepo:  movementRepo,
	}
}

// MovementInput entrada del motor.
// ENTRADA/SALIDA/AJUSTE usan WarehouseID; UnitCost es obligatorio en ENTRADA.
// TRANSFERENCIA usa FromWarehouseID y ToWarehouseID.
type MovementInput struct {
	CompanyID       string
	UserID          string
	ProductID       string
	WarehouseID     string
	FromWarehouseID string
	ToWarehouseID   string
	Type            string
	Quantity        decimal.Decimal
	UnitCost        *decimal.Decimal
	Reference       string
}

// LineMovement movimiento que otro caso de uso (ventas) aplica dentro de su propia transacción.
type LineMovement struct {
	CompanyID     string
	UserID        string
	WarehouseID   string
	TransactionID string
	Reference     string
	Product       *entity.Product
	Quantity      decimal.Decimal
}

// move datos resueltos de una pata del movimiento.
type move struct {
	companyID   string
	userID      string
	product     *entity.Product
	warehouseID string
	kind        string
	quantity    decimal.Decimal
	unitCost    decimal.Decimal
	reference   string
	txID        string
	now         time.Time
}

// RegisterMovementFromRequest adapta el body HTTP al motor.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, companyID, userID string, in dto.RegisterMovementRequest) ([]dto.MovementResponse, error) {
	return uc.RegisterMovement(ctx, MovementInput{
		CompanyID:       companyID,
		UserID:          userID,
		ProductID:       in.ProductID,
		WarehouseID:     in.WarehouseID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Type:            in.Type,
		Quantity:        in.Quantity,
		UnitCost:        in.UnitCost,
		Reference:       in.Reference,
	})
}

// RegisterMovement valida la entrada, verifica producto y almacenes de la empresa y aplica el
// movimiento en una transacción. Devuelve los movimientos creados (dos en una transferencia).
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) ([]dto.MovementResponse, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, input.CompanyID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "producto no encontrado")
	}
	warehouses := []string{input.WarehouseID}
	if input.Type == entity.MovementTypeTransfer {
		warehouses = []string{input.FromWarehouseID, input.ToWarehouseID}
	}
	for _, id := range warehouses {
		wh, err := uc.warehouseRepo.GetByID(ctx, input.CompanyID, id)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.Errorf(domain.ErrNotFound, "almacén %s no encontrado", id)
		}
	}

	m := move{
		companyID:   input.CompanyID,
		userID:      input.UserID,
		warehouseID: input.WarehouseID,
		kind:        input.Type,
		quantity:    input.Quantity,
		reference:   input.Reference,
		txID:        uuid.New().String(),
		now:         time.Now(),
	}
	if input.UnitCost != nil {
		m.unitCost = *input.UnitCost
	}

	var created []*entity.StockMovement
	err = uc.txRunner.Run(ctx, func(tx ports.TxRepos) error {
		// el costo se relee dentro de la tx: otra entrada pudo cambiarlo
		fresh, err := tx.Products.GetByID(ctx, input.CompanyID, input.ProductID)
		if err != nil {
			return err
		}
		if fresh == nil {
			return domain.Errorf(domain.ErrNotFound, "producto no encontrado")
		}
		m.product = fresh

		switch input.Type {
		case entity.MovementTypeIn:
			created, err = doIN(ctx, tx, m)
		case entity.MovementTypeOut:
			created, err = doOUT(ctx, tx, m)
		case entity.MovementTypeAdjust:
			created, err = doADJUSTMENT(ctx, tx, m)
		case entity.MovementTypeTransfer:
			created, err = doTRANSFER(ctx, tx, m, input.FromWarehouseID, input.ToWarehouseID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return ToMovementResponses(created), nil
}

// RegisterOUTInTx descuenta stock dentro de la transacción del caller (checkout).
func (uc *RegisterMovementUseCase) RegisterOUTInTx(ctx context.Context, tx ports.TxRepos, lm LineMovement) error {
	_, err := doOUT(ctx, tx, fromLine(lm, entity.MovementTypeOut, lm.Product.Cost))
	return err
}

// RegisterINInTx devuelve stock al costo actual dentro de la transacción del caller (anulación).
func (uc *RegisterMovementUseCase) RegisterINInTx(ctx context.Context, tx ports.TxRepos, lm LineMovement) error {
	_, err := doIN(ctx, tx, fromLine(lm, entity.MovementTypeIn, lm.Product.Cost))
	return err
}

// ListByProduct devuelve el kardex de un producto, del más reciente al más antiguo.
func (uc *RegisterMovementUseCase) ListByProduct(ctx context.Context, companyID, productID string, limit, offset int) ([]dto.MovementResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "producto no encontrado")
	}
	list, err := uc.movementRepo.ListByProduct(ctx, companyID, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return ToMovementResponses(list), nil
}

func validateInput(in MovementInput) error {
	switch in.Type {
	case entity.MovementTypeIn, entity.MovementTypeOut, entity.MovementTypeAdjust:
		if in.WarehouseID == "" {
			return domain.Errorf(domain.ErrInvalidInput, "id_almacen es obligatorio")
		}
		if in.Quantity.IsZero() {
			return domain.Errorf(domain.ErrInvalidInput, "cantidad no puede ser cero")
		}
		if in.Type != entity.MovementTypeAdjust && in.Quantity.IsNegative() {
			return domain.Errorf(domain.ErrInvalidInput, "cantidad debe ser positiva")
		}
		if in.Type == entity.MovementTypeIn && (in.UnitCost == nil || in.UnitCost.IsNegative()) {
			return domain.Errorf(domain.ErrInvalidInput, "costo_unitario es obligatorio y no puede ser negativo en una ENTRADA")
		}
		if in.UnitCost != nil && in.UnitCost.IsNegative() {
			return domain.Errorf(domain.ErrInvalidInput, "costo_unitario no puede ser negativo")
		}
	case entity.MovementTypeTransfer:
		if in.FromWarehouseID == "" || in.ToWarehouseID == "" {
			return domain.Errorf(domain.ErrInvalidInput, "id_almacen_origen e id_almacen_destino son obligatorios")
		}
		if in.FromWarehouseID == in.ToWarehouseID {
			return domain.Errorf(domain.ErrInvalidInput, "los almacenes de origen y destino deben ser distintos")
		}
		if !in.Quantity.IsPositive() {
			return domain.Errorf(domain.ErrInvalidInput, "cantidad debe ser positiva")
		}
	default:
		return domain.Errorf(domain.ErrInvalidInput, "tipo de movimiento inválido: %q", in.Type)
	}
	return nil
}

func fromLine(lm LineMovement, kind string, unitCost decimal.Decimal) move {
	return move{
		companyID:   lm.CompanyID,
		userID:      lm.UserID,
		product:     lm.Product,
		warehouseID: lm.WarehouseID,
		kind:        kind,
		quantity:    lm.Quantity,
		unitCost:    unitCost,
		reference:   lm.Reference,
		txID:        lm.TransactionID,
		now:         time.Now(),
	}
}

// lockStock bloquea la fila producto/almacén. Si no existe y create es true devuelve una fila
// nueva en cero (isNew); si no, falla con stock insuficiente.
func lockStock(ctx context.Context, tx ports.TxRepos, m move, warehouseID string, create bool) (*entity.Stock, bool, error) {
	stock, err := tx.Stock.GetForUpdate(ctx, m.companyID, m.product.ID, warehouseID)
	if err != nil {
		return nil, false, err
	}
	if stock != nil {
		return stock, false, nil
	}
	if !create {
		return nil, false, domain.Errorf(domain.ErrInsufficientStock, "no hay stock de %s en el almacén", m.product.SKU)
	}
	return &entity.Stock{
		ID:          uuid.New().String(),
		CompanyID:   m.companyID,
		ProductID:   m.product.ID,
		WarehouseID: warehouseID,
		Quantity:    decimal.Zero,
		MinStock:    decimal.Zero,
		CreatedAt:   m.now,
		UpdatedAt:   m.now,
	}, true, nil
}

func saveStock(ctx context.Context, tx ports.TxRepos, stock *entity.Stock, isNew bool) error {
	if isNew {
		return tx.Stock.Create(ctx, stock)
	}
	return tx.Stock.UpdateQuantity(ctx, stock.ID, stock.Quantity)
}

// doIN: bloquea fila, recalcula el costo promedio, suma stock y guarda el movimiento.
func doIN(ctx context.Context, tx ports.TxRepos, m move) ([]*entity.StockMovement, error) {
	stock, isNew, err := lockStock(ctx, tx, m, m.warehouseID, true)
	if err != nil {
		return nil, err
	}
	newCost := inventory.CostCalculator(stock.Quantity, m.product.Cost, m.quantity, m.unitCost)
	if !newCost.Equal(m.product.Cost) {
		if err := tx.Products.UpdateCost(ctx, m.product.ID, newCost); err != nil {
			return nil, err
		}
		m.product.Cost = newCost
	}
	stock.Quantity = stock.Quantity.Add(m.quantity)
	if err := saveStock(ctx, tx, stock, isNew); err != nil {
		return nil, err
	}
	mov := newMovement(m, m.warehouseID, m.quantity)
	return []*entity.StockMovement{mov}, tx.Movements.Create(ctx, mov)
}

// doOUT: bloquea fila, verifica stock >= cantidad, resta y guarda el movimiento al costo actual.
func doOUT(ctx context.Context, tx ports.TxRepos, m move) ([]*entity.StockMovement, error) {
	stock, _, err := lockStock(ctx, tx, m, m.warehouseID, false)
	if err != nil {
		return nil, err
	}
	if stock.Quantity.LessThan(m.quantity) {
		return nil, domain.Errorf(domain.ErrInsufficientStock,
			"stock insuficiente de %s: disponible %s, solicitado %s", m.product.SKU, stock.Quantity.String(), m.quantity.String())
	}
	stock.Quantity = stock.Quantity.Sub(m.quantity)
	if err := saveStock(ctx, tx, stock, false); err != nil {
		return nil, err
	}
	m.unitCost = m.product.Cost
	mov := newMovement(m, m.warehouseID, m.quantity.Neg())
	return []*entity.StockMovement{mov}, tx.Movements.Create(ctx, mov)
}

// doADJUSTMENT: positivo suma (con costo opcional), negativo resta sin dejar stock negativo.
func doADJUSTMENT(ctx context.Context, tx ports.TxRepos, m move) ([]*entity.StockMovement, error) {
	if m.quantity.IsPositive() {
		stock, isNew, err := lockStock(ctx, tx, m, m.warehouseID, true)
		if err != nil {
			return nil, err
		}
		if !m.unitCost.IsZero() {
			newCost := inventory.CostCalculator(stock.Quantity, m.product.Cost, m.quantity, m.unitCost)
			if err := tx.Products.UpdateCost(ctx, m.product.ID, newCost); err != nil {
				return nil, err
			}
			m.product.Cost = newCost
		} else {
			m.unitCost = m.product.Cost
		}
		stock.Quantity = stock.Quantity.Add(m.quantity)
		if err := saveStock(ctx, tx, stock, isNew); err != nil {
			return nil, err
		}
		mov := newMovement(m, m.warehouseID, m.quantity)
		return []*entity.StockMovement{mov}, tx.Movements.Create(ctx, mov)
	}
	out := m
	out.quantity = m.quantity.Neg()
	return doOUT(ctx, tx, out)
}

// doTRANSFER: resta en origen y suma en destino en la misma transacción; dos movimientos
// con el mismo id_transaccion. Las filas se bloquean en orden de id para evitar deadlocks.
func doTRANSFER(ctx context.Context, tx ports.TxRepos, m move, fromID, toID string) ([]*entity.StockMovement, error) {
	first, second := fromID, toID
	if second < first {
		first, second = second, first
	}
	locked := map[string]*entity.Stock{}
	isNew := map[string]bool{}
	for _, id := range []string{first, second} {
		s, created, err := lockStock(ctx, tx, m, id, id == toID)
		if err != nil {
			return nil, err
		}
		locked[id], isNew[id] = s, created
	}
	origin, dest := locked[fromID], locked[toID]
	if origin.Quantity.LessThan(m.quantity) {
		return nil, domain.Errorf(domain.ErrInsufficientStock,
			"stock insuficiente de %s en origen: disponible %s", m.product.SKU, origin.Quantity.String())
	}
	origin.Quantity = origin.Quantity.Sub(m.quantity)
	dest.Quantity = dest.Quantity.Add(m.quantity)
	if err := saveStock(ctx, tx, origin, false); err != nil {
		return nil, err
	}
	if err := saveStock(ctx, tx, dest, isNew[toID]); err != nil {
		return nil, err
	}
	m.unitCost = m.product.Cost
	outMov := newMovement(m, fromID, m.quantity.Neg())
	if err := tx.Movements.Create(ctx, outMov); err != nil {
		return nil, err
	}
	inMov := newMovement(m, toID, m.quantity)
	if err := tx.Movements.Create(ctx, inMov); err != nil {
		return nil, err
	}
	return []*entity.StockMovement{outMov, inMov}, nil
}

func newMovement(m move, warehouseID string, qty decimal.Decimal) *entity.StockMovement {
	return &entity.StockMovement{
		ID:            uuid.New().String(),
		CompanyID:     m.companyID,
		TransactionID: m.txID,
		ProductID:     m.product.ID,
		WarehouseID:   warehouseID,
		Type:          m.kind,
		Quantity:      qty,
		UnitCost:      m.unitCost,
		TotalCost:     qty.Mul(m.unitCost),
		Reference:     m.reference,
		CreatedBy:     m.userID,
		CreatedAt:     m.now,
	}
}

// ToMovementResponses convierte movimientos a DTO.
func ToMovementResponses(list []*entity.StockMovement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			ProductID:     m.ProductID,
			WarehouseID:   m.WarehouseID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			UnitCost:      m.UnitCost,
			TotalCost:     m.TotalCost,
			Reference:     m.Reference,
			CreatedBy:     m.CreatedBy,
			CreatedAt:     m.CreatedAt,
		})
	}
	return out
}
