package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// StockUseCase alta, consulta y stock mínimo de los pares producto/almacén.
// La cantidad solo cambia vía movimientos (paquete inventory).
type StockUseCase struct {
	tx         ports.TxRunner
	repo       repository.StockRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(tx ports.TxRunner, repo repository.StockRepository, products repository.ProductRepository, warehouses repository.WarehouseRepository) *StockUseCase {
	return &StockUseCase{tx: tx, repo: repo, products: products, warehouses: warehouses}
}

// Create crea la fila de stock y registra la cantidad inicial como AJUSTE en el kardex.
func (uc *StockUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateStockRequest) (*dto.StockResponse, error) {
	now := time.Now()
	stock := &entity.Stock{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.tx.Run(ctx, func(tx ports.TxRepos) error {
		product, err := getProduct(ctx, tx.Products, companyID, in.ProductID)
		if err != nil {
			return err
		}
		wh, err := tx.Warehouses.GetByID(ctx, companyID, in.WarehouseID)
		if err != nil {
			return err
		}
		if wh == nil {
			return notFound("almacén")
		}
		existing, err := tx.Stock.GetForUpdate(ctx, companyID, in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Errorf(domain.ErrDuplicate, "ya existe stock del producto en el almacén")
		}
		if err := tx.Stock.Create(ctx, stock); err != nil {
			return duplicateAs(err, "ya existe stock del producto en el almacén")
		}
		if !in.Quantity.IsPositive() {
			return nil
		}
		return tx.Movements.Create(ctx, &entity.StockMovement{
			ID:            uuid.New().String(),
			CompanyID:     companyID,
			TransactionID: uuid.New().String(),
			ProductID:     in.ProductID,
			WarehouseID:   in.WarehouseID,
			Type:          entity.MovementTypeAdjust,
			Quantity:      in.Quantity,
			UnitCost:      product.Cost,
			TotalCost:     in.Quantity.Mul(product.Cost),
			Reference:     "stock inicial",
			CreatedBy:     userID,
			CreatedAt:     now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// GetByID obtiene una fila de stock.
func (uc *StockUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.StockResponse, error) {
	s, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toStockResponse(s), nil
}

// List lista el stock de la empresa.
func (uc *StockUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.StockResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toStockResponses(list), nil
}

// ListByProduct devuelve el stock del producto en cada almacén.
func (uc *StockUseCase) ListByProduct(ctx context.Context, companyID, productID string) ([]dto.StockResponse, error) {
	if _, err := getProduct(ctx, uc.products, companyID, productID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByProduct(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}
	return toStockResponses(list), nil
}

// ListByWarehouse devuelve el stock de un almacén.
func (uc *StockUseCase) ListByWarehouse(ctx context.Context, companyID, warehouseID string) ([]dto.StockResponse, error) {
	wh, err := uc.warehouses.GetByID(ctx, companyID, warehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, notFound("almacén")
	}
	list, err := uc.repo.ListByWarehouse(ctx, companyID, warehouseID)
	if err != nil {
		return nil, err
	}
	return toStockResponses(list), nil
}

// ListBelowMinimum filas con cantidad < stock_minimo.
func (uc *StockUseCase) ListBelowMinimum(ctx context.Context, companyID string) ([]dto.StockResponse, error) {
	list, err := uc.repo.ListBelowMinimum(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toStockResponses(list), nil
}

// Update solo cambia stock_minimo.
func (uc *StockUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	s, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.MinStock == nil {
		return toStockResponse(s), nil
	}
	if in.MinStock.IsNegative() {
		return nil, domain.Errorf(domain.ErrInvalidInput, "stock_minimo no puede ser negativo")
	}
	if err := uc.repo.UpdateMinStock(ctx, id, *in.MinStock); err != nil {
		return nil, err
	}
	s.MinStock = *in.MinStock
	s.UpdatedAt = time.Now()
	return toStockResponse(s), nil
}

// Delete elimina la fila solo si la cantidad es cero.
func (uc *StockUseCase) Delete(ctx context.Context, companyID, id string) (*dto.StockResponse, error) {
	s, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if !s.Quantity.IsZero() {
		return nil, domain.Errorf(domain.ErrConflict, "el stock tiene %s unidades; ajústelo a cero antes de eliminarlo", s.Quantity.String())
	}
	if err := uc.repo.SoftDelete(ctx, companyID, id); err != nil {
		return nil, err
	}
	s.Deleted = true
	return toStockResponse(s), nil
}

func (uc *StockUseCase) get(ctx context.Context, companyID, id string) (*entity.Stock, error) {
	s, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, notFound("stock")
	}
	return s, nil
}

func toStockResponses(list []*entity.Stock) []dto.StockResponse {
	out := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toStockResponse(s))
	}
	return out
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		ProductID:    s.ProductID,
		WarehouseID:  s.WarehouseID,
		Quantity:     s.Quantity,
		MinStock:     s.MinStock,
		BelowMinimum: s.BelowMinimum(),
		Deleted:      s.Deleted,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
