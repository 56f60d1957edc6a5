package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/application/inventory"
	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
	domainsales "github.com/NotSleepp/possbien/internal/domain/sales"
)

// SaleUseCase registra ventas del POS y descuenta el inventario en una sola transacción.
type SaleUseCase struct {
	txRunner    ports.TxRunner
	inventoryUC InventoryUseCase
	saleRepo    repository.SaleRepository
	companyRepo repository.CompanyRepository
	pdf         ports.ReceiptPDFGenerator
	metrics     ports.SalesRecorder
}

// NewSaleUseCase construye el caso de uso. metrics puede ser nil.
func NewSaleUseCase(
	txRunner ports.TxRunner,
	inventoryUC InventoryUseCase,
	saleRepo repository.SaleRepository,
	companyRepo repository.CompanyRepository,
	pdf ports.ReceiptPDFGenerator,
	metrics ports.SalesRecorder,
) *SaleUseCase {
	if metrics == nil {
		metrics = ports.NopSalesRecorder{}
	}
	return &SaleUseCase{
		txRunner:    txRunner,
		inventoryUC: inventoryUC,
		saleRepo:    saleRepo,
		companyRepo: companyRepo,
		pdf:         pdf,
		metrics:     metrics,
	}
}

// Checkout registra la venta: exige sesión abierta en la caja, calcula totales, valida el pago,
// toma el consecutivo, descuenta stock por línea (una SALIDA por línea) y guarda venta y detalle.
func (uc *SaleUseCase) Checkout(ctx context.Context, companyID, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.Errorf(domain.ErrInvalidInput, "la venta debe tener al menos un ítem")
	}
	now := time.Now()
	saleID := uuid.New().String()
	var sale *entity.Sale

	err := uc.txRunner.Run(ctx, func(tx ports.TxRepos) error {
		// El bloqueo de la caja ordena esta venta frente a un cierre concurrente.
		reg, err := tx.Registers.GetForUpdate(ctx, companyID, in.CashRegisterID)
		if err != nil {
			return err
		}
		if reg == nil {
			return domain.Errorf(domain.ErrNotFound, "caja no encontrada")
		}
		session, err := tx.Sessions.GetOpenByRegister(ctx, companyID, reg.ID)
		if err != nil {
			return err
		}
		if session == nil {
			return domain.ErrCashRegisterClosed
		}
		wh, err := tx.Warehouses.GetByID(ctx, companyID, in.WarehouseID)
		if err != nil {
			return err
		}
		if wh == nil {
			return domain.Errorf(domain.ErrNotFound, "almacén no encontrado")
		}
		if wh.BranchID != reg.BranchID {
			return domain.Errorf(domain.ErrInvalidInput, "el almacén no pertenece a la sucursal de la caja")
		}

		products := make(map[string]*entity.Product, len(in.Items))
		lines := make([]domainsales.Line, 0, len(in.Items))
		for _, item := range in.Items {
			if !item.Quantity.IsPositive() {
				return domain.Errorf(domain.ErrInvalidInput, "cantidad debe ser mayor a 0")
			}
			product, ok := products[item.ProductID]
			if !ok {
				product, err = tx.Products.GetByID(ctx, companyID, item.ProductID)
				if err != nil {
					return err
				}
				if product == nil {
					return domain.Errorf(domain.ErrNotFound, "producto %s no encontrado", item.ProductID)
				}
				products[item.ProductID] = product
			}
			price := product.Price
			if item.UnitPrice != nil {
				if item.UnitPrice.IsNegative() {
					return domain.Errorf(domain.ErrInvalidInput, "precio_unitario no puede ser negativo")
				}
				price = *item.UnitPrice
			}
			lines = append(lines, domainsales.Line{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: price,
				TaxRate:   product.TaxRate,
			})
		}

		totals := domainsales.Compute(lines)
		received, change, ok := domainsales.Change(in.PaymentMethod, totals.Total, in.AmountReceived)
		if !ok {
			return domain.Errorf(domain.ErrInsufficientPayment,
				"monto recibido %s no cubre el total %s", in.AmountReceived.StringFixed(2), totals.Total.StringFixed(2))
		}

		number, err := tx.Sequences.Next(ctx, companyID, entity.SequenceSale)
		if err != nil {
			return err
		}
		ref := fmt.Sprintf("venta #%d", number)
		for i, line := range totals.Items {
			if err := uc.inventoryUC.RegisterOUTInTx(ctx, tx, inventory.LineMovement{
				CompanyID:     companyID,
				UserID:        userID,
				WarehouseID:   wh.ID,
				TransactionID: saleID,
				Reference:     ref,
				Product:       products[line.ProductID],
				Quantity:      line.Quantity,
			}); err != nil {
				return err
			}
			totals.Items[i].ID = uuid.New().String()
			totals.Items[i].SaleID = saleID
			totals.Items[i].ProductName = products[line.ProductID].Name
		}

		sale = &entity.Sale{
			ID:             saleID,
			CompanyID:      companyID,
			CashRegisterID: reg.ID,
			SessionID:      session.ID,
			WarehouseID:    wh.ID,
			UserID:         userID,
			Number:         number,
			Subtotal:       totals.Subtotal,
			Tax:            totals.Tax,
			Total:          totals.Total,
			PaymentMethod:  in.PaymentMethod,
			AmountReceived: received,
			Change:         change,
			Status:         entity.SaleStatusCompleted,
			Items:          totals.Items,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return tx.Sales.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.SaleCompleted(sale.PaymentMethod, sale.Total)
	return ToSaleResponse(sale), nil
}

// Void anula una venta completada y devuelve el stock con ENTRADAS al costo actual.
// Solo se permite mientras la sesión de caja de la venta siga abierta.
func (uc *SaleUseCase) Void(ctx context.Context, companyID, userID, saleID string) (*dto.SaleResponse, error) {
	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(tx ports.TxRepos) error {
		var err error
		sale, err = tx.Sales.GetForUpdate(ctx, companyID, saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.Errorf(domain.ErrNotFound, "venta no encontrada")
		}
		if sale.Status == entity.SaleStatusVoided {
			return domain.ErrSaleVoided
		}
		if _, err := tx.Registers.GetForUpdate(ctx, companyID, sale.CashRegisterID); err != nil {
			return err
		}
		session, err := tx.Sessions.GetByID(ctx, companyID, sale.SessionID)
		if err != nil {
			return err
		}
		if session == nil || !session.IsOpen() {
			return domain.Errorf(domain.ErrConflict, "solo se puede anular una venta mientras su sesión de caja está abierta")
		}
		ref := fmt.Sprintf("anulación venta #%d", sale.Number)
		for _, item := range sale.Items {
			product, err := tx.Products.GetByID(ctx, companyID, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.Errorf(domain.ErrNotFound, "producto %s no encontrado", item.ProductID)
			}
			if err := uc.inventoryUC.RegisterINInTx(ctx, tx, inventory.LineMovement{
				CompanyID:     companyID,
				UserID:        userID,
				WarehouseID:   sale.WarehouseID,
				TransactionID: sale.ID,
				Reference:     ref,
				Product:       product,
				Quantity:      item.Quantity,
			}); err != nil {
				return err
			}
		}
		sale.Status = entity.SaleStatusVoided
		sale.UpdatedAt = time.Now()
		return tx.Sales.MarkVoided(ctx, sale.ID)
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.SaleVoided()
	return ToSaleResponse(sale), nil
}

// GetByID obtiene una venta con sus líneas.
func (uc *SaleUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.SaleResponse, error) {
	sale, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(sale), nil
}

// List lista ventas de la empresa (sin líneas), de la más reciente a la más antigua.
func (uc *SaleUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *ToSaleResponse(s))
	}
	return out, nil
}

// Ticket genera el PDF del recibo de la venta.
func (uc *SaleUseCase) Ticket(ctx context.Context, companyID, id string) ([]byte, error) {
	sale, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "empresa no encontrada")
	}
	return uc.pdf.SaleTicket(ctx, company, sale)
}

func (uc *SaleUseCase) get(ctx context.Context, companyID, id string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "venta no encontrada")
	}
	return sale, nil
}

// ToSaleResponse convierte la venta a DTO.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:             s.ID,
		Number:         s.Number,
		CashRegisterID: s.CashRegisterID,
		SessionID:      s.SessionID,
		WarehouseID:    s.WarehouseID,
		UserID:         s.UserID,
		Subtotal:       s.Subtotal,
		Tax:            s.Tax,
		Total:          s.Total,
		PaymentMethod:  s.PaymentMethod,
		AmountReceived: s.AmountReceived,
		Change:         s.Change,
		Status:         s.Status,
		CreatedAt:      s.CreatedAt,
	}
	for _, it := range s.Items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TaxRate:     it.TaxRate,
			Subtotal:    it.Subtotal,
			Tax:         it.Tax,
			Total:       it.Total,
		})
	}
	return out
}
