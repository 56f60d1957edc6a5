package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// salesWindowDays días de historial de ventas usados para priorizar.
const salesWindowDays = 30

var idealFactor = decimal.NewFromFloat(1.5)

// ReplenishmentUseCase genera la lista de reposición de las filas bajo el stock mínimo.
type ReplenishmentUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(analyticsRepo repository.AnalyticsRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GenerateReplenishmentList devuelve las filas con cantidad < stock_minimo, la cantidad sugerida
// para llegar a 1.5 veces el mínimo y una prioridad: primero lo más vendido en los últimos 30 días,
// luego el mayor déficit. warehouseID vacío considera todos los almacenes de la empresa.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, companyID, warehouseID string) ([]dto.ReplenishmentSuggestionDTO, error) {
	items, err := uc.analyticsRepo.ReplenishmentCandidates(ctx, companyID, warehouseID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}, nil
	}

	end := uc.now()
	sold, err := uc.analyticsRepo.UnitsSoldByProduct(ctx, companyID, end.AddDate(0, 0, -salesWindowDays), end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReplenishmentSuggestionDTO, 0, len(items))
	for _, it := range items {
		ideal := it.MinStock.Mul(idealFactor).Round(2)
		suggested := ideal.Sub(it.Quantity)
		if suggested.IsNegative() {
			suggested = decimal.Zero
		}
		units, ok := sold[it.ProductID]
		if !ok {
			units = decimal.Zero
		}
		out = append(out, dto.ReplenishmentSuggestionDTO{
			ProductID:     it.ProductID,
			WarehouseID:   it.WarehouseID,
			SKU:           it.SKU,
			ProductName:   it.ProductName,
			CurrentStock:  it.Quantity,
			MinStock:      it.MinStock,
			IdealStock:    ideal,
			SuggestedQty:  suggested,
			UnitCost:      it.Cost,
			EstimatedCost: suggested.Mul(it.Cost).Round(2),
			UnitsSold:     units,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.UnitsSold.Equal(b.UnitsSold) {
			return a.UnitsSold.GreaterThan(b.UnitsSold)
		}
		return a.MinStock.Sub(a.CurrentStock).GreaterThan(b.MinStock.Sub(b.CurrentStock))
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}
