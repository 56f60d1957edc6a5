// Package analytics contiene los casos de uso del dashboard del POS.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

const (
	dashboardTopProducts = 5 // productos en el widget de más vendidos
	dashboardDays        = 7 // puntos de la gráfica diaria
	dayLayout            = "2006-01-02"
)

// DashboardUseCase genera el resumen de ventas del día, del mes y de la última semana.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetSummary construye el resumen para la empresa indicada.
//
// Cinco consultas en paralelo:
//  1. SalesBetween(hoy)
//  2. SalesBetween(mes)
//  3. DailySalesBetween(últimos 7 días)
//  4. TopProducts(mes, top 5)
//  5. CountBelowMinimum
func (uc *DashboardUseCase) GetSummary(ctx context.Context, companyID string) (*dto.DashboardSummaryResponse, error) {
	now := uc.now()

	// ── Rangos de fecha [desde, hasta) ────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := todayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -(dashboardDays - 1))

	type aggResult struct {
		agg repository.SalesAggregate
		err error
	}
	type dailyResult struct {
		days []repository.DailySales
		err  error
	}
	type topResult struct {
		top []repository.TopProduct
		err error
	}
	type countResult struct {
		n   int
		err error
	}

	todayCh := make(chan aggResult, 1)
	monthCh := make(chan aggResult, 1)
	dailyCh := make(chan dailyResult, 1)
	topCh := make(chan topResult, 1)
	lowCh := make(chan countResult, 1)

	go func() {
		agg, err := uc.analyticsRepo.SalesBetween(ctx, companyID, todayStart, tomorrow)
		todayCh <- aggResult{agg, err}
	}()
	go func() {
		agg, err := uc.analyticsRepo.SalesBetween(ctx, companyID, monthStart, tomorrow)
		monthCh <- aggResult{agg, err}
	}()
	go func() {
		days, err := uc.analyticsRepo.DailySalesBetween(ctx, companyID, weekStart, tomorrow)
		dailyCh <- dailyResult{days, err}
	}()
	go func() {
		top, err := uc.analyticsRepo.TopProducts(ctx, companyID, monthStart, tomorrow, dashboardTopProducts)
		topCh <- topResult{top, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountBelowMinimum(ctx, companyID)
		lowCh <- countResult{n, err}
	}()

	today, month, daily, top, low := <-todayCh, <-monthCh, <-dailyCh, <-topCh, <-lowCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", month.err)
	}
	if daily.err != nil {
		return nil, fmt.Errorf("dashboard: serie diaria: %w", daily.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo mínimo: %w", low.err)
	}

	topDTO := make([]dto.TopProductDTO, 0, len(top.top))
	for _, p := range top.top {
		topDTO = append(topDTO, dto.TopProductDTO{
			ProductID: p.ProductID,
			SKU:       p.SKU,
			Name:      p.Name,
			Quantity:  p.Quantity,
			Revenue:   p.Revenue.Round(2),
		})
	}

	return &dto.DashboardSummaryResponse{
		Today:         dto.SalesTotalDTO{Count: today.agg.Count, Total: today.agg.Total.Round(2)},
		Month:         dto.SalesTotalDTO{Count: month.agg.Count, Total: month.agg.Total.Round(2)},
		Last7Days:     fillDays(weekStart, daily.days),
		TopProducts:   topDTO,
		LowStockCount: low.n,
		DateLabel:     monthLabel(now),
	}, nil
}

// fillDays devuelve siempre dashboardDays puntos desde start; los días sin ventas van en cero.
func fillDays(start time.Time, days []repository.DailySales) []dto.DailyPointDTO {
	byDay := make(map[string]repository.DailySales, len(days))
	for _, d := range days {
		byDay[d.Day.Format(dayLayout)] = d
	}
	out := make([]dto.DailyPointDTO, 0, dashboardDays)
	for i := 0; i < dashboardDays; i++ {
		key := start.AddDate(0, 0, i).Format(dayLayout)
		p := dto.DailyPointDTO{Date: key, Total: decimal.Zero}
		if d, ok := byDay[key]; ok {
			p.Count = d.Count
			p.Total = d.Total.Round(2)
		}
		out = append(out, p)
	}
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
