// Package analytics contiene el caso de uso del Dashboard: los KPIs de la
// despensa del usuario.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	pantrydomain "github.com/jhoicas/Despensa-api/internal/domain/pantry"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

const dashboardRecentItems = 5 // número de ítems en el widget de recientes

// DashboardUseCase genera el resumen de la despensa del usuario.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No accede
// directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO para el usuario indicado.
//
// Cuatro llamadas en paralelo:
//  1. CountProducts        → TotalProducts
//  2. CountPantryItems     → TotalItems
//  3. CountLowStockItems   → LowStockItems
//  4. LastUpdatedItems(5)  → RecentItems
func (uc *DashboardUseCase) GetSummary(ctx context.Context, ownerID string) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	type recentResult struct {
		views []repository.PantryItemView
		err   error
	}

	productsCh := make(chan countResult, 1)
	itemsCh := make(chan countResult, 1)
	lowCh := make(chan countResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx, ownerID)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountPantryItems(ctx, ownerID)
		itemsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountLowStockItems(ctx, ownerID)
		lowCh <- countResult{n, err}
	}()
	go func() {
		views, err := uc.analyticsRepo.LastUpdatedItems(ctx, ownerID, dashboardRecentItems)
		recentCh <- recentResult{views, err}
	}()

	products := <-productsCh
	items := <-itemsCh
	low := <-lowCh
	recent := <-recentCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: total de productos: %w", products.err)
	}
	if items.err != nil {
		return nil, fmt.Errorf("dashboard: total de ítems: %w", items.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: ítems en estoque baixo: %w", low.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: últimos ítems: %w", recent.err)
	}

	recentItems := make([]dto.PantryItemResponse, 0, len(recent.views))
	for _, v := range recent.views {
		item := dto.PantryItemResponse{
			ID:        v.ID,
			ProductID: v.ProductID,
			Quantity:  v.Quantity,
			UpdatedAt: v.UpdatedAt,
			LowStock:  pantrydomain.ClassifyItem(v.Quantity, v.MinimumStock),
		}
		if v.ProductName != nil {
			item.ProductName = *v.ProductName
		}
		if v.Unit != nil {
			item.Unit = *v.Unit
		}
		if v.MinimumStock != nil {
			item.MinimumStock = *v.MinimumStock
		}
		recentItems = append(recentItems, item)
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts: products.n,
		TotalItems:    items.n,
		LowStockItems: low.n,
		RecentItems:   recentItems,
	}, nil
}
