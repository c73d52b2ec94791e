package services

import (
	"context"
	"fmt"

	"github.com/ghuser/gudang/services/inventory/domain/models"
	inventoryrepos "github.com/ghuser/gudang/services/inventory/domain/repositories"
)

// recentMovements is how many history rows the dashboard shows.
const recentMovements = 5

// DashboardSummary is the landing-page overview.
type DashboardSummary struct {
	TotalProducts  int
	TotalStock     int
	TotalMovements int
	Recent         []*models.HistoryEntry
}

// DashboardService aggregates the counters and recent activity shown on the
// dashboard.
type DashboardService struct {
	products  inventoryrepos.InventoryStore
	movements inventoryrepos.MovementLog
}

// NewDashboardService wires a DashboardService.
func NewDashboardService(products inventoryrepos.InventoryStore, movements inventoryrepos.MovementLog) *DashboardService {
	return &DashboardService{products: products, movements: movements}
}

// Summary computes the dashboard counters and the latest movements.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	_, totalProducts, err := s.products.Find(ctx, inventoryrepos.QueryOpts{Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	totalStock, err := s.products.TotalStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum stock: %w", err)
	}

	totalMovements, err := s.movements.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count movements: %w", err)
	}

	recent, _, err := s.movements.Find(ctx, inventoryrepos.QueryOpts{Limit: recentMovements})
	if err != nil {
		return nil, fmt.Errorf("load recent movements: %w", err)
	}

	return &DashboardSummary{
		TotalProducts:  totalProducts,
		TotalStock:     totalStock,
		TotalMovements: totalMovements,
		Recent:         recent,
	}, nil
}
