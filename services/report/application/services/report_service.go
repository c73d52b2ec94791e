package services

import (
	"context"
	"fmt"
	"time"

	inventoryrepos "github.com/ghuser/gudang/services/inventory/domain/repositories"
	"github.com/ghuser/gudang/services/report/domain/export"
)

// ReportService builds the downloadable CSV reports from the inventory
// context's read interfaces.
type ReportService struct {
	products  inventoryrepos.InventoryStore
	movements inventoryrepos.MovementLog
	now       func() time.Time
}

// NewReportService wires a ReportService.
func NewReportService(products inventoryrepos.InventoryStore, movements inventoryrepos.MovementLog) *ReportService {
	return &ReportService{products: products, movements: movements, now: time.Now}
}

// BuildStockReport renders the stock report for every product, alphabetical
// by name, and returns the download filename with the CSV bytes.
func (s *ReportService) BuildStockReport(ctx context.Context) (string, []byte, error) {
	products, err := s.products.FindAllOrderedByName(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("load products for report: %w", err)
	}

	rows := make([]export.StockRow, len(products))
	for i, p := range products {
		rows[i] = export.StockRow{
			Name:      p.Name,
			Category:  p.Category,
			Stock:     p.Stock,
			EnteredAt: p.EnteredAt,
		}
	}

	body, err := export.StockReport(rows)
	if err != nil {
		return "", nil, err
	}
	return export.StockReportFilename(s.now()), body, nil
}

// BuildHistoryReport renders the full movement history, newest first, and
// returns the download filename with the CSV bytes. Deleted products appear
// under their cached names.
func (s *ReportService) BuildHistoryReport(ctx context.Context) (string, []byte, error) {
	entries, err := s.movements.FindAllForExport(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("load movements for report: %w", err)
	}

	rows := make([]export.HistoryRow, len(entries))
	for i, e := range entries {
		rows[i] = export.HistoryRow{
			OccurredAt: e.Movement.OccurredAt,
			Name:       e.Product.Name,
			Category:   e.Product.Category,
			Type:       string(e.Movement.Type),
			Quantity:   e.Movement.Quantity,
			Status:     e.Movement.Status,
		}
	}

	body, err := export.HistoryReport(rows)
	if err != nil {
		return "", nil, err
	}
	return export.HistoryReportFilename(s.now()), body, nil
}
