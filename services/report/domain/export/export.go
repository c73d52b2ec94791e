// Package export builds the CSV documents warehouse staff download. Column
// headers are in Indonesian to match the UI; dates use the dd/mm/yyyy order
// the staff read.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
	fileDateLayout = "2006-01-02"
)

// StockRow is one product line in the stock report.
type StockRow struct {
	Name      string
	Category  string
	Stock     int
	EnteredAt time.Time
}

// HistoryRow is one movement line in the history report.
type HistoryRow struct {
	OccurredAt time.Time
	Name       string
	Category   string
	Type       string
	Quantity   int
	Status     string
}

// StockReport renders the current stock levels, one numbered row per product,
// in the order given (callers pass products alphabetically by name).
func StockReport(rows []StockRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"No", "Nama Barang", "Kategori", "Stok Saat Ini", "Tanggal Masuk"}}
	for i, r := range rows {
		records = append(records, []string{
			strconv.Itoa(i + 1),
			r.Name,
			r.Category,
			strconv.Itoa(r.Stock),
			r.EnteredAt.Format(dateLayout),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write stock report: %w", err)
	}
	return buf.Bytes(), nil
}

// HistoryReport renders the movement audit trail in the order given (callers
// pass movements newest first).
func HistoryReport(rows []HistoryRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"Tanggal", "Nama Barang", "Kategori", "Tipe", "Jumlah", "Status"}}
	for _, r := range rows {
		records = append(records, []string{
			r.OccurredAt.Format(dateTimeLayout),
			r.Name,
			r.Category,
			r.Type,
			strconv.Itoa(r.Quantity),
			r.Status,
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write history report: %w", err)
	}
	return buf.Bytes(), nil
}

// StockReportFilename returns the download name for a stock report generated
// on the given day.
func StockReportFilename(now time.Time) string {
	return "Laporan_Stok_Gudang_" + now.Format(fileDateLayout) + ".csv"
}

// HistoryReportFilename returns the download name for a history report
// generated on the given day.
func HistoryReportFilename(now time.Time) string {
	return "Laporan_Riwayat_" + now.Format(fileDateLayout) + ".csv"
}
