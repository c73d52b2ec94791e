package export

import (
	"encoding/csv"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestStockReport(t *testing.T) {
	rows := []StockRow{
		{Name: "Baut M8", Category: "Hardware", Stock: 120, EnteredAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
		{Name: "Kardus Besar", Category: "Packaging", Stock: 40, EnteredAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
	}

	body, err := StockReport(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	t.Run("header row", func(t *testing.T) {
		want := []string{"No", "Nama Barang", "Kategori", "Stok Saat Ini", "Tanggal Masuk"}
		if !reflect.DeepEqual(records[0], want) {
			t.Fatalf("header = %v, want %v", records[0], want)
		}
	})

	t.Run("rows are numbered from 1 with dd/mm/yyyy dates", func(t *testing.T) {
		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}
		want := []string{"1", "Baut M8", "Hardware", "120", "05/01/2026"}
		if !reflect.DeepEqual(records[1], want) {
			t.Fatalf("row 1 = %v, want %v", records[1], want)
		}
		if records[2][0] != "2" {
			t.Fatalf("expected row number 2, got %s", records[2][0])
		}
	})

	t.Run("empty inventory yields header only", func(t *testing.T) {
		body, err := StockReport(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		records, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
		if err != nil {
			t.Fatalf("parse csv: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected header only, got %d records", len(records))
		}
	})
}

func TestHistoryReport(t *testing.T) {
	rows := []HistoryRow{
		{
			OccurredAt: time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC),
			Name:       "Kardus Besar",
			Category:   "Packaging",
			Type:       "DELETE",
			Quantity:   15,
			Status:     "Barang Dihapus",
		},
	}

	body, err := HistoryReport(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	t.Run("header row", func(t *testing.T) {
		want := []string{"Tanggal", "Nama Barang", "Kategori", "Tipe", "Jumlah", "Status"}
		if !reflect.DeepEqual(records[0], want) {
			t.Fatalf("header = %v, want %v", records[0], want)
		}
	})

	t.Run("movement row with timestamp", func(t *testing.T) {
		want := []string{"28/08/2026 14:30", "Kardus Besar", "Packaging", "DELETE", "15", "Barang Dihapus"}
		if !reflect.DeepEqual(records[1], want) {
			t.Fatalf("row = %v, want %v", records[1], want)
		}
	})
}

func TestReportFilenames(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

	if got := StockReportFilename(now); got != "Laporan_Stok_Gudang_2026-08-28.csv" {
		t.Fatalf("stock filename = %q", got)
	}
	if got := HistoryReportFilename(now); got != "Laporan_Riwayat_2026-08-28.csv" {
		t.Fatalf("history filename = %q", got)
	}
}
