package storage

import (
	"testing"
	"time"
)

func TestObjectName(t *testing.T) {
	now := time.UnixMilli(1724839200000)

	tests := []struct {
		name     string
		original string
		want     string
	}{
		{"simple filename", "foto.jpg", "1724839200000_foto.jpg"},
		{"spaces become dashes", "foto kardus besar.jpg", "1724839200000_foto-kardus-besar.jpg"},
		{"surrounding whitespace trimmed", "  foto.jpg  ", "1724839200000_foto.jpg"},
		{"empty name falls back", "", "1724839200000_upload"},
		{"whitespace-only falls back", "   ", "1724839200000_upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ObjectName(tt.original, now); got != tt.want {
				t.Fatalf("ObjectName(%q) = %q, want %q", tt.original, got, tt.want)
			}
		})
	}
}

func TestObjectName_TimePrefixOrdersUploads(t *testing.T) {
	earlier := ObjectName("a.jpg", time.UnixMilli(1000))
	later := ObjectName("a.jpg", time.UnixMilli(2000))
	if earlier >= later {
		t.Fatalf("expected %q < %q", earlier, later)
	}
}
