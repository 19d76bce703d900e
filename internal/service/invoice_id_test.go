package service_test

import (
	"testing"
	"time"

	"invoicedesk/internal/service"
)

func TestIDGenerator_Format(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	at := time.Date(2024, time.March, 15, 14, 30, 5, 0, ist)

	tests := []struct {
		name   string
		prefix string
		style  string
		want   string
	}{
		{"dated default", "", service.IDStyleDated, "INV-240315-143005"},
		{"unknown style falls back to dated", "INV", "whatever", "INV-240315-143005"},
		{"month token", "PRA", service.IDStyleMonthToken, "PRA-24MR143005"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := service.NewIDGenerator(tt.prefix, tt.style, ist)
			if got := g.Format(at); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIDGenerator_NextUsesClockInLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	g := service.NewIDGenerator("INV", service.IDStyleDated, ist)
	g.Clock = func() time.Time {
		// 23:00 UTC on the 14th is 04:30 IST on the 15th.
		return time.Date(2024, time.March, 14, 23, 0, 0, 0, time.UTC)
	}

	if got := g.Next(); got != "INV-240315-043000" {
		t.Fatalf("Next() = %q", got)
	}
	if got := g.Next(); got != g.Next() {
		t.Fatalf("ids within the same second should match")
	}
}
