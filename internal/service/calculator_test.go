package service_test

import (
	"testing"

	"invoicedesk/internal/model"
	"invoicedesk/internal/service"

	"github.com/shopspring/decimal"
)

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name                          string
		items                         []model.ServiceLineItem
		wantService, wantSurch, wantG string
	}{
		{
			name:        "two services",
			items:       []model.ServiceLineItem{{Description: "PAN card", Amount: "200"}, {Description: "Aadhaar", Amount: "300"}},
			wantService: "500.00", wantSurch: "50.00", wantG: "550.00",
		},
		{
			name:        "invalid and negative count as zero",
			items:       []model.ServiceLineItem{{Amount: "abc"}, {Amount: "-50"}, {Amount: ""}, {Amount: "100"}},
			wantService: "100.00", wantSurch: "10.00", wantG: "110.00",
		},
		{
			name:        "fractional amounts",
			items:       []model.ServiceLineItem{{Amount: "0.05"}},
			wantService: "0.05", wantSurch: "0.01", wantG: "0.06",
		},
		{
			name:        "empty form",
			items:       []model.ServiceLineItem{{}},
			wantService: "0.00", wantSurch: "0.00", wantG: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.CalculateTotals(tt.items)
			if s := got.ServiceTotal.StringFixed(2); s != tt.wantService {
				t.Errorf("ServiceTotal = %s, want %s", s, tt.wantService)
			}
			if s := got.Surcharge.StringFixed(2); s != tt.wantSurch {
				t.Errorf("Surcharge = %s, want %s", s, tt.wantSurch)
			}
			if s := got.GrandTotal.StringFixed(2); s != tt.wantG {
				t.Errorf("GrandTotal = %s, want %s", s, tt.wantG)
			}
		})
	}
}

func TestCalculateTotals_GrandTotalIsSum(t *testing.T) {
	got := service.CalculateTotals([]model.ServiceLineItem{{Amount: "123.45"}, {Amount: "67.891"}})
	if !got.GrandTotal.Equal(got.ServiceTotal.Add(got.Surcharge)) {
		t.Fatalf("grand total %s != %s + %s", got.GrandTotal, got.ServiceTotal, got.Surcharge)
	}
	if !got.Surcharge.Equal(got.ServiceTotal.Mul(decimal.RequireFromString("0.1"))) {
		t.Fatalf("surcharge %s is not 10%% of %s", got.Surcharge, got.ServiceTotal)
	}
}

func TestDefaultRemaining(t *testing.T) {
	totals := service.CalculateTotals([]model.ServiceLineItem{{Amount: "500"}})
	if got := service.DefaultRemaining(totals).StringFixed(2); got != "275.00" {
		t.Fatalf("DefaultRemaining() = %s, want 275.00", got)
	}
}
