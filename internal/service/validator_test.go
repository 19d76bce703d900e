package service_test

import (
	"errors"
	"testing"

	"invoicedesk/internal/model"
	"invoicedesk/internal/service"
)

func validDraft() model.InvoiceDraft {
	return model.InvoiceDraft{
		CustomerName:   "Asha Patil",
		CustomerMobile: "9876543210",
		CustomerEmail:  "asha@example.com",
		PaymentMode:    model.PaymentModeUPI,
		PaymentStatus:  model.PaymentPending,
		LineItems: []model.ServiceLineItem{
			{Description: "PAN card", Amount: "200"},
			{Description: "Aadhaar update", Amount: "300"},
		},
	}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(d *model.InvoiceDraft)
		wantField string
		wantMsg   string
	}{
		{name: "valid", mutate: func(d *model.InvoiceDraft) {}},
		{
			name:      "blank name",
			mutate:    func(d *model.InvoiceDraft) { d.CustomerName = "   " },
			wantField: service.FieldCustomerName,
			wantMsg:   "Please enter customer name.",
		},
		{
			name:      "missing mobile",
			mutate:    func(d *model.InvoiceDraft) { d.CustomerMobile = "" },
			wantField: service.FieldCustomerMobile,
			wantMsg:   "Please enter mobile number.",
		},
		{
			name:      "short mobile",
			mutate:    func(d *model.InvoiceDraft) { d.CustomerMobile = "98765" },
			wantField: service.FieldCustomerMobile,
			wantMsg:   "Please enter valid 10-digit mobile number.",
		},
		{
			name:      "mobile with letters",
			mutate:    func(d *model.InvoiceDraft) { d.CustomerMobile = "98765abcde" },
			wantField: service.FieldCustomerMobile,
			wantMsg:   "Please enter valid 10-digit mobile number.",
		},
		{
			name:      "bad email",
			mutate:    func(d *model.InvoiceDraft) { d.CustomerEmail = "asha@example" },
			wantField: service.FieldCustomerEmail,
			wantMsg:   "Please enter valid email address.",
		},
		{
			name:   "email optional",
			mutate: func(d *model.InvoiceDraft) { d.CustomerEmail = "" },
		},
		{
			name: "no billable item",
			mutate: func(d *model.InvoiceDraft) {
				d.LineItems = []model.ServiceLineItem{{Description: "PAN card", Amount: "0"}, {Description: "", Amount: "100"}}
			},
			wantField: service.FieldLineItems,
			wantMsg:   "Please add at least one service with description and amount > 0.",
		},
		{
			name: "half paid without remaining",
			mutate: func(d *model.InvoiceDraft) {
				d.PaymentStatus = model.PaymentHalfPaid
				d.RemainingAmount = ""
			},
			wantField: service.FieldRemainingAmount,
			wantMsg:   "Please enter valid remaining amount for half-paid status.",
		},
		{
			name: "half paid with zero remaining",
			mutate: func(d *model.InvoiceDraft) {
				d.PaymentStatus = model.PaymentHalfPaid
				d.RemainingAmount = "0"
			},
			wantField: service.FieldRemainingAmount,
			wantMsg:   "Please enter valid remaining amount for half-paid status.",
		},
		{
			name: "half paid with remaining",
			mutate: func(d *model.InvoiceDraft) {
				d.PaymentStatus = model.PaymentHalfPaid
				d.RemainingAmount = "275"
			},
		},
		{
			name: "first failure wins",
			mutate: func(d *model.InvoiceDraft) {
				d.CustomerName = ""
				d.CustomerMobile = "123"
				d.LineItems = []model.ServiceLineItem{{}}
			},
			wantField: service.FieldCustomerName,
			wantMsg:   "Please enter customer name.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			before := d.Clone()

			err := service.ValidateDraft(d)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid draft, got %v", err)
				}
				return
			}
			var verr *service.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField || verr.Reason != tt.wantMsg {
				t.Errorf("got (%s, %q), want (%s, %q)", verr.Field, verr.Reason, tt.wantField, tt.wantMsg)
			}
			if d.CustomerName != before.CustomerName || len(d.LineItems) != len(before.LineItems) {
				t.Errorf("draft was modified")
			}
		})
	}
}
