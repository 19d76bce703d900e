package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentMode enum constants
const (
	PaymentModeUPI        = "UPI"
	PaymentModeCash       = "Cash"
	PaymentModeCard       = "Card"
	PaymentModeNetBanking = "NetBanking"
)

// PaymentStatus enum constants
const (
	PaymentPending  = "pending"
	PaymentHalfPaid = "half-paid"
	PaymentPaid     = "paid"
)

// PaymentModes lists the selectable modes in display order.
var PaymentModes = []string{PaymentModeUPI, PaymentModeCash, PaymentModeCard, PaymentModeNetBanking}

// PaymentStatuses lists the selectable statuses in display order.
var PaymentStatuses = []string{PaymentPending, PaymentHalfPaid, PaymentPaid}

// ServiceLineItem is one billable service row. Amount keeps the raw form input;
// use ParseAmount to read it as money.
type ServiceLineItem struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// InvoiceDraft is the in-memory form being filled in for one invoice.
type InvoiceDraft struct {
	CustomerName    string            `json:"customer_name"`
	CustomerMobile  string            `json:"customer_mobile"`
	CustomerEmail   string            `json:"customer_email"`
	Note            string            `json:"note"`
	PaymentMode     string            `json:"payment_mode"`
	PaymentStatus   string            `json:"payment_status"`
	LineItems       []ServiceLineItem `json:"line_items"`
	RemainingAmount string            `json:"remaining_amount"` // only meaningful when half-paid
}

// InvoiceTotals is derived from the line items on demand and never stored.
type InvoiceTotals struct {
	ServiceTotal decimal.Decimal `json:"service_total"`
	Surcharge    decimal.Decimal `json:"surcharge"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

// NewDraft returns the blank form: one empty line item, UPI, pending.
func NewDraft() InvoiceDraft {
	return InvoiceDraft{
		PaymentMode:   PaymentModeUPI,
		PaymentStatus: PaymentPending,
		LineItems:     []ServiceLineItem{{}},
	}
}

// Clone returns a copy that shares no slices with d.
func (d InvoiceDraft) Clone() InvoiceDraft {
	c := d
	c.LineItems = append([]ServiceLineItem(nil), d.LineItems...)
	return c
}

// ParseAmount reads a form amount. Empty, malformed and negative input count as zero.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// IsValidPaymentMode reports whether mode is one of PaymentModes.
func IsValidPaymentMode(mode string) bool {
	for _, m := range PaymentModes {
		if m == mode {
			return true
		}
	}
	return false
}

// IsValidPaymentStatus reports whether status is one of PaymentStatuses.
func IsValidPaymentStatus(status string) bool {
	for _, s := range PaymentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// PaymentStatusLabel is the human label printed on invoices and messages.
func PaymentStatusLabel(status string) string {
	switch status {
	case PaymentHalfPaid:
		return "Half Paid"
	case PaymentPaid:
		return "Paid"
	default:
		return "Pending"
	}
}
