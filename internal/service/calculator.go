package service

import (
	"invoicedesk/internal/model"

	"github.com/shopspring/decimal"
)

// SurchargeRate is the fixed retailer charge applied on top of the service total.
var SurchargeRate = decimal.RequireFromString("0.10")

var two = decimal.NewFromInt(2)

// CalculateTotals sums the line items and derives surcharge and grand total.
// Nothing is rounded here; callers format with StringFixed(2) when displaying.
func CalculateTotals(items []model.ServiceLineItem) model.InvoiceTotals {
	serviceTotal := decimal.Zero
	for _, item := range items {
		serviceTotal = serviceTotal.Add(model.ParseAmount(item.Amount))
	}

	surcharge := serviceTotal.Mul(SurchargeRate)
	return model.InvoiceTotals{
		ServiceTotal: serviceTotal,
		Surcharge:    surcharge,
		GrandTotal:   serviceTotal.Add(surcharge),
	}
}

// DefaultRemaining is the remaining amount suggested for a half-paid invoice.
func DefaultRemaining(totals model.InvoiceTotals) decimal.Decimal {
	return totals.GrandTotal.Div(two)
}
