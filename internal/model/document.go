package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Business identifies the shop printed in the invoice header.
type Business struct {
	Name     string `json:"name"`
	Owner    string `json:"owner"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	UPIID    string `json:"upi_id,omitempty"`
}

// DocumentCustomer is the customer block as it is displayed.
type DocumentCustomer struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"` // digits only, no country code
	Phone  string `json:"phone"`  // "+<cc> <mobile>"
	Email  string `json:"email"`  // empty when not provided
}

// EmailText returns the email or the placeholder shown when none was given.
func (c DocumentCustomer) EmailText() string {
	if c.Email == "" {
		return "Not provided"
	}
	return c.Email
}

// DocumentLine is one row of the itemized table.
type DocumentLine struct {
	Index       int             `json:"index"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// DocumentPayment is the payment-status block.
type DocumentPayment struct {
	Mode      string           `json:"mode"`
	Status    string           `json:"status"`
	Label     string           `json:"label"`
	Remaining *decimal.Decimal `json:"remaining,omitempty"`
}

// Document is the render-ready invoice. Every export view of one operation is built
// from the same Document, so they all carry the same InvoiceID.
type Document struct {
	Business    Business         `json:"business"`
	Title       string           `json:"title"`
	InvoiceID   string           `json:"invoice_id"`
	IssuedAt    time.Time        `json:"issued_at"`
	DateText    string           `json:"date"`
	Customer    DocumentCustomer `json:"customer"`
	Lines       []DocumentLine   `json:"lines"`
	Totals      InvoiceTotals    `json:"totals"`
	Payment     DocumentPayment  `json:"payment"`
	Note        string           `json:"note,omitempty"`
	Footer      string           `json:"footer"`
	PaymentLink string           `json:"payment_link,omitempty"` // UPI intent rendered as a QR code
}
