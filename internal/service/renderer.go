package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"
	"time"

	"invoicedesk/internal/model"
	"invoicedesk/pkg/upiqr"
	webui "invoicedesk/web"

	"github.com/shopspring/decimal"
)

const (
	invoiceTitle   = "INVOICE"
	defaultService = "Service"
	invoiceFooter  = "Thank you for your business! We look forward to serving you again."
	dateLayout     = "02/01/2006"
	previewQRSize  = 160
)

// FormatMoney renders an amount for display, rounding to two places.
func FormatMoney(symbol string, d decimal.Decimal) string {
	return symbol + d.StringFixed(2)
}

// SurchargeLabel is the printed name of the retailer charge, e.g. "Retailer Charges (10%)".
func SurchargeLabel() string {
	return "Retailer Charges (" + surchargePercent() + ")"
}

func surchargePercent() string {
	return SurchargeRate.Mul(decimal.NewFromInt(100)).String() + "%"
}

// Renderer turns a validated draft into the invoice document and its text views.
type Renderer struct {
	Business    model.Business
	Currency    string
	CountryCode string
	Location    *time.Location
	preview     *template.Template
}

func NewRenderer(business model.Business, currency, countryCode string, loc *time.Location) (*Renderer, error) {
	if loc == nil {
		loc = time.Local
	}
	r := &Renderer{
		Business:    business,
		Currency:    currency,
		CountryCode: countryCode,
		Location:    loc,
	}

	tmpl, err := template.New("preview.html").Funcs(template.FuncMap{
		"money": func(d decimal.Decimal) string { return FormatMoney(r.Currency, d) },
		"surchargeLabel": SurchargeLabel,
		"qrDataURL":      qrDataURL,
	}).ParseFS(webui.Templates, "templates/preview.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse preview template: %w", err)
	}
	r.preview = tmpl
	return r, nil
}

// qrDataURL encodes the payment link as an inline PNG for the preview.
func qrDataURL(link string) (template.URL, error) {
	png, err := upiqr.PNG(link, previewQRSize)
	if err != nil {
		return "", fmt.Errorf("failed to encode payment QR: %w", err)
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)), nil
}

// Build assembles the document for one export. The same id must be passed to every
// view built from it.
func (r *Renderer) Build(d model.InvoiceDraft, invoiceID string, totals model.InvoiceTotals, issuedAt time.Time) model.Document {
	issuedAt = issuedAt.In(r.Location)

	lines := make([]model.DocumentLine, 0, len(d.LineItems))
	for i, item := range d.LineItems {
		desc := strings.TrimSpace(item.Description)
		if desc == "" {
			desc = defaultService
		}
		lines = append(lines, model.DocumentLine{
			Index:       i + 1,
			Description: desc,
			Amount:      model.ParseAmount(item.Amount),
		})
	}

	payment := model.DocumentPayment{
		Mode:   d.PaymentMode,
		Status: d.PaymentStatus,
		Label:  model.PaymentStatusLabel(d.PaymentStatus),
	}
	payable := totals.GrandTotal
	if d.PaymentStatus == model.PaymentHalfPaid {
		remaining := model.ParseAmount(d.RemainingAmount)
		payment.Remaining = &remaining
		payable = remaining
	}

	doc := model.Document{
		Business:  r.Business,
		Title:     invoiceTitle,
		InvoiceID: invoiceID,
		IssuedAt:  issuedAt,
		DateText:  issuedAt.Format(dateLayout),
		Customer: model.DocumentCustomer{
			Name:   strings.TrimSpace(d.CustomerName),
			Mobile: strings.TrimSpace(d.CustomerMobile),
			Phone:  "+" + r.CountryCode + " " + strings.TrimSpace(d.CustomerMobile),
			Email:  strings.TrimSpace(d.CustomerEmail),
		},
		Lines:   lines,
		Totals:  totals,
		Payment: payment,
		Note:    strings.TrimSpace(d.Note),
		Footer:  invoiceFooter,
	}

	if r.Business.UPIID != "" && d.PaymentStatus != model.PaymentPaid {
		doc.PaymentLink = upiqr.PaymentURI(upiqr.Payment{
			PayeeAddress: r.Business.UPIID,
			PayeeName:    r.Business.Name,
			Amount:       payable,
			Note:         "Invoice " + invoiceID,
		})
	}

	return doc
}

// PreviewHTML renders the printable invoice markup.
func (r *Renderer) PreviewHTML(doc model.Document) (string, error) {
	var buf bytes.Buffer
	if err := r.preview.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.String(), nil
}

// WhatsAppText is the full invoice summary sent as a chat message.
func (r *Renderer) WhatsAppText(doc model.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s, your invoice from %s is ready!\n\n", doc.Customer.Name, doc.Business.Name)
	b.WriteString("*Invoice Details:*\n")
	fmt.Fprintf(&b, "Invoice ID: %s\n", doc.InvoiceID)
	fmt.Fprintf(&b, "Date: %s\n", doc.DateText)
	r.writeTotals(&b, doc, "")
	b.WriteString("\n")
	if doc.Note != "" {
		fmt.Fprintf(&b, "Note: %s\n\n", doc.Note)
	}
	b.WriteString("Thank you for your business!")
	return b.String()
}

// ShareImageText accompanies the invoice image the user attaches by hand.
func (r *Renderer) ShareImageText(doc model.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s, your invoice from %s is ready!\n\n", doc.Customer.Name, doc.Business.Name)
	b.WriteString("*Invoice Summary:*\n")
	fmt.Fprintf(&b, "Invoice ID: %s\n", doc.InvoiceID)
	fmt.Fprintf(&b, "Total Amount: %s\n", FormatMoney(r.Currency, doc.Totals.GrandTotal))
	fmt.Fprintf(&b, "Payment Status: %s\n\n", doc.Payment.Label)
	b.WriteString("Please check the attached invoice image for details.")
	return b.String()
}

func (r *Renderer) EmailSubject(doc model.Document) string {
	return fmt.Sprintf("Invoice from %s - %s", doc.Business.Name, doc.InvoiceID)
}

// EmailText is the plain body used for mailto links and as the text part of API mails.
func (r *Renderer) EmailText(doc model.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", doc.Customer.Name)
	fmt.Fprintf(&b, "Your invoice from %s is ready.\n\n", doc.Business.Name)
	b.WriteString("Invoice Details:\n")
	fmt.Fprintf(&b, "- Invoice ID: %s\n", doc.InvoiceID)
	fmt.Fprintf(&b, "- Date: %s\n", doc.DateText)
	r.writeTotals(&b, doc, "- ")
	b.WriteString("\n")
	if doc.Note != "" {
		fmt.Fprintf(&b, "Note: %s\n\n", doc.Note)
	}
	b.WriteString("Thank you for visiting. We look forward to serving you again!\n\n")
	b.WriteString("Best regards,\n")
	fmt.Fprintf(&b, "%s\n%s\n%s", doc.Business.Name, doc.Business.Location, doc.Business.Phone)
	return b.String()
}

// EmailSummary is the one-paragraph message handed to transactional email templates.
func (r *Renderer) EmailSummary(doc model.Document) string {
	msg := fmt.Sprintf("Your invoice from %s is attached. Total Amount: %s (Includes %s retailer charges).",
		doc.Business.Name,
		FormatMoney(r.Currency, doc.Totals.GrandTotal),
		surchargePercent())
	if doc.Note != "" {
		msg += " Note: " + doc.Note
	}
	return msg
}

func (r *Renderer) writeTotals(b *strings.Builder, doc model.Document, bullet string) {
	fmt.Fprintf(b, "%sService Charges: %s\n", bullet, FormatMoney(r.Currency, doc.Totals.ServiceTotal))
	fmt.Fprintf(b, "%s%s: %s\n", bullet, SurchargeLabel(), FormatMoney(r.Currency, doc.Totals.Surcharge))
	fmt.Fprintf(b, "%sTotal Amount: %s\n", bullet, FormatMoney(r.Currency, doc.Totals.GrandTotal))
	fmt.Fprintf(b, "%sPayment Status: %s\n", bullet, doc.Payment.Label)
	if doc.Payment.Remaining != nil {
		fmt.Fprintf(b, "%sRemaining Amount: %s\n", bullet, FormatMoney(r.Currency, *doc.Payment.Remaining))
	}
	fmt.Fprintf(b, "%sPayment Mode: %s\n", bullet, doc.Payment.Mode)
}
