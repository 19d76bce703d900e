package pdfwriter

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"math"

	"invoicedesk/internal/model"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// A4 portrait in millimetres.
const (
	PageWidth  = 210.0
	PageHeight = 297.0
)

const (
	textTop       = 20.0
	textRow       = 8.0
	textPageBreak = 250.0
	maxDescLen    = 40
)

// Writer produces the invoice PDF, either from a rasterized page or from the
// document fields directly.
type Writer struct {
	Currency string

	compress bool
}

// New returns a writer printing amounts with the given currency prefix. gofpdf's core
// fonts are cp1252, so the prefix should be plain ASCII such as "Rs.".
func New(currency string) *Writer {
	if currency == "" {
		currency = "Rs."
	}
	return &Writer{Currency: currency, compress: true}
}

// PageCount is the number of A4 pages a page image of the given pixel size spans
// when placed at full page width.
func PageCount(widthPx, heightPx int) int {
	if widthPx <= 0 || heightPx <= 0 {
		return 1
	}
	heightMM := PageWidth * float64(heightPx) / float64(widthPx)
	n := int(math.Ceil(heightMM/PageHeight - 1e-9))
	if n < 1 {
		n = 1
	}
	return n
}

// FromImage embeds a JPEG page image at full width and tiles it across as many
// pages as its height needs. Page i shows the slice starting i page heights down.
func (w *Writer) FromImage(jpegData []byte) ([]byte, error) {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(jpegData))
	if err != nil {
		return nil, fmt.Errorf("failed to read page image: %w", err)
	}
	heightMM := PageWidth * float64(cfg.Height) / float64(cfg.Width)
	pages := PageCount(cfg.Width, cfg.Height)

	pdf := w.newPDF()
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader("page", opts, bytes.NewReader(jpegData))

	for i := 0; i < pages; i++ {
		pdf.AddPage()
		pdf.ImageOptions("page", 0, -float64(i)*PageHeight, PageWidth, heightMM, false, opts, 0, "")
	}

	return output(pdf)
}

// FromDocument draws a plain text rendition of doc. It is the fallback when the
// page image cannot be produced or embedded. Any row that would start below
// textPageBreak moves to a new page.
func (w *Writer) FromDocument(doc model.Document) ([]byte, error) {
	pdf := w.newPDF()
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	y := textTop
	text := func(x float64, s string) {
		if y > textPageBreak {
			pdf.AddPage()
			y = textTop
		}
		pdf.Text(x, y, tr(s))
	}

	pdf.SetFont("Arial", "B", 20)
	text(20, doc.Business.Name+" Invoice")
	y += 15

	pdf.SetFont("Arial", "", 10)
	text(20, doc.Business.Owner+" | "+doc.Business.Location)
	y += 5
	text(20, doc.Business.Phone+" | "+doc.Business.Email)
	y += 10

	pdf.SetFont("Arial", "B", 16)
	text(20, doc.Title)
	y += 15

	pdf.SetFont("Arial", "", 12)
	for _, line := range []string{
		"Invoice ID: " + doc.InvoiceID,
		"Date: " + doc.DateText,
		"Customer: " + doc.Customer.Name,
		"Mobile: " + doc.Customer.Phone,
		"Email: " + doc.Customer.EmailText(),
	} {
		text(20, line)
		y += textRow
	}
	y += 7

	text(20, "#")
	text(30, "Service Description")
	text(150, "Amount ("+w.Currency+")")
	y += textRow
	pdf.Line(20, y, 190, y)
	y += 10

	for _, line := range doc.Lines {
		text(20, fmt.Sprintf("%d", line.Index))
		text(30, truncate(line.Description))
		text(150, w.money(line.Amount))
		y += textRow
	}
	y += 10

	text(20, "Service Charges: "+w.money(doc.Totals.ServiceTotal))
	y += textRow
	text(20, "Retailer Charges (10%): "+w.money(doc.Totals.Surcharge))
	y += textRow
	pdf.SetFont("Arial", "B", 14)
	text(20, "Total Amount: "+w.money(doc.Totals.GrandTotal))
	y += 12

	pdf.SetFont("Arial", "", 12)
	text(20, "Payment Status: "+doc.Payment.Label)
	y += textRow
	text(20, "Payment Mode: "+doc.Payment.Mode)
	if doc.Payment.Remaining != nil {
		y += textRow
		text(20, "Remaining Amount: "+w.money(*doc.Payment.Remaining))
	}
	y += 15

	if doc.Note != "" {
		text(20, "Note: "+doc.Note)
		y += 10
	}

	y += 10
	pdf.SetFont("Arial", "", 10)
	text(20, doc.Footer)

	return output(pdf)
}

// --- Helpers ---

func (w *Writer) newPDF() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(w.compress)
	return pdf
}

func (w *Writer) money(d decimal.Decimal) string {
	return w.Currency + d.StringFixed(2)
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxDescLen {
		return string(r[:maxDescLen-3]) + "..."
	}
	return s
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to build pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
