package raster

import (
	"bytes"
	"context"
	"image/jpeg"
	"testing"
	"time"

	"invoicedesk/internal/model"

	"github.com/shopspring/decimal"
)

func sampleDocument(lines int) model.Document {
	doc := model.Document{
		Business:  model.Business{Name: "Pratech (CSC)", Owner: "Pratik A. Bhang", Location: "Shrirampur", Phone: "9874561230", Email: "csc@example.com"},
		Title:     "INVOICE",
		InvoiceID: "INV-240315-143005",
		IssuedAt:  time.Date(2024, 3, 15, 14, 30, 5, 0, time.UTC),
		DateText:  "15/03/2024",
		Customer:  model.DocumentCustomer{Name: "Asha", Mobile: "9876543210", Phone: "+91 9876543210"},
		Payment:   model.DocumentPayment{Mode: "UPI", Status: model.PaymentPending, Label: "Pending"},
		Footer:    "Thank you for your business! We look forward to serving you again.",
	}
	for i := 0; i < lines; i++ {
		doc.Lines = append(doc.Lines, model.DocumentLine{Index: i + 1, Description: "Aadhaar update", Amount: decimal.NewFromInt(100)})
	}
	doc.Totals = model.InvoiceTotals{
		ServiceTotal: decimal.NewFromInt(int64(100 * lines)),
		Surcharge:    decimal.NewFromInt(int64(10 * lines)),
		GrandTotal:   decimal.NewFromInt(int64(110 * lines)),
	}
	return doc
}

func TestRenderScalesAndPaintsWhiteBackground(t *testing.T) {
	r := New(2, "Rs.")
	img, err := r.Render(context.Background(), sampleDocument(2))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	b := img.Bounds()
	if b.Dx() != BaseWidth*2 {
		t.Fatalf("width = %d, want %d", b.Dx(), BaseWidth*2)
	}
	cr, cg, cb, ca := img.At(1, 1).RGBA()
	if cr != 0xffff || cg != 0xffff || cb != 0xffff || ca != 0xffff {
		t.Fatalf("corner pixel not opaque white: %v %v %v %v", cr, cg, cb, ca)
	}
}

func TestNewEnforcesMinimumScale(t *testing.T) {
	if got := New(1, "").Scale; got != MinScale {
		t.Fatalf("Scale = %d, want %d", got, MinScale)
	}
}

func TestRenderGrowsWithLines(t *testing.T) {
	r := New(2, "Rs.")
	short, err := r.Render(context.Background(), sampleDocument(1))
	if err != nil {
		t.Fatal(err)
	}
	long, err := r.Render(context.Background(), sampleDocument(60))
	if err != nil {
		t.Fatal(err)
	}
	if long.Bounds().Dy() <= short.Bounds().Dy() {
		t.Fatalf("expected taller page for more lines: %d <= %d", long.Bounds().Dy(), short.Bounds().Dy())
	}
}

func TestRasterizeProducesJPEG(t *testing.T) {
	doc := sampleDocument(3)
	doc.PaymentLink = "upi://pay?pa=shop@upi&pn=Shop&am=330.00&cu=INR"
	data, err := New(2, "Rs.").Rasterize(context.Background(), doc)
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode jpeg: %v", err)
	}
	if cfg.Width != BaseWidth*2 {
		t.Fatalf("jpeg width = %d", cfg.Width)
	}
}

func TestRenderHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(2, "Rs.").Render(ctx, sampleDocument(1)); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestTruncateAndWrap(t *testing.T) {
	if got := Truncate("short", 40); got != "short" {
		t.Fatalf("Truncate short = %q", got)
	}
	long := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz"
	if got := Truncate(long, 40); len(got) != 40 || got[37:] != "..." {
		t.Fatalf("Truncate long = %q", got)
	}

	lines := Wrap("pay the rest by friday please", 12)
	want := []string{"pay the rest", "by friday", "please"}
	if len(lines) != len(want) {
		t.Fatalf("Wrap() = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("Wrap()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}
