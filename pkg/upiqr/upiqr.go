package upiqr

import (
	"fmt"
	"image"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

// Payment describes a UPI collect request printed on unpaid invoices.
type Payment struct {
	PayeeAddress string
	PayeeName    string
	Amount       decimal.Decimal
	Note         string
}

// PaymentURI builds the upi://pay deep link understood by UPI apps.
func PaymentURI(p Payment) string {
	q := []string{
		"pa=" + escape(p.PayeeAddress),
		"pn=" + escape(p.PayeeName),
	}
	if p.Amount.IsPositive() {
		q = append(q, "am="+p.Amount.StringFixed(2))
	}
	if p.Note != "" {
		q = append(q, "tn="+escape(p.Note))
	}
	q = append(q, "cu=INR")
	return "upi://pay?" + strings.Join(q, "&")
}

// Image encodes content as a square QR code of size pixels.
func Image(content string, size int) (image.Image, error) {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return code.Image(size), nil
}

// PNG encodes content as a PNG QR code of size pixels.
func PNG(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
