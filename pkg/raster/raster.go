package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"strings"

	"invoicedesk/internal/model"
	"invoicedesk/pkg/upiqr"

	"github.com/shopspring/decimal"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// BaseWidth is the unscaled page width in pixels (A4 at 72 dpi).
	BaseWidth = 595

	MinScale       = 2
	DefaultQuality = 90

	SurchargeLabel = "Retailer Charges (10%)"

	margin    = 40
	rowHeight = 20
	qrSize    = 110
)

var (
	white     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ink       = color.RGBA{0x21, 0x25, 0x29, 0xff}
	muted     = color.RGBA{0x6c, 0x75, 0x7d, 0xff}
	accent    = color.RGBA{0x0d, 0x6e, 0xfd, 0xff}
	rule      = color.RGBA{0xde, 0xe2, 0xe6, 0xff}
	headerBg  = color.RGBA{0xf1, 0xf3, 0xf5, 0xff}
	paidColor = color.RGBA{0x19, 0x87, 0x54, 0xff}
	dueColor  = color.RGBA{0xdc, 0x35, 0x45, 0xff}
)

// Rasterizer paints an invoice document onto an opaque white page and encodes it as JPEG.
type Rasterizer struct {
	Scale    int
	Quality  int
	Currency string
}

// New returns a rasterizer. Scales below MinScale are raised to it.
func New(scale int, currency string) *Rasterizer {
	if scale < MinScale {
		scale = MinScale
	}
	if currency == "" {
		currency = "Rs."
	}
	return &Rasterizer{Scale: scale, Quality: DefaultQuality, Currency: currency}
}

// Render draws doc at base resolution and returns the image scaled by r.Scale.
func (r *Rasterizer) Render(ctx context.Context, doc model.Document) (image.Image, error) {
	var qr image.Image
	if doc.PaymentLink != "" {
		img, err := upiqr.Image(doc.PaymentLink, qrSize)
		if err != nil {
			return nil, err
		}
		qr = img
	}

	// First pass measures the page height, second pass paints.
	measure := &canvas{face: basicfont.Face7x13}
	r.layout(measure, doc, qr)
	height := measure.y + margin

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page := image.NewRGBA(image.Rect(0, 0, BaseWidth, height))
	xdraw.Draw(page, page.Bounds(), image.NewUniform(white), image.Point{}, xdraw.Src)
	r.layout(&canvas{img: page, face: basicfont.Face7x13}, doc, qr)

	scaled := image.NewRGBA(image.Rect(0, 0, BaseWidth*r.Scale, height*r.Scale))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), page, page.Bounds(), xdraw.Src, nil)
	return scaled, nil
}

// Rasterize renders doc and encodes it as JPEG.
func (r *Rasterizer) Rasterize(ctx context.Context, doc model.Document) ([]byte, error) {
	img, err := r.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: r.Quality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Rasterizer) money(amount decimal.Decimal) string {
	return r.Currency + " " + amount.StringFixed(2)
}

func (r *Rasterizer) layout(c *canvas, doc model.Document, qr image.Image) {
	right := BaseWidth - margin

	// Business identity and title.
	c.y = margin + 12
	c.bold(margin, c.y, doc.Business.Name, accent)
	c.boldRight(right, c.y, doc.Title, ink)
	c.y += 18
	c.text(margin, c.y, doc.Business.Owner+" | "+doc.Business.Location, muted)
	c.y += 15
	c.text(margin, c.y, doc.Business.Phone+" | "+doc.Business.Email, muted)
	c.y += 14
	c.hline(margin, right, c.y, rule)

	// Customer and metadata side by side.
	c.y += 22
	top := c.y
	c.bold(margin, c.y, "Bill To:", ink)
	c.y += 16
	c.text(margin, c.y, doc.Customer.Name, ink)
	c.y += 15
	c.text(margin, c.y, doc.Customer.Phone, ink)
	c.y += 15
	c.text(margin, c.y, doc.Customer.EmailText(), ink)

	metaX := BaseWidth / 2
	my := top
	for _, kv := range [][2]string{
		{"Date:", doc.DateText},
		{"Invoice ID:", doc.InvoiceID},
		{"Payment Mode:", doc.Payment.Mode},
	} {
		c.bold(metaX+40, my, kv[0], ink)
		c.textRight(right, my, kv[1], ink)
		my += 16
	}
	if my > c.y {
		c.y = my
	}

	// Itemized services.
	c.y += 22
	c.fill(margin, c.y-14, right, c.y+6, headerBg)
	c.bold(margin+6, c.y, "#", ink)
	c.bold(margin+36, c.y, "Service Description", ink)
	c.boldRight(right-6, c.y, "Amount", ink)
	for _, line := range doc.Lines {
		c.y += rowHeight
		c.text(margin+6, c.y, fmt.Sprintf("%d", line.Index), ink)
		c.text(margin+36, c.y, Truncate(line.Description, 52), ink)
		c.textRight(right-6, c.y, r.money(line.Amount), ink)
		c.hline(margin, right, c.y+6, rule)
	}

	// Totals.
	labelX := BaseWidth/2 + 40
	c.y += 26
	c.text(labelX, c.y, "Service Charges:", ink)
	c.textRight(right-6, c.y, r.money(doc.Totals.ServiceTotal), ink)
	c.y += 16
	c.text(labelX, c.y, SurchargeLabel+":", ink)
	c.textRight(right-6, c.y, r.money(doc.Totals.Surcharge), ink)
	c.y += 6
	c.hline(labelX, right, c.y, ink)
	c.y += 16
	c.bold(labelX, c.y, "Total Amount:", ink)
	c.boldRight(right-6, c.y, r.money(doc.Totals.GrandTotal), ink)

	// Payment status.
	c.y += 26
	statusColor := dueColor
	if doc.Payment.Status == model.PaymentPaid {
		statusColor = paidColor
	}
	c.bold(margin, c.y, "Payment Status:", ink)
	c.bold(margin+120, c.y, doc.Payment.Label, statusColor)
	if doc.Payment.Remaining != nil {
		c.y += 16
		c.text(margin, c.y, "Remaining Amount:", ink)
		c.text(margin+120, c.y, r.money(*doc.Payment.Remaining), dueColor)
	}

	if doc.Note != "" {
		c.y += 24
		c.bold(margin, c.y, "Note:", ink)
		for _, l := range Wrap(doc.Note, 70) {
			c.y += 15
			c.text(margin, c.y, l, ink)
		}
	}

	if qr != nil {
		c.y += 20
		c.image(margin, c.y, qr)
		c.text(margin+qrSize+14, c.y+qrSize/2, "Scan to pay with any UPI app", muted)
		c.y += qrSize
	}

	c.y += 28
	c.hline(margin, right, c.y-14, rule)
	c.textCenter(BaseWidth/2, c.y, doc.Footer, muted)
}

// Truncate shortens s to max characters, replacing the tail with "...".
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// Wrap breaks s into lines of at most width characters on word boundaries.
func Wrap(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var cur string
		for _, word := range strings.Fields(para) {
			switch {
			case cur == "":
				cur = word
			case len([]rune(cur))+1+len([]rune(word)) <= width:
				cur += " " + word
			default:
				lines = append(lines, cur)
				cur = word
			}
		}
		lines = append(lines, cur)
	}
	return lines
}

// --- Helpers ---

// canvas paints onto img; with a nil img it only tracks the cursor.
type canvas struct {
	img  *image.RGBA
	face font.Face
	y    int
}

func (c *canvas) text(x, y int, s string, col color.Color) {
	if c.img == nil {
		return
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(ascii(s))
}

func (c *canvas) bold(x, y int, s string, col color.Color) {
	c.text(x, y, s, col)
	c.text(x+1, y, s, col)
}

func (c *canvas) width(s string) int {
	return font.MeasureString(c.face, ascii(s)).Ceil()
}

func (c *canvas) textRight(x, y int, s string, col color.Color) {
	c.text(x-c.width(s), y, s, col)
}

func (c *canvas) boldRight(x, y int, s string, col color.Color) {
	c.bold(x-c.width(s)-1, y, s, col)
}

func (c *canvas) textCenter(x, y int, s string, col color.Color) {
	c.text(x-c.width(s)/2, y, s, col)
}

func (c *canvas) hline(x0, x1, y int, col color.Color) {
	c.fill(x0, y, x1, y+1, col)
}

func (c *canvas) fill(x0, y0, x1, y1 int, col color.Color) {
	if c.img == nil {
		return
	}
	xdraw.Draw(c.img, image.Rect(x0, y0, x1, y1), image.NewUniform(col), image.Point{}, xdraw.Src)
}

func (c *canvas) image(x, y int, src image.Image) {
	if c.img == nil {
		return
	}
	b := src.Bounds()
	xdraw.Draw(c.img, image.Rect(x, y, x+b.Dx(), y+b.Dy()), src, b.Min, xdraw.Src)
}

// ascii replaces runes the bitmap face cannot draw.
func ascii(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return '?'
		}
		return r
	}, s)
}
