package email

import (
	"context"
	"errors"

	"invoicedesk/pkg/messaging"
)

// Delivery modes
const (
	ModeMailto  = "mailto"
	ModeEmailJS = "emailjs"
	ModeSMTP    = "smtp"
)

var ErrMissingRecipient = errors.New("recipient email is required")

// Message is one invoice mail handed to a transactional sender.
type Message struct {
	ToName    string
	ToEmail   string
	Subject   string
	Text      string // full plain-text body
	Summary   string // short message for provider templates
	InvoiceID string
	Image     []byte // JPEG rendition of the invoice
	PDF       []byte
	PDFName   string
}

// Sender delivers a Message through an email provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// MailtoLink builds a mailto: URI that opens the user's mail client prefilled.
func MailtoLink(to, subject, body string) string {
	return "mailto:" + to + "?subject=" + messaging.EncodeComponent(subject) + "&body=" + messaging.EncodeComponent(body)
}
