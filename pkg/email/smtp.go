package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"mime"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"
)

// SMTPConfig holds SMTP configuration
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// SMTPSender mails the invoice as HTML with the PDF attached.
type SMTPSender struct {
	config   SMTPConfig
	tmpl     *template.Template
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(config SMTPConfig) *SMTPSender {
	return &SMTPSender{
		config:   config,
		tmpl:     template.Must(template.New("invoice_email").Parse(invoiceEmailTemplate)),
		sendMail: smtp.SendMail,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if msg.ToEmail == "" {
		return ErrMissingRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	message, err := s.buildMessage(msg)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	if err := s.sendMail(addr, auth, s.config.FromEmail, []string{msg.ToEmail}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildMessage renders a multipart/mixed message: an HTML body followed by the PDF.
func (s *SMTPSender) buildMessage(msg Message) ([]byte, error) {
	var html bytes.Buffer
	data := struct {
		Paragraphs []string
	}{
		Paragraphs: strings.Split(msg.Text, "\n\n"),
	}
	if err := s.tmpl.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render email template: %w", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {`text/html; charset="UTF-8"`},
		"Content-Transfer-Encoding": {"base64"},
	})
	if err != nil {
		return nil, err
	}
	if err := writeBase64(part, html.Bytes()); err != nil {
		return nil, err
	}

	if len(msg.PDF) > 0 {
		name := msg.PDFName
		if name == "" {
			name = "invoice.pdf"
		}
		part, err = mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {"application/pdf"},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {mime.FormatMediaType("attachment", map[string]string{"filename": name})},
		})
		if err != nil {
			return nil, err
		}
		if err := writeBase64(part, msg.PDF); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: multipart/mixed; boundary=%q\r\n"+
			"\r\n",
		mime.QEncoding.Encode("utf-8", s.config.FromName),
		s.config.FromEmail,
		msg.ToEmail,
		mime.QEncoding.Encode("utf-8", msg.Subject),
		mw.Boundary(),
	)

	return append([]byte(headers), body.Bytes()...), nil
}

// writeBase64 writes data base64-encoded in 76 character lines.
func writeBase64(w io.Writer, data []byte) error {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 76 {
		if _, err := w.Write([]byte(encoded[:76] + "\r\n")); err != nil {
			return err
		}
		encoded = encoded[76:]
	}
	_, err := w.Write([]byte(encoded + "\r\n"))
	return err
}

// invoiceEmailTemplate is the HTML body for invoice emails
const invoiceEmailTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 24px; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px;">
        <tr>
            <td style="padding: 32px; color: #4a5568; font-size: 15px; line-height: 1.6;">
                {{range .Paragraphs}}<p style="margin: 0 0 16px 0; white-space: pre-line;">{{.}}</p>
                {{end}}
            </td>
        </tr>
    </table>
</body>
</html>
`
