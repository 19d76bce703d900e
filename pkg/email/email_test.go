package email

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"net/smtp"
	"strings"
	"testing"
	"time"
)

func TestMailtoLink(t *testing.T) {
	got := MailtoLink("asha@example.com", "Invoice from Pratech (CSC) - INV-1", "Dear Asha,\n\nTotal: ₹550.00")
	want := "mailto:asha@example.com?subject=Invoice%20from%20Pratech%20(CSC)%20-%20INV-1&body=Dear%20Asha%2C%0A%0ATotal%3A%20%E2%82%B9550.00"
	if got != want {
		t.Fatalf("MailtoLink() =\n%s\nwant\n%s", got, want)
	}
}

func TestEmailJSSenderPostsTemplateParams(t *testing.T) {
	var got emailJSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = io.WriteString(w, "OK")
	}))
	defer srv.Close()

	sender := NewEmailJSSender(EmailJSConfig{
		Endpoint:   srv.URL,
		ServiceID:  "service_csc",
		TemplateID: "template_csc",
		UserID:     "user_csc",
		FromName:   "Pratech (CSC)",
	}, srv.Client())

	err := sender.Send(context.Background(), Message{
		ToName:    "Asha",
		ToEmail:   "asha@example.com",
		Summary:   "Your invoice is attached.",
		InvoiceID: "INV-1",
		Image:     []byte{0xff, 0xd8, 0xff},
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if got.ServiceID != "service_csc" || got.TemplateID != "template_csc" || got.UserID != "user_csc" {
		t.Fatalf("unexpected account fields: %+v", got)
	}
	p := got.TemplateParams
	if p["to_name"] != "Asha" || p["to_email"] != "asha@example.com" || p["from_name"] != "Pratech (CSC)" || p["invoice_id"] != "INV-1" {
		t.Fatalf("unexpected params: %+v", p)
	}
	if !strings.HasPrefix(p["invoice_image"], "data:image/jpeg;base64,") {
		t.Fatalf("invoice_image = %q", p["invoice_image"])
	}
}

func TestEmailJSSenderReportsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, "The user ID is invalid")
	}))
	defer srv.Close()

	sender := NewEmailJSSender(EmailJSConfig{Endpoint: srv.URL}, srv.Client())
	err := sender.Send(context.Background(), Message{ToEmail: "asha@example.com"})
	if err == nil || !strings.Contains(err.Error(), "400") {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestEmailJSSenderThrottles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	sender := NewEmailJSSender(EmailJSConfig{Endpoint: srv.URL, RatePerMinute: 1}, srv.Client())
	msg := Message{ToEmail: "asha@example.com"}
	if err := sender.Send(context.Background(), msg); err != nil {
		t.Fatalf("first Send() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := sender.Send(ctx, msg); err == nil {
		t.Fatal("expected second send within the window to be throttled")
	}
}

func TestSendersRequireRecipient(t *testing.T) {
	senders := map[string]Sender{
		"emailjs": NewEmailJSSender(EmailJSConfig{}, nil),
		"smtp":    NewSMTPSender(SMTPConfig{}),
	}
	for name, s := range senders {
		if err := s.Send(context.Background(), Message{}); !errors.Is(err, ErrMissingRecipient) {
			t.Errorf("%s: err = %v, want ErrMissingRecipient", name, err)
		}
	}
}

func TestSMTPSenderAttachesPDF(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, FromName: "Pratech (CSC)", FromEmail: "shop@example.com"})

	var captured []byte
	var rcpt []string
	sender.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		if addr != "smtp.example.com:587" {
			t.Errorf("addr = %s", addr)
		}
		rcpt = to
		captured = msg
		return nil
	}

	err := sender.Send(context.Background(), Message{
		ToEmail: "asha@example.com",
		Subject: "Invoice from Pratech (CSC) - INV-1",
		Text:    "Dear Asha,\n\nYour invoice is ready.",
		PDF:     []byte("%PDF-1.3 test"),
		PDFName: "invoice_INV-1.pdf",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(rcpt) != 1 || rcpt[0] != "asha@example.com" {
		t.Fatalf("recipients = %v", rcpt)
	}

	m, err := mail.ReadMessage(strings.NewReader(string(captured)))
	if err != nil {
		t.Fatalf("parse message: %v", err)
	}
	dec := new(mime.WordDecoder)
	subject, _ := dec.DecodeHeader(m.Header.Get("Subject"))
	if subject != "Invoice from Pratech (CSC) - INV-1" {
		t.Fatalf("subject = %q", subject)
	}

	mediaType, params, err := mime.ParseMediaType(m.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/mixed" {
		t.Fatalf("content type = %q (%v)", mediaType, err)
	}
	mr := multipart.NewReader(m.Body, params["boundary"])

	var types []string
	var attachment string
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("next part: %v", err)
		}
		types = append(types, p.Header.Get("Content-Type"))
		if p.FileName() != "" {
			attachment = p.FileName()
		}
	}
	if len(types) != 2 || !strings.HasPrefix(types[0], "text/html") || types[1] != "application/pdf" {
		t.Fatalf("part types = %v", types)
	}
	if attachment != "invoice_INV-1.pdf" {
		t.Fatalf("attachment = %q", attachment)
	}
}
