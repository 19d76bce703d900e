package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSConfig holds the EmailJS account used for invoice mails
type EmailJSConfig struct {
	Endpoint      string
	ServiceID     string
	TemplateID    string
	UserID        string
	AccessToken   string
	FromName      string
	RatePerMinute int
	Timeout       time.Duration
}

// EmailJSSender posts template parameters to the EmailJS REST API.
type EmailJSSender struct {
	config  EmailJSConfig
	client  *http.Client
	limiter *rate.Limiter
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// NewEmailJSSender creates a sender. RatePerMinute <= 0 disables throttling.
func NewEmailJSSender(config EmailJSConfig, client *http.Client) *EmailJSSender {
	if config.Endpoint == "" {
		config.Endpoint = DefaultEmailJSEndpoint
	}
	if config.Timeout == 0 {
		config.Timeout = 15 * time.Second
	}
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if config.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(config.RatePerMinute)), 1)
	}

	return &EmailJSSender{config: config, client: client, limiter: limiter}
}

func (s *EmailJSSender) Send(ctx context.Context, msg Message) error {
	if msg.ToEmail == "" {
		return ErrMissingRecipient
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("email rate limit: %w", err)
	}

	params := map[string]string{
		"to_name":    msg.ToName,
		"to_email":   msg.ToEmail,
		"from_name":  s.config.FromName,
		"message":    msg.Summary,
		"invoice_id": msg.InvoiceID,
	}
	if len(msg.Image) > 0 {
		params["invoice_image"] = "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(msg.Image)
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      s.config.ServiceID,
		TemplateID:     s.config.TemplateID,
		UserID:         s.config.UserID,
		AccessToken:    s.config.AccessToken,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
