package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"invoicedesk/internal/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	CORS     CORSConfig
	Business model.Business
	Invoice  InvoiceConfig
	Email    EmailConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type InvoiceConfig struct {
	CurrencySymbol string
	CountryCode    string
	Timezone       string
	IDPrefix       string
	IDStyle        string
	RasterScale    int
	WhatsAppHost   string
	SendAllGap     time.Duration
}

type EmailConfig struct {
	Mode          string
	RatePerMinute int
	EmailJS       EmailJSConfig
	SMTP          SMTPConfig
}

type EmailJSConfig struct {
	Endpoint    string
	ServiceID   string
	TemplateID  string
	UserID      string
	AccessToken string
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// Load reads envFile into the process environment when it exists, then resolves
// every setting from the environment with defaults.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("No %s file found, using environment variables", envFile)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("APP_NAME", "invoicedesk")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8080,http://127.0.0.1:8080")
	v.SetDefault("BUSINESS_NAME", "Pratech (CSC)")
	v.SetDefault("BUSINESS_OWNER", "Pratik A. Bhang")
	v.SetDefault("BUSINESS_LOCATION", "Shrirampur")
	v.SetDefault("BUSINESS_PHONE", "9874561230")
	v.SetDefault("BUSINESS_EMAIL", "csc.pratikabhang@gmail.com")
	v.SetDefault("BUSINESS_UPI_ID", "")
	v.SetDefault("CURRENCY_SYMBOL", "₹")
	v.SetDefault("COUNTRY_CODE", "91")
	v.SetDefault("TIMEZONE", "Asia/Kolkata")
	v.SetDefault("INVOICE_ID_PREFIX", "INV")
	v.SetDefault("INVOICE_ID_STYLE", "dated")
	v.SetDefault("RASTER_SCALE", 2)
	v.SetDefault("WHATSAPP_HOST", "api.whatsapp.com")
	v.SetDefault("SEND_ALL_GAP_MS", 1000)
	v.SetDefault("EMAIL_MODE", "mailto")
	v.SetDefault("EMAIL_RATE_PER_MIN", 10)
	v.SetDefault("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send")
	v.SetDefault("EMAILJS_SERVICE_ID", "service_csc")
	v.SetDefault("EMAILJS_TEMPLATE_ID", "template_csc")
	v.SetDefault("EMAILJS_USER_ID", "user_cscPratik")
	v.SetDefault("EMAILJS_ACCESS_TOKEN", "")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM_NAME", "")
	v.SetDefault("SMTP_FROM_EMAIL", "")

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("APP_NAME"),
			Env:  v.GetString("APP_ENV"),
			Port: v.GetString("PORT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Business: model.Business{
			Name:     v.GetString("BUSINESS_NAME"),
			Owner:    v.GetString("BUSINESS_OWNER"),
			Location: v.GetString("BUSINESS_LOCATION"),
			Phone:    v.GetString("BUSINESS_PHONE"),
			Email:    v.GetString("BUSINESS_EMAIL"),
			UPIID:    v.GetString("BUSINESS_UPI_ID"),
		},
		Invoice: InvoiceConfig{
			CurrencySymbol: v.GetString("CURRENCY_SYMBOL"),
			CountryCode:    v.GetString("COUNTRY_CODE"),
			Timezone:       v.GetString("TIMEZONE"),
			IDPrefix:       v.GetString("INVOICE_ID_PREFIX"),
			IDStyle:        v.GetString("INVOICE_ID_STYLE"),
			RasterScale:    v.GetInt("RASTER_SCALE"),
			WhatsAppHost:   v.GetString("WHATSAPP_HOST"),
			SendAllGap:     time.Duration(v.GetInt("SEND_ALL_GAP_MS")) * time.Millisecond,
		},
		Email: EmailConfig{
			Mode:          strings.ToLower(v.GetString("EMAIL_MODE")),
			RatePerMinute: v.GetInt("EMAIL_RATE_PER_MIN"),
			EmailJS: EmailJSConfig{
				Endpoint:    v.GetString("EMAILJS_ENDPOINT"),
				ServiceID:   v.GetString("EMAILJS_SERVICE_ID"),
				TemplateID:  v.GetString("EMAILJS_TEMPLATE_ID"),
				UserID:      v.GetString("EMAILJS_USER_ID"),
				AccessToken: v.GetString("EMAILJS_ACCESS_TOKEN"),
			},
			SMTP: SMTPConfig{
				Host:      v.GetString("SMTP_HOST"),
				Port:      v.GetInt("SMTP_PORT"),
				Username:  v.GetString("SMTP_USERNAME"),
				Password:  v.GetString("SMTP_PASSWORD"),
				FromName:  v.GetString("SMTP_FROM_NAME"),
				FromEmail: v.GetString("SMTP_FROM_EMAIL"),
			},
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProduction reports whether APP_ENV selects production behaviour.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// Location resolves the configured invoice timezone.
func (c *InvoiceConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) validate() error {
	switch c.Email.Mode {
	case "mailto", "emailjs", "smtp":
	default:
		return fmt.Errorf("invalid EMAIL_MODE %q: want mailto, emailjs or smtp", c.Email.Mode)
	}
	switch c.Invoice.IDStyle {
	case "dated", "month-token":
	default:
		return fmt.Errorf("invalid INVOICE_ID_STYLE %q: want dated or month-token", c.Invoice.IDStyle)
	}
	if c.Email.Mode == "smtp" && c.Email.SMTP.FromEmail == "" {
		return fmt.Errorf("SMTP_FROM_EMAIL is required when EMAIL_MODE is smtp")
	}
	if c.Invoice.RasterScale < 2 {
		c.Invoice.RasterScale = 2
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
