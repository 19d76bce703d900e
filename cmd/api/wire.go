package main

import (
	"fmt"
	"net/http"
	"time"

	"invoicedesk/internal/config"
	"invoicedesk/internal/repository"
	"invoicedesk/internal/service"
	"invoicedesk/pkg/email"
	"invoicedesk/pkg/messaging"
	"invoicedesk/pkg/pdfwriter"
	"invoicedesk/pkg/raster"

	"go.uber.org/zap"
)

// pdfCurrency prefixes amounts in the rasterized page and the PDF; their fonts
// have no rupee glyph.
const pdfCurrency = "Rs."

type deps struct {
	renderer  *service.Renderer
	artifacts repository.ArtifactRepository
	form      service.FormService
	export    service.ExportService
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.App.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// buildDeps wires Repository -> Service. notifier may be nil.
func buildDeps(cfg *config.Config, logger *zap.Logger, notifier service.Notifier) (*deps, error) {
	loc, err := cfg.Invoice.Location()
	if err != nil {
		return nil, err
	}

	renderer, err := service.NewRenderer(cfg.Business, cfg.Invoice.CurrencySymbol, cfg.Invoice.CountryCode, loc)
	if err != nil {
		return nil, err
	}

	mailer, err := newMailer(cfg)
	if err != nil {
		return nil, err
	}

	artifacts := repository.NewArtifactRepository()
	export := service.NewExportService(
		logger,
		renderer,
		service.NewIDGenerator(cfg.Invoice.IDPrefix, cfg.Invoice.IDStyle, loc),
		raster.New(cfg.Invoice.RasterScale, pdfCurrency),
		pdfwriter.New(pdfCurrency),
		messaging.NewWhatsApp(cfg.Invoice.WhatsAppHost, cfg.Invoice.CountryCode),
		mailer,
		artifacts,
		notifier,
		service.ExportConfig{
			EmailMode:  cfg.Email.Mode,
			SendAllGap: cfg.Invoice.SendAllGap,
		},
	)

	return &deps{
		renderer:  renderer,
		artifacts: artifacts,
		form:      service.NewFormService(cfg.Invoice.CurrencySymbol),
		export:    export,
	}, nil
}

func newMailer(cfg *config.Config) (email.Sender, error) {
	switch cfg.Email.Mode {
	case email.ModeMailto:
		return nil, nil
	case email.ModeEmailJS:
		ejs := cfg.Email.EmailJS
		return email.NewEmailJSSender(email.EmailJSConfig{
			Endpoint:      ejs.Endpoint,
			ServiceID:     ejs.ServiceID,
			TemplateID:    ejs.TemplateID,
			UserID:        ejs.UserID,
			AccessToken:   ejs.AccessToken,
			FromName:      cfg.Business.Name,
			RatePerMinute: cfg.Email.RatePerMinute,
		}, &http.Client{Timeout: 15 * time.Second}), nil
	case email.ModeSMTP:
		smtpCfg := cfg.Email.SMTP
		fromName := smtpCfg.FromName
		if fromName == "" {
			fromName = cfg.Business.Name
		}
		return email.NewSMTPSender(email.SMTPConfig{
			Host:      smtpCfg.Host,
			Port:      smtpCfg.Port,
			Username:  smtpCfg.Username,
			Password:  smtpCfg.Password,
			FromName:  fromName,
			FromEmail: smtpCfg.FromEmail,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported email mode %q", cfg.Email.Mode)
	}
}
