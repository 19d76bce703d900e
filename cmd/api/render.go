package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"invoicedesk/internal/config"
	"invoicedesk/internal/model"
	"invoicedesk/internal/repository"
	"invoicedesk/internal/service"
	"invoicedesk/pkg/email"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const exportPath = "/exports/"

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "generate the PDF and image for a draft without starting the server",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			envFileFlag(),
			&cli.StringFlag{Name: "draft", Usage: "invoice draft as JSON", Required: true},
			&cli.StringFlag{Name: "out", Usage: "output directory", Value: "."},
		},
		Action: render,
	}
}

func render(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("env-file"))
	if err != nil {
		return err
	}
	// Headless runs never contact a mail provider.
	cfg.Email.Mode = email.ModeMailto

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	draft, err := readDraft(cctx.String("draft"))
	if err != nil {
		return err
	}

	d, err := buildDeps(cfg, logger, nil)
	if err != nil {
		return err
	}

	ctx := cctx.Context
	resp, err := d.export.Generate(ctx, draft, 0)
	if err != nil {
		return err
	}

	outDir := cctx.String("out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, url := range []string{resp.PDFURL, resp.ImageURL} {
		path, err := saveArtifact(cctx, d.artifacts, url, outDir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cctx.App.Writer, path)
	}

	whatsapp, err := d.export.SendWhatsApp(draft, 0)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, "WhatsApp:", whatsapp.URL)

	mail, err := d.export.SendEmail(ctx, draft, 0)
	var precondition *service.DeliveryPreconditionError
	switch {
	case err == nil:
		fmt.Fprintln(cctx.App.Writer, "Email:", mail.URL)
	case errors.As(err, &precondition):
		logger.Info("Email skipped", zap.String("reason", precondition.Reason))
	default:
		return err
	}

	return d.export.Close(ctx)
}

func readDraft(path string) (model.InvoiceDraft, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.InvoiceDraft{}, fmt.Errorf("failed to read draft: %w", err)
	}
	draft := model.NewDraft()
	if err := json.Unmarshal(raw, &draft); err != nil {
		return model.InvoiceDraft{}, fmt.Errorf("failed to parse draft: %w", err)
	}
	if len(draft.LineItems) == 0 {
		draft.LineItems = []model.ServiceLineItem{{}}
	}
	if draft.PaymentStatus == model.PaymentHalfPaid && strings.TrimSpace(draft.RemainingAmount) == "" {
		draft.RemainingAmount = service.DefaultRemaining(service.CalculateTotals(draft.LineItems)).String()
	}
	return draft, nil
}

func saveArtifact(cctx *cli.Context, artifacts repository.ArtifactRepository, url, outDir string) (string, error) {
	a, err := artifacts.FindByToken(cctx.Context, strings.TrimPrefix(url, exportPath))
	if err != nil {
		return "", fmt.Errorf("failed to load %s: %w", url, err)
	}
	path := filepath.Join(outDir, a.FileName)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
