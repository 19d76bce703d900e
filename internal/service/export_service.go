package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invoicedesk/internal/model"
	"invoicedesk/internal/repository"
	"invoicedesk/pkg/email"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// --- State machine ---

type ExportState string

const (
	StateIdle           ExportState = "idle"
	StateValidating     ExportState = "validating"
	StateRendering      ExportState = "rendering"
	StateGenerating     ExportState = "generating"
	StateReady          ExportState = "ready"
	StateDownloaded     ExportState = "downloaded"
	StateWhatsAppOpened ExportState = "whatsapp_opened"
	StateEmailComposed  ExportState = "email_composed"
)

type exportEvent string

const (
	evGenerate  exportEvent = "generate"
	evInvalid   exportEvent = "invalid"
	evValid     exportEvent = "valid"
	evRendered  exportEvent = "rendered"
	evGenerated exportEvent = "generated"
	evFailed    exportEvent = "failed"
	evDownload  exportEvent = "download"
	evWhatsApp  exportEvent = "whatsapp"
	evEmail     exportEvent = "email"
	evClose     exportEvent = "close"
)

// readyTransitions apply to every state in which a generated export is shown.
var readyTransitions = map[exportEvent]ExportState{
	evGenerate: StateValidating,
	evDownload: StateDownloaded,
	evWhatsApp: StateWhatsAppOpened,
	evEmail:    StateEmailComposed,
	evClose:    StateIdle,
}

var exportTransitions = map[ExportState]map[exportEvent]ExportState{
	StateIdle: {
		evGenerate: StateValidating,
	},
	StateValidating: {
		evInvalid: StateIdle,
		evValid:   StateRendering,
		evClose:   StateIdle,
	},
	StateRendering: {
		evRendered: StateGenerating,
		evFailed:   StateIdle,
		evClose:    StateIdle,
	},
	StateGenerating: {
		evGenerated: StateReady,
		evFailed:    StateIdle,
		evClose:     StateIdle,
	},
	StateReady:          readyTransitions,
	StateDownloaded:     readyTransitions,
	StateWhatsAppOpened: readyTransitions,
	StateEmailComposed:  readyTransitions,
}

// --- Collaborators ---

// Rasterizer paints a document onto a page image and returns it as JPEG.
type Rasterizer interface {
	Rasterize(ctx context.Context, doc model.Document) ([]byte, error)
}

// DocumentWriter assembles the PDF, from a page image or, as a fallback, from the document itself.
type DocumentWriter interface {
	FromImage(jpeg []byte) ([]byte, error)
	FromDocument(doc model.Document) ([]byte, error)
}

// LinkComposer builds a messaging deep link for a mobile number and message.
type LinkComposer interface {
	Link(mobile, message string) string
}

// Notifier pushes user-visible notifications to connected pages.
type Notifier interface {
	Notify(n model.Notification)
}

// --- DTOs ---

// Action kinds tell the page what to do with an Action.
const (
	ActionDownload = "download"
	ActionOpen     = "open"
	ActionSent     = "sent"
)

// Action is one thing the page performs for the user: download a file or open a link,
// DelayMS after the request returns.
type Action struct {
	Channel  string `json:"channel"`
	Kind     string `json:"kind"`
	URL      string `json:"url,omitempty"`
	FileName string `json:"file_name,omitempty"`
	DelayMS  int64  `json:"delay_ms"`
	Message  string `json:"message"`
}

type ChannelFailure struct {
	Channel string `json:"channel"`
	Error   string `json:"error"`
}

type SendAllResponse struct {
	Actions  []Action         `json:"actions"`
	Failures []ChannelFailure `json:"failures,omitempty"`
}

type ExportResponse struct {
	InvoiceID     string         `json:"invoice_id"`
	State         ExportState    `json:"state"`
	Date          string         `json:"date"`
	PreviewHTML   string         `json:"preview_html"`
	PDFURL        string         `json:"pdf_url"`
	PDFFileName   string         `json:"pdf_file_name"`
	ImageURL      string         `json:"image_url"`
	ImageFileName string         `json:"image_file_name"`
	Totals        TotalsResponse `json:"totals"`
	Fallback      bool           `json:"fallback"`
}

// ExportConfig tunes delivery behaviour.
type ExportConfig struct {
	EmailMode  string        // email.ModeMailto, ModeEmailJS or ModeSMTP
	SendAllGap time.Duration // delay between channels in SendAll
	ExportPath string        // URL prefix artifacts are served under
}

// --- Interface ---

// ExportService owns the generated export of the current form: its document, its
// artifacts, and the delivery channels built on them. It is not safe for concurrent
// use; callers serialize access.
type ExportService interface {
	State() ExportState
	Generate(ctx context.Context, draft model.InvoiceDraft, revision uint64) (ExportResponse, error)
	Current() (ExportResponse, error)
	Download(draft model.InvoiceDraft, revision uint64) (Action, error)
	SendWhatsApp(draft model.InvoiceDraft, revision uint64) (Action, error)
	ShareImage(draft model.InvoiceDraft, revision uint64) ([]Action, error)
	SendEmail(ctx context.Context, draft model.InvoiceDraft, revision uint64) (Action, error)
	SendAll(ctx context.Context, draft model.InvoiceDraft, revision uint64) (SendAllResponse, error)
	Close(ctx context.Context) error
}

type exportSession struct {
	doc      model.Document
	revision uint64
	preview  string
	pdf      *model.Artifact
	image    *model.Artifact
	fallback bool
}

type exportService struct {
	renderer   *Renderer
	ids        *IDGenerator
	rasterizer Rasterizer
	writer     DocumentWriter
	links      LinkComposer
	mailer     email.Sender
	artifacts  repository.ArtifactRepository
	notifier   Notifier
	logger     *zap.Logger
	cfg        ExportConfig

	state   ExportState
	current *exportSession
}

// NewExportService wires the export pipeline. mailer may be nil when cfg.EmailMode is
// mailto; notifier may be nil.
func NewExportService(
	logger *zap.Logger,
	renderer *Renderer,
	ids *IDGenerator,
	rasterizer Rasterizer,
	writer DocumentWriter,
	links LinkComposer,
	mailer email.Sender,
	artifacts repository.ArtifactRepository,
	notifier Notifier,
	cfg ExportConfig,
) ExportService {
	if cfg.EmailMode == "" {
		cfg.EmailMode = email.ModeMailto
	}
	if cfg.SendAllGap <= 0 {
		cfg.SendAllGap = time.Second
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = "/exports/"
	}
	return &exportService{
		renderer:   renderer,
		ids:        ids,
		rasterizer: rasterizer,
		writer:     writer,
		links:      links,
		mailer:     mailer,
		artifacts:  artifacts,
		notifier:   notifier,
		logger:     logger.Named("export_service"),
		cfg:        cfg,
		state:      StateIdle,
	}
}

// --- Implementation ---

func (s *exportService) State() ExportState {
	return s.state
}

// Generate validates the draft, renders it under a fresh invoice id and produces the
// PDF and the image. Any previous export is released first.
func (s *exportService) Generate(ctx context.Context, draft model.InvoiceDraft, revision uint64) (ExportResponse, error) {
	if err := s.fire(evGenerate); err != nil {
		return ExportResponse{}, err
	}
	s.release(ctx)

	if err := ValidateDraft(draft); err != nil {
		_ = s.fire(evInvalid)
		s.notifyError("generate", "", err.Error())
		return ExportResponse{}, err
	}
	_ = s.fire(evValid)

	totals := CalculateTotals(draft.LineItems)
	issuedAt := s.ids.Now()
	doc := s.renderer.Build(draft, s.ids.Format(issuedAt), totals, issuedAt)

	preview, err := s.renderer.PreviewHTML(doc)
	if err != nil {
		return ExportResponse{}, s.fail(doc.InvoiceID, &ExportGenerationError{Stage: "preview", Err: err})
	}
	_ = s.fire(evRendered)

	start := time.Now()
	pdfData, imageData, fallback, err := s.produce(ctx, doc)
	if err != nil {
		return ExportResponse{}, s.fail(doc.InvoiceID, err)
	}

	session := &exportSession{doc: doc, revision: revision, preview: preview, fallback: fallback}
	session.pdf = &model.Artifact{
		FileName:    fmt.Sprintf("invoice_%s.pdf", doc.InvoiceID),
		ContentType: model.ContentTypePDF,
		Data:        pdfData,
	}
	session.image = &model.Artifact{
		FileName:    fmt.Sprintf("invoice_%s.jpg", doc.InvoiceID),
		ContentType: model.ContentTypeJPEG,
		Data:        imageData,
	}
	for _, a := range []*model.Artifact{session.pdf, session.image} {
		if err := s.artifacts.Create(ctx, a); err != nil {
			s.releaseSession(ctx, session)
			return ExportResponse{}, s.fail(doc.InvoiceID, &ExportGenerationError{Stage: "store", Err: err})
		}
	}

	s.current = session
	_ = s.fire(evGenerated)

	s.logger.Info("Invoice generated",
		zap.String("invoice_id", doc.InvoiceID),
		zap.Bool("fallback", fallback),
		zap.Int("pdf_bytes", len(pdfData)),
		zap.Int("image_bytes", len(imageData)),
		zap.Duration("duration", time.Since(start)),
	)
	s.notify(model.Notification{
		Level:     model.NotifySuccess,
		Event:     "generate",
		Message:   "Invoice generated successfully!",
		InvoiceID: doc.InvoiceID,
	})

	return s.response(), nil
}

func (s *exportService) Current() (ExportResponse, error) {
	if s.current == nil {
		return ExportResponse{}, ErrNoExport
	}
	return s.response(), nil
}

func (s *exportService) Download(draft model.InvoiceDraft, revision uint64) (Action, error) {
	session, err := s.requireCurrent(draft, revision)
	if err != nil {
		return Action{}, err
	}
	if err := s.fire(evDownload); err != nil {
		return Action{}, err
	}

	action := Action{
		Channel:  ChannelDownload,
		Kind:     ActionDownload,
		URL:      s.artifactURL(session.pdf),
		FileName: session.pdf.FileName,
		Message:  "PDF downloaded successfully!",
	}
	s.logger.Info("Invoice downloaded", zap.String("invoice_id", session.doc.InvoiceID))
	s.notifySuccess("download", ChannelDownload, action.Message)
	return action, nil
}

func (s *exportService) SendWhatsApp(draft model.InvoiceDraft, revision uint64) (Action, error) {
	session, err := s.requireCurrent(draft, revision)
	if err != nil {
		return Action{}, err
	}
	if err := s.requireMobile(session); err != nil {
		return Action{}, err
	}
	if err := s.fire(evWhatsApp); err != nil {
		return Action{}, err
	}

	action := Action{
		Channel: ChannelWhatsApp,
		Kind:    ActionOpen,
		URL:     s.links.Link(session.doc.Customer.Mobile, s.renderer.WhatsAppText(session.doc)),
		Message: "WhatsApp opened! Send the message.",
	}
	s.logger.Info("WhatsApp link composed", zap.String("invoice_id", session.doc.InvoiceID))
	s.notifySuccess("whatsapp", ChannelWhatsApp, action.Message)
	return action, nil
}

// ShareImage downloads the invoice image, then opens WhatsApp with a short summary so
// the user can attach the image by hand.
func (s *exportService) ShareImage(draft model.InvoiceDraft, revision uint64) ([]Action, error) {
	session, err := s.requireCurrent(draft, revision)
	if err != nil {
		return nil, err
	}
	if err := s.requireMobile(session); err != nil {
		return nil, err
	}
	if err := s.fire(evWhatsApp); err != nil {
		return nil, err
	}

	msg := "WhatsApp will open. Please attach the downloaded image manually."
	actions := []Action{
		{
			Channel:  ChannelDownload,
			Kind:     ActionDownload,
			URL:      s.artifactURL(session.image),
			FileName: session.image.FileName,
			Message:  msg,
		},
		{
			Channel: ChannelWhatsApp,
			Kind:    ActionOpen,
			URL:     s.links.Link(session.doc.Customer.Mobile, s.renderer.ShareImageText(session.doc)),
			DelayMS: s.cfg.SendAllGap.Milliseconds(),
			Message: msg,
		},
	}
	s.logger.Info("Invoice image shared", zap.String("invoice_id", session.doc.InvoiceID))
	s.notifySuccess("share_image", ChannelWhatsApp, msg)
	return actions, nil
}

func (s *exportService) SendEmail(ctx context.Context, draft model.InvoiceDraft, revision uint64) (Action, error) {
	session, err := s.requireCurrent(draft, revision)
	if err != nil {
		return Action{}, err
	}
	doc := session.doc
	if doc.Customer.Email == "" {
		err := &DeliveryPreconditionError{Channel: ChannelEmail, Reason: "Please enter customer email address."}
		s.notifyError("email", ChannelEmail, err.Reason)
		return Action{}, err
	}
	if _, ok := exportTransitions[s.state][evEmail]; !ok {
		return Action{}, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, evEmail, s.state)
	}

	subject := s.renderer.EmailSubject(doc)
	body := s.renderer.EmailText(doc)

	if s.cfg.EmailMode == email.ModeMailto || s.mailer == nil {
		_ = s.fire(evEmail)
		action := Action{
			Channel: ChannelEmail,
			Kind:    ActionOpen,
			URL:     email.MailtoLink(doc.Customer.Email, subject, body),
			Message: "Email client opened! Attach the PDF and send.",
		}
		s.logger.Info("Mailto link composed", zap.String("invoice_id", doc.InvoiceID))
		s.notifySuccess("email", ChannelEmail, action.Message)
		return action, nil
	}

	err = s.mailer.Send(ctx, email.Message{
		ToName:    doc.Customer.Name,
		ToEmail:   doc.Customer.Email,
		Subject:   subject,
		Text:      body,
		Summary:   s.renderer.EmailSummary(doc),
		InvoiceID: doc.InvoiceID,
		Image:     session.image.Data,
		PDF:       session.pdf.Data,
		PDFName:   session.pdf.FileName,
	})
	if err != nil {
		s.logger.Error("Failed to send invoice email",
			zap.String("invoice_id", doc.InvoiceID),
			zap.String("mode", s.cfg.EmailMode),
			zap.Error(err),
		)
		s.notifyError("email", ChannelEmail, "Failed to send email. Please try again.")
		return Action{}, &DeliveryError{Channel: ChannelEmail, Err: err}
	}

	_ = s.fire(evEmail)
	action := Action{
		Channel: ChannelEmail,
		Kind:    ActionSent,
		Message: fmt.Sprintf("Invoice emailed to %s.", doc.Customer.Email),
	}
	s.logger.Info("Invoice email sent",
		zap.String("invoice_id", doc.InvoiceID),
		zap.String("mode", s.cfg.EmailMode),
	)
	s.notifySuccess("email", ChannelEmail, action.Message)
	return action, nil
}

// SendAll runs download, WhatsApp and email in that order. WhatsApp and email carry
// increasing delays for the page to honour. A channel that cannot be used is reported
// in Failures and the others still run.
func (s *exportService) SendAll(ctx context.Context, draft model.InvoiceDraft, revision uint64) (SendAllResponse, error) {
	if _, err := s.requireCurrent(draft, revision); err != nil {
		return SendAllResponse{}, err
	}

	var resp SendAllResponse
	collect := func(channel string, delay time.Duration, action Action, err error) {
		if err != nil {
			resp.Failures = append(resp.Failures, ChannelFailure{Channel: channel, Error: err.Error()})
			return
		}
		action.DelayMS = delay.Milliseconds()
		resp.Actions = append(resp.Actions, action)
	}

	action, err := s.Download(draft, revision)
	collect(ChannelDownload, 0, action, err)

	action, err = s.SendWhatsApp(draft, revision)
	collect(ChannelWhatsApp, s.cfg.SendAllGap, action, err)

	action, err = s.SendEmail(ctx, draft, revision)
	collect(ChannelEmail, 2*s.cfg.SendAllGap, action, err)

	return resp, nil
}

// Close dismisses the preview and releases its artifacts. Closing with nothing open is a no-op.
func (s *exportService) Close(ctx context.Context) error {
	if s.state == StateIdle {
		return nil
	}
	if err := s.fire(evClose); err != nil {
		return err
	}
	s.release(ctx)
	return nil
}

// --- Helpers ---

func (s *exportService) fire(ev exportEvent) error {
	next, ok := exportTransitions[s.state][ev]
	if !ok {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, ev, s.state)
	}
	s.logger.Debug("Export state change",
		zap.String("from", string(s.state)),
		zap.String("event", string(ev)),
		zap.String("to", string(next)),
	)
	s.state = next
	return nil
}

func (s *exportService) fail(invoiceID string, err error) error {
	_ = s.fire(evFailed)
	s.logger.Error("Failed to generate invoice", zap.String("invoice_id", invoiceID), zap.Error(err))
	s.notifyError("generate", "", "Error generating invoice. Please try again.")
	return err
}

// produce builds the PDF and the image concurrently. Both must succeed.
func (s *exportService) produce(ctx context.Context, doc model.Document) (pdfData, imageData []byte, fallback bool, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, usedFallback, err := s.buildPDF(gctx, doc)
		if err != nil {
			return err
		}
		pdfData, fallback = data, usedFallback
		return nil
	})

	g.Go(func() error {
		data, err := s.rasterizer.Rasterize(gctx, doc)
		if err != nil {
			return &ExportGenerationError{Stage: "image", Err: err}
		}
		imageData = data
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, false, err
	}
	return pdfData, imageData, fallback, nil
}

// buildPDF embeds the rasterized page and falls back once to the text layout when
// rasterizing or embedding fails.
func (s *exportService) buildPDF(ctx context.Context, doc model.Document) ([]byte, bool, error) {
	page, err := s.rasterizer.Rasterize(ctx, doc)
	if err == nil {
		var pdf []byte
		if pdf, err = s.writer.FromImage(page); err == nil {
			return pdf, false, nil
		}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, false, &ExportGenerationError{Stage: "document", Err: ctxErr}
	}

	s.logger.Warn("Page image unavailable, using text layout",
		zap.String("invoice_id", doc.InvoiceID),
		zap.Error(err),
	)
	pdf, fbErr := s.writer.FromDocument(doc)
	if fbErr != nil {
		return nil, false, &ExportGenerationError{Stage: "document", Err: errors.Join(err, fbErr)}
	}
	return pdf, true, nil
}

func (s *exportService) requireCurrent(draft model.InvoiceDraft, revision uint64) (*exportSession, error) {
	if s.current == nil {
		return nil, ErrNoExport
	}
	if err := ValidateDraft(draft); err != nil {
		s.notifyError("validate", "", err.Error())
		return nil, err
	}
	if revision != s.current.revision {
		return nil, ErrPreviewOutdated
	}
	return s.current, nil
}

func (s *exportService) requireMobile(session *exportSession) error {
	if session.doc.Customer.Mobile == "" {
		err := &DeliveryPreconditionError{Channel: ChannelWhatsApp, Reason: "Please enter customer mobile number."}
		s.notifyError("whatsapp", ChannelWhatsApp, err.Reason)
		return err
	}
	return nil
}

func (s *exportService) release(ctx context.Context) {
	if s.current == nil {
		return
	}
	s.releaseSession(ctx, s.current)
	s.current = nil
}

func (s *exportService) releaseSession(ctx context.Context, session *exportSession) {
	for _, a := range []*model.Artifact{session.pdf, session.image} {
		if a == nil || a.Token == "" {
			continue
		}
		if err := s.artifacts.Delete(ctx, a.Token); err != nil && !errors.Is(err, repository.ErrArtifactNotFound) {
			s.logger.Warn("Failed to release artifact", zap.String("token", a.Token), zap.Error(err))
		}
	}
}

func (s *exportService) artifactURL(a *model.Artifact) string {
	return s.cfg.ExportPath + a.Token
}

func (s *exportService) response() ExportResponse {
	c := s.current
	return ExportResponse{
		InvoiceID:     c.doc.InvoiceID,
		State:         s.state,
		Date:          c.doc.DateText,
		PreviewHTML:   c.preview,
		PDFURL:        s.artifactURL(c.pdf),
		PDFFileName:   c.pdf.FileName,
		ImageURL:      s.artifactURL(c.image),
		ImageFileName: c.image.FileName,
		Totals: TotalsResponse{
			ServiceTotal: FormatMoney(s.renderer.Currency, c.doc.Totals.ServiceTotal),
			Surcharge:    FormatMoney(s.renderer.Currency, c.doc.Totals.Surcharge),
			GrandTotal:   FormatMoney(s.renderer.Currency, c.doc.Totals.GrandTotal),
		},
		Fallback: c.fallback,
	}
}

func (s *exportService) notify(n model.Notification) {
	if s.notifier != nil {
		s.notifier.Notify(n)
	}
}

func (s *exportService) notifySuccess(event, channel, msg string) {
	n := model.Notification{Level: model.NotifySuccess, Event: event, Channel: channel, Message: msg}
	if s.current != nil {
		n.InvoiceID = s.current.doc.InvoiceID
	}
	s.notify(n)
}

func (s *exportService) notifyError(event, channel, msg string) {
	s.notify(model.Notification{Level: model.NotifyError, Event: event, Channel: channel, Message: msg})
}
