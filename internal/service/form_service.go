package service

import (
	"fmt"
	"strings"

	"invoicedesk/internal/model"
)

// --- DTOs ---

// UpdateCustomerRequest carries partial edits of the customer block; nil fields are left unchanged.
type UpdateCustomerRequest struct {
	Name   *string `json:"name"`
	Mobile *string `json:"mobile"`
	Email  *string `json:"email"`
	Note   *string `json:"note"`
}

type UpdatePaymentRequest struct {
	Mode   string `json:"mode"`
	Status string `json:"status"`
}

type UpdateLineItemRequest struct {
	Description *string `json:"description"`
	Amount      *string `json:"amount"`
}

type TotalsResponse struct {
	ServiceTotal string `json:"service_total"`
	Surcharge    string `json:"surcharge"`
	GrandTotal   string `json:"grand_total"`
}

type FormStateResponse struct {
	Draft               model.InvoiceDraft `json:"draft"`
	Totals              TotalsResponse     `json:"totals"`
	StatusLabel         string             `json:"status_label"`
	RemainingDisplay    string             `json:"remaining_display,omitempty"`
	RemainingOverridden bool               `json:"remaining_overridden"`
	Dirty               bool               `json:"dirty"`
	Revision            uint64             `json:"revision"`
}

// --- Interface ---

// FormService holds the single in-memory invoice draft and applies input events to it.
// It is not safe for concurrent use; callers serialize access.
type FormService interface {
	Draft() model.InvoiceDraft
	Totals() model.InvoiceTotals
	State() FormStateResponse
	Revision() uint64
	Dirty() bool

	UpdateCustomer(req UpdateCustomerRequest)
	UpdatePayment(req UpdatePaymentRequest) error
	SetRemainingAmount(amount string) error
	UseDefaultRemaining() error

	AddLineItem() int
	UpdateLineItem(index int, req UpdateLineItemRequest) error
	RemoveLineItem(index int) error

	Reset(confirmed bool) error
}

type formService struct {
	draft               model.InvoiceDraft
	remainingOverridden bool
	dirty               bool
	revision            uint64
	currency            string
}

func NewFormService(currencySymbol string) FormService {
	return &formService{
		draft:    model.NewDraft(),
		currency: currencySymbol,
	}
}

// --- Implementation ---

func (s *formService) Draft() model.InvoiceDraft {
	return s.draft.Clone()
}

func (s *formService) Totals() model.InvoiceTotals {
	return CalculateTotals(s.draft.LineItems)
}

func (s *formService) Revision() uint64 {
	return s.revision
}

func (s *formService) Dirty() bool {
	return s.dirty
}

func (s *formService) State() FormStateResponse {
	totals := s.Totals()
	resp := FormStateResponse{
		Draft: s.Draft(),
		Totals: TotalsResponse{
			ServiceTotal: FormatMoney(s.currency, totals.ServiceTotal),
			Surcharge:    FormatMoney(s.currency, totals.Surcharge),
			GrandTotal:   FormatMoney(s.currency, totals.GrandTotal),
		},
		StatusLabel:         model.PaymentStatusLabel(s.draft.PaymentStatus),
		RemainingOverridden: s.remainingOverridden,
		Dirty:               s.dirty,
		Revision:            s.revision,
	}
	if s.draft.PaymentStatus == model.PaymentHalfPaid && strings.TrimSpace(s.draft.RemainingAmount) != "" {
		resp.RemainingDisplay = model.ParseAmount(s.draft.RemainingAmount).StringFixed(2)
	}
	return resp
}

func (s *formService) UpdateCustomer(req UpdateCustomerRequest) {
	if req.Name != nil {
		s.draft.CustomerName = *req.Name
	}
	if req.Mobile != nil {
		s.draft.CustomerMobile = *req.Mobile
	}
	if req.Email != nil {
		s.draft.CustomerEmail = *req.Email
	}
	if req.Note != nil {
		s.draft.Note = *req.Note
	}
	s.touch()
}

func (s *formService) UpdatePayment(req UpdatePaymentRequest) error {
	if req.Mode != "" && !model.IsValidPaymentMode(req.Mode) {
		return &ValidationError{Field: FieldPaymentMode, Reason: fmt.Sprintf("Unknown payment mode %q.", req.Mode)}
	}
	if req.Status != "" && !model.IsValidPaymentStatus(req.Status) {
		return &ValidationError{Field: FieldPaymentStatus, Reason: fmt.Sprintf("Unknown payment status %q.", req.Status)}
	}

	if req.Mode != "" {
		s.draft.PaymentMode = req.Mode
	}
	if req.Status != "" && req.Status != s.draft.PaymentStatus {
		s.draft.PaymentStatus = req.Status
		s.draft.RemainingAmount = ""
		s.remainingOverridden = false
	}

	s.touch()
	return nil
}

// SetRemainingAmount records a user-entered remaining amount. A value equal to the
// current default keeps the field following the total; anything else pins it.
func (s *formService) SetRemainingAmount(amount string) error {
	if s.draft.PaymentStatus != model.PaymentHalfPaid {
		return &ValidationError{Field: FieldRemainingAmount, Reason: "Remaining amount applies to half-paid invoices only."}
	}

	s.draft.RemainingAmount = amount
	def := DefaultRemaining(s.Totals())
	s.remainingOverridden = strings.TrimSpace(amount) == "" || !model.ParseAmount(amount).Equal(def)
	s.touch()
	return nil
}

func (s *formService) UseDefaultRemaining() error {
	if s.draft.PaymentStatus != model.PaymentHalfPaid {
		return &ValidationError{Field: FieldRemainingAmount, Reason: "Remaining amount applies to half-paid invoices only."}
	}
	s.remainingOverridden = false
	s.touch()
	return nil
}

func (s *formService) AddLineItem() int {
	s.draft.LineItems = append(s.draft.LineItems, model.ServiceLineItem{})
	s.touch()
	return len(s.draft.LineItems) - 1
}

func (s *formService) UpdateLineItem(index int, req UpdateLineItemRequest) error {
	if index < 0 || index >= len(s.draft.LineItems) {
		return ErrLineItemNotFound
	}
	if req.Description != nil {
		s.draft.LineItems[index].Description = *req.Description
	}
	if req.Amount != nil {
		s.draft.LineItems[index].Amount = *req.Amount
	}
	s.touch()
	return nil
}

func (s *formService) RemoveLineItem(index int) error {
	if index < 0 || index >= len(s.draft.LineItems) {
		return ErrLineItemNotFound
	}
	if len(s.draft.LineItems) <= 1 {
		return ErrLastLineItem
	}
	s.draft.LineItems = append(s.draft.LineItems[:index], s.draft.LineItems[index+1:]...)
	s.touch()
	return nil
}

// Reset restores the blank form. A dirty form is only reset when the caller confirms.
func (s *formService) Reset(confirmed bool) error {
	if s.dirty && !confirmed {
		return ErrConfirmationRequired
	}
	s.draft = model.NewDraft()
	s.remainingOverridden = false
	s.dirty = false
	s.revision++
	return nil
}

// --- Helpers ---

// touch marks the form edited and re-derives the remaining amount while it still
// follows the default.
func (s *formService) touch() {
	s.dirty = true
	s.revision++
	if s.draft.PaymentStatus == model.PaymentHalfPaid && !s.remainingOverridden {
		s.draft.RemainingAmount = DefaultRemaining(s.Totals()).String()
	}
}
