package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for form and export state conflicts.
var (
	ErrLastLineItem         = errors.New("you need at least one service item")
	ErrLineItemNotFound     = errors.New("service item not found")
	ErrConfirmationRequired = errors.New("unsaved changes will be lost, confirmation required")
	ErrInvalidTransition    = errors.New("action not allowed in current export state")
	ErrNoExport             = errors.New("please generate the invoice first")
	ErrPreviewOutdated      = errors.New("the form changed after the preview was generated, generate the invoice again")
)

// Fields reported by ValidationError.
const (
	FieldCustomerName    = "customer_name"
	FieldCustomerMobile  = "customer_mobile"
	FieldCustomerEmail   = "customer_email"
	FieldLineItems       = "line_items"
	FieldRemainingAmount = "remaining_amount"
	FieldPaymentMode     = "payment_mode"
	FieldPaymentStatus   = "payment_status"
)

// ValidationError is a correctable input defect tied to one form field.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ExportGenerationError reports a rasterizing or document assembly failure
// that survived the fallback attempt.
type ExportGenerationError struct {
	Stage string
	Err   error
}

func (e *ExportGenerationError) Error() string {
	return fmt.Sprintf("error generating invoice (%s): %v", e.Stage, e.Err)
}

func (e *ExportGenerationError) Unwrap() error {
	return e.Err
}

// Delivery channels
const (
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
	ChannelDownload = "download"
)

// DeliveryPreconditionError means one channel cannot be used with the current
// customer details. Other channels are unaffected.
type DeliveryPreconditionError struct {
	Channel string `json:"channel"`
	Reason  string `json:"reason"`
}

func (e *DeliveryPreconditionError) Error() string {
	return e.Reason
}

// DeliveryError wraps a collaborator failure for one channel, e.g. the email API rejecting a send.
type DeliveryError struct {
	Channel string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s delivery failed: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
