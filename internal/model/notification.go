package model

// Notification levels
const (
	NotifySuccess = "success"
	NotifyError   = "error"
)

// Notification is a user-visible message pushed to connected pages.
type Notification struct {
	Level     string `json:"level"`
	Event     string `json:"event"`
	Message   string `json:"message"`
	InvoiceID string `json:"invoice_id,omitempty"`
	Channel   string `json:"channel,omitempty"`
}
