package service

import (
	"regexp"
	"strings"

	"invoicedesk/internal/model"
)

var (
	mobilePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateDraft returns the first failing check as a *ValidationError, or nil.
// The order of the checks is fixed; the draft is never modified.
func ValidateDraft(d model.InvoiceDraft) error {
	if strings.TrimSpace(d.CustomerName) == "" {
		return &ValidationError{Field: FieldCustomerName, Reason: "Please enter customer name."}
	}

	mobile := strings.TrimSpace(d.CustomerMobile)
	if mobile == "" {
		return &ValidationError{Field: FieldCustomerMobile, Reason: "Please enter mobile number."}
	}
	if !mobilePattern.MatchString(d.CustomerMobile) {
		return &ValidationError{Field: FieldCustomerMobile, Reason: "Please enter valid 10-digit mobile number."}
	}

	if email := strings.TrimSpace(d.CustomerEmail); email != "" && !emailPattern.MatchString(email) {
		return &ValidationError{Field: FieldCustomerEmail, Reason: "Please enter valid email address."}
	}

	if !hasBillableItem(d.LineItems) {
		return &ValidationError{Field: FieldLineItems, Reason: "Please add at least one service with description and amount > 0."}
	}

	if d.PaymentStatus == model.PaymentHalfPaid {
		if strings.TrimSpace(d.RemainingAmount) == "" || !model.ParseAmount(d.RemainingAmount).IsPositive() {
			return &ValidationError{Field: FieldRemainingAmount, Reason: "Please enter valid remaining amount for half-paid status."}
		}
	}

	return nil
}

func hasBillableItem(items []model.ServiceLineItem) bool {
	for _, item := range items {
		if strings.TrimSpace(item.Description) != "" && model.ParseAmount(item.Amount).IsPositive() {
			return true
		}
	}
	return false
}
