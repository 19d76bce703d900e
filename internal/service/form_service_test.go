package service_test

import (
	"errors"
	"testing"

	"invoicedesk/internal/model"
	"invoicedesk/internal/service"
)

func strp(s string) *string { return &s }

func fillForm(t *testing.T, f service.FormService) {
	t.Helper()
	f.UpdateCustomer(service.UpdateCustomerRequest{Name: strp("Asha"), Mobile: strp("9876543210")})
	if err := f.UpdateLineItem(0, service.UpdateLineItemRequest{Description: strp("PAN card"), Amount: strp("200")}); err != nil {
		t.Fatal(err)
	}
	i := f.AddLineItem()
	if err := f.UpdateLineItem(i, service.UpdateLineItemRequest{Description: strp("Aadhaar"), Amount: strp("300")}); err != nil {
		t.Fatal(err)
	}
}

func TestFormService_NewFormIsBlank(t *testing.T) {
	f := service.NewFormService("₹")
	d := f.Draft()
	if d.PaymentMode != model.PaymentModeUPI || d.PaymentStatus != model.PaymentPending {
		t.Fatalf("unexpected defaults: %+v", d)
	}
	if len(d.LineItems) != 1 {
		t.Fatalf("expected one line item, got %d", len(d.LineItems))
	}
	if f.Dirty() {
		t.Fatal("new form should not be dirty")
	}
}

func TestFormService_Totals(t *testing.T) {
	f := service.NewFormService("₹")
	fillForm(t, f)

	st := f.State()
	if st.Totals.ServiceTotal != "₹500.00" || st.Totals.Surcharge != "₹50.00" || st.Totals.GrandTotal != "₹550.00" {
		t.Fatalf("unexpected totals: %+v", st.Totals)
	}
	if !st.Dirty {
		t.Fatal("edited form should be dirty")
	}
}

func TestFormService_RemoveLastLineItemRefused(t *testing.T) {
	f := service.NewFormService("₹")
	if err := f.RemoveLineItem(0); !errors.Is(err, service.ErrLastLineItem) {
		t.Fatalf("err = %v, want ErrLastLineItem", err)
	}

	fillForm(t, f)
	if err := f.RemoveLineItem(5); !errors.Is(err, service.ErrLineItemNotFound) {
		t.Fatalf("err = %v, want ErrLineItemNotFound", err)
	}
	if err := f.RemoveLineItem(0); err != nil {
		t.Fatalf("RemoveLineItem() error = %v", err)
	}
	d := f.Draft()
	if len(d.LineItems) != 1 || d.LineItems[0].Description != "Aadhaar" {
		t.Fatalf("unexpected items after removal: %+v", d.LineItems)
	}
}

func TestFormService_RemainingFollowsDefault(t *testing.T) {
	f := service.NewFormService("₹")
	fillForm(t, f)

	if err := f.UpdatePayment(service.UpdatePaymentRequest{Status: model.PaymentHalfPaid}); err != nil {
		t.Fatal(err)
	}
	if got := f.State().RemainingDisplay; got != "275.00" {
		t.Fatalf("remaining = %s, want 275.00", got)
	}

	// Entering the default keeps it tracking the total.
	if err := f.SetRemainingAmount("275"); err != nil {
		t.Fatal(err)
	}
	if f.State().RemainingOverridden {
		t.Fatal("value equal to default should not pin the field")
	}
	i := f.AddLineItem()
	_ = f.UpdateLineItem(i, service.UpdateLineItemRequest{Description: strp("Photo"), Amount: strp("100")})
	if got := f.State().RemainingDisplay; got != "330.00" {
		t.Fatalf("remaining = %s, want 330.00", got)
	}
}

func TestFormService_RemainingOverrideSurvivesTotalChange(t *testing.T) {
	f := service.NewFormService("₹")
	fillForm(t, f)
	_ = f.UpdatePayment(service.UpdatePaymentRequest{Status: model.PaymentHalfPaid})

	if err := f.SetRemainingAmount("100"); err != nil {
		t.Fatal(err)
	}
	i := f.AddLineItem()
	_ = f.UpdateLineItem(i, service.UpdateLineItemRequest{Description: strp("Photo"), Amount: strp("100")})

	st := f.State()
	if !st.RemainingOverridden || st.RemainingDisplay != "100.00" {
		t.Fatalf("override lost: %+v", st)
	}

	if err := f.UseDefaultRemaining(); err != nil {
		t.Fatal(err)
	}
	if got := f.State().RemainingDisplay; got != "330.00" {
		t.Fatalf("remaining after reset to default = %s, want 330.00", got)
	}
}

func TestFormService_LeavingHalfPaidClearsRemaining(t *testing.T) {
	f := service.NewFormService("₹")
	fillForm(t, f)
	_ = f.UpdatePayment(service.UpdatePaymentRequest{Status: model.PaymentHalfPaid})
	_ = f.SetRemainingAmount("100")
	_ = f.UpdatePayment(service.UpdatePaymentRequest{Status: model.PaymentPaid})

	st := f.State()
	if st.Draft.RemainingAmount != "" || st.RemainingOverridden {
		t.Fatalf("remaining not cleared: %+v", st)
	}
	if err := f.SetRemainingAmount("10"); err == nil {
		t.Fatal("expected error setting remaining on a paid invoice")
	}
}

func TestFormService_UpdatePaymentRejectsUnknownValues(t *testing.T) {
	f := service.NewFormService("₹")
	var verr *service.ValidationError
	if err := f.UpdatePayment(service.UpdatePaymentRequest{Mode: "Cheque"}); !errors.As(err, &verr) || verr.Field != service.FieldPaymentMode {
		t.Fatalf("err = %v", err)
	}
	if err := f.UpdatePayment(service.UpdatePaymentRequest{Status: "overdue"}); !errors.As(err, &verr) || verr.Field != service.FieldPaymentStatus {
		t.Fatalf("err = %v", err)
	}
}

func TestFormService_RejectedPaymentUpdateLeavesDraft(t *testing.T) {
	f := service.NewFormService("₹")
	fillForm(t, f)
	before := f.Revision()

	var verr *service.ValidationError
	err := f.UpdatePayment(service.UpdatePaymentRequest{Mode: model.PaymentModeCash, Status: "bogus"})
	if !errors.As(err, &verr) || verr.Field != service.FieldPaymentStatus {
		t.Fatalf("err = %v", err)
	}
	d := f.Draft()
	if d.PaymentMode != model.PaymentModeUPI {
		t.Fatalf("mode = %q, want unchanged %q", d.PaymentMode, model.PaymentModeUPI)
	}
	if f.Revision() != before {
		t.Fatalf("revision = %d, want %d", f.Revision(), before)
	}

	if err := f.UpdatePayment(service.UpdatePaymentRequest{Mode: model.PaymentModeCash, Status: model.PaymentPaid}); err != nil {
		t.Fatal(err)
	}
	if f.Draft().PaymentMode != model.PaymentModeCash || f.Revision() == before {
		t.Fatalf("valid update not applied: mode %q revision %d", f.Draft().PaymentMode, f.Revision())
	}
}

func TestFormService_Reset(t *testing.T) {
	f := service.NewFormService("₹")
	if err := f.Reset(false); err != nil {
		t.Fatalf("reset of clean form should not need confirmation: %v", err)
	}

	fillForm(t, f)
	rev := f.Revision()
	if err := f.Reset(false); !errors.Is(err, service.ErrConfirmationRequired) {
		t.Fatalf("err = %v, want ErrConfirmationRequired", err)
	}
	if f.Revision() != rev {
		t.Fatal("refused reset must not change the form")
	}
	if err := f.Reset(true); err != nil {
		t.Fatal(err)
	}
	d := f.Draft()
	if f.Dirty() || d.CustomerName != "" || len(d.LineItems) != 1 || d.LineItems[0].Amount != "" {
		t.Fatalf("form not reset: %+v", d)
	}
	if f.Revision() == rev {
		t.Fatal("reset should bump the revision")
	}
}

func TestFormService_DraftIsACopy(t *testing.T) {
	f := service.NewFormService("₹")
	d := f.Draft()
	d.LineItems[0].Description = "changed"
	if f.Draft().LineItems[0].Description != "" {
		t.Fatal("mutating the returned draft changed the form")
	}
}
