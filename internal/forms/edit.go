package forms

import (
	"context"
	"fmt"
	"strings"

	"bingotrack/internal/models"
	"bingotrack/internal/services"
)

// FieldError reports the first invalid field of a draft, so the UI can point
// at the field instead of showing a global error.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Editor is the slice of the number service the edit form needs.
type Editor interface {
	EditNumber(ctx context.Context, vendorID int64, number int, clientName string, status models.Status, installmentsPaid int) (string, error)
}

// EditForm is a draft over one selected record. The number itself is fixed;
// client, status and installments are editable.
type EditForm struct {
	Number int

	client       string
	status       string
	installments int
	busy         bool
}

// NewEditForm seeds a draft from the selected record.
func NewEditForm(r models.NumberRecord) *EditForm {
	return &EditForm{
		Number:       r.Number,
		client:       r.Client,
		status:       string(r.Status),
		installments: r.InstallmentsPaid,
	}
}

func (f *EditForm) Client() string    { return f.client }
func (f *EditForm) Status() string    { return f.status }
func (f *EditForm) Installments() int { return f.installments }
func (f *EditForm) Busy() bool        { return f.busy }

// SetClient replaces the draft client name.
func (f *EditForm) SetClient(name string) {
	f.client = name
}

// SetStatus replaces the draft status. The raw value is kept; Validate
// decides whether it is acceptable.
func (f *EditForm) SetStatus(status string) {
	f.status = status
}

// Increment raises installments by one, clamped at the upper bound. At the
// bound it is a no-op.
func (f *EditForm) Increment() {
	if f.installments < models.MaxInstallments {
		f.installments++
	}
}

// Decrement lowers installments by one, clamped at zero.
func (f *EditForm) Decrement() {
	if f.installments > 0 {
		f.installments--
	}
}

// AtMax reports whether the increment control should be disabled.
func (f *EditForm) AtMax() bool { return f.installments >= models.MaxInstallments }

// AtMin reports whether the decrement control should be disabled.
func (f *EditForm) AtMin() bool { return f.installments <= 0 }

// Validate checks the draft field by field and returns the first violation.
func (f *EditForm) Validate() error {
	if strings.TrimSpace(f.client) == "" {
		return &FieldError{Field: "client", Reason: "name is required"}
	}
	if _, ok := models.ParseStatus(f.status); !ok {
		return &FieldError{Field: "status", Reason: "must be Vendido or Disponible"}
	}
	if f.installments < 0 || f.installments > models.MaxInstallments {
		return &FieldError{Field: "installmentsPaid", Reason: fmt.Sprintf("must be between 0 and %d", models.MaxInstallments)}
	}
	return nil
}

// Submit validates the draft and sends it through the number service. The
// busy flag suppresses a concurrent second submission; it is cleared on every
// path, success or failure.
func (f *EditForm) Submit(ctx context.Context, svc Editor, vendorID int64) (string, error) {
	if f.busy {
		return "", ErrBusy
	}
	f.busy = true
	defer func() { f.busy = false }()

	if err := f.Validate(); err != nil {
		return "", err
	}

	status, _ := models.ParseStatus(f.status)
	return svc.EditNumber(ctx, vendorID, f.Number, f.client, status, f.installments)
}

var _ Editor = (*services.NumberService)(nil)
var _ Submitter = (*services.NumberService)(nil)
