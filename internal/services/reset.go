package services

import (
	"context"

	"bingotrack/internal/client"
	"bingotrack/internal/logging"
)

// ResetStage of the password-reset flow.
type ResetStage int

const (
	ResetAwaitingEmail ResetStage = iota
	ResetAwaitingCodeAndPassword
	ResetDone
)

// PasswordResetFlow is the two-step send-code / submit-new-password flow.
// On completion the caller must return to the authentication entry point.
type PasswordResetFlow struct {
	client client.Client
	logger logging.Logger
	stage  ResetStage
}

// NewPasswordResetFlow returns a flow awaiting the vendor's email.
func NewPasswordResetFlow(c client.Client, logger logging.Logger) *PasswordResetFlow {
	return &PasswordResetFlow{client: c, logger: logger.With("flow", "reset")}
}

// Stage returns the current stage.
func (f *PasswordResetFlow) Stage() ResetStage {
	return f.stage
}

// RequestCode asks the backend to email a reset code. Only the exact resend
// success message advances the flow; any other message is surfaced and the
// flow stays where it is.
func (f *PasswordResetFlow) RequestCode(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", ErrEmailRequired
	}

	msg, err := f.client.ResendCode(ctx, email)
	if err != nil {
		return "", err
	}
	if !client.IsCodeResent(msg) {
		return "", client.Remote(msg)
	}

	f.stage = ResetAwaitingCodeAndPassword
	f.logger.Info(ctx, "reset code sent", "email", email)
	return msg, nil
}

// SubmitNewPassword validates locally (all fields present, code exactly six
// digits, password at least six characters) before any network call, then
// submits the change. The exact success message completes the flow.
func (f *PasswordResetFlow) SubmitNewPassword(ctx context.Context, email, code, newPassword string) (string, error) {
	if f.stage != ResetAwaitingCodeAndPassword {
		return "", ErrNoResetInProgress
	}
	if email == "" || code == "" || newPassword == "" {
		return "", ErrFieldsRequired
	}
	if !isSixDigits(code) {
		return "", ErrCodeFormat
	}
	if len(newPassword) < 6 {
		return "", ErrPasswordTooShort
	}

	msg, err := f.client.ChangePassword(ctx, email, code, newPassword)
	if err != nil {
		return "", err
	}
	if !client.IsPasswordUpdated(msg) {
		return "", client.Remote(msg)
	}

	f.stage = ResetDone
	f.logger.Info(ctx, "password updated", "email", email)
	return msg, nil
}
