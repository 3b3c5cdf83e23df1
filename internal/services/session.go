// Package services contains the application flows of the bingotrack client:
// authentication, password reset, and the vendor's number collection. Each
// flow is a small state machine over the backend Client; every branch is
// terminal per attempt and the user must resubmit after a failure.
package services

import (
	"context"
	"errors"

	"bingotrack/internal/client"
	"bingotrack/internal/logging"
	"bingotrack/internal/models"
)

// Stage of the authentication flow.
type Stage int

const (
	StageCredentials Stage = iota
	StageCodeEntry
	StageAuthenticated
)

// Local validation errors, detected before any network call. They are always
// user-facing and never logged.
var (
	ErrFieldsRequired    = errors.New("all fields are required")
	ErrEmailRequired     = errors.New("email is required")
	ErrCodeFormat        = errors.New("verification code must be exactly 6 digits")
	ErrIncorrectCode     = errors.New("incorrect code, try again")
	ErrNoPendingCode     = errors.New("no verification is pending")
	ErrSessionRecovery   = errors.New("could not recover the vendor session after verification")
	ErrNotAuthenticated  = errors.New("not logged in")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters")
	ErrNoResetInProgress = errors.New("request a reset code first")
)

// SessionFlow drives the two-step credentials -> code -> authenticated state
// machine for both login and registration. Pending credentials are kept only
// while verification is outstanding and discarded on success or Reset.
type SessionFlow struct {
	client client.Client
	logger logging.Logger

	stage           Stage
	pendingEmail    string
	pendingPassword string
	session         *models.VendorSession
}

// NewSessionFlow returns a flow in the Credentials stage.
func NewSessionFlow(c client.Client, logger logging.Logger) *SessionFlow {
	return &SessionFlow{client: c, logger: logger.With("flow", "session")}
}

// Stage returns the current stage.
func (f *SessionFlow) Stage() Stage {
	return f.stage
}

// Session returns the authenticated vendor, or nil before authentication.
func (f *SessionFlow) Session() *models.VendorSession {
	return f.session
}

// SubmitCredentials performs a login (isLogin true) or registration attempt.
//
// Transitions:
//   - login answered with the "account not verified" sentinel: move to
//     CodeEntry, keeping email+password for re-authentication afterwards.
//   - registration answered with a vendor id: move to CodeEntry (new accounts
//     always verify).
//   - any response carrying a vendor id otherwise: move to Authenticated.
//   - anything else: stay in Credentials; the backend message is the error.
func (f *SessionFlow) SubmitCredentials(ctx context.Context, isLogin bool, name, email, password string) error {
	if email == "" || password == "" || (!isLogin && name == "") {
		return ErrFieldsRequired
	}

	var (
		res *client.AuthResult
		err error
	)
	if isLogin {
		res, err = f.client.AuthenticateVendor(ctx, email, password)
	} else {
		res, err = f.client.CreateVendor(ctx, name, email, password)
	}
	if err != nil {
		return err
	}

	if isLogin && client.IsAccountNotVerified(res.Message) {
		f.toCodeEntry(email, password)
		f.logger.Info(ctx, "verification required", "email", email)
		return nil
	}

	if !isLogin && res.Authenticated() {
		f.toCodeEntry(email, password)
		f.logger.Info(ctx, "registered, verification required", "email", email)
		return nil
	}

	if res.Authenticated() {
		f.toAuthenticated(res)
		f.logger.Info(ctx, "authenticated", "vendor_id", res.VendorID)
		return nil
	}

	return client.Remote(res.Message)
}

// SubmitCode validates the 6-digit verification code and, on the exact
// success match, re-authenticates with the stored credentials. Any other
// backend message keeps the flow in CodeEntry with a generic error.
func (f *SessionFlow) SubmitCode(ctx context.Context, code string) error {
	if !isSixDigits(code) {
		return ErrCodeFormat
	}
	if f.stage != StageCodeEntry {
		return ErrNoPendingCode
	}

	msg, err := f.client.ValidateCode(ctx, f.pendingEmail, code)
	if err != nil {
		return err
	}
	if !client.IsCodeValidated(msg) {
		return ErrIncorrectCode
	}

	res, err := f.client.AuthenticateVendor(ctx, f.pendingEmail, f.pendingPassword)
	if err != nil {
		return err
	}
	if !res.Authenticated() {
		return ErrSessionRecovery
	}

	f.toAuthenticated(res)
	f.logger.Info(ctx, "verified and authenticated", "vendor_id", res.VendorID)
	return nil
}

// ResendCode asks the backend to send a fresh verification code. The backend
// message is returned verbatim for display.
func (f *SessionFlow) ResendCode(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", ErrEmailRequired
	}
	return f.client.ResendCode(ctx, email)
}

// PendingEmail returns the email awaiting verification, if any.
func (f *SessionFlow) PendingEmail() string {
	return f.pendingEmail
}

// Reset returns the flow to the unauthenticated Credentials stage, dropping
// the session and any pending verification state. Used on logout and when
// navigating away from verification.
func (f *SessionFlow) Reset() {
	f.stage = StageCredentials
	f.pendingEmail = ""
	f.pendingPassword = ""
	f.session = nil
}

func (f *SessionFlow) toCodeEntry(email, password string) {
	f.stage = StageCodeEntry
	f.pendingEmail = email
	f.pendingPassword = password
	f.session = nil
}

func (f *SessionFlow) toAuthenticated(res *client.AuthResult) {
	f.stage = StageAuthenticated
	f.session = &models.VendorSession{
		VendorID:      res.VendorID,
		Name:          res.Name,
		Email:         res.Email,
		Authenticated: true,
	}
	f.pendingEmail = ""
	f.pendingPassword = ""
}

func isSixDigits(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
