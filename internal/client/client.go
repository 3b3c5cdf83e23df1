// Package client implements the backend RPC protocol: every action is a JSON
// POST of {action, params} to a single fixed endpoint, answered by a JSON
// object that by convention carries a "message" field plus action-specific
// payload fields.
package client

import (
	"context"

	"bingotrack/internal/models"
)

// AuthResult is the response shape of createVendor and authenticateVendor.
// A non-zero VendorID is the success signal; Message carries the backend's
// wording otherwise.
type AuthResult struct {
	VendorID int64
	Name     string
	Email    string
	Message  string
}

// Authenticated reports whether the backend returned a vendor identity.
func (r *AuthResult) Authenticated() bool {
	return r != nil && r.VendorID != 0
}

// Client is the backend surface, one method per recognized action.
//
// Methods returning a bare string return the backend's message verbatim;
// interpreting it is the caller's job (see messages.go). Transport and parse
// failures come back as a *RemoteError carrying the synthetic per-action
// message. Exactly one attempt is made per call: no retry, no backoff.
type Client interface {
	CreateVendor(ctx context.Context, name, email, password string) (*AuthResult, error)
	AuthenticateVendor(ctx context.Context, email, password string) (*AuthResult, error)
	ValidateCode(ctx context.Context, email, code string) (string, error)
	ResendCode(ctx context.Context, email string) (string, error)
	ChangePassword(ctx context.Context, email, code, newPassword string) (string, error)
	AddNumbers(ctx context.Context, vendorID int64, numbers []string) (string, error)
	EditNumber(ctx context.Context, vendorID int64, number int, client string, status models.Status, installmentsPaid int) (string, error)
	DeleteNumber(ctx context.Context, vendorID int64, number int) (string, error)
	GetNumbers(ctx context.Context, vendorID int64) ([]models.NumberRecord, error)
}
