package services

import (
	"context"
	"errors"
	"strings"

	"bingotrack/internal/client"
	"bingotrack/internal/logging"
	"bingotrack/internal/models"
)

// Local validation errors for number operations.
var (
	ErrNoNumbers         = errors.New("enter at least one number")
	ErrClientRequired    = errors.New("client name is required")
	ErrStatusInvalid     = errors.New("status must be Vendido or Disponible")
	ErrInstallmentsRange = errors.New("installments paid must be between 0 and 12")
)

// NumberService owns the operations on a vendor's number collection. The
// backend stays the single source of truth: after any mutation the caller
// re-fetches with FetchAll instead of patching local state.
type NumberService struct {
	client client.Client
	logger logging.Logger
}

// NewNumberService binds the service to the backend client.
func NewNumberService(c client.Client, logger logging.Logger) *NumberService {
	return &NumberService{client: c, logger: logger.With("service", "numbers")}
}

// FetchAll retrieves the vendor's full collection. A missing or empty payload
// is an empty collection, never an error.
func (s *NumberService) FetchAll(ctx context.Context, vendorID int64) ([]models.NumberRecord, error) {
	return s.client.GetNumbers(ctx, vendorID)
}

// NormalizeNumbers splits a comma-separated list, trims each token, pads it
// to the canonical 5-digit form and drops tokens that pad to "00000" (zero or
// blank entries). Order is preserved; duplicates are left for the backend to
// resolve.
func NormalizeNumbers(rawList string) []string {
	tokens := strings.Split(rawList, ",")
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		padded := models.PadToken(tok)
		if padded == "00000" {
			continue
		}
		out = append(out, padded)
	}
	return out
}

// AddNumbers sends the normalized list to the backend. A nil error means the
// response message contained the add-success wording and the caller should
// clear its draft and re-fetch; any other message comes back as the error.
func (s *NumberService) AddNumbers(ctx context.Context, vendorID int64, rawList string) (string, error) {
	numbers := NormalizeNumbers(rawList)
	if len(numbers) == 0 {
		return "", ErrNoNumbers
	}

	msg, err := s.client.AddNumbers(ctx, vendorID, numbers)
	if err != nil {
		return "", err
	}
	if !client.IsNumbersAdded(msg) {
		return "", client.Remote(msg)
	}

	s.logger.Info(ctx, "numbers added", "vendor_id", vendorID, "count", len(numbers))
	return msg, nil
}

// EditNumber updates one record's client, status and installments. Success is
// recognized only by the exact update message; on any other message local
// state stays untouched and the caller must re-fetch to see the authoritative
// result.
func (s *NumberService) EditNumber(ctx context.Context, vendorID int64, number int, clientName string, status models.Status, installmentsPaid int) (string, error) {
	if strings.TrimSpace(clientName) == "" {
		return "", ErrClientRequired
	}
	parsed, ok := models.ParseStatus(string(status))
	if !ok {
		return "", ErrStatusInvalid
	}
	if installmentsPaid < 0 || installmentsPaid > models.MaxInstallments {
		return "", ErrInstallmentsRange
	}

	msg, err := s.client.EditNumber(ctx, vendorID, number, clientName, parsed, installmentsPaid)
	if err != nil {
		return "", err
	}
	if !client.IsNumberUpdated(msg) {
		return "", client.Remote(msg)
	}

	s.logger.Info(ctx, "number updated", "vendor_id", vendorID, "number", number)
	return msg, nil
}

// DeleteNumber removes one record. The backend message is always surfaced,
// success or not, and the caller re-fetches the collection regardless.
func (s *NumberService) DeleteNumber(ctx context.Context, vendorID int64, number int) (string, error) {
	msg, err := s.client.DeleteNumber(ctx, vendorID, number)
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "number delete requested", "vendor_id", vendorID, "number", number)
	return msg, nil
}
