// Package models defines the vendor's domain types: sellable numbers, the
// authenticated session, and the filtered/sorted views derived for display.
package models

import (
	"fmt"
	"strings"
)

// Number range and installment bounds enforced by the backend.
const (
	MinNumber       = 1
	MaxNumber       = 26000
	MaxInstallments = 12
)

// Status of a number: sold to a client or still available. The wire values
// are Spanish, matching the backend; comparison is case-insensitive.
type Status string

const (
	StatusSold      Status = "Vendido"
	StatusAvailable Status = "Disponible"
)

// ParseStatus matches s against the known statuses, ignoring case.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case strings.ToLower(string(StatusSold)):
		return StatusSold, true
	case strings.ToLower(string(StatusAvailable)):
		return StatusAvailable, true
	}
	return "", false
}

// Is reports whether s equals other, ignoring case.
func (s Status) Is(other Status) bool {
	return strings.EqualFold(string(s), string(other))
}

// NumberRecord is one sellable unit owned by a vendor. Number uniquely
// identifies the record within the vendor's collection.
type NumberRecord struct {
	Number           int    `json:"number"`
	Client           string `json:"client"`
	Status           Status `json:"status"`
	InstallmentsPaid int    `json:"installmentsPaid"`
}

// PaddedNumber returns the canonical 5-digit zero-padded form of the number.
func (r NumberRecord) PaddedNumber() string {
	return fmt.Sprintf("%05d", r.Number)
}

// ClientDisplay returns the client name, or a placeholder when unassigned.
func (r NumberRecord) ClientDisplay() string {
	if r.Client == "" {
		return "Sin asignar"
	}
	return r.Client
}

// InstallmentsDisplay renders the installments counter as the name of the
// last paid month, or "Ninguna" when nothing has been paid yet.
func (r NumberRecord) InstallmentsDisplay() string {
	return MonthName(r.InstallmentsPaid)
}

var months = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName maps an installment count (1..12) to its month name.
// Zero and out-of-range values render as "Ninguna".
func MonthName(n int) string {
	if n < 1 || n > MaxInstallments {
		return "Ninguna"
	}
	return months[n-1]
}

// PadToken left-pads a raw number token to 5 characters with zeros.
// Tokens already 5 characters or longer are returned unchanged.
func PadToken(s string) string {
	s = strings.TrimSpace(s)
	for len(s) < 5 {
		s = "0" + s
	}
	return s
}

// ValidNumber reports whether n is inside the sellable range.
func ValidNumber(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}
