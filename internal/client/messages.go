package client

import (
	"fmt"
	"strings"
)

// The backend signals success by message wording alone; there is no status
// code in the protocol. Every literal lives here so a backend wording change
// is a one-file edit.
const (
	msgAccountNotVerified = "account not verified"
	msgCodeValidated      = "Code validated successfully"
	msgCodeResent         = "Code resent successfully"
	msgPasswordUpdated    = "Password updated successfully"
	msgNumbersAdded       = "Numbers added successfully"
	msgNumberUpdated      = "Number updated successfully"
)

// IsAccountNotVerified reports the login sentinel that routes the user into
// code verification instead of a session.
func IsAccountNotVerified(msg string) bool { return msg == msgAccountNotVerified }

// IsCodeValidated reports a successful validateCode response.
func IsCodeValidated(msg string) bool { return msg == msgCodeValidated }

// IsCodeResent reports a successful resendCode response.
func IsCodeResent(msg string) bool { return msg == msgCodeResent }

// IsPasswordUpdated reports a successful changePassword response.
func IsPasswordUpdated(msg string) bool { return msg == msgPasswordUpdated }

// IsNumbersAdded reports a successful addNumbers response. The backend
// appends the accepted numbers to the message, so this is a substring match.
func IsNumbersAdded(msg string) bool { return strings.Contains(msg, msgNumbersAdded) }

// IsNumberUpdated reports a successful editNumber response.
func IsNumberUpdated(msg string) bool { return msg == msgNumberUpdated }

// SyntheticFailure is the uniform message substituted for an action whose
// request could not be completed (network or parse failure).
func SyntheticFailure(action string) string {
	return fmt.Sprintf("Error processing the %s request", action)
}
