package services

import (
	"context"
	"io"

	"bingotrack/internal/client"
	"bingotrack/internal/logging"
	"bingotrack/internal/models"
)

func testLogger() logging.Logger {
	return logging.NewZerologLogger(io.Discard, "error", "json")
}

// fakeClient implements client.Client for unit tests. Each method returns the
// configured result and records the last arguments it was called with.
type fakeClient struct {
	createRes *client.AuthResult
	createErr error

	authRes  *client.AuthResult
	authErr  error
	authSeq  []*client.AuthResult // optional: consecutive results, consumed in order
	authCall int

	validateMsg string
	validateErr error

	resendMsg string
	resendErr error

	changeMsg string
	changeErr error

	addMsg string
	addErr error

	editMsg string
	editErr error

	deleteMsg string
	deleteErr error

	getNumbersRes []models.NumberRecord
	getNumbersErr error

	lastCreateName, lastCreateEmail, lastCreatePassword string
	lastAuthEmail, lastAuthPassword                     string
	lastValidateEmail, lastValidateCode                 string
	lastResendEmail                                     string
	lastChangeEmail, lastChangeCode, lastChangePassword string
	lastAddVendorID                                     int64
	lastAddNumbers                                      []string
	lastEditVendorID                                    int64
	lastEditNumber                                      int
	lastEditClient                                      string
	lastEditStatus                                      models.Status
	lastEditInstallments                                int
	lastDeleteVendorID                                  int64
	lastDeleteNumber                                    int
	lastGetVendorID                                     int64

	calls []string
}

func (f *fakeClient) CreateVendor(_ context.Context, name, email, password string) (*client.AuthResult, error) {
	f.calls = append(f.calls, "createVendor")
	f.lastCreateName, f.lastCreateEmail, f.lastCreatePassword = name, email, password
	return f.createRes, f.createErr
}

func (f *fakeClient) AuthenticateVendor(_ context.Context, email, password string) (*client.AuthResult, error) {
	f.calls = append(f.calls, "authenticateVendor")
	f.lastAuthEmail, f.lastAuthPassword = email, password
	if len(f.authSeq) > 0 {
		res := f.authSeq[f.authCall%len(f.authSeq)]
		f.authCall++
		return res, f.authErr
	}
	return f.authRes, f.authErr
}

func (f *fakeClient) ValidateCode(_ context.Context, email, code string) (string, error) {
	f.calls = append(f.calls, "validateCode")
	f.lastValidateEmail, f.lastValidateCode = email, code
	return f.validateMsg, f.validateErr
}

func (f *fakeClient) ResendCode(_ context.Context, email string) (string, error) {
	f.calls = append(f.calls, "resendCode")
	f.lastResendEmail = email
	return f.resendMsg, f.resendErr
}

func (f *fakeClient) ChangePassword(_ context.Context, email, code, newPassword string) (string, error) {
	f.calls = append(f.calls, "changePassword")
	f.lastChangeEmail, f.lastChangeCode, f.lastChangePassword = email, code, newPassword
	return f.changeMsg, f.changeErr
}

func (f *fakeClient) AddNumbers(_ context.Context, vendorID int64, numbers []string) (string, error) {
	f.calls = append(f.calls, "addNumbers")
	f.lastAddVendorID = vendorID
	f.lastAddNumbers = append([]string(nil), numbers...)
	return f.addMsg, f.addErr
}

func (f *fakeClient) EditNumber(_ context.Context, vendorID int64, number int, clientName string, status models.Status, installmentsPaid int) (string, error) {
	f.calls = append(f.calls, "editNumber")
	f.lastEditVendorID, f.lastEditNumber = vendorID, number
	f.lastEditClient, f.lastEditStatus, f.lastEditInstallments = clientName, status, installmentsPaid
	return f.editMsg, f.editErr
}

func (f *fakeClient) DeleteNumber(_ context.Context, vendorID int64, number int) (string, error) {
	f.calls = append(f.calls, "deleteNumber")
	f.lastDeleteVendorID, f.lastDeleteNumber = vendorID, number
	return f.deleteMsg, f.deleteErr
}

func (f *fakeClient) GetNumbers(_ context.Context, vendorID int64) ([]models.NumberRecord, error) {
	f.calls = append(f.calls, "getNumbers")
	f.lastGetVendorID = vendorID
	return f.getNumbersRes, f.getNumbersErr
}

var _ client.Client = (*fakeClient)(nil)
