package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"bingotrack/internal/client"
	"bingotrack/internal/logging"
	"bingotrack/internal/models"
	"bingotrack/internal/services"
)

// fakeClient is an in-memory backend for command tests. Auth results are
// consumed from authSeq in order; string-returning actions answer with the
// message canned per action name.
type fakeClient struct {
	authSeq []*client.AuthResult
	msgs    map[string]string
	records []models.NumberRecord

	calls       []string
	lastEmail   string
	lastNumbers []string
	lastEdit    struct {
		Number       int
		Client       string
		Status       models.Status
		Installments int
	}
	lastDeleted int
}

func (f *fakeClient) nextAuth() *client.AuthResult {
	if len(f.authSeq) == 0 {
		return &client.AuthResult{Message: "Invalid credentials"}
	}
	res := f.authSeq[0]
	f.authSeq = f.authSeq[1:]
	return res
}

func (f *fakeClient) msg(action string) string {
	if m, ok := f.msgs[action]; ok {
		return m
	}
	return "no canned message"
}

func (f *fakeClient) CreateVendor(_ context.Context, name, email, password string) (*client.AuthResult, error) {
	f.calls = append(f.calls, "createVendor")
	f.lastEmail = email
	return f.nextAuth(), nil
}

func (f *fakeClient) AuthenticateVendor(_ context.Context, email, password string) (*client.AuthResult, error) {
	f.calls = append(f.calls, "authenticateVendor")
	f.lastEmail = email
	return f.nextAuth(), nil
}

func (f *fakeClient) ValidateCode(_ context.Context, email, code string) (string, error) {
	f.calls = append(f.calls, "validateCode")
	f.lastEmail = email
	return f.msg("validateCode"), nil
}

func (f *fakeClient) ResendCode(_ context.Context, email string) (string, error) {
	f.calls = append(f.calls, "resendCode")
	f.lastEmail = email
	return f.msg("resendCode"), nil
}

func (f *fakeClient) ChangePassword(_ context.Context, email, code, newPassword string) (string, error) {
	f.calls = append(f.calls, "changePassword")
	f.lastEmail = email
	return f.msg("changePassword"), nil
}

func (f *fakeClient) AddNumbers(_ context.Context, vendorID int64, numbers []string) (string, error) {
	f.calls = append(f.calls, "addNumbers")
	f.lastNumbers = append([]string(nil), numbers...)
	return f.msg("addNumbers"), nil
}

func (f *fakeClient) EditNumber(_ context.Context, vendorID int64, number int, clientName string, status models.Status, installmentsPaid int) (string, error) {
	f.calls = append(f.calls, "editNumber")
	f.lastEdit.Number = number
	f.lastEdit.Client = clientName
	f.lastEdit.Status = status
	f.lastEdit.Installments = installmentsPaid
	return f.msg("editNumber"), nil
}

func (f *fakeClient) DeleteNumber(_ context.Context, vendorID int64, number int) (string, error) {
	f.calls = append(f.calls, "deleteNumber")
	f.lastDeleted = number
	return f.msg("deleteNumber"), nil
}

func (f *fakeClient) GetNumbers(_ context.Context, vendorID int64) ([]models.NumberRecord, error) {
	f.calls = append(f.calls, "getNumbers")
	return f.records, nil
}

var _ client.Client = (*fakeClient)(nil)

// newTestApp wires an App over the fake backend, reading from an empty
// stdin replacement. Tests needing raw reader input replace a.reader.
func newTestApp(c client.Client) *App {
	logger := logging.NewZerologLogger(io.Discard, "debug", "json")
	return &App{
		logger:  logger,
		api:     c,
		session: services.NewSessionFlow(c, logger),
		numbers: services.NewNumberService(c, logger),
		viewer:  models.NewViewer("es"),
		filter:  models.EmptyFilter(),
		sortBy:  models.DefaultSort(),
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

// stubTextQueue replaces the text input seam with a queue of canned answers.
func stubTextQueue(t *testing.T, values ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(values) {
			return "", io.EOF
		}
		v := values[i]
		i++
		return v, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

// captureOutput redirects printlnFn into the returned slice.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	lines := &[]string{}
	printlnFn = func(args ...any) (int, error) {
		*lines = append(*lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return lines
}

func outputContains(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}
