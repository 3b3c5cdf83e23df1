package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bingotrack/internal/logging"
	"bingotrack/internal/models"
)

func testLogger() logging.Logger {
	return logging.NewZerologLogger(io.Discard, "error", "json")
}

// backendStub records the last request body and replies with a fixed JSON body.
type backendStub struct {
	lastBody map[string]any
	reply    string
	status   int
}

func (b *backendStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		b.lastBody = map[string]any{}
		_ = json.Unmarshal(raw, &b.lastBody)
		if b.status != 0 {
			w.WriteHeader(b.status)
		}
		_, _ = w.Write([]byte(b.reply))
	}
}

func TestHTTPClient_AuthenticateVendor(t *testing.T) {
	stub := &backendStub{reply: `{"vendorId": 7, "name": "Ana", "email": "a@b.com", "message": "ok"}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testLogger())
	res, err := c.AuthenticateVendor(context.Background(), "a@b.com", "secret")

	require.NoError(t, err)
	assert.True(t, res.Authenticated())
	assert.Equal(t, int64(7), res.VendorID)
	assert.Equal(t, "Ana", res.Name)

	assert.Equal(t, "authenticateVendor", stub.lastBody["action"])
	params := stub.lastBody["params"].(map[string]any)
	assert.Equal(t, "a@b.com", params["email"])
	assert.Equal(t, "secret", params["password"])
}

func TestHTTPClient_AuthenticateVendor_NoVendorID(t *testing.T) {
	stub := &backendStub{reply: `{"message": "invalid credentials"}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testLogger())
	res, err := c.AuthenticateVendor(context.Background(), "a@b.com", "wrong")

	require.NoError(t, err)
	assert.False(t, res.Authenticated())
	assert.Equal(t, "invalid credentials", res.Message)
}

func TestHTTPClient_TransportFailure_SyntheticMessage(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // closed on purpose: connection refused

	c := NewHTTPClient(srv.URL, testLogger())
	_, err := c.GetNumbers(context.Background(), 7)

	require.Error(t, err)
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Error processing the getNumbers request", re.Message)
}

func TestHTTPClient_ParseFailure_SyntheticMessage(t *testing.T) {
	stub := &backendStub{reply: `not json at all`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testLogger())
	_, err := c.ValidateCode(context.Background(), "a@b.com", "123456")

	require.Error(t, err)
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Error processing the validateCode request", re.Message)
}

func TestHTTPClient_GetNumbers(t *testing.T) {
	stub := &backendStub{reply: `{"numbers": [
		{"number": 5, "client": "Ana", "status": "Vendido", "installmentsPaid": 3},
		{"number": 9, "client": "", "status": "Disponible", "installmentsPaid": 0}
	]}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testLogger())
	got, err := c.GetNumbers(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.NumberRecord{Number: 5, Client: "Ana", Status: models.StatusSold, InstallmentsPaid: 3}, got[0])

	params := stub.lastBody["params"].(map[string]any)
	assert.EqualValues(t, 7, params["vendorId"])
}

func TestHTTPClient_GetNumbers_MissingPayloadIsEmpty(t *testing.T) {
	stub := &backendStub{reply: `{"message": "no numbers yet"}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testLogger())
	got, err := c.GetNumbers(context.Background(), 7)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestHTTPClient_AddNumbers_SendsPaddedList(t *testing.T) {
	stub := &backendStub{reply: `{"message": "Numbers added successfully: 00005"}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testLogger())
	msg, err := c.AddNumbers(context.Background(), 7, []string{"00005", "00042"})

	require.NoError(t, err)
	assert.True(t, IsNumbersAdded(msg))

	params := stub.lastBody["params"].(map[string]any)
	assert.Equal(t, []any{"00005", "00042"}, params["numbers"])
}

func TestHTTPClient_EditNumber_ParamShape(t *testing.T) {
	stub := &backendStub{reply: `{"message": "Number updated successfully"}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testLogger())
	msg, err := c.EditNumber(context.Background(), 7, 42, "Ana", models.StatusSold, 4)

	require.NoError(t, err)
	assert.True(t, IsNumberUpdated(msg))

	params := stub.lastBody["params"].(map[string]any)
	assert.EqualValues(t, 42, params["number"])
	assert.Equal(t, "Ana", params["client"])
	assert.Equal(t, "Vendido", params["status"])
	assert.EqualValues(t, 4, params["installmentsPaid"])
}
