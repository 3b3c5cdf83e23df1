package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"bingotrack/internal/logging"
	"bingotrack/internal/models"
)

// Action names recognized by the backend.
const (
	actionCreateVendor       = "createVendor"
	actionValidateCode       = "validateCode"
	actionAuthenticateVendor = "authenticateVendor"
	actionResendCode         = "resendCode"
	actionChangePassword     = "changePassword"
	actionAddNumbers         = "addNumbers"
	actionEditNumber         = "editNumber"
	actionDeleteNumber       = "deleteNumber"
	actionGetNumbers         = "getNumbers"
)

// envelope is the superset of every response shape the backend produces.
// Absent fields decode to their zero values; a missing expected field is an
// implicit failure signal for the caller.
type envelope struct {
	Message  string                `json:"message"`
	VendorID int64                 `json:"vendorId"`
	Name     string                `json:"name"`
	Email    string                `json:"email"`
	Numbers  []models.NumberRecord `json:"numbers"`
}

type request struct {
	Action string `json:"action"`
	Params any    `json:"params"`
}

// HTTPClient talks to the single-endpoint JSON backend. It is safe for the
// single-writer usage this client needs; requests are never issued
// concurrently for the same screen.
type HTTPClient struct {
	endpointURL string
	httpClient  *http.Client
	logger      logging.Logger
}

// NewHTTPClient builds a client for the given endpoint URL. The logger is
// used for best-effort diagnostics of every request/response pair; it plays
// no semantic role.
func NewHTTPClient(endpointURL string, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		endpointURL: endpointURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      logger.With("component", "rpc"),
	}
}

// invoke POSTs {action, params} and decodes the response envelope. On any
// network or parse failure it returns a *RemoteError holding the uniform
// synthetic message for the action; it never retries.
func (c *HTTPClient) invoke(ctx context.Context, action string, params any) (*envelope, error) {
	requestID := uuid.NewString()

	body, err := json.Marshal(request{Action: action, Params: params})
	if err != nil {
		c.logger.Error(ctx, "request encoding failed", "action", action, "request_id", requestID, "error", err.Error())
		return nil, Remote(SyntheticFailure(action))
	}

	c.logger.Debug(ctx, "request", "action", action, "request_id", requestID, "body", string(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		c.logger.Error(ctx, "request build failed", "action", action, "request_id", requestID, "error", err.Error())
		return nil, Remote(SyntheticFailure(action))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "transport failure", "action", action, "request_id", requestID, "error", err.Error())
		return nil, Remote(SyntheticFailure(action))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error(ctx, "response read failed", "action", action, "request_id", requestID, "error", err.Error())
		return nil, Remote(SyntheticFailure(action))
	}

	c.logger.Debug(ctx, "response", "action", action, "request_id", requestID, "status", resp.StatusCode, "body", string(raw))

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.Error(ctx, "response parse failed", "action", action, "request_id", requestID, "error", err.Error())
		return nil, Remote(SyntheticFailure(action))
	}

	return &env, nil
}

func (c *HTTPClient) CreateVendor(ctx context.Context, name, email, password string) (*AuthResult, error) {
	env, err := c.invoke(ctx, actionCreateVendor, map[string]string{
		"name": name, "email": email, "password": password,
	})
	if err != nil {
		return nil, err
	}
	return authResult(env), nil
}

func (c *HTTPClient) AuthenticateVendor(ctx context.Context, email, password string) (*AuthResult, error) {
	env, err := c.invoke(ctx, actionAuthenticateVendor, map[string]string{
		"email": email, "password": password,
	})
	if err != nil {
		return nil, err
	}
	return authResult(env), nil
}

func authResult(env *envelope) *AuthResult {
	return &AuthResult{
		VendorID: env.VendorID,
		Name:     env.Name,
		Email:    env.Email,
		Message:  env.Message,
	}
}

func (c *HTTPClient) ValidateCode(ctx context.Context, email, code string) (string, error) {
	env, err := c.invoke(ctx, actionValidateCode, map[string]string{
		"email": email, "code": code,
	})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) ResendCode(ctx context.Context, email string) (string, error) {
	env, err := c.invoke(ctx, actionResendCode, map[string]string{"email": email})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, email, code, newPassword string) (string, error) {
	env, err := c.invoke(ctx, actionChangePassword, map[string]string{
		"email": email, "code": code, "newPassword": newPassword,
	})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) AddNumbers(ctx context.Context, vendorID int64, numbers []string) (string, error) {
	env, err := c.invoke(ctx, actionAddNumbers, map[string]any{
		"vendorId": vendorID, "numbers": numbers,
	})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) EditNumber(ctx context.Context, vendorID int64, number int, client string, status models.Status, installmentsPaid int) (string, error) {
	env, err := c.invoke(ctx, actionEditNumber, map[string]any{
		"vendorId":         vendorID,
		"number":           number,
		"client":           client,
		"status":           status,
		"installmentsPaid": installmentsPaid,
	})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) DeleteNumber(ctx context.Context, vendorID int64, number int) (string, error) {
	env, err := c.invoke(ctx, actionDeleteNumber, map[string]any{
		"vendorId": vendorID, "number": number,
	})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) GetNumbers(ctx context.Context, vendorID int64) ([]models.NumberRecord, error) {
	env, err := c.invoke(ctx, actionGetNumbers, map[string]any{"vendorId": vendorID})
	if err != nil {
		return nil, err
	}
	// absent or empty payload means an empty collection, never an error
	if env.Numbers == nil {
		return []models.NumberRecord{}, nil
	}
	return env.Numbers, nil
}

var _ Client = (*HTTPClient)(nil)
