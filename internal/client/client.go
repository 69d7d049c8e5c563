package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is a typed wrapper around the approval gateway's REST API. All
// responses follow the `{success, message, ...payload}` envelope; callers
// branch on success and surface the server message verbatim.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a gateway client. The token is the reviewer's session
// credential, injected at construction.
func New(baseURL, token string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// WithToken returns a copy of the client authenticated with the given token
func (c *Client) WithToken(token string) *Client {
	return &Client{
		baseURL: c.baseURL,
		token:   token,
		http:    c.http,
	}
}

// APIError is a business rejection from the gateway (`success:false`)
type APIError struct {
	Op      string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type responder interface {
	ok() bool
	message() string
}

func (e envelope) ok() bool        { return e.Success }
func (e envelope) message() string { return e.Message }

// do issues one request and decodes the envelope. A transport failure is
// wrapped with the operation name; `success:false` becomes an *APIError with
// the server message, or a generic fallback when the server gave none.
func (c *Client) do(ctx context.Context, op, method, path string, body interface{}, out responder) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %v", op, err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: %v", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %v", op, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %v", op, err)
	}

	if !out.ok() {
		msg := out.message()
		if msg == "" {
			msg = "request failed"
		}
		return &APIError{Op: op, Message: msg}
	}

	return nil
}
