// Package client is the booking-side consumer of the Giraffe Cabs API: it
// runs the submit-time validators, posts drafts to the backend and carries
// the created record into the payment step.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotAuthenticated is returned before any network call when the session
// has no token.
var ErrNotAuthenticated = errors.New("not authenticated")

// APIError is a non-2xx backend response. Message prefers the server's own
// text and falls back to a generic one when the body has none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// Client talks to the booking backend. Every call is single-attempt; there
// is no retry discipline, failures surface to the caller.
type Client struct {
	baseURL string
	http    *http.Client
	session Session
}

// New builds a Client for baseURL with the given session. The zero session
// is valid for unauthenticated endpoints.
func New(baseURL string, session Session) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		session: session,
	}
}

// WithHTTPClient overrides the underlying http.Client (tests, custom
// transports).
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiErrorFrom(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) doRaw(ctx context.Context, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiErrorFrom(resp)
	}
	return io.ReadAll(resp.Body)
}

func apiErrorFrom(resp *http.Response) *APIError {
	msg := "request failed, please try again"
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); err == nil {
		if json.Unmarshal(body, &payload) == nil {
			if payload.Error != "" {
				msg = payload.Error
			} else if payload.Message != "" {
				msg = payload.Message
			}
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
