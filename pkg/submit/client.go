// Package submit posts a finished brief to the send-brief endpoint and turns
// the outcome into a single user-facing message.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-brief/pkg/i18n"
	"github.com/goliatone/go-brief/pkg/model"
)

// Path is the fixed endpoint the brief is posted to.
const Path = "/api/send-brief"

// DefaultContact is quoted in the generic failure message.
const DefaultContact = "hej@pixelpioneer.se"

// maxErrorBody bounds how much of a failure response is read.
const maxErrorBody = 64 << 10

// Error is a failed submission. Message is always safe to show the user.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submit: %s: %v", e.Message, e.Err)
	}
	return "submit: " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// UserMessage returns the text to show in the form.
func (e *Error) UserMessage() string { return e.Message }

// StatusCode returns the HTTP status of the response, 0 on transport errors.
func (e *Error) StatusCode() int { return e.Status }

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the origin the endpoint path is appended to.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithVariant shapes the request body for a form layout (Extended by default).
func WithVariant(v model.Variant) Option {
	return func(c *Client) {
		if v.Total() > 0 {
			c.variant = v
		}
	}
}

// WithLocalizer localizes the generic failure message.
func WithLocalizer(loc i18n.Localizer) Option {
	return func(c *Client) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithFallbackContact sets the address quoted in the generic failure message.
func WithFallbackContact(addr string) Option {
	return func(c *Client) {
		if addr = strings.TrimSpace(addr); addr != "" {
			c.contact = addr
		}
	}
}

// Client is the SubmissionClient.
type Client struct {
	baseURL string
	http    *http.Client
	variant model.Variant
	loc     i18n.Localizer
	contact string
}

// New constructs a Client.
func New(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		variant: model.Extended,
		loc:     i18n.DefaultPrinter(),
		contact: DefaultContact,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Endpoint returns the absolute or relative URL posted to.
func (c *Client) Endpoint() string {
	return c.baseURL + Path
}

type errorResponse struct {
	Error string `json:"error"`
}

// Submit performs exactly one POST of values. It never retries and never
// mutates values. A non-nil error is always an *Error.
func (c *Client) Submit(ctx context.Context, values model.FormValues) error {
	body, err := json.Marshal(c.variant.Payload(values))
	if err != nil {
		return &Error{Message: c.fallback(), Err: fmt.Errorf("encode brief: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return &Error{Message: c.fallback(), Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: c.fallback(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil
	}

	message := c.fallback()
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if readErr == nil {
		var payload errorResponse
		if json.Unmarshal(raw, &payload) == nil {
			if msg := strings.TrimSpace(payload.Error); msg != "" {
				message = msg
			}
		}
	}
	return &Error{
		Status:  resp.StatusCode,
		Message: message,
		Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
	}
}

func (c *Client) fallback() string {
	return c.loc.Sprintf(i18n.KeySubmitFailed, c.contact)
}
