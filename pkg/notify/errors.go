package notify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Kind classifies a failed notification.
type Kind string

const (
	KindConfig           Kind = "config"
	KindValidation       Kind = "validation"
	KindProviderAuth     Kind = "provider_auth"
	KindRecipientInvalid Kind = "recipient_invalid"
	KindRateLimited      Kind = "rate_limited"
	KindNetwork          Kind = "network"
	KindUnknown          Kind = "unknown"
)

// Status returns the HTTP status a Kind is reported with.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindRecipientInvalid:
		return http.StatusBadRequest
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified notification failure. Message is localized and safe
// to show the customer; Err keeps the detail for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// NewError builds an Error.
func NewError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("notify: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("notify: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status for the error kind.
func (e *Error) StatusCode() int { return e.Kind.Status() }

// UserMessage returns the localized message.
func (e *Error) UserMessage() string { return e.Message }

// ProviderError is returned by Mailer implementations that can tell what
// went wrong at the provider.
type ProviderError struct {
	Kind Kind
	Code string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("provider %s (%s): %v", e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Classify maps a send error onto a Kind. Provider classification wins;
// otherwise timeouts and network failures are KindNetwork and everything
// else KindUnknown.
func Classify(err error) Kind {
	if err == nil {
		return ""
	}
	var perr *ProviderError
	if errors.As(err, &perr) && perr.Kind != "" {
		return perr.Kind
	}
	var nerr *Error
	if errors.As(err, &nerr) && nerr.Kind != "" {
		return nerr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindNetwork
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return KindNetwork
	}
	return KindUnknown
}
