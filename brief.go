// Package brief is the top-level entry point for the project brief service:
// the SES-backed notification service, the send-brief HTTP handler, and the
// embedded email templates and API contract.
package brief

import (
	"io/fs"
	"net/http"

	"github.com/goliatone/go-brief/components/sendbrief"
	"github.com/goliatone/go-brief/pkg/apispec"
	"github.com/goliatone/go-brief/pkg/notify"
	"github.com/goliatone/go-brief/pkg/notify/ses"
)

// NewService builds a notification service that reads its configuration from
// the environment on every request and sends through Amazon SES. Options are
// applied after the defaults, so a caller can swap the config source.
func NewService(options ...notify.Option) (*notify.Service, error) {
	opts := append([]notify.Option{notify.WithConfigSource(notify.EnvConfig)}, options...)
	return notify.New(ses.NewMailer, opts...)
}

// Handler exposes the send-brief endpoint backed by notifier.
func Handler(notifier sendbrief.Notifier, fns ...sendbrief.OptionFn) http.Handler {
	return sendbrief.Handler(append([]sendbrief.OptionFn{sendbrief.WithNotifier(notifier)}, fns...)...)
}

// EmailTemplates exposes the built-in email templates so callers can copy
// or extend them.
func EmailTemplates() fs.FS {
	return notify.Templates()
}

// OpenAPISpec returns the send-brief API document.
func OpenAPISpec() []byte {
	return apispec.Raw()
}
