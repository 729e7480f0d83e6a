package sendbrief

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-brief/pkg/notify"
	"github.com/goliatone/go-brief/pkg/testsupport"
)

type handlerResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func newTestHandler(t *testing.T, mailer *testsupport.FakeMailer, cfg notify.Config, fns ...OptionFn) http.Handler {
	t.Helper()
	svc, err := notify.New(mailer.Factory(nil), notify.WithConfigSource(notify.StaticConfig(cfg)))
	if err != nil {
		t.Fatalf("notify.New: %v", err)
	}
	return NewHandler(append([]OptionFn{WithNotifier(svc)}, fns...)...)
}

func do(t *testing.T, h http.Handler, method, body string, headers ...string) (*http.Response, handlerResponse) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api/send-brief", reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	var payload handlerResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return res, payload
}

func TestHandler_MinimalSubmissionSendsBothEmails(t *testing.T) {
	mailer := &testsupport.FakeMailer{}
	h := newTestHandler(t, mailer, testsupport.TestConfig())

	res, payload := do(t, h, http.MethodPost, `{"name":"Anna Svensson","email":"anna@example.com","description":"Ny hemsida","company":"","phone":"","projectType":[],"deadline":"","designStyle":"","inspirationSites":""}`)
	if res.StatusCode != http.StatusOK || !payload.Success {
		t.Fatalf("expected 200 success, got %d %#v", res.StatusCode, payload)
	}

	sent := mailer.Messages()
	if len(sent) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(sent))
	}
	if sent[0].To[0] != notify.DefaultToAddress || sent[0].ReplyTo[0] != "anna@example.com" {
		t.Fatalf("unexpected internal envelope: %#v", sent[0])
	}
	if sent[1].To[0] != "anna@example.com" || sent[1].ReplyTo[0] != notify.DefaultFromAddress {
		t.Fatalf("unexpected confirmation envelope: %#v", sent[1])
	}
	if strings.Contains(sent[0].Text, "FUNKTIONER") {
		t.Fatalf("basic body should not include the features section")
	}
}

func TestHandler_ExtendedKeysSelectExtendedLayout(t *testing.T) {
	mailer := &testsupport.FakeMailer{}
	h := newTestHandler(t, mailer, testsupport.TestConfig())

	res, _ := do(t, h, http.MethodPost, `{"name":"Anna","email":"anna@example.com","description":"x","features":[],"goals":""}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if !strings.Contains(mailer.Messages()[0].Text, "FUNKTIONER") {
		t.Fatalf("extended body should include the features section:\n%s", mailer.Messages()[0].Text)
	}
}

func TestHandler_MissingDescriptionIsClientError(t *testing.T) {
	mailer := &testsupport.FakeMailer{}
	h := newTestHandler(t, mailer, testsupport.TestConfig())

	res, payload := do(t, h, http.MethodPost, `{"name":"Anna","email":"anna@example.com"}`)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	if !strings.Contains(payload.Error, "projektbeskrivning") {
		t.Fatalf("expected field message, got %q", payload.Error)
	}
	if mailer.Attempts != 0 {
		t.Fatalf("no emails expected, got %d attempts", mailer.Attempts)
	}
}

func TestHandler_RateLimitedProvider(t *testing.T) {
	mailer := &testsupport.FakeMailer{Errs: []error{
		&notify.ProviderError{Kind: notify.KindRateLimited, Code: "Throttling", Err: errors.New("slow down")},
	}}
	h := newTestHandler(t, mailer, testsupport.TestConfig())

	res, payload := do(t, h, http.MethodPost, `{"name":"Anna","email":"anna@example.com","description":"x"}`)
	if res.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", res.StatusCode)
	}
	if payload.Error != "För många förfrågningar. Vänta en stund och försök igen." {
		t.Fatalf("unexpected message %q", payload.Error)
	}
}

type trackingBody struct {
	io.Reader
	read bool
}

func (b *trackingBody) Read(p []byte) (int, error) {
	b.read = true
	return b.Reader.Read(p)
}

func (b *trackingBody) Close() error { return nil }

func TestHandler_MissingConfigFailsBeforeReadingBody(t *testing.T) {
	mailer := &testsupport.FakeMailer{}
	h := newTestHandler(t, mailer, notify.Config{})

	body := &trackingBody{Reader: strings.NewReader(`{"name":"Anna"}`)}
	req := httptest.NewRequest(http.MethodPost, "/api/send-brief", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Error != "E-posttjänsten är inte konfigurerad. Kontakta oss direkt." {
		t.Fatalf("unexpected message %q", payload.Error)
	}
	if body.read {
		t.Fatalf("body should not be read without configuration")
	}
}

func TestHandler_RejectsMalformedBodies(t *testing.T) {
	cases := map[string]string{
		"invalid json":  `{"name":`,
		"not an object": `["Anna"]`,
		"wrong type":    `{"name":42,"email":"anna@example.com","description":"x"}`,
		"set as string": `{"name":"Anna","email":"anna@example.com","description":"x","projectType":"Redesign"}`,
		"too large":     `{"name":"` + strings.Repeat("a", 70<<10) + `"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			mailer := &testsupport.FakeMailer{}
			h := newTestHandler(t, mailer, testsupport.TestConfig())

			res, payload := do(t, h, http.MethodPost, body)
			if res.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", res.StatusCode)
			}
			if payload.Error != "Ogiltig förfrågan" {
				t.Fatalf("unexpected message %q", payload.Error)
			}
			if mailer.Attempts != 0 {
				t.Fatalf("no emails expected")
			}
		})
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, &testsupport.FakeMailer{}, testsupport.TestConfig())

	res, payload := do(t, h, http.MethodGet, "")
	if res.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", res.StatusCode)
	}
	if res.Header.Get("Allow") != http.MethodPost {
		t.Fatalf("unexpected Allow header %q", res.Header.Get("Allow"))
	}
	if payload.Error == "" {
		t.Fatalf("expected error message")
	}
}

func TestHandler_NegotiatesLanguage(t *testing.T) {
	h := newTestHandler(t, &testsupport.FakeMailer{}, testsupport.TestConfig())

	res, payload := do(t, h, http.MethodPost, `{"name":"Anna"}`, "Accept-Language", "en-GB,en;q=0.8")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	if payload.Error != "Name, email and project description are required" {
		t.Fatalf("unexpected message %q", payload.Error)
	}
}

type panicNotifier struct{}

func (panicNotifier) Begin(context.Context, ...notify.DispatchOption) (*notify.Dispatch, error) {
	panic("boom")
}

func TestHandler_RecoversFromPanics(t *testing.T) {
	h := NewHandler(WithNotifier(panicNotifier{}))

	res, payload := do(t, h, http.MethodPost, `{}`)
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.StatusCode)
	}
	if !strings.Contains(payload.Error, notify.DefaultFromAddress) {
		t.Fatalf("expected fallback contact in %q", payload.Error)
	}
}

func TestHandler_GuardError(t *testing.T) {
	h := newTestHandler(t, &testsupport.FakeMailer{}, testsupport.TestConfig(),
		WithGuard(func(*http.Request) error {
			return StatusError{Code: http.StatusUnauthorized}
		}),
	)

	res, _ := do(t, h, http.MethodPost, `{}`)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}
