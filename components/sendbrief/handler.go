package sendbrief

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/language"

	"github.com/goliatone/go-brief/pkg/apispec"
	"github.com/goliatone/go-brief/pkg/i18n"
	"github.com/goliatone/go-brief/pkg/model"
	"github.com/goliatone/go-brief/pkg/notify"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type userMessager interface {
	UserMessage() string
}

type successResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: i18n.DefaultPrinter().Sprintf(i18n.KeyNotifyBadRequest)})
			return
		}
		tag := i18n.ResolveTag(r)
		logger := opts.Logger.With("request_id", middleware.GetReqID(r.Context()))

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "send-brief panic",
					"panic", fmt.Sprint(rec), "stack", string(debug.Stack()))
				writeJSON(w, http.StatusInternalServerError, errorResponse{
					Error: notify.UserMessage(tag, notify.KindUnknown, ""),
				})
			}
		}()

		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
				Error: i18n.Printer(tag).Sprintf(i18n.KeyNotifyMethodNotAllowed),
			})
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, tag, err)
				return
			}
		}

		if err := serve(w, r, opts, tag); err != nil {
			writeFailure(w, r, logger, tag, err)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	})
}

func serve(w http.ResponseWriter, r *http.Request, opts Options, tag language.Tag) error {
	if opts.Notifier == nil {
		return notify.NewError(notify.KindConfig, notify.UserMessage(tag, notify.KindConfig, ""),
			errors.New("sendbrief: no notifier configured"))
	}

	dispatch, err := opts.Notifier.Begin(r.Context(), notify.WithLanguage(tag))
	if err != nil {
		return err
	}

	contract := opts.Contract
	if contract == nil {
		if contract, err = apispec.Default(); err != nil {
			return fmt.Errorf("sendbrief: load contract: %w", err)
		}
	}

	values, keys, err := decodeBody(w, r, opts.MaxBodyBytes, contract)
	if err != nil {
		return notify.NewError(notify.KindValidation, i18n.Printer(tag).Sprintf(i18n.KeyNotifyBadRequest), err)
	}

	return dispatch.Notify(r.Context(), values, notify.WithVariant(model.VariantFor(keys)))
}

// decodeBody reads a bounded JSON object, checks it against the contract and
// decodes it into FormValues. keys lists the top-level keys present.
func decodeBody(w http.ResponseWriter, r *http.Request, limit int64, contract *apispec.Contract) (model.FormValues, []string, error) {
	if r.Body == nil {
		return model.FormValues{}, nil, errors.New("empty body")
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		return model.FormValues{}, nil, fmt.Errorf("read body: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.FormValues{}, nil, fmt.Errorf("decode body: %w", err)
	}
	object, ok := raw.(map[string]any)
	if !ok {
		return model.FormValues{}, nil, errors.New("body is not a JSON object")
	}
	if err := contract.ValidateBody(object); err != nil {
		return model.FormValues{}, nil, err
	}

	values := model.Defaults()
	if err := json.Unmarshal(data, &values); err != nil {
		return model.FormValues{}, nil, fmt.Errorf("decode values: %w", err)
	}

	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	return values.Normalize(), keys, nil
}

func writeFailure(w http.ResponseWriter, r *http.Request, logger *slog.Logger, tag language.Tag, err error) {
	status := http.StatusInternalServerError
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode() > 0 {
		status = httpErr.StatusCode()
	}

	message := notify.UserMessage(tag, notify.KindUnknown, "")
	var um userMessager
	if errors.As(err, &um) && um.UserMessage() != "" {
		message = um.UserMessage()
	}

	kind := notify.KindUnknown
	var nerr *notify.Error
	if errors.As(err, &nerr) {
		kind = nerr.Kind
	}

	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	logger.Log(r.Context(), level, "send-brief failed",
		"status", status, "kind", string(kind), "error", err)

	writeJSON(w, status, errorResponse{Error: message})
}

func writeGuardError(w http.ResponseWriter, tag language.Tag, err error) {
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	message := http.StatusText(code)
	if code == http.StatusBadRequest {
		message = i18n.Printer(tag).Sprintf(i18n.KeyNotifyBadRequest)
	}
	writeJSON(w, code, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}
