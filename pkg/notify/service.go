package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/goliatone/go-brief/pkg/i18n"
	"github.com/goliatone/go-brief/pkg/model"
)

// ErrNoMailerFactory is returned by New without a MailerFactory.
var ErrNoMailerFactory = errors.New("notify: mailer factory is required")

// Mailer sends one composed message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// MailerFunc adapts a function to Mailer.
type MailerFunc func(ctx context.Context, msg Message) error

func (f MailerFunc) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }

// MailerFactory builds a Mailer for one dispatch from freshly read config.
type MailerFactory func(ctx context.Context, cfg Config) (Mailer, error)

// Option configures a Service.
type Option func(*Service)

// WithConfigSource overrides where configuration is read from.
func WithConfigSource(src ConfigSource) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithComposer overrides the message composer.
func WithComposer(c *Composer) Option {
	return func(s *Service) {
		if c != nil {
			s.composer = c
		}
	}
}

// WithLogger sets the logger used for dispatch events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithReferenceFunc overrides how submission references are generated.
func WithReferenceFunc(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newReference = fn
		}
	}
}

// Service validates and dispatches brief notifications.
type Service struct {
	source       ConfigSource
	factory      MailerFactory
	composer     *Composer
	logger       *slog.Logger
	newReference func() string
}

// New constructs a Service. Configuration defaults to EnvConfig.
func New(factory MailerFactory, opts ...Option) (*Service, error) {
	if factory == nil {
		return nil, ErrNoMailerFactory
	}
	s := &Service{
		source:       EnvConfig,
		factory:      factory,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		newReference: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.composer == nil {
		c, err := NewComposer()
		if err != nil {
			return nil, err
		}
		s.composer = c
	}
	return s, nil
}

// DispatchOption scopes a Dispatch.
type DispatchOption func(*Dispatch)

// WithLanguage selects the language of messages and errors.
func WithLanguage(tag language.Tag) DispatchOption {
	return func(d *Dispatch) {
		d.lang = tag
	}
}

// WithVariant fixes the internal email layout instead of inferring it from
// the submitted values.
func WithVariant(v model.Variant) DispatchOption {
	return func(d *Dispatch) {
		d.variant = &v
	}
}

// Dispatch is one request's worth of configuration and mailer.
type Dispatch struct {
	svc       *Service
	cfg       Config
	mailer    Mailer
	lang      language.Tag
	variant   *model.Variant
	reference string
}

// Begin reads the configuration and builds the mailer for one request. A
// missing credential fails with KindConfig before any input is looked at.
func (s *Service) Begin(ctx context.Context, opts ...DispatchOption) (*Dispatch, error) {
	d := &Dispatch{
		svc:       s,
		lang:      i18n.Default(),
		reference: s.newReference(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	printer := i18n.Printer(d.lang)

	cfg, err := s.source()
	if err != nil {
		return nil, NewError(KindConfig, printer.Sprintf(i18n.KeyNotifyConfigMissing), err)
	}
	cfg = cfg.withDefaults()
	if !cfg.Configured() {
		return nil, NewError(KindConfig, printer.Sprintf(i18n.KeyNotifyConfigMissing),
			errors.New("missing provider credentials"))
	}
	d.cfg = cfg

	mailer, err := s.factory(ctx, cfg)
	if err != nil {
		return nil, NewError(KindConfig, printer.Sprintf(i18n.KeyNotifyConfigMissing),
			fmt.Errorf("build mailer: %w", err))
	}
	d.mailer = mailer
	return d, nil
}

// Notify begins a dispatch and sends both messages.
func (s *Service) Notify(ctx context.Context, values model.FormValues, opts ...DispatchOption) error {
	d, err := s.Begin(ctx, opts...)
	if err != nil {
		return err
	}
	return d.Notify(ctx, values)
}

// Reference returns the submission reference quoted in the internal email.
func (d *Dispatch) Reference() string { return d.reference }

// Config returns the configuration this dispatch was built with.
func (d *Dispatch) Config() Config { return d.cfg }

// Notify checks the required fields, then sends the internal notification
// and the customer confirmation. Both sends are attempted; any failure fails
// the whole call and is classified by the first one. opts apply to this call
// only.
func (d *Dispatch) Notify(ctx context.Context, values model.FormValues, opts ...DispatchOption) error {
	if len(opts) > 0 {
		scoped := *d
		for _, opt := range opts {
			if opt != nil {
				opt(&scoped)
			}
		}
		d = &scoped
	}
	printer := i18n.Printer(d.lang)

	switch problem, err := checkFields(values); problem {
	case fieldsMissing:
		return NewError(KindValidation, printer.Sprintf(i18n.KeyNotifyFieldsRequired), err)
	case fieldsInvalidEmail:
		return NewError(KindValidation, printer.Sprintf(i18n.KeyNotifyEmailInvalid), err)
	}

	variant := model.Basic
	if d.variant != nil {
		variant = *d.variant
	} else if values.HasExtended() {
		variant = model.Extended
	}
	env := Envelope{
		Config:    d.cfg,
		Lang:      d.lang,
		Extended:  variant.Extended,
		Reference: d.reference,
	}

	internal, err := d.svc.composer.Internal(values, env)
	if err != nil {
		return d.failure(KindUnknown, err)
	}
	confirmation, err := d.svc.composer.Confirmation(values, env)
	if err != nil {
		return d.failure(KindUnknown, err)
	}

	var errs []error
	if err := d.mailer.Send(ctx, internal); err != nil {
		errs = append(errs, fmt.Errorf("internal notification: %w", err))
	} else {
		d.svc.logger.InfoContext(ctx, "internal notification sent",
			"reference", d.reference, "to", strings.Join(internal.To, ","))
	}
	if err := d.mailer.Send(ctx, confirmation); err != nil {
		errs = append(errs, fmt.Errorf("confirmation: %w", err))
	} else {
		d.svc.logger.InfoContext(ctx, "confirmation sent", "reference", d.reference)
	}
	if len(errs) == 0 {
		return nil
	}
	return d.failure(Classify(errs[0]), errors.Join(errs...))
}

func (d *Dispatch) failure(kind Kind, err error) *Error {
	d.svc.logger.Error("notification failed",
		"reference", d.reference, "kind", string(kind), "error", err)
	return NewError(kind, UserMessage(d.lang, kind, d.cfg.FromAddress), err)
}

// UserMessage returns the localized customer-facing message for kind. contact
// is quoted by the kinds that point the customer elsewhere.
func UserMessage(tag language.Tag, kind Kind, contact string) string {
	printer := i18n.Printer(tag)
	if contact == "" {
		contact = DefaultFromAddress
	}
	switch kind {
	case KindConfig:
		return printer.Sprintf(i18n.KeyNotifyConfigMissing)
	case KindValidation:
		return printer.Sprintf(i18n.KeyNotifyFieldsRequired)
	case KindProviderAuth:
		return printer.Sprintf(i18n.KeyNotifyProviderAuth, contact)
	case KindRecipientInvalid:
		return printer.Sprintf(i18n.KeyNotifyRecipientInvalid)
	case KindRateLimited:
		return printer.Sprintf(i18n.KeyNotifyRateLimited)
	case KindNetwork:
		return printer.Sprintf(i18n.KeyNotifyNetwork)
	default:
		return printer.Sprintf(i18n.KeyNotifyUnknown, contact)
	}
}
