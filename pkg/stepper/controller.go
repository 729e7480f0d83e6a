package stepper

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-brief/pkg/formstore"
	"github.com/goliatone/go-brief/pkg/i18n"
	"github.com/goliatone/go-brief/pkg/model"
	"github.com/goliatone/go-brief/pkg/validation"
)

var (
	// ErrNotFinalStep is returned when Submit is called before the last step.
	ErrNotFinalStep = errors.New("stepper: submit is only available on the final step")
	// ErrSubmitting is returned while a submission is in flight.
	ErrSubmitting = errors.New("stepper: submission in progress")
	// ErrSubmitted is returned for any action after a successful submission.
	ErrSubmitted = errors.New("stepper: brief already submitted")
	// ErrInvalid is returned when the submit gate finds missing or invalid
	// fields; the messages are exposed through State.
	ErrInvalid = errors.New("stepper: form has validation errors")
)

// Phase is the coarse lifecycle of a session.
type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSubmitted  Phase = "submitted"
)

// Submitter sends the finished brief. pkg/submit.Client implements it.
type Submitter interface {
	Submit(ctx context.Context, values model.FormValues) error
}

// SubmitterFunc adapts a function into a Submitter.
type SubmitterFunc func(ctx context.Context, values model.FormValues) error

// Submit calls fn.
func (fn SubmitterFunc) Submit(ctx context.Context, values model.FormValues) error {
	return fn(ctx, values)
}

// State is a read-only snapshot for presentation layers.
type State struct {
	Step     int
	Total    int
	Kind     model.StepKind
	TitleKey string
	Errors   []string
	Phase    Phase
	Values   model.FormValues
}

// Final reports whether the snapshot is on the last step.
func (s State) Final() bool {
	return s.Step == s.Total
}

// Option configures a Controller.
type Option func(*Controller)

// WithStore hydrates from and persists to store.
func WithStore(store *formstore.Store) Option {
	return func(c *Controller) {
		if store != nil {
			c.store = store
		}
	}
}

// WithSubmitter sets the backend used by Submit.
func WithSubmitter(s Submitter) Option {
	return func(c *Controller) {
		if s != nil {
			c.submitter = s
		}
	}
}

// WithValidator overrides the step validator (for example to localize it).
func WithValidator(v *validation.Validator) Option {
	return func(c *Controller) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithLocalizer localizes the fallback submit failure message.
func WithLocalizer(loc i18n.Localizer) Option {
	return func(c *Controller) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithFallbackContact sets the address quoted when a submit error carries no
// message of its own.
func WithFallbackContact(addr string) Option {
	return func(c *Controller) {
		if addr != "" {
			c.contact = addr
		}
	}
}

// Controller is the StepController of one form session.
type Controller struct {
	variant   model.Variant
	store     *formstore.Store
	submitter Submitter
	validator *validation.Validator
	loc       i18n.Localizer
	contact   string

	values model.FormValues
	step   int
	errors []string
	phase  Phase
}

// DefaultContact is quoted in fallback error messages.
const DefaultContact = "hej@pixelpioneer.se"

// New starts a session on step 1 with values restored from the store.
func New(ctx context.Context, variant model.Variant, opts ...Option) *Controller {
	if variant.Total() == 0 {
		variant = model.Basic
	}
	c := &Controller{
		variant:   variant,
		validator: validation.New(),
		loc:       i18n.DefaultPrinter(),
		contact:   DefaultContact,
		step:      1,
		errors:    []string{},
		phase:     PhaseEditing,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.store == nil {
		c.store = formstore.New(nil)
	}
	if c.submitter == nil {
		c.submitter = SubmitterFunc(func(context.Context, model.FormValues) error {
			return errors.New("stepper: no submitter configured")
		})
	}
	c.values = c.store.Load(ctx)
	return c
}

// Variant returns the layout the session runs.
func (c *Controller) Variant() model.Variant {
	return c.variant
}

// State returns a snapshot of the session.
func (c *Controller) State() State {
	step, _ := c.variant.Step(c.step)
	return State{
		Step:     c.step,
		Total:    c.variant.Total(),
		Kind:     step.Kind,
		TitleKey: step.TitleKey,
		Errors:   append([]string{}, c.errors...),
		Phase:    c.phase,
		Values:   c.values.Clone(),
	}
}

// Set replaces a free-text field, clears errors and persists the draft.
func (c *Controller) Set(field model.Field, value string) error {
	if err := c.editable(); err != nil {
		return err
	}
	next, err := c.values.WithText(field, value)
	if err != nil {
		return err
	}
	c.commit(next)
	return nil
}

// Toggle flips option membership in a set field, clears errors and
// persists the draft.
func (c *Controller) Toggle(field model.Field, option string) error {
	if err := c.editable(); err != nil {
		return err
	}
	next, err := c.values.WithToggle(field, option)
	if err != nil {
		return err
	}
	c.commit(next)
	return nil
}

// Next validates the current step and advances when it is clean. It reports
// whether the step changed; on failure the messages are in State().Errors.
func (c *Controller) Next() bool {
	if c.phase != PhaseEditing {
		return false
	}
	kind := c.currentKind()
	if errs := c.validator.ValidateKind(kind, c.values); len(errs) > 0 {
		c.errors = errs
		return false
	}
	c.errors = []string{}
	if c.step < c.variant.Total() {
		c.step++
		return true
	}
	return false
}

// Prev moves one step back and clears errors. On step 1 it reports exited
// and the caller should leave the form.
func (c *Controller) Prev() (exited bool) {
	if c.phase != PhaseEditing {
		return c.phase == PhaseSubmitted
	}
	c.errors = []string{}
	if c.step <= 1 {
		c.step = 1
		return true
	}
	c.step--
	return false
}

// Submit re-validates every required field and sends the brief once. On
// success the session is terminal and the stored draft is removed; on
// failure the session stays on the final step with one error message and
// the draft is kept for a retry.
func (c *Controller) Submit(ctx context.Context) error {
	switch c.phase {
	case PhaseSubmitted:
		return ErrSubmitted
	case PhaseSubmitting:
		return ErrSubmitting
	}
	if c.step != c.variant.Total() {
		return ErrNotFinalStep
	}
	if errs := c.validator.ValidateAll(c.values); len(errs) > 0 {
		c.errors = errs
		return ErrInvalid
	}

	c.errors = []string{}
	c.phase = PhaseSubmitting
	err := c.submitter.Submit(ctx, c.values.Clone())
	if err != nil {
		c.phase = PhaseEditing
		c.errors = []string{c.submitMessage(err)}
		return fmt.Errorf("stepper: submit: %w", err)
	}

	c.phase = PhaseSubmitted
	c.store.Clear(ctx)
	c.values = model.Defaults()
	return nil
}

func (c *Controller) submitMessage(err error) string {
	var msgErr interface{ UserMessage() string }
	if errors.As(err, &msgErr) {
		if msg := msgErr.UserMessage(); msg != "" {
			return msg
		}
	}
	return c.loc.Sprintf(i18n.KeySubmitFailed, c.contact)
}

func (c *Controller) editable() error {
	switch c.phase {
	case PhaseSubmitted:
		return ErrSubmitted
	case PhaseSubmitting:
		return ErrSubmitting
	}
	return nil
}

func (c *Controller) commit(next model.FormValues) {
	c.values = next
	c.errors = []string{}
	c.store.Save(c.values)
}

func (c *Controller) currentKind() model.StepKind {
	step, _ := c.variant.Step(c.step)
	return step.Kind
}
