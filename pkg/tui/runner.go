package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/goliatone/go-brief/pkg/catalog"
	"github.com/goliatone/go-brief/pkg/i18n"
	"github.com/goliatone/go-brief/pkg/model"
	"github.com/goliatone/go-brief/pkg/stepper"
	"github.com/goliatone/go-brief/pkg/validation"
)

// Outcome is how a terminal session ended.
type Outcome string

const (
	OutcomeSubmitted Outcome = "submitted"
	OutcomeCancelled Outcome = "cancelled"
)

// Theme captures optional prefixes for printed lines.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the Runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithCatalogs overrides the copy used for labels and options.
func WithCatalogs(store *catalog.Store) Option {
	return func(r *Runner) {
		if store != nil {
			r.catalogs = store
		}
	}
}

// WithLanguage selects the prompt language.
func WithLanguage(tag language.Tag) Option {
	return func(r *Runner) {
		r.lang = tag
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}

// Runner presents a stepper.Controller in the terminal, one step at a time.
type Runner struct {
	driver   PromptDriver
	catalogs *catalog.Store
	lang     language.Tag
	theme    Theme
}

// New constructs a Runner. The survey driver and the embedded catalogs are
// used unless overridden.
func New(opts ...Option) (*Runner, error) {
	r := &Runner{
		lang:  i18n.Default(),
		theme: Theme{ErrorPrefix: "  - "},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	if r.catalogs == nil {
		store, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("tui: catalogs: %w", err)
		}
		r.catalogs = store
	}
	return r, nil
}

type action int

const (
	actionNext action = iota
	actionBack
	actionSubmit
)

// Run loops over the controller's steps until the brief is submitted or the
// user backs out of step 1.
func (r *Runner) Run(ctx context.Context, ctrl *stepper.Controller) (Outcome, error) {
	if ctrl == nil {
		return "", ErrNoController
	}
	printer := i18n.Printer(r.lang)
	cat := r.catalogs.Lookup(r.lang)

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		st := ctrl.State()
		if st.Phase == stepper.PhaseSubmitted {
			if err := r.info(ctx, printer.Sprintf(i18n.KeyThanks)); err != nil {
				return "", err
			}
			if err := r.info(ctx, printer.Sprintf(i18n.KeyThanksBody)); err != nil {
				return "", err
			}
			return OutcomeSubmitted, nil
		}

		header := printer.Sprintf(i18n.KeyProgress, st.Step, st.Total) + ": " + printer.Sprintf(st.TitleKey)
		if err := r.info(ctx, header); err != nil {
			return "", err
		}
		if err := r.showErrors(ctx, printer, st.Errors); err != nil {
			return "", err
		}

		step, _ := ctrl.Variant().Step(st.Step)
		for _, spec := range step.Fields {
			if err := r.promptField(ctx, ctrl, cat, spec); err != nil {
				return "", err
			}
		}

		act, err := r.promptAction(ctx, printer, st)
		if err != nil {
			return "", err
		}
		switch act {
		case actionBack:
			if ctrl.Prev() {
				return OutcomeCancelled, nil
			}
		case actionNext:
			ctrl.Next()
		case actionSubmit:
			if err := r.info(ctx, printer.Sprintf(i18n.KeySubmitting)); err != nil {
				return "", err
			}
			if err := ctrl.Submit(ctx); err != nil && errors.Is(err, stepper.ErrSubmitted) {
				return OutcomeSubmitted, nil
			}
		}
	}
}

func (r *Runner) promptField(ctx context.Context, ctrl *stepper.Controller, cat catalog.Catalog, spec model.FieldSpec) error {
	fc := cat.Field(string(spec.Field))
	values := ctrl.State().Values
	help := strings.TrimSpace(strings.Join([]string{fc.Help, fc.Placeholder}, " "))

	switch spec.Input {
	case model.InputMultiSelect:
		options := cat.OptionList(spec.Options)
		current, err := values.Set(spec.Field)
		if err != nil {
			return err
		}
		picked, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  fc.Label,
			Options:  options,
			Defaults: indicesOf(options, current),
			Help:     help,
		})
		if err != nil {
			return err
		}
		return applySelection(ctrl, spec.Field, options, current, picked)

	case model.InputSelect:
		options := cat.OptionList(spec.Options)
		current, err := values.Text(spec.Field)
		if err != nil {
			return err
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      fc.Label,
			Options:      options,
			DefaultIndex: indexOf(options, current),
			Help:         help,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(options) {
			return nil
		}
		return ctrl.Set(spec.Field, options[idx])

	case model.InputTextArea:
		current, err := values.Text(spec.Field)
		if err != nil {
			return err
		}
		out, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: fc.Label,
			Default: current,
			Help:    help,
		})
		if err != nil {
			return err
		}
		return setIfChanged(ctrl, spec.Field, current, out)

	default:
		current, err := values.Text(spec.Field)
		if err != nil {
			return err
		}
		cfg := InputConfig{
			Message: fc.Label,
			Default: current,
			Help:    help,
		}
		if spec.Input == model.InputEmail {
			cfg.Validator = emailHint
		}
		out, err := r.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		return setIfChanged(ctrl, spec.Field, current, out)
	}
}

// emailHint lets blank input through so the controller reports it as
// required instead of invalid.
func emailHint(value string) error {
	if validation.IsBlank(value) || validation.IsValidEmail(value) {
		return nil
	}
	return errors.New(i18n.DefaultPrinter().Sprintf(i18n.KeyEmailInvalid))
}

func (r *Runner) promptAction(ctx context.Context, printer *message.Printer, st stepper.State) (action, error) {
	forward, forwardLabel := actionNext, printer.Sprintf(i18n.KeyNext)
	if st.Final() {
		forward, forwardLabel = actionSubmit, printer.Sprintf(i18n.KeySubmit)
	}
	backLabel := printer.Sprintf(i18n.KeyBack)
	if st.Step == 1 {
		backLabel = printer.Sprintf(i18n.KeyCancel)
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message: printer.Sprintf(i18n.KeyProgress, st.Step, st.Total),
		Options: []string{forwardLabel, backLabel},
	})
	if err != nil {
		return 0, err
	}
	if idx == 1 {
		return actionBack, nil
	}
	return forward, nil
}

func (r *Runner) showErrors(ctx context.Context, printer *message.Printer, errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	lines := []string{printer.Sprintf(i18n.KeyErrorsHint)}
	for _, e := range errs {
		lines = append(lines, r.theme.ErrorPrefix+e)
	}
	return r.driver.Info(ctx, strings.Join(lines, "\n"))
}

func (r *Runner) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func setIfChanged(ctrl *stepper.Controller, field model.Field, current, next string) error {
	if next == current {
		return nil
	}
	return ctrl.Set(field, next)
}

// applySelection toggles options until the set matches picked. Members that
// are not among options are left alone.
func applySelection(ctrl *stepper.Controller, field model.Field, options, current []string, picked []int) error {
	want := make(map[string]bool, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(options) {
			want[options[idx]] = true
		}
	}
	have := make(map[string]bool, len(current))
	for _, v := range current {
		have[v] = true
	}
	for _, option := range options {
		if want[option] != have[option] {
			if err := ctrl.Toggle(field, option); err != nil {
				return err
			}
		}
	}
	return nil
}
