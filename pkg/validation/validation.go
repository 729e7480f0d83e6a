package validation

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-brief/pkg/i18n"
	"github.com/goliatone/go-brief/pkg/model"
)

// EmailPattern is the local@domain.tld check shared by the form and the
// server.
const EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

var emailRe = regexp.MustCompile(EmailPattern)

// IsValidEmail reports whether value matches EmailPattern.
func IsValidEmail(value string) bool {
	return emailRe.MatchString(value)
}

// IsBlank reports whether value is empty after trimming whitespace.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// Validator maps form state to localized error messages.
type Validator struct {
	loc i18n.Localizer
}

// Option configures a Validator.
type Option func(*Validator)

// WithLocalizer overrides the message printer (Swedish by default).
func WithLocalizer(loc i18n.Localizer) Option {
	return func(v *Validator) {
		if loc != nil {
			v.loc = loc
		}
	}
}

// New constructs a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{loc: i18n.DefaultPrinter()}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

var defaultValidator = New()

// Validate checks the 1-based step using the default Swedish messages. Step 1
// holds the contact fields and step 2 the project fields in every variant;
// later steps have no required fields.
func Validate(step int, values model.FormValues) []string {
	return defaultValidator.Validate(step, values)
}

// ValidateAll checks every required field regardless of step.
func ValidateAll(values model.FormValues) []string {
	return defaultValidator.ValidateAll(values)
}

// Validate checks the fields gated by step.
func (v *Validator) Validate(step int, values model.FormValues) []string {
	switch step {
	case 1:
		return v.contact(values)
	case 2:
		return v.project(values)
	default:
		return []string{}
	}
}

// ValidateKind checks the fields gated by a step kind.
func (v *Validator) ValidateKind(kind model.StepKind, values model.FormValues) []string {
	switch kind {
	case model.StepContact:
		return v.contact(values)
	case model.StepProject:
		return v.project(values)
	default:
		return []string{}
	}
}

// ValidateAll returns the union of the contact and project checks.
func (v *Validator) ValidateAll(values model.FormValues) []string {
	return Merge(v.contact(values), v.project(values))
}

func (v *Validator) contact(values model.FormValues) []string {
	out := []string{}
	if IsBlank(values.Name) {
		out = append(out, v.loc.Sprintf(i18n.KeyNameRequired))
	}
	if IsBlank(values.Email) {
		out = append(out, v.loc.Sprintf(i18n.KeyEmailRequired))
	} else if !IsValidEmail(values.Email) {
		out = append(out, v.loc.Sprintf(i18n.KeyEmailInvalid))
	}
	return out
}

func (v *Validator) project(values model.FormValues) []string {
	out := []string{}
	if IsBlank(values.Description) {
		out = append(out, v.loc.Sprintf(i18n.KeyDescriptionRequired))
	}
	return out
}

// Merge combines message lists, trimming entries and dropping blanks and
// duplicates while preserving first-seen order.
func Merge(lists ...[]string) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, msg := range list {
			msg = strings.TrimSpace(msg)
			if msg == "" {
				continue
			}
			if _, ok := seen[msg]; ok {
				continue
			}
			seen[msg] = struct{}{}
			out = append(out, msg)
		}
	}
	return out
}
