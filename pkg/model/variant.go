package model

import (
	"strings"

	"github.com/goliatone/go-brief/pkg/i18n"
)

// StepKind identifies what a step collects. Validation rules attach to kinds.
type StepKind string

const (
	StepContact  StepKind = "contact"
	StepProject  StepKind = "project"
	StepDesign   StepKind = "design"
	StepFeatures StepKind = "features"
	StepTimeline StepKind = "timeline"
)

// InputKind hints how a presentation layer should collect a field.
type InputKind string

const (
	InputText        InputKind = "text"
	InputEmail       InputKind = "email"
	InputTextArea    InputKind = "textarea"
	InputSelect      InputKind = "select"
	InputMultiSelect InputKind = "multiselect"
)

// Option list identifiers resolved through the copy catalog.
const (
	OptionsProjectTypes      = "projectTypes"
	OptionsProjectTypesBasic = "projectTypesBasic"
	OptionsFeatures          = "features"
	OptionsLogo              = "logo"
)

// FieldSpec describes one input within a step.
type FieldSpec struct {
	Field    Field
	Input    InputKind
	Required bool
	Options  string
}

// Step is one page of the form.
type Step struct {
	Kind     StepKind
	TitleKey string
	Fields   []FieldSpec
}

// Variant is a form layout. Every variant shares the FormValues shape.
type Variant struct {
	Name     string
	Extended bool
	Steps    []Step
}

var contactStep = Step{
	Kind:     StepContact,
	TitleKey: i18n.KeyStepContact,
	Fields: []FieldSpec{
		{Field: FieldName, Input: InputText, Required: true},
		{Field: FieldCompany, Input: InputText},
		{Field: FieldEmail, Input: InputEmail, Required: true},
		{Field: FieldPhone, Input: InputText},
	},
}

// Basic is the three step layout.
var Basic = Variant{
	Name: "basic",
	Steps: []Step{
		contactStep,
		{
			Kind:     StepProject,
			TitleKey: i18n.KeyStepProject,
			Fields: []FieldSpec{
				{Field: FieldProjectType, Input: InputMultiSelect, Options: OptionsProjectTypesBasic},
				{Field: FieldDescription, Input: InputTextArea, Required: true},
				{Field: FieldDeadline, Input: InputText},
			},
		},
		{
			Kind:     StepDesign,
			TitleKey: i18n.KeyStepDesign,
			Fields: []FieldSpec{
				{Field: FieldDesignStyle, Input: InputTextArea},
				{Field: FieldInspirationSites, Input: InputTextArea},
			},
		},
	},
}

// Extended is the five step layout.
var Extended = Variant{
	Name:     "extended",
	Extended: true,
	Steps: []Step{
		contactStep,
		{
			Kind:     StepProject,
			TitleKey: i18n.KeyStepProjectLong,
			Fields: []FieldSpec{
				{Field: FieldProjectType, Input: InputMultiSelect, Options: OptionsProjectTypes},
				{Field: FieldDescription, Input: InputTextArea, Required: true},
				{Field: FieldGoals, Input: InputTextArea},
				{Field: FieldTargetAudience, Input: InputTextArea},
			},
		},
		{
			Kind:     StepDesign,
			TitleKey: i18n.KeyStepDesignLong,
			Fields: []FieldSpec{
				{Field: FieldHasLogo, Input: InputSelect, Options: OptionsLogo},
				{Field: FieldDesignStyle, Input: InputTextArea},
				{Field: FieldCompetitors, Input: InputTextArea},
				{Field: FieldInspirationSites, Input: InputTextArea},
			},
		},
		{
			Kind:     StepFeatures,
			TitleKey: i18n.KeyStepFeatures,
			Fields: []FieldSpec{
				{Field: FieldFeatures, Input: InputMultiSelect, Options: OptionsFeatures},
				{Field: FieldOtherFeatures, Input: InputTextArea},
			},
		},
		{
			Kind:     StepTimeline,
			TitleKey: i18n.KeyStepTimeline,
			Fields: []FieldSpec{
				{Field: FieldDeadline, Input: InputText},
				{Field: FieldAdditionalInfo, Input: InputTextArea},
			},
		},
	},
}

// Variants lists the known layouts.
func Variants() []Variant {
	return []Variant{Basic, Extended}
}

// VariantByName looks a variant up by name, case-insensitively.
func VariantByName(name string) (Variant, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range Variants() {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// VariantFor infers the layout from the JSON keys present in a request body.
// Any extended-only key selects Extended.
func VariantFor(keys []string) Variant {
	extended := make(map[string]struct{}, len(ExtendedFields))
	for _, f := range ExtendedFields {
		extended[string(f)] = struct{}{}
	}
	for _, key := range keys {
		if _, ok := extended[key]; ok {
			return Extended
		}
	}
	return Basic
}

// Total returns the number of steps.
func (v Variant) Total() int {
	return len(v.Steps)
}

// Step returns the 1-based step n.
func (v Variant) Step(n int) (Step, bool) {
	if n < 1 || n > len(v.Steps) {
		return Step{}, false
	}
	return v.Steps[n-1], true
}

// Fields returns every field the variant collects, in step order.
func (v Variant) Fields() []Field {
	var out []Field
	seen := map[Field]struct{}{}
	for _, step := range v.Steps {
		for _, spec := range step.Fields {
			if _, ok := seen[spec.Field]; ok {
				continue
			}
			seen[spec.Field] = struct{}{}
			out = append(out, spec.Field)
		}
	}
	return out
}

// Payload shapes values into the request body for this variant. The basic
// layout omits the extended-only keys.
func (v Variant) Payload(values FormValues) any {
	values = values.Normalize()
	if v.Extended {
		return values
	}
	return basicPayload{
		Name:             values.Name,
		Company:          values.Company,
		Email:            values.Email,
		Phone:            values.Phone,
		ProjectType:      values.ProjectType,
		Description:      values.Description,
		Deadline:         values.Deadline,
		DesignStyle:      values.DesignStyle,
		InspirationSites: values.InspirationSites,
	}
}

type basicPayload struct {
	Name             string   `json:"name"`
	Company          string   `json:"company"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	ProjectType      []string `json:"projectType"`
	Description      string   `json:"description"`
	Deadline         string   `json:"deadline"`
	DesignStyle      string   `json:"designStyle"`
	InspirationSites string   `json:"inspirationSites"`
}
