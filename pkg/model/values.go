package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when a field name is not part of FormValues or
// is used with the wrong kind of mutation.
var ErrUnknownField = errors.New("model: unknown field")

// Field names a FormValues entry by its JSON key.
type Field string

const (
	FieldName             Field = "name"
	FieldCompany          Field = "company"
	FieldEmail            Field = "email"
	FieldPhone            Field = "phone"
	FieldProjectType      Field = "projectType"
	FieldDescription      Field = "description"
	FieldDeadline         Field = "deadline"
	FieldDesignStyle      Field = "designStyle"
	FieldInspirationSites Field = "inspirationSites"
	FieldGoals            Field = "goals"
	FieldTargetAudience   Field = "targetAudience"
	FieldHasLogo          Field = "hasLogo"
	FieldCompetitors      Field = "competitors"
	FieldFeatures         Field = "features"
	FieldOtherFeatures    Field = "otherFeatures"
	FieldAdditionalInfo   Field = "additionalInfo"
)

// ExtendedFields lists the keys only the extended variant carries.
var ExtendedFields = []Field{
	FieldGoals,
	FieldTargetAudience,
	FieldHasLogo,
	FieldCompetitors,
	FieldFeatures,
	FieldOtherFeatures,
	FieldAdditionalInfo,
}

// FormValues is the single mutable entity of the brief form.
type FormValues struct {
	Name             string   `json:"name"`
	Company          string   `json:"company"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	ProjectType      []string `json:"projectType"`
	Description      string   `json:"description"`
	Deadline         string   `json:"deadline"`
	DesignStyle      string   `json:"designStyle"`
	InspirationSites string   `json:"inspirationSites"`
	Goals            string   `json:"goals"`
	TargetAudience   string   `json:"targetAudience"`
	HasLogo          string   `json:"hasLogo"`
	Competitors      string   `json:"competitors"`
	Features         []string `json:"features"`
	OtherFeatures    string   `json:"otherFeatures"`
	AdditionalInfo   string   `json:"additionalInfo"`
}

// Defaults returns FormValues with every field set to its empty value.
func Defaults() FormValues {
	return FormValues{
		ProjectType: []string{},
		Features:    []string{},
	}
}

// Normalize returns a copy with nil sets replaced by empty ones and duplicate
// set members removed, keeping first-seen order.
func (v FormValues) Normalize() FormValues {
	v.ProjectType = dedupe(v.ProjectType)
	v.Features = dedupe(v.Features)
	return v
}

// Clone returns a deep copy.
func (v FormValues) Clone() FormValues {
	out := v
	out.ProjectType = append([]string{}, v.ProjectType...)
	out.Features = append([]string{}, v.Features...)
	return out
}

// Text returns the value of a free-text field.
func (v FormValues) Text(field Field) (string, error) {
	ptr := v.textPtr(field)
	if ptr == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return *ptr, nil
}

// Set returns the slice backing a set field.
func (v FormValues) Set(field Field) ([]string, error) {
	ptr := v.setPtr(field)
	if ptr == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return append([]string{}, (*ptr)...), nil
}

// WithText returns a copy with the free-text field replaced.
func (v FormValues) WithText(field Field, value string) (FormValues, error) {
	out := v.Clone()
	ptr := out.textPtr(field)
	if ptr == nil {
		return v, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	*ptr = value
	return out, nil
}

// WithToggle returns a copy where option is removed from the set field when
// present and appended when absent.
func (v FormValues) WithToggle(field Field, option string) (FormValues, error) {
	out := v.Clone()
	ptr := out.setPtr(field)
	if ptr == nil {
		return v, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	*ptr = Toggle(*ptr, option)
	return out, nil
}

// IsSetField reports whether field holds a set of options.
func IsSetField(field Field) bool {
	return field == FieldProjectType || field == FieldFeatures
}

// Toggle removes value from set when present and appends it otherwise. The
// input slice is not modified.
func Toggle(set []string, value string) []string {
	out := make([]string, 0, len(set)+1)
	found := false
	for _, item := range set {
		if item == value {
			found = true
			continue
		}
		out = append(out, item)
	}
	if !found {
		out = append(out, value)
	}
	return out
}

// HasExtended reports whether any extended-only field carries data.
func (v FormValues) HasExtended() bool {
	for _, field := range ExtendedFields {
		if IsSetField(field) {
			if set, _ := v.Set(field); len(set) > 0 {
				return true
			}
			continue
		}
		if text, _ := v.Text(field); strings.TrimSpace(text) != "" {
			return true
		}
	}
	return false
}

func (v *FormValues) textPtr(field Field) *string {
	switch field {
	case FieldName:
		return &v.Name
	case FieldCompany:
		return &v.Company
	case FieldEmail:
		return &v.Email
	case FieldPhone:
		return &v.Phone
	case FieldDescription:
		return &v.Description
	case FieldDeadline:
		return &v.Deadline
	case FieldDesignStyle:
		return &v.DesignStyle
	case FieldInspirationSites:
		return &v.InspirationSites
	case FieldGoals:
		return &v.Goals
	case FieldTargetAudience:
		return &v.TargetAudience
	case FieldHasLogo:
		return &v.HasLogo
	case FieldCompetitors:
		return &v.Competitors
	case FieldOtherFeatures:
		return &v.OtherFeatures
	case FieldAdditionalInfo:
		return &v.AdditionalInfo
	default:
		return nil
	}
}

func (v *FormValues) setPtr(field Field) *[]string {
	switch field {
	case FieldProjectType:
		return &v.ProjectType
	case FieldFeatures:
		return &v.Features
	default:
		return nil
	}
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
