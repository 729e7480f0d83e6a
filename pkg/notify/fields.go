package notify

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-brief/pkg/model"
	pkgvalidation "github.com/goliatone/go-brief/pkg/validation"
)

var (
	fieldValidatorInstance *validator.Validate
	fieldValidatorOnce     sync.Once
)

// requiredFields is the server-side view of the fields a brief cannot be
// sent without.
type requiredFields struct {
	Name        string `json:"name" validate:"nonblank"`
	Email       string `json:"email" validate:"nonblank,briefemail"`
	Description string `json:"description" validate:"nonblank"`
}

func fieldValidator() *validator.Validate {
	fieldValidatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
			return !pkgvalidation.IsBlank(fl.Field().String())
		})
		_ = v.RegisterValidation("briefemail", func(fl validator.FieldLevel) bool {
			return pkgvalidation.IsValidEmail(fl.Field().String())
		})
		fieldValidatorInstance = v
	})
	return fieldValidatorInstance
}

type fieldProblem int

const (
	fieldsOK fieldProblem = iota
	fieldsMissing
	fieldsInvalidEmail
)

// checkFields reports missing required fields before an invalid email.
func checkFields(values model.FormValues) (fieldProblem, error) {
	err := fieldValidator().Struct(requiredFields{
		Name:        values.Name,
		Email:       values.Email,
		Description: values.Description,
	})
	if err == nil {
		return fieldsOK, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fieldsMissing, err
	}
	problem := fieldsOK
	for _, fe := range verrs {
		switch fe.Tag() {
		case "nonblank":
			return fieldsMissing, err
		case "briefemail":
			problem = fieldsInvalidEmail
		}
	}
	return problem, err
}
