package logconfig

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// validate checks the struct tags of document entries. Field names in
// its errors are the YAML keys.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// checkSpec validates one document entry, returning one error per
// failed field.
func checkSpec(spec any) error {
	err := validate.Struct(spec)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var errs error
	for _, fe := range fieldErrs {
		errs = multierr.Append(errs, fieldError(fe))
	}
	return errs
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return errors.Errorf("%s is required", fe.Field())
	default:
		return errors.Errorf("%s failed %q validation", fe.Field(), fe.Tag())
	}
}
