package manifest

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/teranos/stencil/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report manifest keys rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks required names, visibilities and class uniqueness. All
// violations are reported in one ErrInvalidManifest error.
func (m *Manifest) Validate() error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "failed to validate manifest")
	}

	messages := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		messages = append(messages, fieldPath(ve)+": "+formatValidationError(ve))
	}
	return errors.NewInvalidManifestError("%s", strings.Join(messages, "; "))
}

// fieldPath drops the root struct name: "Manifest.classes[0].name" becomes
// "classes[0].name".
func fieldPath(ve validator.FieldError) string {
	_, path, found := strings.Cut(ve.Namespace(), ".")
	if !found {
		return ve.Field()
	}
	return path
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", ve.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "unique":
		return fmt.Sprintf("duplicate %s", strings.ToLower(ve.Param()))
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
