package portal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the shared validation driver. It keeps no per-call state:
// one value is built at boot and serves every request concurrently, so each
// call returns its own field error map instead of recording it.
type Validator struct {
	driver *validator.Validate
}

func GetDefaultValidator() *Validator {
	driver := validator.New(
		validator.WithRequiredStructEnabled(),
	)

	return &Validator{driver: driver}
}

// Passes validates the given struct and returns every violated constraint,
// not just the first one, keyed by the lowerCamel field name.
func (v *Validator) Passes(data any) (bool, map[string]string) {
	err := v.driver.Struct(data)

	if err == nil {
		return true, nil
	}

	fields := map[string]string{}

	var issues validator.ValidationErrors
	if ok := asValidationErrors(err, &issues); !ok {
		fields["error"] = err.Error()

		return false, fields
	}

	for _, issue := range issues {
		field := strings.ToLower(issue.Field()[:1]) + issue.Field()[1:]
		fields[field] = describe(issue)
	}

	return false, fields
}

func (v *Validator) Rejects(data any) (bool, map[string]string) {
	ok, fields := v.Passes(data)

	return !ok, fields
}

func ErrorsAsJson(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return ""
	}

	return string(data)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	issues, ok := err.(validator.ValidationErrors)

	if ok {
		*target = issues
	}

	return ok
}

func describe(issue validator.FieldError) string {
	switch issue.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Please enter a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", issue.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", issue.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", issue.Param())
	case "eq":
		return fmt.Sprintf("Must be %s", issue.Param())
	default:
		return fmt.Sprintf("Failed the '%s' rule", issue.Tag())
	}
}
