package book

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator builds a validator that reports fields by their JSON names,
// matching what clients actually sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError reports why a payload was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ValidateCreate checks that a full create payload has every required field
// present and non-empty, and that numeric fields are not negative.
func ValidateCreate(in CreateInput) error {
	return firstViolation(in)
}

// ValidateUpdate checks the fields present in a partial payload. Fields the
// client did not send resolve to the stored values during the merge; a
// provided-but-empty field must still fail.
func ValidateUpdate(in UpdateInput) error {
	texts := []struct {
		name  string
		value *string
	}{
		{"title", in.Title},
		{"author", in.Author},
		{"genre", in.Genre},
		{"isbn", in.ISBN},
	}
	for _, f := range texts {
		if f.value != nil && *f.value == "" {
			return &ValidationError{Field: f.name, Message: fmt.Sprintf("%s must not be empty", f.name)}
		}
	}

	numbers := []struct {
		name  string
		value *int
	}{
		{"publishedYear", in.PublishedYear},
		{"stockCount", in.StockCount},
	}
	for _, f := range numbers {
		if f.value != nil && *f.value < 0 {
			return &ValidationError{Field: f.name, Message: fmt.Sprintf("%s must not be negative", f.name)}
		}
	}
	return nil
}

func firstViolation(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &ValidationError{Message: "invalid payload"}
	}
	fe := verrs[0]
	return &ValidationError{Field: fe.Field(), Message: messageFor(fe.Field(), fe.Tag())}
}

func messageFor(field, tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must not be empty", field)
	case "gte":
		return fmt.Sprintf("%s must not be negative", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
