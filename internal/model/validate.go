package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		return Status(fl.Field().String()).Valid()
	}); err != nil {
		panic(fmt.Sprintf("failed to register task_status validator: %v", err))
	}
	if err := validate.RegisterValidation("task_priority", func(fl validator.FieldLevel) bool {
		return Priority(fl.Field().String()).Valid()
	}); err != nil {
		panic(fmt.Sprintf("failed to register task_priority validator: %v", err))
	}
	if err := validate.RegisterValidation("task_category", func(fl validator.FieldLevel) bool {
		return IsCategory(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("failed to register task_category validator: %v", err))
	}
}

// IsCategory reports whether c is one of Categories.
func IsCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Validate checks a task the way the task form does before submitting it.
// Collection operations never call it.
func Validate(t Task) error {
	t.Title = strings.TrimSpace(t.Title)
	return validate.Struct(t)
}

// FieldErrors maps the failures in err to a message per field name.
// Errors that did not come from Validate are reported under "".
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "datetime":
		return "use YYYY-MM-DD"
	case "task_status":
		return "unknown status"
	case "task_priority":
		return "unknown priority"
	case "task_category":
		return "pick one of " + strings.Join(Categories, ", ")
	}
	return "invalid"
}
