package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"vehicle-maintenance-backend/internal/database/models"
	apperrors "vehicle-maintenance-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var indexPattern = regexp.MustCompile(`\[(\w+)\]`)

var blankOrAliases = map[string]string{
	"blank_or_uuid":  "max=0|uuid",
	"blank_or_email": "max=0|email",
	"blank_or_url":   "max=0|url",
	"blank_or_state": "max=0|len=2",
}

// NewValidator returns a validator that reports JSON field names and knows the domain enums
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// decimals validate as floats so min/max tags apply to prices
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// omitempty does not skip "" behind a non-nil pointer; these accept "" as "clear the field"
	for alias, tags := range blankOrAliases {
		v.RegisterAlias(alias, tags)
	}

	enums := map[string]func(string) bool{
		"service_category": func(s string) bool { return models.ServiceCategory(s).IsValid() },
		"checklist_type":   func(s string) bool { return models.ChecklistType(s).IsValid() },
		"device_type":      func(s string) bool { return models.DeviceType(s).IsValid() },
		"user_type":        func(s string) bool { return models.UserType(s).IsValid() },
	}
	for tag, valid := range enums {
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		})
	}

	return v
}

// ValidateStruct runs the validator and converts failures into field-scoped errors
func ValidateStruct(v *validator.Validate, req interface{}) error {
	if err := v.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", translateValidationErrors(err))
	}
	return nil
}

func translateValidationErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(apperrors.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, &apperrors.ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldPath turns "CreateMaintenanceRequest.items[0].quantity" into "items.0.quantity"
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	return indexPattern.ReplaceAllString(namespace, ".$1")
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("may not be greater than %s characters", fe.Param())
		}
		return fmt.Sprintf("may not be greater than %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "blank_or_uuid":
		return "must be a valid UUID"
	case "blank_or_email":
		return "must be a valid email address"
	case "blank_or_url":
		return "must be a valid URL"
	case "blank_or_state":
		return "must be exactly 2 characters"
	case "uuid":
		return "must be a valid UUID"
	case "numeric":
		return "must be a number"
	case "datetime":
		return "must be a valid date (YYYY-MM-DD)"
	case "eqfield":
		return fmt.Sprintf("must match %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fieldMessageFor(fe.Tag())
}

var enumMessages = map[string]string{
	"service_category": "must be one of: mechanical, electrical, suspension, painting, finishing, interior, other",
	"checklist_type":   "must be one of: initial, final",
	"device_type":      "must be one of: android, ios, web",
	"user_type":        "must be one of: user, workshop",
}

// fieldMessageFor returns the message for a domain enum tag
func fieldMessageFor(tag string) string {
	if msg, ok := enumMessages[tag]; ok {
		return msg
	}
	return "is invalid"
}
