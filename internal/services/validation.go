package services

import (
	"fmt"
	"strings"
	"time"

	"portfolio/internal/apperr"

	"github.com/go-playground/validator/v10"
)

// dateLayout is the textual date format of all form date fields.
const dateLayout = "2006-01-02"

// validateInput runs struct validation and converts failures into a single
// user-facing validation error naming the offending fields.
func validateInput(v *validator.Validate, op string, in interface{}) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.E(apperr.CodeInvalidArgument, op, "invalid input", err)
	}
	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", e.Field(), e.Tag()))
	}
	return apperr.E(apperr.CodeInvalidArgument, op,
		"invalid fields: "+strings.Join(fields, ", "), err)
}

// parseDate parses a required form date.
func parseDate(op, field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperr.E(apperr.CodeInvalidArgument, op,
			fmt.Sprintf("%s must be a date in the form %s", field, dateLayout), err)
	}
	return t, nil
}

// parseOptionalDate parses an optional form date; empty means nil.
func parseOptionalDate(op, field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := parseDate(op, field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
