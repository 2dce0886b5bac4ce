// Package forms turns raw, string-valued form input into validated, strongly
// typed values for the journal engine. Nothing numeric reaches the engine
// without passing through here.
package forms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/validator"
)

// Value is a raw form field. It decodes from a JSON string or a JSON number
// so that API clients can send either.
type Value string

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected a number or string, got %s", data)
		}
		*v = Value(n.String())
	}
	return nil
}

// IsBlank reports whether the field was left empty.
func (v Value) IsBlank() bool {
	return strings.TrimSpace(string(v)) == ""
}

// dateLayouts are tried in order by ParseFlexibleTime.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseFlexibleTime parses a date entered as YYYY-MM-DD or an RFC 3339 timestamp.
func ParseFlexibleTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or RFC3339", s)
}

// parseCurrency parses a money amount, ignoring currency symbols, thousands
// separators and spaces. The result is rounded to cents.
func parseCurrency(field string, v Value) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(string(v))
	if cleaned == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, invalidField(field, "must be a number")
	}
	return d.Round(2).InexactFloat64(), nil
}

// parseNumber parses a price or quantity at full precision.
func parseNumber(field string, v Value) (float64, error) {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(string(v))
	if cleaned == "" {
		return 0, invalidField(field, "is required")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, invalidField(field, "must be a number")
	}
	return d.InexactFloat64(), nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func invalidField(field, msg string) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, field+" "+msg)
}

// validate runs struct-tag validation and maps failures to ErrInvalidInput.
func validate(s any) error {
	if err := validator.Struct(s); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, validator.Describe(err))
	}
	return nil
}
