// Package validator provides custom validation functions for Gin's binding
// engine and for the standalone validation of parsed form input.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"tradelog/internal/journal"
)

var symbolRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9./:_-]{0,31}$`)

var customValidations = map[string]validator.Func{
	"month_key":    validateMonthKey,
	"month_status": validateMonthStatus,
	"pnl_source":   validatePnLSource,
	"trade_type":   validateTradeType,
	"trade_status": validateTradeStatus,
	"symbol":       validateSymbol,
}

var (
	standalone     *validator.Validate
	standaloneOnce sync.Once
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerAll(v)
	}
}

// Struct validates s with the custom validators registered, outside of Gin.
func Struct(s any) error {
	standaloneOnce.Do(func() {
		standalone = validator.New(validator.WithRequiredStructEnabled())
		standalone.RegisterTagNameFunc(jsonFieldName)
		registerAll(standalone)
	})
	return standalone.Struct(s)
}

// Describe turns validation errors into a short human-readable message.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeField(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "month_key":
		return field + " must be a month in YYYY-MM format"
	case "month_status":
		return field + " must be 'active' or 'closed'"
	case "pnl_source":
		return field + " must be 'manual' or 'trades'"
	case "trade_type":
		return field + " must be 'long' or 'short'"
	case "trade_status":
		return field + " must be 'open' or 'closed'"
	case "symbol":
		return field + " must be 1-32 letters, digits or . / : _ -"
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

func registerAll(v *validator.Validate) {
	for tag, fn := range customValidations {
		_ = v.RegisterValidation(tag, fn)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

func validateMonthKey(fl validator.FieldLevel) bool {
	_, ok := journal.ParseMonthKey(fl.Field().String())
	return ok
}

func validateMonthStatus(fl validator.FieldLevel) bool {
	switch journal.MonthStatus(fl.Field().String()) {
	case journal.MonthStatusActive, journal.MonthStatusClosed:
		return true
	}
	return false
}

func validatePnLSource(fl validator.FieldLevel) bool {
	switch journal.PnLSource(fl.Field().String()) {
	case journal.PnLSourceManual, journal.PnLSourceTrades:
		return true
	}
	return false
}

func validateTradeType(fl validator.FieldLevel) bool {
	switch journal.TradeType(fl.Field().String()) {
	case journal.TradeTypeLong, journal.TradeTypeShort:
		return true
	}
	return false
}

func validateTradeStatus(fl validator.FieldLevel) bool {
	switch journal.TradeStatus(fl.Field().String()) {
	case journal.TradeStatusOpen, journal.TradeStatusClosed:
		return true
	}
	return false
}

func validateSymbol(fl validator.FieldLevel) bool {
	return symbolRegex.MatchString(strings.ToUpper(fl.Field().String()))
}
