// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"portfoliotracker/internal/models"
)

var tickerRegex = regexp.MustCompile(`^[A-Za-z0-9.^=-]{1,20}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("ticker", validateTicker)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
	}
}

// decimalValue lets numeric tags such as gt=0 apply to decimal fields.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// ValidTicker reports whether s is 1 to 20 characters of letters, digits
// and ". ^ = -".
func ValidTicker(s string) bool {
	return tickerRegex.MatchString(s)
}

func validateTicker(fl validator.FieldLevel) bool {
	return ValidTicker(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	_, ok := models.ParseTransactionType(fl.Field().String())
	return ok
}
