// internal/utils/validator.go
package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report JSON field names so errors line up with the request body
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// Money fields validate by their decimal text
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := validate.RegisterValidation("money", validateMoney); err != nil {
		panic(err)
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Amounts are stored as decimal(10,2).
const (
	MoneyPrecision = 10
	MoneyScale     = 2
)

var maxMoney = decimal.New(1, MoneyPrecision-MoneyScale)

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// validateMoney accepts non-negative amounts that fit the money column
// without rounding.
func validateMoney(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !amount.IsNegative() &&
		amount.Equal(amount.Truncate(MoneyScale)) &&
		amount.LessThan(maxMoney)
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   e.Field(),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "gte":
		return e.Field() + " must not be negative"
	case "money":
		return fmt.Sprintf("%s must be between 0 and %s with at most %d decimal places",
			e.Field(), maxMoney.Sub(decimal.New(1, -MoneyScale)).StringFixed(MoneyScale), MoneyScale)
	default:
		return e.Field() + " is invalid"
	}
}
