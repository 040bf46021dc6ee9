// Package validator wraps go-playground/validator with the tags solwatch
// relies on and a standardized error chain.
//
// Besides the built-in tags it registers:
//
//   - solana_address: a base58 string that decodes to a 32-byte public key.
//   - txtype: one of the transaction type tags known to txclass.
//
// decimal.Decimal fields are validated as float64, so numeric tags such as
// `gte=0` work on amounts and thresholds.
package validator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/gabapcia/solwatch/internal/txclass"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"
)

// ErrValidationFailed is the first error of the chain returned when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// solanaPublicKeyLength is the size in bytes of a decoded Solana public key.
const solanaPublicKeyLength = 32

// validator is the package singleton, configured in init.
var validator *gvalidator.Validate

// errStringFormat describes one field failure.
//
// Example: "'Address': value 'abc' does not meet the requirements for the 'solana_address' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("solana_address", isSolanaAddress); err != nil {
		panic(err)
	}

	if err := validator.RegisterValidation("txtype", isTxType); err != nil {
		panic(err)
	}

	validator.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
}

// isSolanaAddress reports whether the field is a base58-encoded 32-byte key.
func isSolanaAddress(fl gvalidator.FieldLevel) bool {
	return IsSolanaAddress(fl.Field().String())
}

func isTxType(fl gvalidator.FieldLevel) bool {
	return txclass.Type(fl.Field().String()).IsValid()
}

// IsSolanaAddress reports whether s is a base58-encoded 32-byte public key.
func IsSolanaAddress(s string) bool {
	if s == "" {
		return false
	}

	raw, err := base58.Decode(s)
	if err != nil {
		return false
	}

	return len(raw) == solanaPublicKeyLength
}

// decimalValue exposes a decimal.Decimal to numeric tags as a float64.
func decimalValue(v reflect.Value) any {
	d, ok := v.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	f, _ := d.Float64()
	return f
}

// formatError turns validator errors into ErrValidationFailed joined with one
// message per field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject the request
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
