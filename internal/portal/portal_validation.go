package portal

import (
	"reflect"
	"regexp"
	"slices"

	portalerrors "salary-portal/internal/portal/errors"
	"salary-portal/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Deliberately loose: something@something.tld with no whitespace.
var basicEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(apperror.JSONTagName)

	// money is validated as a number so required/gt work on decimals
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return basicEmailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return slices.Contains(departments, fl.Field().String())
	})
	_ = v.RegisterValidation("increment_reason", func(fl validator.FieldLevel) bool {
		return slices.Contains(incrementReasons, fl.Field().String())
	})

	return v
}

func mapFieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "basic_email":
		return portalerrors.ErrInvalidEmail
	case "department":
		return portalerrors.ErrUnknownDepartment
	case "increment_reason":
		return portalerrors.ErrUnknownReason
	case "gt":
		return portalerrors.ErrSalaryNotPositive
	}
	return nil
}

func (s *Store) validateInput(in any) error {
	if err := s.validate.Struct(in); err != nil {
		return apperror.MapValidationError(err, mapFieldError)
	}
	return nil
}

// incrementPercentage is (new-old)/old*100 rounded to 2 places.
func incrementPercentage(oldSalary, newSalary decimal.Decimal) decimal.Decimal {
	if oldSalary.IsZero() {
		return decimal.Zero
	}
	return newSalary.Sub(oldSalary).
		Div(oldSalary).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
