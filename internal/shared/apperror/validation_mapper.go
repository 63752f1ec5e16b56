package apperror

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldMapper lets a module translate a specific validation failure into its
// own sentinel. Returning nil falls back to the generic mapping.
type FieldMapper func(fe validator.FieldError) error

func formatFieldName(s string) string {
	// recipient_phone -> recipient phone, hireDate -> hire Date
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case i > 0 && unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	caser := cases.Title(language.English)
	return caser.String(b.String())
}

func MapValidationError(err error, mappers ...FieldMapper) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		// only the first failure is reported
		e := errs[0]

		for _, m := range mappers {
			if mapped := m(e); mapped != nil {
				return mapped
			}
		}

		humanReadableField := formatFieldName(e.Field())
		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		default:
			return InvalidField(humanReadableField)
		}
	}

	return ErrInvalidInput
}
