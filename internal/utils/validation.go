package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground validator with the Dutch rules the
// payloads need.
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator registers the custom Dutch validators.
func NewCustomValidator() *CustomValidator {
	v := validator.New()

	v.RegisterValidation("dutch_postcode", validateDutchPostcode)
	v.RegisterValidation("dutch_phone", validateDutchPhone)

	return &CustomValidator{validate: v}
}

// Validate validates a struct.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}

// ValidationErrors flattens validator errors into field → message, for JSON
// error responses.
func (cv *CustomValidator) ValidationErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "dit veld is verplicht"
		case "dutch_postcode":
			out[fe.Field()] = "ongeldige postcode, gebruik het formaat 1234 AB"
		case "dutch_phone":
			out[fe.Field()] = "ongeldig telefoonnummer"
		default:
			out[fe.Field()] = "ongeldige waarde (" + fe.Tag() + ")"
		}
	}
	return out
}

var dutchPostcodeRegex = regexp.MustCompile(`^[1-9][0-9]{3}\s?[A-Za-z]{2}$`)

func validateDutchPostcode(fl validator.FieldLevel) bool {
	return dutchPostcodeRegex.MatchString(fl.Field().String())
}

var dutchPhoneRegex = regexp.MustCompile(`^(\+31|0031|0)[1-9][0-9]{8}$`)

func validateDutchPhone(fl validator.FieldLevel) bool {
	phone := strings.NewReplacer(" ", "", "-", "").Replace(fl.Field().String())
	return dutchPhoneRegex.MatchString(phone)
}

// NormalizePostcode canonicalizes a Dutch postcode to "1234 AB" form, and
// reports whether the input was a valid postcode at all.
func NormalizePostcode(input string) (string, bool) {
	s := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(input), " ", ""))
	if !dutchPostcodeRegex.MatchString(s) {
		return "", false
	}
	return s[:4] + " " + s[4:], true
}
