package validator

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	hexColourPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	slugPattern      = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

	phoneMu      sync.RWMutex
	phonePattern = mustPhonePattern("44")
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("hex7", func(fl validator.FieldLevel) bool {
		return hexColourPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return MatchPhone(fl.Field().String())
	})
}

// Validate validates a struct using its `validate` tags.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// SetPhoneCountryCode changes the country code accepted by the `phone` tag.
func SetPhoneCountryCode(code string) error {
	pattern, err := phonePatternFor(code)
	if err != nil {
		return err
	}
	phoneMu.Lock()
	phonePattern = pattern
	phoneMu.Unlock()
	return nil
}

// MatchPhone reports whether s is "+<country code>" followed by 9-12 digits.
func MatchPhone(s string) bool {
	phoneMu.RLock()
	defer phoneMu.RUnlock()
	return phonePattern.MatchString(s)
}

// IsHexColour reports whether s is a "#RRGGBB" colour.
func IsHexColour(s string) bool {
	return hexColourPattern.MatchString(s)
}

// FieldErrors flattens validator errors into field -> rule for API responses.
func FieldErrors(err error) map[string]interface{} {
	details := make(map[string]interface{})
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		details["error"] = err.Error()
		return details
	}
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	return details
}

func phonePatternFor(code string) (*regexp.Regexp, error) {
	if !regexp.MustCompile(`^\d{1,3}$`).MatchString(code) {
		return nil, fmt.Errorf("invalid phone country code %q", code)
	}
	return regexp.MustCompile(`^\+` + code + `\d{9,12}$`), nil
}

func mustPhonePattern(code string) *regexp.Regexp {
	p, err := phonePatternFor(code)
	if err != nil {
		panic(err)
	}
	return p
}
