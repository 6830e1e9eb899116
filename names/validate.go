package names

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// MinNameLength is the shortest accepted location name, in runes.
const MinNameLength = 2

// Sentinel errors for input validation.
var (
	// ErrInvalidName indicates a location name that violates the naming policy.
	ErrInvalidName = errors.New("names: invalid location name")

	// ErrInvalidDistance indicates a road distance that is not a positive integer.
	ErrInvalidDistance = errors.New("names: distance must be positive")
)

// Reasons attached to ErrInvalidName.
const (
	ReasonEmpty    = "name is empty"
	ReasonTooShort = "name is too short"
	ReasonCharset  = "name must contain only letters and spaces"
)

// cityNameTag is the custom validator tag for the letters-and-spaces rule.
const cityNameTag = "cityname"

// nameRules is the validator rule set applied to every location name.
var nameRules = fmt.Sprintf("required,min=%d,%s", MinNameLength, cityNameTag)

var cityNamePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// nameValidate is shared; validator.Validate is safe for concurrent use
// once its custom rules are registered.
var nameValidate *validator.Validate

func init() {
	nameValidate = validator.New()
	_ = nameValidate.RegisterValidation(cityNameTag, validateCityName)
}

// validateCityName accepts ASCII letters and whitespace only.
func validateCityName(fl validator.FieldLevel) bool {
	return cityNamePattern.MatchString(fl.Field().String())
}

// Validator exposes the shared validator so other packages (config)
// can apply the cityname tag to their own structs.
func Validator() *validator.Validate {
	return nameValidate
}

// Validate checks name against the naming policy.
// The returned error wraps ErrInvalidName and names the violated rule.
func Validate(name string) error {
	err := nameValidate.Var(name, nameRules)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	reason := ReasonCharset
	switch verrs[0].Tag() {
	case "required":
		reason = ReasonEmpty
	case "min":
		reason = ReasonTooShort
	}

	return fmt.Errorf("%w %q: %s", ErrInvalidName, name, reason)
}

// ValidateDistance checks that d is a usable road distance.
func ValidateDistance(d int) error {
	if d <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidDistance, d)
	}

	return nil
}
