package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidCity is matched by every ValidationError.
var ErrInvalidCity = errors.New("invalid city name")

// ValidationError reports a city name rejected before any network call.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidCity, e.Input)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidCity
}

// NormalizeCity strips trailing whitespace. Leading whitespace is kept.
func NormalizeCity(raw string) string {
	return strings.TrimRightFunc(raw, unicode.IsSpace)
}

// ValidateCity accepts a non-empty name made only of letters and whitespace.
func ValidateCity(city string) error {
	if city == "" {
		return &ValidationError{Input: city}
	}
	for _, r := range city {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return &ValidationError{Input: city}
		}
	}
	return nil
}
