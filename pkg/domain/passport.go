package domain

import (
	"strings"

	dErrors "maricheck/pkg/domain-errors"
)

const (
	passportMinLength = 6
	passportMaxLength = 32
)

// Passport is a normalized passport number.
// Invariant: trimmed, uppercase, 6 to 32 characters.
//
// Construct via ParsePassport at trust boundaries; lookups that must tolerate
// arbitrary user input use NormalizePassport instead.
type Passport string

// NormalizePassport trims and uppercases a passport number without validating it.
func NormalizePassport(s string) Passport {
	return Passport(strings.ToUpper(strings.TrimSpace(s)))
}

// ParsePassport normalizes and validates a passport number.
func ParsePassport(s string) (Passport, error) {
	p := NormalizePassport(s)
	if p == "" {
		return "", dErrors.New(dErrors.CodeValidation, "passport is required")
	}
	if n := len(p); n < passportMinLength || n > passportMaxLength {
		return "", dErrors.New(dErrors.CodeValidation, "passport must be between 6 and 32 characters")
	}
	return p, nil
}

func (p Passport) String() string {
	return string(p)
}
