// Package email normalizes and validates applicant contact addresses.
package email

import (
	"net/mail"
	"strings"
)

// Normalize trims surrounding whitespace and lowercases the domain part.
func Normalize(address string) string {
	address = strings.TrimSpace(address)
	at := strings.LastIndexByte(address, '@')
	if at <= 0 {
		return address
	}
	return address[:at] + "@" + strings.ToLower(address[at+1:])
}

// IsValid reports whether address is a bare addr-spec with a dotted domain.
// Display-name forms such as "Jane <jane@example.com>" are rejected.
func IsValid(address string) bool {
	if address == "" || len(address) > 254 {
		return false
	}
	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Address != address {
		return false
	}
	at := strings.LastIndexByte(address, '@')
	domain := address[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
