package models

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"

	id "maricheck/pkg/domain"
)

const profileTokenEntropyBytes = 32

var profileTokenPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// NewProfileToken mints a profile access token: the SHA-256 hex digest of
// "{id}_{passport}_{hex(32 random bytes)}". A nil source uses crypto/rand.
func NewProfileToken(crewID id.CrewID, passport id.Passport, source io.Reader) (string, error) {
	if source == nil {
		source = rand.Reader
	}
	random := make([]byte, profileTokenEntropyBytes)
	if _, err := io.ReadFull(source, random); err != nil {
		return "", fmt.Errorf("read token entropy: %w", err)
	}
	sum := sha256.Sum256(fmt.Appendf(nil, "%s_%s_%s", crewID, passport, hex.EncodeToString(random)))
	return hex.EncodeToString(sum[:]), nil
}

// IsWellFormedProfileToken rejects anything that could not have been minted.
func IsWellFormedProfileToken(token string) bool {
	return profileTokenPattern.MatchString(token)
}

func (c *CrewMember) HasProfileToken() bool {
	return c.ProfileToken != ""
}

// MatchesProfileToken compares in constant time; a member without a token matches nothing.
func (c *CrewMember) MatchesProfileToken(token string) bool {
	if c.ProfileToken == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.ProfileToken), []byte(token)) == 1
}
