package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	dErrors "maricheck/pkg/domain-errors"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("admin123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	require.NoError(t, Verify("admin123", hash))

	err = Verify("admin124", hash)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestHash_Rejects(t *testing.T) {
	_, err := Hash("", bcrypt.MinCost)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))

	_, err = Hash(strings.Repeat("x", 80), bcrypt.MinCost)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestVerify_MalformedHash(t *testing.T) {
	err := Verify("admin123", "not-a-hash")
	require.Error(t, err)
	_, coded := dErrors.CodeOf(err)
	assert.False(t, coded)
}
