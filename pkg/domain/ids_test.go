package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "maricheck/pkg/domain-errors"
)

// TestParseID_Invariants validates the parsing invariant:
// "IDs must be present, numeric and positive".
func TestParseID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseCrewID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := ParseStaffID("abc")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects zero and negatives", func(t *testing.T) {
		_, err := ParseCrewID("0")
		require.Error(t, err)
		_, err = ParseAdminID("-4")
		require.Error(t, err)
	})

	t.Run("accepts positive ids with surrounding space", func(t *testing.T) {
		id, err := ParseCrewID(" 42 ")
		require.NoError(t, err)
		assert.Equal(t, CrewID(42), id)
		assert.Equal(t, "42", id.String())
	})
}

func TestParsePassport(t *testing.T) {
	t.Run("normalizes to uppercase", func(t *testing.T) {
		p, err := ParsePassport("  ab1234567 ")
		require.NoError(t, err)
		assert.Equal(t, Passport("AB1234567"), p)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParsePassport("   ")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("enforces length bounds", func(t *testing.T) {
		_, err := ParsePassport("A123")
		require.Error(t, err)
		_, err = ParsePassport("A1234567890123456789012345678901234")
		require.Error(t, err)
	})
}
