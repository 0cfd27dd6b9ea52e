package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty input", "", []string{}},
		{"single value", "localhost:9092", []string{"localhost:9092"}},
		{"trims and drops blanks", " a, ,b ,", []string{"a", "b"}},
		{"dedupes preserving order", "2,1,2,3,1", []string{"2", "1", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}

func TestDedupeAndTrim_Nil(t *testing.T) {
	assert.Nil(t, DedupeAndTrim(nil))
}
