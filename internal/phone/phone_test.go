package phone

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain 11 digits", "01012345678", "010-1234-5678"},
		{"already hyphenated", "010-1234-5678", "010-1234-5678"},
		{"spaces and dots", "010.1234 5678", "010-1234-5678"},
		{"10 digits returned unchanged", "0101234567", "0101234567"},
		{"12 digits returned unchanged", "010123456789", "010123456789"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain 11 digits", "01012345678", "010-****-5678"},
		{"formatting invariant", "010-1234-5678", "010-****-5678"},
		{"other prefix", "01187654321", "011-****-4321"},
		// No minimum length check: prefix and suffix overlap on short input.
		{"short input overlaps", "12345", "123-****-2345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mask(tt.in))
		})
	}
}

func TestSafeNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^050-\d{4}-\d{4}$`)

	for i := 0; i < 100; i++ {
		n, err := SafeNumber()
		require.NoError(t, err)
		assert.Regexp(t, pattern, n)
	}
}
