package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12가1234", "12가1234"},
		{" 12가1234 ", "12가1234"},
		{"12 가 1234", "12가1234"},
		{"abc123", "ABC123"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePlate(tt.in))
	}
}
