package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUUID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"canonical", "3f2c9e5a-8a44-4c1e-9a53-0e1d2b7c6a10", true},
		{"upper case", "3F2C9E5A-8A44-4C1E-9A53-0E1D2B7C6A10", true},
		{"urn form", "urn:uuid:3f2c9e5a-8a44-4c1e-9a53-0e1d2b7c6a10", true},
		{"empty", "", false},
		{"short id", "abc-123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUUID(tt.input))
		})
	}
}
