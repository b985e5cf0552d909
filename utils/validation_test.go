package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"e164 brazilian", "+5511987654321", true},
		{"plain digits", "11987654321", true},
		{"with separators", "+55 (11) 98765-4321", true},
		{"too short", "+1", false},
		{"leading zero", "0123456", false},
		{"letters", "phone123", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePhone(tt.phone))
		})
	}
}
