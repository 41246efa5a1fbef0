package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnlyDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"formatted cpf", "123.456.789-00", "12345678900"},
		{"already clean is unchanged", "12345678900", "12345678900"},
		{"empty", "", ""},
		{"no digits at all", "abc-def", ""},
		{"digits mixed with words", "cpf: 42a7", "427"},
		{"unicode around digits", "nº 123", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OnlyDigits(tt.input))
		})
	}
}

func TestOnlyDigitsIdempotent(t *testing.T) {
	once := OnlyDigits("123.456.789-00")
	assert.Equal(t, once, OnlyDigits(once))
}
