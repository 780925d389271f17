package br_test

import (
	"testing"

	"github.com/primeonhub/agrocontabil_app/internal/utils/br"
	"github.com/stretchr/testify/assert"
)

func TestFormatTaxID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"CPF gets dots and dash", "12345678901", "123.456.789-01"},
		{"CNPJ gets dots slash and dash", "12345678901234", "12.345.678/9012-34"},
		{"short value unchanged", "1234567", "1234567"},
		{"empty value unchanged", "", ""},
		{"12 digits unchanged", "123456789012", "123456789012"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, br.FormatTaxID(tt.raw))
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "12345678901", br.DigitsOnly("123.456.789-01"))
	assert.Equal(t, "12345678901234", br.DigitsOnly("12.345.678/9012-34"))
	assert.Equal(t, "", br.DigitsOnly("abc-/."))
}
