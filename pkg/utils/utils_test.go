package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		hasError bool
	}{
		{
			name:     "Data válida no formato YYYY-MM-DD",
			input:    "2024-03-09",
			expected: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "String vazia vira data zero",
			input:    "",
			expected: time.Time{},
		},
		{
			name:     "Formato inválido retorna erro",
			input:    "09/03/2024",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, *date)
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "Arredonda para baixo",
			input:    7.142857,
			expected: 7.14,
		},
		{
			name:     "Arredonda para cima",
			input:    6.976744,
			expected: 6.98,
		},
		{
			name:     "Zero permanece zero",
			input:    0,
			expected: 0,
		},
		{
			name:     "Valor inteiro não muda",
			input:    100,
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.input))
		})
	}
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()

	assert.NoError(t, err)
	assert.Len(t, id, 6)
}
