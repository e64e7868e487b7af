package util

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "0"},
		{"950", "950"},
		{"1000", "1,000"},
		{"1234567.5", "1,234,567.50"},
		{"1000.005", "1,000.01"},
		{"-0.5", "-0.50"},
		{"-1234.25", "-1,234.25"},
	}

	for _, tc := range tests {
		t.Run(tc.amount, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatMoney(decimal.RequireFromString(tc.amount)))
		})
	}
}

func TestTruncateContent(t *testing.T) {
	assert.Equal(t, "short", TruncateContent("short", 10))
	assert.Equal(t, "Steel...", TruncateContent("Steel beams", 5))
}
