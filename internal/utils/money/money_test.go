package money_test

import (
	"errors"
	"testing"

	"github.com/jonaspay/jonaspay-bot/internal/apperrors"
	"github.com/jonaspay/jonaspay-bot/internal/utils/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int64
	}{
		{"plain integer", "500", 50000},
		{"thousands separator with cents", "1,234.50", 123450},
		{"currency symbol", "$12.30", 1230},
		{"symbol and separators", "$1,000", 100000},
		{"single fractional digit", "9.5", 950},
		{"sub-cent rounds to nearest", "0.005", 1},
		{"zero", "0", 0},
		{"surrounding whitespace", " 42 ", 4200},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.ParseAmount(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseAmountInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "12元", "1.2.3", "$", "五百"} {
		t.Run(input, func(t *testing.T) {
			_, err := money.ParseAmount(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidAmount))
		})
	}
}

func TestFormatAmountTruncates(t *testing.T) {
	assert.Equal(t, "$1234", money.FormatAmount(123450))
	// Display truncates fractional dollars: both sides of the
	// boundary collapse to the same string.
	assert.Equal(t, "$1", money.FormatAmount(150))
	assert.Equal(t, "$1", money.FormatAmount(199))
	assert.Equal(t, "$0", money.FormatAmount(99))
	assert.Equal(t, "$0", money.FormatAmount(0))
}

// Round-trip: for a well-formed decimal string with at most two
// fractional digits, format(parse(s)) is the truncated whole-dollar
// rendering of s.
func TestParseFormatRoundTrip(t *testing.T) {
	testCases := []struct {
		input    string
		rendered string
	}{
		{"500", "$500"},
		{"1,234.50", "$1234"},
		{"0.99", "$0"},
		{"19.01", "$19"},
		{"$3.50", "$3"},
	}

	for _, tc := range testCases {
		cents, err := money.ParseAmount(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.rendered, money.FormatAmount(cents), "input %q", tc.input)
	}
}
