// Package money converts between user-typed amount strings and the
// integer minor-unit (cent) representation stored in the ledger.
package money

import (
	"fmt"
	"strings"

	"github.com/jonaspay/jonaspay-bot/internal/apperrors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// amountCleaner strips thousands separators and the currency symbol.
var amountCleaner = strings.NewReplacer(",", "", "$", "")

// ParseAmount converts an amount string such as "500", "1,234.50" or
// "$12.3" into minor units, rounding to the nearest cent. A remainder
// that is not a decimal number yields apperrors.ErrInvalidAmount.
func ParseAmount(text string) (int64, error) {
	cleaned := amountCleaner.Replace(strings.TrimSpace(text))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, text)
	}
	return d.Mul(hundred).Round(0).IntPart(), nil
}

// FormatAmount renders minor units as a whole-dollar display string.
// Fractional dollars are truncated, not rounded: 150 and 199 cents
// both format as "$1". This mirrors how amounts appear in the chat
// cards, where only whole units are shown.
func FormatAmount(cents int64) string {
	major := decimal.NewFromInt(cents).Div(hundred).Truncate(0)
	return "$" + major.String()
}
