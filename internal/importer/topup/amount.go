package topup

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/khawla-14/markyticket/internal/money"
)

var currencySuffixes = []string{"DZD", "DA", "€", "EUR"}

// parseFrenchAmount parses a French-formatted amount.
// Format examples: "1 234,56", "1.234,56", "500,00 DA", "12.5".
func parseFrenchAmount(s string) (money.Money, error) {
	clean := strings.TrimSpace(s)
	for _, suffix := range currencySuffixes {
		clean = strings.TrimSpace(strings.TrimSuffix(clean, suffix))
	}

	clean = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f':
			return -1
		}

		return r
	}, clean)

	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	} else if i := strings.LastIndex(clean, "."); i >= 0 && len(clean)-i-1 == 3 {
		// "1.234" is a thousands group, not three decimals.
		clean = strings.ReplaceAll(clean, ".", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return money.Zero, err
	}

	return money.New(d), nil
}
