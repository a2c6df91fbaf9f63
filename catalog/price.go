package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"musicpass-backend/models"
)

const currencyPrefix = "R$"

// ParsePrice reads a BRL label such as "R$ 120" or "R$ 1.200,50".
func ParsePrice(label string) (decimal.Decimal, error) {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(label), currencyPrefix))
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty price %q", models.ErrValidation, label)
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price %q: %v", models.ErrValidation, label, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative price %q", models.ErrValidation, label)
	}
	return d, nil
}

// FormatPrice renders an amount the way the tickets show it: whole reais
// without decimals, otherwise two digits after a comma.
func FormatPrice(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return fmt.Sprintf("%s %s", currencyPrefix, d.StringFixed(0))
	}
	return fmt.Sprintf("%s %s", currencyPrefix, strings.Replace(d.StringFixed(2), ".", ",", 1))
}

func mustPrice(label string) decimal.Decimal {
	d, err := ParsePrice(label)
	if err != nil {
		panic(err)
	}
	return d
}
