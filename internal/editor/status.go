package editor

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/adilbekov/catalog-admin/internal/model"
)

// StockStatus derives the product status label from units on hand. It is
// a pure function of stock; clients cannot override the result.
func StockStatus(stock int) string {
	switch {
	case stock == 0:
		return model.StatusOutOfStock
	case stock <= 10:
		return model.StatusLowStock
	default:
		return model.StatusActive
	}
}

// parsePrice accepts the draft's free-form price text, with or without a
// leading dollar sign, and returns the exact decimal value.
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	return decimal.NewFromString(s)
}

// formatPrice renders the stored form: "$" plus two decimal places, so
// "19.9" commits as "$19.90".
func formatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
