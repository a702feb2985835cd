package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Currency is one of the two currencies prices are recorded in.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyNOK Currency = "NOK"
)

// ParseCurrency accepts "EUR" or "NOK" in any case. An empty string means EUR.
func ParseCurrency(s string) (Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(CurrencyEUR):
		return CurrencyEUR, nil
	case string(CurrencyNOK):
		return CurrencyNOK, nil
	}
	return "", fmt.Errorf("%w: unsupported currency %q", ErrValidation, s)
}

// FormatAmount renders v the way the budget view shows it: "€79" or "910 kr".
// Whole amounts have no decimals; anything else gets two.
func FormatAmount(c Currency, v float64) string {
	var n string
	if v == math.Trunc(v) {
		n = fmt.Sprintf("%.0f", v)
	} else {
		n = fmt.Sprintf("%.2f", v)
	}
	if c == CurrencyNOK {
		return n + " kr"
	}
	return "€" + n
}

// BudgetItem is one paid activity in the budget breakdown.
type BudgetItem struct {
	ActivityID uuid.UUID    `json:"activity_id"`
	Title      string       `json:"title"`
	Type       ActivityType `json:"type"`
	Amount     float64      `json:"amount"`
	Display    string       `json:"display"`
}

// BudgetSummary is the budget breakdown in a single currency.
type BudgetSummary struct {
	Currency     Currency     `json:"currency"`
	Total        float64      `json:"total"`
	TotalDisplay string       `json:"total_display"`
	Items        []BudgetItem `json:"items"`
}
