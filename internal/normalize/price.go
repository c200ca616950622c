package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"pricescout/internal/models"
)

// DefaultCurrency is assumed when a price string carries no recognized
// symbol; the supported platforms all quote in rupees.
const DefaultCurrency = "INR"

var currencySymbols = []struct {
	symbol   string
	currency string
}{
	{"₹", "INR"},
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
}

// Static pairwise rates. Deliberately approximate: ranking needs a common
// unit, not live market accuracy.
var conversionRates = map[string]map[string]float64{
	"INR": {"USD": 0.012, "EUR": 0.011, "GBP": 0.0095},
	"USD": {"INR": 83.0, "EUR": 0.92, "GBP": 0.79},
	"EUR": {"INR": 90.0, "USD": 1.09, "GBP": 0.86},
	"GBP": {"INR": 105.0, "USD": 1.27, "EUR": 1.16},
}

var nonNumeric = regexp.MustCompile(`[^\d.]`)

// ParsePrice converts platform-native price text into an (amount,
// currency) pair. Text with no parsable number yields amount +Inf so the
// listing ranks last instead of being dropped.
func ParsePrice(text string) models.Price {
	currency := DefaultCurrency
	for _, cs := range currencySymbols {
		if strings.Contains(text, cs.symbol) {
			currency = cs.currency
			break
		}
	}

	digits := nonNumeric.ReplaceAllString(text, "")
	amount, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return models.Price{Amount: math.Inf(1), Currency: currency}
	}
	return models.Price{Amount: amount, Currency: currency}
}

// Convert applies the static rate table. The amount passes through
// unchanged when the currencies match or either one is unknown.
func Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	if rates, ok := conversionRates[from]; ok {
		if rate, ok := rates[to]; ok {
			return amount * rate
		}
	}
	return amount
}
