package normalize

import (
	"math"
	"testing"
)

func TestParsePriceCurrencyDetection(t *testing.T) {
	tests := []struct {
		text     string
		currency string
	}{
		{"₹69,999", "INR"},
		{"$1,299.99", "USD"},
		{"€850", "EUR"},
		{"£499", "GBP"},
		{"12,345", "INR"}, // no symbol: default
	}

	for _, tt := range tests {
		got := ParsePrice(tt.text)
		if got.Currency != tt.currency {
			t.Errorf("ParsePrice(%q).Currency = %q; want %q", tt.text, got.Currency, tt.currency)
		}
	}
}

func TestParsePriceAmounts(t *testing.T) {
	tests := []struct {
		text   string
		amount float64
	}{
		{"₹69,999", 69999},
		{"₹1,200.50", 1200.50},
		{"$99", 99},
	}

	for _, tt := range tests {
		got := ParsePrice(tt.text)
		if got.Amount != tt.amount {
			t.Errorf("ParsePrice(%q).Amount = %v; want %v", tt.text, got.Amount, tt.amount)
		}
	}
}

func TestParsePriceUnparsable(t *testing.T) {
	for _, text := range []string{"", "Out of stock", "₹", "free"} {
		got := ParsePrice(text)
		if !math.IsInf(got.Amount, 1) {
			t.Errorf("ParsePrice(%q).Amount = %v; want +Inf", text, got.Amount)
		}
	}
}

func TestConvertIdentity(t *testing.T) {
	for _, c := range []string{"INR", "USD", "EUR", "GBP", "JPY"} {
		for _, amount := range []float64{0, 1, 99999.99, 1e12} {
			if got := Convert(amount, c, c); got != amount {
				t.Errorf("Convert(%v, %s, %s) = %v; want %v", amount, c, c, got, amount)
			}
		}
	}
}

func TestConvertKnownPair(t *testing.T) {
	got := Convert(100, "USD", "INR")
	if got != 8300 {
		t.Errorf("Convert(100, USD, INR) = %v; want 8300", got)
	}
}

func TestConvertUnknownCurrencyPassesThrough(t *testing.T) {
	if got := Convert(250, "JPY", "INR"); got != 250 {
		t.Errorf("Convert(250, JPY, INR) = %v; want 250", got)
	}
	if got := Convert(250, "INR", "JPY"); got != 250 {
		t.Errorf("Convert(250, INR, JPY) = %v; want 250", got)
	}
}
