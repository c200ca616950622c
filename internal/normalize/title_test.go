package normalize

import "testing"

func TestTitleNormalization(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Samsung  Galaxy   S21", "samsung galaxy s21"},
		{"Samsung Galaxy S21 (Phantom Gray, 128 GB)", "samsung galaxy s21 phantom gray 128 gb"},
		{"  Nike Air-Max 90!  ", "nike airmax 90"},
		{"Galaxy - S21", "galaxy s21"}, // standalone punctuation token leaves no double space
		{"", ""},
	}

	for _, tt := range tests {
		if got := Title(tt.in); got != tt.want {
			t.Errorf("Title(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestTitleIdempotent(t *testing.T) {
	titles := []string{
		"Samsung Galaxy S21 (128 GB)",
		"Sony WH-1000XM4 Wireless Headphones",
		"Galaxy - S21",
		"iPhone 15 / Pro / Max",
		"plain already normal title",
	}
	for _, s := range titles {
		once := Title(s)
		if twice := Title(once); twice != once {
			t.Errorf("Title not idempotent for %q: %q != %q", s, twice, once)
		}
	}
}

func TestExtractIdentifiers(t *testing.T) {
	tests := []struct {
		title string
		model string
		brand string
	}{
		{"Sony WH-1000 Wireless Headphones", "WH-1000", "sony"},
		{"Samsung Galaxy Tab SM7200 Tablet", "SM7200", "samsung"},
		{"Generic 2021XYZ Gadget", "2021XYZ", ""},
		{"apple iphone case", "", "apple"},
		{"Plain product title", "", ""},
	}

	for _, tt := range tests {
		got := ExtractIdentifiers(tt.title)
		if got.ModelNumber != tt.model {
			t.Errorf("ExtractIdentifiers(%q).ModelNumber = %q; want %q", tt.title, got.ModelNumber, tt.model)
		}
		if got.Brand != tt.brand {
			t.Errorf("ExtractIdentifiers(%q).Brand = %q; want %q", tt.title, got.Brand, tt.brand)
		}
	}
}
