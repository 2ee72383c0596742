package textfold

import "testing"

func TestStripAccents(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Jane", "Jane"},
		{"Łukasz", "Lukasz"},
		{"Żółć", "Zolc"},
		{"José Müller", "Jose Muller"},
		{"Ørsted", "Orsted"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := StripAccents(tt.in); got != tt.want {
				t.Errorf("StripAccents(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFold(t *testing.T) {
	if got := Fold("Grzegorz BRZĘCZYSZCZYKIEWICZ"); got != "grzegorz brzeczyszczykiewicz" {
		t.Errorf("Fold = %q", got)
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Acme & Sons", "acmesons"},
		{"Kowalski-Nowak Sp. z o.o.", "kowalskinowakspzoo"},
		{"Zakład 24", "zaklad24"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Compact(tt.in); got != tt.want {
				t.Errorf("Compact(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
