package document

import (
	"errors"
	"regexp"
	"testing"

	"github.com/zarlcorp/zpersona/internal/locale"
	"github.com/zarlcorp/zpersona/internal/random"
)

func openData(t *testing.T, tag string) (*random.Source, *locale.Data) {
	t.Helper()
	c, err := locale.Open(tag)
	if err != nil {
		t.Fatalf("open locale: %v", err)
	}
	rnd := random.New(17)
	return rnd, locale.NewData(c, rnd)
}

// valid reports whether the full weighted sum is divisible by 10.
func (s scheme) valid(number string) bool {
	if len(number) != len(s.weights) {
		return false
	}
	sum := 0
	for i := range number {
		sum += charValue(number[i]) * s.weights[i]
	}
	return sum%10 == 0
}

func TestPolishIdentityCard(t *testing.T) {
	rnd, data := openData(t, "pl")
	p := NewIdentityCards(rnd, data)
	shape := regexp.MustCompile(`^[A-Z]{3}\d{6}$`)

	for range 200 {
		n, err := p.Get()
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !shape.MatchString(n) {
			t.Fatalf("card %q should be AAA######", n)
		}
		if !polishIdentityCard.valid(n) {
			t.Fatalf("card %q fails its check digit", n)
		}
	}
}

func TestPolishIdentityCardKnownValue(t *testing.T) {
	// published specimen number
	if !polishIdentityCard.valid("ABA300000") {
		t.Error("ABA300000 should be valid")
	}
	if polishIdentityCard.valid("ABA300001") {
		t.Error("ABA300001 should be invalid")
	}
}

func TestPolishPassport(t *testing.T) {
	rnd, data := openData(t, "pl")
	p := NewPassports(rnd, data)
	shape := regexp.MustCompile(`^[A-Z]{2}\d{7}$`)

	for range 200 {
		n, err := p.Get()
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !shape.MatchString(n) {
			t.Fatalf("passport %q should be AA#######", n)
		}
		if !polishPassport.valid(n) {
			t.Fatalf("passport %q fails its check digit", n)
		}
	}
}

func TestEnglishFormats(t *testing.T) {
	rnd, data := openData(t, "en")
	nine := regexp.MustCompile(`^\d{9}$`)

	card, err := NewIdentityCards(rnd, data).Get()
	if err != nil {
		t.Fatalf("card: %v", err)
	}
	if !nine.MatchString(card) {
		t.Errorf("card %q should be nine digits", card)
	}

	pass, err := NewPassports(rnd, data).Get()
	if err != nil {
		t.Fatalf("passport: %v", err)
	}
	if !nine.MatchString(pass) {
		t.Errorf("passport %q should be nine digits", pass)
	}
}

func TestMissingFormat(t *testing.T) {
	c, err := locale.Parse("xx", []byte("jobTitles: [Baker]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rnd := random.New(1)
	data := locale.NewData(c, rnd)

	if _, err := NewIdentityCards(rnd, data).Get(); !errors.Is(err, locale.ErrNoData) {
		t.Errorf("card = %v, want ErrNoData", err)
	}
	if _, err := NewPassports(rnd, data).Get(); !errors.Is(err, locale.ErrNoData) {
		t.Errorf("passport = %v, want ErrNoData", err)
	}
}
