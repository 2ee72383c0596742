package address

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/zarlcorp/zpersona/internal/locale"
	"github.com/zarlcorp/zpersona/internal/random"
)

func newProvider(t *testing.T, tag string, seed uint64) *Provider {
	t.Helper()
	c, err := locale.Open(tag)
	if err != nil {
		t.Fatalf("open locale: %v", err)
	}
	rnd := random.New(seed)
	return NewProvider(rnd, locale.NewData(c, rnd))
}

func TestGetEnglish(t *testing.T) {
	p := newProvider(t, "en", 1)
	zip := regexp.MustCompile(`^\d{5}$`)

	for range 50 {
		a, err := p.Get()
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if a.Street == "" || a.City == "" || a.StreetNumber == "" {
			t.Errorf("incomplete address: %+v", a)
		}
		if !zip.MatchString(a.PostalCode) {
			t.Errorf("postal code %q is not 5 digits", a.PostalCode)
		}
		if !strings.HasPrefix(a.Line1, a.StreetNumber+" "+a.Street) {
			t.Errorf("line1 %q should start with number and street", a.Line1)
		}
		if a.ApartmentNumber != "" && !strings.HasSuffix(a.Line1, "Apt "+a.ApartmentNumber) {
			t.Errorf("line1 %q should end with the apartment", a.Line1)
		}
		if a.Line2 != a.City+" "+a.PostalCode {
			t.Errorf("line2 = %q", a.Line2)
		}
	}
}

func TestGetPolish(t *testing.T) {
	p := newProvider(t, "pl", 2)
	postal := regexp.MustCompile(`^\d{2}-\d{3}$`)

	sawFlat, sawHouse := false, false
	for range 100 {
		a, err := p.Get()
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !postal.MatchString(a.PostalCode) {
			t.Errorf("postal code %q does not match NN-NNN", a.PostalCode)
		}
		if !strings.HasPrefix(a.Line1, "ul. ") {
			t.Errorf("line1 %q should start with ul.", a.Line1)
		}
		if a.ApartmentNumber != "" {
			sawFlat = true
			if !strings.HasSuffix(a.Line1, "/"+a.ApartmentNumber) {
				t.Errorf("line1 %q should end with /apartment", a.Line1)
			}
		} else {
			sawHouse = true
		}
		if a.Line2 != a.PostalCode+" "+a.City {
			t.Errorf("line2 = %q", a.Line2)
		}
	}

	if !sawFlat || !sawHouse {
		t.Errorf("expected both flats and houses (flat=%v house=%v)", sawFlat, sawHouse)
	}
}

func TestGetMissingData(t *testing.T) {
	c, err := locale.Parse("xx", []byte("streets: [Main]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rnd := random.New(1)
	p := NewProvider(rnd, locale.NewData(c, rnd))

	if _, err := p.Get(); !errors.Is(err, locale.ErrNoData) {
		t.Fatalf("get = %v, want ErrNoData", err)
	}
}

func TestString(t *testing.T) {
	a := Address{Line1: "12 Oak Ave", Line2: "Portland 97201"}
	if got := a.String(); got != "12 Oak Ave, Portland 97201" {
		t.Errorf("String() = %q", got)
	}
}
