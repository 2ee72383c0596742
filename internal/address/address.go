// Package address generates postal addresses from locale corpora.
package address

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zarlcorp/zpersona/internal/locale"
)

// Address is a generated postal address. Lines are pre-rendered in the
// conventions of the locale that produced it.
type Address struct {
	Street          string `json:"street"`
	StreetNumber    string `json:"street_number"`
	ApartmentNumber string `json:"apartment_number,omitempty"`
	PostalCode      string `json:"postal_code"`
	City            string `json:"city"`
	Line1           string `json:"line1"`
	Line2           string `json:"line2"`
}

// String joins both address lines.
func (a Address) String() string {
	return a.Line1 + ", " + a.Line2
}

// Random is the subset of the random source addresses need.
type Random interface {
	Bool() bool
	IntBetween(lo, hi int) int
	Numerify(pattern string) string
}

// Corpus is the subset of locale data addresses need.
type Corpus interface {
	RandomValue(category string) (string, error)
	Format(name string) (string, error)
}

// Provider produces a fresh address on every call.
type Provider struct {
	rnd  Random
	data Corpus
}

// NewProvider creates an address provider.
func NewProvider(rnd Random, data Corpus) *Provider {
	return &Provider{rnd: rnd, data: data}
}

// Get generates an address.
func (p *Provider) Get() (Address, error) {
	street, err := p.data.RandomValue(locale.Streets)
	if err != nil {
		return Address{}, fmt.Errorf("address street: %w", err)
	}

	city, err := p.data.RandomValue(locale.Cities)
	if err != nil {
		return Address{}, fmt.Errorf("address city: %w", err)
	}

	postal, err := p.data.Format(locale.FormatPostalCode)
	if err != nil {
		return Address{}, fmt.Errorf("address postal code: %w", err)
	}

	a := Address{
		Street:       street,
		StreetNumber: strconv.Itoa(p.rnd.IntBetween(1, 999)),
		PostalCode:   p.rnd.Numerify(postal),
		City:         city,
	}

	// roughly half of generated addresses are flats
	if p.rnd.Bool() {
		a.ApartmentNumber = strconv.Itoa(p.rnd.IntBetween(1, 150))
	}

	if err := p.render(&a); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (p *Provider) render(a *Address) error {
	line1, err := p.data.Format(locale.FormatAddressLine1)
	if err != nil {
		return fmt.Errorf("address line1: %w", err)
	}
	line2, err := p.data.Format(locale.FormatAddressLine2)
	if err != nil {
		return fmt.Errorf("address line2: %w", err)
	}

	apartment := ""
	if a.ApartmentNumber != "" {
		f, err := p.data.Format(locale.FormatApartment)
		if err != nil {
			return fmt.Errorf("address apartment: %w", err)
		}
		apartment = strings.ReplaceAll(f, "{apartment}", a.ApartmentNumber)
	}

	r := strings.NewReplacer(
		"{street}", a.Street,
		"{number}", a.StreetNumber,
		"{apartment}", apartment,
		"{postalCode}", a.PostalCode,
		"{city}", a.City,
	)
	a.Line1 = r.Replace(line1)
	a.Line2 = r.Replace(line2)
	return nil
}
