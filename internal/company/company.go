// Package company generates employers for synthetic persons.
package company

import (
	"fmt"
	"strings"

	"github.com/zarlcorp/zpersona/internal/locale"
	"github.com/zarlcorp/zpersona/internal/textfold"
)

// Company is a generated employer.
type Company struct {
	Name                    string `json:"name"`
	Domain                  string `json:"domain"`
	Email                   string `json:"email"`
	VATIdentificationNumber string `json:"vat_identification_number"`
}

// Random is the subset of the random source companies need.
type Random interface {
	Bool() bool
	IntN(n int) int
	Numerify(pattern string) string
}

// Corpus is the subset of locale data companies need.
type Corpus interface {
	Tag() string
	RandomValue(category string) (string, error)
	Format(name string) (string, error)
}

// Provider produces a fresh company on every call.
type Provider struct {
	rnd  Random
	data Corpus
}

// NewProvider creates a company provider.
func NewProvider(rnd Random, data Corpus) *Provider {
	return &Provider{rnd: rnd, data: data}
}

// Get generates a company.
func (p *Provider) Get() (Company, error) {
	base, err := p.data.RandomValue(locale.CompanyNames)
	if err != nil {
		return Company{}, fmt.Errorf("company name: %w", err)
	}

	suffix, err := p.data.RandomValue(locale.CompanySuffixes)
	if err != nil {
		return Company{}, fmt.Errorf("company suffix: %w", err)
	}

	tld, err := p.data.RandomValue(locale.DomainSuffixes)
	if err != nil {
		return Company{}, fmt.Errorf("company domain: %w", err)
	}

	alias, err := p.data.RandomValue(locale.EmailAliases)
	if err != nil {
		return Company{}, fmt.Errorf("company email: %w", err)
	}

	vat, err := p.vatNumber()
	if err != nil {
		return Company{}, err
	}

	domain := textfold.Compact(base) + "." + tld
	return Company{
		Name:                    base + " " + suffix,
		Domain:                  domain,
		Email:                   alias + "@" + domain,
		VATIdentificationNumber: vat,
	}, nil
}

func (p *Provider) vatNumber() (string, error) {
	if strings.EqualFold(p.data.Tag(), "pl") {
		return nip(p.rnd), nil
	}

	f, err := p.data.Format(locale.FormatVATNumber)
	if err != nil {
		return "", fmt.Errorf("company vat number: %w", err)
	}
	return p.rnd.Numerify(f), nil
}

var nipWeights = [9]int{6, 5, 7, 2, 3, 4, 5, 6, 7}

// nip generates a Polish tax identification number. The tenth digit is the
// weighted sum of the first nine mod 11; draws that yield 10 are discarded.
func nip(rnd Random) string {
	for {
		var b [10]byte
		sum := 0
		for i := range 9 {
			var d int
			// tax office prefixes never start with zero
			if i == 0 {
				d = 1 + rnd.IntN(9)
			} else {
				d = rnd.IntN(10)
			}
			b[i] = byte('0' + d)
			sum += d * nipWeights[i]
		}

		check := sum % 11
		if check == 10 {
			continue
		}
		b[9] = byte('0' + check)
		return string(b[:])
	}
}
