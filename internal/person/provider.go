package person

import (
	"errors"
	"fmt"
	"time"

	"github.com/zarlcorp/zpersona/internal/address"
	"github.com/zarlcorp/zpersona/internal/company"
)

// Age bounds used when neither age nor date of birth is given.
const (
	DefaultMinAge = 1
	DefaultMaxAge = 100
)

// Random is the random source the pipeline draws from.
type Random interface {
	Bool() bool
	IntBetween(lo, hi int) int
	Numerify(pattern string) string
	Alphanumeric(n int) string
	TimeBetween(lo, hi time.Time) time.Time
}

// Corpus draws names, formats and job titles for one locale.
type Corpus interface {
	ValuesOfType(category, subKey string) (string, error)
	RandomValue(category string) (string, error)
}

// Factory produces a fresh value on every call.
type Factory[T any] interface {
	Get() (T, error)
}

// Emails composes addresses from names.
type Emails interface {
	Personal(first, last string) (string, error)
	Company(first, last, domain string) string
}

// NationalIDs produces national identification numbers, which encode the
// holder's birth date and sex in most countries.
type NationalIDs interface {
	Produce(dateOfBirth time.Time, sex Sex) (string, error)
}

// Deps are the collaborators a Provider generates with.
type Deps struct {
	Random        Random
	Corpus        Corpus
	Emails        Emails
	Addresses     Factory[address.Address]
	Companies     Factory[company.Company]
	IdentityCards Factory[string]
	Passports     Factory[string]
	NationalIDs   NationalIDs

	// Now defaults to time.Now.
	Now func() time.Time
}

func (d Deps) validate() error {
	var missing []error
	check := func(ok bool, name string) {
		if !ok {
			missing = append(missing, fmt.Errorf("missing %s", name))
		}
	}
	check(d.Random != nil, "random source")
	check(d.Corpus != nil, "corpus")
	check(d.Emails != nil, "email generator")
	check(d.Addresses != nil, "address factory")
	check(d.Companies != nil, "company factory")
	check(d.IdentityCards != nil, "identity card factory")
	check(d.Passports != nil, "passport factory")
	check(d.NationalIDs != nil, "national id factory")
	return errors.Join(missing...)
}

// settings is what properties write to: draft overrides plus age bounds.
type settings struct {
	draft
	minAge int
	maxAge int
}

// Provider generates persons. Its overrides are fixed at construction, so
// every Generate call starts from the same overrides and a fresh draft.
type Provider struct {
	deps     Deps
	settings settings
}

// NewProvider applies props in order and returns a provider. Invalid
// properties are reported here rather than at generation time.
func NewProvider(deps Deps, props ...Property) (*Provider, error) {
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("new person provider: %w", err)
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	p := &Provider{
		deps:     deps,
		settings: settings{minAge: DefaultMinAge, maxAge: DefaultMaxAge},
	}
	if err := p.apply(props); err != nil {
		return nil, err
	}
	return p, nil
}

// With returns a new provider with props applied on top of p's overrides.
// p itself is unchanged.
func (p *Provider) With(props ...Property) (*Provider, error) {
	next := &Provider{deps: p.deps, settings: p.settings}
	if err := next.apply(props); err != nil {
		return nil, err
	}
	return next, nil
}

func (p *Provider) apply(props []Property) error {
	for _, prop := range props {
		if err := prop(&p.settings); err != nil {
			return err
		}
	}

	s := p.settings
	if s.minAge > s.maxAge {
		return fmt.Errorf("%w: min age %d above max age %d", ErrInvalidProperty, s.minAge, s.maxAge)
	}
	if s.dateOfBirth != nil && s.dateOfBirth.After(p.deps.Now()) {
		return fmt.Errorf("%w: date of birth %s is in the future", ErrInvalidProperty, s.dateOfBirth.Format(time.DateOnly))
	}
	return nil
}

// Generate runs the pipeline and returns the person.
func (p *Provider) Generate() (Person, error) {
	run := assembly{deps: &p.deps, settings: &p.settings, now: p.deps.Now()}

	d := p.settings.draft
	for _, s := range pipeline {
		var err error
		if d, err = s.fill(run, d); err != nil {
			return Person{}, fmt.Errorf("generate %s: %w", s.field, err)
		}
	}
	return d.freeze(), nil
}
