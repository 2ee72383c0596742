// Package fairy wires the random source, locale data and sub-record
// factories together into a ready-to-use person generator.
package fairy

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/zarlcorp/zpersona/internal/address"
	"github.com/zarlcorp/zpersona/internal/company"
	"github.com/zarlcorp/zpersona/internal/document"
	"github.com/zarlcorp/zpersona/internal/email"
	"github.com/zarlcorp/zpersona/internal/locale"
	"github.com/zarlcorp/zpersona/internal/nin"
	"github.com/zarlcorp/zpersona/internal/person"
	"github.com/zarlcorp/zpersona/internal/random"
)

type options struct {
	locale string
	seed   *uint64
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Fairy.
type Option func(*options)

// WithLocale selects the locale tag, e.g. "pl". Default is locale.Default.
func WithLocale(tag string) Option {
	return func(o *options) { o.locale = tag }
}

// WithSeed makes generation reproducible. Without it the source is seeded
// from crypto/rand.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = &seed }
}

// WithClock replaces time.Now, which ages and birth dates are computed from.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogger sets the logger. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Fairy generates persons for one locale.
type Fairy struct {
	tag    string
	rnd    *random.Source
	data   *locale.Data
	emails *email.Generator
	deps   person.Deps
	log    *slog.Logger
}

// New loads the locale and builds every factory over a single random source.
func New(opts ...Option) (*Fairy, error) {
	o := options{locale: locale.Default, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	corpus, err := locale.Open(o.locale)
	if err != nil {
		return nil, fmt.Errorf("new fairy: %w", err)
	}

	var rnd *random.Source
	if o.seed != nil {
		rnd = random.New(*o.seed)
	} else if rnd, err = random.NewRandom(); err != nil {
		return nil, fmt.Errorf("new fairy: %w", err)
	}

	data := locale.NewData(corpus, rnd)
	emails := email.New(rnd, data)

	f := &Fairy{
		tag:    corpus.Tag(),
		rnd:    rnd,
		data:   data,
		emails: emails,
		log:    o.logger.With("locale", corpus.Tag()),
		deps: person.Deps{
			Random:        rnd,
			Corpus:        data,
			Emails:        emails,
			Addresses:     address.NewProvider(rnd, data),
			Companies:     company.NewProvider(rnd, data),
			IdentityCards: document.NewIdentityCards(rnd, data),
			Passports:     document.NewPassports(rnd, data),
			NationalIDs:   nin.New(corpus.Tag(), rnd),
			Now:           o.now,
		},
	}
	f.log.Debug("locale loaded", "seed", rnd.Seed())
	return f, nil
}

// Locale returns the locale tag in use.
func (f *Fairy) Locale() string { return f.tag }

// Seed returns the seed of the random source, which reproduces this
// Fairy's output when passed to WithSeed.
func (f *Fairy) Seed() uint64 { return f.rnd.Seed() }

// Provider returns a person provider with props applied.
func (f *Fairy) Provider(props ...person.Property) (*person.Provider, error) {
	return person.NewProvider(f.deps, props...)
}

// Person generates one person.
func (f *Fairy) Person(props ...person.Property) (person.Person, error) {
	p, err := f.Provider(props...)
	if err != nil {
		return person.Person{}, err
	}

	got, err := p.Generate()
	if err != nil {
		return person.Person{}, err
	}
	f.log.Debug("person generated", "name", got.FullName())
	return got, nil
}

// Persons generates n persons sharing the same overrides.
func (f *Fairy) Persons(n int, props ...person.Property) ([]person.Person, error) {
	if n < 0 {
		return nil, fmt.Errorf("persons: negative count %d", n)
	}

	p, err := f.Provider(props...)
	if err != nil {
		return nil, err
	}

	out := make([]person.Person, 0, n)
	for range n {
		got, err := p.Generate()
		if err != nil {
			return nil, err
		}
		out = append(out, got)
	}
	f.log.Debug("persons generated", "count", n)
	return out, nil
}

// Email generates a stand-alone personal address for a random name.
func (f *Fairy) Email() (string, error) {
	sex := person.Female
	if f.rnd.Bool() {
		sex = person.Male
	}

	first, err := f.data.ValuesOfType(locale.FirstNames, string(sex))
	if err != nil {
		return "", fmt.Errorf("email: %w", err)
	}
	last, err := f.data.ValuesOfType(locale.LastNames, string(sex))
	if err != nil {
		return "", fmt.Errorf("email: %w", err)
	}
	return f.emails.Personal(first, last)
}
