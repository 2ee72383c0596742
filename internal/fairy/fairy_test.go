package fairy

import (
	"bytes"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/zarlcorp/zpersona/internal/locale"
	"github.com/zarlcorp/zpersona/internal/person"
)

var clock = func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) }

func TestNewDefaults(t *testing.T) {
	f, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.Locale() != locale.Default {
		t.Errorf("locale = %q, want %q", f.Locale(), locale.Default)
	}

	p, err := f.Person()
	if err != nil {
		t.Fatalf("Person: %v", err)
	}
	if p.FirstName == "" || p.NationalIdentificationNumber == "" {
		t.Errorf("incomplete person: %+v", p)
	}
}

func TestNewUnknownLocale(t *testing.T) {
	_, err := New(WithLocale("xx"))
	if !errors.Is(err, locale.ErrUnknownLocale) {
		t.Fatalf("New = %v, want ErrUnknownLocale", err)
	}
}

func TestPolishPerson(t *testing.T) {
	f, err := New(WithLocale("pl"), WithSeed(11), WithClock(clock))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p, err := f.Person(person.WithSex(person.Female), person.WithDateOfBirth(time.Date(1985, 7, 3, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Person: %v", err)
	}

	pesel := p.NationalIdentificationNumber
	if !regexp.MustCompile(`^850703\d{5}$`).MatchString(pesel) {
		t.Fatalf("pesel %q does not encode 1985-07-03", pesel)
	}
	if (pesel[9]-'0')%2 != 0 {
		t.Errorf("pesel %q sex digit should be even for a woman", pesel)
	}
	if p.Age != 41 {
		t.Errorf("age = %d, want 41", p.Age)
	}
	if !regexp.MustCompile(`^[A-Z]{3}\d{6}$`).MatchString(p.NationalIdentityCardNumber) {
		t.Errorf("identity card %q has the wrong shape", p.NationalIdentityCardNumber)
	}
	if !regexp.MustCompile(`^[A-Z]{2}\d{7}$`).MatchString(p.PassportNumber) {
		t.Errorf("passport %q has the wrong shape", p.PassportNumber)
	}
	if !strings.HasSuffix(p.CompanyEmail, "@"+p.Company.Domain) {
		t.Errorf("company email %q is not at %q", p.CompanyEmail, p.Company.Domain)
	}
}

func TestEnglishSSN(t *testing.T) {
	f, err := New(WithSeed(3), WithClock(clock))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p, err := f.Person()
	if err != nil {
		t.Fatalf("Person: %v", err)
	}
	if !regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`).MatchString(p.NationalIdentificationNumber) {
		t.Errorf("ssn %q has the wrong shape", p.NationalIdentificationNumber)
	}
}

func TestSeedReproduces(t *testing.T) {
	a, err := New(WithLocale("pl"), WithSeed(42), WithClock(clock))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(WithLocale("pl"), WithSeed(42), WithClock(clock))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	pa, err := a.Persons(5)
	if err != nil {
		t.Fatalf("Persons: %v", err)
	}
	pb, err := b.Persons(5)
	if err != nil {
		t.Fatalf("Persons: %v", err)
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Errorf("person %d differs:\n%+v\n%+v", i, pa[i], pb[i])
		}
	}
	if a.Seed() != 42 {
		t.Errorf("seed = %d, want 42", a.Seed())
	}
}

func TestRandomSeedIsReported(t *testing.T) {
	f, err := New(WithClock(clock))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want, err := f.Person()
	if err != nil {
		t.Fatalf("Person: %v", err)
	}

	replay, err := New(WithSeed(f.Seed()), WithClock(clock))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := replay.Person()
	if err != nil {
		t.Fatalf("Person: %v", err)
	}
	if got != want {
		t.Errorf("replaying seed %d gave a different person", f.Seed())
	}
}

func TestPersons(t *testing.T) {
	f, err := New(WithSeed(1), WithClock(clock))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ps, err := f.Persons(4, person.WithAge(30))
	if err != nil {
		t.Fatalf("Persons: %v", err)
	}
	if len(ps) != 4 {
		t.Fatalf("got %d persons, want 4", len(ps))
	}
	for _, p := range ps {
		if p.Age != 30 {
			t.Errorf("age = %d, want 30", p.Age)
		}
	}
	if ps[0] == ps[1] {
		t.Error("persons should differ")
	}

	if _, err := f.Persons(-1); err == nil {
		t.Error("expected error for negative count")
	}
	if _, err := f.Persons(1, person.WithAge(-1)); !errors.Is(err, person.ErrInvalidProperty) {
		t.Errorf("Persons = %v, want ErrInvalidProperty", err)
	}
}

func TestEmail(t *testing.T) {
	for _, tag := range locale.Supported() {
		t.Run(tag, func(t *testing.T) {
			f, err := New(WithLocale(tag), WithSeed(5))
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			addr, err := f.Email()
			if err != nil {
				t.Fatalf("Email: %v", err)
			}
			if !regexp.MustCompile(`^[a-z0-9._]+@[a-z0-9.]+$`).MatchString(addr) {
				t.Errorf("email %q has the wrong shape", addr)
			}
		})
	}
}

func TestLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f, err := New(WithLocale("pl"), WithSeed(1), WithLogger(logger))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := f.Person(); err != nil {
		t.Fatalf("Person: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"locale loaded", "locale=pl", "seed=1", "person generated"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
