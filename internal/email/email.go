// Package email composes personal and work addresses from a person's name.
package email

import (
	"fmt"

	"github.com/zarlcorp/zpersona/internal/locale"
	"github.com/zarlcorp/zpersona/internal/textfold"
)

// Random is the subset of the random source email generation needs.
type Random interface {
	Bool() bool
	IntN(n int) int
	Numerify(pattern string) string
}

// Corpus is the subset of locale data email generation needs.
type Corpus interface {
	RandomValue(category string) (string, error)
}

// local part shapes built from folded first and last names
var shapes = []func(first, last string) string{
	func(f, l string) string { return f + "." + l },
	func(f, l string) string { return initial(f) + l },
	func(f, l string) string { return f + l },
	func(f, l string) string { return l + "." + f },
	func(f, l string) string { return f + "_" + l },
	func(f, l string) string { return initial(f) + "." + l },
}

// Generator builds email addresses.
type Generator struct {
	rnd  Random
	data Corpus
}

// New creates an email generator.
func New(rnd Random, data Corpus) *Generator {
	return &Generator{rnd: rnd, data: data}
}

// Personal returns a free-mail address derived from the name, optionally
// followed by two digits.
func (g *Generator) Personal(first, last string) (string, error) {
	domain, err := g.data.RandomValue(locale.FreeEmailDomains)
	if err != nil {
		return "", fmt.Errorf("email domain: %w", err)
	}

	local := shapes[g.rnd.IntN(len(shapes))](textfold.Compact(first), textfold.Compact(last))
	if g.rnd.Bool() {
		local += g.rnd.Numerify("##")
	}
	return local + "@" + domain, nil
}

// Company returns first.last at the company domain.
func (g *Generator) Company(first, last, domain string) string {
	return textfold.Compact(first) + "." + textfold.Compact(last) + "@" + domain
}

func initial(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}
