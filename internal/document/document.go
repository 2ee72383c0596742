// Package document generates identity document numbers: national identity
// cards and passports.
package document

import (
	"fmt"
	"strings"

	"github.com/zarlcorp/zpersona/internal/locale"
)

// Random is the subset of the random source document numbers need.
type Random interface {
	IntN(n int) int
	Bothify(pattern string) string
}

// Corpus is the subset of locale data document numbers need.
type Corpus interface {
	Tag() string
	Format(name string) (string, error)
}

// scheme describes a number of the form LETTERS + DIGITS where one digit
// position is a check digit. With weight 9 at that position the check digit
// equals the weighted sum of the other characters mod 10.
type scheme struct {
	letters int
	digits  int
	checkAt int
	weights []int
}

var (
	polishIdentityCard = scheme{letters: 3, digits: 6, checkAt: 3, weights: []int{7, 3, 1, 9, 7, 3, 1, 7, 3}}
	polishPassport     = scheme{letters: 2, digits: 7, checkAt: 2, weights: []int{7, 3, 9, 1, 7, 3, 1, 7, 3}}
)

// IdentityCards produces national identity card numbers.
type IdentityCards struct {
	rnd  Random
	data Corpus
}

// NewIdentityCards creates an identity card number provider.
func NewIdentityCards(rnd Random, data Corpus) *IdentityCards {
	return &IdentityCards{rnd: rnd, data: data}
}

// Get generates an identity card number.
func (p *IdentityCards) Get() (string, error) {
	if strings.EqualFold(p.data.Tag(), "pl") {
		return polishIdentityCard.generate(p.rnd), nil
	}
	return fromFormat(p.rnd, p.data, locale.FormatIdentityCard)
}

// Passports produces passport numbers.
type Passports struct {
	rnd  Random
	data Corpus
}

// NewPassports creates a passport number provider.
func NewPassports(rnd Random, data Corpus) *Passports {
	return &Passports{rnd: rnd, data: data}
}

// Get generates a passport number.
func (p *Passports) Get() (string, error) {
	if strings.EqualFold(p.data.Tag(), "pl") {
		return polishPassport.generate(p.rnd), nil
	}
	return fromFormat(p.rnd, p.data, locale.FormatPassport)
}

func fromFormat(rnd Random, data Corpus, name string) (string, error) {
	f, err := data.Format(name)
	if err != nil {
		return "", fmt.Errorf("document %s: %w", name, err)
	}
	return strings.ToUpper(rnd.Bothify(f)), nil
}

func (s scheme) generate(rnd Random) string {
	buf := make([]byte, s.letters+s.digits)
	sum := 0
	for i := range buf {
		if i == s.checkAt {
			continue
		}
		if i < s.letters {
			buf[i] = byte('A' + rnd.IntN(26))
		} else {
			buf[i] = byte('0' + rnd.IntN(10))
		}
		sum += charValue(buf[i]) * s.weights[i]
	}
	buf[s.checkAt] = byte('0' + sum%10)
	return string(buf)
}

// charValue maps digits to 0-9 and letters to 10-35.
func charValue(c byte) int {
	if c >= 'A' && c <= 'Z' {
		return int(c-'A') + 10
	}
	return int(c - '0')
}
