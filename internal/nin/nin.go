// Package nin generates national identification numbers.
package nin

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zarlcorp/zpersona/internal/person"
)

// ErrUnsupportedSex is returned when a scheme encodes sex and the value is
// neither male nor female.
var ErrUnsupportedSex = errors.New("unsupported sex")

// Random is the subset of the random source identification numbers need.
type Random interface {
	IntN(n int) int
	IntBetween(lo, hi int) int
}

// Factory produces identification numbers in the scheme of one locale.
type Factory struct {
	rnd     Random
	produce func(Random, time.Time, person.Sex) (string, error)
}

// New returns the factory for a locale tag. Locales without a scheme of
// their own get US social security numbers.
func New(tag string, rnd Random) *Factory {
	f := &Factory{rnd: rnd, produce: ssn}
	if strings.EqualFold(tag, "pl") {
		f.produce = pesel
	}
	return f
}

// Produce generates a number for a holder born on dateOfBirth.
func (f *Factory) Produce(dateOfBirth time.Time, sex person.Sex) (string, error) {
	return f.produce(f.rnd, dateOfBirth, sex)
}

var peselWeights = [10]int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}

// pesel encodes YYMMDD with the century folded into the month, three serial
// digits, a sex digit (odd for men) and a check digit.
func pesel(rnd Random, dob time.Time, sex person.Sex) (string, error) {
	var parity int
	switch sex {
	case person.Male:
		parity = 1
	case person.Female:
		parity = 0
	default:
		return "", fmt.Errorf("pesel: %w: %q", ErrUnsupportedSex, sex)
	}

	offset, err := peselMonthOffset(dob.Year())
	if err != nil {
		return "", err
	}

	var d [11]int
	yy, mm := dob.Year()%100, int(dob.Month())+offset
	d[0], d[1] = yy/10, yy%10
	d[2], d[3] = mm/10, mm%10
	d[4], d[5] = dob.Day()/10, dob.Day()%10
	for i := 6; i < 9; i++ {
		d[i] = rnd.IntN(10)
	}
	d[9] = 2*rnd.IntN(5) + parity

	sum := 0
	for i, w := range peselWeights {
		sum += d[i] * w
	}
	d[10] = (10 - sum%10) % 10

	var b strings.Builder
	for _, v := range d {
		b.WriteByte(byte('0' + v))
	}
	return b.String(), nil
}

func peselMonthOffset(year int) (int, error) {
	switch {
	case year >= 1800 && year < 1900:
		return 80, nil
	case year >= 1900 && year < 2000:
		return 0, nil
	case year >= 2000 && year < 2100:
		return 20, nil
	case year >= 2100 && year < 2200:
		return 40, nil
	case year >= 2200 && year < 2300:
		return 60, nil
	}
	return 0, fmt.Errorf("pesel: birth year %d outside 1800-2299", year)
}

// ssn returns AAA-GG-SSSS with area, group and serial in their issued
// ranges. Birth date and sex are not encoded.
func ssn(rnd Random, _ time.Time, _ person.Sex) (string, error) {
	area := rnd.IntBetween(1, 898)
	if area >= 666 {
		area++
	}
	group := rnd.IntBetween(1, 99)
	serial := rnd.IntBetween(1, 9999)
	return fmt.Sprintf("%03d-%02d-%04d", area, group, serial), nil
}
