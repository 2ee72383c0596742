package person

import (
	"time"

	"github.com/zarlcorp/zpersona/internal/locale"
	"github.com/zarlcorp/zpersona/internal/textfold"
)

// assembly is the context of one Generate call. now is read once so every
// step agrees on the current moment.
type assembly struct {
	deps     *Deps
	settings *settings
	now      time.Time
}

type step struct {
	field string
	fill  func(assembly, draft) (draft, error)
}

// pipeline is the generation order. A step may only read fields filled by
// steps above it.
var pipeline = []step{
	{"sex", assembly.sex},
	{"company", assembly.company},
	{"first name", assembly.firstName},
	{"middle name", assembly.middleName},
	{"last name", assembly.lastName},
	{"email", assembly.email},
	{"username", assembly.username},
	{"telephone number", assembly.telephoneNumber},
	{"age", assembly.age},
	{"date of birth", assembly.dateOfBirth},
	{"company email", assembly.companyEmail},
	{"password", assembly.password},
	{"national identity card number", assembly.nationalIdentityCardNumber},
	{"national identification number", assembly.nationalIdentificationNumber},
	{"passport number", assembly.passportNumber},
	{"address", assembly.address},
	{"job title", assembly.jobTitle},
}

const passwordLength = 8

func (a assembly) sex(d draft) (draft, error) {
	if d.sex != nil {
		return d, nil
	}
	if a.deps.Random.Bool() {
		d.sex = ptr(Male)
	} else {
		d.sex = ptr(Female)
	}
	return d, nil
}

func (a assembly) company(d draft) (draft, error) {
	if d.company != nil {
		return d, nil
	}
	c, err := a.deps.Companies.Get()
	if err != nil {
		return d, err
	}
	d.company = &c
	return d, nil
}

func (a assembly) firstName(d draft) (draft, error) {
	if d.firstName != nil {
		return d, nil
	}
	name, err := a.deps.Corpus.ValuesOfType(locale.FirstNames, string(*d.sex))
	if err != nil {
		return d, err
	}
	d.firstName = &name
	return d, nil
}

func (a assembly) middleName(d draft) (draft, error) {
	if d.middleName != nil {
		return d, nil
	}
	if !a.deps.Random.Bool() {
		d.middleName = ptr("")
		return d, nil
	}
	name, err := a.deps.Corpus.ValuesOfType(locale.FirstNames, string(*d.sex))
	if err != nil {
		return d, err
	}
	d.middleName = &name
	return d, nil
}

func (a assembly) lastName(d draft) (draft, error) {
	if d.lastName != nil {
		return d, nil
	}
	name, err := a.deps.Corpus.ValuesOfType(locale.LastNames, string(*d.sex))
	if err != nil {
		return d, err
	}
	d.lastName = &name
	return d, nil
}

func (a assembly) email(d draft) (draft, error) {
	if d.email != nil {
		return d, nil
	}
	addr, err := a.deps.Emails.Personal(*d.firstName, *d.lastName)
	if err != nil {
		return d, err
	}
	d.email = &addr
	return d, nil
}

func (a assembly) username(d draft) (draft, error) {
	if d.username != nil {
		return d, nil
	}
	first, last := *d.firstName, *d.lastName
	var u string
	if a.deps.Random.Bool() {
		u = initial(first) + last
	} else {
		u = first + initial(last)
	}
	d.username = ptr(textfold.Fold(u))
	return d, nil
}

func (a assembly) telephoneNumber(d draft) (draft, error) {
	if d.telephoneNumber != nil {
		return d, nil
	}
	if d.telephoneFormat == nil {
		f, err := a.deps.Corpus.RandomValue(locale.TelephoneNumberFormats)
		if err != nil {
			return d, err
		}
		d.telephoneFormat = &f
	}
	d.telephoneNumber = ptr(a.deps.Random.Numerify(*d.telephoneFormat))
	return d, nil
}

// age always follows an explicit date of birth, even over an explicit age.
func (a assembly) age(d draft) (draft, error) {
	if d.dateOfBirth != nil {
		d.age = ptr(yearsBetween(*d.dateOfBirth, a.now))
		return d, nil
	}
	if d.age != nil {
		return d, nil
	}
	d.age = ptr(a.deps.Random.IntBetween(a.settings.minAge, a.settings.maxAge))
	return d, nil
}

// dateOfBirth picks a birth date in the one-year window that yields age:
// the latest is exactly age years ago, the earliest a year less a day before.
func (a assembly) dateOfBirth(d draft) (draft, error) {
	if d.dateOfBirth != nil {
		return d, nil
	}
	latest := minusYears(a.now, *d.age)
	earliest := minusYears(latest, 1).AddDate(0, 0, 1)
	d.dateOfBirth = ptr(a.deps.Random.TimeBetween(earliest, latest))
	return d, nil
}

func (a assembly) companyEmail(d draft) (draft, error) {
	if d.companyEmail != nil {
		return d, nil
	}
	d.companyEmail = ptr(a.deps.Emails.Company(*d.firstName, *d.lastName, d.company.Domain))
	return d, nil
}

func (a assembly) password(d draft) (draft, error) {
	if d.password != nil {
		return d, nil
	}
	d.password = ptr(a.deps.Random.Alphanumeric(passwordLength))
	return d, nil
}

func (a assembly) nationalIdentityCardNumber(d draft) (draft, error) {
	if d.nationalIdentityCardNumber != nil {
		return d, nil
	}
	n, err := a.deps.IdentityCards.Get()
	if err != nil {
		return d, err
	}
	d.nationalIdentityCardNumber = &n
	return d, nil
}

func (a assembly) nationalIdentificationNumber(d draft) (draft, error) {
	if d.nationalIdentificationNumber != nil {
		return d, nil
	}
	n, err := a.deps.NationalIDs.Produce(*d.dateOfBirth, *d.sex)
	if err != nil {
		return d, err
	}
	d.nationalIdentificationNumber = &n
	return d, nil
}

func (a assembly) passportNumber(d draft) (draft, error) {
	if d.passportNumber != nil {
		return d, nil
	}
	n, err := a.deps.Passports.Get()
	if err != nil {
		return d, err
	}
	d.passportNumber = &n
	return d, nil
}

func (a assembly) address(d draft) (draft, error) {
	if d.address != nil {
		return d, nil
	}
	addr, err := a.deps.Addresses.Get()
	if err != nil {
		return d, err
	}
	d.address = &addr
	return d, nil
}

func (a assembly) jobTitle(d draft) (draft, error) {
	if d.jobTitle != nil {
		return d, nil
	}
	title, err := a.deps.Corpus.RandomValue(locale.JobTitles)
	if err != nil {
		return d, err
	}
	d.jobTitle = &title
	return d, nil
}

func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// yearsBetween counts whole years from birth to now.
func yearsBetween(birth, now time.Time) int {
	birth = birth.In(now.Location())
	years := now.Year() - birth.Year()

	bm, bd := birth.Month(), birth.Day()
	nm, nd := now.Month(), now.Day()
	switch {
	case nm < bm, nm == bm && nd < bd:
		years--
	case nm == bm && nd == bd && timeOfDay(now) < timeOfDay(birth):
		years--
	}
	return years
}

func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}

// minusYears steps back n calendar years, clamping 29 February to the 28th
// in common years instead of rolling over into March.
func minusYears(t time.Time, n int) time.Time {
	y := t.Year() - n
	day := t.Day()
	if t.Month() == time.February && day == 29 && !isLeap(y) {
		day = 28
	}
	return time.Date(y, t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
