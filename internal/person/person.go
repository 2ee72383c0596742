// Package person assembles synthetic persons. A Provider holds the caller's
// overrides and runs a fixed pipeline of generation steps; each step fills
// one field that is still unset, reading only fields resolved before it.
package person

import (
	"strconv"
	"strings"
	"time"

	"github.com/zarlcorp/zpersona/internal/address"
	"github.com/zarlcorp/zpersona/internal/company"
)

// Sex selects the name corpora and national identifier encoding.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// String returns the sex in upper case, e.g. "MALE".
func (s Sex) String() string {
	return strings.ToUpper(string(s))
}

// Person is a fully generated synthetic person. It holds no references to
// the provider that built it.
type Person struct {
	FirstName                    string          `json:"first_name"`
	MiddleName                   string          `json:"middle_name"`
	LastName                     string          `json:"last_name"`
	Address                      address.Address `json:"address"`
	Email                        string          `json:"email"`
	Username                     string          `json:"username"`
	Password                     string          `json:"password"`
	Sex                          Sex             `json:"sex"`
	TelephoneNumber              string          `json:"telephone_number"`
	DateOfBirth                  time.Time       `json:"date_of_birth"`
	Age                          int             `json:"age"`
	NationalIdentityCardNumber   string          `json:"national_identity_card_number"`
	NationalIdentificationNumber string          `json:"national_identification_number"`
	PassportNumber               string          `json:"passport_number"`
	Company                      company.Company `json:"company"`
	CompanyEmail                 string          `json:"company_email"`
	JobTitle                     string          `json:"job_title"`
}

// FullName joins first, middle and last name, skipping an empty middle name.
func (p Person) FullName() string {
	if p.MiddleName == "" {
		return p.FirstName + " " + p.LastName
	}
	return p.FirstName + " " + p.MiddleName + " " + p.LastName
}

// IsMale reports whether the person is male.
func (p Person) IsMale() bool { return p.Sex == Male }

// IsFemale reports whether the person is female.
func (p Person) IsFemale() bool { return p.Sex == Female }

// Field is one labelled value of a person, in display order.
type Field struct {
	Label string
	Value string
}

// Fields flattens p for display. Empty values are kept so callers can
// rely on a fixed layout.
func (p Person) Fields() []Field {
	return []Field{
		{"name", p.FullName()},
		{"sex", p.Sex.String()},
		{"born", p.DateOfBirth.Format(time.DateOnly)},
		{"age", strconv.Itoa(p.Age)},
		{"email", p.Email},
		{"username", p.Username},
		{"password", p.Password},
		{"phone", p.TelephoneNumber},
		{"address", p.Address.String()},
		{"id card", p.NationalIdentityCardNumber},
		{"national id", p.NationalIdentificationNumber},
		{"passport", p.PassportNumber},
		{"job", p.JobTitle},
		{"company", p.Company.Name},
		{"work email", p.CompanyEmail},
		{"vat", p.Company.VATIdentificationNumber},
	}
}
