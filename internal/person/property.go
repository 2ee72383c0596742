package person

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zarlcorp/zpersona/internal/address"
	"github.com/zarlcorp/zpersona/internal/company"
)

var (
	// ErrUnknownProperty is returned for a directive naming no known field.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrInvalidProperty is returned for a directive with an out-of-range value.
	ErrInvalidProperty = errors.New("invalid property")
)

// Property presets one field or setting before generation. A preset field
// is never regenerated.
type Property func(*settings) error

// WithSex presets the sex. Values other than Male and Female are accepted
// here and fail at generation if the locale has no names for them.
func WithSex(sex Sex) Property {
	return func(s *settings) error {
		if sex == "" {
			return fmt.Errorf("%w: empty sex", ErrInvalidProperty)
		}
		s.sex = ptr(Sex(strings.ToLower(string(sex))))
		return nil
	}
}

// WithAge presets the age. A date of birth, if also set, takes precedence.
func WithAge(age int) Property {
	return func(s *settings) error {
		if age < 0 {
			return fmt.Errorf("%w: negative age %d", ErrInvalidProperty, age)
		}
		s.age = ptr(age)
		return nil
	}
}

// MinAge sets the lower bound for a generated age.
func MinAge(age int) Property {
	return func(s *settings) error {
		if age < 0 {
			return fmt.Errorf("%w: negative min age %d", ErrInvalidProperty, age)
		}
		s.minAge = age
		return nil
	}
}

// MaxAge sets the upper bound for a generated age.
func MaxAge(age int) Property {
	return func(s *settings) error {
		if age < 0 {
			return fmt.Errorf("%w: negative max age %d", ErrInvalidProperty, age)
		}
		s.maxAge = age
		return nil
	}
}

// AgeBetween sets both bounds for a generated age.
func AgeBetween(lo, hi int) Property {
	return func(s *settings) error {
		if err := MinAge(lo)(s); err != nil {
			return err
		}
		return MaxAge(hi)(s)
	}
}

// WithDateOfBirth presets the date of birth; age is derived from it.
func WithDateOfBirth(t time.Time) Property {
	return func(s *settings) error {
		if t.IsZero() {
			return fmt.Errorf("%w: zero date of birth", ErrInvalidProperty)
		}
		s.dateOfBirth = ptr(t)
		return nil
	}
}

// TelephoneFormat sets the pattern used for the telephone number; every '#'
// becomes a digit.
func TelephoneFormat(format string) Property {
	return stringProperty("telephone format", func(s *settings) **string { return &s.telephoneFormat }, format)
}

func WithFirstName(v string) Property {
	return stringProperty("first name", func(s *settings) **string { return &s.firstName }, v)
}

// WithMiddleName presets the middle name. An empty value means none.
func WithMiddleName(v string) Property {
	return func(s *settings) error {
		s.middleName = ptr(v)
		return nil
	}
}

func WithLastName(v string) Property {
	return stringProperty("last name", func(s *settings) **string { return &s.lastName }, v)
}

func WithEmail(v string) Property {
	return stringProperty("email", func(s *settings) **string { return &s.email }, v)
}

func WithUsername(v string) Property {
	return stringProperty("username", func(s *settings) **string { return &s.username }, v)
}

func WithTelephoneNumber(v string) Property {
	return stringProperty("telephone number", func(s *settings) **string { return &s.telephoneNumber }, v)
}

func WithPassword(v string) Property {
	return stringProperty("password", func(s *settings) **string { return &s.password }, v)
}

func WithJobTitle(v string) Property {
	return stringProperty("job title", func(s *settings) **string { return &s.jobTitle }, v)
}

func WithCompanyEmail(v string) Property {
	return stringProperty("company email", func(s *settings) **string { return &s.companyEmail }, v)
}

func WithNationalIdentityCardNumber(v string) Property {
	return stringProperty("national identity card number", func(s *settings) **string { return &s.nationalIdentityCardNumber }, v)
}

func WithNationalIdentificationNumber(v string) Property {
	return stringProperty("national identification number", func(s *settings) **string { return &s.nationalIdentificationNumber }, v)
}

func WithPassportNumber(v string) Property {
	return stringProperty("passport number", func(s *settings) **string { return &s.passportNumber }, v)
}

// WithAddress presets the address.
func WithAddress(a address.Address) Property {
	return func(s *settings) error {
		s.address = ptr(a)
		return nil
	}
}

// WithCompany presets the employer. The company email is derived from its domain.
func WithCompany(c company.Company) Property {
	return func(s *settings) error {
		if c.Domain == "" {
			return fmt.Errorf("%w: company %q has no domain", ErrInvalidProperty, c.Name)
		}
		s.company = ptr(c)
		return nil
	}
}

func stringProperty(name string, field func(*settings) **string, v string) Property {
	return func(s *settings) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: empty %s", ErrInvalidProperty, name)
		}
		*field(s) = ptr(v)
		return nil
	}
}

// parsers maps directive keys, lower-cased, to their property constructors.
var parsers = map[string]func(string) (Property, error){
	"sex":                          func(v string) (Property, error) { return WithSex(Sex(strings.ToLower(strings.TrimSpace(v)))), nil },
	"age":                          intParser(WithAge),
	"minage":                       intParser(MinAge),
	"maxage":                       intParser(MaxAge),
	"dateofbirth":                  parseDateOfBirth,
	"telephoneformat":              stringParser(TelephoneFormat),
	"firstname":                    stringParser(WithFirstName),
	"middlename":                   stringParser(WithMiddleName),
	"lastname":                     stringParser(WithLastName),
	"email":                        stringParser(WithEmail),
	"username":                     stringParser(WithUsername),
	"telephonenumber":              stringParser(WithTelephoneNumber),
	"password":                     stringParser(WithPassword),
	"jobtitle":                     stringParser(WithJobTitle),
	"companyemail":                 stringParser(WithCompanyEmail),
	"nationalidentitycardnumber":   stringParser(WithNationalIdentityCardNumber),
	"nationalidentificationnumber": stringParser(WithNationalIdentificationNumber),
	"passportnumber":               stringParser(WithPassportNumber),
}

// ParseProperty parses a "key=value" directive such as "age=30" or
// "telephoneFormat=+1-###-###-####". Keys are case-insensitive.
func ParseProperty(directive string) (Property, error) {
	key, value, ok := strings.Cut(directive, "=")
	if !ok {
		return nil, fmt.Errorf("%w: %q is not key=value", ErrInvalidProperty, directive)
	}

	key = strings.ToLower(strings.TrimSpace(key))
	parse, ok := parsers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, key)
	}

	prop, err := parse(value)
	if err != nil {
		return nil, err
	}

	// surface value errors now rather than at provider construction
	if err := prop(&settings{}); err != nil {
		return nil, err
	}
	return prop, nil
}

// ParseProperties parses each directive in order.
func ParseProperties(directives []string) ([]Property, error) {
	props := make([]Property, 0, len(directives))
	for _, d := range directives {
		p, err := ParseProperty(d)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, nil
}

func intParser(fn func(int) Property) func(string) (Property, error) {
	return func(v string) (Property, error) {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidProperty, v)
		}
		return fn(n), nil
	}
}

func stringParser(fn func(string) Property) func(string) (Property, error) {
	return func(v string) (Property, error) {
		return fn(v), nil
	}
}

// parseDateOfBirth reads a calendar date as local midnight, matching the
// wall clock that ages are counted against.
func parseDateOfBirth(v string) (Property, error) {
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(v), time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: date of birth %q: want YYYY-MM-DD", ErrInvalidProperty, v)
	}
	return WithDateOfBirth(t), nil
}
