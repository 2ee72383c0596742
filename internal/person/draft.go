package person

import (
	"time"

	"github.com/zarlcorp/zpersona/internal/address"
	"github.com/zarlcorp/zpersona/internal/company"
)

// draft is a partially generated person. A nil field is still to be
// generated. Steps take and return drafts by value and never write through
// the pointers, so override values are shared safely between runs.
type draft struct {
	sex                          *Sex
	age                          *int
	dateOfBirth                  *time.Time
	telephoneFormat              *string
	firstName                    *string
	middleName                   *string
	lastName                     *string
	email                        *string
	username                     *string
	telephoneNumber              *string
	password                     *string
	jobTitle                     *string
	companyEmail                 *string
	nationalIdentityCardNumber   *string
	nationalIdentificationNumber *string
	passportNumber               *string
	address                      *address.Address
	company                      *company.Company
}

// freeze copies a complete draft into a Person. Every field is set once the
// pipeline has run.
func (d draft) freeze() Person {
	return Person{
		FirstName:                    *d.firstName,
		MiddleName:                   *d.middleName,
		LastName:                     *d.lastName,
		Address:                      *d.address,
		Email:                        *d.email,
		Username:                     *d.username,
		Password:                     *d.password,
		Sex:                          *d.sex,
		TelephoneNumber:              *d.telephoneNumber,
		DateOfBirth:                  *d.dateOfBirth,
		Age:                          *d.age,
		NationalIdentityCardNumber:   *d.nationalIdentityCardNumber,
		NationalIdentificationNumber: *d.nationalIdentificationNumber,
		PassportNumber:               *d.passportNumber,
		Company:                      *d.company,
		CompanyEmail:                 *d.companyEmail,
		JobTitle:                     *d.jobTitle,
	}
}

func ptr[T any](v T) *T {
	return &v
}
