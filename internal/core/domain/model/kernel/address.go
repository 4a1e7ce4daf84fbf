package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAddressIsNotConstructed indicates that an Address was not created through
// the NewAddress factory function. The zero value of Address is invalid.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is a value object holding a structured shipping address.
// It is immutable once constructed and compared by value.
//
// An address is valid when it carries at least a recipient name, a street
// and a city; the remaining fields are free-form and optional since their
// formats vary by region.
//
// Example usage:
//
//	addr, err := kernel.NewAddress("Maria", "Santos", "12 Mango St", "Davao", "Davao del Sur", "8000")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct {
	firstName  string
	lastName   string
	street     string
	city       string
	province   string
	postalCode string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated shipping address.
// firstName, street and city are required; lastName, province and postalCode
// may be empty.
func NewAddress(firstName, lastName, street, city, province, postalCode string) (Address, error) {
	if firstName == "" {
		return Address{}, errs.NewValueIsRequiredError("firstName")
	}
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	return Address{
		firstName:  firstName,
		lastName:   lastName,
		street:     street,
		city:       city,
		province:   province,
		postalCode: postalCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// FirstName returns the recipient's first name.
func (a Address) FirstName() string {
	return a.firstName
}

// LastName returns the recipient's last name. May be empty.
func (a Address) LastName() string {
	return a.lastName
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// Province returns the province or state. May be empty.
func (a Address) Province() string {
	return a.province
}

// PostalCode returns the postal code. May be empty.
func (a Address) PostalCode() string {
	return a.postalCode
}

// RecipientName returns the recipient's full display name.
func (a Address) RecipientName() string {
	if a.lastName == "" {
		return a.firstName
	}
	return fmt.Sprintf("%s %s", a.firstName, a.lastName)
}

// String formats the address on a single line for logs and display.
func (a Address) String() string {
	s := fmt.Sprintf("%s, %s", a.street, a.city)
	if a.province != "" {
		s += ", " + a.province
	}
	if a.postalCode != "" {
		s += ", " + a.postalCode
	}
	return s
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.firstName == other.firstName &&
		a.lastName == other.lastName &&
		a.street == other.street &&
		a.city == other.city &&
		a.province == other.province &&
		a.postalCode == other.postalCode
}

// Validate checks that the address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
