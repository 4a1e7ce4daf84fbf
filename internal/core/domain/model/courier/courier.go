package courier

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when attempting to create a courier without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrPlateNumberIsRequired is returned when attempting to create a courier without a vehicle plate number.
	ErrPlateNumberIsRequired = errs.NewValueIsRequiredError("plateNumber")
	// ErrLicenseNumberIsRequired is returned when attempting to create a courier without a driver's license number.
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("licenseNumber")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery agent registered with the fulfillment system.
// It is an aggregate root holding the courier's identity and vehicle papers.
//
// A courier's availability is deliberately NOT stored here: whether a courier
// is busy is a derived fact, recomputed from the set of orders currently in
// the Assigned stage. Storing an availability flag would let it drift out of
// sync with the assignment relation that actually matters.
//
// Business rules:
//   - Courier must have a valid UUID and non-empty name
//   - Address, plate number and license number are required registration data
//
// Example usage:
//
//	c, err := NewCourier(kernel.NewUUID(), "Juan Cruz", "7 Acacia Ave, Cebu", "ABX-1234", "N02-11-223344")
//	if err != nil {
//	    // handle construction error
//	}
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// address is the courier's registered home address
	address string
	// plateNumber identifies the courier's vehicle
	plateNumber string
	// licenseNumber is the courier's driver's license
	licenseNumber string
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified registration data.
// This is the only way to create a valid Courier instance; all parameters
// are validated and errors joined so the caller sees every problem at once.
func NewCourier(id kernel.UUID, name, address, plateNumber, licenseNumber string) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setAddress(address),
		courier.setPlateNumber(plateNumber),
		courier.setLicenseNumber(licenseNumber),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
// The restored courier behaves identically to one created through NewCourier;
// the same validation applies so corrupt rows cannot re-enter the domain.
func RestoreCourier(id kernel.UUID, name, address, plateNumber, licenseNumber string) (*Courier, error) {
	return NewCourier(id, name, address, plateNumber, licenseNumber)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's human-readable name.
func (c *Courier) Name() string {
	return c.name
}

// Address returns the courier's registered address.
func (c *Courier) Address() string {
	return c.address
}

// PlateNumber returns the courier's vehicle plate number.
func (c *Courier) PlateNumber() string {
	return c.plateNumber
}

// LicenseNumber returns the courier's driver's license number.
func (c *Courier) LicenseNumber() string {
	return c.licenseNumber
}

// Validate ensures the Courier was created via NewCourier or RestoreCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

func (c *Courier) setPlateNumber(plateNumber string) error {
	if plateNumber == "" {
		return ErrPlateNumberIsRequired
	}
	c.plateNumber = plateNumber
	return nil
}

func (c *Courier) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}
	c.licenseNumber = licenseNumber
	return nil
}
