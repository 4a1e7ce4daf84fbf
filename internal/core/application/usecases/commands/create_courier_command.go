package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand registers a new courier in the fleet. A fresh courier
// carries no assignments and is therefore immediately available.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID     kernel.UUID
	name          string
	address       string
	plateNumber   string
	licenseNumber string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a courier registration command, generating
// a fresh courier ID.
func NewCreateCourierCommand(name, address, plateNumber, licenseNumber string) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(kernel.NewUUID()),
		command.setName(name),
		command.setAddress(address),
		command.setPlateNumber(plateNumber),
		command.setLicenseNumber(licenseNumber),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the generated identifier for the new courier.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier's display name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Address returns the courier's home address.
func (c CreateCourierCommand) Address() string {
	return c.address
}

// PlateNumber returns the courier vehicle's plate number.
func (c CreateCourierCommand) PlateNumber() string {
	return c.plateNumber
}

// LicenseNumber returns the courier's driving license number.
func (c CreateCourierCommand) LicenseNumber() string {
	return c.licenseNumber
}

func (c *CreateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateCourierCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *CreateCourierCommand) setPlateNumber(plateNumber string) error {
	if plateNumber == "" {
		return errs.NewValueIsRequiredError("plateNumber")
	}
	c.plateNumber = plateNumber
	return nil
}

func (c *CreateCourierCommand) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	c.licenseNumber = licenseNumber
	return nil
}
