// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence.
package courierrepo

import (
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier
// aggregates. There is deliberately no availability column: busy/free is
// derived from the orders table at query time.
type CourierDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Address       string
	PlateNumber   string
	LicenseNumber string
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Address:       aggregate.Address(),
		PlateNumber:   aggregate.PlateNumber(),
		LicenseNumber: aggregate.LicenseNumber(),
	}
}

// toDomain converts a database row to a courier aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.Address, dto.PlateNumber, dto.LicenseNumber)
}
