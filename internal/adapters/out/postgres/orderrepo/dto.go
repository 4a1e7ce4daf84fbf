// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// One row per order across its whole lifecycle; the Stage column records the
// hand-off position and is indexed for the per-stage list queries. CourierID
// carries a partial unique index (courier_id WHERE stage = Assigned, created
// by the schema migration) that structurally enforces courier exclusivity.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BuyerID       uuid.UUID      `gorm:"type:uuid;index"`
	CourierID     *uuid.UUID     `gorm:"type:uuid;index"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Amount        float64
	Address       AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	PaymentMethod string
	Paid          bool
	PlacedAt      time.Time
	Stage         int `gorm:"index"`
	StatusLabel   string
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one purchased product line of an order.
type OrderItemDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	ProductRef string
	Quantity   int
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO represents the embedded shipping address columns within the
// orders table.
type AddressDTO struct {
	FirstName  string
	LastName   string
	Street     string
	City       string
	Province   string
	PostalCode string
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			ProductRef: item.ProductRef(),
			Quantity:   item.Quantity(),
		})
	}

	addr := aggregate.Address()
	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		BuyerID:   aggregate.BuyerID().Bytes(),
		CourierID: courierID,
		Items:     items,
		Amount:    aggregate.Amount(),
		Address: AddressDTO{
			FirstName:  addr.FirstName(),
			LastName:   addr.LastName(),
			Street:     addr.Street(),
			City:       addr.City(),
			Province:   addr.Province(),
			PostalCode: addr.PostalCode(),
		},
		PaymentMethod: aggregate.PaymentMethod(),
		Paid:          aggregate.Paid(),
		PlacedAt:      aggregate.PlacedAt(),
		Stage:         int(aggregate.Stage()),
		StatusLabel:   aggregate.StatusLabel(),
	}
}

// toDomain converts a database row to an order aggregate, reconstructing the
// complete state including stage, status label and courier reference.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ProductRef, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	addr, err := kernel.NewAddress(
		dto.Address.FirstName,
		dto.Address.LastName,
		dto.Address.Street,
		dto.Address.City,
		dto.Address.Province,
		dto.Address.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		buyerID,
		items,
		dto.Amount,
		addr,
		dto.PaymentMethod,
		dto.Paid,
		dto.PlacedAt,
		order.Stage(dto.Stage),
		dto.StatusLabel,
		courierID,
	)
}
