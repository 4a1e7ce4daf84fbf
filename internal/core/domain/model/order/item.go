package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Item is a value object describing one purchased line of an order:
// a product reference and the quantity bought. Items are immutable and
// carried by the order through every lifecycle stage.
type Item struct {
	productRef string
	quantity   int
}

// NewItem creates a validated order line.
// The product reference must be non-empty and the quantity positive.
func NewItem(productRef string, quantity int) (Item, error) {
	if productRef == "" {
		return Item{}, errs.NewValueIsRequiredError("productRef")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{
		productRef: productRef,
		quantity:   quantity,
	}, nil
}

// ProductRef returns the referenced product identifier.
func (i Item) ProductRef() string {
	return i.productRef
}

// Quantity returns the purchased quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Validate checks the item carries a product reference and positive quantity.
// Zero-value items fail.
func (i Item) Validate() error {
	if i.productRef == "" {
		return errs.NewValueIsRequiredError("productRef")
	}
	if i.quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	return nil
}
