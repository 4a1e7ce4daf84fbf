package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shippedOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem("sku-1042", 2)
	require.NoError(t, err)

	address, err := kernel.NewAddress("Maria", "Santos", "12 Mango St", "Davao", "", "8000")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, 499.50,
		address, "cod", false, time.Now().UTC(),
	)
	require.NoError(t, err)
	require.NoError(t, o.Ship())
	return o
}

func testCourier(t *testing.T, id kernel.UUID) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(id, "Ramon Cruz", "5 Acacia Ave, Davao", "LTO-4821", "N02-11-223344")
	require.NoError(t, err)
	return c
}

func TestAssignmentService_Assign(t *testing.T) {
	svc := services.NewAssignmentService()

	t.Run("should assign a free courier", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := shippedOrder(t)
		c := testCourier(t, courierID)
		busy := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		err := svc.Assign(o, c, busy)

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Stage())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
		assert.Equal(t, order.PickupStatusLabel("Ramon Cruz"), o.StatusLabel())
	})

	t.Run("should assign when the busy set is empty", func(t *testing.T) {
		o := shippedOrder(t)
		c := testCourier(t, kernel.NewUUID())

		err := svc.Assign(o, c, nil)

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Stage())
	})

	t.Run("should reject a busy courier", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := shippedOrder(t)
		c := testCourier(t, courierID)
		busy := []kernel.UUID{kernel.NewUUID(), courierID}

		err := svc.Assign(o, c, busy)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrCourierBusy)
		assert.Equal(t, order.Shipped, o.Stage())
		assert.Nil(t, o.Courier())
	})

	t.Run("should reject an order that is not shipped", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := shippedOrder(t)
		c := testCourier(t, courierID)
		require.NoError(t, svc.Assign(o, c, nil))

		// Already assigned; a second claim must fail.
		err := svc.Assign(o, testCourier(t, kernel.NewUUID()), nil)

		require.Error(t, err)
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("should reject unconstructed aggregates", func(t *testing.T) {
		var o order.Order
		var c courier.Courier

		err := svc.Assign(&o, testCourier(t, kernel.NewUUID()), nil)
		require.Error(t, err)

		err = svc.Assign(shippedOrder(t), &c, nil)
		require.Error(t, err)
	})
}
