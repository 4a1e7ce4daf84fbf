package order_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Placed))
		assert.Equal(t, 2, int(order.Shipped))
		assert.Equal(t, 3, int(order.Assigned))
		assert.Equal(t, 4, int(order.Delivered))
	})
}

func TestStage_Validate(t *testing.T) {
	t.Run("should validate valid stages", func(t *testing.T) {
		validStages := []order.Stage{
			order.Placed,
			order.Shipped,
			order.Assigned,
			order.Delivered,
		}

		for _, stage := range validStages {
			t.Run(fmt.Sprintf("should validate %s stage", stage.String()), func(t *testing.T) {
				err := stage.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown stage", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "stage is invalid")
	})

	t.Run("should reject out of range stage values", func(t *testing.T) {
		for _, stage := range []order.Stage{order.Stage(-1), order.Stage(5), order.Stage(100)} {
			t.Run(fmt.Sprintf("should reject stage value %d", int(stage)), func(t *testing.T) {
				err := stage.Validate()

				require.Error(t, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid stage", int(stage)))
			})
		}
	})
}

func TestStage_String(t *testing.T) {
	testCases := []struct {
		stage    order.Stage
		expected string
	}{
		{order.Placed, "Placed"},
		{order.Shipped, "Shipped"},
		{order.Assigned, "Assigned"},
		{order.Delivered, "Delivered"},
		{order.Unknown, "Unknown"},
		{order.Stage(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.stage)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.stage.String())
		})
	}
}

func TestStageFromString(t *testing.T) {
	t.Run("should parse stage names", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.Stage
		}{
			{"Placed", order.Placed},
			{"placed", order.Placed},
			{"SHIPPED", order.Shipped},
			{"assigned", order.Assigned},
			{"Delivered", order.Delivered},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				stage, err := order.StageFromString(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, stage)
			})
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, input := range []string{"", "Unknown", "created", "completed", "in-transit"} {
			t.Run(fmt.Sprintf("should reject %q", input), func(t *testing.T) {
				_, err := order.StageFromString(input)
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStage_Transitions(t *testing.T) {
	t.Run("should follow the hand-off path", func(t *testing.T) {
		shipped, err := order.Placed.Ship()
		require.NoError(t, err)
		assert.Equal(t, order.Shipped, shipped)

		assigned, err := shipped.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, assigned)

		delivered, err := assigned.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, delivered)
	})

	t.Run("should allow unassigning back to Shipped", func(t *testing.T) {
		shipped, err := order.Assigned.Unassign()
		require.NoError(t, err)
		assert.Equal(t, order.Shipped, shipped)

		// And the order can be claimed again.
		assigned, err := shipped.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, assigned)
	})

	t.Run("should reject shipping from any stage but Placed", func(t *testing.T) {
		for _, stage := range []order.Stage{order.Shipped, order.Assigned, order.Delivered, order.Unknown} {
			_, err := stage.Ship()
			require.Error(t, err, "stage %s", stage)
		}
	})

	t.Run("should reject assigning from any stage but Shipped", func(t *testing.T) {
		for _, stage := range []order.Stage{order.Placed, order.Assigned, order.Delivered, order.Unknown} {
			_, err := stage.Assign()
			require.Error(t, err, "stage %s", stage)
		}
	})

	t.Run("should reject unassigning from any stage but Assigned", func(t *testing.T) {
		for _, stage := range []order.Stage{order.Placed, order.Shipped, order.Delivered, order.Unknown} {
			_, err := stage.Unassign()
			require.Error(t, err, "stage %s", stage)
		}
	})

	t.Run("should reject delivering from any stage but Assigned", func(t *testing.T) {
		for _, stage := range []order.Stage{order.Placed, order.Shipped, order.Delivered, order.Unknown} {
			_, err := stage.Deliver()
			require.Error(t, err, "stage %s", stage)
		}
	})

	t.Run("Delivered is terminal", func(t *testing.T) {
		_, shipErr := order.Delivered.Ship()
		_, assignErr := order.Delivered.Assign()
		_, unassignErr := order.Delivered.Unassign()
		_, deliverErr := order.Delivered.Deliver()

		require.Error(t, shipErr)
		require.Error(t, assignErr)
		require.Error(t, unassignErr)
		require.Error(t, deliverErr)
	})
}

func TestStage_ValidateCanHaveCourier(t *testing.T) {
	t.Run("courier reference rules per stage", func(t *testing.T) {
		testCases := []struct {
			stage      order.Stage
			hasCourier bool
			valid      bool
		}{
			{order.Placed, false, true},
			{order.Placed, true, false},
			{order.Shipped, false, true},
			{order.Shipped, true, false},
			{order.Assigned, true, true},
			{order.Assigned, false, false},
			{order.Delivered, true, true},
			{order.Delivered, false, true},
		}

		for _, tc := range testCases {
			name := fmt.Sprintf("%s with courier=%t", tc.stage.String(), tc.hasCourier)
			t.Run(name, func(t *testing.T) {
				err := tc.stage.ValidateCanHaveCourier(tc.hasCourier)
				if tc.valid {
					require.NoError(t, err)
				} else {
					require.Error(t, err)
				}
			})
		}
	})
}

func TestPickupStatusLabel(t *testing.T) {
	assert.Equal(t, "Pick Up by Courier Ramon Cruz", order.PickupStatusLabel("Ramon Cruz"))
}
