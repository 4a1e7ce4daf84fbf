package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByStageQuery_ValidStages(t *testing.T) {
	for _, stage := range []order.Stage{order.Placed, order.Shipped, order.Assigned, order.Delivered} {
		t.Run(stage.String(), func(t *testing.T) {
			query, err := queries.NewGetOrdersByStageQuery(stage)
			require.NoError(t, err)
			assert.Equal(t, stage, query.Stage())
			assert.NoError(t, query.Validate())
		})
	}
}

func TestNewGetOrdersByStageQuery_UnknownStage(t *testing.T) {
	_, err := queries.NewGetOrdersByStageQuery(order.Unknown)
	require.Error(t, err)
}

func TestGetOrdersByStageQuery_NotConstructed(t *testing.T) {
	var query queries.GetOrdersByStageQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrdersByStageQueryIsNotConstructed)
}

func TestNewGetOrderQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetCourierOrdersQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetCourierOrdersQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetCourierQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetCourierQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestParameterlessQueries_Validate(t *testing.T) {
	assert.NoError(t, queries.NewGetAllCouriersQuery().Validate())
	assert.NoError(t, queries.NewGetAvailableCouriersQuery().Validate())

	var allQuery queries.GetAllCouriersQuery
	assert.ErrorIs(t, allQuery.Validate(), queries.ErrGetAllCouriersQueryIsNotConstructed)

	var availableQuery queries.GetAvailableCouriersQuery
	assert.ErrorIs(t, availableQuery.Validate(), queries.ErrGetAvailableCouriersQueryIsNotConstructed)
}
