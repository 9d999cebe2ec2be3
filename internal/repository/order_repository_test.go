package repository_test

import (
	"time"

	"github.com/nikolayk812/orderdocs/internal/domain"
	"github.com/nikolayk812/orderdocs/internal/port"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// orderRepositorySuite is the contract every port.OrderRepository must satisfy.
// Backend suites embed it and set repo in SetupSuite.
type orderRepositorySuite struct {
	suite.Suite

	repo port.OrderRepository
}

func (suite *orderRepositorySuite) TestInsertOrder() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		orderFunc func() domain.Order
	}{
		{
			name:      "valid order with items: ok",
			orderFunc: randomOrder,
		},
		{
			name: "valid order, empty items: ok",
			orderFunc: func() domain.Order {
				o := randomOrder()
				o.Items = []domain.Item{}
				return o
			},
		},
		{
			name: "valid order, arbitrary status: ok",
			orderFunc: func() domain.Order {
				o := randomOrder()
				o.Status = "Waiting for a miracle"
				return o
			},
		},
		{
			name: "id set by caller is replaced: ok",
			orderFunc: func() domain.Order {
				o := randomOrder()
				o.ID = domain.NewOrderID()
				return o
			},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			ttOrder := tt.orderFunc()

			orderID, err := suite.repo.InsertOrder(ctx, ttOrder)
			require.NoError(t, err)
			require.NotEqual(t, domain.NilOrderID, orderID)
			require.NotEqual(t, ttOrder.ID, orderID)

			actualOrder, err := suite.repo.GetOrder(ctx, orderID)
			require.NoError(t, err)

			expected := ttOrder
			expected.ID = orderID

			assertOrder(t, expected, actualOrder)
		})
	}
}

func (suite *orderRepositorySuite) TestGetOrder() {
	defer suite.deleteAll()

	tests := []struct {
		name         string
		targetIDFunc func(inserted domain.OrderID) domain.OrderID
		wantError    error
	}{
		{
			name:         "existing order: ok",
			targetIDFunc: func(inserted domain.OrderID) domain.OrderID { return inserted },
		},
		{
			name:         "non-existing order: not found",
			targetIDFunc: func(domain.OrderID) domain.OrderID { return domain.NewOrderID() },
			wantError:    domain.ErrNotFound,
		},
		{
			name:         "all-zero id: not found",
			targetIDFunc: func(domain.OrderID) domain.OrderID { return domain.NilOrderID },
			wantError:    domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			ttOrder := randomOrder()
			orderID := suite.insertOrders(ttOrder)[0]

			actual, err := suite.repo.GetOrder(ctx, tt.targetIDFunc(orderID))
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			ttOrder.ID = orderID
			assertOrder(t, ttOrder, actual)
		})
	}
}

func (suite *orderRepositorySuite) TestListOrders() {
	t := suite.T()
	ctx := t.Context()

	suite.deleteAll()
	defer suite.deleteAll()

	empty, err := suite.repo.ListOrders(ctx)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	expected := []domain.Order{randomOrder(), randomOrder(), randomOrder()}
	ids := suite.insertOrders(expected...)
	for i := range expected {
		expected[i].ID = ids[i]
	}

	actual, err := suite.repo.ListOrders(ctx)
	require.NoError(t, err)

	assertOrders(t, expected, actual)
}

func (suite *orderRepositorySuite) TestUpdateOrderStatus() {
	defer suite.deleteAll()

	tests := []struct {
		name         string
		newStatus    domain.OrderStatus
		targetIDFunc func(inserted domain.OrderID) domain.OrderID
		wantModified int64
	}{
		{
			name:         "existing order, new status: modified",
			newStatus:    domain.OrderStatusShipped,
			wantModified: 1,
		},
		{
			name:         "existing order, free-form status: modified",
			newStatus:    "Lost in transit",
			wantModified: 1,
		},
		{
			name:         "existing order, empty status: modified",
			newStatus:    "",
			wantModified: 1,
		},
		{
			name:         "existing order, same status: not modified",
			newStatus:    domain.OrderStatusPending,
			wantModified: 0,
		},
		{
			name:      "non-existing order: not modified",
			newStatus: domain.OrderStatusShipped,
			targetIDFunc: func(domain.OrderID) domain.OrderID {
				return domain.NilOrderID
			},
			wantModified: 0,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			ttOrder := randomOrder()
			ttOrder.Status = domain.OrderStatusPending
			orderID := suite.insertOrders(ttOrder)[0]
			ttOrder.ID = orderID

			targetID := orderID
			if tt.targetIDFunc != nil {
				targetID = tt.targetIDFunc(orderID)
			}

			updatedAt := ttOrder.UpdatedAt.Add(time.Minute)

			modified, err := suite.repo.UpdateOrderStatus(ctx, targetID, tt.newStatus, updatedAt)
			require.NoError(t, err)
			require.Equal(t, tt.wantModified, modified)

			actual, err := suite.repo.GetOrder(ctx, orderID)
			require.NoError(t, err)

			expected := ttOrder
			if tt.wantModified == 1 {
				expected.Status = tt.newStatus
				expected.UpdatedAt = updatedAt
			}

			assertOrder(t, expected, actual)
		})
	}
}

func (suite *orderRepositorySuite) TestDeleteOrder() {
	defer suite.deleteAll()

	tests := []struct {
		name         string
		prepareFunc  func(domain.OrderID) // i.e. delete the order before the tested delete
		targetIDFunc func(inserted domain.OrderID) domain.OrderID
		wantDeleted  int64
	}{
		{
			name:        "existing order: deleted",
			wantDeleted: 1,
		},
		{
			name: "already deleted order: nothing deleted",
			prepareFunc: func(id domain.OrderID) {
				_, err := suite.repo.DeleteOrder(suite.T().Context(), id)
				suite.Require().NoError(err)
			},
			wantDeleted: 0,
		},
		{
			name: "non-existing order: nothing deleted",
			targetIDFunc: func(domain.OrderID) domain.OrderID {
				return domain.NewOrderID()
			},
			wantDeleted: 0,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			orderID := suite.insertOrders(randomOrder())[0]

			if tt.prepareFunc != nil {
				tt.prepareFunc(orderID)
			}

			targetID := orderID
			if tt.targetIDFunc != nil {
				targetID = tt.targetIDFunc(orderID)
			}

			deleted, err := suite.repo.DeleteOrder(ctx, targetID)
			require.NoError(t, err)
			require.Equal(t, tt.wantDeleted, deleted)

			if tt.wantDeleted == 1 {
				_, err = suite.repo.GetOrder(ctx, orderID)
				require.ErrorIs(t, err, domain.ErrNotFound)
			}
		})
	}
}

func (suite *orderRepositorySuite) TestDeleteAll() {
	t := suite.T()
	ctx := t.Context()

	suite.insertOrders(randomOrder(), randomOrder())

	require.NoError(t, suite.repo.DeleteAll(ctx))

	orders, err := suite.repo.ListOrders(ctx)
	require.NoError(t, err)
	require.Empty(t, orders)
}

func (suite *orderRepositorySuite) insertOrders(orders ...domain.Order) []domain.OrderID {
	ids := make([]domain.OrderID, 0, len(orders))

	for _, order := range orders {
		id, err := suite.repo.InsertOrder(suite.T().Context(), order)
		suite.Require().NoError(err)
		ids = append(ids, id)
	}

	return ids
}

func (suite *orderRepositorySuite) deleteAll() {
	suite.NoError(suite.repo.DeleteAll(suite.T().Context()))
}
