package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adalicious/internal/database"
	"adalicious/internal/models"
)

// newTestStore opens a throwaway SQLite database with the real schema
// and seeded menu.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := database.Open("sqlite3", filepath.Join(t.TempDir(), "adalicious_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	return New(db)
}

func TestResolveCustomerIdempotent(t *testing.T) {
	s := newTestStore(t)

	first, err := s.ResolveCustomer("Alice")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, "Alice", first.Firstname)

	second, err := s.ResolveCustomer("Alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := s.ResolveCustomer("Bob")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	customers, err := s.ListCustomers()
	require.NoError(t, err)
	assert.Len(t, customers, 2)
}

func TestResolveCustomerRejectsEmptyName(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := s.ResolveCustomer(name)
		assert.ErrorIs(t, err, ErrValidation, "name %q", name)
	}
}

func TestListCustomersNewestFirst(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"Alice", "Bob", "Chloé"} {
		_, err := s.ResolveCustomer(name)
		require.NoError(t, err)
	}

	customers, err := s.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "Chloé", customers[0].Firstname)
	assert.Equal(t, "Alice", customers[2].Firstname)
}

func TestCreateOrderStartsPreparing(t *testing.T) {
	s := newTestStore(t)

	customer, err := s.ResolveCustomer("Alice")
	require.NoError(t, err)

	order, err := s.CreateOrder(customer.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPreparing, order.OrderStatusID)
	assert.Equal(t, "En préparation", order.StatusName)
	assert.Equal(t, "Alice", order.Firstname)
	assert.Equal(t, "Burger Ada", order.PlateName)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestCreateOrderUnknownMenuItem(t *testing.T) {
	s := newTestStore(t)

	customer, err := s.ResolveCustomer("Alice")
	require.NoError(t, err)

	_, err = s.CreateOrder(customer.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	// Nothing must have been persisted.
	orders, err := s.ListOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateOrder(999, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	orders, err := s.ListOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestListOrdersNewestFirst(t *testing.T) {
	s := newTestStore(t)

	customer, err := s.ResolveCustomer("Alice")
	require.NoError(t, err)

	a, err := s.CreateOrder(customer.ID, 1)
	require.NoError(t, err)
	b, err := s.CreateOrder(customer.ID, 2)
	require.NoError(t, err)
	c, err := s.CreateOrder(customer.ID, 3)
	require.NoError(t, err)

	orders, err := s.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, c.ID, orders[0].ID)
	assert.Equal(t, b.ID, orders[1].ID)
	assert.Equal(t, a.ID, orders[2].ID)
}

func TestListOrdersProjectionComplete(t *testing.T) {
	s := newTestStore(t)

	customer, err := s.ResolveCustomer("Alice")
	require.NoError(t, err)
	for menuID := uint(1); menuID <= 3; menuID++ {
		_, err := s.CreateOrder(customer.ID, menuID)
		require.NoError(t, err)
	}

	orders, err := s.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 3)
	for _, order := range orders {
		assert.NotEmpty(t, order.Firstname)
		assert.NotEmpty(t, order.PlateName)
		assert.NotEmpty(t, order.StatusName)
		assert.NotZero(t, order.UserID)
		assert.NotZero(t, order.MenuID)
	}
}

func TestGetOrder(t *testing.T) {
	s := newTestStore(t)

	customer, err := s.ResolveCustomer("Alice")
	require.NoError(t, err)
	created, err := s.CreateOrder(customer.ID, 2)
	require.NoError(t, err)

	order, err := s.GetOrder(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, order.ID)
	assert.Equal(t, "Pizza Lovelace", order.PlateName)

	_, err = s.GetOrder(999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newTestStore(t)

	customer, err := s.ResolveCustomer("Alice")
	require.NoError(t, err)
	created, err := s.CreateOrder(customer.ID, 1)
	require.NoError(t, err)

	updated, err := s.UpdateOrderStatus(created.ID, models.StatusReady)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReady, updated.OrderStatusID)
	assert.Equal(t, "Prête", updated.StatusName)

	// The change must be visible on a fresh read.
	fetched, err := s.GetOrder(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReady, fetched.OrderStatusID)
}

func TestUpdateOrderStatusInvalidLeavesRowUntouched(t *testing.T) {
	s := newTestStore(t)

	customer, err := s.ResolveCustomer("Alice")
	require.NoError(t, err)
	created, err := s.CreateOrder(customer.ID, 1)
	require.NoError(t, err)

	_, err = s.UpdateOrderStatus(created.ID, models.OrderStatus(9))
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	fetched, err := s.GetOrder(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, fetched.OrderStatusID)
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateOrderStatus(999999, models.StatusReady)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOrderStatusAllowsRegression(t *testing.T) {
	s := newTestStore(t)

	customer, err := s.ResolveCustomer("Alice")
	require.NoError(t, err)
	created, err := s.CreateOrder(customer.ID, 1)
	require.NoError(t, err)

	_, err = s.UpdateOrderStatus(created.ID, models.StatusDelivered)
	require.NoError(t, err)

	// Permissive policy: a delivered order may be sent back.
	back, err := s.UpdateOrderStatus(created.ID, models.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, back.OrderStatusID)
}
