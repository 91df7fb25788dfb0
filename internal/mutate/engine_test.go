package mutate

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/store"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/testutil"
)

func newTestMutator(t *testing.T) (*Mutator, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	clock := testutil.NewClock(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), time.Second)
	return NewWithClock(st, clock.Now), st
}

func TestCreateCustomer(t *testing.T) {
	m, _ := newTestMutator(t)
	ctx := context.Background()

	res, err := m.CreateCustomer(ctx, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "Alice", res.Customer.Name)
	assert.Equal(t, "Customer Alice created successfully", res.Message)
	assert.NotEmpty(t, res.Customer.ID)
	assert.False(t, res.Customer.CreatedAt.IsZero())
}

func TestCreateCustomer_ValidationFailureWritesNothing(t *testing.T) {
	m, st := newTestMutator(t)
	ctx := context.Background()

	_, err := m.CreateCustomer(ctx, CustomerInput{Name: "", Email: "not-an-email"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	var me *MutationError
	require.ErrorAs(t, err, &me)
	assert.Len(t, me.Fields, 2, "all violations reported, not just the first")

	var count int
	require.NoError(t, st.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&count))
	assert.Zero(t, count, "no row written on validation failure")
}

func TestCreateCustomer_DuplicateEmailIsValidationError(t *testing.T) {
	m, _ := newTestMutator(t)
	ctx := context.Background()

	_, err := m.CreateCustomer(ctx, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = m.CreateCustomer(ctx, CustomerInput{Name: "Other Alice", Email: "alice@example.com"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "alice@example.com")
}

func TestBulkCreateCustomers_PartialSuccess(t *testing.T) {
	m, _ := newTestMutator(t)
	ctx := context.Background()

	inputs := []CustomerInput{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bob", Email: "alice@example.com"}, // duplicate email
		{Name: "", Email: "carol@example.com"},    // missing name
		{Name: "Dave", Email: "dave@example.com"},
	}

	res := m.BulkCreateCustomers(ctx, inputs)

	assert.Len(t, res.Created, 2)
	assert.Len(t, res.Errors, 2)
	assert.False(t, res.Success)

	// Errors are prefixed with the entry's 1-based position.
	assert.Contains(t, res.Errors[0], "Row 2:")
	assert.Contains(t, res.Errors[1], "Row 3:")

	// A failed entry must not block later entries.
	assert.Equal(t, "Dave", res.Created[1].Name)
}

func TestBulkCreateCustomers_AllValid(t *testing.T) {
	m, _ := newTestMutator(t)

	res := m.BulkCreateCustomers(context.Background(), []CustomerInput{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
	})

	assert.True(t, res.Success)
	assert.Len(t, res.Created, 2)
	assert.Empty(t, res.Errors)
}

func TestCreateProduct(t *testing.T) {
	m, _ := newTestMutator(t)

	res, err := m.CreateProduct(context.Background(), ProductInput{Name: "Widget", Price: "10.00", Stock: 2})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "Product Widget created successfully", res.Message)
	assert.True(t, res.Product.Price.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, 2, res.Product.Stock)
}

func TestCreateProduct_StockDefaultsToZero(t *testing.T) {
	m, _ := newTestMutator(t)

	res, err := m.CreateProduct(context.Background(), ProductInput{Name: "Widget", Price: "10.00"})
	require.NoError(t, err)
	assert.Zero(t, res.Product.Stock)
}

func TestCreateProduct_NegativePrice(t *testing.T) {
	m, _ := newTestMutator(t)

	_, err := m.CreateProduct(context.Background(), ProductInput{Name: "Widget", Price: "-1.00"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestCreateProduct_MalformedPrice(t *testing.T) {
	m, _ := newTestMutator(t)

	_, err := m.CreateProduct(context.Background(), ProductInput{Name: "Widget", Price: "ten dollars"})
	require.Error(t, err)
	assert.True(t, IsInput(err))
}

func TestCreateOrder_EmptyProductList(t *testing.T) {
	m, st := newTestMutator(t)
	ctx := context.Background()

	_, err := m.CreateOrder(ctx, OrderInput{CustomerID: "whatever"})
	require.Error(t, err)
	assert.True(t, IsInput(err))

	var count int
	require.NoError(t, st.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count))
	assert.Zero(t, count)
}

func TestCreateOrder_MissingCustomer(t *testing.T) {
	m, st := newTestMutator(t)
	ctx := context.Background()

	prod, err := m.CreateProduct(ctx, ProductInput{Name: "Widget", Price: "10.00"})
	require.NoError(t, err)

	_, err = m.CreateOrder(ctx, OrderInput{CustomerID: "no-such-id", ProductIDs: []string{prod.Product.ID}})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "customer with ID no-such-id not found")

	var count int
	require.NoError(t, st.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count))
	assert.Zero(t, count)
}

func TestCreateOrder_MissingProductsNamedExactly(t *testing.T) {
	m, st := newTestMutator(t)
	ctx := context.Background()

	cust, err := m.CreateCustomer(ctx, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	prod, err := m.CreateProduct(ctx, ProductInput{Name: "Widget", Price: "10.00"})
	require.NoError(t, err)

	_, err = m.CreateOrder(ctx, OrderInput{
		CustomerID: cust.Customer.ID,
		ProductIDs: []string{prod.Product.ID, "zz-missing", "aa-missing"},
	})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	// The message enumerates exactly the missing ids, sorted ascending.
	assert.Contains(t, err.Error(), "invalid product IDs: [aa-missing, zz-missing]")
	assert.NotContains(t, err.Error(), prod.Product.ID)

	var orders, joins int
	require.NoError(t, st.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&orders))
	require.NoError(t, st.QueryRow(ctx, "SELECT COUNT(*) FROM order_products").Scan(&joins))
	assert.Zero(t, orders)
	assert.Zero(t, joins)
}

func TestCreateOrder_TotalEqualsSumOfPrices(t *testing.T) {
	m, _ := newTestMutator(t)
	ctx := context.Background()

	cust, err := m.CreateCustomer(ctx, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	laptop, err := m.CreateProduct(ctx, ProductInput{Name: "Laptop", Price: "999.99", Stock: 10})
	require.NoError(t, err)
	mouse, err := m.CreateProduct(ctx, ProductInput{Name: "Mouse", Price: "29.99", Stock: 50})
	require.NoError(t, err)

	res, err := m.CreateOrder(ctx, OrderInput{
		CustomerID: cust.Customer.ID,
		ProductIDs: []string{laptop.Product.ID, mouse.Product.ID},
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.True(t, res.Order.TotalAmount.Equal(decimal.RequireFromString("1029.98")),
		"total = %s", res.Order.TotalAmount)
	assert.Equal(t, "Order created successfully with total: $1029.98", res.Message)
}

func TestCreateOrder_DuplicateProductIDsCollapse(t *testing.T) {
	m, _ := newTestMutator(t)
	ctx := context.Background()

	cust, err := m.CreateCustomer(ctx, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	prod, err := m.CreateProduct(ctx, ProductInput{Name: "Widget", Price: "10.00"})
	require.NoError(t, err)

	res, err := m.CreateOrder(ctx, OrderInput{
		CustomerID: cust.Customer.ID,
		ProductIDs: []string{prod.Product.ID, prod.Product.ID},
	})
	require.NoError(t, err)

	// The product set is a set: the duplicate neither doubles the total
	// nor produces two attachments.
	assert.True(t, res.Order.TotalAmount.Equal(decimal.RequireFromString("10.00")))
	assert.Len(t, res.Order.ProductIDs, 1)
}

func TestCreateOrder_ExplicitOrderDate(t *testing.T) {
	m, st := newTestMutator(t)
	ctx := context.Background()

	cust, err := m.CreateCustomer(ctx, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	prod, err := m.CreateProduct(ctx, ProductInput{Name: "Widget", Price: "10.00"})
	require.NoError(t, err)

	when := time.Date(2023, 6, 1, 9, 30, 0, 0, time.UTC)
	res, err := m.CreateOrder(ctx, OrderInput{
		CustomerID: cust.Customer.ID,
		ProductIDs: []string{prod.Product.ID},
		OrderDate:  &when,
	})
	require.NoError(t, err)

	persisted, err := st.GetOrder(ctx, res.Order.ID)
	require.NoError(t, err)
	assert.True(t, persisted.OrderDate.Equal(when))
}

func TestUpdateLowStockProducts_ThresholdSemantics(t *testing.T) {
	m, _ := newTestMutator(t)
	ctx := context.Background()

	low, err := m.CreateProduct(ctx, ProductInput{Name: "Keyboard", Price: "79.99", Stock: 5})
	require.NoError(t, err)
	edge, err := m.CreateProduct(ctx, ProductInput{Name: "Laptop", Price: "999.99", Stock: 10})
	require.NoError(t, err)
	high, err := m.CreateProduct(ctx, ProductInput{Name: "Mouse", Price: "29.99", Stock: 50})
	require.NoError(t, err)

	res, err := m.UpdateLowStockProducts(ctx)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.UpdatedCount)
	require.Len(t, res.UpdatedProducts, 1)
	assert.Equal(t, low.Product.ID, res.UpdatedProducts[0].ID)
	assert.Equal(t, 15, res.UpdatedProducts[0].Stock, "stock increases by exactly 10")
	assert.Equal(t, "Successfully updated 1 products with low stock", res.Message)

	// Products at or above threshold are untouched.
	st := m.store
	for _, p := range []string{edge.Product.ID, high.Product.ID} {
		got, err := st.GetProduct(ctx, p)
		require.NoError(t, err)
		if p == edge.Product.ID {
			assert.Equal(t, 10, got.Stock)
		} else {
			assert.Equal(t, 50, got.Stock)
		}
	}
}

func TestUpdateLowStockProducts_SecondRunIsNoOpOnceAboveThreshold(t *testing.T) {
	m, st := newTestMutator(t)
	ctx := context.Background()

	prod, err := m.CreateProduct(ctx, ProductInput{Name: "Widget", Price: "10.00", Stock: 3})
	require.NoError(t, err)

	res, err := m.UpdateLowStockProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.UpdatedCount)

	got, err := st.GetProduct(ctx, prod.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, 13, got.Stock)

	// 13 >= 10, so the second run must not touch it.
	res, err = m.UpdateLowStockProducts(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.UpdatedCount)

	got, err = st.GetProduct(ctx, prod.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, 13, got.Stock)
}

func TestUpdateLowStockProducts_EmptyStore(t *testing.T) {
	m, _ := newTestMutator(t)

	res, err := m.UpdateLowStockProducts(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Zero(t, res.UpdatedCount)
}

// End-to-end walk through the canonical example: customer, product, order,
// restock.
func TestMutationFlow_EndToEnd(t *testing.T) {
	m, st := newTestMutator(t)
	ctx := context.Background()

	cust, err := m.CreateCustomer(ctx, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	require.True(t, cust.Success)
	assert.Equal(t, "Alice", cust.Customer.Name)

	prod, err := m.CreateProduct(ctx, ProductInput{Name: "Widget", Price: "10.00", Stock: 2})
	require.NoError(t, err)
	require.True(t, prod.Success)

	order, err := m.CreateOrder(ctx, OrderInput{
		CustomerID: cust.Customer.ID,
		ProductIDs: []string{prod.Product.ID},
	})
	require.NoError(t, err)
	require.True(t, order.Success)
	assert.True(t, order.Order.TotalAmount.Equal(decimal.RequireFromString("10.00")))

	restock, err := m.UpdateLowStockProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, restock.UpdatedCount)

	got, err := st.GetProduct(ctx, prod.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Stock)
}
