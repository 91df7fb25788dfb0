package jobs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/model"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/query"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/store"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/testutil"
)

var testStart = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store  *store.Store
	reader *query.Reader
	clock  *testutil.Clock
	sink   *Sink
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	st, err := store.Open(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return &fixture{
		store:  st,
		reader: query.NewReader(st),
		clock:  testutil.NewClock(testStart, 0), // jobs stamp one run with one instant
		sink:   NewSink(filepath.Join(dir, "log.txt")),
	}
}

// seedCustomer inserts a customer with a fixed id for stable golden files.
func (f *fixture) seedCustomer(t *testing.T, id, name, email string) model.Customer {
	t.Helper()
	c := model.Customer{ID: id, Name: name, Email: email, CreatedAt: testStart.Add(-30 * 24 * time.Hour)}
	require.NoError(t, f.store.InsertCustomer(context.Background(), c))
	return c
}

func (f *fixture) seedProduct(t *testing.T, id, name, price string, stock int) model.Product {
	t.Helper()
	p := model.Product{ID: id, Name: name, Price: requireDecimal(t, price), Stock: stock}
	require.NoError(t, f.store.InsertProduct(context.Background(), p))
	return p
}

// seedOrder creates an order with a fixed id and order date via the real
// atomic creation path.
func (f *fixture) seedOrder(t *testing.T, id string, customer model.Customer, date time.Time, products ...model.Product) {
	t.Helper()
	o := model.Order{ID: id, CustomerID: customer.ID, OrderDate: date}
	_, err := f.store.CreateOrder(context.Background(), o, products)
	require.NoError(t, err)
}

func requireDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func (f *fixture) sinkContents(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(f.sink.Path())
	require.NoError(t, err)
	return data
}
