package query

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/store"
)

// LowStockThreshold mirrors the replenishment threshold for the
// ProductFilter.LowStock predicate.
const LowStockThreshold = 10

// CustomerFilter selects customers. Zero-valued fields are unconstrained.
type CustomerFilter struct {
	NameContains  string
	EmailContains string
	CreatedAfter  *time.Time // created_at >= value
	CreatedBefore *time.Time // created_at <= value
	PhonePrefix   string     // phone starts with value
}

// ProductFilter selects products. Zero-valued fields are unconstrained.
type ProductFilter struct {
	NameContains string
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
	StockMin     *int
	StockMax     *int
	LowStock     bool // stock strictly below LowStockThreshold
}

// OrderFilter selects orders. Zero-valued fields are unconstrained.
// CustomerNameContains and ProductNameContains match against the related
// entities, not the order row itself.
type OrderFilter struct {
	TotalMin             *decimal.Decimal
	TotalMax             *decimal.Decimal
	OrderedAfter         *time.Time
	OrderedBefore        *time.Time
	CustomerNameContains string
	ProductNameContains  string
	ProductID            string
}

// condition is one compiled WHERE conjunct with its parameters.
type condition struct {
	sql  string
	args []any
}

// whereClause assembles conditions into " WHERE ..." plus the flattened
// parameter list. Returns "" for an empty condition set.
func whereClause(conds []condition) (string, []any) {
	if len(conds) == 0 {
		return "", nil
	}
	sql := " WHERE "
	var args []any
	for i, c := range conds {
		if i > 0 {
			sql += " AND "
		}
		sql += c.sql
		args = append(args, c.args...)
	}
	return sql, args
}

// contains builds a case-insensitive substring match. SQLite's LIKE is
// case-insensitive for ASCII by default, which matches the original
// icontains behavior for the data this system stores.
func contains(column, value string) condition {
	return condition{sql: column + " LIKE ?", args: []any{"%" + value + "%"}}
}

func (f CustomerFilter) conditions() []condition {
	var conds []condition
	if f.NameContains != "" {
		conds = append(conds, contains("name", f.NameContains))
	}
	if f.EmailContains != "" {
		conds = append(conds, contains("email", f.EmailContains))
	}
	if f.CreatedAfter != nil {
		conds = append(conds, condition{sql: "created_at >= ?", args: []any{store.FormatTime(*f.CreatedAfter)}})
	}
	if f.CreatedBefore != nil {
		conds = append(conds, condition{sql: "created_at <= ?", args: []any{store.FormatTime(*f.CreatedBefore)}})
	}
	if f.PhonePrefix != "" {
		conds = append(conds, condition{sql: "phone LIKE ?", args: []any{f.PhonePrefix + "%"}})
	}
	return conds
}

func (f ProductFilter) conditions() []condition {
	var conds []condition
	if f.NameContains != "" {
		conds = append(conds, contains("name", f.NameContains))
	}
	// Prices are stored as decimal text; CAST keeps range comparisons
	// numeric rather than lexicographic.
	if f.PriceMin != nil {
		conds = append(conds, condition{sql: "CAST(price AS REAL) >= ?", args: []any{f.PriceMin.InexactFloat64()}})
	}
	if f.PriceMax != nil {
		conds = append(conds, condition{sql: "CAST(price AS REAL) <= ?", args: []any{f.PriceMax.InexactFloat64()}})
	}
	if f.StockMin != nil {
		conds = append(conds, condition{sql: "stock >= ?", args: []any{*f.StockMin}})
	}
	if f.StockMax != nil {
		conds = append(conds, condition{sql: "stock <= ?", args: []any{*f.StockMax}})
	}
	if f.LowStock {
		conds = append(conds, condition{sql: "stock < ?", args: []any{LowStockThreshold}})
	}
	return conds
}

func (f OrderFilter) conditions() []condition {
	var conds []condition
	if f.TotalMin != nil {
		conds = append(conds, condition{sql: "CAST(o.total_amount AS REAL) >= ?", args: []any{f.TotalMin.InexactFloat64()}})
	}
	if f.TotalMax != nil {
		conds = append(conds, condition{sql: "CAST(o.total_amount AS REAL) <= ?", args: []any{f.TotalMax.InexactFloat64()}})
	}
	if f.OrderedAfter != nil {
		conds = append(conds, condition{sql: "o.order_date >= ?", args: []any{store.FormatTime(*f.OrderedAfter)}})
	}
	if f.OrderedBefore != nil {
		conds = append(conds, condition{sql: "o.order_date <= ?", args: []any{store.FormatTime(*f.OrderedBefore)}})
	}
	if f.CustomerNameContains != "" {
		conds = append(conds, contains("c.name", f.CustomerNameContains))
	}
	if f.ProductNameContains != "" {
		conds = append(conds, condition{
			sql: `EXISTS (
				SELECT 1 FROM order_products op
				JOIN products p ON p.id = op.product_id
				WHERE op.order_id = o.id AND p.name LIKE ?
			)`,
			args: []any{"%" + f.ProductNameContains + "%"},
		})
	}
	if f.ProductID != "" {
		conds = append(conds, condition{
			sql:  "EXISTS (SELECT 1 FROM order_products op WHERE op.order_id = o.id AND op.product_id = ?)",
			args: []any{f.ProductID},
		})
	}
	return conds
}
