package generator

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/fatih/color"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"petstore-tools/internal/fakes"
	"petstore-tools/internal/registry"
	"petstore-tools/internal/schema"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// OrderWorker inserts order batches over its own connection. The order
// INSERT is built dynamically from the statically declared orders
// descriptor, so a schema that computes total_amount only needs the
// descriptor flag flipped.
type OrderWorker struct {
	conn  *pgx.Conn
	fakes *fakes.Fakes
	reg   *registry.Registry
}

func NewOrderWorker(conn *pgx.Conn, f *fakes.Fakes, reg *registry.Registry) *OrderWorker {
	return &OrderWorker{conn: conn, fakes: f, reg: reg}
}

// Ready gates order generation on both dependency lists being non-empty.
func (w *OrderWorker) Ready() bool {
	return w.reg.Len(registry.Customers) > 0 && w.reg.Len(registry.Products) > 0
}

// Batch attempts n order insertions inside one transaction. Rows whose
// foreign-key targets have vanished are skipped with a diagnostic; any
// other error rolls the whole batch back.
func (w *OrderWorker) Batch(n int) BatchFunc {
	return func(ctx context.Context) (int, error) {
		tx, err := w.conn.Begin(ctx)
		if err != nil {
			return 0, fmt.Errorf("begin order batch: %w", err)
		}
		defer tx.Rollback(ctx)

		inserted := 0
		for i := 0; i < n; i++ {
			ok, err := w.insertOrder(ctx, tx)
			if err != nil {
				return 0, err
			}
			if ok {
				inserted++
			}
		}

		if err := tx.Commit(ctx); err != nil {
			return 0, fmt.Errorf("commit order batch: %w", err)
		}
		return inserted, nil
	}
}

// insertOrder creates one order with 1-5 items. It reports false, nil when
// the order was skipped because a referenced row no longer exists.
func (w *OrderWorker) insertOrder(ctx context.Context, tx pgx.Tx) (bool, error) {
	g := w.fakes

	customerID, ok := w.reg.Random(registry.Customers)
	if !ok {
		return false, nil
	}

	// The customer's address is authoritative; read it fresh rather than
	// caching it in the registry.
	var addr, city, state, zip *string
	err := tx.QueryRow(ctx,
		`SELECT address_line1, city, state, zip_code FROM customers WHERE customer_id = $1`,
		customerID,
	).Scan(&addr, &city, &state, &zip)
	if errors.Is(err, pgx.ErrNoRows) {
		color.Yellow("Skipping order: customer %d not found.", customerID)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("look up customer %d: %w", customerID, err)
	}

	candidate := map[string]any{
		"customer_id":      customerID,
		"order_date":       g.DateThisYear(),
		"order_status":     g.Pick(fakes.OrderStatuses),
		"shipping_address": addr,
		"city":             city,
		"state":            state,
		"zip_code":         zip,
		"payment_method":   g.Pick(fakes.PaymentMethods),
	}
	values := map[string]any{}
	for col, v := range candidate {
		if schema.OrdersTable.HasRealColumn(col) {
			values[col] = v
		}
	}

	sqlText, args, err := qb.Insert(schema.OrdersTable.Name).
		SetMap(values).
		Suffix("RETURNING " + schema.OrdersTable.Key).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build order insert: %w", err)
	}

	var orderID int64
	if err := tx.QueryRow(ctx, sqlText, args...).Scan(&orderID); err != nil {
		return false, fmt.Errorf("insert order: %w", err)
	}

	numItems := g.Number(1, 5)
	productIDs := w.reg.Sample(registry.Products, numItems)
	if len(productIDs) == 0 {
		color.Yellow("Skipping order items: no products available.")
		return true, nil
	}

	total := decimal.Zero
	for _, productID := range productIDs {
		var price decimal.Decimal
		err := tx.QueryRow(ctx,
			`SELECT price FROM products WHERE product_id = $1`, productID,
		).Scan(&price)
		if errors.Is(err, pgx.ErrNoRows) {
			color.Yellow("Skipping order item: product %d not found.", productID)
			continue
		}
		if err != nil {
			return false, fmt.Errorf("look up product %d: %w", productID, err)
		}

		quantity := g.Number(1, 4)
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			 VALUES ($1, $2, $3, $4)`,
			orderID, productID, quantity, price,
		)
		if err != nil {
			return false, fmt.Errorf("insert order item: %w", err)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(quantity))))
	}

	// When total_amount is computed by the database the update is skipped
	// and the generated-column mechanism owns the value.
	if schema.OrdersTable.HasRealColumn("total_amount") {
		_, err := tx.Exec(ctx,
			`UPDATE orders SET total_amount = $1 WHERE order_id = $2`, total, orderID)
		if err != nil {
			return false, fmt.Errorf("update order total: %w", err)
		}
	}

	return true, nil
}
