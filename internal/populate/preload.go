package populate

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"petstore-tools/internal/registry"
)

// LoadRegistry fills the registry from rows already in the database.
// Used when the initial data load is skipped so the generators can
// start against pre-existing data.
func LoadRegistry(ctx context.Context, db DB, reg *registry.Registry) error {
	sources := []struct {
		kind  registry.Kind
		query string
	}{
		{registry.Suppliers, "SELECT supplier_id FROM suppliers"},
		{registry.Employees, "SELECT employee_id FROM employees"},
		{registry.Customers, "SELECT customer_id FROM customers"},
		{registry.Products, "SELECT product_id FROM products"},
		{registry.Pets, "SELECT pet_id FROM pets"},
	}

	for _, src := range sources {
		rows, err := db.Query(ctx, src.query)
		if err != nil {
			return fmt.Errorf("preload %s: %w", src.kind, err)
		}
		ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
		if err != nil {
			return fmt.Errorf("preload %s: %w", src.kind, err)
		}
		for _, id := range ids {
			reg.Append(src.kind, id)
		}
	}
	return nil
}
