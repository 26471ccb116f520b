package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"petstore-tools/internal/database"
	"petstore-tools/internal/fakes"
)

// Counts controls how many rows each populator inserts.
type Counts struct {
	Catalog   int
	Inventory int
	Items     int
}

var DefaultCounts = Counts{Catalog: 100, Inventory: 200, Items: 500}

// Options controls a full catalog run.
type Options struct {
	Counts       Counts
	DropExisting bool
	NoTruncate   bool
	DryRun       bool
	Verbose      bool
}

// Runner creates and populates the catalog/inventory/items schema
// over a single connection.
type Runner struct {
	conn  *pgx.Conn
	fakes *fakes.Fakes
}

func NewRunner(conn *pgx.Conn, f *fakes.Fakes) *Runner {
	return &Runner{conn: conn, fakes: f}
}

// Run executes the flow: optional drop, create-if-missing, optional
// truncate, then the three populators in dependency order, followed
// by a row-count summary.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	exec := &database.Executor{Conn: r.conn, DryRun: opts.DryRun, Verbose: opts.Verbose}

	if opts.DropExisting {
		for _, name := range DropOrder {
			sql := fmt.Sprintf("DROP TABLE %s CASCADE", name)
			if err := exec.Drop(ctx, "table", name, sql); err != nil {
				return err
			}
		}
	}

	exists, err := r.tablesExist(ctx)
	if err != nil {
		return err
	}
	if exists && !opts.DropExisting {
		color.Yellow("⚠ Catalog tables already exist, skipping creation")
	} else {
		for _, name := range TableOrder {
			if err := exec.Create(ctx, "table", name, Tables[name]); err != nil {
				return err
			}
		}
	}

	if opts.DryRun {
		color.Cyan("Dry run complete, no data inserted")
		return nil
	}

	if !opts.NoTruncate && exists {
		if err := r.truncate(ctx); err != nil {
			return err
		}
	}

	tx, err := r.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Codes embed a per-run stamp so additive runs (--no-truncate) never
	// collide with committed rows on the unique constraints.
	stamp := time.Now().UnixMilli()

	if err := r.populateCatalog(ctx, tx, opts.Counts.Catalog, stamp); err != nil {
		return err
	}
	if err := r.populateInventory(ctx, tx, opts.Counts.Inventory); err != nil {
		return err
	}
	if err := r.populateItems(ctx, tx, opts.Counts.Items, stamp); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit catalog data: %w", err)
	}
	color.Green("✓ All data generated and committed successfully")

	return r.summary(ctx)
}

// tablesExist probes the catalog table; an undefined-table error
// means the schema has not been created yet.
func (r *Runner) tablesExist(ctx context.Context) (bool, error) {
	var n int64
	err := r.conn.QueryRow(ctx, "SELECT COUNT(*) FROM catalog").Scan(&n)
	if err != nil {
		if database.IsUndefinedObject(err) {
			return false, nil
		}
		return false, fmt.Errorf("check catalog tables: %w", err)
	}
	return true, nil
}

func (r *Runner) truncate(ctx context.Context) error {
	for _, name := range DropOrder {
		sql := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", name)
		if _, err := r.conn.Exec(ctx, sql); err != nil {
			if database.IsUndefinedObject(err) {
				continue
			}
			return fmt.Errorf("truncate %s: %w", name, err)
		}
		color.Yellow("⚠ Truncated table %s", name)
	}
	return nil
}

func (r *Runner) populateCatalog(ctx context.Context, tx pgx.Tx, n int, stamp int64) error {
	g := r.fakes
	for i := 0; i < n; i++ {
		category := g.Pick(Categories)
		_, err := tx.Exec(ctx, `
			INSERT INTO catalog (catalog_name, description, category, is_active, catalog_code)
			VALUES ($1, $2, $3, $4, $5)`,
			fmt.Sprintf("%s %s Collection", g.TitleWord(), category),
			g.Text(500),
			category,
			g.Pick([]string{"Y", "Y", "Y", "N"}),
			// VARCHAR(20): stamp clipped to nine digits.
			fmt.Sprintf("CAT-%09d-%04d", stamp%1_000_000_000, i+1),
		)
		if err != nil {
			return fmt.Errorf("insert catalog row: %w", err)
		}
	}
	color.Green("✓ Inserted %d catalog entries", n)
	return nil
}

func (r *Runner) populateInventory(ctx context.Context, tx pgx.Tx, n int) error {
	ids, err := r.catalogIDs(ctx, tx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		color.Yellow("⚠ No catalog entries found, skipping inventory")
		return nil
	}

	g := r.fakes
	for i := 0; i < n; i++ {
		_, err := tx.Exec(ctx, `
			INSERT INTO inventory (catalog_id, warehouse_location, quantity_available, quantity_reserved, reorder_level)
			VALUES ($1, $2, $3, $4, $5)`,
			ids[g.Number(0, len(ids)-1)],
			g.Pick(WarehouseLocations),
			g.Number(0, 1000),
			g.Number(0, 50),
			g.Number(5, 25),
		)
		if err != nil {
			return fmt.Errorf("insert inventory row: %w", err)
		}
	}
	color.Green("✓ Inserted %d inventory records", n)
	return nil
}

func (r *Runner) populateItems(ctx context.Context, tx pgx.Tx, n int, stamp int64) error {
	pairs, err := r.catalogInventoryPairs(ctx, tx)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		color.Yellow("⚠ No inventory records found, skipping items")
		return nil
	}

	g := r.fakes
	for i := 0; i < n; i++ {
		pair := pairs[g.Number(0, len(pairs)-1)]
		price := decimal.NewFromFloat(g.Float(10, 1000)).Round(2)
		cost := price.Mul(decimal.NewFromFloat(g.Float(0.3, 0.7))).Round(2)
		_, err := tx.Exec(ctx, `
			INSERT INTO items (catalog_id, inventory_id, item_name, sku, price, cost, weight_kg, dimensions, color, brand)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			pair.CatalogID,
			pair.InventoryID,
			fmt.Sprintf("%s %s", g.Pick(Brands), g.TitleWord()),
			fmt.Sprintf("SKU-%d-%06d", stamp, i+1),
			price,
			cost,
			decimal.NewFromFloat(g.Float(0.1, 50)).Round(3),
			fmt.Sprintf("%dx%dx%d cm", g.Number(5, 100), g.Number(5, 100), g.Number(5, 100)),
			g.Pick(Colors),
			g.Pick(Brands),
		)
		if err != nil {
			return fmt.Errorf("insert item row: %w", err)
		}
	}
	color.Green("✓ Inserted %d items", n)
	return nil
}

type pair struct {
	CatalogID   int64
	InventoryID int64
}

func (r *Runner) catalogIDs(ctx context.Context, tx pgx.Tx) ([]int64, error) {
	rows, err := tx.Query(ctx, "SELECT catalog_id FROM catalog")
	if err != nil {
		return nil, fmt.Errorf("list catalog ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("collect catalog ids: %w", err)
	}
	return ids, nil
}

func (r *Runner) catalogInventoryPairs(ctx context.Context, tx pgx.Tx) ([]pair, error) {
	rows, err := tx.Query(ctx, `
		SELECT i.catalog_id, i.inventory_id
		FROM inventory i
		JOIN catalog c ON c.catalog_id = i.catalog_id`)
	if err != nil {
		return nil, fmt.Errorf("list catalog/inventory pairs: %w", err)
	}
	pairs, err := pgx.CollectRows(rows, pgx.RowToStructByPos[pair])
	if err != nil {
		return nil, fmt.Errorf("collect catalog/inventory pairs: %w", err)
	}
	return pairs, nil
}

func (r *Runner) summary(ctx context.Context) error {
	color.Cyan("\nFinal row counts:")
	for _, name := range TableOrder {
		var n int64
		if err := r.conn.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", name)).Scan(&n); err != nil {
			return fmt.Errorf("count %s: %w", name, err)
		}
		fmt.Printf("  %-12s %d rows\n", name, n)
	}
	return nil
}
