//go:build integration
// +build integration

package main_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"petstore-tools/internal/catalog"
	"petstore-tools/internal/database"
	"petstore-tools/internal/fakes"
	"petstore-tools/internal/generator"
	"petstore-tools/internal/populate"
	"petstore-tools/internal/registry"
	"petstore-tools/internal/report"
	"petstore-tools/internal/schema"
)

func setupTestDB(t *testing.T) (string, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("petstore"),
		postgres.WithUsername("master"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	cleanup := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}
	return connStr, cleanup
}

func connect(t *testing.T, connStr string) *pgx.Conn {
	t.Helper()
	conn, err := pgx.Connect(context.Background(), connStr)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(context.Background()) })
	return conn
}

func createSchema(t *testing.T, ctx context.Context, conn *pgx.Conn) {
	t.Helper()
	exec := &database.Executor{Conn: conn}
	for _, name := range schema.SequenceOrder {
		require.NoError(t, exec.Create(ctx, "sequence", name, schema.Sequences[name]))
	}
	for _, name := range schema.TableOrder {
		require.NoError(t, exec.Create(ctx, "table", name, schema.Tables[name]))
	}
	for _, name := range schema.IndexOrder {
		require.NoError(t, exec.Create(ctx, "index", name, schema.Indexes[name]))
	}
}

func TestSchemaAndPopulate(t *testing.T) {
	connStr, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	conn := connect(t, connStr)
	createSchema(t, ctx, conn)

	// Re-running the DDL must only warn, never fail.
	createSchema(t, ctx, conn)

	f := fakes.New()
	reg := registry.New()
	ins := populate.NewInserter(f, reg)
	pop := populate.NewPopulator(conn, ins, reg)

	counts := populate.Counts{
		Suppliers: 3, Employees: 5, Customers: 10,
		Products: 15, Pets: 4, CareLogs: 6, DatatypeRows: 2,
	}
	require.NoError(t, pop.Run(ctx, counts))

	assert.Equal(t, 3, reg.Len(registry.Suppliers))
	assert.Equal(t, 5, reg.Len(registry.Employees))
	assert.Equal(t, 10, reg.Len(registry.Customers))
	assert.GreaterOrEqual(t, reg.Len(registry.Products), 15)
	// One pet per existing 'Pet'-typed product, capped at the requested count.
	assert.GreaterOrEqual(t, reg.Len(registry.Pets), 1)
	assert.LessOrEqual(t, reg.Len(registry.Pets), 4)

	for table, want := range map[string]int64{
		"suppliers": 3, "employees": 5, "customers": 10,
	} {
		var n int64
		require.NoError(t, conn.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n))
		assert.Equal(t, want, n, "row count for %s", table)
	}

	// Every employee except the root reports to someone.
	var orphans int64
	require.NoError(t, conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM employees WHERE manager_id IS NULL").Scan(&orphans))
	assert.EqualValues(t, 1, orphans)

	// Every pet hangs off a 'Pet'-typed product and entered the store
	// after it was born.
	var badPets int64
	require.NoError(t, conn.QueryRow(ctx, `
		SELECT COUNT(*) FROM pets p
		JOIN products pr ON pr.product_id = p.product_id
		WHERE pr.product_type <> 'Pet' OR p.entry_date < p.date_of_birth`).Scan(&badPets))
	assert.Zero(t, badPets)

	// Care logs only come from qualified staff.
	var unqualified int64
	require.NoError(t, conn.QueryRow(ctx, `
		SELECT COUNT(*) FROM pet_care_logs l
		JOIN employees e ON e.employee_id = l.employee_id
		WHERE e.job_title NOT IN ('Vet Technician', 'Groomer')`).Scan(&unqualified))
	assert.Zero(t, unqualified)
}

func TestOrderGeneratorBatch(t *testing.T) {
	connStr, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	conn := connect(t, connStr)
	createSchema(t, ctx, conn)

	f := fakes.New()
	reg := registry.New()
	ins := populate.NewInserter(f, reg)
	pop := populate.NewPopulator(conn, ins, reg)
	require.NoError(t, pop.Run(ctx, populate.Counts{
		Suppliers: 2, Employees: 3, Customers: 5, Products: 10, Pets: 1, CareLogs: 1,
	}))

	worker := generator.NewOrderWorker(conn, f, reg)
	require.True(t, worker.Ready())

	inserted, err := worker.Batch(4)(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, inserted)

	var orders, items int64
	require.NoError(t, conn.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&orders))
	require.NoError(t, conn.QueryRow(ctx, "SELECT COUNT(*) FROM order_items").Scan(&items))
	assert.EqualValues(t, 4, orders)
	assert.GreaterOrEqual(t, items, orders)

	// Totals match the sum of the generated item totals.
	var mismatched int64
	require.NoError(t, conn.QueryRow(ctx, `
		SELECT COUNT(*) FROM orders o
		WHERE o.total_amount <> (SELECT COALESCE(SUM(item_total), 0)
		                         FROM order_items i WHERE i.order_id = o.order_id)`).Scan(&mismatched))
	assert.Zero(t, mismatched)
}

func TestProductGeneratorBatch(t *testing.T) {
	connStr, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	conn := connect(t, connStr)
	createSchema(t, ctx, conn)

	f := fakes.New()
	reg := registry.New()
	ins := populate.NewInserter(f, reg)
	pop := populate.NewPopulator(conn, ins, reg)
	require.NoError(t, pop.Run(ctx, populate.Counts{
		Suppliers: 2, Employees: 3, Customers: 5, Products: 5, Pets: 1, CareLogs: 1,
	}))

	before := reg.Len(registry.Products)

	worker := generator.NewProductWorker(conn, f, reg)
	require.True(t, worker.Ready())

	inserted, err := worker.Batch(3)(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)
	assert.Equal(t, before+3, reg.Len(registry.Products))

	// New products reference suppliers the registry knows about.
	var foreign int64
	require.NoError(t, conn.QueryRow(ctx, `
		SELECT COUNT(*) FROM products p
		LEFT JOIN suppliers s ON s.supplier_id = p.supplier_id
		WHERE s.supplier_id IS NULL`).Scan(&foreign))
	assert.Zero(t, foreign)
}

func TestProductGeneratorRate(t *testing.T) {
	connStr, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	conn := connect(t, connStr)
	createSchema(t, ctx, conn)

	f := fakes.New()
	reg := registry.New()
	ins := populate.NewInserter(f, reg)
	pop := populate.NewPopulator(conn, ins, reg)
	require.NoError(t, pop.Run(ctx, populate.Counts{
		Suppliers: 3, Employees: 3, Customers: 2, Products: 2, Pets: 1, CareLogs: 1,
	}))

	var before int64
	require.NoError(t, conn.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&before))

	// The generator owns its own session, like a real run.
	genConn := connect(t, connStr)
	worker := generator.NewProductWorker(genConn, f, reg)

	runCtx, cancel := context.WithTimeout(ctx, 3200*time.Millisecond)
	defer cancel()
	gen := generator.New(generator.Options{
		Name:     "products",
		Interval: time.Second,
	}, worker.Ready, worker.Batch(2))
	require.NoError(t, gen.Run(runCtx))

	var after int64
	require.NoError(t, conn.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&after))

	// Batches of 2 fire at roughly 0s, 1s, 2s, 3s within the window.
	delta := after - before
	assert.GreaterOrEqual(t, delta, int64(2), "expected at least one batch in %s", 3200*time.Millisecond)
	assert.LessOrEqual(t, delta, int64(8), "more batches than the interval allows")
	assert.EqualValues(t, after, reg.Len(registry.Products),
		"every generated product id should be published to the registry")

	// All generated products reference live suppliers.
	var foreign int64
	require.NoError(t, conn.QueryRow(ctx, `
		SELECT COUNT(*) FROM products p
		LEFT JOIN suppliers s ON s.supplier_id = p.supplier_id
		WHERE s.supplier_id IS NULL`).Scan(&foreign))
	assert.Zero(t, foreign)
}

func TestRowCountReport(t *testing.T) {
	connStr, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	conn := connect(t, connStr)
	createSchema(t, ctx, conn)

	rep, err := report.Collect(ctx, conn, "public")
	require.NoError(t, err)

	require.Len(t, rep.Schemas, 1)
	assert.Equal(t, "public", rep.Schemas[0].Schema)
	assert.Equal(t, len(schema.TableOrder), rep.TotalTables)
	assert.Contains(t, rep.Version, "PostgreSQL")
}

func TestCatalogRunner(t *testing.T) {
	connStr, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	conn := connect(t, connStr)

	runner := catalog.NewRunner(conn, fakes.New())
	require.NoError(t, runner.Run(ctx, catalog.Options{
		Counts: catalog.Counts{Catalog: 10, Inventory: 20, Items: 30},
	}))

	for table, want := range map[string]int64{"catalog": 10, "inventory": 20, "items": 30} {
		var n int64
		require.NoError(t, conn.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n))
		assert.Equal(t, want, n, "row count for %s", table)
	}

	// Re-running without drop keeps the schema and truncates the data.
	require.NoError(t, runner.Run(ctx, catalog.Options{
		Counts: catalog.Counts{Catalog: 5, Inventory: 5, Items: 5},
	}))
	var n int64
	require.NoError(t, conn.QueryRow(ctx, "SELECT COUNT(*) FROM catalog").Scan(&n))
	assert.EqualValues(t, 5, n)

	// An additive run keeps the committed rows; the new codes and SKUs
	// must not trip the unique constraints.
	require.NoError(t, runner.Run(ctx, catalog.Options{
		Counts:     catalog.Counts{Catalog: 5, Inventory: 5, Items: 5},
		NoTruncate: true,
	}))
	for table, want := range map[string]int64{"catalog": 10, "inventory": 10, "items": 10} {
		require.NoError(t, conn.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n))
		assert.Equal(t, want, n, "row count for %s after additive run", table)
	}

	var dupes int64
	require.NoError(t, conn.QueryRow(ctx,
		"SELECT COUNT(*) - COUNT(DISTINCT catalog_code) FROM catalog").Scan(&dupes))
	assert.Zero(t, dupes)
}

func TestTruncateResetsIdentity(t *testing.T) {
	connStr, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	conn := connect(t, connStr)
	createSchema(t, ctx, conn)

	f := fakes.New()
	reg := registry.New()
	ins := populate.NewInserter(f, reg)
	pop := populate.NewPopulator(conn, ins, reg)
	require.NoError(t, pop.Run(ctx, populate.Counts{
		Suppliers: 2, Employees: 3, Customers: 2, Products: 2, Pets: 1, CareLogs: 1,
	}))

	require.NoError(t, populate.Truncate(ctx, conn))

	var n int64
	require.NoError(t, conn.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&n))
	assert.Zero(t, n)

	// Identity restarts from 1 after truncation.
	freshReg := registry.New()
	freshIns := populate.NewInserter(fakes.New(), freshReg)
	id, err := freshIns.InsertSupplier(ctx, conn, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)
}
