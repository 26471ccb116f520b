package populate

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/fatih/color"
	"github.com/jackc/pgx/v5"

	"petstore-tools/internal/fakes"
	"petstore-tools/internal/registry"
)

// Counts configures how many rows the initial setup creates per entity.
type Counts struct {
	Suppliers    int
	Employees    int
	Customers    int
	Products     int
	Pets         int
	CareLogs     int
	DatatypeRows int
}

// DefaultCounts mirror the original script defaults.
var DefaultCounts = Counts{
	Suppliers:    10,
	Employees:    20,
	Customers:    200,
	Products:     100,
	Pets:         20,
	CareLogs:     50,
	DatatypeRows: 10,
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Populator seeds a fresh database in strict dependency order, committing
// after each entity group. A failure mid-group rolls the group back and
// aborts the whole setup.
type Populator struct {
	conn *pgx.Conn
	ins  *Inserter
	reg  *registry.Registry
}

func NewPopulator(conn *pgx.Conn, ins *Inserter, reg *registry.Registry) *Populator {
	return &Populator{conn: conn, ins: ins, reg: reg}
}

func (p *Populator) Run(ctx context.Context, counts Counts) error {
	color.Cyan("Starting initial data setup...")

	if err := p.group(ctx, func(tx pgx.Tx) error { return p.seedSuppliers(ctx, tx, counts.Suppliers) }); err != nil {
		return err
	}
	if err := p.group(ctx, func(tx pgx.Tx) error { return p.seedEmployees(ctx, tx, counts.Employees) }); err != nil {
		return err
	}
	if err := p.group(ctx, func(tx pgx.Tx) error { return p.seedCustomers(ctx, tx, counts.Customers) }); err != nil {
		return err
	}
	if err := p.group(ctx, func(tx pgx.Tx) error { return p.seedProducts(ctx, tx, counts.Products) }); err != nil {
		return err
	}
	if err := p.group(ctx, func(tx pgx.Tx) error { return p.seedPets(ctx, tx, counts.Pets) }); err != nil {
		return err
	}
	if err := p.group(ctx, func(tx pgx.Tx) error { return p.seedCareLogs(ctx, tx, counts.CareLogs) }); err != nil {
		return err
	}

	// Demo rows run outside a transaction: a bad row is logged and skipped
	// without poisoning the rest.
	p.seedDatatypeRows(ctx, counts.DatatypeRows)

	color.Green("Initial data setup complete.")
	return nil
}

func (p *Populator) group(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := p.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin setup transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (p *Populator) seedSuppliers(ctx context.Context, tx pgx.Tx, n int) error {
	fmt.Printf("Generating %d suppliers...\n", n)
	for i := 0; i < n; i++ {
		id, err := p.ins.InsertSupplier(ctx, tx, i)
		if err != nil {
			return err
		}
		p.reg.Append(registry.Suppliers, id)
	}
	return nil
}

// seedEmployees creates one root manager, the two care specialists, and
// the remainder reporting to the root with random titles.
func (p *Populator) seedEmployees(ctx context.Context, tx pgx.Tx, n int) error {
	fmt.Printf("Generating %d employees...\n", n)

	rootID, err := p.ins.InsertEmployee(ctx, tx, nil, "CEO", 0)
	if err != nil {
		return err
	}
	p.reg.Append(registry.Employees, rootID)

	for i, job := range fakes.CareJobTitles {
		id, err := p.ins.InsertEmployee(ctx, tx, &rootID, job, i+1)
		if err != nil {
			return err
		}
		p.reg.Append(registry.Employees, id)
	}

	for i := 3; i < n; i++ {
		id, err := p.ins.InsertEmployee(ctx, tx, &rootID, "", i)
		if err != nil {
			return err
		}
		p.reg.Append(registry.Employees, id)
	}
	return nil
}

func (p *Populator) seedCustomers(ctx context.Context, tx pgx.Tx, n int) error {
	fmt.Printf("Generating %d customers...\n", n)
	for i := 0; i < n; i++ {
		id, err := p.ins.InsertCustomer(ctx, tx, i)
		if err != nil {
			return err
		}
		p.reg.Append(registry.Customers, id)
	}
	return nil
}

func (p *Populator) seedProducts(ctx context.Context, tx pgx.Tx, n int) error {
	fmt.Printf("Generating %d products...\n", n)
	for i := 0; i < n; i++ {
		id, err := p.ins.InsertProduct(ctx, tx, "", 0)
		if err != nil {
			return err
		}
		p.reg.Append(registry.Products, id)
	}
	return nil
}

// seedPets selects up to n existing 'Pet'-typed products and creates one
// pet per product, falling back to creating a pet product when none exist.
func (p *Populator) seedPets(ctx context.Context, tx pgx.Tx, n int) error {
	fmt.Printf("Generating %d pets...\n", n)

	rows, err := tx.Query(ctx,
		`SELECT product_id FROM products WHERE product_type = 'Pet' ORDER BY random() LIMIT $1`, n)
	if err != nil {
		return fmt.Errorf("select pet products: %w", err)
	}
	productIDs, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return fmt.Errorf("collect pet products: %w", err)
	}

	if len(productIDs) == 0 {
		id, err := p.ins.InsertProduct(ctx, tx, "Pet", 0)
		if err != nil {
			return err
		}
		p.reg.Append(registry.Products, id)
		productIDs = append(productIDs, id)
	}

	for _, prodID := range productIDs {
		id, err := p.ins.InsertPet(ctx, tx, prodID)
		if err != nil {
			return err
		}
		p.reg.Append(registry.Pets, id)
	}
	return nil
}

func (p *Populator) seedCareLogs(ctx context.Context, tx pgx.Tx, n int) error {
	fmt.Printf("Generating %d initial pet care logs...\n", n)

	petIDs := p.reg.Snapshot(registry.Pets)
	employeeIDs := p.reg.Snapshot(registry.Employees)
	if len(petIDs) == 0 || len(employeeIDs) == 0 {
		color.Yellow("Skipping pet_care_logs: not enough pets or employees.")
		return nil
	}

	careIDs, err := QualifiedCareEmployees(ctx, tx, employeeIDs)
	if err != nil {
		return err
	}
	if len(careIDs) == 0 {
		color.Yellow("Skipping pet_care_logs: no qualified employees found.")
		return nil
	}

	g := p.ins.Fakes
	for i := 0; i < n; i++ {
		petID := petIDs[g.Number(0, len(petIDs)-1)]
		employeeID := careIDs[g.Number(0, len(careIDs)-1)]
		if err := p.ins.InsertCareLog(ctx, tx, petID, employeeID); err != nil {
			return err
		}
	}
	return nil
}

func (p *Populator) seedDatatypeRows(ctx context.Context, n int) {
	fmt.Printf("Generating %d records for oracle_datatypes_demo...\n", n)
	for i := 0; i < n; i++ {
		if err := p.ins.InsertDatatypesDemo(ctx, p.conn); err != nil {
			color.Yellow("Error inserting into oracle_datatypes_demo: %v", err)
		}
	}
}

// QualifiedCareEmployees returns the subset of ids whose job title allows
// authoring care logs.
func QualifiedCareEmployees(ctx context.Context, db DB, ids []int64) ([]int64, error) {
	sql, args, err := qb.Select("employee_id").
		From("employees").
		Where(sq.Eq{"job_title": fakes.CareJobTitles}).
		Where(sq.Eq{"employee_id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build care employee query: %w", err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select care employees: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("collect care employees: %w", err)
	}
	return out, nil
}
