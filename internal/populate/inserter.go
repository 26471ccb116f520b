package populate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"petstore-tools/internal/fakes"
	"petstore-tools/internal/registry"
)

// DB is the slice of pgx shared by *pgx.Conn and pgx.Tx that the insertors
// need, so the same code runs inside and outside explicit transactions.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ErrNoSuppliers is returned when a product insert finds the supplier list
// empty.
var ErrNoSuppliers = errors.New("no suppliers available to generate a product")

// Inserter synthesizes one row per call and returns the generated key.
// It is bound to one Fakes instance and one Registry; not safe for
// concurrent use.
type Inserter struct {
	Fakes    *fakes.Fakes
	Registry *registry.Registry
}

func NewInserter(f *fakes.Fakes, reg *registry.Registry) *Inserter {
	return &Inserter{Fakes: f, Registry: reg}
}

// InsertSupplier inserts one supplier. index keeps supplier names unique
// within a seeding pass; pass a negative index outside of one.
func (in *Inserter) InsertSupplier(ctx context.Context, db DB, index int) (int64, error) {
	g := in.Fakes

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO suppliers (supplier_name, contact_person, phone_number, email, address)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING supplier_id`,
		g.SupplierName(index), g.ContactName(), g.PhoneDigits(),
		g.UniqueEmail("supplier"), g.FullAddress(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert supplier: %w", err)
	}
	return id, nil
}

// InsertEmployee inserts one employee. managerID may be nil for the root
// manager; jobTitle "" picks a random title.
func (in *Inserter) InsertEmployee(ctx context.Context, db DB, managerID *int64, jobTitle string, index int) (int64, error) {
	g := in.Fakes

	if jobTitle == "" {
		jobTitle = g.Pick(fakes.JobTitles)
	}

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO employees (first_name, last_name, email, phone_number, hire_date, job_title, salary, manager_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING employee_id`,
		g.FirstName(), g.LastName(), g.UniqueEmail(fmt.Sprintf("employee_%d", index)),
		g.PhoneDigits(), g.DateThisCentury(), jobTitle, g.Salary(), managerID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert employee: %w", err)
	}
	return id, nil
}

func (in *Inserter) InsertCustomer(ctx context.Context, db DB, index int) (int64, error) {
	g := in.Fakes

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO customers (first_name, last_name, email, phone_number, address_line1, city, state, zip_code, registration_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING customer_id`,
		g.FirstName(), g.LastName(), g.UniqueEmail(fmt.Sprintf("customer_%d", index)),
		g.PhoneDigits(), g.StreetAddress(), g.City(), g.StateAbr(), g.ZipCode(),
		g.DateThisDecade(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return id, nil
}

// InsertProduct inserts one product. productType "" picks a random type;
// supplierID 0 picks a random supplier from the registry.
func (in *Inserter) InsertProduct(ctx context.Context, db DB, productType string, supplierID int64) (int64, error) {
	g := in.Fakes

	if productType == "" {
		productType = g.Pick(fakes.ProductTypes)
	}
	if supplierID == 0 {
		picked, ok := in.Registry.Random(registry.Suppliers)
		if !ok {
			return 0, ErrNoSuppliers
		}
		supplierID = picked
	}

	name := g.TitleWord()
	if productType == "Pet" {
		name = "Live Pet: " + name
	}
	price := g.Price()
	cost := g.CostFor(price)

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO products (product_name, product_description, product_type, price, cost, quantity_in_stock, supplier_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING product_id`,
		name, g.Text(500), productType, price, cost, g.Number(10, 200), supplierID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

func (in *Inserter) InsertPet(ctx context.Context, db DB, productID int64) (int64, error) {
	g := in.Fakes

	species := g.Pick(fakes.PetSpecies)
	var breed *string
	if b := g.BreedFor(species); b != "" {
		breed = &b
	}
	birth := g.BirthDate()

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO pets (product_id, pet_name, species, breed, date_of_birth, gender, color, health_status, microchip_id, adoption_status, entry_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING pet_id`,
		productID, g.PetName(), species, breed, birth,
		g.Pick([]string{"M", "F"}), g.ColorName(), g.Sentence(5),
		g.MicrochipID(), "Available", g.DateSince(birth),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert pet: %w", err)
	}
	return id, nil
}

// InsertCareLog inserts one care activity row authored by the given
// employee.
func (in *Inserter) InsertCareLog(ctx context.Context, db DB, petID, employeeID int64) error {
	g := in.Fakes

	activity := g.Pick(fakes.CareActivities)
	notes := fmt.Sprintf("Performed %s for pet. Notes: %s", strings.ToLower(activity), g.Sentence(8))

	_, err := db.Exec(ctx,
		`INSERT INTO pet_care_logs (pet_id, employee_id, log_datetime, activity_type, notes)
		 VALUES ($1, $2, $3, $4, $5)`,
		petID, employeeID, g.PastDatetime(), activity, notes,
	)
	if err != nil {
		return fmt.Errorf("insert care log: %w", err)
	}
	return nil
}

// InsertDatatypesDemo fills one row of the datatype showcase table.
func (in *Inserter) InsertDatatypesDemo(ctx context.Context, db DB) error {
	g := in.Fakes

	_, err := db.Exec(ctx,
		`INSERT INTO oracle_datatypes_demo (
			varchar2_column, varchar2_large_column, nvarchar2_column, nvarchar2_large_column,
			number_column, number_precision_column, number_integer_column,
			float_column, float_precision_column, long_column,
			date_column, binary_float_column, binary_double_column,
			timestamp_column, timestamp_precision_column, timestamp_tz_column, timestamp_tz_precision,
			interval_ym_column, interval_ym_precision, interval_ds_column, interval_ds_precision,
			rowid_column, char_column, char_large_column, nchar_column, nchar_large_column
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			make_interval(months => $18), make_interval(months => $19),
			make_interval(days => $20, hours => $21, mins => $22, secs => $23),
			make_interval(days => $24, hours => $25, mins => $26, secs => $27),
			$28, $29, $30, $31, $32
		)`,
		g.Word(), g.Text(4000), g.Word(), g.Text(2000),
		g.Number(0, 1000000), g.Price(), g.Number(0, 99999999),
		g.Float(0, 99999), g.Float(0, 999),
		g.Text(1000),
		g.DateThisDecade(), g.Float(-1000, 1000), g.Float(-100000, 100000),
		g.PastDatetime(), g.PastDatetime(), g.PastDatetime(), g.PastDatetime(),
		g.Number(1, 1199), g.Number(1, 9999),
		g.Number(1, 99), g.Number(0, 23), g.Number(0, 59), g.Float(0, 59),
		g.Number(1, 99), g.Number(0, 23), g.Number(0, 59), g.Float(0, 59),
		g.RowID(),
		g.FixedWord(10), g.Text(2000), g.FixedWord(10), g.Text(1000),
	)
	if err != nil {
		return fmt.Errorf("insert datatypes demo row: %w", err)
	}
	return nil
}
