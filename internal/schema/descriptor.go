package schema

// Column describes one column of a table as the insert builders see it.
// Computed columns are maintained by the database and must never appear in
// an INSERT or UPDATE column list.
type Column struct {
	Name     string
	Computed bool
}

// Descriptor is the statically declared column set of a table. It replaces
// runtime catalog introspection: the insert path consults the descriptor to
// decide which columns are real.
type Descriptor struct {
	Name    string
	Key     string // primary key column, returned by INSERT ... RETURNING
	Columns []Column
}

// InsertColumns returns the non-computed, non-key columns in declaration
// order.
func (d Descriptor) InsertColumns() []string {
	cols := make([]string, 0, len(d.Columns))
	for _, c := range d.Columns {
		if c.Computed || c.Name == d.Key {
			continue
		}
		cols = append(cols, c.Name)
	}
	return cols
}

// HasRealColumn reports whether the named column exists and is stored, as
// opposed to computed by the database.
func (d Descriptor) HasRealColumn(name string) bool {
	for _, c := range d.Columns {
		if c.Name == name {
			return !c.Computed
		}
	}
	return false
}

// Descriptors for the tables whose inserts are built dynamically. The
// orders descriptor deliberately records total_amount as a real column;
// were the schema ever changed to compute it, flipping this flag switches
// the generator to the no-update path.
var (
	OrdersTable = Descriptor{
		Name: "orders",
		Key:  "order_id",
		Columns: []Column{
			{Name: "order_id"},
			{Name: "customer_id"},
			{Name: "order_date"},
			{Name: "total_amount"},
			{Name: "order_status"},
			{Name: "shipping_address"},
			{Name: "city"},
			{Name: "state"},
			{Name: "zip_code"},
			{Name: "payment_method"},
			{Name: "shipped_date"},
			{Name: "delivered_date"},
		},
	}

	OrderItemsTable = Descriptor{
		Name: "order_items",
		Key:  "order_item_id",
		Columns: []Column{
			{Name: "order_item_id"},
			{Name: "order_id"},
			{Name: "product_id"},
			{Name: "quantity"},
			{Name: "unit_price"},
			{Name: "item_total", Computed: true},
		},
	}
)
