package schema

import (
	"strings"
	"testing"
)

func TestEveryTableHasDDL(t *testing.T) {
	for _, name := range TableOrder {
		ddl, ok := Tables[name]
		if !ok {
			t.Errorf("Table %s has no DDL", name)
			continue
		}
		if !strings.Contains(ddl, "CREATE TABLE "+name) {
			t.Errorf("DDL for %s does not create it", name)
		}
	}
	if len(Tables) != len(TableOrder) {
		t.Errorf("Tables map has %d entries, TableOrder has %d", len(Tables), len(TableOrder))
	}
}

func TestEverySequenceHasDDL(t *testing.T) {
	for _, name := range SequenceOrder {
		ddl, ok := Sequences[name]
		if !ok {
			t.Errorf("Sequence %s has no DDL", name)
			continue
		}
		if !strings.Contains(ddl, "CREATE SEQUENCE "+name) {
			t.Errorf("DDL for %s does not create it", name)
		}
	}
}

func TestEveryIndexHasDDL(t *testing.T) {
	for _, name := range IndexOrder {
		if _, ok := Indexes[name]; !ok {
			t.Errorf("Index %s has no DDL", name)
		}
	}
	if len(Indexes) != len(IndexOrder) {
		t.Errorf("Indexes map has %d entries, IndexOrder has %d", len(Indexes), len(IndexOrder))
	}
}

func TestDropOrderReversesDependencies(t *testing.T) {
	pos := make(map[string]int)
	for i, name := range DropOrder {
		pos[name] = i
	}

	// Children must be dropped before their parents.
	pairs := [][2]string{
		{"order_items", "orders"},
		{"orders", "customers"},
		{"pet_care_logs", "pets"},
		{"pets", "products"},
		{"products", "suppliers"},
		{"pet_care_logs", "employees"},
	}
	for _, p := range pairs {
		if pos[p[0]] > pos[p[1]] {
			t.Errorf("Expected %s to drop before %s", p[0], p[1])
		}
	}
}

func TestTruncateOrderSkipsDatatypesDemo(t *testing.T) {
	for _, name := range TruncateOrder {
		if name == "oracle_datatypes_demo" {
			t.Error("oracle_datatypes_demo must not be truncated")
		}
	}
}

func TestConstraintNamesPreserved(t *testing.T) {
	cases := map[string]string{
		"suppliers":     "uk_suppliers_name",
		"orders":        "ck_orders_delivery",
		"order_items":   "ck_order_items_quantity",
		"pets":          "ck_pets_gender",
		"pet_care_logs": "fk_pet_care_employee",
	}
	for table, constraint := range cases {
		if !strings.Contains(Tables[table], constraint) {
			t.Errorf("DDL for %s lost constraint %s", table, constraint)
		}
	}
}

func TestInsertColumnsExcludeComputed(t *testing.T) {
	for _, col := range OrderItemsTable.InsertColumns() {
		if col == "item_total" {
			t.Error("item_total is generated and must not be inserted")
		}
	}
}

func TestOrdersDescriptor(t *testing.T) {
	if !OrdersTable.HasRealColumn("total_amount") {
		t.Error("orders descriptor should expose total_amount as a real column")
	}
	if OrdersTable.HasRealColumn("no_such_column") {
		t.Error("unknown column reported as real")
	}
	if OrdersTable.Key != "order_id" {
		t.Errorf("Expected key order_id, got %s", OrdersTable.Key)
	}
}
