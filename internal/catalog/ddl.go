package catalog

// Literal DDL for the catalog/inventory/items demo schema.

var TableOrder = []string{"catalog", "inventory", "items"}

var DropOrder = []string{"items", "inventory", "catalog"}

var Tables = map[string]string{
	"catalog": `
	CREATE TABLE catalog (
		catalog_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		catalog_name VARCHAR(100) NOT NULL,
		description VARCHAR(500),
		category VARCHAR(50) NOT NULL,
		created_date DATE DEFAULT CURRENT_DATE,
		is_active CHAR(1) DEFAULT 'Y' CHECK (is_active IN ('Y', 'N')),
		catalog_code VARCHAR(20) UNIQUE NOT NULL
	)`,

	"inventory": `
	CREATE TABLE inventory (
		inventory_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		catalog_id BIGINT NOT NULL,
		warehouse_location VARCHAR(100),
		quantity_available BIGINT DEFAULT 0,
		quantity_reserved BIGINT DEFAULT 0,
		reorder_level BIGINT DEFAULT 10,
		last_updated DATE DEFAULT CURRENT_DATE,
		CONSTRAINT fk_inventory_catalog FOREIGN KEY (catalog_id) REFERENCES catalog (catalog_id)
	)`,

	"items": `
	CREATE TABLE items (
		item_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		catalog_id BIGINT NOT NULL,
		inventory_id BIGINT NOT NULL,
		item_name VARCHAR(100) NOT NULL,
		sku VARCHAR(50) UNIQUE NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		cost NUMERIC(10,2),
		weight_kg NUMERIC(8,3),
		dimensions VARCHAR(50),
		color VARCHAR(30),
		brand VARCHAR(50),
		created_date DATE DEFAULT CURRENT_DATE,
		last_modified DATE DEFAULT CURRENT_DATE,
		CONSTRAINT fk_items_catalog FOREIGN KEY (catalog_id) REFERENCES catalog (catalog_id),
		CONSTRAINT fk_items_inventory FOREIGN KEY (inventory_id) REFERENCES inventory (inventory_id)
	)`,
}

var Categories = []string{
	"Electronics", "Clothing", "Home & Garden", "Sports",
	"Books", "Toys", "Automotive", "Health & Beauty",
}

var WarehouseLocations = []string{
	"Warehouse A", "Warehouse B", "Warehouse C",
	"Distribution Center 1", "Distribution Center 2",
}

var Brands = []string{
	"Nike", "Apple", "Samsung", "Sony", "LG",
	"Adidas", "Puma", "Under Armour", "Canon", "Nikon",
}

var Colors = []string{
	"Red", "Blue", "Green", "Black", "White",
	"Yellow", "Purple", "Orange", "Pink", "Brown",
}
