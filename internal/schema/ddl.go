package schema

// Literal DDL for the pet store schema. Object names are the wire contract
// shared with existing consumers and must not change.

// TableOrder lists tables in dependency order for creation.
var TableOrder = []string{
	"suppliers", "employees", "customers", "products", "pets",
	"orders", "order_items", "pet_care_logs", "oracle_datatypes_demo",
}

// DropOrder lists tables in reverse dependency order.
var DropOrder = []string{
	"oracle_datatypes_demo", "pet_care_logs", "order_items", "orders",
	"pets", "products", "employees", "customers", "suppliers",
}

// TruncateOrder lists the data tables cleared before a fresh seed. The
// datatypes demo table is excluded, matching the original generator.
var TruncateOrder = []string{
	"pet_care_logs", "order_items", "orders", "pets",
	"products", "employees", "customers", "suppliers",
}

var Tables = map[string]string{
	"suppliers": `
		CREATE TABLE suppliers
		(
			supplier_id    BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			supplier_name  VARCHAR(100) NOT NULL,
			contact_person VARCHAR(100),
			phone_number   VARCHAR(20),
			email          VARCHAR(100),
			address        VARCHAR(500),
			created_date   DATE DEFAULT CURRENT_DATE,
			CONSTRAINT uk_suppliers_name UNIQUE (supplier_name),
			CONSTRAINT ck_suppliers_email CHECK (email LIKE '%@%.%')
		)`,

	"employees": `
		CREATE TABLE employees
		(
			employee_id  BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			first_name   VARCHAR(50) NOT NULL,
			last_name    VARCHAR(50) NOT NULL,
			email        VARCHAR(100) UNIQUE NOT NULL,
			phone_number VARCHAR(20),
			hire_date    DATE NOT NULL,
			job_title    VARCHAR(50),
			salary       NUMERIC(10,2),
			manager_id   BIGINT,
			created_date DATE DEFAULT CURRENT_DATE,
			CONSTRAINT fk_employees_manager FOREIGN KEY (manager_id) REFERENCES employees (employee_id),
			CONSTRAINT ck_employees_email CHECK (email LIKE '%@%.%'),
			CONSTRAINT ck_employees_salary CHECK (salary >= 0)
		)`,

	"customers": `
		CREATE TABLE customers
		(
			customer_id       BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			first_name        VARCHAR(50) NOT NULL,
			last_name         VARCHAR(50) NOT NULL,
			email             VARCHAR(100) UNIQUE NOT NULL,
			phone_number      VARCHAR(20),
			address_line1     VARCHAR(100),
			address_line2     VARCHAR(100),
			city              VARCHAR(50),
			state             VARCHAR(50),
			zip_code          VARCHAR(10),
			registration_date DATE DEFAULT CURRENT_DATE,
			CONSTRAINT ck_customers_email CHECK (email LIKE '%@%.%')
		)`,

	"products": `
		CREATE TABLE products
		(
			product_id          BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			product_name        VARCHAR(100) NOT NULL,
			product_description TEXT,
			product_type        VARCHAR(50),
			price               NUMERIC(10,2) NOT NULL,
			cost                NUMERIC(10,2),
			quantity_in_stock   BIGINT DEFAULT 0,
			supplier_id         BIGINT,
			created_date        DATE DEFAULT CURRENT_DATE,
			last_updated        DATE DEFAULT CURRENT_DATE,
			CONSTRAINT fk_products_supplier FOREIGN KEY (supplier_id) REFERENCES suppliers (supplier_id),
			CONSTRAINT ck_products_price CHECK (price >= 0),
			CONSTRAINT ck_products_cost CHECK (cost >= 0),
			CONSTRAINT ck_products_stock CHECK (quantity_in_stock >= 0),
			CONSTRAINT ck_products_type CHECK (product_type IN
				('Food', 'Toy', 'Accessory', 'Pet', 'Grooming', 'Medicine', 'Service'))
		)`,

	"pets": `
		CREATE TABLE pets
		(
			pet_id          BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			product_id      BIGINT UNIQUE,
			pet_name        VARCHAR(50),
			species         VARCHAR(50),
			breed           VARCHAR(50),
			date_of_birth   DATE,
			gender          CHAR(1),
			color           VARCHAR(50),
			health_status   VARCHAR(500),
			microchip_id    VARCHAR(50) UNIQUE,
			adoption_status VARCHAR(20) DEFAULT 'Available',
			entry_date      DATE DEFAULT CURRENT_DATE,
			adopted_date    DATE,
			CONSTRAINT fk_pets_product FOREIGN KEY (product_id) REFERENCES products (product_id),
			CONSTRAINT ck_pets_gender CHECK (gender IN ('M', 'F')),
			CONSTRAINT ck_pets_adoption_status CHECK (adoption_status IN ('Available', 'Adopted', 'On Hold', 'Medical Care')),
			CONSTRAINT ck_pets_dates CHECK (adopted_date IS NULL OR adopted_date >= entry_date)
		)`,

	"orders": `
		CREATE TABLE orders
		(
			order_id         BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			customer_id      BIGINT NOT NULL,
			order_date       DATE DEFAULT CURRENT_DATE,
			total_amount     NUMERIC(10,2) DEFAULT 0,
			order_status     VARCHAR(20) DEFAULT 'Pending',
			shipping_address VARCHAR(200),
			city             VARCHAR(50),
			state            VARCHAR(50),
			zip_code         VARCHAR(10),
			payment_method   VARCHAR(50),
			shipped_date     DATE,
			delivered_date   DATE,
			CONSTRAINT fk_orders_customer FOREIGN KEY (customer_id) REFERENCES customers (customer_id),
			CONSTRAINT ck_orders_total CHECK (total_amount >= 0),
			CONSTRAINT ck_orders_status CHECK (order_status IN
				('Pending', 'Processing', 'Shipped', 'Delivered', 'Cancelled', 'Returned')),
			CONSTRAINT ck_orders_dates CHECK (shipped_date IS NULL OR shipped_date >= order_date),
			CONSTRAINT ck_orders_delivery CHECK (delivered_date IS NULL OR
				delivered_date >= COALESCE(shipped_date, order_date))
		)`,

	"order_items": `
		CREATE TABLE order_items
		(
			order_item_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			order_id      BIGINT NOT NULL,
			product_id    BIGINT NOT NULL,
			quantity      BIGINT NOT NULL,
			unit_price    NUMERIC(10,2) NOT NULL,
			item_total    NUMERIC(10,2) GENERATED ALWAYS AS (quantity * unit_price) STORED,
			CONSTRAINT fk_order_items_order FOREIGN KEY (order_id) REFERENCES orders (order_id) ON DELETE CASCADE,
			CONSTRAINT fk_order_items_product FOREIGN KEY (product_id) REFERENCES products (product_id),
			CONSTRAINT ck_order_items_quantity CHECK (quantity > 0),
			CONSTRAINT ck_order_items_price CHECK (unit_price >= 0)
		)`,

	"pet_care_logs": `
		CREATE TABLE pet_care_logs
		(
			log_id        BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			pet_id        BIGINT NOT NULL,
			employee_id   BIGINT NOT NULL,
			log_datetime  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			activity_type VARCHAR(50),
			notes         TEXT,
			CONSTRAINT fk_pet_care_pet FOREIGN KEY (pet_id) REFERENCES pets (pet_id) ON DELETE CASCADE,
			CONSTRAINT fk_pet_care_employee FOREIGN KEY (employee_id) REFERENCES employees (employee_id),
			CONSTRAINT ck_care_activity CHECK (activity_type IN
				('Feeding', 'Grooming', 'Medication', 'Vet Visit', 'Cleaning', 'Playtime', 'Training', 'Exercise'))
		)`,

	// Datatype showcase table. Oracle-only types are mapped to their
	// closest Postgres equivalents; column names are unchanged.
	"oracle_datatypes_demo": `
		CREATE TABLE oracle_datatypes_demo
		(
			demo_id                    BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,

			varchar2_column            VARCHAR(100),
			varchar2_large_column      VARCHAR(4000),

			nvarchar2_column           VARCHAR(50),
			nvarchar2_large_column     VARCHAR(2000),

			number_column              NUMERIC,
			number_precision_column    NUMERIC(10,2),
			number_integer_column      NUMERIC(8),

			float_column               DOUBLE PRECISION,
			float_precision_column     DOUBLE PRECISION,

			long_column                TEXT,

			date_column                DATE,

			binary_float_column        REAL,
			binary_double_column       DOUBLE PRECISION,

			timestamp_column           TIMESTAMP,
			timestamp_precision_column TIMESTAMP(6),

			timestamp_tz_column        TIMESTAMP WITH TIME ZONE,
			timestamp_tz_precision     TIMESTAMP(6) WITH TIME ZONE,

			interval_ym_column         INTERVAL YEAR TO MONTH,
			interval_ym_precision      INTERVAL YEAR TO MONTH,

			interval_ds_column         INTERVAL DAY TO SECOND,
			interval_ds_precision      INTERVAL DAY TO SECOND(6),

			rowid_column               VARCHAR(18),

			char_column                CHAR(10),
			char_large_column          CHAR(2000),

			nchar_column               CHAR(10),
			nchar_large_column         CHAR(1000),

			created_date               DATE      DEFAULT CURRENT_DATE,
			last_updated               TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

			CONSTRAINT ck_datatypes_number_positive CHECK (number_precision_column IS NULL OR number_precision_column >= 0),
			CONSTRAINT ck_datatypes_binary_float_range CHECK (binary_float_column IS NULL OR
				binary_float_column BETWEEN -3.40282E+38 AND 3.40282E+38)
		)`,
}

// SequenceOrder lists sequences in creation order.
var SequenceOrder = []string{
	"supplier_id_seq", "employee_id_seq", "customer_id_seq", "product_id_seq",
	"pet_id_seq", "order_id_seq", "log_id_seq", "oracle_datatypes_demo_seq",
}

// SequenceDropOrder lists sequences in reverse creation order.
var SequenceDropOrder = []string{
	"oracle_datatypes_demo_seq", "log_id_seq", "order_id_seq", "pet_id_seq",
	"product_id_seq", "employee_id_seq", "customer_id_seq", "supplier_id_seq",
}

var Sequences = map[string]string{
	"supplier_id_seq": `
		CREATE SEQUENCE supplier_id_seq
			START WITH 1
			INCREMENT BY 1
			CACHE 1
			NO CYCLE`,

	"employee_id_seq": `
		CREATE SEQUENCE employee_id_seq
			START WITH 1
			INCREMENT BY 1
			CACHE 1
			NO CYCLE`,

	"customer_id_seq": `
		CREATE SEQUENCE customer_id_seq
			START WITH 1
			INCREMENT BY 1
			CACHE 1
			NO CYCLE`,

	"product_id_seq": `
		CREATE SEQUENCE product_id_seq
			START WITH 1
			INCREMENT BY 1
			CACHE 1
			NO CYCLE`,

	"pet_id_seq": `
		CREATE SEQUENCE pet_id_seq
			START WITH 1
			INCREMENT BY 1
			CACHE 1
			NO CYCLE`,

	"order_id_seq": `
		CREATE SEQUENCE order_id_seq
			START WITH 1
			INCREMENT BY 1
			CACHE 1
			NO CYCLE`,

	"log_id_seq": `
		CREATE SEQUENCE log_id_seq
			START WITH 1
			INCREMENT BY 1
			CACHE 1
			NO CYCLE`,

	"oracle_datatypes_demo_seq": `
		CREATE SEQUENCE oracle_datatypes_demo_seq
			START WITH 1
			INCREMENT BY 1
			CACHE 1
			NO CYCLE`,
}

// Indexes holds supporting index DDL keyed by index name.
var Indexes = map[string]string{
	"idx_products_supplier":     "CREATE INDEX idx_products_supplier ON products(supplier_id)",
	"idx_products_type":         "CREATE INDEX idx_products_type ON products(product_type)",
	"idx_pets_species":          "CREATE INDEX idx_pets_species ON pets(species)",
	"idx_pets_adoption_status":  "CREATE INDEX idx_pets_adoption_status ON pets(adoption_status)",
	"idx_orders_customer":       "CREATE INDEX idx_orders_customer ON orders(customer_id)",
	"idx_orders_date":           "CREATE INDEX idx_orders_date ON orders(order_date)",
	"idx_orders_status":         "CREATE INDEX idx_orders_status ON orders(order_status)",
	"idx_order_items_order":     "CREATE INDEX idx_order_items_order ON order_items(order_id)",
	"idx_order_items_product":   "CREATE INDEX idx_order_items_product ON order_items(product_id)",
	"idx_care_logs_pet":         "CREATE INDEX idx_care_logs_pet ON pet_care_logs(pet_id)",
	"idx_care_logs_employee":    "CREATE INDEX idx_care_logs_employee ON pet_care_logs(employee_id)",
	"idx_care_logs_datetime":    "CREATE INDEX idx_care_logs_datetime ON pet_care_logs(log_datetime)",
	"idx_datatypes_demo_date":   "CREATE INDEX idx_datatypes_demo_date ON oracle_datatypes_demo(created_date)",
}

// IndexOrder fixes the creation order for deterministic output.
var IndexOrder = []string{
	"idx_products_supplier", "idx_products_type",
	"idx_pets_species", "idx_pets_adoption_status",
	"idx_orders_customer", "idx_orders_date", "idx_orders_status",
	"idx_order_items_order", "idx_order_items_product",
	"idx_care_logs_pet", "idx_care_logs_employee", "idx_care_logs_datetime",
	"idx_datatypes_demo_date",
}
