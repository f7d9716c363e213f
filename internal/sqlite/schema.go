// Package sqlite exports a validated CSV dataset into a SQLite
// database file, ready for direct import into the application under
// test.
package sqlite

// Schema DDL for the nine exported tables.
const (
	createUsers = `CREATE TABLE users (
    id TEXT PRIMARY KEY,
    uid TEXT,
    provider TEXT,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    street TEXT,
    city TEXT,
    state TEXT,
    country TEXT,
    postal_code TEXT,
    phone TEXT,
    dob TEXT,
    email TEXT NOT NULL UNIQUE,
    password TEXT,
    role TEXT NOT NULL,
    enabled TEXT NOT NULL,
    failed_login_attempts INTEGER NOT NULL,
    totp_secret TEXT,
    totp_enabled TEXT NOT NULL,
    totp_verified_at TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createCategories = `CREATE TABLE categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE,
    parent_id TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (parent_id) REFERENCES categories(id)
);`

	createBrands = `CREATE TABLE brands (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createProductImages = `CREATE TABLE product_images (
    id TEXT PRIMARY KEY,
    by_name TEXT NOT NULL,
    by_url TEXT NOT NULL,
    source_name TEXT NOT NULL,
    source_url TEXT NOT NULL,
    file_name TEXT NOT NULL,
    title TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createProducts = `CREATE TABLE products (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    price TEXT NOT NULL,
    is_location_offer TEXT NOT NULL,
    is_rental TEXT NOT NULL,
    category_id TEXT NOT NULL,
    brand_id TEXT NOT NULL,
    product_image_id TEXT NOT NULL,
    in_stock TEXT NOT NULL,
    stock INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (category_id) REFERENCES categories(id),
    FOREIGN KEY (brand_id) REFERENCES brands(id),
    FOREIGN KEY (product_image_id) REFERENCES product_images(id)
);`

	createFavorites = `CREATE TABLE favorites (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    product_id TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    UNIQUE (user_id, product_id),
    FOREIGN KEY (user_id) REFERENCES users(id),
    FOREIGN KEY (product_id) REFERENCES products(id)
);`

	createInvoices = `CREATE TABLE invoices (
    id TEXT PRIMARY KEY,
    invoice_number TEXT NOT NULL UNIQUE,
    invoice_date TEXT NOT NULL,
    billing_address TEXT NOT NULL,
    billing_city TEXT NOT NULL,
    billing_state TEXT,
    billing_country TEXT NOT NULL,
    billing_postcode TEXT,
    user_id TEXT NOT NULL,
    total TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id)
);`

	createInvoiceItems = `CREATE TABLE invoice_items (
    id TEXT PRIMARY KEY,
    invoice_id TEXT NOT NULL,
    product_id TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    unit_price TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (invoice_id) REFERENCES invoices(id),
    FOREIGN KEY (product_id) REFERENCES products(id)
);`

	createPayments = `CREATE TABLE payments (
    id TEXT PRIMARY KEY,
    invoice_id TEXT NOT NULL,
    method TEXT NOT NULL,
    status TEXT NOT NULL,
    payment_reference_id TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (invoice_id) REFERENCES invoices(id)
);`
)

// schemaStatements lists the DDL in creation order, parents before
// dependents.
var schemaStatements = []string{
	createUsers,
	createCategories,
	createBrands,
	createProductImages,
	createProducts,
	createFavorites,
	createInvoices,
	createInvoiceItems,
	createPayments,
}
