// internal/catalog/seed.go
package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

type seedBusiness struct {
	id, name, category, address, phone string
}

type seedProduct struct {
	id         int
	name       string
	price      int
	unit       string
	category   string
	businessID string
}

var seedBusinesses = []seedBusiness{
	{"b1", "Sai Kirana Store", "Grocery", "Madhapur, Hyderabad", "9876543210"},
	{"b2", "Fresh Mart Vegetables", "Vegetables", "Gachibowli, Hyderabad", "9876543211"},
	{"b3", "Quality Grocers", "Grocery", "Kondapur, Hyderabad", "9876543212"},
}

var seedProducts = []seedProduct{
	{1, "Basmati Rice", 120, "kg", "Grocery", "b1"},
	{2, "Fresh Tomatoes", 40, "kg", "Vegetables", "b2"},
	{3, "Sunflower Oil", 180, "liter", "Grocery", "b1"},
	{4, "Whole Wheat Atta", 50, "kg", "Grocery", "b3"},
	{5, "Fresh Onions", 35, "kg", "Vegetables", "b2"},
	{6, "Toor Dal", 140, "kg", "Grocery", "b3"},
}

// Seed creates the catalog tables if needed and replaces their contents with
// the demo data set. Safe to run repeatedly.
func Seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	schema := []string{
		`CREATE TABLE IF NOT EXISTS businesses (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			address TEXT NOT NULL,
			phone TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			price INTEGER NOT NULL,
			unit TEXT NOT NULL,
			category TEXT NOT NULL,
			business_id TEXT NOT NULL REFERENCES businesses(id)
		)`,
	}
	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	// Products first: the FK points at businesses.
	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM businesses`); err != nil {
		return fmt.Errorf("clear businesses: %w", err)
	}

	for _, b := range seedBusinesses {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO businesses (id, name, category, address, phone) VALUES ($1, $2, $3, $4, $5)`,
			b.id, b.name, b.category, b.address, b.phone,
		); err != nil {
			return fmt.Errorf("insert business %s: %w", b.id, err)
		}
	}
	for _, p := range seedProducts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO products (id, name, price, unit, category, business_id) VALUES ($1, $2, $3, $4, $5, $6)`,
			p.id, p.name, p.price, p.unit, p.category, p.businessID,
		); err != nil {
			return fmt.Errorf("insert product %d: %w", p.id, err)
		}
	}

	return tx.Commit()
}
