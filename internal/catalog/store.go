// internal/catalog/store.go
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"ekthaa-chatbot/internal/common/logger"
	"ekthaa-chatbot/internal/models"
)

var (
	ErrQueryExecutionFailed = errors.New("QUERY_EXECUTION_FAILED")
)

// KnownProducts and KnownCategories are the fixed vocabularies the fuzzy
// matcher corrects against. They mirror the seeded catalog.
var (
	KnownProducts = []string{
		"Basmati Rice", "Fresh Tomatoes", "Sunflower Oil",
		"Whole Wheat Atta", "Fresh Onions", "Toor Dal",
	}
	KnownCategories = []string{models.CategoryGrocery, models.CategoryVegetables}
)

// ProductFilter narrows a product lookup. Zero-valued fields are ignored.
type ProductFilter struct {
	Name     string // case-insensitive substring match
	Category string // case-insensitive exact match
	MaxPrice *int   // inclusive upper bound
}

// Store provides read access to the catalog tables.
type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "catalog"}),
	}
}

// Products returns the joined product+business record set matching the
// filter, in natural storage order.
func (s *Store) Products(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	query := `SELECT p.id, p.name, p.price, p.unit, p.category, p.business_id,
	       b.name, b.address, b.phone
	FROM products p
	JOIN businesses b ON p.business_id = b.id
	WHERE 1=1`
	args := []interface{}{}

	if f.Name != "" {
		args = append(args, "%"+strings.ToLower(f.Name)+"%")
		query += fmt.Sprintf(" AND LOWER(p.name) LIKE $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, strings.ToLower(f.Category))
		query += fmt.Sprintf(" AND LOWER(p.category) = $%d", len(args))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		query += fmt.Sprintf(" AND p.price <= $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: products: %v", ErrQueryExecutionFailed, err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.Unit, &p.Category, &p.BusinessID,
			&p.Business.Name, &p.Business.Address, &p.Business.Phone,
		); err != nil {
			return nil, fmt.Errorf("%w: scan product: %v", ErrQueryExecutionFailed, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: products rows: %v", ErrQueryExecutionFailed, err)
	}

	return products, nil
}

// Businesses returns businesses optionally filtered by category
// (case-insensitive exact match), each with the list of product names it
// sells attached. One extra query per business; fine at this catalog's scale.
func (s *Store) Businesses(ctx context.Context, category string) ([]models.Business, error) {
	query := `SELECT id, name, category, address, phone FROM businesses WHERE 1=1`
	args := []interface{}{}

	if category != "" {
		args = append(args, strings.ToLower(category))
		query += fmt.Sprintf(" AND LOWER(category) = $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: businesses: %v", ErrQueryExecutionFailed, err)
	}
	defer rows.Close()

	businesses := []models.Business{}
	for rows.Next() {
		var b models.Business
		if err := rows.Scan(&b.ID, &b.Name, &b.Category, &b.Address, &b.Phone); err != nil {
			return nil, fmt.Errorf("%w: scan business: %v", ErrQueryExecutionFailed, err)
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: businesses rows: %v", ErrQueryExecutionFailed, err)
	}

	for i := range businesses {
		names, err := s.productNames(ctx, businesses[i].ID)
		if err != nil {
			return nil, err
		}
		businesses[i].Products = names
	}

	return businesses, nil
}

func (s *Store) productNames(ctx context.Context, businessID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM products WHERE business_id = $1`, businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: product names: %v", ErrQueryExecutionFailed, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: scan product name: %v", ErrQueryExecutionFailed, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: product name rows: %v", ErrQueryExecutionFailed, err)
	}
	return names, nil
}
