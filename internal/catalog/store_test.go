// internal/catalog/store_test.go
package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekthaa-chatbot/internal/common/logger"
	"ekthaa-chatbot/internal/models"
)

// ==========================
// Helpers
// ==========================

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db, logger.NewTestLogger(t)), mock
}

func productColumns() []string {
	return []string{"id", "name", "price", "unit", "category", "business_id", "b_name", "b_address", "b_phone"}
}

// ==========================
// Products
// ==========================

func TestProducts_NameAndPriceFilter(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows(productColumns()).
		AddRow(1, "Basmati Rice", 120, "kg", "Grocery", "b1", "Sai Kirana Store", "Madhapur, Hyderabad", "9876543210")

	mock.ExpectQuery(`SELECT p\.id, p\.name, p\.price.*LOWER\(p\.name\) LIKE \$1 AND p\.price <= \$2`).
		WithArgs("%rice%", 150).
		WillReturnRows(rows)

	products, err := store.Products(context.Background(), ProductFilter{
		Name:     "rice",
		MaxPrice: models.IntPtr(150),
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Basmati Rice", products[0].Name)
	assert.Equal(t, 120, products[0].Price)
	assert.Equal(t, "Sai Kirana Store", products[0].Business.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProducts_CategoryFilter(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows(productColumns()).
		AddRow(2, "Fresh Tomatoes", 40, "kg", "Vegetables", "b2", "Fresh Mart Vegetables", "Gachibowli, Hyderabad", "9876543211").
		AddRow(5, "Fresh Onions", 35, "kg", "Vegetables", "b2", "Fresh Mart Vegetables", "Gachibowli, Hyderabad", "9876543211")

	mock.ExpectQuery(`LOWER\(p\.category\) = \$1`).
		WithArgs("vegetables").
		WillReturnRows(rows)

	products, err := store.Products(context.Background(), ProductFilter{Category: "Vegetables"})
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProducts_NoFilterNoMatch(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`FROM products p`).
		WillReturnRows(sqlmock.NewRows(productColumns()))

	products, err := store.Products(context.Background(), ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProducts_QueryError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`FROM products p`).
		WillReturnError(assert.AnError)

	_, err := store.Products(context.Background(), ProductFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryExecutionFailed)
}

// ==========================
// Businesses
// ==========================

func TestBusinesses_CategoryFilterWithProducts(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`FROM businesses WHERE 1=1 AND LOWER\(category\) = \$1`).
		WithArgs("grocery").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "address", "phone"}).
			AddRow("b1", "Sai Kirana Store", "Grocery", "Madhapur, Hyderabad", "9876543210").
			AddRow("b3", "Quality Grocers", "Grocery", "Kondapur, Hyderabad", "9876543212"))

	mock.ExpectQuery(`SELECT name FROM products WHERE business_id = \$1`).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("Basmati Rice").AddRow("Sunflower Oil"))
	mock.ExpectQuery(`SELECT name FROM products WHERE business_id = \$1`).
		WithArgs("b3").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("Whole Wheat Atta").AddRow("Toor Dal"))

	businesses, err := store.Businesses(context.Background(), "Grocery")
	require.NoError(t, err)
	require.Len(t, businesses, 2)
	assert.Equal(t, []string{"Basmati Rice", "Sunflower Oil"}, businesses[0].Products)
	assert.Equal(t, []string{"Whole Wheat Atta", "Toor Dal"}, businesses[1].Products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinesses_EmptyResult(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`FROM businesses`).
		WithArgs("electronics").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "address", "phone"}))

	businesses, err := store.Businesses(context.Background(), "Electronics")
	require.NoError(t, err)
	assert.Empty(t, businesses)
	assert.NoError(t, mock.ExpectationsWereMet())
}
