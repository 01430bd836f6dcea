// internal/models/catalog.go
package models

import "strings"

// Category values form a small closed set.
const (
	CategoryGrocery    = "Grocery"
	CategoryVegetables = "Vegetables"
)

// BusinessRef is the nested business sub-record attached to a product row.
type BusinessRef struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Product is a catalog product joined with its owning business.
// Prices are integers in the smallest currency unit (whole rupees here).
type Product struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	Price      int         `json:"price"`
	Unit       string      `json:"unit"`
	Category   string      `json:"category"`
	BusinessID string      `json:"business_id"`
	Business   BusinessRef `json:"business"`
}

// Business is a catalog business with the derived list of product names it
// sells (recomputed per query, not a stored relationship).
type Business struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Address  string   `json:"address"`
	Phone    string   `json:"phone"`
	Products []string `json:"products"`
}

// Locality returns the first comma-delimited segment of an address,
// used as a short display location.
func Locality(address string) string {
	if address == "" {
		return ""
	}
	return strings.TrimSpace(strings.SplitN(address, ",", 2)[0])
}
