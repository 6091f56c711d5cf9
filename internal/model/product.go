package model

// Stock status labels derived from a product's stock count. Status is
// never set directly by a client; it is recomputed on every commit.
const (
	StatusActive     = "Active"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// Product is a catalog record. Price is stored in its display form with a
// leading dollar sign and two decimals (e.g. "$19.99"); the editor strips
// and re-applies the prefix around commits.
//
// Fields:
//  ID          – unique identifier within the product collection.
//  Name        – product name shown in the table.
//  Category    – label of the category the product belongs to.
//  Price       – formatted price string ("$19.99").
//  Stock       – units on hand; drives the derived Status.
//  Status      – one of Active, Low Stock, Out of Stock.
//  Description – optional free-text description.
type Product struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
}
