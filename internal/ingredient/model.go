// Package ingredient stores the product components (base and filling) used by the bakery.
package ingredient

// Ingredient is a named product with an optional base and filling.
// Base and Filling are nil when the column is NULL.
type Ingredient struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"nome_produto"`
	Base        *string `json:"base"`
	Filling     *string `json:"recheio"`
}
