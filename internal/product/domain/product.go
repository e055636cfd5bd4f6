package domain

// Product is a directory record. Quantity is the stock count as last
// written; order creation does not decrement it.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
