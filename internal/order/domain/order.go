package domain

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusRefunded  OrderStatus = "refunded"
)

// FeeRate is the flat surcharge applied to every order at creation time.
const FeeRate = 0.10

type Order struct {
	ID        string      `json:"id"`
	ProductID string      `json:"product_id"`
	Price     float64     `json:"price"`
	Fee       float64     `json:"fee"`
	Total     float64     `json:"total"`
	Quantity  int         `json:"quantity"`
	Status    OrderStatus `json:"status"`
}

// NewOrder snapshots the unit price at creation time and derives the total.
// Creation always yields a completed order; pending and refunded are
// declared for later transitions but nothing assigns them yet.
func NewOrder(productID string, unitPrice float64, quantity int) Order {
	return Order{
		ProductID: productID,
		Price:     unitPrice,
		Fee:       FeeRate,
		Total:     unitPrice * (1 + FeeRate) * float64(quantity),
		Quantity:  quantity,
		Status:    StatusCompleted,
	}
}
