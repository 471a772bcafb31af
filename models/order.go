package models

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusDelivering = "delivering"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order represents a customer order
type Order struct {
	ID           int64       `json:"id"`
	CustomerID   int64       `json:"customerId"`
	CustomerName string      `json:"customerName"`
	DeliveryDate string      `json:"deliveryDate"`
	Status       string      `json:"status"`
	Total        float64     `json:"total"`
	CreatedAt    string      `json:"createdAt"`
	Lines        []OrderLine `json:"lines,omitempty"`
}

// OrderLine represents one line of an order. UnitPrice is the customer's
// effective price captured at order creation time.
type OrderLine struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"orderId"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Qty         int     `json:"qty"`
	UnitPrice   float64 `json:"unitPrice"`
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	CustomerID   int64              `json:"customerId"`
	DeliveryDate string             `json:"deliveryDate"`
	Lines        []OrderLineRequest `json:"lines"`
}

// OrderLineRequest represents one requested order line
type OrderLineRequest struct {
	ProductID int64 `json:"productId"`
	Qty       int   `json:"qty"`
}

// UpdateOrderStatusRequest represents the request body for a status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
