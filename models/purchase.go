package models

// Purchase represents one supplier purchase
type Purchase struct {
	ID           int64   `json:"id"`
	Supplier     string  `json:"supplier"`
	PurchaseDate string  `json:"purchaseDate"`
	Category     string  `json:"category"`
	Total        float64 `json:"total"`
	Notes        string  `json:"notes"`
	CreatedAt    string  `json:"createdAt"`
}

// PurchaseRequest represents the request body for recording a purchase
type PurchaseRequest struct {
	Supplier     string  `json:"supplier"`
	PurchaseDate string  `json:"purchaseDate"`
	Category     string  `json:"category"`
	Total        float64 `json:"total"`
	Notes        string  `json:"notes"`
}
