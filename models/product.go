package models

// Product represents a product in the database
type Product struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Unit           string   `json:"unit"`
	PriceWholesale float64  `json:"priceWholesale"`
	PriceRetail    float64  `json:"priceRetail"`
	PromoPrice     *float64 `json:"promoPrice"`
	PromoActive    bool     `json:"promoActive"`
	IsActive       bool     `json:"isActive"`
	CreatedAt      string   `json:"createdAt"`
}

// ProductRequest represents the request body for creating or updating a product
type ProductRequest struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Unit           string   `json:"unit"`
	PriceWholesale float64  `json:"priceWholesale"`
	PriceRetail    float64  `json:"priceRetail"`
	PromoPrice     *float64 `json:"promoPrice"`
	PromoActive    bool     `json:"promoActive"`
	IsActive       *bool    `json:"isActive"`
}

// ProductFilterParams represents optional filter parameters for products
type ProductFilterParams struct {
	Category *string
	IsActive *bool
	Search   *string
}

// PriceHistoryEntry represents one recorded wholesale price change
type PriceHistoryEntry struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"productId"`
	OldWholesale float64 `json:"oldWholesale"`
	NewWholesale float64 `json:"newWholesale"`
	Reason       string  `json:"reason"`
	CreatedAt    string  `json:"createdAt"`
}
