package models

// CustomerProduct relates one customer to one product with an optional
// custom price. A nil CustomPrice means the customer pays the product's
// current wholesale price.
type CustomerProduct struct {
	ID             string   `json:"id"`
	CustomerID     int64    `json:"customerId"`
	ProductID      int64    `json:"productId"`
	ProductName    string   `json:"productName"`
	ProductPrice   float64  `json:"productPrice"`
	CustomPrice    *float64 `json:"customPrice"`
	EffectivePrice float64  `json:"effectivePrice"`
	HasCustomPrice bool     `json:"hasCustomPrice"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// CatalogEntryRequest represents the request body for adding or updating
// a customer catalog entry
type CatalogEntryRequest struct {
	ProductID   int64    `json:"productId"`
	CustomPrice *float64 `json:"customPrice"`
}

// AffectedCustomer is the derived view of one customer_products row enriched
// with the owning customer's display fields, returned when a product's
// wholesale price is about to change.
type AffectedCustomer struct {
	CustomerProductID string   `json:"customerProductId"`
	CustomerID        int64    `json:"customerId"`
	CustomerName      string   `json:"customerName"`
	TradeName         string   `json:"tradeName"`
	Phone             string   `json:"phone"`
	ProductPrice      float64  `json:"productPrice"`
	CustomPrice       *float64 `json:"customPrice"`
	EffectivePrice    float64  `json:"effectivePrice"`
	HasCustomPrice    bool     `json:"hasCustomPrice"`
}

// AffectedCustomersResponse wraps the affected-customers list
type AffectedCustomersResponse struct {
	AffectedCustomers []AffectedCustomer `json:"affectedCustomers"`
}

// CustomerUpdate is one admin-resolved disposition for one override row,
// as sent by the product edit screen on save.
type CustomerUpdate struct {
	CustomerProductID string   `json:"customerProductId"`
	Action            string   `json:"action"` // UPDATE or KEEP
	KeepOldPrice      bool     `json:"keepOldPrice"`
	OldPrice          float64  `json:"oldPrice"`
	NewPrice          *float64 `json:"newPrice"`
}

// ApplyReconciliationRequest represents the request body for the
// affected-customers batch update
type ApplyReconciliationRequest struct {
	NewProductPrice float64          `json:"newProductPrice"`
	CustomerUpdates []CustomerUpdate `json:"customerUpdates"`
}

// ApplyReconciliationResponse summarizes the applied batch
type ApplyReconciliationResponse struct {
	Message string `json:"message"`
}
