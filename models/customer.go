package models

// Customer represents a customer in the database
type Customer struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	TradeName    string `json:"tradeName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	IsActive     bool   `json:"isActive"`
	CreatedAt    string `json:"createdAt"`
}

// CustomerRequest represents the request body for creating or updating a customer
type CustomerRequest struct {
	Name         string `json:"name"`
	TradeName    string `json:"tradeName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	IsActive     *bool  `json:"isActive"`
}
