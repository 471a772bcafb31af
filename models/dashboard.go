package models

// DashboardSummary aggregates the financial KPIs for a period
type DashboardSummary struct {
	From           string       `json:"from"`
	To             string       `json:"to"`
	Revenue        float64      `json:"revenue"`
	OrderCount     int          `json:"orderCount"`
	PurchasesTotal float64      `json:"purchasesTotal"`
	Margin         float64      `json:"margin"`
	TopProducts    []TopProduct `json:"topProducts"`
}

// TopProduct is one product ranked by delivered quantity
type TopProduct struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Qty         int    `json:"qty"`
}
