package models

// DeliveryRoute represents one day's delivery route for a driver
type DeliveryRoute struct {
	ID        int64       `json:"id"`
	RouteDate string      `json:"routeDate"`
	Driver    string      `json:"driver"`
	Vehicle   string      `json:"vehicle"`
	CreatedAt string      `json:"createdAt"`
	Stops     []RouteStop `json:"stops,omitempty"`
}

// RouteStop represents one ordered stop on a route
type RouteStop struct {
	ID           int64   `json:"id"`
	RouteID      int64   `json:"routeId"`
	OrderID      int64   `json:"orderId"`
	Position     int     `json:"position"`
	CustomerName string  `json:"customerName"`
	Address      string  `json:"address"`
	Neighborhood string  `json:"neighborhood"`
	DeliveredAt  *string `json:"deliveredAt"`
}

// CreateRouteRequest represents the request body for creating a route
type CreateRouteRequest struct {
	RouteDate string  `json:"routeDate"`
	Driver    string  `json:"driver"`
	Vehicle   string  `json:"vehicle"`
	OrderIDs  []int64 `json:"orderIds"`
}

// ReorderRouteRequest carries the full new ordering of a route's stops.
// Every existing stop id must appear exactly once.
type ReorderRouteRequest struct {
	StopIDs []int64 `json:"stopIds"`
}
