package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"padaria-backoffice/models"
	"padaria-backoffice/repository"
)

// OrderController handles HTTP requests for orders
type OrderController struct {
	repository repository.OrderRepositoryInterface
}

// NewOrderController creates a new OrderController
func NewOrderController(repo repository.OrderRepositoryInterface) *OrderController {
	return &OrderController{repository: repo}
}

func parseOrderID(path string) (int64, error) {
	trimmed := strings.TrimPrefix(path, "/api/orders/")
	idPart := strings.SplitN(trimmed, "/", 2)[0]
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid order id: %s", idPart)
	}
	return id, nil
}

// CreateOrder handles POST /api/orders
// Each line is priced at the customer's effective price at creation time.
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateOrder: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.CustomerID <= 0 {
		http.Error(w, "customerId is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.DeliveryDate) == "" {
		http.Error(w, "deliveryDate is required", http.StatusBadRequest)
		return
	}
	if len(req.Lines) == 0 {
		http.Error(w, "order must have at least one line", http.StatusBadRequest)
		return
	}
	for _, line := range req.Lines {
		if line.ProductID <= 0 {
			http.Error(w, "every line needs a productId", http.StatusBadRequest)
			return
		}
		if line.Qty <= 0 {
			http.Error(w, "qty must be positive", http.StatusBadRequest)
			return
		}
	}

	order, err := c.repository.Create(context.Background(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("❌ CreateOrder: Error creating order: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create order: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// ListOrders handles GET /api/orders?date=YYYY-MM-DD&status=pending
func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	status := strings.TrimSpace(r.URL.Query().Get("status"))

	orders, err := c.repository.List(context.Background(), date, status)
	if err != nil {
		log.Printf("❌ ListOrders: Error fetching orders: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch orders: %v", err), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/{id}
func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseOrderID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := c.repository.GetByID(context.Background(), id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ GetOrder: Error fetching order %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to fetch order: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateOrderStatus handles PUT /api/orders/{id}/status
func (c *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseOrderID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateOrderStatus: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	switch req.Status {
	case models.OrderStatusPending, models.OrderStatusDelivering, models.OrderStatusDelivered, models.OrderStatusCancelled:
	default:
		http.Error(w, fmt.Sprintf("invalid status: %s", req.Status), http.StatusBadRequest)
		return
	}

	if err := c.repository.UpdateStatus(context.Background(), id, req.Status); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		if strings.Contains(err.Error(), "invalid status transition") {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.Printf("❌ UpdateOrderStatus: Error updating order %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to update order status: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Order status updated"})
}
