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

// RouteController handles HTTP requests for delivery routes
type RouteController struct {
	repository repository.DeliveryRouteRepositoryInterface
}

// NewRouteController creates a new RouteController
func NewRouteController(repo repository.DeliveryRouteRepositoryInterface) *RouteController {
	return &RouteController{repository: repo}
}

func parseRouteID(path string) (int64, error) {
	trimmed := strings.TrimPrefix(path, "/api/routes/")
	idPart := strings.SplitN(trimmed, "/", 2)[0]
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid route id: %s", idPart)
	}
	return id, nil
}

// CreateRoute handles POST /api/routes
func (c *RouteController) CreateRoute(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateRoute: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.RouteDate) == "" {
		http.Error(w, "routeDate is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Driver) == "" {
		http.Error(w, "driver is required", http.StatusBadRequest)
		return
	}
	if len(req.OrderIDs) == 0 {
		http.Error(w, "route must include at least one order", http.StatusBadRequest)
		return
	}

	route, err := c.repository.Create(context.Background(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("❌ CreateRoute: Error creating route: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create route: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, route)
}

// ListRoutes handles GET /api/routes?date=YYYY-MM-DD
func (c *RouteController) ListRoutes(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))

	routes, err := c.repository.ListByDate(context.Background(), date)
	if err != nil {
		log.Printf("❌ ListRoutes: Error fetching routes: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch routes: %v", err), http.StatusInternalServerError)
		return
	}
	if routes == nil {
		routes = []models.DeliveryRoute{}
	}

	writeJSON(w, http.StatusOK, routes)
}

// GetRoute handles GET /api/routes/{id}
func (c *RouteController) GetRoute(w http.ResponseWriter, r *http.Request) {
	id, err := parseRouteID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	route, err := c.repository.GetByID(context.Background(), id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Route not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ GetRoute: Error fetching route %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to fetch route: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, route)
}

// ReorderRoute handles PUT /api/routes/{id}/reorder
// The body must list every existing stop id exactly once in the new order.
func (c *RouteController) ReorderRoute(w http.ResponseWriter, r *http.Request) {
	id, err := parseRouteID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.ReorderRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ ReorderRoute: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if len(req.StopIDs) == 0 {
		http.Error(w, "stopIds cannot be empty", http.StatusBadRequest)
		return
	}

	if err := c.repository.Reorder(context.Background(), id, req.StopIDs); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Route not found", http.StatusNotFound)
			return
		}
		if strings.Contains(err.Error(), "permutation") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("❌ ReorderRoute: Error reordering route %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to reorder route: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("🚚 ReorderRoute: Route %d reordered with %d stops", id, len(req.StopIDs))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Route reordered"})
}

// MarkStopDelivered handles PUT /api/routes/{id}/stops/{stopId}/delivered
func (c *RouteController) MarkStopDelivered(w http.ResponseWriter, r *http.Request) {
	id, err := parseRouteID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// /api/routes/{id}/stops/{stopId}/delivered
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 6 {
		http.Error(w, "invalid path", http.StatusBadRequest)
		return
	}
	stopID, err := strconv.ParseInt(parts[4], 10, 64)
	if err != nil || stopID <= 0 {
		http.Error(w, fmt.Sprintf("invalid stop id: %s", parts[4]), http.StatusBadRequest)
		return
	}

	if err := c.repository.MarkDelivered(context.Background(), id, stopID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Stop not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ MarkStopDelivered: Error marking stop %d on route %d: %v", stopID, id, err)
		http.Error(w, fmt.Sprintf("Failed to mark stop delivered: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Stop marked as delivered"})
}
