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

// PurchaseController handles HTTP requests for supplier purchases
type PurchaseController struct {
	repository repository.PurchaseRepositoryInterface
}

// NewPurchaseController creates a new PurchaseController
func NewPurchaseController(repo repository.PurchaseRepositoryInterface) *PurchaseController {
	return &PurchaseController{repository: repo}
}

// CreatePurchase handles POST /api/purchases
func (c *PurchaseController) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req models.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreatePurchase: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Supplier) == "" {
		http.Error(w, "supplier cannot be empty", http.StatusBadRequest)
		return
	}
	if req.Total <= 0 {
		http.Error(w, "total must be positive", http.StatusBadRequest)
		return
	}

	purchase, err := c.repository.Insert(context.Background(), &req)
	if err != nil {
		log.Printf("❌ CreatePurchase: Error recording purchase: %v", err)
		http.Error(w, fmt.Sprintf("Failed to record purchase: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, purchase)
}

// ListPurchases handles GET /api/purchases?from=YYYY-MM-DD&to=YYYY-MM-DD
func (c *PurchaseController) ListPurchases(w http.ResponseWriter, r *http.Request) {
	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))

	purchases, err := c.repository.List(context.Background(), from, to)
	if err != nil {
		log.Printf("❌ ListPurchases: Error fetching purchases: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch purchases: %v", err), http.StatusInternalServerError)
		return
	}
	if purchases == nil {
		purchases = []models.Purchase{}
	}

	writeJSON(w, http.StatusOK, purchases)
}

// DeletePurchase handles DELETE /api/purchases/{id}
func (c *PurchaseController) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	idPart := strings.TrimPrefix(r.URL.Path, "/api/purchases/")
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, fmt.Sprintf("invalid purchase id: %s", idPart), http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(context.Background(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Purchase not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ DeletePurchase: Error deleting purchase %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to delete purchase: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Purchase deleted"})
}
