package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"padaria-backoffice/metrics"
	"padaria-backoffice/models"
	"padaria-backoffice/pricing"
	"padaria-backoffice/repository"
)

// ProductController handles HTTP requests for products, price history and
// the price-change reconciliation endpoints
type ProductController struct {
	repository       repository.ProductRepositoryInterface
	priceHistoryRepo repository.PriceHistoryRepositoryInterface
	overrideRepo     repository.CustomerProductRepositoryInterface
}

// NewProductController creates a new ProductController
func NewProductController(
	repo repository.ProductRepositoryInterface,
	priceHistoryRepo repository.PriceHistoryRepositoryInterface,
	overrideRepo repository.CustomerProductRepositoryInterface,
) *ProductController {
	return &ProductController{
		repository:       repo,
		priceHistoryRepo: priceHistoryRepo,
		overrideRepo:     overrideRepo,
	}
}

// parseProductID extracts the product id from /api/products/{id}[/suffix]
func parseProductID(path string) (int64, error) {
	trimmed := strings.TrimPrefix(path, "/api/products/")
	idPart := strings.SplitN(trimmed, "/", 2)[0]
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id: %s", idPart)
	}
	return id, nil
}

func validateProductRequest(req *models.ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if req.PriceWholesale < 0 {
		return fmt.Errorf("priceWholesale cannot be negative")
	}
	if req.PriceRetail < 0 {
		return fmt.Errorf("priceRetail cannot be negative")
	}
	if req.PromoPrice != nil && *req.PromoPrice < 0 {
		return fmt.Errorf("promoPrice cannot be negative")
	}
	return nil
}

// ListProducts handles GET /api/products
func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	var params models.ProductFilterParams
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		params.Category = &category
	}
	if activeStr := strings.TrimSpace(r.URL.Query().Get("active")); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			http.Error(w, "active must be true or false", http.StatusBadRequest)
			return
		}
		params.IsActive = &active
	}
	if search := strings.TrimSpace(r.URL.Query().Get("search")); search != "" {
		params.Search = &search
	}

	products, err := c.repository.List(ctx, params)
	if err != nil {
		log.Printf("❌ ListProducts: Error fetching products: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch products: %v", err), http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{id}
func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := c.repository.GetByID(context.Background(), id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ GetProduct: Error fetching product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to fetch product: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /api/products
func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateProduct: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := validateProductRequest(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := c.repository.Insert(context.Background(), &req)
	if err != nil {
		log.Printf("❌ CreateProduct: Error creating product: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create product: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/{id}
// Saving with a changed wholesale price records price history; the browser
// follows up with the affected-customers batch when overrides exist.
func (c *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateProduct: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := validateProductRequest(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	existing, err := c.repository.GetByID(ctx, id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch product: %v", err), http.StatusInternalServerError)
		return
	}

	product, err := c.repository.Update(ctx, id, &req)
	if err != nil {
		log.Printf("❌ UpdateProduct: Error updating product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to update product: %v", err), http.StatusInternalServerError)
		return
	}

	if pricing.PriceChanged(existing.PriceWholesale, req.PriceWholesale) {
		metrics.PriceChanges.Inc()
	}

	writeJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/{id}
func (c *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.repository.Deactivate(context.Background(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to deactivate product: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deactivated"})
}

// GetPriceHistory handles GET /api/products/{id}/price-history
func (c *ProductController) GetPriceHistory(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := c.priceHistoryRepo.ListByProduct(context.Background(), id)
	if err != nil {
		log.Printf("❌ GetPriceHistory: Error fetching history for product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to fetch price history: %v", err), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.PriceHistoryEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}

// GetAffectedCustomers handles GET /api/products/{id}/affected-customers
// Called when the product edit dialog detects a wholesale price change.
// No side effects; an empty list means no reconciliation is needed.
func (c *ProductController) GetAffectedCustomers(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	affected, err := c.overrideRepo.ListAffectedCustomers(context.Background(), id)
	if err != nil {
		log.Printf("❌ GetAffectedCustomers: Error fetching overrides for product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to fetch affected customers: %v", err), http.StatusInternalServerError)
		return
	}
	if affected == nil {
		affected = []models.AffectedCustomer{}
	}

	writeJSON(w, http.StatusOK, models.AffectedCustomersResponse{AffectedCustomers: affected})
}

// ApplyAffectedCustomers handles PUT /api/products/{id}/affected-customers
// Applies the admin's dispositions for every override as one batch. Issued by
// the browser after a successful product save when the price changed.
func (c *ProductController) ApplyAffectedCustomers(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.ApplyReconciliationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ ApplyAffectedCustomers: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.NewProductPrice < 0 {
		http.Error(w, "newProductPrice cannot be negative", http.StatusBadRequest)
		return
	}
	for _, update := range req.CustomerUpdates {
		if update.CustomerProductID == "" {
			http.Error(w, "customerProductId cannot be empty", http.StatusBadRequest)
			return
		}
		if update.Action != pricing.ActionUpdate && update.Action != pricing.ActionKeep {
			http.Error(w, fmt.Sprintf("invalid action %q: must be UPDATE or KEEP", update.Action), http.StatusBadRequest)
			return
		}
		if update.NewPrice != nil && *update.NewPrice < 0 {
			http.Error(w, "newPrice cannot be negative", http.StatusBadRequest)
			return
		}
	}

	summary, err := c.overrideRepo.ApplyReconciliation(context.Background(), id, req.CustomerUpdates)
	if err != nil {
		log.Printf("❌ ApplyAffectedCustomers: Error applying batch for product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to apply customer updates: %v", err), http.StatusInternalServerError)
		return
	}

	metrics.ReconciliationsApplied.Inc()
	metrics.OverrideDispositions.WithLabelValues("update").Add(float64(summary.Updated))
	metrics.OverrideDispositions.WithLabelValues("keep").Add(float64(summary.Kept))
	metrics.OverrideDispositions.WithLabelValues("custom").Add(float64(summary.Custom))

	writeJSON(w, http.StatusOK, models.ApplyReconciliationResponse{Message: summary.Message()})
}
