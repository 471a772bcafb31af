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
	"padaria-backoffice/service"
)

// CustomerController handles HTTP requests for customers and their
// personalized product catalogs
type CustomerController struct {
	repository  repository.CustomerRepositoryInterface
	catalogRepo repository.CustomerProductRepositoryInterface
	exporter    service.ExportServiceInterface
}

// NewCustomerController creates a new CustomerController
func NewCustomerController(
	repo repository.CustomerRepositoryInterface,
	catalogRepo repository.CustomerProductRepositoryInterface,
	exporter service.ExportServiceInterface,
) *CustomerController {
	return &CustomerController{
		repository:  repo,
		catalogRepo: catalogRepo,
		exporter:    exporter,
	}
}

// parseCustomerID extracts the customer id from /api/customers/{id}[/suffix]
func parseCustomerID(path string) (int64, error) {
	trimmed := strings.TrimPrefix(path, "/api/customers/")
	idPart := strings.SplitN(trimmed, "/", 2)[0]
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid customer id: %s", idPart)
	}
	return id, nil
}

func validateCustomerRequest(req *models.CustomerRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// ListCustomers handles GET /api/customers
func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	customers, err := c.repository.List(context.Background(), activeOnly)
	if err != nil {
		log.Printf("❌ ListCustomers: Error fetching customers: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch customers: %v", err), http.StatusInternalServerError)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}

	writeJSON(w, http.StatusOK, customers)
}

// GetCustomer handles GET /api/customers/{id}
func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseCustomerID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	customer, err := c.repository.GetByID(context.Background(), id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Customer not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ GetCustomer: Error fetching customer %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to fetch customer: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// CreateCustomer handles POST /api/customers
func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateCustomer: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := validateCustomerRequest(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	customer, err := c.repository.Insert(context.Background(), &req)
	if err != nil {
		log.Printf("❌ CreateCustomer: Error creating customer: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create customer: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

// UpdateCustomer handles PUT /api/customers/{id}
func (c *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseCustomerID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateCustomer: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := validateCustomerRequest(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	customer, err := c.repository.Update(context.Background(), id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Customer not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ UpdateCustomer: Error updating customer %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to update customer: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /api/customers/{id}
func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseCustomerID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.repository.Deactivate(context.Background(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Customer not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to deactivate customer: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Customer deactivated"})
}

// GetCatalog handles GET /api/customers/{id}/catalog
func (c *CustomerController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	id, err := parseCustomerID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := c.catalogRepo.ListByCustomer(context.Background(), id)
	if err != nil {
		log.Printf("❌ GetCatalog: Error fetching catalog for customer %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to fetch catalog: %v", err), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.CustomerProduct{}
	}

	writeJSON(w, http.StatusOK, entries)
}

// AddCatalogEntry handles POST /api/customers/{id}/catalog
func (c *CustomerController) AddCatalogEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseCustomerID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.CatalogEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ AddCatalogEntry: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.ProductID <= 0 {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}
	if req.CustomPrice != nil && *req.CustomPrice < 0 {
		http.Error(w, "customPrice cannot be negative", http.StatusBadRequest)
		return
	}

	entry, err := c.catalogRepo.Insert(context.Background(), id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "already in catalog") {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.Printf("❌ AddCatalogEntry: Error adding product %d for customer %d: %v", req.ProductID, id, err)
		http.Error(w, fmt.Sprintf("Failed to add catalog entry: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// UpdateCatalogEntry handles PUT /api/customers/{id}/catalog/{entryId}
func (c *CustomerController) UpdateCatalogEntry(w http.ResponseWriter, r *http.Request) {
	entryID := lastPathSegment(r.URL.Path)
	if entryID == "" || entryID == "catalog" {
		http.Error(w, "invalid catalog entry id", http.StatusBadRequest)
		return
	}

	var req models.CatalogEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateCatalogEntry: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.CustomPrice != nil && *req.CustomPrice < 0 {
		http.Error(w, "customPrice cannot be negative", http.StatusBadRequest)
		return
	}

	if err := c.catalogRepo.UpdatePrice(context.Background(), entryID, req.CustomPrice); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Catalog entry not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ UpdateCatalogEntry: Error updating entry %s: %v", entryID, err)
		http.Error(w, fmt.Sprintf("Failed to update catalog entry: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Catalog entry updated"})
}

// DeleteCatalogEntry handles DELETE /api/customers/{id}/catalog/{entryId}
func (c *CustomerController) DeleteCatalogEntry(w http.ResponseWriter, r *http.Request) {
	entryID := lastPathSegment(r.URL.Path)
	if entryID == "" || entryID == "catalog" {
		http.Error(w, "invalid catalog entry id", http.StatusBadRequest)
		return
	}

	if err := c.catalogRepo.Delete(context.Background(), entryID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Catalog entry not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ DeleteCatalogEntry: Error deleting entry %s: %v", entryID, err)
		http.Error(w, fmt.Sprintf("Failed to delete catalog entry: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Catalog entry removed"})
}

// ExportCatalog handles GET /api/customers/{id}/catalog/export
// Streams the customer's price list as an .xlsx download.
func (c *CustomerController) ExportCatalog(w http.ResponseWriter, r *http.Request) {
	id, err := parseCustomerID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	customer, err := c.repository.GetByID(ctx, id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Customer not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch customer: %v", err), http.StatusInternalServerError)
		return
	}

	entries, err := c.catalogRepo.ListByCustomer(ctx, id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to fetch catalog: %v", err), http.StatusInternalServerError)
		return
	}

	data, err := c.exporter.CustomerPriceList(ctx, customer, entries)
	if err != nil {
		log.Printf("❌ ExportCatalog: Error building workbook for customer %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to build export: %v", err), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("tabela-precos-cliente-%d.xlsx", id)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("⚠️  ExportCatalog: Error writing response: %v", err)
	}
}

// lastPathSegment returns the final segment of a URL path
func lastPathSegment(path string) string {
	trimmed := strings.TrimSuffix(path, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return ""
	}
	return trimmed[idx+1:]
}
