package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"padaria-backoffice/db"
	"padaria-backoffice/models"
	"padaria-backoffice/pricing"
)

// CustomerProductRepository handles database operations for per-customer
// catalog overrides
type CustomerProductRepository struct{}

// NewCustomerProductRepository creates a new CustomerProductRepository
func NewCustomerProductRepository() *CustomerProductRepository {
	return &CustomerProductRepository{}
}

// Ensure CustomerProductRepository implements CustomerProductRepositoryInterface
var _ CustomerProductRepositoryInterface = (*CustomerProductRepository)(nil)

// ListByCustomer retrieves a customer's personalized catalog with effective prices
func (r *CustomerProductRepository) ListByCustomer(ctx context.Context, customerID int64) ([]models.CustomerProduct, error) {
	query := `
		SELECT cp.id, cp.customer_id, cp.product_id, p.name, p.price_wholesale,
		       cp.custom_price, cp.created_at, cp.updated_at
		FROM customer_products cp
		INNER JOIN products p ON cp.product_id = p.id
		WHERE cp.customer_id = $1
		ORDER BY p.name ASC
	`

	rows, err := db.DB.QueryContext(ctx, query, customerID)
	if err != nil {
		log.Printf("❌ ListByCustomer: Error querying catalog: %v", err)
		return nil, fmt.Errorf("failed to query customer catalog: %w", err)
	}
	defer rows.Close()

	var entries []models.CustomerProduct
	for rows.Next() {
		var entry models.CustomerProduct
		var customPrice sql.NullFloat64

		err := rows.Scan(
			&entry.ID,
			&entry.CustomerID,
			&entry.ProductID,
			&entry.ProductName,
			&entry.ProductPrice,
			&customPrice,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			log.Printf("❌ ListByCustomer: Error scanning catalog entry: %v", err)
			continue
		}

		if customPrice.Valid {
			price := customPrice.Float64
			entry.CustomPrice = &price
		}
		entry.EffectivePrice = pricing.EffectivePrice(entry.CustomPrice, entry.ProductPrice)
		entry.HasCustomPrice = pricing.HasCustomPrice(entry.CustomPrice)

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer catalog: %w", err)
	}

	return entries, nil
}

// Insert adds a product to a customer's catalog
func (r *CustomerProductRepository) Insert(ctx context.Context, customerID int64, req *models.CatalogEntryRequest) (*models.CustomerProduct, error) {
	query := `
		INSERT INTO customer_products (customer_id, product_id, custom_price)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	var entry models.CustomerProduct
	entry.CustomerID = customerID
	entry.ProductID = req.ProductID
	entry.CustomPrice = req.CustomPrice

	var customPrice sql.NullFloat64
	if req.CustomPrice != nil {
		customPrice = sql.NullFloat64{Float64: *req.CustomPrice, Valid: true}
	}

	err := db.DB.QueryRowContext(ctx, query, customerID, req.ProductID, customPrice).
		Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, fmt.Errorf("product %d is already in catalog for customer %d", req.ProductID, customerID)
		}
		log.Printf("❌ Insert: Error adding catalog entry: %v", err)
		return nil, fmt.Errorf("failed to add catalog entry: %w", err)
	}

	log.Printf("✅ Insert: Added product %d to customer %d catalog (id=%s)", req.ProductID, customerID, entry.ID)
	return &entry, nil
}

// UpdatePrice sets or clears the custom price on one catalog entry
func (r *CustomerProductRepository) UpdatePrice(ctx context.Context, id string, customPrice *float64) error {
	var price sql.NullFloat64
	if customPrice != nil {
		price = sql.NullFloat64{Float64: *customPrice, Valid: true}
	}

	result, err := db.DB.ExecContext(ctx,
		`UPDATE customer_products SET custom_price = $1, updated_at = NOW() WHERE id = $2`,
		price, id)
	if err != nil {
		return fmt.Errorf("failed to update catalog entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("catalog entry not found")
	}
	return nil
}

// Delete removes one catalog entry
func (r *CustomerProductRepository) Delete(ctx context.Context, id string) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM customer_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete catalog entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("catalog entry not found")
	}
	return nil
}

// ListAffectedCustomers retrieves every customer holding the given product in
// a personalized catalog, enriched with the effective price each one pays
// today. An empty list means the price change needs no reconciliation.
func (r *CustomerProductRepository) ListAffectedCustomers(ctx context.Context, productID int64) ([]models.AffectedCustomer, error) {
	log.Printf("🔍 ListAffectedCustomers: Fetching overrides for product=%d", productID)

	query := `
		SELECT cp.id, c.id, c.name, c.trade_name, c.phone,
		       p.price_wholesale, cp.custom_price
		FROM customer_products cp
		INNER JOIN customers c ON cp.customer_id = c.id
		INNER JOIN products p ON cp.product_id = p.id
		WHERE cp.product_id = $1
		ORDER BY c.name ASC
	`

	rows, err := db.DB.QueryContext(ctx, query, productID)
	if err != nil {
		log.Printf("❌ ListAffectedCustomers: Error querying overrides: %v", err)
		return nil, fmt.Errorf("failed to query affected customers: %w", err)
	}
	defer rows.Close()

	var affected []models.AffectedCustomer
	for rows.Next() {
		var row models.AffectedCustomer
		var customPrice sql.NullFloat64

		err := rows.Scan(
			&row.CustomerProductID,
			&row.CustomerID,
			&row.CustomerName,
			&row.TradeName,
			&row.Phone,
			&row.ProductPrice,
			&customPrice,
		)
		if err != nil {
			log.Printf("❌ ListAffectedCustomers: Error scanning row: %v", err)
			continue
		}

		if customPrice.Valid {
			price := customPrice.Float64
			row.CustomPrice = &price
		}
		row.EffectivePrice = pricing.EffectivePrice(row.CustomPrice, row.ProductPrice)
		row.HasCustomPrice = pricing.HasCustomPrice(row.CustomPrice)

		affected = append(affected, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate affected customers: %w", err)
	}

	log.Printf("✓ ListAffectedCustomers: Found %d overrides for product %d", len(affected), productID)
	return affected, nil
}

// ApplyReconciliation applies the admin's dispositions as a single batch:
// UPDATE rows get their custom price cleared, KEEP/CUSTOM rows get it set to
// the resolved value. All writes happen in one transaction so the override
// batch is genuinely all-or-nothing.
func (r *CustomerProductRepository) ApplyReconciliation(ctx context.Context, productID int64, updates []models.CustomerUpdate) (pricing.Summary, error) {
	log.Printf("💰 ApplyReconciliation: Applying %d dispositions for product %d", len(updates), productID)

	summary := pricing.Summarize(updates)
	if len(updates) == 0 {
		return summary, nil
	}

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ ApplyReconciliation: Error starting transaction: %v", err)
		return pricing.Summary{}, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE customer_products
		SET custom_price = $1, updated_at = NOW()
		WHERE id = $2 AND product_id = $3
	`

	for _, update := range updates {
		target := pricing.TargetCustomPrice(update)

		var price sql.NullFloat64
		if target != nil {
			price = sql.NullFloat64{Float64: *target, Valid: true}
		}

		result, err := tx.ExecContext(ctx, query, price, update.CustomerProductID, productID)
		if err != nil {
			log.Printf("❌ ApplyReconciliation: Error updating override %s: %v", update.CustomerProductID, err)
			return pricing.Summary{}, fmt.Errorf("failed to update override %s: %w", update.CustomerProductID, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return pricing.Summary{}, fmt.Errorf("failed to check update result: %w", err)
		}
		if affected == 0 {
			log.Printf("❌ ApplyReconciliation: Override %s not found for product %d", update.CustomerProductID, productID)
			return pricing.Summary{}, fmt.Errorf("override %s not found for product %d", update.CustomerProductID, productID)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("❌ ApplyReconciliation: Error committing transaction: %v", err)
		return pricing.Summary{}, fmt.Errorf("failed to commit reconciliation: %w", err)
	}

	log.Printf("✅ ApplyReconciliation: Product %d — %d updated, %d kept, %d custom",
		productID, summary.Updated, summary.Kept, summary.Custom)
	return summary, nil
}
