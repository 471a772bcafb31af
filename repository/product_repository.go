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

// ProductRepository handles database operations for products
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

const productColumns = `id, name, category, unit, price_wholesale, price_retail, promo_price, promo_active, is_active, created_at`

func scanProduct(scanner interface{ Scan(...interface{}) error }) (*models.Product, error) {
	var p models.Product
	var promoPrice sql.NullFloat64

	err := scanner.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Unit,
		&p.PriceWholesale,
		&p.PriceRetail,
		&promoPrice,
		&p.PromoActive,
		&p.IsActive,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if promoPrice.Valid {
		price := promoPrice.Float64
		p.PromoPrice = &price
	}
	return &p, nil
}

// List retrieves products matching the optional filters
func (r *ProductRepository) List(ctx context.Context, params models.ProductFilterParams) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	var args []interface{}
	argNum := 1

	if params.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argNum)
		args = append(args, *params.Category)
		argNum++
	}
	if params.IsActive != nil {
		query += fmt.Sprintf(" AND is_active = $%d", argNum)
		args = append(args, *params.IsActive)
		argNum++
	}
	if params.Search != nil {
		query += fmt.Sprintf(" AND name ILIKE $%d", argNum)
		args = append(args, "%"+strings.TrimSpace(*params.Search)+"%")
		argNum++
	}
	query += " ORDER BY name ASC"

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ List: Error querying products: %v", err)
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Printf("❌ List: Error scanning product: %v", err)
			continue
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product not found")
		}
		log.Printf("❌ GetByID: Error fetching product %d: %v", id, err)
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return p, nil
}

// Insert creates a new product
func (r *ProductRepository) Insert(ctx context.Context, req *models.ProductRequest) (*models.Product, error) {
	query := `
		INSERT INTO products (name, category, unit, price_wholesale, price_retail, promo_price, promo_active, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + productColumns

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var promoPrice sql.NullFloat64
	if req.PromoPrice != nil {
		promoPrice = sql.NullFloat64{Float64: *req.PromoPrice, Valid: true}
	}

	p, err := scanProduct(db.DB.QueryRowContext(ctx, query,
		req.Name, req.Category, req.Unit, req.PriceWholesale, req.PriceRetail,
		promoPrice, req.PromoActive, isActive))
	if err != nil {
		log.Printf("❌ Insert: Error creating product: %v", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	log.Printf("✅ Insert: Created product id=%d name=%s", p.ID, p.Name)
	return p, nil
}

// Update saves product fields. When the wholesale price changes beyond the
// epsilon, a price history row is recorded in the same transaction.
func (r *ProductRepository) Update(ctx context.Context, id int64, req *models.ProductRequest) (*models.Product, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock the row so the old price read and the update are consistent
	var oldWholesale float64
	err = tx.QueryRowContext(ctx,
		`SELECT price_wholesale FROM products WHERE id = $1 FOR UPDATE`, id).
		Scan(&oldWholesale)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var promoPrice sql.NullFloat64
	if req.PromoPrice != nil {
		promoPrice = sql.NullFloat64{Float64: *req.PromoPrice, Valid: true}
	}

	query := `
		UPDATE products
		SET name = $1, category = $2, unit = $3, price_wholesale = $4,
		    price_retail = $5, promo_price = $6, promo_active = $7, is_active = $8
		WHERE id = $9
		RETURNING ` + productColumns

	p, err := scanProduct(tx.QueryRowContext(ctx, query,
		req.Name, req.Category, req.Unit, req.PriceWholesale, req.PriceRetail,
		promoPrice, req.PromoActive, isActive, id))
	if err != nil {
		log.Printf("❌ Update: Error updating product %d: %v", id, err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if pricing.PriceChanged(oldWholesale, req.PriceWholesale) {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO price_history (product_id, old_wholesale, new_wholesale, reason) VALUES ($1, $2, $3, $4)`,
			id, oldWholesale, req.PriceWholesale, "manual")
		if err != nil {
			log.Printf("❌ Update: Error recording price history for product %d: %v", id, err)
			return nil, fmt.Errorf("failed to record price history: %w", err)
		}
		log.Printf("💰 Update: Product %d wholesale price changed %.2f -> %.2f", id, oldWholesale, req.PriceWholesale)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit product update: %w", err)
	}

	log.Printf("✅ Update: Saved product id=%d name=%s", p.ID, p.Name)
	return p, nil
}

// Deactivate soft-deletes a product
func (r *ProductRepository) Deactivate(ctx context.Context, id int64) error {
	result, err := db.DB.ExecContext(ctx, `UPDATE products SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deactivate result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product not found")
	}

	log.Printf("✅ Deactivate: Product %d deactivated", id)
	return nil
}
