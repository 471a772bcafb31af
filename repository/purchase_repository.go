package repository

import (
	"context"
	"fmt"
	"log"

	"padaria-backoffice/db"
	"padaria-backoffice/models"
)

// PurchaseRepository handles database operations for supplier purchases
type PurchaseRepository struct{}

// NewPurchaseRepository creates a new PurchaseRepository
func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{}
}

// Ensure PurchaseRepository implements PurchaseRepositoryInterface
var _ PurchaseRepositoryInterface = (*PurchaseRepository)(nil)

// Insert records a purchase
func (r *PurchaseRepository) Insert(ctx context.Context, req *models.PurchaseRequest) (*models.Purchase, error) {
	var p models.Purchase
	err := db.DB.QueryRowContext(ctx, `
		INSERT INTO purchases (supplier, purchase_date, category, total, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, supplier, purchase_date, category, total, notes, created_at
	`, req.Supplier, req.PurchaseDate, req.Category, req.Total, req.Notes).
		Scan(&p.ID, &p.Supplier, &p.PurchaseDate, &p.Category, &p.Total, &p.Notes, &p.CreatedAt)
	if err != nil {
		log.Printf("❌ Insert: Error recording purchase: %v", err)
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	log.Printf("✅ Insert: Recorded purchase id=%d supplier=%s total=%.2f", p.ID, p.Supplier, p.Total)
	return &p, nil
}

// List retrieves purchases within an optional date range
func (r *PurchaseRepository) List(ctx context.Context, from, to string) ([]models.Purchase, error) {
	query := `SELECT id, supplier, purchase_date, category, total, notes, created_at FROM purchases WHERE 1=1`
	var args []interface{}
	argNum := 1

	if from != "" {
		query += fmt.Sprintf(" AND purchase_date >= $%d", argNum)
		args = append(args, from)
		argNum++
	}
	if to != "" {
		query += fmt.Sprintf(" AND purchase_date <= $%d", argNum)
		args = append(args, to)
		argNum++
	}
	query += " ORDER BY purchase_date DESC, id DESC"

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ List: Error querying purchases: %v", err)
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	var purchases []models.Purchase
	for rows.Next() {
		var p models.Purchase
		err := rows.Scan(&p.ID, &p.Supplier, &p.PurchaseDate, &p.Category, &p.Total, &p.Notes, &p.CreatedAt)
		if err != nil {
			log.Printf("❌ List: Error scanning purchase: %v", err)
			continue
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchases: %w", err)
	}
	return purchases, nil
}

// Delete removes a purchase record
func (r *PurchaseRepository) Delete(ctx context.Context, id int64) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("purchase not found")
	}

	log.Printf("✅ Delete: Purchase %d deleted", id)
	return nil
}
