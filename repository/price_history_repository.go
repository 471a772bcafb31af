package repository

import (
	"context"
	"fmt"
	"log"

	"padaria-backoffice/db"
	"padaria-backoffice/models"
)

// PriceHistoryRepository handles database operations for price history.
// Rows are written by ProductRepository.Update; they are never modified
// or deleted.
type PriceHistoryRepository struct{}

// NewPriceHistoryRepository creates a new PriceHistoryRepository
func NewPriceHistoryRepository() *PriceHistoryRepository {
	return &PriceHistoryRepository{}
}

// Ensure PriceHistoryRepository implements PriceHistoryRepositoryInterface
var _ PriceHistoryRepositoryInterface = (*PriceHistoryRepository)(nil)

// ListByProduct retrieves all recorded wholesale price changes for a product,
// newest first
func (r *PriceHistoryRepository) ListByProduct(ctx context.Context, productID int64) ([]models.PriceHistoryEntry, error) {
	query := `
		SELECT id, product_id, old_wholesale, new_wholesale, reason, created_at
		FROM price_history
		WHERE product_id = $1
		ORDER BY created_at DESC
	`

	rows, err := db.DB.QueryContext(ctx, query, productID)
	if err != nil {
		log.Printf("❌ ListByProduct: Error querying price history: %v", err)
		return nil, fmt.Errorf("failed to query price history: %w", err)
	}
	defer rows.Close()

	var entries []models.PriceHistoryEntry
	for rows.Next() {
		var entry models.PriceHistoryEntry
		err := rows.Scan(
			&entry.ID,
			&entry.ProductID,
			&entry.OldWholesale,
			&entry.NewWholesale,
			&entry.Reason,
			&entry.CreatedAt,
		)
		if err != nil {
			log.Printf("❌ ListByProduct: Error scanning history entry: %v", err)
			continue
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate price history: %w", err)
	}

	return entries, nil
}
