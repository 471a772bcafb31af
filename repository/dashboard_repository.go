package repository

import (
	"context"
	"fmt"
	"log"

	"padaria-backoffice/db"
	"padaria-backoffice/models"
)

// DashboardRepository aggregates financial KPIs for the admin dashboard
type DashboardRepository struct{}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository() *DashboardRepository {
	return &DashboardRepository{}
}

// Ensure DashboardRepository implements DashboardRepositoryInterface
var _ DashboardRepositoryInterface = (*DashboardRepository)(nil)

// Summary aggregates revenue (delivered orders), order count, purchases total
// and top products for a period (dates inclusive, format YYYY-MM-DD)
func (r *DashboardRepository) Summary(ctx context.Context, from, to string) (*models.DashboardSummary, error) {
	log.Printf("📊 Summary: Aggregating KPIs %s .. %s", from, to)

	summary := &models.DashboardSummary{
		From:        from,
		To:          to,
		TopProducts: []models.TopProduct{},
	}

	err := db.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM orders
		WHERE status = 'delivered' AND delivery_date BETWEEN $1 AND $2
	`, from, to).Scan(&summary.Revenue, &summary.OrderCount)
	if err != nil {
		log.Printf("❌ Summary: Error aggregating orders: %v", err)
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}

	err = db.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total), 0)
		FROM purchases
		WHERE purchase_date BETWEEN $1 AND $2
	`, from, to).Scan(&summary.PurchasesTotal)
	if err != nil {
		log.Printf("❌ Summary: Error aggregating purchases: %v", err)
		return nil, fmt.Errorf("failed to aggregate purchases: %w", err)
	}

	summary.Margin = summary.Revenue - summary.PurchasesTotal

	rows, err := db.DB.QueryContext(ctx, `
		SELECT ol.product_id, p.name, SUM(ol.qty) AS qty
		FROM order_lines ol
		INNER JOIN orders o ON ol.order_id = o.id
		INNER JOIN products p ON ol.product_id = p.id
		WHERE o.status = 'delivered' AND o.delivery_date BETWEEN $1 AND $2
		GROUP BY ol.product_id, p.name
		ORDER BY qty DESC
		LIMIT 5
	`, from, to)
	if err != nil {
		log.Printf("❌ Summary: Error querying top products: %v", err)
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tp models.TopProduct
		if err := rows.Scan(&tp.ProductID, &tp.ProductName, &tp.Qty); err != nil {
			log.Printf("❌ Summary: Error scanning top product: %v", err)
			continue
		}
		summary.TopProducts = append(summary.TopProducts, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top products: %w", err)
	}

	return summary, nil
}
