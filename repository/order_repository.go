package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"padaria-backoffice/db"
	"padaria-backoffice/models"
	"padaria-backoffice/pricing"
)

// OrderRepository handles database operations for orders
type OrderRepository struct{}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// validStatusTransitions maps each order status to the statuses it may move to
var validStatusTransitions = map[string][]string{
	models.OrderStatusPending:    {models.OrderStatusDelivering, models.OrderStatusCancelled},
	models.OrderStatusDelivering: {models.OrderStatusDelivered, models.OrderStatusCancelled},
}

// Create creates an order with its lines in a single transaction. Each line's
// unit price is the customer's effective price at creation time: the catalog
// override if one exists, otherwise the product's wholesale price.
func (r *OrderRepository) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	log.Printf("📦 Create: Creating order for customer %d with %d lines", req.CustomerID, len(req.Lines))

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var order models.Order
	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (customer_id, delivery_date) VALUES ($1, $2)
		 RETURNING id, customer_id, delivery_date, status, total, created_at`,
		req.CustomerID, req.DeliveryDate).
		Scan(&order.ID, &order.CustomerID, &order.DeliveryDate, &order.Status, &order.Total, &order.CreatedAt)
	if err != nil {
		log.Printf("❌ Create: Error inserting order: %v", err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	var total float64
	for _, lineReq := range req.Lines {
		// Resolve the customer's effective price for this product
		var productName string
		var wholesale float64
		var customPrice sql.NullFloat64
		err = tx.QueryRowContext(ctx, `
			SELECT p.name, p.price_wholesale, cp.custom_price
			FROM products p
			LEFT JOIN customer_products cp ON cp.product_id = p.id AND cp.customer_id = $1
			WHERE p.id = $2 AND p.is_active = true
		`, req.CustomerID, lineReq.ProductID).Scan(&productName, &wholesale, &customPrice)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, fmt.Errorf("product %d not found or inactive", lineReq.ProductID)
			}
			return nil, fmt.Errorf("failed to resolve price for product %d: %w", lineReq.ProductID, err)
		}

		var override *float64
		if customPrice.Valid {
			price := customPrice.Float64
			override = &price
		}
		unitPrice := pricing.EffectivePrice(override, wholesale)

		var line models.OrderLine
		err = tx.QueryRowContext(ctx,
			`INSERT INTO order_lines (order_id, product_id, qty, unit_price) VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			order.ID, lineReq.ProductID, lineReq.Qty, unitPrice).
			Scan(&line.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order line: %w", err)
		}

		line.OrderID = order.ID
		line.ProductID = lineReq.ProductID
		line.ProductName = productName
		line.Qty = lineReq.Qty
		line.UnitPrice = unitPrice
		order.Lines = append(order.Lines, line)

		total += float64(lineReq.Qty) * unitPrice
	}

	_, err = tx.ExecContext(ctx, `UPDATE orders SET total = $1 WHERE id = $2`, total, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update order total: %w", err)
	}
	order.Total = total

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	log.Printf("✅ Create: Created order id=%d total=%.2f", order.ID, order.Total)
	return &order, nil
}

// List retrieves orders, optionally filtered by delivery date and status
func (r *OrderRepository) List(ctx context.Context, date, status string) ([]models.Order, error) {
	query := `
		SELECT o.id, o.customer_id, c.name, o.delivery_date, o.status, o.total, o.created_at
		FROM orders o
		INNER JOIN customers c ON o.customer_id = c.id
		WHERE 1=1
	`
	var args []interface{}
	argNum := 1

	if date != "" {
		query += fmt.Sprintf(" AND o.delivery_date = $%d", argNum)
		args = append(args, date)
		argNum++
	}
	if status != "" {
		query += fmt.Sprintf(" AND o.status = $%d", argNum)
		args = append(args, status)
		argNum++
	}
	query += " ORDER BY o.created_at DESC"

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ List: Error querying orders: %v", err)
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		err := rows.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.DeliveryDate, &o.Status, &o.Total, &o.CreatedAt)
		if err != nil {
			log.Printf("❌ List: Error scanning order: %v", err)
			continue
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

// GetByID retrieves a single order with its lines
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	err := db.DB.QueryRowContext(ctx, `
		SELECT o.id, o.customer_id, c.name, o.delivery_date, o.status, o.total, o.created_at
		FROM orders o
		INNER JOIN customers c ON o.customer_id = c.id
		WHERE o.id = $1
	`, id).Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.DeliveryDate, &o.Status, &o.Total, &o.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}

	rows, err := db.DB.QueryContext(ctx, `
		SELECT ol.id, ol.order_id, ol.product_id, p.name, ol.qty, ol.unit_price
		FROM order_lines ol
		INNER JOIN products p ON ol.product_id = p.id
		WHERE ol.order_id = $1
		ORDER BY ol.id ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line models.OrderLine
		err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID, &line.ProductName, &line.Qty, &line.UnitPrice)
		if err != nil {
			log.Printf("❌ GetByID: Error scanning order line: %v", err)
			continue
		}
		o.Lines = append(o.Lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order lines: %w", err)
	}

	return &o, nil
}

// UpdateStatus moves an order through its status lifecycle
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var current string
	err = tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("order not found")
		}
		return fmt.Errorf("failed to fetch order: %w", err)
	}

	allowed := false
	for _, next := range validStatusTransitions[current] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		log.Printf("❌ UpdateStatus: Invalid transition %s -> %s for order %d", current, status, id)
		return fmt.Errorf("invalid status transition: %s -> %s", current, status)
	}

	_, err = tx.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit status update: %w", err)
	}

	log.Printf("✅ UpdateStatus: Order %d moved %s -> %s", id, current, status)
	return nil
}
