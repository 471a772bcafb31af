package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"padaria-backoffice/db"
	"padaria-backoffice/models"
)

// DeliveryRouteRepository handles database operations for delivery routes
type DeliveryRouteRepository struct{}

// NewDeliveryRouteRepository creates a new DeliveryRouteRepository
func NewDeliveryRouteRepository() *DeliveryRouteRepository {
	return &DeliveryRouteRepository{}
}

// Ensure DeliveryRouteRepository implements DeliveryRouteRepositoryInterface
var _ DeliveryRouteRepositoryInterface = (*DeliveryRouteRepository)(nil)

// validatePermutation checks that requested is exactly a permutation of
// existing. The reorder endpoint must receive every stop exactly once.
func validatePermutation(existing, requested []int64) error {
	if len(requested) != len(existing) {
		return fmt.Errorf("reorder must list all %d stops, got %d", len(existing), len(requested))
	}

	seen := make(map[int64]bool, len(existing))
	for _, id := range existing {
		seen[id] = false
	}
	for _, id := range requested {
		done, ok := seen[id]
		if !ok {
			return fmt.Errorf("stop %d does not belong to this route", id)
		}
		if done {
			return fmt.Errorf("stop %d listed more than once", id)
		}
		seen[id] = true
	}
	return nil
}

// Create creates a route with one stop per order, in the given order
func (r *DeliveryRouteRepository) Create(ctx context.Context, req *models.CreateRouteRequest) (*models.DeliveryRoute, error) {
	log.Printf("🚚 Create: Creating route for %s with %d stops", req.RouteDate, len(req.OrderIDs))

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var route models.DeliveryRoute
	err = tx.QueryRowContext(ctx,
		`INSERT INTO delivery_routes (route_date, driver, vehicle) VALUES ($1, $2, $3)
		 RETURNING id, route_date, driver, vehicle, created_at`,
		req.RouteDate, req.Driver, req.Vehicle).
		Scan(&route.ID, &route.RouteDate, &route.Driver, &route.Vehicle, &route.CreatedAt)
	if err != nil {
		log.Printf("❌ Create: Error inserting route: %v", err)
		return nil, fmt.Errorf("failed to create route: %w", err)
	}

	for i, orderID := range req.OrderIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO route_stops (route_id, order_id, position) VALUES ($1, $2, $3)`,
			route.ID, orderID, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to add stop for order %d: %w", orderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit route: %w", err)
	}

	log.Printf("✅ Create: Created route id=%d", route.ID)
	return r.GetByID(ctx, route.ID)
}

// ListByDate retrieves all routes for a day, stops included
func (r *DeliveryRouteRepository) ListByDate(ctx context.Context, date string) ([]models.DeliveryRoute, error) {
	rows, err := db.DB.QueryContext(ctx,
		`SELECT id, route_date, driver, vehicle, created_at FROM delivery_routes WHERE route_date = $1 ORDER BY id ASC`,
		date)
	if err != nil {
		log.Printf("❌ ListByDate: Error querying routes: %v", err)
		return nil, fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	var routes []models.DeliveryRoute
	for rows.Next() {
		var route models.DeliveryRoute
		err := rows.Scan(&route.ID, &route.RouteDate, &route.Driver, &route.Vehicle, &route.CreatedAt)
		if err != nil {
			log.Printf("❌ ListByDate: Error scanning route: %v", err)
			continue
		}
		routes = append(routes, route)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate routes: %w", err)
	}

	for i := range routes {
		stops, err := r.getStops(ctx, routes[i].ID)
		if err != nil {
			return nil, err
		}
		routes[i].Stops = stops
	}

	return routes, nil
}

// GetByID retrieves a single route with its ordered stops
func (r *DeliveryRouteRepository) GetByID(ctx context.Context, id int64) (*models.DeliveryRoute, error) {
	var route models.DeliveryRoute
	err := db.DB.QueryRowContext(ctx,
		`SELECT id, route_date, driver, vehicle, created_at FROM delivery_routes WHERE id = $1`, id).
		Scan(&route.ID, &route.RouteDate, &route.Driver, &route.Vehicle, &route.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("route not found")
		}
		return nil, fmt.Errorf("failed to fetch route: %w", err)
	}

	stops, err := r.getStops(ctx, id)
	if err != nil {
		return nil, err
	}
	route.Stops = stops
	return &route, nil
}

func (r *DeliveryRouteRepository) getStops(ctx context.Context, routeID int64) ([]models.RouteStop, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT rs.id, rs.route_id, rs.order_id, rs.position, c.name, c.address, c.neighborhood, rs.delivered_at
		FROM route_stops rs
		INNER JOIN orders o ON rs.order_id = o.id
		INNER JOIN customers c ON o.customer_id = c.id
		WHERE rs.route_id = $1
		ORDER BY rs.position ASC
	`, routeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query route stops: %w", err)
	}
	defer rows.Close()

	var stops []models.RouteStop
	for rows.Next() {
		var stop models.RouteStop
		var deliveredAt sql.NullString
		err := rows.Scan(&stop.ID, &stop.RouteID, &stop.OrderID, &stop.Position,
			&stop.CustomerName, &stop.Address, &stop.Neighborhood, &deliveredAt)
		if err != nil {
			log.Printf("❌ getStops: Error scanning stop: %v", err)
			continue
		}
		if deliveredAt.Valid {
			stop.DeliveredAt = &deliveredAt.String
		}
		stops = append(stops, stop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate route stops: %w", err)
	}
	return stops, nil
}

// Reorder rewrites stop positions from the given full permutation of stop
// ids, in a single transaction. The unique (route_id, position) constraint is
// deferred, so intermediate states during the rewrite are fine.
func (r *DeliveryRouteRepository) Reorder(ctx context.Context, routeID int64, stopIDs []int64) error {
	log.Printf("🚚 Reorder: Reordering %d stops on route %d", len(stopIDs), routeID)

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM route_stops WHERE route_id = $1 FOR UPDATE`, routeID)
	if err != nil {
		return fmt.Errorf("failed to lock route stops: %w", err)
	}

	var existing []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan stop id: %w", err)
		}
		existing = append(existing, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("failed to iterate stop ids: %w", err)
	}
	rows.Close()

	if len(existing) == 0 {
		return fmt.Errorf("route not found or has no stops")
	}

	if err := validatePermutation(existing, stopIDs); err != nil {
		log.Printf("❌ Reorder: Invalid permutation for route %d: %v", routeID, err)
		return fmt.Errorf("invalid stop permutation: %w", err)
	}

	for i, stopID := range stopIDs {
		_, err := tx.ExecContext(ctx,
			`UPDATE route_stops SET position = $1 WHERE id = $2 AND route_id = $3`,
			i+1, stopID, routeID)
		if err != nil {
			return fmt.Errorf("failed to reposition stop %d: %w", stopID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}

	log.Printf("✅ Reorder: Route %d reordered", routeID)
	return nil
}

// MarkDelivered stamps one stop as delivered
func (r *DeliveryRouteRepository) MarkDelivered(ctx context.Context, routeID, stopID int64) error {
	result, err := db.DB.ExecContext(ctx,
		`UPDATE route_stops SET delivered_at = NOW() WHERE id = $1 AND route_id = $2 AND delivered_at IS NULL`,
		stopID, routeID)
	if err != nil {
		return fmt.Errorf("failed to mark stop delivered: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delivery result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("stop not found or already delivered")
	}

	log.Printf("✅ MarkDelivered: Stop %d on route %d delivered", stopID, routeID)
	return nil
}
