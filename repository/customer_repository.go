package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"padaria-backoffice/db"
	"padaria-backoffice/models"
)

// CustomerRepository handles database operations for customers
type CustomerRepository struct{}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// Ensure CustomerRepository implements CustomerRepositoryInterface
var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)

const customerColumns = `id, name, trade_name, phone, email, address, neighborhood, is_active, created_at`

func scanCustomer(scanner interface{ Scan(...interface{}) error }) (*models.Customer, error) {
	var c models.Customer
	err := scanner.Scan(
		&c.ID,
		&c.Name,
		&c.TradeName,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.Neighborhood,
		&c.IsActive,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List retrieves customers, optionally only active ones
func (r *CustomerRepository) List(ctx context.Context, activeOnly bool) ([]models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name ASC`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ List: Error querying customers: %v", err)
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			log.Printf("❌ List: Error scanning customer: %v", err)
			continue
		}
		customers = append(customers, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, nil
}

// GetByID retrieves a single customer
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	c, err := scanCustomer(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("customer not found")
		}
		log.Printf("❌ GetByID: Error fetching customer %d: %v", id, err)
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	return c, nil
}

// Insert creates a new customer
func (r *CustomerRepository) Insert(ctx context.Context, req *models.CustomerRequest) (*models.Customer, error) {
	query := `
		INSERT INTO customers (name, trade_name, phone, email, address, neighborhood, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + customerColumns

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	c, err := scanCustomer(db.DB.QueryRowContext(ctx, query,
		req.Name, req.TradeName, req.Phone, req.Email, req.Address, req.Neighborhood, isActive))
	if err != nil {
		log.Printf("❌ Insert: Error creating customer: %v", err)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	log.Printf("✅ Insert: Created customer id=%d name=%s", c.ID, c.Name)
	return c, nil
}

// Update saves customer fields
func (r *CustomerRepository) Update(ctx context.Context, id int64, req *models.CustomerRequest) (*models.Customer, error) {
	query := `
		UPDATE customers
		SET name = $1, trade_name = $2, phone = $3, email = $4, address = $5, neighborhood = $6, is_active = $7
		WHERE id = $8
		RETURNING ` + customerColumns

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	c, err := scanCustomer(db.DB.QueryRowContext(ctx, query,
		req.Name, req.TradeName, req.Phone, req.Email, req.Address, req.Neighborhood, isActive, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("customer not found")
		}
		log.Printf("❌ Update: Error updating customer %d: %v", id, err)
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	log.Printf("✅ Update: Saved customer id=%d name=%s", c.ID, c.Name)
	return c, nil
}

// Deactivate soft-deletes a customer
func (r *CustomerRepository) Deactivate(ctx context.Context, id int64) error {
	result, err := db.DB.ExecContext(ctx, `UPDATE customers SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate customer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deactivate result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("customer not found")
	}

	log.Printf("✅ Deactivate: Customer %d deactivated", id)
	return nil
}
