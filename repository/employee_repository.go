package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"padaria-backoffice/db"
	"padaria-backoffice/models"
	"padaria-backoffice/utils"
)

// EmployeeRepository handles database operations for employees, timesheets
// and payslips
type EmployeeRepository struct{}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

// Ensure EmployeeRepository implements EmployeeRepositoryInterface
var _ EmployeeRepositoryInterface = (*EmployeeRepository)(nil)

const employeeColumns = `id, name, role, phone, email, hired_at, salary, is_active`

func scanEmployee(scanner interface{ Scan(...interface{}) error }) (*models.Employee, error) {
	var e models.Employee
	var hiredAt sql.NullString
	err := scanner.Scan(&e.ID, &e.Name, &e.Role, &e.Phone, &e.Email, &hiredAt, &e.Salary, &e.IsActive)
	if err != nil {
		return nil, err
	}
	if hiredAt.Valid {
		e.HiredAt = &hiredAt.String
	}
	return &e, nil
}

// List retrieves employees, optionally only active ones
func (r *EmployeeRepository) List(ctx context.Context, activeOnly bool) ([]models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name ASC`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ List: Error querying employees: %v", err)
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			log.Printf("❌ List: Error scanning employee: %v", err)
			continue
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

// GetByID retrieves a single employee
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	e, err := scanEmployee(db.DB.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("employee not found")
		}
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	return e, nil
}

// Insert creates a new employee
func (r *EmployeeRepository) Insert(ctx context.Context, req *models.EmployeeRequest) (*models.Employee, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var hiredAt sql.NullString
	if req.HiredAt != nil {
		hiredAt = sql.NullString{String: *req.HiredAt, Valid: true}
	}

	e, err := scanEmployee(db.DB.QueryRowContext(ctx,
		`INSERT INTO employees (name, role, phone, email, hired_at, salary, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+employeeColumns,
		req.Name, req.Role, req.Phone, req.Email, hiredAt, req.Salary, isActive))
	if err != nil {
		log.Printf("❌ Insert: Error creating employee: %v", err)
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	log.Printf("✅ Insert: Created employee id=%d name=%s", e.ID, e.Name)
	return e, nil
}

// Update saves employee fields
func (r *EmployeeRepository) Update(ctx context.Context, id int64, req *models.EmployeeRequest) (*models.Employee, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var hiredAt sql.NullString
	if req.HiredAt != nil {
		hiredAt = sql.NullString{String: *req.HiredAt, Valid: true}
	}

	e, err := scanEmployee(db.DB.QueryRowContext(ctx,
		`UPDATE employees
		 SET name = $1, role = $2, phone = $3, email = $4, hired_at = $5, salary = $6, is_active = $7
		 WHERE id = $8
		 RETURNING `+employeeColumns,
		req.Name, req.Role, req.Phone, req.Email, hiredAt, req.Salary, isActive, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("employee not found")
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	log.Printf("✅ Update: Saved employee id=%d name=%s", e.ID, e.Name)
	return e, nil
}

// AddTimesheetEntry records one worked shift
func (r *EmployeeRepository) AddTimesheetEntry(ctx context.Context, req *models.TimesheetRequest) (*models.TimesheetEntry, error) {
	hours, err := utils.WorkedHours(req.ClockIn, req.ClockOut)
	if err != nil {
		return nil, err
	}

	var entry models.TimesheetEntry
	err = db.DB.QueryRowContext(ctx,
		`INSERT INTO timesheet_entries (employee_id, work_date, clock_in, clock_out)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, employee_id, work_date, clock_in, clock_out`,
		req.EmployeeID, req.WorkDate, req.ClockIn, req.ClockOut).
		Scan(&entry.ID, &entry.EmployeeID, &entry.WorkDate, &entry.ClockIn, &entry.ClockOut)
	if err != nil {
		log.Printf("❌ AddTimesheetEntry: Error inserting entry: %v", err)
		return nil, fmt.Errorf("failed to record timesheet entry: %w", err)
	}
	entry.Hours = hours

	log.Printf("✅ AddTimesheetEntry: Employee %d worked %.2fh on %s", req.EmployeeID, hours, req.WorkDate)
	return &entry, nil
}

// GetTimesheetSummary retrieves one month of entries with the worked-hours
// total. Month format: YYYY-MM.
func (r *EmployeeRepository) GetTimesheetSummary(ctx context.Context, employeeID int64, month string) (*models.TimesheetSummary, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT id, employee_id, work_date, to_char(clock_in, 'HH24:MI'), to_char(clock_out, 'HH24:MI')
		FROM timesheet_entries
		WHERE employee_id = $1 AND to_char(work_date, 'YYYY-MM') = $2
		ORDER BY work_date ASC, clock_in ASC
	`, employeeID, month)
	if err != nil {
		log.Printf("❌ GetTimesheetSummary: Error querying entries: %v", err)
		return nil, fmt.Errorf("failed to query timesheet entries: %w", err)
	}
	defer rows.Close()

	summary := &models.TimesheetSummary{
		EmployeeID: employeeID,
		Month:      month,
		Entries:    []models.TimesheetEntry{},
	}

	for rows.Next() {
		var entry models.TimesheetEntry
		err := rows.Scan(&entry.ID, &entry.EmployeeID, &entry.WorkDate, &entry.ClockIn, &entry.ClockOut)
		if err != nil {
			log.Printf("❌ GetTimesheetSummary: Error scanning entry: %v", err)
			continue
		}

		hours, err := utils.WorkedHours(entry.ClockIn, entry.ClockOut)
		if err != nil {
			log.Printf("⚠️  GetTimesheetSummary: Skipping entry %d with bad times: %v", entry.ID, err)
			continue
		}
		entry.Hours = hours
		summary.TotalHours += hours
		summary.Entries = append(summary.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timesheet entries: %w", err)
	}

	return summary, nil
}

// InsertPayslip issues a payslip for one employee and period
func (r *EmployeeRepository) InsertPayslip(ctx context.Context, req *models.PayslipRequest) (*models.Payslip, error) {
	slip := &models.Payslip{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		Period:     req.Period,
		Gross:      req.Gross,
		Deductions: req.Deductions,
		Net:        req.Gross - req.Deductions,
	}

	err := db.DB.QueryRowContext(ctx,
		`INSERT INTO payslips (id, employee_id, period, gross, deductions, net)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING issued_at`,
		slip.ID, slip.EmployeeID, slip.Period, slip.Gross, slip.Deductions, slip.Net).
		Scan(&slip.IssuedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, fmt.Errorf("payslip already issued for employee %d period %s", req.EmployeeID, req.Period)
		}
		log.Printf("❌ InsertPayslip: Error issuing payslip: %v", err)
		return nil, fmt.Errorf("failed to issue payslip: %w", err)
	}

	log.Printf("✅ InsertPayslip: Issued payslip %s for employee %d period %s", slip.ID, slip.EmployeeID, slip.Period)
	return slip, nil
}

// ListPayslips retrieves an employee's payslips, newest period first
func (r *EmployeeRepository) ListPayslips(ctx context.Context, employeeID int64) ([]models.Payslip, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT id, employee_id, period, gross, deductions, net, issued_at
		FROM payslips
		WHERE employee_id = $1
		ORDER BY period DESC
	`, employeeID)
	if err != nil {
		log.Printf("❌ ListPayslips: Error querying payslips: %v", err)
		return nil, fmt.Errorf("failed to query payslips: %w", err)
	}
	defer rows.Close()

	var slips []models.Payslip
	for rows.Next() {
		var slip models.Payslip
		err := rows.Scan(&slip.ID, &slip.EmployeeID, &slip.Period, &slip.Gross, &slip.Deductions, &slip.Net, &slip.IssuedAt)
		if err != nil {
			log.Printf("❌ ListPayslips: Error scanning payslip: %v", err)
			continue
		}
		slips = append(slips, slip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payslips: %w", err)
	}
	return slips, nil
}
