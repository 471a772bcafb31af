package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"padaria-backoffice/models"
	"padaria-backoffice/repository"
)

// EmployeeController handles HTTP requests for employees, timesheets and
// payslips
type EmployeeController struct {
	repository repository.EmployeeRepositoryInterface
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(repo repository.EmployeeRepositoryInterface) *EmployeeController {
	return &EmployeeController{repository: repo}
}

func parseEmployeeID(path string) (int64, error) {
	trimmed := strings.TrimPrefix(path, "/api/employees/")
	idPart := strings.SplitN(trimmed, "/", 2)[0]
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid employee id: %s", idPart)
	}
	return id, nil
}

func validateEmployeeRequest(req *models.EmployeeRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if req.Salary < 0 {
		return fmt.Errorf("salary cannot be negative")
	}
	return nil
}

// ListEmployees handles GET /api/employees
func (c *EmployeeController) ListEmployees(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	employees, err := c.repository.List(context.Background(), activeOnly)
	if err != nil {
		log.Printf("❌ ListEmployees: Error fetching employees: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch employees: %v", err), http.StatusInternalServerError)
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	writeJSON(w, http.StatusOK, employees)
}

// GetEmployee handles GET /api/employees/{id}
func (c *EmployeeController) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := parseEmployeeID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	employee, err := c.repository.GetByID(context.Background(), id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Employee not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch employee: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

// CreateEmployee handles POST /api/employees
func (c *EmployeeController) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateEmployee: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := validateEmployeeRequest(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	employee, err := c.repository.Insert(context.Background(), &req)
	if err != nil {
		log.Printf("❌ CreateEmployee: Error creating employee: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create employee: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, employee)
}

// UpdateEmployee handles PUT /api/employees/{id}
func (c *EmployeeController) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := parseEmployeeID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateEmployee: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := validateEmployeeRequest(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	employee, err := c.repository.Update(context.Background(), id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Employee not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ UpdateEmployee: Error updating employee %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to update employee: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

// AddTimesheetEntry handles POST /api/employees/{id}/timesheet
func (c *EmployeeController) AddTimesheetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseEmployeeID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.TimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ AddTimesheetEntry: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	req.EmployeeID = id

	if _, err := time.Parse("2006-01-02", req.WorkDate); err != nil {
		http.Error(w, "workDate must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	entry, err := c.repository.AddTimesheetEntry(context.Background(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Employee not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ AddTimesheetEntry: Error recording shift for employee %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to record shift: %v", err), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// GetTimesheetSummary handles GET /api/employees/{id}/timesheet?month=YYYY-MM
func (c *EmployeeController) GetTimesheetSummary(w http.ResponseWriter, r *http.Request) {
	id, err := parseEmployeeID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	month := strings.TrimSpace(r.URL.Query().Get("month"))
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		http.Error(w, "month must be YYYY-MM", http.StatusBadRequest)
		return
	}

	summary, err := c.repository.GetTimesheetSummary(context.Background(), id, month)
	if err != nil {
		log.Printf("❌ GetTimesheetSummary: Error for employee %d month %s: %v", id, month, err)
		http.Error(w, fmt.Sprintf("Failed to fetch timesheet: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// IssuePayslip handles POST /api/employees/{id}/payslips
func (c *EmployeeController) IssuePayslip(w http.ResponseWriter, r *http.Request) {
	id, err := parseEmployeeID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.PayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ IssuePayslip: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	req.EmployeeID = id

	if _, err := time.Parse("2006-01", req.Period); err != nil {
		http.Error(w, "period must be YYYY-MM", http.StatusBadRequest)
		return
	}
	if req.Gross < 0 || req.Deductions < 0 {
		http.Error(w, "gross and deductions cannot be negative", http.StatusBadRequest)
		return
	}
	if req.Deductions > req.Gross {
		http.Error(w, "deductions cannot exceed gross", http.StatusBadRequest)
		return
	}

	payslip, err := c.repository.InsertPayslip(context.Background(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "already issued") {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Employee not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ IssuePayslip: Error issuing payslip for employee %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to issue payslip: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, payslip)
}

// ListPayslips handles GET /api/employees/{id}/payslips
func (c *EmployeeController) ListPayslips(w http.ResponseWriter, r *http.Request) {
	id, err := parseEmployeeID(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payslips, err := c.repository.ListPayslips(context.Background(), id)
	if err != nil {
		log.Printf("❌ ListPayslips: Error fetching payslips for employee %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to fetch payslips: %v", err), http.StatusInternalServerError)
		return
	}
	if payslips == nil {
		payslips = []models.Payslip{}
	}

	writeJSON(w, http.StatusOK, payslips)
}
