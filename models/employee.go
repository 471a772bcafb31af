package models

// Employee represents an employee in the database
type Employee struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	HiredAt  *string `json:"hiredAt"`
	Salary   float64 `json:"salary"`
	IsActive bool    `json:"isActive"`
}

// EmployeeRequest represents the request body for creating or updating an employee
type EmployeeRequest struct {
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	HiredAt  *string `json:"hiredAt"`
	Salary   float64 `json:"salary"`
	IsActive *bool   `json:"isActive"`
}

// TimesheetEntry represents one worked shift
type TimesheetEntry struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employeeId"`
	WorkDate   string  `json:"workDate"`
	ClockIn    string  `json:"clockIn"`
	ClockOut   string  `json:"clockOut"`
	Hours      float64 `json:"hours"`
}

// TimesheetRequest represents the request body for recording a shift
type TimesheetRequest struct {
	EmployeeID int64  `json:"employeeId"`
	WorkDate   string `json:"workDate"`
	ClockIn    string `json:"clockIn"`
	ClockOut   string `json:"clockOut"`
}

// TimesheetSummary wraps a month of entries with the worked-hours total
type TimesheetSummary struct {
	EmployeeID int64            `json:"employeeId"`
	Month      string           `json:"month"`
	TotalHours float64          `json:"totalHours"`
	Entries    []TimesheetEntry `json:"entries"`
}

// Payslip represents one issued payslip
type Payslip struct {
	ID         string  `json:"id"`
	EmployeeID int64   `json:"employeeId"`
	Period     string  `json:"period"`
	Gross      float64 `json:"gross"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
	IssuedAt   string  `json:"issuedAt"`
}

// PayslipRequest represents the request body for issuing a payslip
type PayslipRequest struct {
	EmployeeID int64   `json:"employeeId"`
	Period     string  `json:"period"`
	Gross      float64 `json:"gross"`
	Deductions float64 `json:"deductions"`
}
