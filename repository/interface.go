package repository

import (
	"context"

	"padaria-backoffice/models"
	"padaria-backoffice/pricing"
)

// ProductRepositoryInterface defines the contract for product repository operations
type ProductRepositoryInterface interface {
	List(ctx context.Context, params models.ProductFilterParams) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Insert(ctx context.Context, req *models.ProductRequest) (*models.Product, error)
	Update(ctx context.Context, id int64, req *models.ProductRequest) (*models.Product, error)
	Deactivate(ctx context.Context, id int64) error
}

// PriceHistoryRepositoryInterface defines the contract for price history operations
type PriceHistoryRepositoryInterface interface {
	ListByProduct(ctx context.Context, productID int64) ([]models.PriceHistoryEntry, error)
}

// CustomerRepositoryInterface defines the contract for customer repository operations
type CustomerRepositoryInterface interface {
	List(ctx context.Context, activeOnly bool) ([]models.Customer, error)
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	Insert(ctx context.Context, req *models.CustomerRequest) (*models.Customer, error)
	Update(ctx context.Context, id int64, req *models.CustomerRequest) (*models.Customer, error)
	Deactivate(ctx context.Context, id int64) error
}

// CustomerProductRepositoryInterface defines the contract for per-customer
// catalog overrides, including the price-change reconciliation pass
type CustomerProductRepositoryInterface interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]models.CustomerProduct, error)
	Insert(ctx context.Context, customerID int64, req *models.CatalogEntryRequest) (*models.CustomerProduct, error)
	UpdatePrice(ctx context.Context, id string, customPrice *float64) error
	Delete(ctx context.Context, id string) error
	ListAffectedCustomers(ctx context.Context, productID int64) ([]models.AffectedCustomer, error)
	ApplyReconciliation(ctx context.Context, productID int64, updates []models.CustomerUpdate) (pricing.Summary, error)
}

// OrderRepositoryInterface defines the contract for order repository operations
type OrderRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	List(ctx context.Context, date, status string) ([]models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// DeliveryRouteRepositoryInterface defines the contract for delivery route operations
type DeliveryRouteRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateRouteRequest) (*models.DeliveryRoute, error)
	ListByDate(ctx context.Context, date string) ([]models.DeliveryRoute, error)
	GetByID(ctx context.Context, id int64) (*models.DeliveryRoute, error)
	Reorder(ctx context.Context, routeID int64, stopIDs []int64) error
	MarkDelivered(ctx context.Context, routeID, stopID int64) error
}

// EmployeeRepositoryInterface defines the contract for HR operations
type EmployeeRepositoryInterface interface {
	List(ctx context.Context, activeOnly bool) ([]models.Employee, error)
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	Insert(ctx context.Context, req *models.EmployeeRequest) (*models.Employee, error)
	Update(ctx context.Context, id int64, req *models.EmployeeRequest) (*models.Employee, error)
	AddTimesheetEntry(ctx context.Context, req *models.TimesheetRequest) (*models.TimesheetEntry, error)
	GetTimesheetSummary(ctx context.Context, employeeID int64, month string) (*models.TimesheetSummary, error)
	InsertPayslip(ctx context.Context, req *models.PayslipRequest) (*models.Payslip, error)
	ListPayslips(ctx context.Context, employeeID int64) ([]models.Payslip, error)
}

// GoalRepositoryInterface defines the contract for production goals and evaluations
type GoalRepositoryInterface interface {
	Upsert(ctx context.Context, date string, productID int64, req *models.DailyGoalRequest) (*models.DailyGoal, error)
	ListByDate(ctx context.Context, date string) ([]models.DailyGoal, error)
	MonthlySummary(ctx context.Context, month string) ([]models.GoalAttainment, error)
	InsertEvaluation(ctx context.Context, eval *models.Evaluation) (*models.Evaluation, error)
	EvaluationSummary(ctx context.Context, employeeID int64) (*models.EvaluationSummary, error)
}

// PurchaseRepositoryInterface defines the contract for purchase operations
type PurchaseRepositoryInterface interface {
	Insert(ctx context.Context, req *models.PurchaseRequest) (*models.Purchase, error)
	List(ctx context.Context, from, to string) ([]models.Purchase, error)
	Delete(ctx context.Context, id int64) error
}

// DashboardRepositoryInterface defines the contract for KPI aggregation
type DashboardRepositoryInterface interface {
	Summary(ctx context.Context, from, to string) (*models.DashboardSummary, error)
}
