package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"padaria-backoffice/app/controller"
	"padaria-backoffice/metrics"
)

type Controllers struct {
	Product   *controller.ProductController
	Customer  *controller.CustomerController
	Order     *controller.OrderController
	Route     *controller.RouteController
	Employee  *controller.EmployeeController
	Goal      *controller.GoalController
	Purchase  *controller.PurchaseController
	Dashboard *controller.DashboardController
}

// healthHandler handles GET /health
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// statusRecorder captures the response status for the request counter
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps a handler and counts requests by handler name and status
func instrument(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		metrics.HTTPRequests.WithLabelValues(name, strconv.Itoa(rec.status)).Inc()
	}
}

func SetupRoutes(controllers *Controllers, metricsEnabled bool) {
	http.HandleFunc("/health", healthHandler)

	if metricsEnabled {
		http.Handle("/metrics", promhttp.Handler())
	}

	// Products
	http.HandleFunc("/api/products", instrument("products", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Product.ListProducts(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Product.CreateProduct(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// Product by id, plus price history and the affected-customers pair
	http.HandleFunc("/api/products/", instrument("products", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/products/")

		if strings.HasSuffix(path, "/affected-customers") {
			if r.Method == http.MethodGet {
				controllers.Product.GetAffectedCustomers(w, r)
			} else if r.Method == http.MethodPut {
				controllers.Product.ApplyAffectedCustomers(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}
		if strings.HasSuffix(path, "/price-history") {
			if r.Method == http.MethodGet {
				controllers.Product.GetPriceHistory(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		switch r.Method {
		case http.MethodGet:
			controllers.Product.GetProduct(w, r)
		case http.MethodPut:
			controllers.Product.UpdateProduct(w, r)
		case http.MethodDelete:
			controllers.Product.DeleteProduct(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// Customers
	http.HandleFunc("/api/customers", instrument("customers", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Customer.ListCustomers(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Customer.CreateCustomer(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// Customer by id and catalog subroutes
	http.HandleFunc("/api/customers/", instrument("customers", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/customers/")

		if strings.HasSuffix(path, "/catalog/export") {
			if r.Method == http.MethodGet {
				controllers.Customer.ExportCatalog(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}
		if strings.HasSuffix(path, "/catalog") {
			if r.Method == http.MethodGet {
				controllers.Customer.GetCatalog(w, r)
			} else if r.Method == http.MethodPost {
				controllers.Customer.AddCatalogEntry(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}
		// /:id/catalog/:entryId
		if strings.Contains(path, "/catalog/") {
			if r.Method == http.MethodPut {
				controllers.Customer.UpdateCatalogEntry(w, r)
			} else if r.Method == http.MethodDelete {
				controllers.Customer.DeleteCatalogEntry(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		switch r.Method {
		case http.MethodGet:
			controllers.Customer.GetCustomer(w, r)
		case http.MethodPut:
			controllers.Customer.UpdateCustomer(w, r)
		case http.MethodDelete:
			controllers.Customer.DeleteCustomer(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// Orders
	http.HandleFunc("/api/orders", instrument("orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Order.ListOrders(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Order.CreateOrder(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	http.HandleFunc("/api/orders/", instrument("orders", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/status") {
			if r.Method == http.MethodPut {
				controllers.Order.UpdateOrderStatus(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}
		if r.Method == http.MethodGet {
			controllers.Order.GetOrder(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}))

	// Delivery routes
	http.HandleFunc("/api/routes", instrument("routes", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Route.ListRoutes(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Route.CreateRoute(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	http.HandleFunc("/api/routes/", instrument("routes", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/reorder") {
			if r.Method == http.MethodPut {
				controllers.Route.ReorderRoute(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}
		if strings.HasSuffix(r.URL.Path, "/delivered") {
			if r.Method == http.MethodPut {
				controllers.Route.MarkStopDelivered(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}
		if r.Method == http.MethodGet {
			controllers.Route.GetRoute(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}))

	// Employees, timesheets, payslips
	http.HandleFunc("/api/employees", instrument("employees", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Employee.ListEmployees(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Employee.CreateEmployee(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	http.HandleFunc("/api/employees/", instrument("employees", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/timesheet") {
			if r.Method == http.MethodGet {
				controllers.Employee.GetTimesheetSummary(w, r)
			} else if r.Method == http.MethodPost {
				controllers.Employee.AddTimesheetEntry(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}
		if strings.HasSuffix(r.URL.Path, "/payslips") {
			if r.Method == http.MethodGet {
				controllers.Employee.ListPayslips(w, r)
			} else if r.Method == http.MethodPost {
				controllers.Employee.IssuePayslip(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		switch r.Method {
		case http.MethodGet:
			controllers.Employee.GetEmployee(w, r)
		case http.MethodPut:
			controllers.Employee.UpdateEmployee(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// Production goals
	http.HandleFunc("/api/goals", instrument("goals", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Goal.ListGoals(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	http.HandleFunc("/api/goals/summary", instrument("goals", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Goal.MonthlyGoalSummary(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// PUT /api/goals/:date/:productId
	http.HandleFunc("/api/goals/", instrument("goals", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			controllers.Goal.UpsertGoal(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}))

	// Evaluations
	http.HandleFunc("/api/evaluations", instrument("evaluations", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Goal.CreateEvaluation(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	http.HandleFunc("/api/evaluations/summary", instrument("evaluations", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Goal.GetEvaluationSummary(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// Purchases
	http.HandleFunc("/api/purchases", instrument("purchases", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Purchase.ListPurchases(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Purchase.CreatePurchase(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	http.HandleFunc("/api/purchases/", instrument("purchases", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			controllers.Purchase.DeletePurchase(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}))

	// Dashboard
	http.HandleFunc("/api/dashboard", instrument("dashboard", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Dashboard.GetSummary(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))
}
