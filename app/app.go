package app

import (
	"fmt"

	"padaria-backoffice/app/controller"
	"padaria-backoffice/app/router"
	"padaria-backoffice/config"
	"padaria-backoffice/db"
	"padaria-backoffice/repository"
	"padaria-backoffice/service"
)

// Initialize initializes the application
func Initialize(cfg config.Config) error {
	// Initialize database connection
	if err := db.InitDB(cfg.Postgres.DSN); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Apply pending schema migrations
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository()
	priceHistoryRepo := repository.NewPriceHistoryRepository()
	customerRepo := repository.NewCustomerRepository()
	customerProductRepo := repository.NewCustomerProductRepository()
	orderRepo := repository.NewOrderRepository()
	routeRepo := repository.NewDeliveryRouteRepository()
	employeeRepo := repository.NewEmployeeRepository()
	goalRepo := repository.NewGoalRepository()
	purchaseRepo := repository.NewPurchaseRepository()
	dashboardRepo := repository.NewDashboardRepository()

	// Initialize services
	exportService := service.NewExportService()

	// Create controllers
	controllers := &router.Controllers{
		Product:   controller.NewProductController(productRepo, priceHistoryRepo, customerProductRepo),
		Customer:  controller.NewCustomerController(customerRepo, customerProductRepo, exportService),
		Order:     controller.NewOrderController(orderRepo),
		Route:     controller.NewRouteController(routeRepo),
		Employee:  controller.NewEmployeeController(employeeRepo),
		Goal:      controller.NewGoalController(goalRepo),
		Purchase:  controller.NewPurchaseController(purchaseRepo),
		Dashboard: controller.NewDashboardController(dashboardRepo),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers, cfg.Metrics.Enabled)

	return nil
}
