package service

import (
	"context"

	"padaria-backoffice/models"
)

// ExportServiceInterface defines the contract for spreadsheet exports
type ExportServiceInterface interface {
	CustomerPriceList(ctx context.Context, customer *models.Customer, entries []models.CustomerProduct) ([]byte, error)
}
