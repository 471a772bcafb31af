package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"padaria-backoffice/models"
	"padaria-backoffice/utils"
)

// ExportService builds spreadsheet exports for back-office screens
type ExportService struct{}

// NewExportService creates a new ExportService
func NewExportService() *ExportService {
	return &ExportService{}
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// CustomerPriceList renders a customer's personalized price catalog as an
// .xlsx workbook
func (s *ExportService) CustomerPriceList(ctx context.Context, customer *models.Customer, entries []models.CustomerProduct) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("⚠️  CustomerPriceList: Error closing workbook: %v", err)
		}
	}()

	sheet := "Tabela de Preços"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	title := customer.Name
	if customer.TradeName != "" {
		title = fmt.Sprintf("%s (%s)", customer.Name, customer.TradeName)
	}
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, fmt.Errorf("failed to write title: %w", err)
	}

	headers := []string{"Produto", "Preço de tabela", "Preço do cliente", "Preço especial"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, entry := range entries {
		row := i + 4
		custom := ""
		if entry.HasCustomPrice {
			custom = "sim"
		}
		values := []interface{}{
			entry.ProductName,
			utils.FormatBRL(entry.ProductPrice),
			utils.FormatBRL(entry.EffectivePrice),
			custom,
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	log.Printf("✅ CustomerPriceList: Exported %d catalog entries for customer %d", len(entries), customer.ID)
	return buf.Bytes(), nil
}
