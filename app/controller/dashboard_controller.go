package controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"padaria-backoffice/repository"
)

// DashboardController handles HTTP requests for the KPI dashboard
type DashboardController struct {
	repository repository.DashboardRepositoryInterface
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(repo repository.DashboardRepositoryInterface) *DashboardController {
	return &DashboardController{repository: repo}
}

// GetSummary handles GET /api/dashboard?from=YYYY-MM-DD&to=YYYY-MM-DD
// Defaults to the current month when no range is given.
func (c *DashboardController) GetSummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))
	if from == "" {
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	}
	if to == "" {
		to = now.Format("2006-01-02")
	}
	for _, d := range []string{from, to} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			http.Error(w, "from and to must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	summary, err := c.repository.Summary(context.Background(), from, to)
	if err != nil {
		log.Printf("❌ GetSummary: Error aggregating dashboard %s..%s: %v", from, to, err)
		http.Error(w, fmt.Sprintf("Failed to build dashboard: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
