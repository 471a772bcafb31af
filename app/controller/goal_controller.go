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

// GoalController handles HTTP requests for daily production goals and
// employee evaluations
type GoalController struct {
	repository repository.GoalRepositoryInterface
}

// NewGoalController creates a new GoalController
func NewGoalController(repo repository.GoalRepositoryInterface) *GoalController {
	return &GoalController{repository: repo}
}

// UpsertGoal handles PUT /api/goals/{date}/{productId}
func (c *GoalController) UpsertGoal(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/goals/"), "/"), "/")
	if len(parts) != 2 {
		http.Error(w, "expected /api/goals/{date}/{productId}", http.StatusBadRequest)
		return
	}
	date := parts[0]
	if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	productID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || productID <= 0 {
		http.Error(w, fmt.Sprintf("invalid product id: %s", parts[1]), http.StatusBadRequest)
		return
	}

	var req models.DailyGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpsertGoal: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.TargetUnits < 0 || req.ProducedUnits < 0 {
		http.Error(w, "units cannot be negative", http.StatusBadRequest)
		return
	}

	goal, err := c.repository.Upsert(context.Background(), date, productID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("❌ UpsertGoal: Error upserting goal for product %d on %s: %v", productID, date, err)
		http.Error(w, fmt.Sprintf("Failed to save goal: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

// ListGoals handles GET /api/goals?date=YYYY-MM-DD
func (c *GoalController) ListGoals(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	goals, err := c.repository.ListByDate(context.Background(), date)
	if err != nil {
		log.Printf("❌ ListGoals: Error fetching goals for %s: %v", date, err)
		http.Error(w, fmt.Sprintf("Failed to fetch goals: %v", err), http.StatusInternalServerError)
		return
	}
	if goals == nil {
		goals = []models.DailyGoal{}
	}

	writeJSON(w, http.StatusOK, goals)
}

// MonthlyGoalSummary handles GET /api/goals/summary?month=YYYY-MM
func (c *GoalController) MonthlyGoalSummary(w http.ResponseWriter, r *http.Request) {
	month := strings.TrimSpace(r.URL.Query().Get("month"))
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		http.Error(w, "month must be YYYY-MM", http.StatusBadRequest)
		return
	}

	summary, err := c.repository.MonthlySummary(context.Background(), month)
	if err != nil {
		log.Printf("❌ MonthlyGoalSummary: Error for month %s: %v", month, err)
		http.Error(w, fmt.Sprintf("Failed to fetch goal summary: %v", err), http.StatusInternalServerError)
		return
	}
	if summary == nil {
		summary = []models.GoalAttainment{}
	}

	writeJSON(w, http.StatusOK, summary)
}

// CreateEvaluation handles POST /api/evaluations
func (c *GoalController) CreateEvaluation(w http.ResponseWriter, r *http.Request) {
	var eval models.Evaluation
	if err := json.NewDecoder(r.Body).Decode(&eval); err != nil {
		log.Printf("❌ CreateEvaluation: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if eval.EmployeeID <= 0 {
		http.Error(w, "employeeId is required", http.StatusBadRequest)
		return
	}
	if eval.EmployeeID == eval.EvaluatorID {
		http.Error(w, "an employee cannot evaluate themselves", http.StatusBadRequest)
		return
	}

	created, err := c.repository.InsertEvaluation(context.Background(), &eval)
	if err != nil {
		if strings.Contains(err.Error(), "score") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("❌ CreateEvaluation: Error saving evaluation: %v", err)
		http.Error(w, fmt.Sprintf("Failed to save evaluation: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetEvaluationSummary handles GET /api/evaluations/summary?employeeId=N
func (c *GoalController) GetEvaluationSummary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(r.URL.Query().Get("employeeId"), 10, 64)
	if err != nil || employeeID <= 0 {
		http.Error(w, "employeeId query parameter is required", http.StatusBadRequest)
		return
	}

	summary, err := c.repository.EvaluationSummary(context.Background(), employeeID)
	if err != nil {
		log.Printf("❌ GetEvaluationSummary: Error for employee %d: %v", employeeID, err)
		http.Error(w, fmt.Sprintf("Failed to fetch evaluation summary: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
