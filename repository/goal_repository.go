package repository

import (
	"context"
	"fmt"
	"log"

	"padaria-backoffice/db"
	"padaria-backoffice/models"
	"padaria-backoffice/utils"
)

// GoalRepository handles database operations for daily production goals and
// peer evaluations
type GoalRepository struct{}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository() *GoalRepository {
	return &GoalRepository{}
}

// Ensure GoalRepository implements GoalRepositoryInterface
var _ GoalRepositoryInterface = (*GoalRepository)(nil)

// Upsert sets the goal for one product on one day
func (r *GoalRepository) Upsert(ctx context.Context, date string, productID int64, req *models.DailyGoalRequest) (*models.DailyGoal, error) {
	query := `
		INSERT INTO daily_goals (goal_date, product_id, target_units, produced_units)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (goal_date, product_id)
		DO UPDATE SET target_units = EXCLUDED.target_units, produced_units = EXCLUDED.produced_units
		RETURNING id
	`

	goal := &models.DailyGoal{
		GoalDate:      date,
		ProductID:     productID,
		TargetUnits:   req.TargetUnits,
		ProducedUnits: req.ProducedUnits,
	}

	err := db.DB.QueryRowContext(ctx, query, date, productID, req.TargetUnits, req.ProducedUnits).Scan(&goal.ID)
	if err != nil {
		log.Printf("❌ Upsert: Error upserting goal: %v", err)
		return nil, fmt.Errorf("failed to upsert goal: %w", err)
	}

	log.Printf("✅ Upsert: Goal for product %d on %s: %d/%d units", productID, date, req.ProducedUnits, req.TargetUnits)
	return goal, nil
}

// ListByDate retrieves all goals for a day
func (r *GoalRepository) ListByDate(ctx context.Context, date string) ([]models.DailyGoal, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT dg.id, dg.goal_date, dg.product_id, p.name, dg.target_units, dg.produced_units
		FROM daily_goals dg
		INNER JOIN products p ON dg.product_id = p.id
		WHERE dg.goal_date = $1
		ORDER BY p.name ASC
	`, date)
	if err != nil {
		log.Printf("❌ ListByDate: Error querying goals: %v", err)
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []models.DailyGoal
	for rows.Next() {
		var goal models.DailyGoal
		err := rows.Scan(&goal.ID, &goal.GoalDate, &goal.ProductID, &goal.ProductName, &goal.TargetUnits, &goal.ProducedUnits)
		if err != nil {
			log.Printf("❌ ListByDate: Error scanning goal: %v", err)
			continue
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goals: %w", err)
	}
	return goals, nil
}

// MonthlySummary aggregates goal attainment per product for one month
// (format YYYY-MM)
func (r *GoalRepository) MonthlySummary(ctx context.Context, month string) ([]models.GoalAttainment, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT dg.product_id, p.name, SUM(dg.target_units), SUM(dg.produced_units)
		FROM daily_goals dg
		INNER JOIN products p ON dg.product_id = p.id
		WHERE to_char(dg.goal_date, 'YYYY-MM') = $1
		GROUP BY dg.product_id, p.name
		ORDER BY p.name ASC
	`, month)
	if err != nil {
		log.Printf("❌ MonthlySummary: Error querying goal summary: %v", err)
		return nil, fmt.Errorf("failed to query goal summary: %w", err)
	}
	defer rows.Close()

	var summary []models.GoalAttainment
	for rows.Next() {
		var a models.GoalAttainment
		err := rows.Scan(&a.ProductID, &a.ProductName, &a.TargetUnits, &a.ProducedUnits)
		if err != nil {
			log.Printf("❌ MonthlySummary: Error scanning attainment: %v", err)
			continue
		}
		a.AttainmentPct = utils.AttainmentPct(a.ProducedUnits, a.TargetUnits)
		summary = append(summary, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goal summary: %w", err)
	}
	return summary, nil
}

// InsertEvaluation records one peer/leadership evaluation
func (r *GoalRepository) InsertEvaluation(ctx context.Context, eval *models.Evaluation) (*models.Evaluation, error) {
	for name, score := range map[string]int{
		"teamwork":    eval.Teamwork,
		"punctuality": eval.Punctuality,
		"quality":     eval.Quality,
		"leadership":  eval.Leadership,
	} {
		if score < 1 || score > 5 {
			return nil, fmt.Errorf("%s score must be between 1 and 5", name)
		}
	}

	err := db.DB.QueryRowContext(ctx, `
		INSERT INTO evaluations (employee_id, evaluator_id, eval_date, teamwork, punctuality, quality, leadership, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, eval.EmployeeID, eval.EvaluatorID, eval.EvalDate,
		eval.Teamwork, eval.Punctuality, eval.Quality, eval.Leadership, eval.Comment).
		Scan(&eval.ID)
	if err != nil {
		log.Printf("❌ InsertEvaluation: Error inserting evaluation: %v", err)
		return nil, fmt.Errorf("failed to record evaluation: %w", err)
	}

	log.Printf("✅ InsertEvaluation: Employee %d evaluated by %d", eval.EmployeeID, eval.EvaluatorID)
	return eval, nil
}

// EvaluationSummary averages an employee's scores per criterion
func (r *GoalRepository) EvaluationSummary(ctx context.Context, employeeID int64) (*models.EvaluationSummary, error) {
	summary := &models.EvaluationSummary{EmployeeID: employeeID}

	err := db.DB.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(teamwork), 0),
		       COALESCE(AVG(punctuality), 0),
		       COALESCE(AVG(quality), 0),
		       COALESCE(AVG(leadership), 0)
		FROM evaluations
		WHERE employee_id = $1
	`, employeeID).Scan(&summary.Count, &summary.AvgTeamwork, &summary.AvgPunctuality, &summary.AvgQuality, &summary.AvgLeadership)
	if err != nil {
		log.Printf("❌ EvaluationSummary: Error querying summary: %v", err)
		return nil, fmt.Errorf("failed to query evaluation summary: %w", err)
	}

	return summary, nil
}
