package models

// DailyGoal represents a production goal for one product on one day
type DailyGoal struct {
	ID            int64  `json:"id"`
	GoalDate      string `json:"goalDate"`
	ProductID     int64  `json:"productId"`
	ProductName   string `json:"productName"`
	TargetUnits   int    `json:"targetUnits"`
	ProducedUnits int    `json:"producedUnits"`
}

// DailyGoalRequest represents the request body for upserting a daily goal
type DailyGoalRequest struct {
	TargetUnits   int `json:"targetUnits"`
	ProducedUnits int `json:"producedUnits"`
}

// GoalAttainment aggregates one product's goal attainment over a month
type GoalAttainment struct {
	ProductID     int64   `json:"productId"`
	ProductName   string  `json:"productName"`
	TargetUnits   int     `json:"targetUnits"`
	ProducedUnits int     `json:"producedUnits"`
	AttainmentPct float64 `json:"attainmentPct"`
}

// Evaluation represents one peer/leadership evaluation (scores 1-5)
type Evaluation struct {
	ID          int64  `json:"id"`
	EmployeeID  int64  `json:"employeeId"`
	EvaluatorID int64  `json:"evaluatorId"`
	EvalDate    string `json:"evalDate"`
	Teamwork    int    `json:"teamwork"`
	Punctuality int    `json:"punctuality"`
	Quality     int    `json:"quality"`
	Leadership  int    `json:"leadership"`
	Comment     string `json:"comment"`
}

// EvaluationSummary averages an employee's scores per criterion
type EvaluationSummary struct {
	EmployeeID     int64   `json:"employeeId"`
	Count          int     `json:"count"`
	AvgTeamwork    float64 `json:"avgTeamwork"`
	AvgPunctuality float64 `json:"avgPunctuality"`
	AvgQuality     float64 `json:"avgQuality"`
	AvgLeadership  float64 `json:"avgLeadership"`
}
