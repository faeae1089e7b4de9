package planner

import "time"

// RiskLevel is the coarse risk classification of a plan.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// stepDuration is a fixed per-step time heuristic, not a measurement.
const stepDuration = 5 * time.Second

// PlanEstimate is a coarse time and risk estimate for a plan.
type PlanEstimate struct {
	EstimatedTime time.Duration `json:"estimated_time_ms"`
	RiskLevel     RiskLevel     `json:"risk_level"`
}

// EstimatePlan derives a time and risk estimate from the plan's step
// count, gap count, and complexity. Risk starts low, escalates to
// medium when there is any gap or complexity exceeds 5, and to high
// when there are more than two gaps or complexity exceeds 7. High
// supersedes medium; the levels are not cumulative flags.
func (e *Engine) EstimatePlan(plan *ExecutionPlan) PlanEstimate {
	risk := RiskLevelLow
	if len(plan.Gaps) > 0 || plan.Complexity > 5 {
		risk = RiskLevelMedium
	}
	if len(plan.Gaps) > 2 || plan.Complexity > 7 {
		risk = RiskLevelHigh
	}

	return PlanEstimate{
		EstimatedTime: time.Duration(len(plan.Steps)) * stepDuration,
		RiskLevel:     risk,
	}
}
