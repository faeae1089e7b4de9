package planner

import "fmt"

// ValidationResult is the outcome of ValidatePlan.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// ValidatePlan checks a plan for self-consistency. It is advisory: the
// engine does not invoke it automatically, and an invalid plan is still
// a plan. Checks, in order:
//
//  1. a plan with no steps must explain itself through gaps
//  2. every step must carry a resolved skill reference
//  3. a step's index-based dependencies must all point at earlier steps
func (e *Engine) ValidatePlan(plan *ExecutionPlan) ValidationResult {
	issues := []string{}

	if len(plan.Steps) == 0 && len(plan.Gaps) == 0 {
		issues = append(issues, "plan has no steps and no identified gaps")
	}

	for _, step := range plan.Steps {
		if step.Skill == nil {
			issues = append(issues, fmt.Sprintf(
				"step %d references missing skill %q", step.Order, step.SkillKey))
		}
	}

	for _, step := range plan.Steps {
		for _, dep := range step.Dependencies {
			if dep >= step.Order {
				issues = append(issues, fmt.Sprintf(
					"step %d has a forward dependency on step %d (possible circular dependency)",
					step.Order, dep))
			}
		}
	}

	return ValidationResult{Valid: len(issues) == 0, Issues: issues}
}
