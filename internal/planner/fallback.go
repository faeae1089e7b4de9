package planner

import (
	"fmt"
	"strings"

	"github.com/salescopilot/copilot/internal/goal"
	"github.com/salescopilot/copilot/internal/skill"
	"github.com/salescopilot/copilot/internal/types"
)

// fallbackPlan is the deterministic rule-based planner, invoked when the
// AI client fails. It keyword-matches skills against the goal and chains
// the first few relevant ones into a strictly linear plan.
func (e *Engine) fallbackPlan(g goal.Goal, availableSkills []skill.Skill, planContext map[string]any) *ExecutionPlan {
	relevant := matchSkills(g, availableSkills)

	if len(relevant) == 0 {
		capability := "Requested action"
		if g.Intent != "" {
			capability = g.Intent.String()
		}
		return &ExecutionPlan{
			ID:    types.NewID(),
			Goal:  g,
			Steps: []PlannedStep{},
			Gaps: []SkillGap{{
				Capability:  capability,
				Requirement: fmt.Sprintf("No available skills matched %q", g.Text()),
				Suggestion:  "Rephrase the request or ask your administrator about additional skills.",
			}},
			Complexity: 1,
			CreatedAt:  e.now(),
		}
	}

	if len(relevant) > e.maxFallbackSteps {
		relevant = relevant[:e.maxFallbackSteps]
	}

	steps := make([]PlannedStep, 0, len(relevant))
	for i, s := range relevant {
		purpose := s.Frontmatter.Description
		if purpose == "" {
			purpose = "Execute " + s.DisplayName()
		}

		dependencies := []int{}
		if i > 0 {
			dependencies = []int{i - 1}
		}

		steps = append(steps, PlannedStep{
			SkillKey: s.Key,
			Skill:    s,
			Purpose:  purpose,
			// Unlike the AI path's selective mapping, the fallback
			// passes the whole ambient context through to every step.
			InputContext: planContext,
			OutputKeys:   s.Frontmatter.Outputs,
			Dependencies: dependencies,
			Status:       StepStatusPending,
		})
	}

	steps = orderSteps(steps)

	names := make([]string, len(steps))
	for i, step := range steps {
		names[i] = step.Skill.DisplayName()
	}

	return &ExecutionPlan{
		ID:            types.NewID(),
		Goal:          g,
		Steps:         steps,
		Gaps:          []SkillGap{},
		CanAccomplish: fmt.Sprintf("Execute %d skill(s): %s", len(steps), strings.Join(names, ", ")),
		Limitations:   []string{},
		Complexity:    len(steps),
		CreatedAt:     e.now(),
	}
}
