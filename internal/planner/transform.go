package planner

import (
	"strings"

	"github.com/salescopilot/copilot/internal/goal"
	"github.com/salescopilot/copilot/internal/skill"
	"github.com/salescopilot/copilot/internal/types"
)

// buildPlan converts an AI planning response into a well-formed
// ExecutionPlan against the available catalog.
func (e *Engine) buildPlan(g goal.Goal, availableSkills []skill.Skill, planContext map[string]any, resp PlanningResponse) *ExecutionPlan {
	byKey := make(map[string]*skill.Skill, len(availableSkills))
	for i := range availableSkills {
		byKey[availableSkills[i].Key] = &availableSkills[i]
	}

	steps := make([]PlannedStep, 0, len(resp.Steps))
	// declaredOutput tracks, per built step, whether the AI descriptor
	// declared an outputKey. Used by the coarse dependency heuristic.
	declaredOutput := make([]bool, 0, len(resp.Steps))

	for _, aiStep := range resp.Steps {
		resolved, ok := byKey[aiStep.SkillKey]
		if !ok {
			// Unknown skill keys are filtered out silently, not
			// reported as errors or gaps.
			continue
		}

		inputContext := make(map[string]any)
		for dst, src := range aiStep.InputMapping {
			if value, defined := planContext[src]; defined {
				inputContext[dst] = value
			}
		}

		purpose := aiStep.Purpose
		if purpose == "" {
			purpose = "Execute " + resolved.DisplayName()
		}

		var outputKeys []string
		if aiStep.OutputKey != "" {
			outputKeys = []string{aiStep.OutputKey}
		} else {
			outputKeys = resolved.Frontmatter.Outputs
		}

		// Coarse dependency inference: every earlier built step that
		// declared an output is assumed to feed this one, regardless of
		// whether this step actually consumes it.
		var dependencies []int
		for j, declared := range declaredOutput {
			if declared {
				dependencies = append(dependencies, j)
			}
		}
		if dependencies == nil {
			dependencies = []int{}
		}

		steps = append(steps, PlannedStep{
			SkillKey:     aiStep.SkillKey,
			Skill:        resolved,
			Purpose:      purpose,
			InputContext: inputContext,
			OutputKeys:   outputKeys,
			Dependencies: dependencies,
			Status:       StepStatusPending,
		})
		declaredOutput = append(declaredOutput, aiStep.OutputKey != "")
	}

	steps = orderSteps(steps)

	gaps := make([]SkillGap, 0, len(resp.Gaps))
	limitations := make([]string, 0, len(resp.Gaps))
	for _, aiGap := range resp.Gaps {
		gaps = append(gaps, SkillGap{
			Capability:  aiGap.Capability,
			Requirement: aiGap.Requirement,
			Suggestion:  aiGap.Suggestion,
		})
		limitations = append(limitations, aiGap.Capability)
	}

	canAccomplish := resp.CanAccomplish
	if canAccomplish == "" && len(steps) > 0 {
		names := make([]string, len(steps))
		for i, step := range steps {
			names[i] = step.Skill.DisplayName()
		}
		canAccomplish = strings.Join(names, " → ")
	}

	return &ExecutionPlan{
		ID:            types.NewID(),
		Goal:          g,
		Steps:         steps,
		Gaps:          gaps,
		CanAccomplish: canAccomplish,
		Limitations:   limitations,
		Complexity:    resp.Complexity,
		CreatedAt:     e.now(),
	}
}
