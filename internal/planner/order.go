package planner

// orderSteps arranges steps so that a step's skill-level dependencies
// (skill keys declared in the skill frontmatter) are satisfied by
// earlier steps, assigning final Order values 0..N-1. It operates only
// on the catalog-level dependency tier: the index-based Dependencies
// field on each step is left untouched.
//
// The sort is bounded and cycle-tolerant rather than a textbook
// topological sort: it rescans the remaining list back-to-front for up
// to 2N passes, and whatever is still unplaced afterwards (true cycles,
// or chains too long for the scan pattern) is appended in its current
// relative order. Correctness under cycles is "every step gets placed
// somewhere", not cycle detection.
//
// A dependency on a skill that is not part of this plan at all is
// treated as trivially satisfied, not as a blocker.
func orderSteps(steps []PlannedStep) []PlannedStep {
	if len(steps) == 0 {
		return []PlannedStep{}
	}

	inPlan := make(map[string]bool, len(steps))
	for _, s := range steps {
		inPlan[s.SkillKey] = true
	}

	ordered := make([]PlannedStep, 0, len(steps))
	remaining := make([]PlannedStep, len(steps))
	copy(remaining, steps)
	processed := make(map[string]bool, len(steps))

	maxPasses := 2 * len(steps)
	for pass := 0; pass < maxPasses && len(remaining) > 0; pass++ {
		for i := len(remaining) - 1; i >= 0; i-- {
			if !stepReady(remaining[i], processed, inPlan) {
				continue
			}
			step := remaining[i]
			step.Order = len(ordered)
			ordered = append(ordered, step)
			processed[step.SkillKey] = true
			remaining = append(remaining[:i], remaining[i+1:]...)
		}
	}

	for _, step := range remaining {
		step.Order = len(ordered)
		ordered = append(ordered, step)
	}

	return ordered
}

// stepReady reports whether every skill-level dependency of the step is
// either already placed or absent from the plan entirely.
func stepReady(step PlannedStep, processed, inPlan map[string]bool) bool {
	if step.Skill == nil {
		return true
	}
	for _, dep := range step.Skill.Frontmatter.Dependencies {
		if inPlan[dep] && !processed[dep] {
			return false
		}
	}
	return true
}
