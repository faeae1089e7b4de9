package planner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salescopilot/copilot/internal/goal"
	"github.com/salescopilot/copilot/internal/skill"
)

func TestFallbackPlan_NoRelevantSkills(t *testing.T) {
	engine := newTestEngine(NewOfflineClient())

	g := goal.Goal{Statement: "xyzzy frobnicate", Intent: goal.IntentAnalysis, Confidence: 0.5}
	plan := engine.fallbackPlan(g, testCatalog(), nil)

	assert.Empty(t, plan.Steps)
	require.Len(t, plan.Gaps, 1)
	assert.Equal(t, "analysis", plan.Gaps[0].Capability)
	assert.Contains(t, plan.Gaps[0].Requirement, "xyzzy frobnicate")
	assert.Equal(t, 1, plan.Complexity)
}

func TestFallbackPlan_NoIntentUsesGenericCapability(t *testing.T) {
	engine := newTestEngine(NewOfflineClient())

	g := goal.Goal{Statement: "xyzzy frobnicate", Confidence: 0.5}
	plan := engine.fallbackPlan(g, testCatalog(), nil)

	require.Len(t, plan.Gaps, 1)
	assert.Equal(t, "Requested action", plan.Gaps[0].Capability)
}

func TestFallbackPlan_StepCap(t *testing.T) {
	engine := newTestEngine(NewOfflineClient())

	// Eight skills all matching the goal token "pipeline".
	var skills []skill.Skill
	for i := 0; i < 8; i++ {
		skills = append(skills, skill.Skill{
			Key: fmt.Sprintf("skill-%d", i),
			Frontmatter: skill.Frontmatter{
				Name:     fmt.Sprintf("Skill %d", i),
				Triggers: []string{"pipeline"},
			},
		})
	}

	g := goal.Goal{Statement: "review the pipeline", Confidence: 1}
	plan := engine.fallbackPlan(g, skills, nil)

	assert.Len(t, plan.Steps, 5)
	assertOrderContiguous(t, plan)
}

func TestFallbackPlan_LinearChainBeforeOrdering(t *testing.T) {
	engine := newTestEngine(NewOfflineClient())

	skills := []skill.Skill{
		{Key: "one", Frontmatter: skill.Frontmatter{Triggers: []string{"deal"}}},
		{Key: "two", Frontmatter: skill.Frontmatter{Triggers: []string{"deal"}}},
		{Key: "three", Frontmatter: skill.Frontmatter{Triggers: []string{"deal"}}},
	}

	g := goal.Goal{Statement: "work the deal", Confidence: 1}
	plan := engine.fallbackPlan(g, skills, nil)
	require.Len(t, plan.Steps, 3)

	// The chain is declared against pre-ordering positions: step k
	// depends on [k-1], the first on nothing. The orderer does not
	// rewrite these indices.
	deps := make(map[string][]int)
	for _, s := range plan.Steps {
		deps[s.SkillKey] = s.Dependencies
	}
	assert.Empty(t, deps["one"])
	assert.Equal(t, []int{0}, deps["two"])
	assert.Equal(t, []int{1}, deps["three"])
}

func TestFallbackPlan_ContextPassthrough(t *testing.T) {
	engine := newTestEngine(NewOfflineClient())

	planContext := map[string]any{"campaign": "q3", "owner": "dana"}
	g := goal.Goal{Statement: "send the email", Confidence: 1}
	plan := engine.fallbackPlan(g, testCatalog(), planContext)

	require.NotEmpty(t, plan.Steps)
	for _, s := range plan.Steps {
		// Unlike the AI path, the whole ambient context is passed
		// through to every step.
		assert.Equal(t, planContext, s.InputContext)
	}
}

func TestFallbackPlan_SummaryAndComplexity(t *testing.T) {
	engine := newTestEngine(NewOfflineClient())

	g := goal.Goal{Statement: "search fintech", Confidence: 1}
	plan := engine.fallbackPlan(g, testCatalog(), nil)

	require.Len(t, plan.Steps, 1)
	assert.Equal(t, "Execute 1 skill(s): Find Contacts", plan.CanAccomplish)
	assert.Equal(t, 1, plan.Complexity)
	assert.Empty(t, plan.Gaps)
	assert.Empty(t, plan.Limitations)
	assert.Equal(t, []string{"contacts"}, plan.Steps[0].OutputKeys)
	assert.Equal(t, StepStatusPending, plan.Steps[0].Status)
}

func TestFallbackPlan_SkillReferencesCatalog(t *testing.T) {
	engine := newTestEngine(NewOfflineClient())

	catalog := testCatalog()
	g := goal.Goal{Statement: "search fintech", Confidence: 1}
	plan := engine.fallbackPlan(g, catalog, nil)

	require.Len(t, plan.Steps, 1)
	assert.Same(t, &catalog[0], plan.Steps[0].Skill)
}
