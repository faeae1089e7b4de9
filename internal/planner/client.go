package planner

import (
	"context"

	"github.com/salescopilot/copilot/internal/goal"
	"github.com/salescopilot/copilot/internal/skill"
	"github.com/salescopilot/copilot/internal/types"
)

// PlanningResponse is the structured reply expected from the AI planner.
// The JSON field names mirror the contract sent to the model.
type PlanningResponse struct {
	Steps         []ResponseStep `json:"steps"`
	CanAccomplish string         `json:"canAccomplish"`
	Gaps          []ResponseGap  `json:"gaps"`
	Complexity    int            `json:"complexity"`
}

// ResponseStep is one step descriptor in the AI reply.
type ResponseStep struct {
	// SkillKey must exactly match a key in the available catalog;
	// steps naming unknown keys are dropped during plan assembly.
	SkillKey string `json:"skillKey"`

	// Purpose optionally describes why the step runs.
	Purpose string `json:"purpose,omitempty"`

	// InputMapping maps destination context keys to source keys in the
	// ambient planning context.
	InputMapping map[string]string `json:"inputMapping,omitempty"`

	// OutputKey optionally names the single value this step produces.
	OutputKey string `json:"outputKey,omitempty"`
}

// ResponseGap is one gap descriptor in the AI reply.
type ResponseGap struct {
	Capability  string `json:"capability"`
	Requirement string `json:"requirement"`
	Suggestion  string `json:"suggestion,omitempty"`
}

// ParseOutcome tags whether the AI reply contained parseable JSON.
// Making the tag explicit keeps "the AI said there is nothing to do"
// distinguishable from "the AI reply was garbage" at the call site.
type ParseOutcome int

const (
	// ParseFound means the reply contained a JSON object matching the
	// planning schema.
	ParseFound ParseOutcome = iota

	// ParseNotFound means no usable JSON was found; the response is a
	// degenerate placeholder and the plan built from it will be empty.
	ParseNotFound
)

// PlanningResult pairs a planning response with its parse outcome.
type PlanningResult struct {
	Response PlanningResponse
	Outcome  ParseOutcome
}

// PlanningClient produces a structured planning response for a goal
// against a skill catalog. A returned error means the AI path is
// unusable (transport failure, provider error) and the engine falls
// back to rule-based planning. A reply without parseable JSON is NOT
// an error: it comes back as ParseNotFound with a degenerate response,
// so the engine still treats the AI path as having answered.
type PlanningClient interface {
	GeneratePlan(ctx context.Context, g goal.Goal, skills []skill.Skill, planContext map[string]any) (PlanningResult, error)
}

// DegenerateResponse is the empty-equivalent response substituted when
// the AI reply contains no parseable JSON.
func DegenerateResponse() PlanningResponse {
	return PlanningResponse{Complexity: degenerateComplexity}
}

// degenerateComplexity is the complexity assigned to unparseable AI
// replies, distinguishing them from the zero-complexity empty-catalog
// plan.
const degenerateComplexity = 5

// offlineClient always reports the AI path as unavailable, forcing the
// engine onto the rule-based fallback. Used when no provider is
// configured or when the caller asks for deterministic planning.
type offlineClient struct{}

// NewOfflineClient returns a PlanningClient that never answers.
func NewOfflineClient() PlanningClient {
	return offlineClient{}
}

func (offlineClient) GeneratePlan(ctx context.Context, g goal.Goal, skills []skill.Skill, planContext map[string]any) (PlanningResult, error) {
	return PlanningResult{}, types.NewError(types.PLAN_CLIENT_UNAVAILABLE, "AI planning client is not configured")
}
