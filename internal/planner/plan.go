package planner

import (
	"time"

	"github.com/salescopilot/copilot/internal/goal"
	"github.com/salescopilot/copilot/internal/skill"
	"github.com/salescopilot/copilot/internal/types"
)

// StepStatus represents the execution status of a planned step. The
// planner always emits steps as pending; the remaining states are
// written by an external executor.
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusRunning   StepStatus = "running"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
	StepStatusSkipped   StepStatus = "skipped"
)

// IsTerminal returns true if the step status is a terminal state.
func (s StepStatus) IsTerminal() bool {
	return s == StepStatusCompleted || s == StepStatusFailed || s == StepStatusSkipped
}

// PlannedStep is one step of an execution plan.
//
// The step carries two distinct dependency notions. Dependencies holds
// indices into the plan's own step list, inferred coarsely while the
// plan is assembled. Skill-level dependencies (skill keys declared in
// the skill's frontmatter) are a separate tier consumed only by the
// dependency orderer, which reassigns Order and never rewrites the
// index-based field.
type PlannedStep struct {
	// Order is the zero-based position of the step, contiguous within
	// a plan after ordering.
	Order int `json:"order"`

	// SkillKey names the skill this step executes.
	SkillKey string `json:"skill_key"`

	// Skill is a read-only reference into the caller-supplied catalog,
	// never a copy. Catalog updates between planning calls are not
	// reflected in already-issued plans.
	Skill *skill.Skill `json:"skill,omitempty"`

	// Purpose is a human-readable description of why this step runs.
	Purpose string `json:"purpose"`

	// InputContext maps destination keys to values copied from the
	// ambient context supplied at planning time.
	InputContext map[string]any `json:"input_context,omitempty"`

	// OutputKeys names the values this step is expected to produce.
	OutputKeys []string `json:"output_keys,omitempty"`

	// Dependencies holds indices of steps this step depends on.
	Dependencies []int `json:"dependencies"`

	// Status is the execution status, mutated by an external executor.
	Status StepStatus `json:"status"`

	// Result holds the step's output once executed.
	Result map[string]any `json:"result,omitempty"`

	// Error holds the failure message once failed.
	Error string `json:"error,omitempty"`
}

// SkillGap describes a capability the plan cannot cover.
type SkillGap struct {
	// Capability is the missing capability name.
	Capability string `json:"capability"`

	// Requirement states what would be needed to cover it.
	Requirement string `json:"requirement"`

	// Suggestion optionally tells the user how to resolve the gap.
	Suggestion string `json:"suggestion,omitempty"`
}

// ExecutionPlan is the planner's output artifact. It is created fresh
// per planning call and not revisited by the planner once returned;
// callers that execute steps mutate the PlannedStep entries in place.
type ExecutionPlan struct {
	// ID uniquely identifies this plan.
	ID types.ID `json:"id"`

	// Goal is the objective this plan addresses.
	Goal goal.Goal `json:"goal"`

	// Steps is the ordered list of planned steps.
	Steps []PlannedStep `json:"steps"`

	// Gaps lists capabilities the available skills cannot cover.
	Gaps []SkillGap `json:"gaps"`

	// CanAccomplish summarizes what the available skills CAN do.
	CanAccomplish string `json:"can_accomplish"`

	// Limitations lists free-text limitations, one per gap.
	Limitations []string `json:"limitations,omitempty"`

	// Complexity is a 0-10 score. AI-provided values are used as-is and
	// are not clamped.
	Complexity int `json:"complexity"`

	// CreatedAt is the timestamp when the plan was produced.
	CreatedAt time.Time `json:"created_at"`
}
