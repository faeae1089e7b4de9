package planner

import (
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/salescopilot/copilot/internal/goal"
	"github.com/salescopilot/copilot/internal/observability"
	"github.com/salescopilot/copilot/internal/skill"
	"github.com/salescopilot/copilot/internal/types"
)

// Messages used by the empty-catalog plan. The gap suggestion points the
// user at their workspace administrator, who controls skill enablement.
const (
	noSkillsCanAccomplish  = "I can discuss your goal with you, but no skills are enabled, so I cannot act on it."
	noSkillsGapCapability  = "Skill execution"
	noSkillsGapRequirement = "At least one enabled skill"
	noSkillsGapSuggestion  = "Contact your workspace administrator to enable copilot skills."
)

// defaultMaxFallbackSteps caps how many relevant skills the rule-based
// fallback turns into steps.
const defaultMaxFallbackSteps = 5

// Engine is the planning engine: it turns a goal and a skill catalog
// into an ExecutionPlan, preferring the AI-backed client and falling
// back to deterministic keyword planning when the client fails.
type Engine struct {
	client           PlanningClient
	logger           *slog.Logger
	maxFallbackSteps int
	now              func() time.Time
}

// EngineOption is a functional option for configuring an Engine.
type EngineOption func(*Engine)

// NewEngine creates a planning engine using the given client.
// Defaults: discard logger, 5 fallback steps.
func NewEngine(client PlanningClient, opts ...EngineOption) *Engine {
	e := &Engine{
		client:           client,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxFallbackSteps: defaultMaxFallbackSteps,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithLogger sets the engine's logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// WithMaxFallbackSteps caps the number of steps produced by the
// rule-based fallback planner.
func WithMaxFallbackSteps(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxFallbackSteps = n
		}
	}
}

// withClock overrides the time source in tests.
func withClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// CreatePlan produces an execution plan for the goal against the
// available skills. It never fails: every code path returns a valid
// plan, and partial capability is communicated through gaps and
// limitations rather than errors.
//
// The ambient planContext is treated as a read-only snapshot; the
// engine never mutates it, nor the skill catalog.
func (e *Engine) CreatePlan(ctx context.Context, g goal.Goal, availableSkills []skill.Skill, planContext map[string]any) *ExecutionPlan {
	ctx, span := observability.StartSpan(ctx, "planner.create_plan",
		trace.WithAttributes(
			attribute.Int("skills.available", len(availableSkills)),
			attribute.String("goal.intent", g.Intent.String()),
		))
	defer span.End()

	logger := observability.WithTrace(ctx, e.logger)

	if len(availableSkills) == 0 {
		span.AddEvent("no skills enabled")
		return e.emptyCatalogPlan(g)
	}

	result, err := e.client.GeneratePlan(ctx, g, availableSkills, planContext)
	if err != nil {
		logger.Warn("AI planning failed, falling back to rule-based planner",
			slog.String("error", err.Error()),
			slog.String("goal", g.Text()))
		span.RecordError(err)
		return e.fallbackPlan(g, availableSkills, planContext)
	}

	if result.Outcome == ParseNotFound {
		// The AI answered but the reply carried no usable JSON. This is
		// an AI "success" with degenerate content, not a failure: it
		// flows through the normal build path and yields a near-empty
		// plan rather than invoking the fallback planner.
		logger.Warn("AI planning response contained no parseable JSON, building degenerate plan",
			slog.String("goal", g.Text()))
	}

	plan := e.buildPlan(g, availableSkills, planContext, result.Response)
	span.SetAttributes(
		attribute.Int("plan.steps", len(plan.Steps)),
		attribute.Int("plan.gaps", len(plan.Gaps)),
	)
	return plan
}

// emptyCatalogPlan is returned when no skills are supplied: a plan with
// no steps and a single explanatory gap. No AI call is made.
func (e *Engine) emptyCatalogPlan(g goal.Goal) *ExecutionPlan {
	return &ExecutionPlan{
		ID:    types.NewID(),
		Goal:  g,
		Steps: []PlannedStep{},
		Gaps: []SkillGap{{
			Capability:  noSkillsGapCapability,
			Requirement: noSkillsGapRequirement,
			Suggestion:  noSkillsGapSuggestion,
		}},
		CanAccomplish: noSkillsCanAccomplish,
		Limitations:   []string{noSkillsGapCapability},
		Complexity:    0,
		CreatedAt:     e.now(),
	}
}
