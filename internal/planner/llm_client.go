package planner

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/salescopilot/copilot/internal/goal"
	"github.com/salescopilot/copilot/internal/llm"
	"github.com/salescopilot/copilot/internal/observability"
	"github.com/salescopilot/copilot/internal/skill"
)

// LLMPlanningClient implements PlanningClient against an llm.Provider.
// It renders the goal and skill catalog into prompts, invokes the model
// once, and extracts the JSON planning response from the reply text.
type LLMPlanningClient struct {
	provider    llm.Provider
	model       string
	temperature float64
	maxTokens   int
}

// LLMClientOption is a functional option for LLMPlanningClient.
type LLMClientOption func(*LLMPlanningClient)

// NewLLMPlanningClient creates a planning client backed by provider.
// Defaults: temperature 0.2, max tokens 2048.
func NewLLMPlanningClient(provider llm.Provider, opts ...LLMClientOption) *LLMPlanningClient {
	c := &LLMPlanningClient{
		provider:    provider,
		temperature: 0.2,
		maxTokens:   2048,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithModel overrides the provider's default model.
func WithModel(model string) LLMClientOption {
	return func(c *LLMPlanningClient) { c.model = model }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) LLMClientOption {
	return func(c *LLMPlanningClient) { c.temperature = t }
}

// WithMaxTokens caps the response length.
func WithMaxTokens(n int) LLMClientOption {
	return func(c *LLMPlanningClient) { c.maxTokens = n }
}

// GeneratePlan implements PlanningClient. Transport and provider errors
// are returned to the caller; a reply without parseable JSON degrades to
// ParseNotFound with an empty-equivalent response.
func (c *LLMPlanningClient) GeneratePlan(ctx context.Context, g goal.Goal, skills []skill.Skill, planContext map[string]any) (PlanningResult, error) {
	ctx, span := observability.StartSpan(ctx, "planner.llm_generate",
		trace.WithAttributes(
			attribute.Int("skills.count", len(skills)),
			attribute.String("goal.intent", g.Intent.String()),
		))
	defer span.End()

	temp := c.temperature
	req := llm.CompletionRequest{
		Model: c.model,
		Messages: []llm.Message{
			llm.NewSystemMessage(systemPrompt),
			llm.NewUserMessage(buildUserPrompt(g, skills, planContext)),
		},
		Temperature: &temp,
		MaxTokens:   c.maxTokens,
	}

	resp, err := c.provider.Complete(ctx, req)
	if err != nil {
		span.RecordError(err)
		return PlanningResult{}, err
	}

	parsed, err := llm.ExtractJSONAs[PlanningResponse](resp.Message.Content)
	if err != nil {
		// Malformed replies still count as an AI answer: substitute the
		// degenerate response instead of failing over to the fallback.
		span.AddEvent("planning response contained no parseable JSON")
		return PlanningResult{Response: DegenerateResponse(), Outcome: ParseNotFound}, nil
	}

	span.SetAttributes(attribute.Int("plan.response_steps", len(parsed.Steps)))
	return PlanningResult{Response: parsed, Outcome: ParseFound}, nil
}

// systemPrompt instructs the model on the planning contract: use only
// the listed skills, order steps by dependency, and be explicit about
// gaps.
const systemPrompt = `You are the planning engine of a sales CRM copilot. Given a user goal and a catalog of available skills, produce an execution plan.

Rules:
- Only use skills from the catalog, referenced by their exact key. Never invent skills.
- Order steps so that a skill's declared dependencies run before it.
- Be explicit about gaps: when the goal needs a capability no skill covers, report it as a gap instead of stretching an unrelated skill.
- For each step, map any needed ambient context values via inputMapping (destination key -> source context key), and name the value it produces via outputKey.

Respond with a single JSON object following this exact schema:

{
  "steps": [{"skillKey": "...", "purpose": "...", "inputMapping": {"dest": "source"}, "outputKey": "..."}],
  "canAccomplish": "one-sentence summary of what the available skills can achieve for this goal",
  "gaps": [{"capability": "...", "requirement": "...", "suggestion": "..."}],
  "complexity": 0-10
}

Respond ONLY with the JSON object.`

// buildUserPrompt renders the goal, the skill catalog, and a summary of
// populated context keys.
func buildUserPrompt(g goal.Goal, skills []skill.Skill, planContext map[string]any) string {
	var sb strings.Builder

	sb.WriteString("# Goal\n\n")
	sb.WriteString(fmt.Sprintf("Statement: %s\n", g.Text()))
	if g.Intent != "" {
		sb.WriteString(fmt.Sprintf("Intent: %s\n", g.Intent))
	}
	if len(g.Requirements) > 0 {
		sb.WriteString("Requirements:\n")
		for _, key := range sortedKeys(g.Requirements) {
			sb.WriteString(fmt.Sprintf("- %s: %v\n", key, g.Requirements[key]))
		}
	}
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n\n", g.Confidence))

	sb.WriteString("# Available Skills\n\n")
	for _, s := range skills {
		sb.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", s.Key, s.Frontmatter.Category, s.Frontmatter.Description))
		if len(s.Frontmatter.Dependencies) > 0 {
			sb.WriteString(fmt.Sprintf("  needs: %s\n", strings.Join(s.Frontmatter.Dependencies, ", ")))
		}
		if len(s.Frontmatter.Outputs) > 0 {
			sb.WriteString(fmt.Sprintf("  provides: %s\n", strings.Join(s.Frontmatter.Outputs, ", ")))
		}
		if len(s.Frontmatter.Triggers) > 0 {
			sb.WriteString(fmt.Sprintf("  triggers: %s\n", strings.Join(s.Frontmatter.Triggers, ", ")))
		}
	}
	sb.WriteString("\n")

	sb.WriteString("# Context\n\n")
	if len(planContext) == 0 {
		sb.WriteString("No context values are populated.\n")
	} else {
		sb.WriteString("The following context keys are populated: ")
		sb.WriteString(strings.Join(sortedKeys(planContext), ", "))
		sb.WriteString("\n")
	}

	return sb.String()
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
