package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/salescopilot/copilot/internal/goal"
	"github.com/salescopilot/copilot/internal/llm/providers"
	"github.com/salescopilot/copilot/internal/planner"
	"github.com/salescopilot/copilot/internal/skill"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Create an execution plan for a goal",
	Long: `Plan turns a goal statement into an ordered list of skill steps.

The command loads the skill catalog, asks the configured LLM provider
for a plan, and falls back to deterministic keyword matching when the
provider fails. The resulting plan is validated and estimated before it
is printed.

With --offline the LLM provider is never contacted and the rule-based
planner is used directly. This needs no API key and is fully
deterministic.`,
	Example: `  # Plan with the configured provider
  copilot plan --goal "Email my fintech leads about the new pricing"

  # Deterministic offline planning with context values
  copilot plan --goal "find contacts at acme" --offline --context account_id=42

  # Machine-readable output
  copilot plan --goal "research competitors" --offline -o json`,
	RunE: runPlan,
}

var (
	planGoal    string
	planIntent  string
	planContext []string
	planSkills  string
	planOffline bool
)

func init() {
	planCmd.Flags().StringVarP(&planGoal, "goal", "g", "", "Goal statement (required)")
	planCmd.Flags().StringVar(&planIntent, "intent", "", "Goal intent: outreach, research, email, meeting, task, analysis, general")
	planCmd.Flags().StringArrayVar(&planContext, "context", nil, "Context value as key=value (repeatable)")
	planCmd.Flags().StringVar(&planSkills, "skills", "", "Skill catalog directory (overrides config)")
	planCmd.Flags().BoolVar(&planOffline, "offline", false, "Skip the LLM provider and plan by keyword matching")
	planCmd.MarkFlagRequired("goal")
}

// planReport is the full command output: the plan plus its validation
// and estimate.
type planReport struct {
	Plan       *planner.ExecutionPlan   `json:"plan" yaml:"plan"`
	Validation planner.ValidationResult `json:"validation" yaml:"validation"`
	Estimate   planner.PlanEstimate     `json:"estimate" yaml:"estimate"`
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	switch outputFormat {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("invalid output format: %s (must be text, yaml, or json)", outputFormat)
	}

	g := goal.Goal{
		RawMessage: planGoal,
		Statement:  planGoal,
		Intent:     goal.Intent(planIntent),
		Confidence: 1,
	}
	if err := g.Validate(); err != nil {
		return err
	}

	planContextValues, err := parseContextPairs(planContext)
	if err != nil {
		return err
	}

	skillsDir := cfg.Skills.Dir
	if planSkills != "" {
		skillsDir = planSkills
	}
	catalog, err := skill.LoadCatalog(skillsDir)
	if err != nil {
		return err
	}

	client, err := buildPlanningClient()
	if err != nil {
		return err
	}

	engine := planner.NewEngine(client,
		planner.WithLogger(logger),
		planner.WithMaxFallbackSteps(cfg.Planner.MaxFallbackSteps),
	)

	plan := engine.CreatePlan(ctx, g, catalog.Skills(), planContextValues)
	report := planReport{
		Plan:       plan,
		Validation: engine.ValidatePlan(plan),
		Estimate:   engine.EstimatePlan(plan),
	}

	switch outputFormat {
	case "json":
		return outputJSON(cmd.OutOrStdout(), report)
	case "yaml":
		return outputYAML(cmd.OutOrStdout(), report)
	default:
		return outputPlanText(cmd.OutOrStdout(), report)
	}
}

// buildPlanningClient wires the planning client from flags and config.
// Offline mode uses a client that always errors, which routes every
// plan through the deterministic fallback.
func buildPlanningClient() (planner.PlanningClient, error) {
	if planOffline {
		return planner.NewOfflineClient(), nil
	}

	provider, err := providers.New(cfg.LLM.Provider, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL)
	if err != nil {
		return nil, err
	}

	return planner.NewLLMPlanningClient(provider,
		planner.WithModel(cfg.LLM.Model),
		planner.WithTemperature(cfg.LLM.Temperature),
		planner.WithMaxTokens(cfg.LLM.MaxTokens),
	), nil
}

// parseContextPairs turns repeated key=value flags into a context map.
func parseContextPairs(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid context value %q: expected key=value", pair)
		}
		values[key] = value
	}
	return values, nil
}

func outputJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func outputYAML(out io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	fmt.Fprint(out, string(data))
	return nil
}

func outputPlanText(out io.Writer, report planReport) error {
	plan := report.Plan

	fmt.Fprintln(out, titleStyle.Render("Plan ")+mutedStyle.Render(plan.ID.String()))
	fmt.Fprintf(out, "Goal: %s\n", plan.Goal.Text())
	if plan.CanAccomplish != "" {
		fmt.Fprintf(out, "Summary: %s\n", plan.CanAccomplish)
	}
	fmt.Fprintln(out)

	if len(plan.Steps) > 0 {
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Steps (%d)", len(plan.Steps))))
		for _, step := range plan.Steps {
			name := step.SkillKey
			if step.Skill != nil {
				name = step.Skill.DisplayName()
			}
			fmt.Fprintf(out, "  %d. %s\n", step.Order+1, stepStyle.Render(name))
			fmt.Fprintf(out, "     %s\n", step.Purpose)
			if len(step.Dependencies) > 0 {
				fmt.Fprintf(out, "     %s\n", mutedStyle.Render(fmt.Sprintf("after step(s) %v", stepNumbers(step.Dependencies))))
			}
			if len(step.OutputKeys) > 0 {
				fmt.Fprintf(out, "     %s\n", mutedStyle.Render("produces: "+strings.Join(step.OutputKeys, ", ")))
			}
		}
		fmt.Fprintln(out)
	}

	if len(plan.Gaps) > 0 {
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Gaps (%d)", len(plan.Gaps))))
		for _, gap := range plan.Gaps {
			fmt.Fprintf(out, "  %s %s\n", gapStyle.Render("!"), gap.Capability)
			fmt.Fprintf(out, "    %s\n", gap.Requirement)
			if gap.Suggestion != "" {
				fmt.Fprintf(out, "    %s\n", mutedStyle.Render(gap.Suggestion))
			}
		}
		fmt.Fprintln(out)
	}

	if !report.Validation.Valid {
		fmt.Fprintln(out, titleStyle.Render("Validation issues"))
		for _, issue := range report.Validation.Issues {
			fmt.Fprintf(out, "  %s %s\n", gapStyle.Render("!"), issue)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Complexity: %d  Risk: %s  Estimated time: %s\n",
		plan.Complexity,
		riskStyle(report.Estimate.RiskLevel).Render(string(report.Estimate.RiskLevel)),
		report.Estimate.EstimatedTime,
	)

	return nil
}

// stepNumbers converts zero-based dependency indices to the one-based
// numbering used in the rendered step list.
func stepNumbers(deps []int) []int {
	nums := make([]int, len(deps))
	for i, d := range deps {
		nums[i] = d + 1
	}
	return nums
}
