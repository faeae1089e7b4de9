// Package planner implements the copilot planning engine: given a user
// goal and a catalog of skills, it produces an ordered execution plan,
// using an AI-backed planner with a deterministic keyword-matching
// fallback.
//
// # Overview
//
// The Engine is the orchestrator. CreatePlan tries the AI path first:
// an LLMPlanningClient renders the goal and catalog into prompts, calls
// the configured provider, and extracts a JSON planning response from
// the reply. The response is then resolved against the catalog, steps
// are sequenced by the dependency orderer, and the result is returned
// as an ExecutionPlan. When the client errors (transport failure,
// provider error), the engine falls back to rule-based planning:
// keyword-match skills against the goal and chain the first few
// relevant ones linearly. CreatePlan itself never fails; gaps and
// limitations carry partial capability back to the caller instead of
// errors.
//
// A reply that contains no parseable JSON is deliberately NOT a
// failure. It is tagged ParseNotFound, substituted with an
// empty-equivalent response, and flows through the normal build path,
// yielding a near-empty plan rather than invoking the fallback. The
// tag keeps the two cases distinguishable in logs and traces.
//
// # Dependencies, two tiers
//
// PlannedStep.Dependencies holds step indices, inferred coarsely while
// a plan is assembled: anything before a step that declared an output
// is assumed to feed it. Skill frontmatter dependencies are skill keys
// and form a separate tier, consumed only by the dependency orderer.
// The orderer reassigns Order values and never rewrites the index
// field. A frontmatter dependency on a skill that is not part of the
// current plan is treated as already satisfied.
//
// # Validation and estimation
//
// ValidatePlan is advisory and checks that a plan explains itself
// (steps or gaps), that every step carries a skill reference, and that
// index dependencies only point backwards. EstimatePlan derives a
// fixed five-seconds-per-step time estimate and a low/medium/high risk
// level from gap count and complexity.
package planner
