// Package goal models the user objective handed to the planning engine.
// Goals are produced by an upstream understanding phase and are treated
// as immutable input by the planner.
package goal

import (
	"encoding/json"
	"fmt"
)

// Intent classifies what kind of action the user is asking for.
type Intent string

const (
	IntentOutreach Intent = "outreach"
	IntentResearch Intent = "research"
	IntentEmail    Intent = "email"
	IntentMeeting  Intent = "meeting"
	IntentTask     Intent = "task"
	IntentAnalysis Intent = "analysis"
	IntentGeneral  Intent = "general"
)

// String returns the string representation of the intent.
func (i Intent) String() string {
	return string(i)
}

// IsValid checks if the intent is one of the known categories.
func (i Intent) IsValid() bool {
	switch i {
	case IntentOutreach, IntentResearch, IntentEmail, IntentMeeting,
		IntentTask, IntentAnalysis, IntentGeneral:
		return true
	default:
		return false
	}
}

// UnmarshalJSON validates the intent on deserialization.
func (i *Intent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	intent := Intent(s)
	if s != "" && !intent.IsValid() {
		return fmt.Errorf("invalid intent: %s", s)
	}
	*i = intent
	return nil
}

// Goal is the structured representation of what the user wants.
type Goal struct {
	// RawMessage is the user's message verbatim.
	RawMessage string `json:"raw_message"`

	// Statement is the normalized goal statement extracted by the
	// understanding phase.
	Statement string `json:"statement"`

	// Intent is the optional intent category. Empty when the
	// understanding phase could not classify the message.
	Intent Intent `json:"intent,omitempty"`

	// Requirements maps extracted requirement keys to arbitrary values.
	Requirements map[string]any `json:"requirements,omitempty"`

	// Confidence is the understanding confidence in [0,1].
	Confidence float64 `json:"confidence"`
}

// Validate checks the goal is well-formed.
func (g *Goal) Validate() error {
	if g.Statement == "" && g.RawMessage == "" {
		return fmt.Errorf("goal has neither a statement nor a raw message")
	}
	if g.Intent != "" && !g.Intent.IsValid() {
		return fmt.Errorf("invalid intent: %s", g.Intent)
	}
	if g.Confidence < 0 || g.Confidence > 1 {
		return fmt.Errorf("confidence must be in [0,1], got %v", g.Confidence)
	}
	return nil
}

// Text returns the best available text for the goal: the normalized
// statement when present, otherwise the raw message.
func (g *Goal) Text() string {
	if g.Statement != "" {
		return g.Statement
	}
	return g.RawMessage
}
