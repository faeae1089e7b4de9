package goal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntent_IsValid(t *testing.T) {
	valid := []Intent{
		IntentOutreach, IntentResearch, IntentEmail,
		IntentMeeting, IntentTask, IntentAnalysis, IntentGeneral,
	}
	for _, intent := range valid {
		assert.True(t, intent.IsValid(), "intent %q should be valid", intent)
	}

	assert.False(t, Intent("").IsValid())
	assert.False(t, Intent("sales").IsValid())
}

func TestIntent_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Intent
		wantErr bool
	}{
		{name: "known intent", input: `"outreach"`, want: IntentOutreach},
		{name: "empty allowed", input: `""`, want: Intent("")},
		{name: "unknown intent", input: `"telepathy"`, wantErr: true},
		{name: "not a string", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Intent
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGoal_Validate(t *testing.T) {
	tests := []struct {
		name    string
		goal    Goal
		wantErr bool
	}{
		{
			name: "valid goal",
			goal: Goal{Statement: "find leads in fintech", Intent: IntentResearch, Confidence: 0.8},
		},
		{
			name: "raw message only",
			goal: Goal{RawMessage: "help me book a meeting", Confidence: 0.4},
		},
		{
			name:    "no text at all",
			goal:    Goal{Confidence: 0.5},
			wantErr: true,
		},
		{
			name:    "bad intent",
			goal:    Goal{Statement: "x", Intent: Intent("wizardry"), Confidence: 0.5},
			wantErr: true,
		},
		{
			name:    "confidence out of range",
			goal:    Goal{Statement: "x", Confidence: 1.5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.goal.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGoal_Text(t *testing.T) {
	g := Goal{RawMessage: "raw", Statement: "normalized"}
	assert.Equal(t, "normalized", g.Text())

	g.Statement = ""
	assert.Equal(t, "raw", g.Text())
}
