package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopilotError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *CopilotError
		want string
	}{
		{
			name: "without cause",
			err:  NewError(SKILL_INVALID, "skill has no key"),
			want: "[SKILL_INVALID] skill has no key",
		},
		{
			name: "with cause",
			err:  WrapError(CONFIG_LOAD_FAILED, "reading config", errors.New("no such file")),
			want: "[CONFIG_LOAD_FAILED] reading config: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestCopilotError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapError(SKILL_PARSE_FAILED, "bad frontmatter", cause)

	require.ErrorIs(t, err, cause)
	assert.Nil(t, NewError(SKILL_INVALID, "x").Unwrap())
}

func TestIsCode(t *testing.T) {
	err := WrapError(PLAN_CLIENT_UNAVAILABLE, "planner offline", errors.New("dial tcp"))
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, IsCode(err, PLAN_CLIENT_UNAVAILABLE))
	assert.True(t, IsCode(wrapped, PLAN_CLIENT_UNAVAILABLE))
	assert.False(t, IsCode(err, PLAN_GENERATION_FAILED))
	assert.False(t, IsCode(errors.New("plain"), PLAN_CLIENT_UNAVAILABLE))
}
