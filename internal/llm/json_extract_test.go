package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salescopilot/copilot/internal/types"
)

func TestExtractJSON_CodeBlock(t *testing.T) {
	response := "Here is the plan:\n```json\n{\"steps\": []}\n```\nLet me know."

	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"steps": []}`, got)
}

func TestExtractJSON_UntaggedCodeBlock(t *testing.T) {
	response := "```\n{\"complexity\": 3}\n```"

	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"complexity": 3}`, got)
}

func TestExtractJSON_SkipsOtherLanguageBlocks(t *testing.T) {
	response := "```python\n{'not': 'json'}\n```\nActual answer: {\"ok\": true}"

	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, got)
}

func TestExtractJSON_RawObjectWithProse(t *testing.T) {
	response := `Sure! The plan is {"steps": [{"skillKey": "find-contacts"}], "complexity": 2} as requested.`

	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"steps": [{"skillKey": "find-contacts"}], "complexity": 2}`, got)
}

func TestExtractJSON_NestedBracesInStrings(t *testing.T) {
	response := `{"purpose": "render {name} template", "n": 1}`

	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, response, got)
}

func TestExtractJSON_Array(t *testing.T) {
	got, err := ExtractJSON(`result: [1, 2, 3]`)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2, 3]`, got)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON("I could not produce a plan, sorry.")
	require.Error(t, err)
	assert.True(t, types.IsCode(err, ErrNoJSONFound))
}

func TestExtractJSON_MalformedBraces(t *testing.T) {
	_, err := ExtractJSON(`{"steps": [`)
	require.Error(t, err)
	assert.True(t, types.IsCode(err, ErrNoJSONFound))
}

func TestExtractJSONAs(t *testing.T) {
	type payload struct {
		Complexity int `json:"complexity"`
	}

	got, err := ExtractJSONAs[payload]("```json\n{\"complexity\": 7}\n```")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Complexity)

	_, err = ExtractJSONAs[payload]("no json here")
	assert.Error(t, err)
}
