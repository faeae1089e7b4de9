package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/salescopilot/copilot/internal/types"
)

// codeBlockPattern matches markdown code blocks with an optional
// language tag. Captures: (1) language, (2) content.
var codeBlockPattern = regexp.MustCompile(`(?s)` + "```" + `(\w*)\s*\n(.+?)\n` + "```")

// ExtractJSON pulls a JSON object or array out of an LLM response that
// may wrap it in prose or markdown. Search order:
//
//  1. JSON inside ```json ... ``` or untagged ``` ... ``` code blocks
//  2. The first raw {...} or [...] in the response, matched by bracket
//     depth with string-literal awareness
//
// Returns a LLM_NO_JSON_FOUND error when the response contains no
// parseable JSON.
func ExtractJSON(response string) (string, error) {
	if jsonStr, found := extractFromCodeBlock(response); found {
		return jsonStr, nil
	}

	if jsonStr, found := extractRawJSON(response); found {
		return jsonStr, nil
	}

	return "", types.NewError(ErrNoJSONFound, "no valid JSON found in response")
}

// ExtractJSONAs extracts JSON and unmarshals it into T.
func ExtractJSONAs[T any](response string) (T, error) {
	var result T

	jsonStr, err := ExtractJSON(response)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return result, types.WrapError(ErrNoJSONFound, "extracted JSON does not match expected shape", err)
	}

	return result, nil
}

func extractFromCodeBlock(response string) (string, bool) {
	for _, match := range codeBlockPattern.FindAllStringSubmatch(response, -1) {
		if len(match) < 3 {
			continue
		}

		lang := strings.ToLower(match[1])
		content := strings.TrimSpace(match[2])

		// Skip blocks explicitly tagged as another language.
		if lang != "" && lang != "json" {
			continue
		}

		if strings.HasPrefix(content, "{") || strings.HasPrefix(content, "[") {
			if json.Valid([]byte(content)) {
				return content, true
			}
		}
	}

	return "", false
}

func extractRawJSON(response string) (string, bool) {
	startObj := strings.Index(response, "{")
	startArr := strings.Index(response, "[")

	start := -1
	closeChar := byte('}')
	if startObj >= 0 && (startArr < 0 || startObj < startArr) {
		start = startObj
	} else if startArr >= 0 {
		start = startArr
		closeChar = ']'
	}

	if start < 0 {
		return "", false
	}

	jsonStr := matchBrackets(response[start:], closeChar)
	if jsonStr != "" && json.Valid([]byte(jsonStr)) {
		return jsonStr, true
	}

	return "", false
}

// matchBrackets returns the prefix of s up to the bracket matching its
// first character, ignoring brackets inside string literals.
func matchBrackets(s string, closeChar byte) string {
	if len(s) == 0 {
		return ""
	}

	openChar := s[0]
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if c == openChar {
			depth++
		} else if c == closeChar {
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}

	return ""
}
