package planner

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/salescopilot/copilot/internal/goal"
	"github.com/salescopilot/copilot/internal/skill"
)

// minTokenLength filters out short stopword-like tokens ("a", "to", "is").
const minTokenLength = 3

// matchSkills returns the skills relevant to the goal, in catalog order.
// A skill is relevant when at least one goal token and one skill token
// contain each other (bidirectional substring containment, not exact
// match), so "emails" matches the trigger "email" and vice versa.
func matchSkills(g goal.Goal, skills []skill.Skill) []*skill.Skill {
	goalToks := goalTokens(g)
	if len(goalToks) == 0 {
		return nil
	}

	var relevant []*skill.Skill
	for i := range skills {
		if tokensOverlap(goalToks, skillTokens(skills[i])) {
			relevant = append(relevant, &skills[i])
		}
	}
	return relevant
}

// goalTokens tokenizes the goal statement, intent category, and
// serialized requirements.
func goalTokens(g goal.Goal) []string {
	var sb strings.Builder
	sb.WriteString(g.Text())
	sb.WriteByte(' ')
	sb.WriteString(g.Intent.String())
	for key, value := range g.Requirements {
		sb.WriteByte(' ')
		sb.WriteString(key)
		sb.WriteByte(' ')
		fmt.Fprintf(&sb, "%v", value)
	}
	return tokenize(sb.String())
}

// skillTokens tokenizes the skill's key, display name, description,
// triggers, and category.
func skillTokens(s skill.Skill) []string {
	parts := []string{
		s.Key,
		s.Frontmatter.Name,
		s.Frontmatter.Description,
		strings.Join(s.Frontmatter.Triggers, " "),
		s.Frontmatter.Category,
	}
	return tokenize(strings.Join(parts, " "))
}

// tokenize lowercases text and splits it into word tokens longer than
// two characters.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= minTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func tokensOverlap(goalToks, skillToks []string) bool {
	for _, gt := range goalToks {
		for _, st := range skillToks {
			if strings.Contains(gt, st) || strings.Contains(st, gt) {
				return true
			}
		}
	}
	return false
}
