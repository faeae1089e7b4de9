package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/salescopilot/copilot/internal/types"
)

// SkillFileName is the per-skill manifest file inside each skill directory.
const SkillFileName = "SKILL.md"

const frontmatterDelimiter = "---"

// Catalog holds a set of skills indexed by key. Keys are unique within
// one catalog; the loader rejects duplicates.
type Catalog struct {
	skills []Skill
	byKey  map[string]int
}

// NewCatalog builds a catalog from the given skills. It returns an error
// when a key appears more than once or a skill has no key.
func NewCatalog(skills []Skill) (*Catalog, error) {
	c := &Catalog{
		skills: make([]Skill, 0, len(skills)),
		byKey:  make(map[string]int, len(skills)),
	}
	for _, s := range skills {
		if s.Key == "" {
			return nil, types.NewError(types.SKILL_INVALID, "skill key cannot be empty")
		}
		if _, exists := c.byKey[s.Key]; exists {
			return nil, types.NewError(types.SKILL_DUPLICATE_KEY,
				fmt.Sprintf("duplicate skill key %q", s.Key))
		}
		c.byKey[s.Key] = len(c.skills)
		c.skills = append(c.skills, s)
	}
	return c, nil
}

// LoadCatalog discovers skills under dir. Each immediate subdirectory
// containing a SKILL.md becomes one skill, keyed by the directory name.
// Directories without a SKILL.md are skipped.
func LoadCatalog(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, types.WrapError(types.SKILL_DIR_NOT_FOUND,
				fmt.Sprintf("skills directory %s does not exist", dir), err)
		}
		return nil, types.WrapError(types.SKILL_LOAD_FAILED,
			fmt.Sprintf("reading skills directory %s", dir), err)
	}

	var skills []Skill
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest := filepath.Join(dir, entry.Name(), SkillFileName)
		data, err := os.ReadFile(manifest)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, types.WrapError(types.SKILL_LOAD_FAILED,
				fmt.Sprintf("reading %s", manifest), err)
		}

		s, err := ParseSkill(entry.Name(), string(data))
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}

	// ReadDir returns entries sorted by name, which gives the catalog a
	// stable order across loads.
	return NewCatalog(skills)
}

// ParseSkill parses SKILL.md content into a Skill with the given key.
// The file must begin with a YAML frontmatter block delimited by "---"
// lines; everything after the closing delimiter becomes the content.
func ParseSkill(key, data string) (Skill, error) {
	frontmatter, body, err := splitFrontmatter(data)
	if err != nil {
		return Skill{}, types.WrapError(types.SKILL_PARSE_FAILED,
			fmt.Sprintf("skill %q", key), err)
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(frontmatter), &fm); err != nil {
		return Skill{}, types.WrapError(types.SKILL_PARSE_FAILED,
			fmt.Sprintf("skill %q has invalid frontmatter", key), err)
	}

	return Skill{
		Key:         key,
		Frontmatter: fm,
		Content:     strings.TrimSpace(body),
	}, nil
}

// splitFrontmatter separates the YAML frontmatter block from the body.
func splitFrontmatter(data string) (frontmatter, body string, err error) {
	trimmed := strings.TrimLeft(data, "\n\r \t")
	if !strings.HasPrefix(trimmed, frontmatterDelimiter) {
		return "", "", fmt.Errorf("missing frontmatter delimiter")
	}

	rest := strings.TrimPrefix(trimmed, frontmatterDelimiter)
	rest = strings.TrimPrefix(rest, "\n")

	end := strings.Index(rest, "\n"+frontmatterDelimiter)
	if end < 0 {
		return "", "", fmt.Errorf("unterminated frontmatter block")
	}

	frontmatter = rest[:end]
	body = rest[end+len("\n"+frontmatterDelimiter):]
	body = strings.TrimPrefix(body, "\n")
	return frontmatter, body, nil
}

// Skills returns all skills in catalog order.
func (c *Catalog) Skills() []Skill {
	out := make([]Skill, len(c.skills))
	copy(out, c.skills)
	return out
}

// Get returns the skill with the given key, if present.
func (c *Catalog) Get(key string) (Skill, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return Skill{}, false
	}
	return c.skills[i], true
}

// Len returns the number of skills in the catalog.
func (c *Catalog) Len() int {
	return len(c.skills)
}

// Categories returns the distinct skill categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range c.skills {
		if s.Frontmatter.Category == "" || seen[s.Frontmatter.Category] {
			continue
		}
		seen[s.Frontmatter.Category] = true
		out = append(out, s.Frontmatter.Category)
	}
	sort.Strings(out)
	return out
}
