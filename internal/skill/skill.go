// Package skill provides the skill catalog consumed by the planning
// engine. Skills are packaged as directories containing a SKILL.md file
// whose YAML frontmatter declares the skill's metadata: display name,
// category, description, dependencies on other skills, produced outputs,
// and trigger keywords.
package skill

// Skill represents a declared capability available to the planner.
// Skills are owned by the catalog and are read-only to the planner.
type Skill struct {
	// Key uniquely identifies the skill within one catalog.
	Key string `json:"key"`

	// Frontmatter holds the structured metadata from SKILL.md.
	Frontmatter Frontmatter `json:"frontmatter"`

	// Content is the body of SKILL.md after the frontmatter block.
	Content string `json:"content,omitempty"`
}

// Frontmatter is the YAML frontmatter of a SKILL.md file.
type Frontmatter struct {
	// Name is the human-readable skill name.
	Name string `yaml:"name" json:"name"`

	// Category groups related skills (e.g. "research", "outreach").
	Category string `yaml:"category" json:"category"`

	// Description explains what the skill does, used both for LLM
	// planning prompts and keyword matching.
	Description string `yaml:"description" json:"description"`

	// Dependencies lists keys of skills that should run before this one.
	Dependencies []string `yaml:"dependencies" json:"dependencies,omitempty"`

	// Outputs names the values this skill produces.
	Outputs []string `yaml:"outputs" json:"outputs,omitempty"`

	// Triggers are keyword hints that suggest this skill is relevant.
	Triggers []string `yaml:"triggers" json:"triggers,omitempty"`
}

// DisplayName returns the human name from the frontmatter, falling back
// to the key when no name is declared.
func (s *Skill) DisplayName() string {
	if s.Frontmatter.Name != "" {
		return s.Frontmatter.Name
	}
	return s.Key
}
