package skill

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salescopilot/copilot/internal/types"
)

const findContactsManifest = `---
name: Find Contacts
category: research
description: Search the CRM for contacts matching given criteria.
dependencies: []
outputs:
  - contacts
triggers:
  - find
  - search
  - lookup
---

Use the contact search index to locate matching records.
`

func writeSkill(t *testing.T, dir, key, manifest string) {
	t.Helper()
	skillDir := filepath.Join(dir, key)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, SkillFileName), []byte(manifest), 0o644))
}

func TestParseSkill(t *testing.T) {
	s, err := ParseSkill("find-contacts", findContactsManifest)
	require.NoError(t, err)

	assert.Equal(t, "find-contacts", s.Key)
	assert.Equal(t, "Find Contacts", s.Frontmatter.Name)
	assert.Equal(t, "research", s.Frontmatter.Category)
	assert.Equal(t, []string{"contacts"}, s.Frontmatter.Outputs)
	assert.Equal(t, []string{"find", "search", "lookup"}, s.Frontmatter.Triggers)
	assert.Empty(t, s.Frontmatter.Dependencies)
	assert.Contains(t, s.Content, "contact search index")
}

func TestParseSkill_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "no frontmatter", data: "just a plain markdown file\n"},
		{name: "unterminated frontmatter", data: "---\nname: X\n"},
		{name: "invalid yaml", data: "---\nname: [unclosed\n---\nbody\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSkill("broken", tt.data)
			require.Error(t, err)
			assert.True(t, types.IsCode(err, types.SKILL_PARSE_FAILED))
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	writeSkill(t, dir, "find-contacts", findContactsManifest)
	writeSkill(t, dir, "send-email", `---
name: Send Email
category: outreach
description: Compose and send an email to a contact.
dependencies:
  - find-contacts
outputs:
  - sent_email
triggers:
  - email
  - send
---
`)

	// A stray file and an empty directory should both be skipped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "not-a-skill"), 0o755))

	catalog, err := LoadCatalog(dir)
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())

	s, ok := catalog.Get("send-email")
	require.True(t, ok)
	assert.Equal(t, []string{"find-contacts"}, s.Frontmatter.Dependencies)

	_, ok = catalog.Get("not-a-skill")
	assert.False(t, ok)

	assert.Equal(t, []string{"outreach", "research"}, catalog.Categories())
}

func TestLoadCatalog_MissingDir(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, types.IsCode(err, types.SKILL_DIR_NOT_FOUND))
}

func TestNewCatalog_DuplicateKey(t *testing.T) {
	skills := []Skill{
		{Key: "find-contacts"},
		{Key: "find-contacts"},
	}
	_, err := NewCatalog(skills)
	require.Error(t, err)
	assert.True(t, types.IsCode(err, types.SKILL_DUPLICATE_KEY))
}

func TestNewCatalog_EmptyKey(t *testing.T) {
	_, err := NewCatalog([]Skill{{Key: ""}})
	require.Error(t, err)
	assert.True(t, types.IsCode(err, types.SKILL_INVALID))
}

func TestSkill_DisplayName(t *testing.T) {
	named := Skill{Key: "find-contacts", Frontmatter: Frontmatter{Name: "Find Contacts"}}
	assert.Equal(t, "Find Contacts", named.DisplayName())

	unnamed := Skill{Key: "find-contacts"}
	assert.Equal(t, "find-contacts", unnamed.DisplayName())
}
