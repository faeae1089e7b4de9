package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salescopilot/copilot/internal/skill"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Inspect the skill catalog",
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skills available to the planner",
	Example: `  copilot skills list
  copilot skills list --skills ./skills -o json`,
	RunE: runSkillsList,
}

var skillsListDir string

func init() {
	skillsListCmd.Flags().StringVar(&skillsListDir, "skills", "", "Skill catalog directory (overrides config)")
	skillsCmd.AddCommand(skillsListCmd)
}

func runSkillsList(cmd *cobra.Command, args []string) error {
	dir := cfg.Skills.Dir
	if skillsListDir != "" {
		dir = skillsListDir
	}

	catalog, err := skill.LoadCatalog(dir)
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json":
		return outputJSON(cmd.OutOrStdout(), catalog.Skills())
	case "yaml":
		return outputYAML(cmd.OutOrStdout(), catalog.Skills())
	case "text":
		return outputSkillsText(cmd.OutOrStdout(), catalog)
	default:
		return fmt.Errorf("invalid output format: %s (must be text, yaml, or json)", outputFormat)
	}
}

func outputSkillsText(out io.Writer, catalog *skill.Catalog) error {
	skills := catalog.Skills()
	if len(skills) == 0 {
		fmt.Fprintln(out, "No skills found")
		return nil
	}

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Skills (%d)", len(skills))))
	for _, s := range skills {
		fmt.Fprintf(out, "  %s %s\n", stepStyle.Render(s.Key), mutedStyle.Render("("+s.Frontmatter.Category+")"))
		if s.Frontmatter.Description != "" {
			fmt.Fprintf(out, "    %s\n", s.Frontmatter.Description)
		}
		if len(s.Frontmatter.Dependencies) > 0 {
			fmt.Fprintf(out, "    %s\n", mutedStyle.Render("needs: "+strings.Join(s.Frontmatter.Dependencies, ", ")))
		}
		if len(s.Frontmatter.Outputs) > 0 {
			fmt.Fprintf(out, "    %s\n", mutedStyle.Render("provides: "+strings.Join(s.Frontmatter.Outputs, ", ")))
		}
	}
	return nil
}
