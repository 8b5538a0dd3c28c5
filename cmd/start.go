package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jgrefe/tempus/internal/model"
	"github.com/jgrefe/tempus/internal/service"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start <project> [description...]",
	Short: "Start the timer on a project",
	Long: `Start tracking time against a project. The project is matched by id
or by name (case-insensitive).

If an entry is already running it is stopped at this instant before the
new one begins, so switching tasks is a single command.

Examples:
  tempus start "Website Redesign" homepage mockups
  tempus start p1 design work`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startEntry(args[0], strings.TrimSpace(strings.Join(args[1:], " ")))
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}

// startEntry resolves the project reference and starts a new entry
func startEntry(projectRef, description string) {
	svc, store, _, err := openService()
	if err != nil {
		fail("Failed to open data file", err, "Check that the file exists and is readable")
		return
	}
	defer store.Close()

	project, err := findProject(svc, projectRef)
	if err != nil {
		fail(fmt.Sprintf("Unknown project '%s'", projectRef), err, "Run 'tempus project list' to see available projects")
		return
	}

	entry, err := svc.Start(project.ID, description)
	if err != nil {
		fail("Failed to start timer", err, "")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Started: %s @ %s\n", describeEntry(*entry), project.Name)
}

// findProject resolves a project reference: exact id match first, then
// a unique case-insensitive name match among non-archived projects.
func findProject(svc *service.Service, ref string) (*model.Project, error) {
	projects, err := svc.Projects(true)
	if err != nil {
		return nil, err
	}

	for _, p := range projects {
		if p.ID == ref {
			return &p, nil
		}
	}

	var matches []model.Project
	for _, p := range projects {
		if !p.IsArchived && strings.EqualFold(p.Name, ref) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 1:
		return &matches[0], nil
	case 0:
		return nil, fmt.Errorf("no project matches %q", ref)
	default:
		return nil, fmt.Errorf("%d projects match %q, use the project id", len(matches), ref)
	}
}

// describeEntry renders an entry description for confirmation output,
// falling back to a placeholder for empty descriptions.
func describeEntry(e model.TimeEntry) string {
	if e.Description == "" {
		return "(no description)"
	}
	return e.Description
}
