package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EricBell/local-project-manager/internal/models"
	"github.com/EricBell/local-project-manager/internal/output"
	"github.com/EricBell/local-project-manager/internal/scanner"
)

var (
	scanPrunable bool
	scanType     string
	scanClass    string
	scanSort     string
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory tree for projects",
	Long: `Scan a directory tree and list every detected project with its type,
git state, age, size, and health classification.

Without a path argument the configured scan.default_path is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		return scanRun(arg)
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanPrunable, "prunable", false, "Show only removal candidates")
	scanCmd.Flags().StringVar(&scanType, "type", "", "Filter by project type (e.g. Go, Python)")
	scanCmd.Flags().StringVar(&scanClass, "class", "", "Filter by classification (Active, Dormant, Stale, ...)")
	scanCmd.Flags().StringVar(&scanSort, "sort", "name", "Sort order: name, age, or size")
	rootCmd.AddCommand(scanCmd)
}

func scanRun(arg string) error {
	root, err := resolveScanRoot(arg)
	if err != nil {
		return err
	}

	opts := scanOptionsFromConfig(root)
	if verbose {
		opts.Progress = func(path string, found int) {
			ui.VerboseLog("scanning %s (%d projects)", path, found)
		}
	}

	ui.Info("Scanning %s", root)
	projects, err := scanner.Scan(root, opts)
	if err != nil {
		return err
	}

	projects = filterProjects(projects)
	sortProjects(projects, scanSort)

	if len(projects) == 0 {
		ui.Info("No projects found.")
		return nil
	}

	renderProjectTable(projects)
	ui.Success("%d project(s) found", len(projects))
	return nil
}

func filterProjects(projects []models.Project) []models.Project {
	var kept []models.Project
	for _, p := range projects {
		if scanPrunable && !p.Prunable {
			continue
		}
		if scanType != "" && !strings.EqualFold(string(p.Type), scanType) {
			continue
		}
		if scanClass != "" && !strings.EqualFold(string(p.Classification), scanClass) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func sortProjects(projects []models.Project, order string) {
	switch order {
	case "age":
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].LastModified.After(projects[j].LastModified)
		})
	case "size":
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].SizeMB > projects[j].SizeMB
		})
	default:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Name < projects[j].Name
		})
	}
}

func renderProjectTable(projects []models.Project) {
	table := ui.Table([]string{"Project", "Type", "Git", "Status", "Age", "Size", "Class", "Prune"})

	for i := range projects {
		p := &projects[i]

		git := "-"
		if p.HasVCS {
			git = "✓"
		}
		prune := ""
		if p.Prunable {
			prune = output.Red("✗")
		}

		table.Append([]string{
			output.Cyan(p.Name),
			string(p.Type),
			git,
			output.VCSStatusColor(p.VCSStatus),
			p.AgeDisplay(),
			fmt.Sprintf("%.1f MB", p.SizeMB),
			output.ClassColor(p.Classification),
			prune,
		})
	}

	table.Render()
}
