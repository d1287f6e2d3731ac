package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EricBell/local-project-manager/internal/models"
	"github.com/EricBell/local-project-manager/internal/output"
	"github.com/EricBell/local-project-manager/internal/scanner"
)

var (
	pruneDelete bool
	pruneYes    bool
)

var pruneCmd = &cobra.Command{
	Use:   "prune [path]",
	Short: "List or delete removal candidates",
	Long: `List stale, remote-less projects flagged as removal candidates.

Candidates are either large (worth archiving elsewhere) or tiny (throwaway
experiments). Nothing is deleted unless --delete is given, and each project
is confirmed individually unless --yes is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		return pruneRun(arg)
	},
}

func init() {
	pruneCmd.Flags().BoolVar(&pruneDelete, "delete", false, "Delete the candidates (asks per project)")
	pruneCmd.Flags().BoolVarP(&pruneYes, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.AddCommand(pruneCmd)
}

func pruneRun(arg string) error {
	root, err := resolveScanRoot(arg)
	if err != nil {
		return err
	}

	ui.Info("Scanning %s", root)
	projects, err := scanner.Scan(root, scanOptionsFromConfig(root))
	if err != nil {
		return err
	}

	var candidates []models.Project
	var totalMB float64
	for _, p := range projects {
		if p.Prunable {
			candidates = append(candidates, p)
			totalMB += p.SizeMB
		}
	}

	if len(candidates) == 0 {
		ui.Success("No removal candidates found.")
		return nil
	}

	table := ui.Table([]string{"Project", "Path", "Age", "Size"})
	for i := range candidates {
		p := &candidates[i]
		table.Append([]string{
			output.Cyan(p.Name),
			p.Path,
			p.AgeDisplay(),
			fmt.Sprintf("%.1f MB", p.SizeMB),
		})
	}
	table.Render()
	ui.Info("%d candidate(s), %.1f MB reclaimable", len(candidates), totalMB)

	if !pruneDelete {
		return nil
	}

	return deleteCandidates(candidates)
}

func deleteCandidates(candidates []models.Project) error {
	reader := bufio.NewReader(os.Stdin)

	for _, p := range candidates {
		if dryRun {
			ui.DryRunMsg("Would delete %s (%.1f MB)", p.Path, p.SizeMB)
			continue
		}

		if !pruneYes {
			fmt.Fprintf(ui.Out, "Delete %s (%.1f MB)? [y/N] ", p.Path, p.SizeMB)
			answer, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read confirmation: %w", err)
			}
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				ui.Info("Skipped %s", p.Name)
				continue
			}
		}

		if err := os.RemoveAll(p.Path); err != nil {
			ui.Error("Failed to delete %s: %v", p.Path, err)
			continue
		}
		ui.Success("Deleted %s", p.Path)
	}

	return nil
}
