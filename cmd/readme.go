package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/EricBell/local-project-manager/internal/readme"
	"github.com/EricBell/local-project-manager/internal/scanner"
)

var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Create, view, or delete a project README",
}

var readmeCreateCmd = &cobra.Command{
	Use:   "create <dir>",
	Short: "Create a README.md templated by project type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return readmeCreateRun(args[0])
	},
}

var readmeViewCmd = &cobra.Command{
	Use:   "view <dir>",
	Short: "Print the project's README",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return readmeViewRun(args[0])
	},
}

var readmeDeleteCmd = &cobra.Command{
	Use:   "delete <dir>",
	Short: "Delete the project's README",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return readmeDeleteRun(args[0])
	},
}

func init() {
	readmeCmd.AddCommand(readmeCreateCmd)
	readmeCmd.AddCommand(readmeViewCmd)
	readmeCmd.AddCommand(readmeDeleteCmd)
	rootCmd.AddCommand(readmeCmd)
}

func readmeCreateRun(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	name := filepath.Base(abs)
	projectType := scanner.DetectType(abs)

	if dryRun {
		ui.DryRunMsg("Would create README.md in %s (%s template)", abs, projectType)
		return nil
	}

	path, err := readme.Create(abs, name, projectType)
	if err != nil {
		return err
	}
	ui.Success("Created %s", path)
	return nil
}

func readmeViewRun(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	path := scanner.FindReadme(abs)
	if path == "" {
		return fmt.Errorf("no README found in %s", abs)
	}

	content, err := readme.Read(path)
	if err != nil {
		return err
	}
	fmt.Fprint(ui.Out, content)
	return nil
}

func readmeDeleteRun(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	path := scanner.FindReadme(abs)
	if path == "" {
		return fmt.Errorf("no README found in %s", abs)
	}

	if dryRun {
		ui.DryRunMsg("Would delete %s", path)
		return nil
	}

	if err := readme.Delete(path); err != nil {
		return err
	}
	ui.Success("Deleted %s", path)
	return nil
}
