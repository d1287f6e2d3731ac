package cmd

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var openCmd = &cobra.Command{
	Use:   "open <dir>",
	Short: "Open a project in the configured editor",
	Long: `Open a project directory in the editor configured under
integrations.editor (default: $EDITOR, falling back to nano).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return openRun(args[0])
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func openRun(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	editor := viper.GetString("integrations.editor")
	if dryRun {
		ui.DryRunMsg("Would open %s in %s", abs, editor)
		return nil
	}

	editCmd := exec.Command(editor, abs)
	editCmd.Stdin = os.Stdin
	editCmd.Stdout = os.Stdout
	editCmd.Stderr = os.Stderr
	return editCmd.Run()
}
