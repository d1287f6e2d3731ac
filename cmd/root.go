package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/EricBell/local-project-manager/internal/output"
	"github.com/EricBell/local-project-manager/internal/scanner"
)

// Package-level shared dependencies, initialized in cobra.OnInitialize.
var (
	ui *output.UI

	verbose bool
	dryRun  bool
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// defaultIgnorePatterns are the directory names skipped during scans unless
// overridden in configuration.
var defaultIgnorePatterns = []string{
	"node_modules",
	".venv",
	"venv",
	"env",
	"__pycache__",
	".pytest_cache",
	"target",
	"build",
	"dist",
	".next",
	".nuxt",
	".gradle",
	".idea",
}

var rootCmd = &cobra.Command{
	Use:   "lpm",
	Short: "Local Project Manager - find and triage projects on disk",
	Long: `lpm scans a directory tree for software projects and reports their
type, version-control state, size, age, and a derived health
classification, flagging stale throwaways as removal candidates.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
}

// Execute is the main entry point called from main.go.
func Execute(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initDeps)

	// Bare `lpm` scans the configured default path.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return scanRun("")
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would happen without making changes")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/lpm/config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	// If --config is explicitly set, use that file
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot find home directory: %v\n", err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "lpm")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("LPM")
	viper.AutomaticEnv()

	// Defaults via viper.SetDefault()
	cwd, _ := os.Getwd()

	viper.SetDefault("scan.default_path", cwd)
	viper.SetDefault("scan.ignore_patterns", defaultIgnorePatterns)
	viper.SetDefault("classification.active_days", scanner.DefaultActiveDays)
	viper.SetDefault("classification.dormant_days", scanner.DefaultDormantDays)
	viper.SetDefault("classification.large_threshold_mb", scanner.DefaultLargeThresholdMB)
	viper.SetDefault("classification.tiny_threshold_mb", scanner.DefaultTinyThresholdMB)
	viper.SetDefault("integrations.editor", defaultEditor())

	// Read config file if it exists (optional)
	_ = viper.ReadInConfig()
}

func initDeps() {
	ui = output.New()
	ui.Verbose = verbose
	ui.DryRun = dryRun
}

func defaultEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "nano"
}

// scanOptionsFromConfig assembles scanner options from the effective
// configuration. The ignore list is the configured patterns plus any
// .lpmignore entries found in the scan root and the config directory.
func scanOptionsFromConfig(root string) scanner.Options {
	opts := scanner.DefaultOptions()
	opts.ActiveDays = viper.GetInt("classification.active_days")
	opts.DormantDays = viper.GetInt("classification.dormant_days")
	opts.LargeThresholdMB = viper.GetFloat64("classification.large_threshold_mb")
	opts.TinyThresholdMB = viper.GetFloat64("classification.tiny_threshold_mb")

	opts.IgnorePatterns = viper.GetStringSlice("scan.ignore_patterns")
	opts.IgnorePatterns = append(opts.IgnorePatterns, readIgnoreFile(filepath.Join(root, ".lpmignore"))...)
	if dir, err := configDirFunc(); err == nil {
		opts.IgnorePatterns = append(opts.IgnorePatterns, readIgnoreFile(filepath.Join(dir, ".lpmignore"))...)
	}

	return opts
}

// readIgnoreFile returns the non-comment, non-blank directory names listed
// in an .lpmignore file. A missing file yields nothing.
func readIgnoreFile(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// resolveScanRoot picks the scan root: an explicit argument wins, otherwise
// the configured default path.
func resolveScanRoot(arg string) (string, error) {
	root := arg
	if root == "" {
		root = viper.GetString("scan.default_path")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve scan root: %w", err)
	}
	return abs, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(ui.Out, "lpm %s (commit %s, built %s)\n", buildVersion, buildCommit, buildDate)
	},
}
