package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricBell/local-project-manager/internal/output"
	"github.com/EricBell/local-project-manager/internal/scanner"
)

// testEnv sets up isolated config dir, viper, and output for testing.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	// Override configDirFunc for tests
	origFunc := configDirFunc
	configDirFunc = func() (string, error) { return dir, nil }
	t.Cleanup(func() { configDirFunc = origFunc })

	// Reset viper
	viper.Reset()
	viper.SetDefault("scan.default_path", dir)
	viper.SetDefault("scan.ignore_patterns", defaultIgnorePatterns)
	viper.SetDefault("classification.active_days", scanner.DefaultActiveDays)
	viper.SetDefault("classification.dormant_days", scanner.DefaultDormantDays)
	viper.SetDefault("classification.large_threshold_mb", scanner.DefaultLargeThresholdMB)
	viper.SetDefault("classification.tiny_threshold_mb", scanner.DefaultTinyThresholdMB)
	viper.SetDefault("integrations.editor", "nano")

	// Initialize output
	ui = output.New()

	return dir
}

func TestConfigInit_CreatesFile(t *testing.T) {
	dir := testEnv(t)

	err := configInitRun()
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, "config.yaml")
	_, err = os.Stat(cfgPath)
	assert.NoError(t, err, "config file should exist")

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lpm configuration")
	assert.Contains(t, string(data), "classification")
	assert.Contains(t, string(data), "active_days: 30")
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	dir := testEnv(t)

	// Create existing file
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("existing"), 0644))

	configForce = false
	err := configInitRun()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestConfigInit_ForceOverwrite(t *testing.T) {
	dir := testEnv(t)

	// Create existing file
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("existing"), 0644))

	configForce = true
	t.Cleanup(func() { configForce = false })
	err := configInitRun()
	require.NoError(t, err)

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lpm configuration")
}

func TestDetectSource(t *testing.T) {
	fileValues := map[string]bool{"classification.active_days": true}

	assert.Equal(t, "(file)", detectSource("classification.active_days", "LPM_NOPE", fileValues))
	assert.Equal(t, "(default)", detectSource("classification.dormant_days", "LPM_NOPE", fileValues))

	t.Setenv("LPM_CLASSIFICATION_ACTIVE_DAYS", "7")
	assert.Equal(t, "(env: LPM_CLASSIFICATION_ACTIVE_DAYS)",
		detectSource("classification.active_days", "LPM_CLASSIFICATION_ACTIVE_DAYS", fileValues))
}

func TestFlattenKeys(t *testing.T) {
	parsed := map[string]any{
		"scan": map[string]any{
			"default_path": "/code",
		},
		"classification": map[string]any{
			"active_days": 30,
		},
	}

	result := make(map[string]bool)
	flattenKeys("", parsed, result)

	assert.True(t, result["scan.default_path"])
	assert.True(t, result["classification.active_days"])
	assert.False(t, result["scan"])
}

func TestReadIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".lpmignore")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nnode_modules\n\n.cache\n"), 0644))

	patterns := readIgnoreFile(path)
	assert.Equal(t, []string{"node_modules", ".cache"}, patterns)
}

func TestReadIgnoreFile_Missing(t *testing.T) {
	assert.Nil(t, readIgnoreFile(filepath.Join(t.TempDir(), ".lpmignore")))
}
