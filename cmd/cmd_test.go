package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/adjacent/internal/config"
)

// newTestCommand returns a fresh command with the global flags parsed
// from args.
func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addGlobalFlags(c.Flags())
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(newTestCommand(t))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfig_FileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drill.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"numerator": 2, "denominator": 3, "weighted": true}`), 0o600))

	cfg, err := loadConfig(newTestCommand(t, "--config", path, "--denominator", "6", "--undirected=false"))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.MasteryNumerator)
	assert.Equal(t, 6, cfg.MasteryDenominator)
	assert.True(t, cfg.Weighted)
	assert.False(t, cfg.Undirected)
	assert.False(t, cfg.RandomizeModes, "explicit mode flags turn off random modes")
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"numerator": "four"}`), 0o600))

	_, err := loadConfig(newTestCommand(t, "--config", path))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestPreview_PrintsBothRepresentations(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"preview", "--seed", "7", "--count", "2", "--weighted", "--undirected"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	text := ansi.Strip(out.String())
	assert.Contains(t, text, "── Graph 1/2 (undirected, weighted) ──")
	assert.Contains(t, text, "── Graph 2/2 (undirected, weighted) ──")
	assert.Equal(t, 2, strings.Count(text, "Adjacency matrix"))
	assert.Equal(t, 2, strings.Count(text, "Adjacency list"))
	assert.Regexp(t, `\[[A-F]\]`, text)
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "adjacent (devel)\n", out.String())
}
