package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	cmd := newRootCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.ElementsMatch(t, []string{"config", "convert", "export"}, names)
}

func TestRootCommand_LegacyAliases(t *testing.T) {
	cmd := newRootCommand()

	convert, _, err := cmd.Find([]string{"svg2tsx"})
	require.NoError(t, err)
	assert.Equal(t, "convert", convert.Name())

	export, _, err := cmd.Find([]string{"img2export"})
	require.NoError(t, err)
	assert.Equal(t, "export", export.Name())
}

func TestRootCommand_ConfigFlagFeedsSubcommands(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cozy.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"convert": {"barrel": "icons.ts", "move_originals": false}}`), 0o600))
	icons := filepath.Join(dir, "icons")
	require.NoError(t, os.Mkdir(icons, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(icons, "star.svg"), []byte(`<svg fill="gold"/>`), 0o644))

	_, _, err := executeRoot(t, "--config", cfgPath, "convert", icons)

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(icons, "icons.ts"))
	assert.FileExists(t, filepath.Join(icons, "Star.tsx"))
	assert.FileExists(t, filepath.Join(icons, "star.svg"))

	stdout, _, err := executeRoot(t, "--config", cfgPath, "config")

	require.NoError(t, err)
	assert.Contains(t, stdout, cfgPath)
	assert.Contains(t, stdout, "icons.ts")
}

func TestRootCommand_MissingConfigFileFails(t *testing.T) {
	_, _, err := executeRoot(t, "--config", filepath.Join(t.TempDir(), "missing.json"), "config")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestGetVersionString(t *testing.T) {
	original := version
	t.Cleanup(func() { version = original })

	version = "dev"
	assert.Equal(t, "dev (built from source)", getVersionString())

	version = "1.2.3"
	assert.Equal(t, "1.2.3 (commit: unknown, built: unknown)", getVersionString())
}
