package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/f3rmion/reword/internal/config"
	"github.com/f3rmion/reword/internal/reword"
)

// run executes the root command with fresh flag values. Commands share
// package state, so these tests do not run in parallel.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	renderCategory, renderID = string(reword.CategoryWant), ""
	previewCategory = ""
	exportOutput, exportExt, exportCopy = "", "yaml", false
	importDryRun, importPaste = false, false
	initForce = false
	ankiShowSummary, ankiTemplateOutput = false, ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", dir}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reword")

	out, err := run(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, config.SettingsFile)

	_, err = os.Stat(filepath.Join(dir, config.SettingsFile))
	require.NoError(t, err)

	_, err = run(t, dir, "init")
	assert.ErrorContains(t, err, "already exist")

	_, err = run(t, dir, "init", "--force")
	assert.NoError(t, err)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "render", "记住", "remember", "--id", "w-1")
	require.NoError(t, err)

	nodes, err := html.ParseFragment(strings.NewReader(out), nil)
	require.NoError(t, err)
	require.NotEmpty(t, nodes)
	assert.Contains(t, out, `data-entry-id="w-1"`)
	assert.Contains(t, out, "(记住)")

	_, err = run(t, dir, "render", "a", "b", "--category", "nope")
	assert.Error(t, err)
}

func TestRender_RandomID(t *testing.T) {
	out, err := run(t, t.TempDir(), "render", "记住", "remember")
	require.NoError(t, err)
	assert.Regexp(t, `data-entry-id="[0-9a-f-]{36}"`, out)
}

func TestPreview(t *testing.T) {
	out, err := run(t, t.TempDir(), "preview", "--category", "known")
	require.NoError(t, err)
	assert.Contains(t, out, "known")
	assert.Contains(t, out, "(记住)remember")

	_, err = run(t, t.TempDir(), "preview", "only-one")
	assert.Error(t, err)
}

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	backupPath := filepath.Join(t.TempDir(), "backup.yaml")

	_, err := run(t, dir, "export", "-o", backupPath)
	require.NoError(t, err)

	data, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Reword settings backup")

	edited := strings.Replace(string(data), "  show: true", "  show: false", 1)
	require.NoError(t, os.WriteFile(backupPath, []byte(edited), 0600))

	out, err := run(t, dir, "import", backupPath, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "layout_style")

	settings, _, err := config.Load(dir)
	require.NoError(t, err)
	assert.True(t, settings.OriginalText.Show, "dry run must not save")

	_, err = run(t, dir, "import", backupPath)
	require.NoError(t, err)

	settings, _, err = config.Load(dir)
	require.NoError(t, err)
	assert.False(t, settings.OriginalText.Show)
}

func TestExport_Stdout(t *testing.T) {
	out, err := run(t, t.TempDir(), "export", "-o", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Reword settings backup"))
}

func TestImport_Errors(t *testing.T) {
	dir := t.TempDir()
	src := t.TempDir()

	notMapping := filepath.Join(src, "list.yaml")
	require.NoError(t, os.WriteFile(notMapping, []byte("- a\n- b\n"), 0600))
	_, err := run(t, dir, "import", notMapping)
	assert.ErrorContains(t, err, "not a valid settings backup")

	unknown := filepath.Join(src, "other.json")
	require.NoError(t, os.WriteFile(unknown, []byte("theme: dark\n"), 0600))
	_, err = run(t, dir, "import", unknown)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, config.SettingsFile))
	assert.True(t, os.IsNotExist(err), "nothing recognized, nothing saved")

	_, err = run(t, dir, "import")
	assert.Error(t, err)
}
