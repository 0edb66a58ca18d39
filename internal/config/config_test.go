package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/reword/internal/backup"
	"github.com/f3rmion/reword/internal/reword"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Parallel()

	got, res, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count())

	if diff := cmp.Diff(reword.DefaultSettings(), got); diff != "" {
		t.Errorf("unexpected settings (-want +got):\n%s", diff)
	}
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := reword.DefaultSettings()
	s.OriginalText.Show = false
	s.Anki.Enabled = true
	s.Engines[0].APIKey = "key-1"

	require.NoError(t, Save(dir, s))

	got, res, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, len(backup.Sections), res.Count())

	if diff := cmp.Diff(s, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFile), []byte("layout_style:\n  show: false\n"), 0644))

	got, res, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []backup.Section{backup.SectionLayoutStyle}, res.Applied)
	assert.False(t, got.OriginalText.Show)
	assert.Equal(t, reword.DefaultSettings().Anki, got.Anki)
}

func TestLoad_BrokenFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFile), []byte("- not\n- a mapping\n"), 0644))

	got, _, err := Load(dir)
	require.Error(t, err)

	var perr *backup.ParseError
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, reword.DefaultSettings().AutoTranslate, got.AutoTranslate)
}

func TestEnsureConfigDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "reword")
	got, err := EnsureConfigDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
