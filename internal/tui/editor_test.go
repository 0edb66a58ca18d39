package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/reword/internal/reword"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func send(t *testing.T, m EditorModel, msgs ...tea.Msg) (EditorModel, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(EditorModel)
		require.True(t, ok)
	}
	return m, cmd
}

func fieldIndex(t *testing.T, label string) int {
	t.Helper()
	for i, f := range fields {
		if f.label == label {
			return i
		}
	}
	t.Fatalf("no field %q", label)
	return -1
}

// moveTo returns the key presses that take the cursor from the top to label.
func moveTo(t *testing.T, label string) []tea.Msg {
	t.Helper()
	var msgs []tea.Msg
	for i := 0; i < fieldIndex(t, label); i++ {
		msgs = append(msgs, keyRunes("j"))
	}
	return msgs
}

func newEditor(t *testing.T) EditorModel {
	t.Helper()
	m, _ := send(t, NewEditor(reword.DefaultSettings(), nil), tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func TestEditor_DoesNotTouchInput(t *testing.T) {
	t.Parallel()

	settings := reword.DefaultSettings()
	m, _ := send(t, NewEditor(settings, nil), moveTo(t, "Translation first")...)
	m, _ = send(t, m, keyEnter)

	assert.False(t, settings.Styles[reword.CategoryKnown].Horizontal.TranslationFirst)
	assert.True(t, m.Settings().Styles[reword.CategoryKnown].Horizontal.TranslationFirst)
	assert.True(t, m.Dirty())
}

func TestEditor_NormalizesLegacyStyles(t *testing.T) {
	t.Parallel()

	settings := reword.DefaultSettings()
	settings.Styles[reword.CategoryWant] = reword.StyleConfig{Color: "#000"}
	delete(settings.Styles, reword.CategoryLearning)

	got := NewEditor(settings, nil).Settings()

	want := got.Styles[reword.CategoryWant]
	require.NotNil(t, want.Horizontal)
	require.NotNil(t, want.Vertical)
	assert.Equal(t, reword.LayoutHorizontal, want.LayoutMode)
	assert.Contains(t, got.Styles, reword.CategoryLearning)
}

func TestEditor_Tabs(t *testing.T) {
	t.Parallel()

	m := newEditor(t)
	assert.Equal(t, reword.CategoryKnown, m.category())

	m, _ = send(t, m, keyTab)
	assert.Equal(t, reword.CategoryWant, m.category())

	m, _ = send(t, m, keyTab, keyTab)
	assert.Equal(t, reword.CategoryKnown, m.category())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, reword.CategoryLearning, m.category())
}

func TestEditor_Toggles(t *testing.T) {
	t.Parallel()

	m := newEditor(t)

	// Layout is the first row.
	m, _ = send(t, m, keyEnter)
	s := m.Settings().Styles[reword.CategoryKnown]
	assert.Equal(t, reword.LayoutVertical, s.LayoutMode)

	// Translation first now edits the vertical config.
	m, _ = send(t, m, keyRunes("j"), keyEnter)
	s = m.Settings().Styles[reword.CategoryKnown]
	assert.False(t, s.Vertical.TranslationFirst)
	assert.False(t, s.Horizontal.TranslationFirst)

	m, _ = send(t, m, keyRunes("j"), keyEnter)
	s = m.Settings().Styles[reword.CategoryKnown]
	assert.Equal(t, reword.BaselineOriginal, s.Vertical.BaselineTarget)

	m, _ = send(t, m, keyRunes("j"), keyRunes(" "))
	assert.False(t, m.Settings().OriginalText.Show)
}

func TestEditor_BaselineIgnoredWhenHorizontal(t *testing.T) {
	t.Parallel()

	m := newEditor(t)
	m, _ = send(t, m, moveTo(t, "Baseline")...)
	m, _ = send(t, m, keyEnter)

	assert.False(t, m.Dirty())
	assert.Equal(t, reword.BaselineTranslation, m.Settings().Styles[reword.CategoryKnown].Vertical.BaselineTarget)
}

func TestEditor_UnderlineCycle(t *testing.T) {
	t.Parallel()

	m := newEditor(t)
	m, _ = send(t, m, moveTo(t, "Underline")...)

	var got []reword.UnderlineStyle
	for range underlineCycle {
		m, _ = send(t, m, keyEnter)
		got = append(got, m.Settings().Styles[reword.CategoryKnown].UnderlineStyle)
	}

	assert.Equal(t, []reword.UnderlineStyle{
		reword.UnderlineSolid, reword.UnderlineDashed, reword.UnderlineDotted, reword.UnderlineWavy, reword.UnderlineNone,
	}, got)
}

func TestEditor_EditText(t *testing.T) {
	t.Parallel()

	m := newEditor(t)
	m, _ = send(t, m, moveTo(t, "Color")...)
	m, _ = send(t, m, keyEnter)
	require.True(t, m.editing)
	assert.Equal(t, "#16a34a", m.input.Value())

	m.input.SetValue("  tomato ")
	m, _ = send(t, m, keyEnter)

	assert.False(t, m.editing)
	assert.Equal(t, "tomato", m.Settings().Styles[reword.CategoryKnown].Color)
}

func TestEditor_EditCancelled(t *testing.T) {
	t.Parallel()

	m := newEditor(t)
	m, _ = send(t, m, moveTo(t, "Original prefix")...)
	m, _ = send(t, m, keyEnter)
	m.input.SetValue("[")
	m, _ = send(t, m, keyEsc)

	assert.False(t, m.editing)
	assert.False(t, m.Dirty())
	assert.Equal(t, "(", m.Settings().Styles[reword.CategoryKnown].Horizontal.Wrappers.Original.Prefix)
}

func TestEditor_Density(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "valid", input: "42.5", want: 42.5},
		{name: "upper bound", input: "100", want: 100},
		{name: "too large", input: "150", want: 10, wantErr: true},
		{name: "negative", input: "-1", want: 10, wantErr: true},
		{name: "not a number", input: "lots", want: 10, wantErr: true},
		{name: "NaN", input: "NaN", want: 10, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newEditor(t)
			m, _ = send(t, m, moveTo(t, "Density")...)
			m, _ = send(t, m, keyEnter)
			m.input.SetValue(tt.input)
			m, _ = send(t, m, keyEnter)

			assert.Equal(t, tt.want, m.Settings().Styles[reword.CategoryKnown].DensityValue)
			assert.Equal(t, tt.wantErr, m.failed)
		})
	}
}

func TestEditor_DensityModeClamps(t *testing.T) {
	t.Parallel()

	m := newEditor(t)
	m, _ = send(t, m, keyTab) // want: percent 100
	m, _ = send(t, m, moveTo(t, "Density mode")...)
	m, _ = send(t, m, keyEnter)

	s := m.Settings().Styles[reword.CategoryWant]
	assert.Equal(t, reword.DensityCount, s.DensityMode)
	assert.Equal(t, float64(maxDensityCount), s.DensityValue)
}

func TestEditor_Save(t *testing.T) {
	t.Parallel()

	var saved []reword.AllSettings
	save := func(s reword.AllSettings) error {
		saved = append(saved, s)
		return nil
	}

	m, _ := send(t, NewEditor(reword.DefaultSettings(), save), tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = send(t, m, moveTo(t, "Bold")...)
	m, cmd := send(t, m, keyEnter, keyRunes("s"))
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	require.Len(t, saved, 1)
	assert.True(t, saved[0].Styles[reword.CategoryKnown].IsBold)
	assert.False(t, m.Dirty())
	assert.Equal(t, "Saved", m.status)
}

func TestEditor_SaveFailure(t *testing.T) {
	t.Parallel()

	save := func(reword.AllSettings) error { return errors.New("disk full") }

	m, _ := send(t, NewEditor(reword.DefaultSettings(), save), tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = send(t, m, keyEnter)
	m, cmd := send(t, m, keyRunes("s"))
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.True(t, m.Dirty())
	assert.True(t, m.failed)
	assert.Contains(t, m.status, "disk full")
}

func TestEditor_QuitAsksWhenDirty(t *testing.T) {
	t.Parallel()

	m := newEditor(t)
	_, cmd := send(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m, _ = send(t, m, keyEnter)
	m, cmd = send(t, m, keyRunes("q"))
	assert.Nil(t, cmd)
	assert.True(t, m.quitAsk)

	_, cmd = send(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEditor_View(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Loading...", NewEditor(reword.DefaultSettings(), nil).View())

	m := newEditor(t)
	view := m.View()
	assert.Contains(t, view, "Reword Styles")
	assert.Contains(t, view, "Translation first")
	assert.Contains(t, view, "remember")
	assert.Contains(t, view, "reword-wrapper")

	m, _ = send(t, m, keyRunes("?"))
	assert.Contains(t, m.View(), "Save settings")
	m, _ = send(t, m, keyRunes("x"))
	assert.Contains(t, m.View(), "Reword Styles")
}
