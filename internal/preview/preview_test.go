package preview

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/reword/internal/reword"
)

func plain(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = ansi.Strip(l)
	}
	return out
}

func newPreviewer() *Previewer {
	return New(lipgloss.NewRenderer(io.Discard))
}

var show = reword.OriginalTextConfig{Show: true}

// lead is the display width of SampleBefore: eleven wide runes.
const lead = 22

func TestSentence(t *testing.T) {
	t.Parallel()

	vertical := func(translationFirst bool, target reword.BaselineTarget) reword.StyleConfig {
		s := reword.DefaultStyles()[reword.CategoryWant]
		s.LayoutMode = reword.LayoutVertical
		s.Vertical = &reword.LayoutSpecificConfig{TranslationFirst: translationFirst, BaselineTarget: target}
		return s
	}

	tests := []struct {
		name  string
		style reword.StyleConfig
		opts  reword.OriginalTextConfig
		want  []string
	}{
		{
			name:  "horizontal default",
			style: reword.DefaultStyles()[reword.CategoryWant],
			opts:  show,
			want:  []string{SampleBefore + "(记住)remember" + SampleAfter},
		},
		{
			name:  "original hidden",
			style: reword.DefaultStyles()[reword.CategoryWant],
			opts:  reword.OriginalTextConfig{Show: false},
			want:  []string{SampleBefore + "remember" + SampleAfter},
		},
		{
			name:  "translation base, annotation under",
			style: vertical(true, reword.BaselineTranslation),
			opts:  show,
			want: []string{
				SampleBefore + "remember" + SampleAfter,
				strings.Repeat(" ", lead+2) + "记住",
			},
		},
		{
			name:  "original base, annotation over",
			style: vertical(true, reword.BaselineOriginal),
			opts:  show,
			want: []string{
				strings.Repeat(" ", lead) + "remember",
				SampleBefore + "  记住  " + SampleAfter,
			},
		},
		{
			name:  "translation base, annotation over",
			style: vertical(false, reword.BaselineTranslation),
			opts:  show,
			want: []string{
				strings.Repeat(" ", lead+2) + "记住",
				SampleBefore + "remember" + SampleAfter,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := newPreviewer().Sentence(SampleBefore, SampleOriginal, SampleTranslation, SampleAfter, tt.style, tt.opts)
			assert.Equal(t, tt.want, plain(got))
		})
	}
}

func TestWord_LegacyStyle(t *testing.T) {
	t.Parallel()

	got := newPreviewer().Word("记住", "remember", reword.StyleConfig{Color: "red"}, show)
	assert.Equal(t, []string{"(记住)remember"}, plain(got))
}

func TestWord_Wrappers(t *testing.T) {
	t.Parallel()

	s := reword.StyleConfig{
		LayoutMode: reword.LayoutHorizontal,
		Horizontal: &reword.LayoutSpecificConfig{
			TranslationFirst: true,
			Wrappers: reword.Wrappers{
				Translation: reword.Wrapper{Prefix: "<", Suffix: ">"},
				Original:    reword.Wrapper{Prefix: "[", Suffix: "]"},
			},
		},
	}

	got := newPreviewer().Word("记住", "remember", s, show)
	assert.Equal(t, []string{"<remember>[记住]"}, plain(got))

	got = newPreviewer().Word("记住", "remember", s, reword.OriginalTextConfig{Show: false})
	assert.Equal(t, []string{"<remember>"}, plain(got))
}

func TestCategory(t *testing.T) {
	t.Parallel()

	settings := reword.DefaultSettings()

	got, ok := newPreviewer().Category(settings, reword.CategoryLearning)
	require.True(t, ok)
	assert.Equal(t, []string{SampleBefore + "(记住)remember" + SampleAfter}, plain(got))

	_, ok = newPreviewer().Category(settings, "other")
	assert.False(t, ok)
}
