package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/f3rmion/reword/internal/preview"
	"github.com/f3rmion/reword/internal/reword"
)

var previewCmd = &cobra.Command{
	Use:   "preview [original replacement]",
	Short: "Show replaced words in a sample sentence",
	Long: `Show how each category's style looks in a sample sentence. Colors,
bold, italic and underline are drawn with terminal styles; vertical
layouts put the annotation on its own line.

Examples:
  reword preview
  reword preview 单词 word --category known`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected no arguments or <original> <replacement>, got %d", len(args))
		}
		return nil
	},
	RunE: runPreview,
}

var previewCategory string

var previewHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#4ecdc4"))

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewCategory, "category", "c", "", "Only preview this category")
}

func runPreview(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	original, translation := preview.SampleOriginal, preview.SampleTranslation
	if len(args) == 2 {
		original, translation = args[0], args[1]
	}

	cats := reword.Categories
	if previewCategory != "" {
		cats = []reword.WordCategory{reword.WordCategory(previewCategory)}
	}

	p := preview.New(lipgloss.NewRenderer(cmd.OutOrStdout()))
	out := cmd.OutOrStdout()
	for _, cat := range cats {
		s, ok := settings.Styles[cat]
		if !ok {
			return fmt.Errorf("previewing %s: no style for this category", cat)
		}

		lines := p.Sentence(preview.SampleBefore, original, translation, preview.SampleAfter, s, settings.OriginalText)
		fmt.Fprintln(out, previewHeaderStyle.Render(string(cat)))
		fmt.Fprintln(out, strings.Join(lines, "\n"))
		fmt.Fprintln(out)
	}

	return nil
}
