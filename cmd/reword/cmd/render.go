package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/f3rmion/reword/internal/markup"
	"github.com/f3rmion/reword/internal/reword"
)

var renderCmd = &cobra.Command{
	Use:   "render <original> <replacement>",
	Short: "Print the HTML markup of a replaced word",
	Long: `Render the markup the translator inserts into a page for one replaced
word, using the current style settings of its category.

Examples:
  reword render 记住 remember
  reword render 记住 remember --category learning --id w-42`,
	Args: cobra.ExactArgs(2),
	RunE: runRender,
}

var (
	renderCategory string
	renderID       string
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderCategory, "category", "c", string(reword.CategoryWant), "Word category: known, want, learning")
	renderCmd.Flags().StringVar(&renderID, "id", "", "Entry id stored on the element (random if not specified)")
}

func runRender(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	id := renderID
	if id == "" {
		id = uuid.NewString()
	}

	out, err := markup.Build(args[0], args[1], reword.WordCategory(renderCategory), settings.Styles, settings.OriginalText, id)
	if err != nil {
		return fmt.Errorf("rendering %q: %w", args[1], err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
