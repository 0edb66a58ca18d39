package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/f3rmion/reword/internal/anki"
)

var ankiCmd = &cobra.Command{
	Use:   "anki",
	Short: "Work with Anki decks",
	Long:  `Commands for checking the Anki settings against an exported .apkg file.`,
}

var ankiCheckCmd = &cobra.Command{
	Use:   "check [file.apkg]",
	Short: "Check the Anki settings against Anki or a deck export",
	Long: `Check that the decks and note type named in the anki settings exist.
Notes in those decks whose interval reached the sync interval are listed
as mastered.

Without a file the running Anki is asked through AnkiConnect at the
configured url; with a file the .apkg export is read instead.

Examples:
  reword anki check
  reword anki check collection.apkg`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnkiCheck,
}

var ankiTemplatesCmd = &cobra.Command{
	Use:   "templates <file.apkg>",
	Short: "Write the configured card templates into a deck export",
	Long: `Replace the first card template of the configured note type with the
front and back templates from the anki settings, and write the result
to a new .apkg file.

Example:
  reword anki templates collection.apkg -o updated.apkg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnkiTemplates,
}

var (
	ankiShowSummary    bool
	ankiTemplateOutput string
)

func init() {
	rootCmd.AddCommand(ankiCmd)
	ankiCmd.AddCommand(ankiCheckCmd)
	ankiCmd.AddCommand(ankiTemplatesCmd)

	ankiCheckCmd.Flags().BoolVar(&ankiShowSummary, "summary", false, "Print the package contents as well (file only)")

	ankiTemplatesCmd.Flags().StringVarP(&ankiTemplateOutput, "output", "o", "", "Output .apkg file (required)")
	ankiTemplatesCmd.MarkFlagRequired("output")
}

func runAnkiCheck(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cfg := settings.Anki

	var r anki.Report
	if len(args) == 0 {
		slog.Debug("checking via AnkiConnect", slog.String("url", cfg.URL))
		r, err = anki.CheckRemote(cmd.Context(), anki.NewClient(cfg.URL), cfg)
		if err != nil {
			return fmt.Errorf("checking %s: %w", cfg.URL, err)
		}
	} else {
		pkg, err := anki.OpenPackage(args[0])
		if err != nil {
			return fmt.Errorf("opening package: %w", err)
		}
		defer pkg.Close()

		if ankiShowSummary {
			fmt.Fprintln(out, pkg.Summary())
		}
		r = anki.Check(pkg, cfg)
	}

	for _, name := range []string{cfg.DeckNameWant, cfg.DeckNameLearning} {
		status := "ok"
		for _, missing := range r.MissingDecks {
			if missing == name {
				status = "missing"
			}
		}
		fmt.Fprintf(out, "Deck %-30q %s\n", name, status)
	}
	modelStatus := "ok"
	if !r.ModelFound {
		modelStatus = "missing"
	}
	fmt.Fprintf(out, "Note type %-25q %s\n", cfg.ModelName, modelStatus)

	if len(r.Mastered) > 0 {
		fmt.Fprintf(out, "\nMastered (interval >= %d days): %d\n", cfg.SyncInterval, len(r.Mastered))
		for _, w := range r.Mastered {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	if !r.OK() {
		return errors.New("anki settings do not match the collection")
	}
	return nil
}

func runAnkiTemplates(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	pkg, err := anki.OpenPackage(args[0])
	if err != nil {
		return fmt.Errorf("opening package: %w", err)
	}
	defer pkg.Close()

	if err := pkg.ApplyTemplates(settings.Anki.ModelName, settings.Anki.Templates); err != nil {
		return fmt.Errorf("applying templates: %w", err)
	}
	if err := pkg.SaveAs(ankiTemplateOutput); err != nil {
		return fmt.Errorf("saving package: %w", err)
	}

	slog.Info("templates written", slog.String("model", settings.Anki.ModelName), slog.String("path", ankiTemplateOutput))
	return nil
}
