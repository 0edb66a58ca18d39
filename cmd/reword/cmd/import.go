package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/reword/internal/backup"
	"github.com/f3rmion/reword/internal/clipboard"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import settings from a YAML backup",
	Long: `Read a settings backup and replace every section it contains. Sections
missing from the backup keep their current values; a section that is
present replaces the current one entirely.

Examples:
  reword import reword_settings_backup_2024-03-09.yaml
  reword import backup.yaml --dry-run
  reword import --paste`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

var (
	importDryRun bool
	importPaste  bool
)

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Report what would be imported without saving")
	importCmd.Flags().BoolVar(&importPaste, "paste", false, "Read the backup from the clipboard")
}

func runImport(cmd *cobra.Command, args []string) error {
	data, source, err := readBackup(args)
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	res, err := backup.Import(data, &settings)
	if err != nil {
		var perr *backup.ParseError
		if errors.As(err, &perr) {
			return fmt.Errorf("%s is not a valid settings backup: %w", source, err)
		}
		return err
	}

	for _, e := range res.Errors {
		slog.Warn("section imported with problems", slog.String("error", e.Error()))
	}
	if !res.Recognized() {
		slog.Warn("no settings sections recognized", slog.String("source", source))
		return nil
	}

	names := make([]string, len(res.Applied))
	for i, s := range res.Applied {
		names[i] = string(s)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sections: %s\n", strings.Join(names, ", "))

	if importDryRun {
		slog.Info("dry run, nothing saved", slog.Int("sections", res.Count()))
		return nil
	}

	if err := saveSettings(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	slog.Info("settings imported", slog.String("source", source), slog.Int("sections", res.Count()))
	return nil
}

// readBackup returns the backup text and a name for it.
func readBackup(args []string) ([]byte, string, error) {
	if importPaste {
		if len(args) > 0 {
			return nil, "", errors.New("--paste cannot be combined with a file argument")
		}
		text, err := clipboard.Read()
		if err != nil {
			return nil, "", fmt.Errorf("reading clipboard: %w", err)
		}
		return []byte(text), "clipboard", nil
	}

	if len(args) == 0 {
		return nil, "", errors.New("no backup file given")
	}

	path := args[0]
	if !backup.AcceptedExtension(path) {
		slog.Warn("unexpected backup file extension, parsing anyway", slog.String("path", path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading backup: %w", err)
	}
	return data, path, nil
}
