package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/f3rmion/reword/internal/backup"
	"github.com/f3rmion/reword/internal/clipboard"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all settings as a commented YAML backup",
	Long: `Write every settings section to a commented YAML document that can be
edited by hand and imported again. Word lists are not included.

The backup contains translation engine API keys; keep it private.

Examples:
  reword export
  reword export -o backup.yaml
  reword export -o - --copy`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportOutput string
	exportExt    string
	exportCopy   bool
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file, - for stdout (default reword_settings_backup_<date>.<ext>)")
	exportCmd.Flags().StringVar(&exportExt, "ext", "yaml", "Extension of the default file name: yaml or txt")
	exportCmd.Flags().BoolVar(&exportCopy, "copy", false, "Also copy the backup to the clipboard")
}

func runExport(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	now := time.Now()
	text, err := backup.Serialize(settings, now)
	if err != nil {
		return fmt.Errorf("exporting settings: %w", err)
	}

	if exportCopy {
		if err := clipboard.Write(text); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		slog.Info("backup copied to clipboard", slog.Int("bytes", len(text)))
	}

	path := exportOutput
	if path == "" {
		path = backup.FileName(now, exportExt)
	}
	if path == "-" {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}

	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	slog.Info("settings exported", slog.String("path", path))
	return nil
}
