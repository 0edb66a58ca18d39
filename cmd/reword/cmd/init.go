package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/reword/internal/config"
	"github.com/f3rmion/reword/internal/reword"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize reword configuration",
	Long: `Write the default settings to settings.yaml in your config directory.

The file uses the same commented format as 'reword export', so it can be
edited by hand.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing settings")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := config.EnsureConfigDir(getConfigDir())
	if err != nil {
		return err
	}

	path := filepath.Join(dir, config.SettingsFile)
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("settings already exist: %s\nUse --force to overwrite", path)
	}

	if err := config.Save(dir, reword.DefaultSettings()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Run 'reword' to edit the word styles")
	fmt.Fprintln(out, "  2. Run 'reword preview' to see them in a sample sentence")
	return nil
}
