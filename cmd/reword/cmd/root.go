// Package cmd contains all CLI commands for the reword tool.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/reword/internal/config"
	"github.com/f3rmion/reword/internal/reword"
	"github.com/f3rmion/reword/internal/tui"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reword",
	Short: "Style and back up word-replacement settings",
	Long: `reword manages the settings of the reword page translator: the way
replaced words are styled and laid out, and the YAML backup of all settings.

Each replaced word belongs to a category:
  - known     words you already master
  - want      words you want to learn
  - learning  words you are learning

Running 'reword' without arguments opens the interactive style editor.`,
	RunE: runEditor,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/reword)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig reads in ENV variables and sets up logging.
func initConfig() {
	viper.SetEnvPrefix("REWORD")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else if viper.GetString("config_dir") == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	level := "info"
	if viper.GetBool("verbose") {
		level = "debug"
	}
	newLogger(level, viper.GetString("log_format"))
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadSettings reads the live settings, logging sections that were only
// partly understood.
func loadSettings() (reword.AllSettings, error) {
	dir := getConfigDir()
	settings, res, err := config.Load(dir)
	if err != nil {
		return settings, err
	}
	for _, e := range res.Errors {
		slog.Warn("settings section not fully loaded", slog.String("error", e.Error()))
	}
	slog.Debug("settings loaded", slog.String("dir", dir), slog.Int("sections", res.Count()))
	return settings, nil
}

// saveSettings writes the live settings, creating the config dir first.
func saveSettings(settings reword.AllSettings) error {
	dir, err := config.EnsureConfigDir(getConfigDir())
	if err != nil {
		return err
	}
	return config.Save(dir, settings)
}

// runEditor launches the interactive style editor.
func runEditor(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.NewEditor(settings, saveSettings),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running editor: %w", err)
	}

	if m, ok := final.(tui.EditorModel); ok && m.Dirty() {
		slog.Warn("editor closed with unsaved changes")
	}
	return nil
}
