package cli

import (
	"fmt"

	"github.com/MikeBiancalana/bullet/internal/config"
	"github.com/MikeBiancalana/bullet/internal/logger"
	"github.com/MikeBiancalana/bullet/internal/tui"
	"github.com/MikeBiancalana/bullet/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var themeFlag string

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:   "bullet",
	Short: "Bullet - nested bulleted lists for the terminal",
	Long:  `Themeable nested bulleted-list components built on lipgloss, with per-depth markers and live theme reload.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the demo TUI
		th, path, err := loadTheme()
		if err != nil {
			return err
		}

		var watcher *theme.Watcher
		if path != "" {
			watcher, err = theme.Watch(path)
			if err != nil {
				logger.Warn("theme watching disabled", "path", path, "error", err)
			} else {
				defer watcher.Stop()
			}
		}

		model := tui.NewModel(sampleList(), th, watcher)
		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "theme file (yaml or toml)")

	RootCmd.AddCommand(renderCmd)
	RootCmd.AddCommand(glyphsCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// loadTheme resolves the theme file from the --theme flag or the data
// directory and loads it. Both results may be empty: running without any
// theme just uses built-in defaults.
func loadTheme() (*theme.Theme, string, error) {
	path := themeFlag
	if path == "" {
		var err error
		path, err = config.ThemePath()
		if err != nil {
			return nil, "", fmt.Errorf("failed to locate theme: %w", err)
		}
	}
	if path == "" {
		return nil, "", nil
	}

	th, err := theme.Load(path)
	if err != nil {
		return nil, "", err
	}
	return th, path, nil
}
