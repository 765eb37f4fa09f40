// ungravityctl inspects levels and saved progress without opening a window.
//
// Usage:
//
//	ungravityctl levels               - List the catalog with unlock state and bests
//	ungravityctl validate [maps...]   - Parse and build maps headless
//	ungravityctl progress show        - Print the saved progress document
//	ungravityctl progress reset       - Delete saved progress
//
// Global flags:
//
//	--config <path>  - Config file (default: search ~/.ungravity, ./configs)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/milk9111/ungravity/config"
	"github.com/milk9111/ungravity/progress"
)

var flagConfig string

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ungravityctl",
	Short: "Inspect ungravity levels and progress",
	Long: `ungravityctl works with the same config, catalog and progress store as
the game.

Examples:
  ungravityctl levels
  ungravityctl validate ./maps/my_level.tmx
  ungravityctl progress show
  ungravityctl progress reset`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(progressCmd)
}

func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

func openStore(cfg config.Config) (*progress.Store, error) {
	b, err := progress.OpenBackend(string(cfg.Storage.Backend), cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	return progress.NewStore(b, nil), nil
}
