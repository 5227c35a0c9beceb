package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/minicoder/internal/tui"
	"github.com/studiowebux/minicoder/internal/version"
)

var appVersion = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minicoder",
	Short: "Minicoder - terminal code playground with live preview",
	Long: `Minicoder is a terminal playground for small web projects.

It keeps an in-memory set of HTML, CSS, and JS files, serves the compiled
page on a local preview server, and relays the page's console output back
into the terminal. Point a browser at the preview URL and save with ctrl+s
to refresh it.

Lessons are loaded from a directory listing served over HTTP; press ctrl+l
to browse them next to the editor.

Examples:
  minicoder                                  # Start with the starter project
  minicoder --port 5000                      # Preview on a different port
  minicoder --open                           # Open the preview in a browser
  minicoder --curriculum http://host/c/      # Point at a lesson server
  minicoder version                          # Show version and check updates`,
	Version: appVersion,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(tui.RunOptions{
			Port:          flagPort,
			CurriculumURL: flagCurriculum,
			OpenBrowser:   flagOpen,
			Version:       appVersion,
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version and check for updates",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("minicoder %s\n", appVersion)
		rel, newer, err := version.NewChecker().Latest(cmd.Context(), appVersion)
		if err != nil {
			return nil // offline is fine
		}
		if newer {
			fmt.Printf("update available: %s (%s)\n", rel.Version, rel.URL)
		}
		return nil
	},
}

var (
	flagPort       int
	flagCurriculum string
	flagOpen       bool
)

func init() {
	rootCmd.Flags().IntVarP(&flagPort, "port", "p", 0, "Preview server port (default from settings)")
	rootCmd.Flags().StringVarP(&flagCurriculum, "curriculum", "c", "", "Curriculum base URL")
	rootCmd.Flags().BoolVarP(&flagOpen, "open", "o", false, "Open the preview URL in a browser")

	rootCmd.AddCommand(versionCmd)
}
