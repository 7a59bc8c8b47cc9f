// Learnquest is a terminal rendition of two gamified learning front-ends:
// an education game hub and a chakra crystal collection.
//
// It shows static catalog data in a tabbed full-screen interface. Opening
// a crystal plays its chakra tone; finishing a game or practice shows a
// short celebration.
//
// Usage:
//
//	learnquest [command] [flags]
//
// Running without arguments launches the interactive interface.
// See 'learnquest --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/learnquest/internal/logging"
	"github.com/muurk/learnquest/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "learnquest",
	Short: "Gamified learning and crystal collection in the terminal",
	Long: `A terminal interface for two gamified learning themes.

  education  games, courses, achievements, leaderboard, shop, profile
  crystals   chakra map, crystal collection, practices, affirmations, profile

Opening an unlocked crystal plays the tone of its chakra. Completing a game,
practice or achievement shows a short celebration.

If no command is specified, the interactive interface will launch.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runTUI,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Fprintf(cmd.OutOrStdout(), "learnquest %s (commit: %s, %s, %s)\n",
			info.Version, info.Commit, info.GoVersion, info.Platform)
	},
}
