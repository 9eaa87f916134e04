// catch is a terminal arcade game: steer a circle, catch squares before
// they vanish, and climb the leaderboard.
//
// Usage:
//
//	catch                   - Play (same as "catch play")
//	catch play              - Play a session
//	catch scores            - Show the leaderboard
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible target placement
//	--db <path>       - Set database path (default: ~/.catch/leaderboard.db)
//	--config <path>   - Use a custom game config YAML
//	--log <path>      - Write logs to this file (default: ~/.catch/catch.log)
//	--debug           - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catch",
	Short: "Square Catch - catch squares in your terminal",
	Long: `Square Catch is a single-player terminal arcade game.

Type a nickname, then move the circle with the arrow keys (or WASD) to
catch red squares before they vanish. Every square is worth one point
and a round lasts 20 seconds. Scores are kept in a local leaderboard.

Available commands:
  play     - Play a session (default)
  scores   - View the leaderboard

Examples:
  catch
  catch play --seed 42
  catch scores --limit 10
  catch scores --player ann --stats`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catch/leaderboard.db", "Path to leaderboard database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.catch/catch.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
