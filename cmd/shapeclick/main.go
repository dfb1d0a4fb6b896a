// shapeclick is a timed shape-and-colour quiz for the terminal.
//
// Usage:
//
//	shapeclick               - Play locally (same as "play")
//	shapeclick play          - Play locally
//	shapeclick serve         - Start SSH server for remote play
//	shapeclick colors        - Show the colour palette
//	shapeclick defaults      - Print the default quiz config
//	shapeclick version       - Print the version
//
// Global flags:
//
//	--fps <rate>           - Override the tick rate (default: from config)
//	--seed <value>         - Set RNG seed for reproducible rounds
//	--config <path>        - Custom quiz config YAML
//	--difficulty <preset>  - easy, normal or hard
//	--log-file <path>      - Write session events to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shapeclick",
	Short: "Shape Click - a timed shape and colour quiz for your terminal",
	Long: `Shape Click shows three coloured shapes and a clue such as
"green triangle". Click the matching shape before the clock runs out.
A big decoy shape tries to distract you, and a wrong click ends the game.

Available commands:
  play      - Play locally (default)
  serve     - Start SSH server for remote play
  colors    - Show the colour palette
  defaults  - Print the default quiz config
  version   - Print the version

Examples:
  shapeclick
  shapeclick play --difficulty hard
  shapeclick play --config ./my-quiz.yaml --log-file quiz.log
  shapeclick serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config's tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom quiz config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write session events to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(versionCmd)
}
