// arena is a terminal snake arena: one or two snakes, one apple, a speed-up
// on every bite.
//
// Usage:
//
//	arena                    - Start the mode picker
//	arena list               - List available modes
//	arena play <mode>        - Play a mode directly
//	arena serve              - Start SSH server for remote play
//	arena scores <mode>      - Show high scores for a mode
//	arena rounds             - Show recently played rounds
//	arena sim <mode>         - Run a headless seeded round
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.arena/scores.db)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/platform/tui"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Snake Arena - steer a snake, eat apples, survive",
	Long: `Snake Arena is a terminal snake game. Every apple grows the snake
and speeds up the round; touching a wall, yourself or another snake ends it.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  serve    - Start SSH server for remote play
  scores   - View high scores
  rounds   - View recently played rounds
  sim      - Run a headless round

Examples:
  arena
  arena play classic
  arena play duel --difficulty hard
  arena serve --ssh :2222
  arena sim classic --ticks 500 --seed 42`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(roundsCmd)
	rootCmd.AddCommand(simCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	runTUI(tui.Config{})
}

// runTUI fills in the runtime config, opens the store and runs the program.
func runTUI(cfg tui.Config) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	cfg.Runtime = runtimeConfig()
	cfg.Store = store

	runErr := tui.Run(cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed(),
	}
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
