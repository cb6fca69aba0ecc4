package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/platform/tui"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start the given mode on its "space to start" screen.

Controls:
  Arrows/WASD  - Steer (per player bindings in the mode config)
  P            - Pause
  R            - New round (after game over)
  Esc/B        - Back to the menu (paused or game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slowest start, speeds up on every apple
  normal - Medium start, speeds up on every apple
  hard   - Fast start, speeds up on every apple
  fixed  - Config start speed, never speeds up

Examples:
  arena play classic
  arena play duel --difficulty easy
  arena play classic --config ./my-classic.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addModeFlags(playCmd)
}

func addModeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom mode config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// modeOptions validates the mode and the mode flags.
func modeOptions(modeID string) (registry.Options, error) {
	if !registry.Exists(modeID) {
		return registry.Options{}, fmt.Errorf("unknown mode %q (run 'arena list' to see available modes)", modeID)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return registry.Options{}, err
	}
	return registry.Options{ConfigPath: flagConfig, Preset: preset}, nil
}

func runPlay(_ *cobra.Command, args []string) {
	opts, err := modeOptions(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Fail before entering the alt screen on a broken config.
	mode, _ := registry.Get(args[0])
	if _, err := mode.Config(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runTUI(tui.Config{Mode: mode.ID, Options: opts})
}
