package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/snake"
)

var (
	flagTicks   int
	flagTurn    float64
	flagSave    bool
	flagVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim <mode>",
	Short: "Run a headless round",
	Long: `Run a seeded round without a terminal UI. Every player steers at
random and the round runs until all snakes are dead or --ticks is reached.
The final state is printed; with --save the result is stored like a
played round.

Examples:
  arena sim classic
  arena sim duel --ticks 1000 --seed 42 --verbose
  arena sim classic --turn 0.5 --save`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 500, "Maximum number of ticks to run")
	simCmd.Flags().Float64Var(&flagTurn, "turn", 0.2, "Chance per tick that a player presses a key")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Save the result to the scores database")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every round event")
	addModeFlags(simCmd)
}

// simulation drives one round with random steering.
type simulation struct {
	round   *snake.Round
	players []config.PlayerConfig
	rng     *rand.Rand
	turn    float64
}

func newSimulation(round *snake.Round, cfg config.SnakeConfig, seed int64, turn float64) *simulation {
	return &simulation{
		round:   round,
		players: cfg.Players,
		rng:     rand.New(rand.NewSource(seed + 1)),
		turn:    turn,
	}
}

// steer picks this tick's key presses. Directions are drawn in sorted order
// so a seed always yields the same presses.
func (s *simulation) steer() core.InputFrame {
	frame := core.NewInputFrame()
	for _, p := range s.players {
		if s.rng.Float64() >= s.turn {
			continue
		}
		dirs := make([]string, 0, len(p.Keys))
		for d, keys := range p.Keys {
			if len(keys) > 0 {
				dirs = append(dirs, d)
			}
		}
		if len(dirs) == 0 {
			continue
		}
		sort.Strings(dirs)
		keys := p.Keys[dirs[s.rng.Intn(len(dirs))]]
		frame.Press(core.Key(keys[s.rng.Intn(len(keys))]))
	}
	return frame
}

// run ticks the entered round until it is over or ticks is reached.
func (s *simulation) run(ticks int) error {
	for i := 0; i < ticks; i++ {
		res, err := s.round.Tick(s.steer())
		if err != nil {
			return err
		}
		if res.Phase == snake.PhaseDead {
			return nil
		}
	}
	return nil
}

func runSim(_ *cobra.Command, args []string) {
	opts, err := modeOptions(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena-sim",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	mode, _ := registry.Get(args[0])
	cfg, err := mode.Config(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	round, err := snake.NewRound(mode.ID, cfg, snake.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := seed()
	lc := snake.NewLifecycle(round, func() int64 { return s })
	if err := lc.Transition(snake.StateMainMenu); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := lc.Transition(snake.StateInGame); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sim := newSimulation(round, cfg, s, flagTurn)
	if err := sim.run(flagTicks); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printSnapshot(os.Stdout, round.Snapshot(), s)

	if flagSave {
		store := openStore()
		if err := store.SaveRoundResult(round.Result()); err != nil {
			logger.Error("could not save result", "error", err)
		}
		store.Close()
	}

	if err := lc.Transition(snake.StateLeaveGame); err != nil {
		logger.Error("could not leave round", "error", err)
	}
}

func printSnapshot(w io.Writer, snap snake.Snapshot, seed int64) {
	fmt.Fprintf(w, "Round %s (seed %d)\n", snap.RoundID, seed)
	fmt.Fprintf(w, "  ticks: %d  phase: %s  apples: %d  interval: %s\n",
		snap.Tick, snap.Phase, snap.Apples, snap.Interval)
	fmt.Fprintf(w, "  apple: (%.0f, %.0f)\n", snap.Apple.X, snap.Apple.Y)
	for _, sv := range snap.Snakes {
		status := "alive"
		if sv.Dead {
			status = "dead: " + sv.Cause.String()
		}
		fmt.Fprintf(w, "  %-10s score %-4d length %-4d head (%.0f, %.0f) %s  [%s]\n",
			sv.Player, sv.Score, len(sv.Segments)+1, sv.Head.Pos.X, sv.Head.Pos.Y, sv.Direction, status)
	}
}
