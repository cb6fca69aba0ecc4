package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/snake"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

// Config configures a Model.
type Config struct {
	Runtime core.RuntimeConfig
	Store   *storage.Store   // Optional; results are not saved without it
	Logger  *log.Logger      // Optional; defaults to discarding
	Mode    string           // Preselected mode; empty opens the menu
	Options registry.Options // Config path and difficulty preset
}

// Model is the Bubble Tea model hosting one round at a time:
// mode menu -> "space to start" -> round -> back to the menu.
type Model struct {
	cfg    Config
	logger *log.Logger
	keys   KeyMap
	help   help.Model
	screen *core.Screen

	modes  []registry.Mode
	cursor int
	opened int // Modes opened so far; varies the seed base

	players  []config.PlayerConfig
	pauseKey string

	lifecycle *snake.Lifecycle
	input     core.InputFrame
	loop      int
	saved     bool
	best      int

	scores     ScoreboardModel
	showScores bool

	err      error
	quitting bool
}

// NewModel creates a new Bubble Tea model.
func NewModel(cfg Config) Model {
	if cfg.Runtime.Seed == 0 {
		cfg.Runtime.Seed = time.Now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		cfg:    cfg,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: core.NewScreen(cfg.Runtime.ScreenW, cfg.Runtime.ScreenH),
		modes:  registry.List(),
		input:  core.NewInputFrame(),
	}
	for i, mode := range m.modes {
		if mode.ID == cfg.Mode {
			m.cursor = i
		}
	}
	if cfg.Mode != "" {
		m.openMode()
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cfg.Runtime.ScreenW = msg.Width
		m.cfg.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		if m.showScores {
			next, _ := m.scores.Update(msg)
			m.scores = next.(ScoreboardModel)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quit()
			return m, tea.Quit
		}
		if m.showScores {
			return m.updateScores(msg)
		}
		switch m.state() {
		case snake.StateEnterGame:
			return m.updateEnterGame(msg)
		case snake.StateInGame:
			return m.updateInGame(msg)
		default:
			return m.updateMenu(msg)
		}

	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m Model) state() snake.State {
	if m.lifecycle == nil {
		return snake.StateMainMenu
	}
	return m.lifecycle.State()
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Scores):
		m.scores = NewScoreboardModel(m.cfg.Store, m.modeID(), m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH)
		m.showScores = true
	case key.Matches(msg, m.keys.Select):
		m.openMode()
	}
	return m, nil
}

func (m Model) updateScores(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)
	if m.scores.IsGoingBack() {
		m.showScores = false
	}
	return m, cmd
}

func (m Model) updateEnterGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		return m.startRound(func(l *snake.Lifecycle) error {
			return l.Transition(snake.StateInGame)
		})
	case key.Matches(msg, m.keys.Back):
		//nolint:errcheck // EnterGame -> MainMenu is always allowed
		m.lifecycle.Transition(snake.StateMainMenu)
		m.lifecycle = nil
	}
	return m, nil
}

func (m Model) updateInGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	phase := m.lifecycle.Round().Phase()

	switch {
	case phase == snake.PhaseDead && key.Matches(msg, m.keys.Restart):
		return m.startRound((*snake.Lifecycle).Restart)
	case phase != snake.PhasePlaying && key.Matches(msg, m.keys.Back):
		m.leaveRound()
		return m, nil
	}

	m.input.Press(KeyFromMsg(msg))
	return m, nil
}

// openMode builds a fresh round for the selected mode and shows its
// start screen.
func (m *Model) openMode() {
	m.err = nil
	mode, err := registry.Get(m.modeID())
	if err != nil {
		m.err = err
		return
	}
	cfg, err := mode.Config(m.cfg.Options)
	if err != nil {
		m.err = err
		m.logger.Error("cannot load config", "mode", mode.ID, "error", err)
		return
	}
	round, err := snake.NewRound(mode.ID, cfg, snake.WithLogger(m.logger))
	if err != nil {
		m.err = err
		m.logger.Error("cannot create round", "mode", mode.ID, "error", err)
		return
	}

	m.opened++
	base := m.cfg.Runtime.Seed + int64(m.opened)*1_000_003
	entries := int64(0)
	l := snake.NewLifecycle(round, func() int64 {
		entries++
		return base + entries
	})
	if err := l.Transition(snake.StateMainMenu); err != nil {
		m.err = err
		return
	}
	if err := l.Transition(snake.StateEnterGame); err != nil {
		m.err = err
		return
	}
	m.lifecycle = l
	m.players = cfg.Players
	m.pauseKey = cfg.PauseKey
	m.best = m.highScore(mode.ID)
}

// startRound enters a round through enter and starts a new tick chain.
func (m Model) startRound(enter func(*snake.Lifecycle) error) (tea.Model, tea.Cmd) {
	if err := enter(m.lifecycle); err != nil {
		m.err = err
		m.logger.Error("cannot start round", "error", err)
		return m, nil
	}
	m.input.Clear()
	m.saved = false
	m.loop++
	return m, tickCmd(m.lifecycle.Round().Interval(), m.loop)
}

// leaveRound tears the round down and returns to the mode menu.
func (m *Model) leaveRound() {
	if m.lifecycle == nil {
		return
	}
	if m.lifecycle.State() == snake.StateInGame {
		//nolint:errcheck // InGame -> LeaveGame -> MainMenu is always allowed
		m.lifecycle.Transition(snake.StateLeaveGame)
	}
	//nolint:errcheck // see above
	m.lifecycle.Transition(snake.StateMainMenu)
	m.lifecycle = nil
	m.loop++
}

// handleTick runs one simulation step and schedules the next one.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Loop != m.loop || m.state() != snake.StateInGame {
		return m, nil
	}

	round := m.lifecycle.Round()
	res, err := round.Tick(m.input)
	m.input.Clear()
	if err != nil {
		m.logger.Error("round aborted", "round", round.ID(), "error", err)
		m.leaveRound()
		m.err = err
		return m, nil
	}

	if res.Phase == snake.PhaseDead {
		m.saveResult(round)
		return m, nil
	}
	return m, tickCmd(res.Interval, m.loop)
}

// saveResult persists the finished round once.
func (m *Model) saveResult(round *snake.Round) {
	if m.saved {
		return
	}
	m.saved = true

	res := round.Result()
	for _, p := range res.Players {
		if p.Score > m.best {
			m.best = p.Score
		}
	}
	if m.cfg.Store == nil {
		return
	}
	if err := m.cfg.Store.SaveRoundResult(res); err != nil {
		m.logger.Warn("cannot save round", "round", res.RoundID, "error", err)
	}
}

func (m *Model) quit() {
	m.quitting = true
	if m.lifecycle != nil && m.lifecycle.State() == snake.StateInGame {
		m.lifecycle.Round().Exit()
	}
}

func (m Model) modeID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.cursor].ID
}

func (m Model) highScore(modeID string) int {
	if m.cfg.Store == nil {
		return 0
	}
	best, err := m.cfg.Store.HighScore(modeID)
	if err != nil {
		return 0
	}
	return best
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scores.View()
	}

	switch m.state() {
	case snake.StateEnterGame:
		return m.viewEnterGame()
	case snake.StateInGame:
		return m.viewInGame()
	default:
		return m.viewMenu()
	}
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("S N A K E   A R E N A"))
	b.WriteString("\n\n")

	for i, mode := range m.modes {
		cursor := "  "
		line := fmt.Sprintf("%-8s %s", mode.Title, dimStyle.Render(mode.Description))
		if i == m.cursor {
			cursor = "> "
			line = titleStyle.Render(fmt.Sprintf("%-8s", mode.Title)) + " " + mode.Description
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press space to continue..."))
	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return place(m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH, boxStyle.Render(b.String()))
}

func (m Model) viewEnterGame() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SPACE TO START"))
	b.WriteString("\n\n")

	for _, p := range m.players {
		b.WriteString(fmt.Sprintf("%s: %s\n", p.Name, describeKeys(p.Keys)))
	}
	if m.pauseKey != "" {
		b.WriteString(dimStyle.Render("pause: " + m.pauseKey))
		b.WriteString("\n")
	}
	if m.best > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("best: %d", m.best)))
		b.WriteString("\n")
	}

	return place(m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH, boxStyle.Render(b.String()))
}

func (m Model) viewInGame() string {
	round := m.lifecycle.Round()
	DrawRound(m.screen, round.Snapshot(), round.Arena(), m.best)
	out := RenderScreen(m.screen)
	if round.Phase() != snake.PhasePlaying {
		out += "\n" + dimStyle.Render(m.help.View(GameHelp{m.keys}))
	}
	return out
}

func describeKeys(keys map[string][]string) string {
	order := []string{"up", "left", "down", "right"}
	parts := make([]string, 0, len(order))
	for _, dir := range order {
		if ks, ok := keys[dir]; ok {
			parts = append(parts, fmt.Sprintf("%s=%s", dir, strings.Join(ks, "/")))
		}
	}
	return strings.Join(parts, " ")
}

// Run starts the Bubble Tea program with the given model config.
func Run(cfg Config) error {
	p := tea.NewProgram(
		NewModel(cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
