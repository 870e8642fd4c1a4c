package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-goldmine/internal/config"
	"github.com/vovakirdan/tui-goldmine/internal/game"
	"github.com/vovakirdan/tui-goldmine/internal/storage"
)

// Model drives one game session. Bubble Tea merges the fixed-period tick
// source and keyboard input into a single ordered message stream, so every
// engine mutation happens on one logical actor: no tick is processed
// mid-keypress and vice versa.
type Model struct {
	state     *game.State
	store     *storage.Store
	cfg       config.Config
	keys      KeyMap
	help      help.Model
	width     int
	height    int
	startedAt time.Time
	quitting  bool
	saved     bool
}

// NewModel creates a session model. store may be nil; the game then runs
// without run-history persistence.
func NewModel(store *storage.Store, cfg config.Config, width, height int) Model {
	now := time.Now()
	return Model{
		state: game.NewWithOptions(now, game.Options{
			ClickCooldown: cfg.ClickCooldown(),
			StartingGold:  cfg.Session.StartingGold,
		}),
		store:     store,
		cfg:       cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		width:     width,
		height:    height,
		startedAt: now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickInterval())
}

// Update handles messages and updates the session state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.state.Tick(time.Time(msg))
		return m, tickCmd(m.cfg.TickInterval())
	}

	return m, nil
}

// handleKey decodes a key press into a logical action and dispatches it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == game.ActionQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	m.state.Apply(action, time.Now())
	return m, nil
}

// saveRun records a best-effort run summary; the session never fails over
// a storage error.
func (m *Model) saveRun() {
	if m.saved || m.store == nil || !m.cfg.Session.Autosave {
		return
	}
	m.saved = true

	summary := storage.RunSummary{
		DurationSecs:      int(time.Since(m.startedAt).Seconds()),
		GoldEarned:        m.state.TotalGoldEarned,
		TotalClicks:       int64(m.state.TotalClicks),
		UpgradesPurchased: int64(m.state.TotalUpgradesPurchased),
	}
	if _, err := m.store.SaveRun(summary, m.state.CompletedAchievements()); err != nil {
		log.Warn("could not save run summary", "error", err)
	}
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.state.Snapshot(time.Now())

	h := m.help
	h.ShowAll = snap.HelpVisible

	return renderFrame(snap, m.keys, h, m.width, m.height)
}

// Run starts the Bubble Tea program for a local session and blocks until
// the player quits. Terminal failures propagate after Bubble Tea restores
// the terminal.
func Run(store *storage.Store, cfg config.Config, width, height int) error {
	model := NewModel(store, cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
