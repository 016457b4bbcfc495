// Package tui provides the Bubble Tea integration: the game screen, input
// mapping, and the scoreboard view.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmelnik/merge2048/internal/config"
	"github.com/dmelnik/merge2048/internal/engine"
	"github.com/dmelnik/merge2048/internal/game"
	"github.com/dmelnik/merge2048/internal/storage"
)

// spawnMsg triggers settling of the staged spawn after the display delay.
type spawnMsg struct{}

// Model is the Bubble Tea model for a single game session.
type Model struct {
	session *game.Session
	store   *storage.Store
	cfg     config.Config
	keys    KeyMap
	help    help.Model

	width  int
	height int

	// ID of the most recently spawned tile, highlighted for one move.
	lastSpawn engine.TileID

	scoreSaved bool
	quitting   bool
}

// NewModel creates a model around an existing session, either fresh or
// restored from a saved game.
func NewModel(session *game.Session, store *storage.Store, cfg config.Config) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		session: session,
		store:   store,
		cfg:     cfg,
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spawnMsg:
		return m.handleSpawn()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.persistOnExit()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.session.Over() {
			m.finishGame()
		} else if m.store != nil {
			// An abandoned game is not scored, its save is just dropped.
			//nolint:errcheck
			m.store.DeleteGame(m.session.Variant().ID)
		}
		m.session = game.New(m.session.Variant(), time.Now().UnixNano())
		m.seedBest()
		m.lastSpawn = 0
		m.scoreSaved = false
		return m, nil

	case key.Matches(msg, m.keys.Continue):
		m.session.ContinueAfterWin()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok {
		out, err := m.session.Move(dir)
		if err != nil {
			// Direction keys are pre-validated; only a corrupted board
			// reaches here.
			m.quitting = true
			return m, tea.Quit
		}
		if out.Moved {
			m.lastSpawn = 0
			return m, m.spawnCmd()
		}
	}

	return m, nil
}

// handleSpawn settles the staged spawn and reacts to a finished game.
func (m Model) handleSpawn() (tea.Model, tea.Cmd) {
	spawned, ok := m.session.Spawn()
	if ok && m.cfg.UI.HighlightSpawn {
		m.lastSpawn = spawned.ID
	}

	if m.session.Over() {
		m.finishGame()
	}

	return m, nil
}

// spawnCmd schedules the spawn after the configured rest time.
func (m Model) spawnCmd() tea.Cmd {
	delay := time.Duration(m.cfg.Game.SpawnDelayMs) * time.Millisecond
	if delay <= 0 {
		return func() tea.Msg { return spawnMsg{} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return spawnMsg{} })
}

// finishGame records the score once and drops the saved game.
func (m *Model) finishGame() {
	if m.store == nil || m.scoreSaved {
		return
	}
	if m.session.Score() > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.session.Variant().ID, m.session.Score(), m.session.MaxTile())
	}
	//nolint:errcheck // Best-effort cleanup
	m.store.DeleteGame(m.session.Variant().ID)
	m.scoreSaved = true
}

// persistOnExit saves an in-progress game for later resume, or records the
// score if the game already ended.
func (m *Model) persistOnExit() {
	if m.store == nil {
		return
	}
	if m.session.Over() {
		m.finishGame()
		return
	}

	if data, err := m.session.Snapshot().Marshal(); err == nil {
		//nolint:errcheck // Best-effort save
		m.store.SaveGame(m.session.Variant().ID, data)
	}
}

// seedBest loads the stored high score into the fresh session.
func (m *Model) seedBest() {
	if m.store == nil {
		return
	}
	if high, err := m.store.HighScore(m.session.Variant().ID); err == nil {
		m.session.SetBest(high)
	}
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Run starts the Bubble Tea program for the given session.
func Run(session *game.Session, store *storage.Store, cfg config.Config) error {
	model := NewModel(session, store, cfg)
	model.seedBest()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
