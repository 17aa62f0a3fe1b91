package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quietfall/tui-pursuit/internal/core"
	"github.com/quietfall/tui-pursuit/internal/game"
)

// Model is the Bubble Tea model driving a single game session.
// Simulation time is taken from frame messages so the session advances
// even when the player is idle.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	cfg      core.RuntimeConfig
	quitting bool
}

// NewModel creates a model around an existing session and resets it.
func NewModel(session *game.Session, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	session.Reset(cfg.Seed, time.Now())

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		keys:    DefaultKeyMap(),
		help:    h,
		cfg:     cfg,
	}
}

func (m Model) Init() tea.Cmd {
	return frameCmd(m.cfg.FPS)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.session.Advance(time.Time(msg))
		return m, frameCmd(m.cfg.FPS)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.ActionFor(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.session.Over() {
			m.session.Reset(time.Now().UnixNano(), time.Now())
		}
	default:
		m.session.Apply(action, time.Now())
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	smp := m.session.Sample(time.Now())
	DrawSample(m.screen, smp)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the terminal UI and blocks until the player quits.
func Run(session *game.Session, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewModel(session, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
