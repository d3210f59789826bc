package tui

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/render"
	"github.com/vovakirdan/tui-asteroids/internal/session"
	"github.com/vovakirdan/tui-asteroids/internal/world"
)

// RuntimeConfig carries the platform parameters of one play session.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for obstacle placement; 0 means time-based
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// stateMsg delivers the next world snapshot from the session.
type stateMsg world.State

// statesClosedMsg signals that the session's state channel has closed.
type statesClosedMsg struct{}

// Model is the Bubble Tea model driving one asteroids session. It owns the
// event sources (tick scheduler and key input), feeds them to the session
// fold, and renders each snapshot the fold emits.
type Model struct {
	cfg     config.Config
	runtime RuntimeConfig
	reducer *world.Reducer

	events chan world.Event
	states <-chan world.State
	handle *session.Handle

	latest  world.State
	elapsed int64
	ended   bool
	closed  bool

	keys   KeyMap
	help   help.Model
	held   *heldTracker
	screen *render.Screen

	quitting bool
}

// NewModel creates a model and starts its first session.
func NewModel(cfg config.Config, rt RuntimeConfig) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	m := Model{
		cfg:     cfg,
		runtime: rt,
		reducer: world.NewReducer(cfg),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    newHeldTracker(holdWindow(rt.TickRate)),
		screen:  render.NewScreen(rt.ScreenW, rt.ScreenH-1),
	}
	m.startSession()
	return m
}

// holdWindow converts the tick rate into the key hold window: long enough to
// ride out the terminal's initial key-repeat delay.
func holdWindow(tickRate int) int64 {
	w := int64(tickRate) * 6 / 10 // ~600ms
	if w < 2 {
		w = 2
	}
	return w
}

// startSession builds a fresh initial world from the current seed and starts
// the session fold over the model's event channel.
func (m *Model) startSession() {
	rng := rand.New(rand.NewSource(m.runtime.Seed))
	initial := world.New(m.cfg, world.Scatter(rng, m.cfg))

	m.events = make(chan world.Event, 64)
	m.states, m.handle = session.Start(context.Background(), m.reducer, initial, m.events)
	m.latest = initial
	m.elapsed = 0
	m.ended = false
	m.closed = false
	m.held.reset()
}

// Init starts the tick loop and the state listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.runtime.TickRate), waitState(m.states))
}

// waitState returns a command that blocks for the next session state.
func waitState(states <-chan world.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-states
		if !ok {
			return statesClosedMsg{}
		}
		return stateMsg(s)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		return m, nil
	case TickMsg:
		return m.handleTick()
	case stateMsg:
		m.latest = world.State(msg)
		if m.latest.Terminated {
			m.ended = true
		}
		return m, waitState(m.states)
	case statesClosedMsg:
		m.closed = true
		return m, nil
	}
	return m, nil
}

// handleKey translates key-downs into edge-triggered command events.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.handle.Stop()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.ended {
			m.handle.Stop()
			m.runtime.Seed = time.Now().UnixNano()
			m.startSession()
			return m, waitState(m.states)
		}

	case key.Matches(msg, m.keys.RotateLeft):
		if m.held.press(cmdRotateLeft, m.elapsed) {
			m.send(world.Rotate{Direction: -1})
		}

	case key.Matches(msg, m.keys.RotateRight):
		if m.held.press(cmdRotateRight, m.elapsed) {
			m.send(world.Rotate{Direction: 1})
		}

	case key.Matches(msg, m.keys.Thrust):
		if m.held.press(cmdThrust, m.elapsed) {
			m.send(world.Thrust{On: true})
		}

	case key.Matches(msg, m.keys.Fire):
		if m.held.press(cmdFire, m.elapsed) {
			m.send(world.Fire{})
		}
	}

	return m, nil
}

// handleTick synthesizes key releases, then advances simulation time.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, cmd := range m.held.released(m.elapsed) {
		switch cmd {
		case cmdRotateLeft:
			m.sendRotateStop(cmdRotateRight)
		case cmdRotateRight:
			m.sendRotateStop(cmdRotateLeft)
		case cmdThrust:
			m.send(world.Thrust{On: false})
		case cmdFire:
			// Momentary command; nothing to stop.
		}
	}

	m.elapsed++
	m.send(world.TimeAdvance{Elapsed: m.elapsed})

	return m, tickCmd(m.runtime.TickRate)
}

// sendRotateStop stops rotation, or hands control back to the opposite
// rotate key when that one is still held.
func (m *Model) sendRotateStop(opposite command) {
	if m.held.held(opposite) {
		dir := 1.0
		if opposite == cmdRotateLeft {
			dir = -1.0
		}
		m.send(world.Rotate{Direction: dir})
		return
	}
	m.send(world.Rotate{Direction: 0})
}

// send forwards an event to the session. After termination or detach the
// event is dropped; the fold is no longer consuming.
func (m *Model) send(ev world.Event) {
	if m.ended || m.closed {
		return
	}
	select {
	case m.events <- ev:
	default:
		// Session backlogged; dropping beats stalling the UI loop.
	}
}

// Run starts the Bubble Tea program for one play session.
func Run(cfg config.Config, rt RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(cfg, rt),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
