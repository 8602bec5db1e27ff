// Package ui is the terminal panel: a bubbletea program that refreshes a
// session on a fixed tick and exposes the power actions as key bindings.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomek7667/pcpanel/internal/platform"
	"github.com/tomek7667/pcpanel/internal/power"
	"github.com/tomek7667/pcpanel/internal/sampler"
	"github.com/tomek7667/pcpanel/internal/session"
)

// DefaultInterval is the refresh period.
const DefaultInterval = time.Second

var keyActions = map[string]platform.Action{
	"r": platform.Restart,
	"s": platform.Shutdown,
	"o": platform.Logout,
	"z": platform.Sleep,
	"l": platform.Lock,
	"m": platform.Monitor,
}

// Options configures a Model.
type Options struct {
	Interval   time.Duration
	HistoryCap int
}

// Model renders session snapshots.
type Model struct {
	session  *session.Session
	power    *power.Controller
	interval time.Duration
	histCap  int

	snap    session.Snapshot
	ready   bool
	pending *platform.Action
	notice  string
	width   int
}

func New(sess *session.Session, ctl *power.Controller, opts Options) *Model {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.HistoryCap <= 0 {
		opts.HistoryCap = sampler.DefaultHistoryLen
	}
	return &Model{
		session:  sess,
		power:    ctl,
		interval: opts.Interval,
		histCap:  opts.HistoryCap,
		width:    100,
	}
}

// Messages
type (
	tickMsg     struct{}
	snapshotMsg session.Snapshot
)

type actionMsg struct {
	result power.Result
	err    error
}

// refresh runs one session tick. The next tick is scheduled only once the
// snapshot arrives, so ticks never overlap.
func (m *Model) refresh() tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		return snapshotMsg(sess.Tick(context.Background()))
	}
}

func (m *Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) Init() tea.Cmd { return m.refresh() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	case tickMsg:
		return m, m.refresh()
	case snapshotMsg:
		m.snap = session.Snapshot(msg)
		m.ready = true
		return m, m.scheduleTick()
	case actionMsg:
		m.notice = actionNotice(msg.result, msg.err)
	}
	return m, nil
}

func (m *Model) handleKey(key string) (tea.Model, tea.Cmd) {
	if m.pending != nil {
		action := *m.pending
		m.pending = nil
		switch key {
		case "y", "Y", "enter":
			m.notice = ""
			return m, m.run(action)
		case "ctrl+c":
			return m, tea.Quit
		}
		m.notice = "Cancelled: " + action.String()
		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	action, ok := keyActions[key]
	if !ok || m.power == nil {
		return m, nil
	}
	if _, err := m.power.Resolve(action); err != nil {
		m.notice = power.Notice(err)
		return m, nil
	}
	if action.Destructive() {
		m.pending = &action
		m.notice = ""
		return m, nil
	}
	return m, m.run(action)
}

// run launches an action the user already approved.
func (m *Model) run(action platform.Action) tea.Cmd {
	ctl := m.power
	return func() tea.Msg {
		res, err := ctl.Run(action, power.ConfirmFunc(func(string) bool { return true }))
		return actionMsg{result: res, err: err}
	}
}

func actionNotice(res power.Result, err error) string {
	if err != nil {
		return power.Notice(err)
	}
	if res.Status == power.Declined {
		return "Cancelled: " + res.Action.String()
	}
	return "Started: " + res.Command.String()
}

// Run starts the panel and blocks until the user quits.
func Run(sess *session.Session, ctl *power.Controller, opts Options) error {
	prog := tea.NewProgram(New(sess, ctl, opts), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
