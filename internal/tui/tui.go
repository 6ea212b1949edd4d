package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/crudpanel/internal/dispatch"
	"github.com/Makepad-fr/crudpanel/internal/model"
	"github.com/Makepad-fr/crudpanel/internal/ui"
)

// buttonBar is shared by every copy of Model so the controller can lock and
// unlock it from the command goroutine.
type buttonBar struct {
	disabled atomic.Bool
}

func (b *buttonBar) SetEnabled(v bool) { b.disabled.Store(!v) }
func (b *buttonBar) Enabled() bool     { return !b.disabled.Load() }

type livenessMsg dispatch.Liveness

type resultMsg struct {
	method model.Method
	env    *model.Envelope
	err    error
}

// Model is the Bubble Tea model of the request page.
type Model struct {
	ctx    context.Context
	ctrl   *dispatch.Controller
	render ui.Renderer
	bar    *buttonBar

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	selected int
	pending  model.Method
	answered bool // a request has been sent; the startup check may no longer draw
	panel    string
}

// New builds the page and its controller. The controller locks the page's
// button bar for the duration of every request.
func New(ctx context.Context, sender dispatch.Sender, r ui.Renderer, log *slog.Logger) Model {
	bar := &buttonBar{}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.Current().Pending
	return Model{
		ctx:     ctx,
		ctrl:    dispatch.New(sender, bar, log),
		render:  r,
		bar:     bar,
		keys:    defaultKeys(),
		help:    help.New(),
		spinner: sp,
		panel:   ui.Panel([]string{ui.Current().Muted.Render("Checking API server...")}),
	}
}

// Init runs the startup liveness check.
func (m Model) Init() tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return livenessMsg(ctrl.CheckLiveness(ctx))
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case livenessMsg:
		if m.answered {
			return m, nil
		}
		switch {
		case msg.Up:
			m.panel = m.render.ServerUp(msg.Greeting)
		case msg.Down:
			m.panel = m.render.ServerDown()
		default:
			m.panel = m.render.Ready()
		}
		return m, nil

	case resultMsg:
		m.pending = ""
		if msg.err != nil {
			m.panel = m.render.Error(msg.err)
		} else {
			m.panel = m.render.Success(msg.env)
		}
		return m, nil

	case spinner.TickMsg:
		if m.pending == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case m.busy():
			// Every other key is ignored until the result lands.
			return m, nil
		case key.Matches(msg, m.keys.Left):
			m.selected = (m.selected + len(model.Methods) - 1) % len(model.Methods)
		case key.Matches(msg, m.keys.Right):
			m.selected = (m.selected + 1) % len(model.Methods)
		case key.Matches(msg, m.keys.Send):
			return m.send(model.Methods[m.selected])
		case key.Matches(msg, m.keys.Direct):
			n, _ := strconv.Atoi(msg.String())
			m.selected = n - 1
			return m.send(model.Methods[m.selected])
		}
	}
	return m, nil
}

// busy stays true from the key press until the result is rendered, even
// though the controller unlocks the bar as soon as the request settles.
func (m Model) busy() bool {
	return m.pending != "" || !m.bar.Enabled()
}

// send locks the buttons right away so the next frame already shows them
// disabled; the controller re-enables them when the request settles.
func (m Model) send(method model.Method) (tea.Model, tea.Cmd) {
	m.bar.SetEnabled(false)
	m.pending = method
	m.answered = true
	m.panel = m.render.Loading(method)

	ctrl, ctx := m.ctrl, m.ctx
	do := func() tea.Msg {
		env, err := ctrl.Dispatch(ctx, method)
		return resultMsg{method: method, env: env, err: err}
	}
	return m, tea.Batch(do, m.spinner.Tick)
}

func (m Model) View() string {
	t := ui.Current()
	labels := make([]string, len(model.Methods))
	for i, meth := range model.Methods {
		labels[i] = fmt.Sprintf("%d %s", i+1, meth)
	}

	status := t.Muted.Render("idle")
	if m.pending != "" {
		status = m.spinner.View() + " " + t.Pending.Render(string(m.pending)+" in flight")
	}

	header := t.Title.Render("CRUD API") + "  " + t.Muted.Render(m.render.Endpoint)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		ui.Buttons(labels, m.selected, m.busy()),
		status,
		"",
		m.panel,
		"",
		m.help.View(m.keys),
	)
}

// Run starts the interactive page and blocks until the user quits.
func Run(ctx context.Context, sender dispatch.Sender, r ui.Renderer, log *slog.Logger) error {
	p := tea.NewProgram(New(ctx, sender, r, log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
