package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/patternkit/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenRunning
	screenTranscript
)

type demoItem struct {
	ref domain.DemoRef
}

func (d demoItem) Title() string       { return d.ref.Name }
func (d demoItem) Description() string { return d.ref.Pattern + " · " + d.ref.Summary }
func (d demoItem) FilterValue() string { return d.ref.Name + " " + d.ref.Pattern }

type model struct {
	theme Theme
	deps  Deps
	ctx   context.Context

	scr     screen
	menu    list.Model
	output  viewport.Model
	active  domain.DemoRef
	running bool
	toast   string

	width, height int
}

func Run(ctx context.Context, deps Deps) error {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	m := wrapSafe(newModel(ctx, deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func newModel(ctx context.Context, deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var items []list.Item
	if deps.Catalog != nil {
		for _, ref := range deps.Catalog.List() {
			items = append(items, demoItem{ref: ref})
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Demos"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:  DefaultTheme(),
		deps:   deps,
		ctx:    ctx,
		scr:    screenHome,
		menu:   l,
		output: viewport.New(0, 0),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		m.output.Width = max(msg.Width-8, 0)
		m.output.Height = max(msg.Height-12, 0)
		return m, nil

	case demoDoneMsg:
		m.running = false
		m.active = msg.ref
		m.toast = userMessage(msg.err)
		m.output.SetContent(renderTranscript(msg.outcome.Transcript, m.output.Width))
		m.output.GotoTop()
		m.scr = screenTranscript
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenHome && m.menu.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			return m.home(), nil

		case "enter":
			if m.scr != screenHome || m.running {
				return m, nil
			}
			it, ok := m.menu.SelectedItem().(demoItem)
			if !ok {
				return m, nil
			}
			m.scr = screenRunning
			m.running = true
			m.active = it.ref
			m.toast = ""
			return m, cmdRunDemo(m.ctx, m.deps, it.ref)

		case "esc", "b":
			if m.scr == screenTranscript {
				return m.home(), nil
			}
		}
	}

	switch m.scr {
	case screenHome:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	case screenTranscript:
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) home() model {
	m.scr = screenHome
	m.active = domain.DemoRef{}
	m.toast = ""
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("patternkit") + "\n" +
		m.theme.Subtitle.Render("Design patterns, one runnable demo at a time") + "\n"

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Error.Render(m.toast) + "\n"
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter run • / search • q quit")
		return wrap.Render(header + toast + "\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenRunning:
		card := m.theme.Card.Render(fmt.Sprintf("Running %s…", m.active.Name))
		return wrap.Render(header + "\n" + card)

	case screenTranscript:
		title := m.theme.Title.Render(m.active.Name) + "  " + m.theme.Subtitle.Render(m.active.Pattern)
		help := m.theme.Help.Render("↑/↓ scroll • esc/b back • q home • ctrl+c quit")
		card := m.theme.Card.Render(title + "\n\n" + m.output.View())
		return wrap.Render(header + toast + "\n" + card + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
