package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Neev4n/termshell/pkg/term"
)

const headerHeight = 1

var (
	normalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	cursorStyle = lipgloss.NewStyle().Background(lipgloss.Color("10"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Padding(0, 1)
)

// Model hosts one dispatcher in a full-screen window: key presses feed the
// dispatcher and the scrollback is drawn through a viewport that follows the
// tail. Commands run synchronously inside Update.
type Model struct {
	ctx        context.Context
	title      string
	dispatcher *term.Dispatcher
	scrollback *term.Scrollback
	viewport   viewport.Model
	pending    func() string
	ready      bool
}

// NewModel writes the first prompt and returns the window model. pending
// reports the current pending line; Ctrl+D only quits while it is empty.
func NewModel(ctx context.Context, title string, dispatcher *term.Dispatcher, scrollback *term.Scrollback, pending func() string) Model {
	dispatcher.Start()
	return Model{
		ctx:        ctx,
		title:      title,
		dispatcher: dispatcher,
		scrollback: scrollback,
		pending:    pending,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - headerHeight
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		case msg.Type == tea.KeyCtrlD && m.pending() == "":
			return m, tea.Quit
		}

		if m.dispatcher.Handle(m.ctx, EventFor(msg)) {
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return titleStyle.Render(m.title) + "\n" + m.viewport.View()
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.render())
	m.viewport.GotoBottom()
}

func (m Model) render() string {
	var sb strings.Builder
	for _, span := range m.scrollback.Spans() {
		style := normalStyle
		if span.Style == term.StyleError {
			style = errorStyle
		}
		renderLines(&sb, style, span.Text)
	}
	sb.WriteString(cursorStyle.Render(" "))

	if m.viewport.Width > 0 {
		return lipgloss.NewStyle().Width(m.viewport.Width).Render(sb.String())
	}
	return sb.String()
}

// renderLines styles each line on its own so lipgloss does not pad short
// lines out to the widest one.
func renderLines(sb *strings.Builder, style lipgloss.Style, text string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if line != "" {
			sb.WriteString(style.Render(line))
		}
	}
}

// Run blocks until the window is closed or ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
