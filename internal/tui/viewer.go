package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

// headerLines and footerLines are the rows View draws around the viewport.
const (
	headerLines = 2
	footerLines = 2
)

// Viewer is the bubbletea model for scrolling through a configuration document.
type Viewer struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	quitting bool
}

// NewViewer creates a viewer showing content under title.
func NewViewer(title, content string) Viewer {
	return Viewer{
		title:   title,
		content: content,
	}
}

func (m Viewer) Init() tea.Cmd {
	return nil
}

func (m Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - headerLines - footerLines
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Viewer) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%3.f%%  [↑/↓] Scroll  [q] Quit", m.viewport.ScrollPercent()*100)))
	return b.String()
}

// RunViewer shows content in a full-screen scrollable view until the
// operator quits.
func RunViewer(title, content string) error {
	p := tea.NewProgram(NewViewer(title, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
