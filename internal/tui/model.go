// Package tui is the full-screen refinement front end. One text input takes
// refinements such as "length=5 positions=1=a pos=noun"; the viewport
// above it lists the words that currently match.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/bip39-filter/internal/constraint"
	"github.com/pdiddy/bip39-filter/internal/output"
	"github.com/pdiddy/bip39-filter/internal/session"
	"github.com/pdiddy/bip39-filter/pkg/types"
)

const helpText = "enter: refine  ctrl+r: reset  pgup/pgdn: scroll  esc: done"

// Model is the Bubble Tea model for an interactive session.
type Model struct {
	sess     *session.Session
	input    textinput.Model
	viewport viewport.Model
	status   string
	failed   bool
	ready    bool
}

// New creates a model over sess.
func New(sess *session.Session) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "length=5 positions=1=a,3=e pos=noun"
	ti.Focus()
	ti.CharLimit = 0
	m := Model{
		sess:     sess,
		input:    ti,
		viewport: viewport.New(0, 0),
	}
	m.status = m.summary()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 2 + qh + 1 // header, constraints, status + help, input frame
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, msg.Height-reserved-rh)
		m.refreshResults()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			m.sess.Reset()
			m.input.Reset()
			m.failed = false
			m.status = "Reset. " + m.summary()
			m.refreshResults()
			return m, nil
		case tea.KeyEnter:
			m.refine(m.input.Value())
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// refine applies one refinement line. Errors stay in the status line and
// keep the input so it can be corrected.
func (m *Model) refine(line string) {
	in, err := constraint.ParseLine(line)
	if err == nil {
		_, err = m.sess.Refine(in)
	}
	if err != nil {
		m.failed = true
		m.status = "Error: " + err.Error()
		return
	}
	m.failed = false
	m.input.Reset()
	m.status = m.summary()
	m.refreshResults()
}

func (m Model) summary() string {
	n := len(m.sess.Result())
	if n == 0 {
		return "No matches."
	}
	return fmt.Sprintf("%d of %d words match.", n, m.sess.CorpusSize())
}

func (m *Model) refreshResults() {
	width := max(20, m.viewport.Width-4)
	content := output.Columns(m.sess.Result(), width)
	if content == "" {
		content = "No matches."
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// View renders the layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("BIP39 word filter")
	current := dimStyle.Render("Constraints: " + m.sess.Constraints().String())
	results := resultBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	statusStyle := okStyle
	if m.failed {
		statusStyle = errStyle
	}
	status := statusStyle.Render(m.status)
	help := dimStyle.Render(helpText)
	return strings.Join([]string{header, current, results, input, status, help}, "\n")
}

// Result returns the words matching the session's current constraints.
func (m Model) Result() []types.Word {
	return m.sess.Result()
}

// Constraints returns the session's merged constraints.
func (m Model) Constraints() constraint.Set {
	return m.sess.Constraints()
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Run shows the TUI on the given streams until the user quits, then
// returns the final model.
func Run(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer) (Model, error) {
	p := tea.NewProgram(New(sess),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return Model{}, fmt.Errorf("running terminal UI: %w", err)
	}
	return final.(Model), nil
}
