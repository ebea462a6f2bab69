// Package tui is the interactive terminal front end of the leaderboard.
// bubbletea's message loop drives the shell: every state change arrives as
// a message and produces exactly one redraw.
package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bullsharks/internal/display"
	"bullsharks/internal/leaderboard"
	"bullsharks/internal/shell"
)

// stateMsg carries the terminal state of load number gen.
type stateMsg struct {
	gen   int
	state shell.State
}

// Model renders one shell at a time. Pressing r after a failure discards it
// and starts over from Loading with a fresh shell.
type Model struct {
	ctx     context.Context
	fetcher shell.Fetcher
	now     func() time.Time

	gen     int
	current *shell.Shell
	state   shell.State

	spinner spinner.Model
	styles  Styles
	width   int
}

// New returns a model in the Loading state. now may be nil for time.Now.
func New(ctx context.Context, f shell.Fetcher, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	styles := DefaultStyles()
	sp.Style = styles.Loading
	return Model{
		ctx:     ctx,
		fetcher: f,
		now:     now,
		current: shell.New(f),
		state:   shell.Loading{},
		spinner: sp,
		styles:  styles,
	}
}

// State returns the state currently on screen.
func (m Model) State() shell.State { return m.state }

// Init starts the spinner and the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m Model) load() tea.Cmd {
	sh, gen, ctx := m.current, m.gen, m.ctx
	return func() tea.Msg {
		return stateMsg{gen: gen, state: sh.Start(ctx)}
	}
}

func (m Model) reload() (Model, tea.Cmd) {
	m.current.Close()
	m.gen++
	m.current = shell.New(m.fetcher)
	m.state = shell.Loading{}
	return m, tea.Batch(m.spinner.Tick, m.load())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		if msg.gen != m.gen || !shell.Terminal(msg.state) {
			return m, nil
		}
		m.state = msg.state
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.current.Close()
			return m, tea.Quit
		case "r":
			if m.state.Kind() == shell.KindFailed {
				return m.reload()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.state.Kind() != shell.KindLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the page for the current state.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Logo.Render("🦈 " + display.Brand))
	sb.WriteString("\n\n")

	v := shell.Render(m.state, m.now())
	switch v.Kind {
	case shell.KindLoading:
		sb.WriteString(m.spinner.View() + " " + m.styles.Loading.Render(v.Loading))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Help.Render("q quit"))
	case shell.KindFailed:
		sb.WriteString(m.styles.Error.Render(v.Error))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Button.Render("r  " + display.TryAgain))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Help.Render("r retry • q quit"))
	default:
		sb.WriteString(m.board(v.Board))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Help.Render("q quit"))
	}
	sb.WriteString("\n")
	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(sb.String())
	}
	return sb.String()
}

var widths = []int{6, 26, 15, 11}

func cell(s string, w int, right bool) string {
	st := lipgloss.NewStyle().Width(w)
	if right {
		st = st.Align(lipgloss.Right)
	}
	return st.Render(s)
}

func (m Model) board(b leaderboard.Board) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(display.Title))
	sb.WriteString("\n")
	if b.Empty() {
		sb.WriteString(m.styles.NoData.Render(display.NoData))
		sb.WriteString("\n")
		return sb.String()
	}
	sb.WriteString(m.styles.Subtitle.Render(display.Subtitle))
	sb.WriteString("\n\n")

	var hdr []string
	for i, c := range display.Columns {
		hdr = append(hdr, cell(c, widths[i], i >= 2))
	}
	sb.WriteString(m.styles.Header.Render(strings.Join(hdr, " ")))
	sb.WriteString("\n")

	for i, s := range b.Rows {
		line := strings.Join([]string{
			cell(display.Rank(i), widths[0], false),
			cell(s.AthleteName, widths[1], false),
			cell(display.Kilometers(s.TotalKilometers), widths[2], true),
			cell(strconv.Itoa(s.ActivityCount), widths[3], true),
		}, " ")
		style := m.styles.Row
		if display.Podium(i) {
			style = m.styles.Podium
		}
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Run drives the model until the user quits or ctx is canceled.
func Run(ctx context.Context, f shell.Fetcher, now func() time.Time, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(ctx, f, now), opts...)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.current.Close()
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
