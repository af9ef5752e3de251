package controller

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tickInterval  = 100 * time.Millisecond
	maxRecent     = 5
	defaultWidth  = 80
	progressWidth = 40
)

// lintModel renders progress while documents are linted.
type lintModel struct {
	width    int
	mode     StartMode
	parallel int
	total    int
	done     int
	errors   int
	warnings int
	fixed    int
	active   map[string]struct{}
	recent   []fileDoneMsg
	spinner  spinner.Model
	bar      progress.Model
	finished bool
	quitting bool
}

func newLintModel() lintModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	return lintModel{
		width:    defaultWidth,
		parallel: 1,
		active:   make(map[string]struct{}),
		spinner:  sp,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(progressWidth),
			progress.WithoutPercentage(),
		),
	}
}

func (m lintModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m lintModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit
		}

	case tickMsg:
		if m.finished {
			return m, nil
		}

		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case startMsg:
		m.mode = msg.mode
		m.total = msg.files

	case concurrencyMsg:
		m.parallel = msg.parallel
		m.total = msg.files

	case fileStartedMsg:
		m.active[msg.path] = struct{}{}

	case fileDoneMsg:
		m = m.handleFileDone(msg)

	case finishedMsg:
		m.finished = true

		return m, tea.Quit
	}

	return m, nil
}

func (m lintModel) handleFileDone(msg fileDoneMsg) lintModel {
	delete(m.active, msg.path)

	m.done++
	m.errors += msg.errors
	m.warnings += msg.warnings
	m.fixed += msg.fixed

	m.recent = append(m.recent, msg)
	if len(m.recent) > maxRecent {
		m.recent = m.recent[len(m.recent)-maxRecent:]
	}

	return m
}

func (m lintModel) percent() float64 {
	if m.total == 0 {
		return 0
	}

	return float64(m.done) / float64(m.total)
}

func (m lintModel) View() string {
	if m.finished || m.quitting {
		return ""
	}

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(1, 0, 0, 2)
	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 0, 1, 2)
	padded := lipgloss.NewStyle().Padding(0, 2)

	title := "solint"
	if m.mode == ModeFix {
		title = "solint --fix"
	}

	summary := fmt.Sprintf(
		"Files: %s / %s  •  Workers: %s  •  Errors: %s  •  Warnings: %s  •  Fixed: %s",
		accent.Render(fmt.Sprintf("%d", m.done)),
		accent.Render(fmt.Sprintf("%d", m.total)),
		accent.Render(fmt.Sprintf("%d", m.parallel)),
		accent.Render(fmt.Sprintf("%d", m.errors)),
		accent.Render(fmt.Sprintf("%d", m.warnings)),
		accent.Render(fmt.Sprintf("%d", m.fixed)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		summaryStyle.Render(summary),
		padded.Render(m.bar.ViewAs(m.percent())),
		padded.Render(m.renderFiles()),
	) + "\n"
}

func (m lintModel) renderFiles() string {
	available := m.width - 8
	if available < 10 {
		available = 10
	}

	active := make([]string, 0, len(m.active))
	for path := range m.active {
		active = append(active, path)
	}

	sort.Strings(active)

	lines := make([]string, 0, len(active)+len(m.recent)+1)

	for _, path := range active {
		lines = append(lines, m.spinner.View()+" "+truncateToWidth(path, available))
	}

	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	for _, r := range m.recent {
		mark := okStyle.Render("✓")

		switch {
		case r.errors > 0:
			mark = failStyle.Render("✗")
		case r.warnings > 0:
			mark = warnStyle.Render("!")
		}

		line := mark + " " + truncateToWidth(r.path, available)
		if r.written {
			line += okStyle.Render(" (written)")
		}

		lines = append(lines, line)
	}

	if len(lines) == 0 {
		lines = append(lines, "waiting…")
	}

	return strings.Join(lines, "\n")
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
