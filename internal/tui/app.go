// Package tui provides the interactive Bubble Tea dashboard for amort.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/amort/internal/cli"
	"github.com/theirongolddev/amort/internal/config"
	"github.com/theirongolddev/amort/internal/loan"
	"github.com/theirongolddev/amort/internal/report"
	"github.com/theirongolddev/amort/internal/tui/components"
	"github.com/theirongolddev/amort/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	NextTab: key.NewBinding(key.WithKeys("tab", "right", "l")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
}

// App is the root Bubble Tea model.
type App struct {
	// Inputs
	loan   loan.Loan
	extra  loan.ExtraSchedule
	extras []loan.ExtraPayment

	// Computed
	sched      *loan.Schedule
	baseline   report.Comparison
	hasExtras  bool
	years      []report.YearlyStats
	computeErr error

	// UI state
	width        int
	height       int
	activeTab    int
	schedOffset  int   // scroll offset in the schedule tab
	themeChoice  int   // settings tab cursor
	themeSaveErr error // non-nil if the last theme apply failed to save
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140

	// header + tab bar + status bar rows around the content area
	chromeHeight = 5
)

// NewApp creates a new TUI app model and computes the schedule up front.
func NewApp(l loan.Loan, extra loan.ExtraSchedule, extras []loan.ExtraPayment) App {
	a := App{
		loan:   l,
		extra:  extra,
		extras: extras,
	}
	for i, t := range theme.All {
		if t.Name == theme.Active.Name {
			a.themeChoice = i
		}
	}
	a.recompute()
	return a
}

func (a *App) recompute() {
	s, err := loan.Compute(a.loan, a.extras)
	if err != nil {
		a.computeErr = err
		return
	}
	a.computeErr = nil
	a.sched = s
	a.years = report.AggregateYears(s)
	a.hasExtras = s.Totals.TotalExtra > 0
	if a.hasExtras {
		a.baseline, _ = report.CompareToBaseline(s)
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, keys.NextTab):
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case key.Matches(msg, keys.PrevTab):
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	}

	// Per-tab navigation
	switch a.activeTab {
	case tabSchedule:
		switch msg.String() {
		case "j", "down":
			a.schedOffset = a.clampOffset(a.schedOffset + 1)
			return a, nil
		case "k", "up":
			a.schedOffset = a.clampOffset(a.schedOffset - 1)
			return a, nil
		case "d", "pgdown":
			a.schedOffset = a.clampOffset(a.schedOffset + a.scheduleRows()/2)
			return a, nil
		case "u", "pgup":
			a.schedOffset = a.clampOffset(a.schedOffset - a.scheduleRows()/2)
			return a, nil
		case "g", "home":
			a.schedOffset = 0
			return a, nil
		case "G", "end":
			a.schedOffset = a.clampOffset(1 << 30)
			return a, nil
		}
	case tabSettings:
		switch msg.String() {
		case "j", "down":
			if a.themeChoice < len(theme.All)-1 {
				a.themeChoice++
			}
			return a, nil
		case "k", "up":
			if a.themeChoice > 0 {
				a.themeChoice--
			}
			return a, nil
		case "enter":
			theme.Active = theme.All[a.themeChoice]
			cfg, err := config.Load()
			if err == nil {
				cfg.Appearance.Theme = theme.Active.Name
				err = config.Save(cfg)
			}
			a.themeSaveErr = err
			return a, nil
		}
	}

	// Tab shortcut keys
	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	return a, nil
}

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabSchedule
	tabBreakdown
	tabSettings
)

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active

	if a.width > 0 && a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d).\n", a.width, minTerminalWidth)
	}
	if a.computeErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		return "\n" + errStyle.Render(fmt.Sprintf("  %s", a.computeErr)) + "\n\n  Press q to quit.\n"
	}
	if a.sched == nil || a.width == 0 {
		return "\n  Loading...\n"
	}

	cw := a.contentWidth()

	headerStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true)

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(headerStyle.Render("amort"))
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render(
		fmt.Sprintf("  %s at %s", cli.FormatMoneyShort(a.loan.Principal), cli.FormatRate(a.loan.NominalRate))))
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab, a.width))
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabOverview:
		b.WriteString(a.renderOverviewTab(cw))
	case tabSchedule:
		b.WriteString(a.renderScheduleTab(cw))
	case tabBreakdown:
		b.WriteString(a.renderBreakdownTab(cw))
	case tabSettings:
		b.WriteString(a.renderSettingsTab(cw))
	}

	content := b.String()

	// Pin the status bar to the bottom
	if a.height > 0 {
		lines := strings.Count(content, "\n") + 1
		for i := lines; i < a.height-1; i++ {
			content += "\n"
		}
	}
	content += components.RenderStatusBar(a.width,
		fmt.Sprintf("%s over %s", cli.FormatMoneyShort(a.sched.Totals.TotalCost),
			cli.FormatTermSpan(a.sched.Totals.CompletedTerms, a.loan.TermsPerYear)))

	return content
}

func (a App) contentWidth() int {
	cw := a.width - 2
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// scheduleRows is the number of payment rows visible in the schedule tab.
func (a App) scheduleRows() int {
	rows := a.height - chromeHeight - 4 // table header + rules
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (a App) clampOffset(off int) int {
	maxOff := len(a.sched.Payments) - a.scheduleRows()
	if maxOff < 0 {
		maxOff = 0
	}
	if off > maxOff {
		off = maxOff
	}
	if off < 0 {
		off = 0
	}
	return off
}
