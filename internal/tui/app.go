// Package tui provides the interactive Bubble Tea dashboard for ripple.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jeppcode/KPIVisualization/internal/config"
	"github.com/Jeppcode/KPIVisualization/internal/kpi"
	"github.com/Jeppcode/KPIVisualization/internal/tui/components"
	"github.com/Jeppcode/KPIVisualization/internal/tui/theme"
)

const (
	tabInputs = iota
	tabResults
	tabAbout
)

// App is the root Bubble Tea model.
type App struct {
	// Model state
	scenario kpi.Scenario
	defaults kpi.Scenario
	bounds   kpi.Bounds
	cmp      kpi.Comparison
	insight  kpi.Insight

	currency string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	cursor    int

	// Exact value entry
	editing  bool
	input    textinput.Model
	inputErr error
	saveErr  error
}

const (
	minTerminalWidth = 80
	wideWidth        = 120
	maxContentWidth  = 160

	minContentHeight = 5
)

// NewApp creates a new TUI app model starting from the configured base KPIs.
func NewApp(cfg config.Config) App {
	bounds := kpi.DefaultBounds()
	base := bounds.ClampBase(cfg.BaseKPIs())

	a := App{
		scenario: kpi.NewScenario(base),
		defaults: kpi.NewScenario(base),
		bounds:   bounds,
		currency: cfg.Display.Currency,
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// recompute re-clamps the deltas to the ranges allowed by the current base
// and evaluates the comparison from scratch.
func (a *App) recompute() {
	a.scenario.Delta = a.bounds.ClampDelta(a.scenario.Base, a.scenario.Delta)
	a.cmp = a.scenario.Compare()
	a.insight = kpi.NewInsight(a.cmp)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.editing {
			return a, nil
		}
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabInputs && a.cursor > 0 {
				a.cursor--
			}
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabInputs && a.cursor < fieldCount-1 {
				a.cursor++
			}
		case tea.MouseButtonLeft:
			// Tab bar is the first line.
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.editing {
			return a.updateInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if a.activeTab == tabInputs {
			if next, cmd, ok := a.updateInputsTab(key); ok {
				return next, cmd
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "r":
			a.scenario.Reset()
			a.recompute()
		case "R":
			a.scenario = a.defaults
			a.recompute()
		case "t":
			a.cycleTheme()
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		default:
			if len(msg.Runes) == 1 {
				if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	if a.editing {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// updateInputsTab handles the slider keys. ok is false when the key is
// not a slider key and should fall through to the global bindings.
func (a App) updateInputsTab(key string) (App, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.cursor < fieldCount-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "g", "home":
		a.cursor = 0
	case "G", "end":
		a.cursor = fieldCount - 1
	case "l", "right":
		a.stepField(a.cursor, 1)
	case "h", "left":
		a.stepField(a.cursor, -1)
	case "L", "shift+right":
		a.stepField(a.cursor, 10)
	case "H", "shift+left":
		a.stepField(a.cursor, -10)
	case "0":
		if a.cursor >= firstScenarioField {
			inputFields[a.cursor].set(&a.scenario, 0)
			a.recompute()
		}
	case "enter":
		return a.startEdit()
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) startEdit() (App, tea.Cmd, bool) {
	ti := textinput.New()
	ti.CharLimit = 24
	ti.Width = 20
	ti.Prompt = ""
	ti.SetValue(a.fieldInputValue(a.cursor))
	ti.CursorEnd()
	ti.Focus()

	a.editing = true
	a.inputErr = nil
	a.input = ti
	return a, textinput.Blink, true
}

func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.inputErr = a.setFieldText(a.cursor, a.input.Value())
		a.editing = false
		return a, nil
	case "esc":
		a.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// cycleTheme switches to the next theme and persists the choice
// (best-effort).
func (a *App) cycleTheme() {
	next := theme.Next(theme.Active.Name)
	theme.Active = next

	cfg, err := config.LoadFile()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	cfg.Appearance.Theme = next.Name
	a.saveErr = config.Save(cfg)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isWideLayout() bool {
	return a.contentWidth() >= wideWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  ripple needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Focus).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Key).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"1 2 3", "Jump to tab"},
			{"tab ⇧tab", "Next / Previous tab"},
			{"j k", "Select input"},
		}},
		{"Inputs", []struct{ key, desc string }{
			{"h l ← →", "Step value"},
			{"H L", "Step value ×10"},
			{"Enter", "Type an exact value"},
			{"0", "Zero the selected adjustment"},
			{"r", "Reset scenario"},
			{"R", "Reset everything to defaults"},
		}},
		{"General", []struct{ key, desc string }{
			{"t", "Cycle theme"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	state := "base scenario"
	if !a.scenario.IsBase() {
		state = "scenario active"
	}
	statusBar := components.RenderStatusBar(w, state, !a.scenario.IsBase(), a.currency)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabInputs:
		content = a.renderInputsTab(cw)
	case tabResults:
		content = a.renderResultsTab(cw, contentH)
	case tabAbout:
		content = a.renderAboutTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the same width rules as RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
