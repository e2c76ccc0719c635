package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/Jeppcode/KPIVisualization/internal/tui/theme"
)

func TestChangeChartLayout(t *testing.T) {
	const height = 4
	out := ChangeChart([]float64{50, -50, 250}, []string{"Purchases", "Revenue", "Profit"}, 100, 60, height)
	lines := strings.Split(out, "\n")

	// height rows above, zero line, height rows below, label row
	if want := 2*height + 2; len(lines) != want {
		t.Fatalf("got %d lines, want %d", len(lines), want)
	}
	if !strings.Contains(lines[0], "█") {
		t.Errorf("top row should hold the clipped bar: %q", lines[0])
	}
	if !strings.Contains(lines[height], "╌") {
		t.Errorf("zero line missing at row %d: %q", height, lines[height])
	}
	if strings.ContainsAny(lines[2*height], "█▀▔") {
		t.Errorf("-50%% bar should not reach the bottom row: %q", lines[2*height])
	}
	if !strings.Contains(lines[height+1], "█") {
		t.Errorf("-50%% bar should start below the zero line: %q", lines[height+1])
	}
}

func TestChangeChartEmpty(t *testing.T) {
	if got := ChangeChart(nil, nil, 100, 40, 4); got != "" {
		t.Errorf("expected empty chart, got %q", got)
	}
}

func TestRenderSliderWidth(t *testing.T) {
	s := Slider{Label: "Visitors", Value: "350,000", Fraction: 0.25, Focused: true}
	got := lipgloss.Width(RenderSlider(s, 20, 30, 12))
	if want := 2 + 20 + 1 + 30 + 1 + 12; got != want {
		t.Errorf("slider width = %d, want %d", got, want)
	}
}

func TestRenderTabBarFillsWidth(t *testing.T) {
	for active := range Tabs {
		if got := lipgloss.Width(RenderTabBar(active, 80)); got != 80 {
			t.Errorf("active=%d width = %d, want 80", active, got)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('2'); got != 1 {
		t.Errorf("TabIdxByKey('2') = %d, want 1", got)
	}
	if got := TabIdxByKey('x'); got != -1 {
		t.Errorf("TabIdxByKey('x') = %d, want -1", got)
	}
}

func TestRenderStatusBarWidth(t *testing.T) {
	if got := lipgloss.Width(RenderStatusBar(90, "scenario", true, "SEK")); got != 90 {
		t.Errorf("status bar width = %d, want 90", got)
	}
}

func TestChangeChartZeroLineUsesZeroLineColor(t *testing.T) {
	theme.SetActive("flexoki-dark")
	th := theme.Active

	styled := lipgloss.NewStyle().Foreground(th.ZeroLine).Background(th.Surface).Render("╌")
	prefix := styled[:strings.Index(styled, "╌")]

	out := ChangeChart([]float64{20, -10}, []string{"A", "B"}, 100, 40, 4)
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[4], prefix+"╌") {
		t.Errorf("zero line not drawn in the ZeroLine color: %q", lines[4])
	}
}
