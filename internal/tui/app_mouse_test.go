package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jeppcode/KPIVisualization/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	n := len(components.Tabs)
	for active := 0; active < n; active++ {
		a := App{activeTab: active}
		pos := 0

		for i := 0; i < n; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < n-1 {
				pos++ // separator
			}
		}
		if got := a.tabAtX(pos + 5); got != -1 {
			t.Errorf("active=%d x past last tab -> %d, want -1", active, got)
		}
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	nameWidths := []int{
		len("Inputs"),
		len("Results"),
		len("About"),
	}

	w := nameWidths[tabIdx] + 2 // horizontal padding in tab renderer
	if tabIdx != activeIdx {
		w += 3 // inactive tabs add "[k]"
	}
	return w
}

func TestMouseClickSwitchesTab(t *testing.T) {
	a := newTestApp(t)
	// Inputs is active (8 wide), separator, then " Results[2] ".
	m, _ := a.Update(tea.MouseMsg{X: 12, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.(App).activeTab; got != tabResults {
		t.Errorf("click -> tab %d, want %d", got, tabResults)
	}
}

func TestMouseWheelMovesCursor(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := m.(App).cursor; got != 1 {
		t.Errorf("wheel down -> cursor %d, want 1", got)
	}
}
