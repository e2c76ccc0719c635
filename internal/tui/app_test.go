package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jeppcode/KPIVisualization/internal/config"
	"github.com/Jeppcode/KPIVisualization/internal/tui/theme"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{config.EnvTheme, config.EnvCurrency, config.EnvAddr, config.EnvLogLevel} {
		t.Setenv(k, "")
	}
	return NewApp(config.DefaultConfig())
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		m, _ := a.Update(keyMsg(k))
		next, ok := m.(App)
		if !ok {
			t.Fatalf("Update returned %T, want App", m)
		}
		a = next
	}
	return a
}

func repeat(key string, n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = key
	}
	return keys
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestNewAppStartsAtBase(t *testing.T) {
	a := newTestApp(t)
	if !a.scenario.IsBase() {
		t.Fatalf("new app should start in the base scenario, delta=%+v", a.scenario.Delta)
	}
	if a.cmp.Adjusted != a.cmp.Base {
		t.Errorf("adjusted %+v != base %+v", a.cmp.Adjusted, a.cmp.Base)
	}
	// 350,000 visitors at 25% hitrate
	if !near(a.cmp.Base.Purchases, 87_500) {
		t.Errorf("purchases = %v, want 87500", a.cmp.Base.Purchases)
	}
}

func TestStepHitrateDeltaRecomputes(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, repeat("j", fieldHitrateDelta)...)
	if a.cursor != fieldHitrateDelta {
		t.Fatalf("cursor = %d, want %d", a.cursor, fieldHitrateDelta)
	}

	a = press(t, a, repeat("l", 20)...)
	if !near(a.scenario.Delta.HitrateDelta, 0.02) {
		t.Fatalf("hitrate delta = %v, want 0.02", a.scenario.Delta.HitrateDelta)
	}
	if !near(a.cmp.Diff.Purchases, 350_000*0.02) {
		t.Errorf("purchases diff = %v, want 7000", a.cmp.Diff.Purchases)
	}
	if a.cmp.Diff.Profit <= 0 {
		t.Errorf("profit diff should be positive, got %v", a.cmp.Diff.Profit)
	}
}

func TestStepClampsToRange(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, repeat("j", fieldHitrateDelta)...)

	a = press(t, a, repeat("L", 20)...)
	if !near(a.scenario.Delta.HitrateDelta, 0.10) {
		t.Errorf("hitrate delta = %v, want max 0.10", a.scenario.Delta.HitrateDelta)
	}

	a = press(t, a, repeat("H", 40)...)
	if !near(a.scenario.Delta.HitrateDelta, -0.05) {
		t.Errorf("hitrate delta = %v, want min -0.05", a.scenario.Delta.HitrateDelta)
	}
}

func TestStepVisitors(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "l", "right")
	if a.scenario.Base.Visitors != 352_000 {
		t.Errorf("visitors = %d, want 352000", a.scenario.Base.Visitors)
	}
}

func TestResetRestoresBase(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, repeat("j", fieldAvgPurchaseDelta)...)
	a = press(t, a, repeat("L", 5)...)
	if a.scenario.IsBase() {
		t.Fatal("expected an active scenario after stepping")
	}

	a = press(t, a, "r")
	if !a.scenario.IsBase() {
		t.Fatalf("reset left delta %+v", a.scenario.Delta)
	}
	if a.cmp.Adjusted != a.cmp.Base {
		t.Errorf("after reset adjusted %+v != base %+v", a.cmp.Adjusted, a.cmp.Base)
	}
}

func TestResetAllRestoresConfiguredBase(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, repeat("L", 3)...)
	if a.scenario.Base.Visitors == 350_000 {
		t.Fatal("expected visitors to change")
	}
	a = press(t, a, "R")
	if a.scenario.Base.Visitors != 350_000 {
		t.Errorf("visitors = %d, want 350000", a.scenario.Base.Visitors)
	}
}

func TestEditExactValue(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "enter")
	if !a.editing {
		t.Fatal("enter should start editing")
	}
	if got := a.input.Value(); got != "350000" {
		t.Errorf("prefilled value = %q, want 350000", got)
	}

	a.input.SetValue("1,000,000")
	a = press(t, a, "enter")
	if a.editing {
		t.Fatal("enter should finish editing")
	}
	if a.inputErr != nil {
		t.Fatalf("unexpected input error: %v", a.inputErr)
	}
	if a.scenario.Base.Visitors != 1_000_000 {
		t.Errorf("visitors = %d, want 1000000", a.scenario.Base.Visitors)
	}
}

func TestEditPercentField(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "j", "enter")
	a.input.SetValue("12.5%")
	a = press(t, a, "enter")
	if !near(a.scenario.Base.Hitrate, 0.125) {
		t.Errorf("hitrate = %v, want 0.125", a.scenario.Base.Hitrate)
	}
}

func TestEditInvalidValueKeepsOld(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "enter")
	a.input.SetValue("lots")
	a = press(t, a, "enter")
	if a.inputErr == nil {
		t.Fatal("expected an input error")
	}
	if a.scenario.Base.Visitors != 350_000 {
		t.Errorf("visitors changed to %d", a.scenario.Base.Visitors)
	}
}

func TestEditEscCancels(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "enter")
	a.input.SetValue("2000000")
	a = press(t, a, "esc")
	if a.editing || a.scenario.Base.Visitors != 350_000 {
		t.Errorf("esc should cancel: editing=%v visitors=%d", a.editing, a.scenario.Base.Visitors)
	}
}

func TestBaseChangeReclampsDelta(t *testing.T) {
	a := newTestApp(t)
	// Push the avg purchase delta to its max (+base = 500).
	a = press(t, a, repeat("j", fieldAvgPurchaseDelta)...)
	a = press(t, a, repeat("L", 60)...)
	if !near(a.scenario.Delta.AvgPurchaseDelta, 500) {
		t.Fatalf("avg purchase delta = %v, want 500", a.scenario.Delta.AvgPurchaseDelta)
	}

	// Lower the base avg purchase to 100.
	a = press(t, a, repeat("k", fieldAvgPurchaseDelta-fieldAvgPurchase)...)
	a = press(t, a, "enter")
	a.input.SetValue("100")
	a = press(t, a, "enter")

	if !near(a.scenario.Delta.AvgPurchaseDelta, 100) {
		t.Errorf("avg purchase delta = %v, want 100 after base change", a.scenario.Delta.AvgPurchaseDelta)
	}
}

func TestZeroKeyClearsScenarioField(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, repeat("j", fieldProductsDelta)...)
	a = press(t, a, repeat("l", 7)...)
	a = press(t, a, "0")
	if a.scenario.Delta.ProductsPerCustomerDelta != 0 {
		t.Errorf("products delta = %v, want 0", a.scenario.Delta.ProductsPerCustomerDelta)
	}
}

func TestTabNavigation(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "2")
	if a.activeTab != tabResults {
		t.Errorf("'2' -> tab %d, want %d", a.activeTab, tabResults)
	}
	a = press(t, a, "tab")
	if a.activeTab != tabAbout {
		t.Errorf("tab -> %d, want %d", a.activeTab, tabAbout)
	}
	a = press(t, a, "tab")
	if a.activeTab != tabInputs {
		t.Errorf("tab should wrap to %d, got %d", tabInputs, a.activeTab)
	}
	a = press(t, a, "shift+tab")
	if a.activeTab != tabAbout {
		t.Errorf("shift+tab -> %d, want %d", a.activeTab, tabAbout)
	}
}

func TestSliderKeysIgnoredOutsideInputs(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "2", "l", "j")
	if a.scenario.Base.Visitors != 350_000 || a.cursor != 0 {
		t.Errorf("slider keys leaked into results tab: visitors=%d cursor=%d",
			a.scenario.Base.Visitors, a.cursor)
	}
}

func TestQuitKeys(t *testing.T) {
	a := newTestApp(t)
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := a.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", k)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "?")
	if !a.showHelp {
		t.Fatal("? should open help")
	}
	a = press(t, a, "l")
	if a.showHelp {
		t.Error("any key should close help")
	}
	if a.scenario.Base.Visitors != 350_000 {
		t.Error("key that closed help should not step a slider")
	}
}

func TestThemeCyclePersists(t *testing.T) {
	orig := theme.Active
	t.Cleanup(func() { theme.Active = orig })

	a := newTestApp(t)
	theme.Active = theme.FlexokiDark
	a = press(t, a, "t")

	if theme.Active.Name != theme.CatppuccinMocha.Name {
		t.Errorf("theme = %s, want %s", theme.Active.Name, theme.CatppuccinMocha.Name)
	}
	if a.saveErr != nil {
		t.Fatalf("saving theme: %v", a.saveErr)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Appearance.Theme != theme.CatppuccinMocha.Name {
		t.Errorf("saved theme = %s", cfg.Appearance.Theme)
	}
}

func TestThemeCycleLeavesEnvOverridesUnsaved(t *testing.T) {
	orig := theme.Active
	t.Cleanup(func() { theme.Active = orig })

	a := newTestApp(t)
	t.Setenv(config.EnvCurrency, "EUR")
	_ = press(t, a, "t")

	cfg, err := config.LoadFile()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.Currency != "SEK" {
		t.Errorf("saved currency = %s, want SEK", cfg.Display.Currency)
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 130, Height: 45})
	a = m.(App)

	wants := []string{"Profit", "Change %", "How it works"}
	for tab, want := range wants {
		a.activeTab = tab
		out := a.View()
		if !strings.Contains(out, want) {
			t.Errorf("tab %d view missing %q", tab, want)
		}
		if got := len(strings.Split(out, "\n")); got != 45 {
			t.Errorf("tab %d view has %d lines, want 45", tab, got)
		}
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if out := m.(App).View(); !strings.Contains(out, "too narrow") {
		t.Errorf("expected too-narrow message, got %q", out)
	}
}
