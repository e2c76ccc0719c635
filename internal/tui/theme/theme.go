// Package theme defines color themes for the ripple dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps the dashboard's color roles to concrete colors.
type Theme struct {
	Name         string
	Background   lipgloss.Color // App background
	Surface      lipgloss.Color // Card and bar backgrounds
	Selected     lipgloss.Color // Focused slider row, active tab
	Border       lipgloss.Color // Card borders, table rules
	Focus        lipgloss.Color // Help overlay border
	TextDim      lipgloss.Color // Hints, axis labels
	TextMuted    lipgloss.Color // Field labels, secondary values
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color // Headings, slider fill
	AccentBright lipgloss.Color // Focused slider fill, titles
	Key          lipgloss.Color // Key names in help
	Positive     lipgloss.Color // Non-negative change
	Negative     lipgloss.Color // Negative change
	Modified     lipgloss.Color // Scenario values that differ from base
	Warning      lipgloss.Color // Input and save errors
	SliderEmpty  lipgloss.Color // Unfilled part of a slider track
	ZeroLine     lipgloss.Color // Chart zero line
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme, built on the Flexoki dark palette.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	Selected:     lipgloss.Color("#343331"),
	Border:       lipgloss.Color("#403E3C"),
	Focus:        lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Key:          lipgloss.Color("#4385BE"),
	Positive:     lipgloss.Color("#A3B859"),
	Negative:     lipgloss.Color("#D14D41"),
	Modified:     lipgloss.Color("#D0A215"),
	Warning:      lipgloss.Color("#DA702C"),
	SliderEmpty:  lipgloss.Color("#282726"),
	ZeroLine:     lipgloss.Color("#6F6E69"),
}

// CatppuccinMocha uses the Catppuccin Mocha pastels.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	Selected:     lipgloss.Color("#45475A"),
	Border:       lipgloss.Color("#585B70"),
	Focus:        lipgloss.Color("#B4BEFE"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#89B4FA"),
	AccentBright: lipgloss.Color("#B4BEFE"),
	Key:          lipgloss.Color("#94E2D5"),
	Positive:     lipgloss.Color("#A6E3A1"),
	Negative:     lipgloss.Color("#F38BA8"),
	Modified:     lipgloss.Color("#F9E2AF"),
	Warning:      lipgloss.Color("#FAB387"),
	SliderEmpty:  lipgloss.Color("#45475A"),
	ZeroLine:     lipgloss.Color("#7F849C"),
}

// TokyoNight uses the Tokyo Night blues and purples.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   lipgloss.Color("#1A1B26"),
	Surface:      lipgloss.Color("#24283B"),
	Selected:     lipgloss.Color("#343A52"),
	Border:       lipgloss.Color("#414868"),
	Focus:        lipgloss.Color("#BB9AF7"),
	TextDim:      lipgloss.Color("#545C7E"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#7AA2F7"),
	AccentBright: lipgloss.Color("#7DCFFF"),
	Key:          lipgloss.Color("#73DACA"),
	Positive:     lipgloss.Color("#9ECE6A"),
	Negative:     lipgloss.Color("#F7768E"),
	Modified:     lipgloss.Color("#E0AF68"),
	Warning:      lipgloss.Color("#FF9E64"),
	SliderEmpty:  lipgloss.Color("#343A52"),
	ZeroLine:     lipgloss.Color("#565F89"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	Selected:     lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	Focus:        lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Key:          lipgloss.Color("12"),
	Positive:     lipgloss.Color("10"),
	Negative:     lipgloss.Color("9"),
	Modified:     lipgloss.Color("11"),
	Warning:      lipgloss.Color("3"),
	SliderEmpty:  lipgloss.Color("8"),
	ZeroLine:     lipgloss.Color("7"),
}

// All available themes, in cycle order.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Next returns the theme after the named one, wrapping around.
func Next(name string) Theme {
	for i, t := range All {
		if t.Name == name {
			return All[(i+1)%len(All)]
		}
	}
	return All[0]
}

// Names lists the available theme names in cycle order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Signal returns the color for a positive or negative change.
func (t Theme) Signal(positive bool) lipgloss.Color {
	if positive {
		return t.Positive
	}
	return t.Negative
}
