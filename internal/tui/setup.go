package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/Jeppcode/KPIVisualization/internal/config"
	"github.com/Jeppcode/KPIVisualization/internal/kpi"
	"github.com/Jeppcode/KPIVisualization/internal/tui/theme"
)

// SetupValues holds the text state of the setup form. Rates are entered
// in percent.
type SetupValues struct {
	Visitors            string
	HitratePct          string
	AvgPurchase         string
	ProductsPerCustomer string
	ProfitMarginPct     string
	Currency            string
	Theme               string
}

// NewSetupValues pre-fills the form from cfg.
func NewSetupValues(cfg config.Config) SetupValues {
	return SetupValues{
		Visitors:            strconv.FormatInt(cfg.Base.Visitors, 10),
		HitratePct:          formatSetupFloat(cfg.Base.HitratePct),
		AvgPurchase:         formatSetupFloat(cfg.Base.AvgPurchase),
		ProductsPerCustomer: formatSetupFloat(cfg.Base.ProductsPerCustomer),
		ProfitMarginPct:     formatSetupFloat(cfg.Base.ProfitMarginPct),
		Currency:            cfg.Display.Currency,
		Theme:               cfg.Appearance.Theme,
	}
}

func formatSetupFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

// NewSetupForm builds the huh form that edits v in place.
func NewSetupForm(v *SetupValues) *huh.Form {
	b := kpi.DefaultBounds()

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("ripple setup").
				Description("Set the base KPIs the dashboard starts from.\nScenario adjustments are made in the dashboard itself."),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Visitors per year").
				Description(rangeHint(b.Visitors, 1, "")).
				Value(&v.Visitors).
				Validate(ValidateRange(b.Visitors, 1)),
			huh.NewInput().
				Title("Hitrate (%)").
				Description(rangeHint(b.Hitrate, 100, "%")).
				Value(&v.HitratePct).
				Validate(ValidateRange(b.Hitrate, 100)),
			huh.NewInput().
				Title("Average purchase").
				Description(rangeHint(b.AvgPurchase, 1, "")).
				Value(&v.AvgPurchase).
				Validate(ValidateRange(b.AvgPurchase, 1)),
			huh.NewInput().
				Title("Products per customer").
				Description(rangeHint(b.ProductsPerCustomer, 1, "")).
				Value(&v.ProductsPerCustomer).
				Validate(ValidateRange(b.ProductsPerCustomer, 1)),
			huh.NewInput().
				Title("Profit margin (%)").
				Description(rangeHint(b.ProfitMargin, 100, "%")).
				Value(&v.ProfitMarginPct).
				Validate(ValidateRange(b.ProfitMargin, 100)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Currency label").
				Value(&v.Currency).
				CharLimit(8).
				Validate(validateCurrency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
		),
	).WithShowHelp(true)
}

func rangeHint(r kpi.Range, scale float64, unit string) string {
	return fmt.Sprintf("%s%s to %s%s",
		formatSetupFloat(r.Min*scale), unit, formatSetupFloat(r.Max*scale), unit)
}

// ValidateRange returns a huh validator accepting numbers within r, where
// the typed value is r's unit multiplied by scale.
func ValidateRange(r kpi.Range, scale float64) func(string) error {
	return func(s string) error {
		v, err := parseSetupFloat(s)
		if err != nil {
			return err
		}
		v /= scale
		if v < r.Min || v > r.Max {
			return fmt.Errorf("must be between %s and %s",
				formatSetupFloat(r.Min*scale), formatSetupFloat(r.Max*scale))
		}
		return nil
	}
}

func validateCurrency(s string) error {
	if strings.ContainsAny(s, "\n\t") {
		return errors.New("must be a single line")
	}
	return nil
}

func parseSetupFloat(s string) (float64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	clean = strings.TrimSpace(strings.TrimSuffix(clean, "%"))
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

// Apply writes the form values into cfg. Values are clamped to the input
// ranges.
func (v SetupValues) Apply(cfg *config.Config) error {
	visitors, err := parseSetupFloat(v.Visitors)
	if err != nil {
		return fmt.Errorf("visitors: %w", err)
	}
	hitrate, err := parseSetupFloat(v.HitratePct)
	if err != nil {
		return fmt.Errorf("hitrate: %w", err)
	}
	avg, err := parseSetupFloat(v.AvgPurchase)
	if err != nil {
		return fmt.Errorf("avg purchase: %w", err)
	}
	ppc, err := parseSetupFloat(v.ProductsPerCustomer)
	if err != nil {
		return fmt.Errorf("products per customer: %w", err)
	}
	margin, err := parseSetupFloat(v.ProfitMarginPct)
	if err != nil {
		return fmt.Errorf("profit margin: %w", err)
	}

	base := cfg.BaseKPIs()
	base.Visitors = int64(math.Round(kpi.DefaultBounds().Visitors.Clamp(visitors)))
	base.Hitrate = hitrate / 100
	base.AvgPurchase = avg
	base.ProductsPerCustomer = ppc
	base.ProfitMargin = margin / 100
	cfg.SetBase(kpi.DefaultBounds().ClampBase(base))

	cfg.Display.Currency = strings.TrimSpace(v.Currency)
	if v.Theme != "" {
		cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	}
	return nil
}
