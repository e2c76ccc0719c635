package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Jeppcode/KPIVisualization/internal/model"
)

func exampleBase() model.BaseKPIs {
	return model.BaseKPIs{
		Visitors:            100_000,
		Hitrate:             0.10,
		AvgPurchase:         250,
		ProductsPerCustomer: 1.5,
		ProfitMargin:        0.20,
	}
}

func TestEvaluate(t *testing.T) {
	res := evaluate(exampleBase(), model.ScenarioDelta{HitrateDelta: model.PP(2)}, "SEK")

	assert.InDelta(t, 12_000, res.Adjusted.Purchases, 1e-6)
	assert.InDelta(t, 500_000, res.Diff.Revenue, 1e-6)
	assert.Len(t, res.Rows, 4)
	assert.Empty(t, res.Notes)
}

func TestEvaluateReportsClamping(t *testing.T) {
	res := evaluate(exampleBase(), model.ScenarioDelta{HitrateDelta: -0.15}, "SEK")
	assert.Equal(t, []string{"adjusted hitrate clamped to 0"}, res.Notes)
	assert.Zero(t, res.Adjusted.Profit)
}

func TestWriteEvalJSON(t *testing.T) {
	var buf bytes.Buffer
	res := evaluate(exampleBase(), model.ScenarioDelta{}, "SEK")
	require.NoError(t, writeEval(&buf, res, "json"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "SEK", got["currency"])
	rows, ok := got["rows"].([]any)
	require.True(t, ok)
	first := rows[0].(map[string]any)
	assert.Equal(t, "Total Purchases", first["kpi"])
	assert.Equal(t, "positive", first["indicator"])
}

func TestWriteEvalYAML(t *testing.T) {
	var buf bytes.Buffer
	res := evaluate(exampleBase(), model.ScenarioDelta{AvgPurchaseDelta: 50}, "SEK")
	require.NoError(t, writeEval(&buf, res, "yaml"))

	var got struct {
		Adjusted model.DerivedMetrics `yaml:"adjusted"`
		Rows     []struct {
			KPI       string `yaml:"kpi"`
			Indicator string `yaml:"indicator"`
		} `yaml:"rows"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.InDelta(t, 3_000_000, got.Adjusted.Revenue, 1e-6)
	require.Len(t, got.Rows, 4)
	assert.Equal(t, "Revenue", got.Rows[1].KPI)
	assert.Equal(t, "positive", got.Rows[1].Indicator)
}

func TestWriteEvalTable(t *testing.T) {
	var buf bytes.Buffer
	res := evaluate(exampleBase(), model.ScenarioDelta{HitrateDelta: model.PP(2)}, "SEK")
	require.NoError(t, writeEval(&buf, res, "table"))

	out := buf.String()
	for _, want := range []string{"Total Purchases", "3,000,000 SEK", "+20.0%", "Yearly profit changes by"} {
		assert.True(t, strings.Contains(out, want), "table output missing %q", want)
	}
}

func TestWriteEvalUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := writeEval(&buf, evaluate(exampleBase(), model.ScenarioDelta{}, ""), "xml")
	assert.Error(t, err)
}
