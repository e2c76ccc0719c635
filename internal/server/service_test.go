package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Jeppcode/KPIVisualization/internal/kpi"
	"github.com/Jeppcode/KPIVisualization/internal/model"
)

const eps = 1e-6

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := New(Config{
		Base:     kpi.DefaultBounds().Defaults(),
		Currency: "SEK",
	}, zap.NewNop())
	ts := httptest.NewServer(svc.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", string(body))
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "abc-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
}

func TestDefaults(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/defaults")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got DefaultsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, int64(350_000), got.Base.Visitors)
	assert.Equal(t, "SEK", got.Currency)
	assert.Equal(t, kpi.DefaultBounds(), got.Bounds)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/metrics",
		`{"visitors":100000,"hitrate":0.10,"avg_purchase":250,"products_per_customer":1.5,"profit_margin":0.20}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got model.DerivedMetrics
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.InDelta(t, 10_000, got.Purchases, eps)
	assert.InDelta(t, 2_500_000, got.Revenue, eps)
	assert.InDelta(t, 15_000, got.ProductsSold, eps)
	assert.InDelta(t, 500_000, got.Profit, eps)
}

func TestCompareEndpoint(t *testing.T) {
	ts := newTestServer(t)

	req := CompareRequest{
		Base: model.BaseKPIs{
			Visitors: 100_000, Hitrate: 0.10, AvgPurchase: 250,
			ProductsPerCustomer: 1.5, ProfitMargin: 0.20,
		},
		Delta: model.ScenarioDelta{HitrateDelta: 0.02},
	}
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(req))

	resp := postJSON(t, ts.URL+"/v1/compare", buf.String())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got CompareResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.InDelta(t, 12_000, got.Adjusted.Purchases, eps)
	assert.InDelta(t, 3_000_000, got.Adjusted.Revenue, eps)
	assert.InDelta(t, 500_000, got.Diff.Revenue, eps)
	require.Len(t, got.Rows, 4)
	assert.Equal(t, "Total Purchases", got.Rows[0].Label)
	assert.Equal(t, kpi.Positive, got.Rows[1].Indicator)
	assert.InDelta(t, 20, got.Rows[3].ChangePct, eps)
	assert.Empty(t, got.Notes)
}

func TestCompareClampsAndReportsNotes(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/compare", `{
		"base": {"visitors":100000,"hitrate":0.10,"avg_purchase":250,"products_per_customer":1.5,"profit_margin":0.20},
		"delta": {"hitrate_delta":-0.15}
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got CompareResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Zero(t, got.Adjusted.Purchases)
	assert.Zero(t, got.Adjusted.Profit)
	assert.InDelta(t, -500_000, got.Diff.Profit, eps)
	assert.Equal(t, kpi.Negative, got.Rows[3].Indicator)
	assert.Contains(t, got.Notes, "adjusted hitrate clamped to 0")
}

func TestMalformedJSONIs400(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/v1/metrics", "/v1/compare"} {
		resp := postJSON(t, ts.URL+path, `{"visitors":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["error"], "decoding request body", path)
	}
}

func TestOverflowingTotalsAre422(t *testing.T) {
	ts := newTestServer(t)
	base := `{"visitors":100000,"hitrate":0.1,"avg_purchase":1e306,"products_per_customer":1.5,"profit_margin":0.2}`

	cases := map[string]string{
		"/v1/metrics": base,
		"/v1/compare": `{"base":` + base + `,"delta":{}}`,
	}
	for path, body := range cases {
		resp := postJSON(t, ts.URL+path, body)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, path)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"), path)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out), path)
		assert.Contains(t, out["error"], "result out of range", path)
	}
}

func TestWrongMethodRejected(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/compare")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestPrometheusExposition(t *testing.T) {
	ts := newTestServer(t)

	postJSON(t, ts.URL+"/v1/metrics", `{"visitors":1000,"hitrate":0.5}`)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)
	assert.Contains(t, text, `ripple_evaluations_total{endpoint="metrics"} 1`)
	assert.Contains(t, text, `ripple_http_requests_total{method="POST",route="/v1/metrics",status="200"} 1`)
}
