package observability

import (
	"bytes"
	"strings"
	"testing"
)

func TestCounterVecWritesSortedSeries(t *testing.T) {
	c := NewCounterVec("brewery_test_total", "Test counter.", []string{"status"})
	c.Inc("SHIPPED")
	c.Inc("NEW")
	c.Add(2, "NEW")
	c.Add(-5, "NEW")

	var buf bytes.Buffer
	if err := c.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	want := "# HELP brewery_test_total Test counter.\n" +
		"# TYPE brewery_test_total counter\n" +
		"brewery_test_total{status=\"NEW\"} 3\n" +
		"brewery_test_total{status=\"SHIPPED\"} 1\n"
	if buf.String() != want {
		t.Fatalf("unexpected exposition:\n got=%q\nwant=%q", buf.String(), want)
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := NewHistogramVec("brewery_test_seconds", "Test histogram.", []string{"op"}, []float64{1, 0.1})
	h.Observe(0.0625, "orders.create")
	h.Observe(0.5, "orders.create")
	h.Observe(3, "orders.create")

	var buf bytes.Buffer
	if err := h.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`brewery_test_seconds_bucket{op="orders.create",le="0.1"} 1`,
		`brewery_test_seconds_bucket{op="orders.create",le="1"} 2`,
		`brewery_test_seconds_bucket{op="orders.create",le="+Inf"} 3`,
		`brewery_test_seconds_sum{op="orders.create"} 3.5625`,
		`brewery_test_seconds_count{op="orders.create"} 3`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestGaugeIncDec(t *testing.T) {
	g := NewGauge("brewery_test_inflight", "Test gauge.")
	g.Inc()
	g.Inc()
	g.Dec()
	if g.Value() != 1 {
		t.Fatalf("unexpected gauge value %v", g.Value())
	}
	var nilGauge *Gauge
	nilGauge.Inc()
	if nilGauge.Value() != 0 {
		t.Fatalf("nil gauge should read zero")
	}
}

func TestLabelEscaping(t *testing.T) {
	got := labelString([]string{"route", "status"}, []string{`/a"b\c`})
	want := `{route="/a\"b\\c",status="unknown"}`
	if got != want {
		t.Fatalf("labelString: got=%s want=%s", got, want)
	}
	if !isServerErrorStatus("503") || isServerErrorStatus("404") || isServerErrorStatus("5") {
		t.Fatalf("isServerErrorStatus misclassified")
	}
}
