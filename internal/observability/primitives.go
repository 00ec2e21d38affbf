package observability

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Metric primitives rendered in the Prometheus text exposition format.
// Series are written in label order so scrapes diff cleanly.

var defaultBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

type family struct {
	name string
	help string
	kind string
}

func (f family) writeHeader(w io.Writer) error {
	_, err := io.WriteString(w, "# HELP "+f.name+" "+f.help+"\n# TYPE "+f.name+" "+f.kind+"\n")
	return err
}

// series holds one float per label set. The empty key is the unlabelled series.
type series struct {
	labelNames []string
	mu         sync.RWMutex
	values     map[string]float64
}

func (s *series) update(labelValues []string, fn func(float64) float64) {
	key := labelString(s.labelNames, labelValues)
	s.mu.Lock()
	s.values[key] = fn(s.values[key])
	s.mu.Unlock()
}

func (s *series) get(labelValues []string) float64 {
	key := labelString(s.labelNames, labelValues)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

func (s *series) write(w io.Writer, name string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, key := range sortedKeys(s.values) {
		if _, err := io.WriteString(w, name+key+" "+formatFloat(s.values[key])+"\n"); err != nil {
			return err
		}
	}
	return nil
}

type CounterVec struct {
	family
	series
}

func NewCounterVec(name, help string, labels []string) *CounterVec {
	return &CounterVec{family: family{name, help, "counter"}, series: series{labelNames: labels, values: map[string]float64{}}}
}

func (c *CounterVec) Inc(labelValues ...string) { c.Add(1, labelValues...) }

// Add ignores negative deltas; counters only go up.
func (c *CounterVec) Add(v float64, labelValues ...string) {
	if c == nil || v < 0 {
		return
	}
	c.update(labelValues, func(cur float64) float64 { return cur + v })
}

func (c *CounterVec) WritePrometheus(w io.Writer) error {
	if c == nil {
		return nil
	}
	if err := c.writeHeader(w); err != nil {
		return err
	}
	return c.write(w, c.name)
}

type Counter struct{ vec *CounterVec }

func NewCounter(name, help string) *Counter {
	return &Counter{vec: NewCounterVec(name, help, nil)}
}

func (c *Counter) Inc() {
	if c != nil {
		c.vec.Inc()
	}
}

func (c *Counter) Value() float64 {
	if c == nil {
		return 0
	}
	return c.vec.get(nil)
}

func (c *Counter) WritePrometheus(w io.Writer) error {
	if c == nil {
		return nil
	}
	return c.vec.WritePrometheus(w)
}

type GaugeVec struct {
	family
	series
}

func NewGaugeVec(name, help string, labels []string) *GaugeVec {
	return &GaugeVec{family: family{name, help, "gauge"}, series: series{labelNames: labels, values: map[string]float64{}}}
}

func (g *GaugeVec) Set(v float64, labelValues ...string) {
	if g == nil {
		return
	}
	g.update(labelValues, func(float64) float64 { return v })
}

func (g *GaugeVec) Add(v float64, labelValues ...string) {
	if g == nil {
		return
	}
	g.update(labelValues, func(cur float64) float64 { return cur + v })
}

func (g *GaugeVec) WritePrometheus(w io.Writer) error {
	if g == nil {
		return nil
	}
	if err := g.writeHeader(w); err != nil {
		return err
	}
	return g.write(w, g.name)
}

type Gauge struct{ vec *GaugeVec }

func NewGauge(name, help string) *Gauge {
	return &Gauge{vec: NewGaugeVec(name, help, nil)}
}

func (g *Gauge) Set(v float64) {
	if g != nil {
		g.vec.Set(v)
	}
}

func (g *Gauge) Inc() {
	if g != nil {
		g.vec.Add(1)
	}
}

func (g *Gauge) Dec() {
	if g != nil {
		g.vec.Add(-1)
	}
}

func (g *Gauge) Value() float64 {
	if g == nil {
		return 0
	}
	return g.vec.get(nil)
}

func (g *Gauge) WritePrometheus(w io.Writer) error {
	if g == nil {
		return nil
	}
	return g.vec.WritePrometheus(w)
}

type HistogramVec struct {
	family
	labelNames []string
	bounds     []float64
	mu         sync.RWMutex
	values     map[string]*histogram
}

// histogram keeps per-bucket (non-cumulative) counts; the last slot is +Inf.
type histogram struct {
	counts []uint64
	sum    float64
	total  uint64
}

func NewHistogramVec(name, help string, labels []string, buckets []float64) *HistogramVec {
	if len(buckets) == 0 {
		buckets = defaultBuckets
	}
	bounds := append([]float64(nil), buckets...)
	sort.Float64s(bounds)
	return &HistogramVec{
		family:     family{name, help, "histogram"},
		labelNames: labels,
		bounds:     bounds,
		values:     map[string]*histogram{},
	}
}

func (h *HistogramVec) Observe(v float64, labelValues ...string) {
	if h == nil {
		return
	}
	key := labelString(h.labelNames, labelValues)
	idx := sort.SearchFloat64s(h.bounds, v)
	h.mu.Lock()
	defer h.mu.Unlock()
	hist, ok := h.values[key]
	if !ok {
		hist = &histogram{counts: make([]uint64, len(h.bounds)+1)}
		h.values[key] = hist
	}
	hist.counts[idx]++
	hist.sum += v
	hist.total++
}

func (h *HistogramVec) WritePrometheus(w io.Writer) error {
	if h == nil {
		return nil
	}
	if err := h.writeHeader(w); err != nil {
		return err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	var b strings.Builder
	for _, key := range sortedKeys(h.values) {
		hist := h.values[key]
		var cum uint64
		for i, bound := range h.bounds {
			cum += hist.counts[i]
			writeSample(&b, h.name+"_bucket", withLe(key, formatFloat(bound)), strconv.FormatUint(cum, 10))
		}
		writeSample(&b, h.name+"_bucket", withLe(key, "+Inf"), strconv.FormatUint(hist.total, 10))
		writeSample(&b, h.name+"_sum", key, formatFloat(hist.sum))
		writeSample(&b, h.name+"_count", key, strconv.FormatUint(hist.total, 10))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSample(b *strings.Builder, name, labels, value string) {
	b.WriteString(name)
	b.WriteString(labels)
	b.WriteByte(' ')
	b.WriteString(value)
	b.WriteByte('\n')
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// labelString renders {a="x",b="y"}; missing values render as "unknown".
func labelString(names, values []string) string {
	if len(names) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		val := "unknown"
		if i < len(values) {
			val = values[i]
		}
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(labelEscaper.Replace(val))
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func withLe(labels, le string) string {
	if labels == "" {
		return `{le="` + le + `"}`
	}
	return strings.TrimSuffix(labels, "}") + `,le="` + le + `"}`
}

func isServerErrorStatus(status string) bool {
	status = strings.TrimSpace(status)
	return len(status) == 3 && status[0] == '5'
}
