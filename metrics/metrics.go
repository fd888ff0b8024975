// Package metrics records per-run counters and stage timings on a private
// prometheus registry and writes them as a node-exporter textfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "phonalign"

// Recorder owns one registry. The zero value is not usable; a nil
// *Recorder accepts every call and records nothing.
type Recorder struct {
	reg        *prometheus.Registry
	alignments *prometheus.CounterVec
	merges     *prometheus.CounterVec
	stages     *prometheus.HistogramVec
}

// New returns a Recorder on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		// Labels: mode (global, local, overlap, library)
		alignments: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alignments_total",
			Help:      "Pairwise or multiple alignments computed",
		}, []string{"mode"}),
		// Labels: component (upgma, nj, linkcomm, msa)
		merges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merges_total",
			Help:      "Cluster or profile merges performed",
		}, []string{"component"}),
		// Labels: stage (CLI subcommand step)
		stages: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_seconds",
			Help:      "Wall time per processing stage",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"stage"}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.reg
}

// Alignments adds n to the alignment counter for mode.
func (r *Recorder) Alignments(mode string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.alignments.WithLabelValues(mode).Add(float64(n))
}

// Merges adds n to the merge counter for component.
func (r *Recorder) Merges(component string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.merges.WithLabelValues(component).Add(float64(n))
}

// Stage starts a timer for stage; call the returned func when it ends.
func (r *Recorder) Stage(stage string) func() {
	if r == nil {
		return func() {}
	}
	timer := prometheus.NewTimer(r.stages.WithLabelValues(stage))

	return func() { timer.ObserveDuration() }
}

// Observe records a stage duration directly.
func (r *Recorder) Observe(stage string, d time.Duration) {
	if r == nil {
		return
	}
	r.stages.WithLabelValues(stage).Observe(d.Seconds())
}

// WriteTextfile writes every metric to path in text exposition format.
// The file is written atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
