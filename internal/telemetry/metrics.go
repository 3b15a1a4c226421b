// Package telemetry reports per-frame pipeline results.
//
// Metrics exports Prometheus counters and histograms; LogReporter writes the
// same values to the standard logger. Both implement pipeline.Reporter.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ironsheep/frame-vision-mcp/internal/pipeline"
)

const namespace = "vision"

// Metrics implements pipeline.Reporter with Prometheus collectors.
type Metrics struct {
	framesProcessed *prometheus.CounterVec
	framesNoTarget  *prometheus.CounterVec
	maxContourArea  prometheus.Gauge
	processing      *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		framesProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_processed_total",
			Help:      "Frames run through the pipeline, by output channel.",
		}, []string{"channel"}),
		framesNoTarget: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_without_target_total",
			Help:      "Frames in which no target region was found, by output channel.",
		}, []string{"channel"}),
		maxContourArea: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "max_contour_area",
			Help:      "Area in square pixels of the target in the most recent frame.",
		}),
		processing: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_processing_seconds",
			Help:      "Time spent processing one frame.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}, []string{"channel"}),
	}

	for _, c := range []prometheus.Collector{m.framesProcessed, m.framesNoTarget, m.maxContourArea, m.processing} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ReportFrame implements pipeline.Reporter.
func (m *Metrics) ReportFrame(r pipeline.FrameReport) {
	channel := r.OutputChannel.String()
	m.framesProcessed.WithLabelValues(channel).Inc()
	if !r.TargetFound {
		m.framesNoTarget.WithLabelValues(channel).Inc()
	}
	m.maxContourArea.Set(r.MaxContourArea)
	m.processing.WithLabelValues(channel).Observe(r.Duration.Seconds())
}
