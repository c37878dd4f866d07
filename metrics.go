package integral

import (
	"errors"
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting Scanner metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    tokenCounter    prometheus.Counter
//	    absorbedCounter prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordToken(err error) {
//	    p.tokenCounter.Inc()
//	    // ... record error state, etc.
//	}
type MetricsCollector interface {
	// RecordToken is called for every scanned token; err is nil when the
	// token parsed cleanly.
	RecordToken(err error)

	// RecordAbsorbed is called when a parse failure is absorbed in
	// lenient mode and the scan continues with a zero or clamped value.
	RecordAbsorbed(err error)

	// RecordRejected is called when strict mode stops the scan on a
	// parse failure.
	RecordRejected(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordToken(error)    {}
func (NoopMetricsCollector) RecordAbsorbed(error) {}
func (NoopMetricsCollector) RecordRejected(error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TokenCount       atomic.Int64
	TokenErrors      atomic.Int64
	AbsorbedCount    atomic.Int64
	AbsorbedNoDigits atomic.Int64
	AbsorbedClamped  atomic.Int64
	RejectedCount    atomic.Int64
}

// RecordToken implements MetricsCollector.
func (b *BasicMetricsCollector) RecordToken(err error) {
	b.TokenCount.Add(1)
	if err != nil {
		b.TokenErrors.Add(1)
	}
}

// RecordAbsorbed implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAbsorbed(err error) {
	b.AbsorbedCount.Add(1)
	if errors.Is(err, ErrNoDigits) || errors.Is(err, ErrEmpty) {
		b.AbsorbedNoDigits.Add(1)
	}
	if errors.Is(err, ErrRange) {
		b.AbsorbedClamped.Add(1)
	}
}

// RecordRejected implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRejected(err error) {
	b.RejectedCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TokenCount:       b.TokenCount.Load(),
		TokenErrors:      b.TokenErrors.Load(),
		AbsorbedCount:    b.AbsorbedCount.Load(),
		AbsorbedNoDigits: b.AbsorbedNoDigits.Load(),
		AbsorbedClamped:  b.AbsorbedClamped.Load(),
		RejectedCount:    b.RejectedCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TokenCount       int64
	TokenErrors      int64
	AbsorbedCount    int64
	AbsorbedNoDigits int64
	AbsorbedClamped  int64
	RejectedCount    int64
}
