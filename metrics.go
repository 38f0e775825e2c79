package shapeset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordResolve is called after each selector resolution.
	// mode is the winning selection mode ("model_ids", "categories", "idxs",
	// "default"), resolved is the number of indices produced,
	// duration is the total time taken, err is nil if successful.
	RecordResolve(mode string, resolved int, duration time.Duration, err error)

	// RecordSample is called after each random draw.
	// replaced is true when the draw fell back to sampling with replacement.
	RecordSample(count int, replaced bool, duration time.Duration)

	// RecordRender is called after each render dispatch.
	// meshes is the batch size handed to the renderer.
	RecordRender(meshes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordResolve(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSample(int, bool, time.Duration)           {}
func (NoopMetricsCollector) RecordRender(int, time.Duration, error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ResolveCount      atomic.Int64
	ResolveErrors     atomic.Int64
	ResolveTotalNanos atomic.Int64
	ResolvedIndices   atomic.Int64
	SampleCount       atomic.Int64
	SampleReplaced    atomic.Int64
	RenderCount       atomic.Int64
	RenderErrors      atomic.Int64
	RenderTotalNanos  atomic.Int64
}

// RecordResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResolve(mode string, resolved int, duration time.Duration, err error) {
	b.ResolveCount.Add(1)
	b.ResolveTotalNanos.Add(duration.Nanoseconds())
	b.ResolvedIndices.Add(int64(resolved))
	if err != nil {
		b.ResolveErrors.Add(1)
	}
}

// RecordSample implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSample(count int, replaced bool, duration time.Duration) {
	b.SampleCount.Add(1)
	if replaced {
		b.SampleReplaced.Add(1)
	}
}

// RecordRender implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRender(meshes int, duration time.Duration, err error) {
	b.RenderCount.Add(1)
	b.RenderTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RenderErrors.Add(1)
	}
}
