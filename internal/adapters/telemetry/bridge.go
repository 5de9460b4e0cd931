package telemetry

import (
	"context"
	"slices"
	"sync"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/wasmtc/internal/core/domain"
)

// Recorder implements sdktrace.SpanProcessor by keeping the timing of every finished span.
type Recorder struct {
	mu      sync.Mutex
	depths  map[string]int
	timings []domain.SpanTiming
}

var _ sdktrace.SpanProcessor = (*Recorder)(nil)

// NewRecorder returns a new Recorder.
func NewRecorder() *Recorder {
	return &Recorder{depths: make(map[string]int)}
}

// OnStart is called when a span starts.
func (r *Recorder) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	depth := 0
	if parent := s.Parent(); parent.IsValid() {
		if d, ok := r.depths[parent.SpanID().String()]; ok {
			depth = d + 1
		}
	}
	r.depths[sc.SpanID().String()] = depth
}

// OnEnd is called when a span ends.
func (r *Recorder) OnEnd(s sdktrace.ReadOnlySpan) {
	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t := domain.SpanTiming{
		Name:     s.Name(),
		Depth:    r.depths[sc.SpanID().String()],
		Start:    s.StartTime(),
		Duration: s.EndTime().Sub(s.StartTime()),
	}
	if s.Status().Code == codes.Error {
		t.Err = s.Status().Description
		if t.Err == "" {
			t.Err = "span failed"
		}
	}
	r.timings = append(r.timings, t)
}

// Timings returns the finished spans ordered by start time.
func (r *Recorder) Timings() []domain.SpanTiming {
	r.mu.Lock()
	out := slices.Clone(r.timings)
	r.mu.Unlock()

	slices.SortStableFunc(out, func(a, b domain.SpanTiming) int {
		return a.Start.Compare(b.Start)
	})
	return out
}

// ForceFlush does nothing.
func (r *Recorder) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (r *Recorder) Shutdown(context.Context) error {
	return nil
}
