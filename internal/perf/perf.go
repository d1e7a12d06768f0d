package perf

import (
	"log/slog"
	"math"
	"sync/atomic"
	"time"
)

// Timer logs the duration of one operation when stopped
type Timer struct {
	name      string
	logger    *slog.Logger
	start     time.Time
	threshold time.Duration
}

// NewTimer starts a timer; a nil logger makes Stop a no-op
func NewTimer(name string, logger *slog.Logger, threshold time.Duration) *Timer {
	return &Timer{
		name:      name,
		logger:    logger,
		start:     time.Now(),
		threshold: threshold,
	}
}

// Stop logs the elapsed time at debug level, and at warn level when slow
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	if t.logger != nil {
		t.logger.Debug(t.name, "duration_ms", elapsed.Milliseconds())
		if elapsed > t.threshold {
			t.logger.Warn(t.name+"_slow", "duration_ms", elapsed.Milliseconds(), "threshold_ms", t.threshold.Milliseconds())
		}
	}
	return elapsed
}

// Stats summarises the samples seen by a Recorder
type Stats struct {
	Name          string
	Count         int64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
	SlowOps       int64
}

// AvgDuration returns the mean sample, or 0 with no samples
func (s Stats) AvgDuration() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.Count)
}

// Recorder accumulates durations of a repeated operation. Safe for concurrent use.
type Recorder struct {
	name      string
	logger    *slog.Logger
	threshold time.Duration
	count     atomic.Int64
	total     atomic.Int64
	min       atomic.Int64
	max       atomic.Int64
	slow      atomic.Int64
}

func NewRecorder(name string, logger *slog.Logger, threshold time.Duration) *Recorder {
	r := &Recorder{
		name:      name,
		logger:    logger,
		threshold: threshold,
	}
	r.min.Store(math.MaxInt64)
	return r
}

// Record adds one sample
func (r *Recorder) Record(elapsed time.Duration) {
	ns := elapsed.Nanoseconds()
	r.count.Add(1)
	r.total.Add(ns)

	for {
		cur := r.min.Load()
		if ns >= cur || r.min.CompareAndSwap(cur, ns) {
			break
		}
	}
	for {
		cur := r.max.Load()
		if ns <= cur || r.max.CompareAndSwap(cur, ns) {
			break
		}
	}

	if elapsed >= r.threshold {
		r.slow.Add(1)
		if r.logger != nil {
			r.logger.Warn(r.name+"_slow", "duration_ms", elapsed.Milliseconds(), "threshold_ms", r.threshold.Milliseconds())
		}
	}
}

func (r *Recorder) Stats() Stats {
	minDur := r.min.Load()
	if minDur == math.MaxInt64 {
		minDur = 0
	}
	return Stats{
		Name:          r.name,
		Count:         r.count.Load(),
		TotalDuration: time.Duration(r.total.Load()),
		MinDuration:   time.Duration(minDur),
		MaxDuration:   time.Duration(r.max.Load()),
		SlowOps:       r.slow.Load(),
	}
}
