package prefilter

import "sync/atomic"

// Tracker wraps a Prefilter with effectiveness tracking.
//
// The tracker counts how many names the prefilter was asked about and how
// many it rejected. A prefilter that almost never rejects only adds work in
// front of the DFA, so once the rejection ratio drops below a threshold the
// tracker retires it and lets every name through.
//
// Retiring a prefilter never changes match results, because a prefilter only
// rejects names the DFA would reject too. Counters are atomic, so one Tracker
// can be shared by concurrent matchers.
//
// Algorithm:
//  1. Track checks (calls to Reject) and rejects
//  2. After the warmup, every CheckInterval checks compute rejects/checks
//  3. If the ratio is below MinEfficiency, disable the prefilter
//  4. Once disabled, it stays disabled until Reset
//
// Complete prefilters are exempt: they replace the DFA rather than guard it.
type Tracker struct {
	inner Prefilter

	// Statistics
	checks  atomic.Uint64
	rejects atomic.Uint64

	// Configuration
	checkInterval uint64
	minEfficiency float64
	warmupPeriod  uint64

	// State
	active atomic.Bool
}

// TrackerConfig holds configuration for the effectiveness tracker.
type TrackerConfig struct {
	// CheckInterval is how often to check effectiveness (in checks).
	// Default: 64
	CheckInterval uint64

	// MinEfficiency is the minimum acceptable ratio of rejects/checks.
	// If efficiency drops below this, prefilter is disabled.
	// Default: 0.05 (5%)
	MinEfficiency float64

	// WarmupPeriod is the minimum number of checks before checking effectiveness.
	// Default: 256
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinEfficiency: 0.05,
		WarmupPeriod:  256,
	}
}

// NewTracker creates a new tracker for the given prefilter with default config.
//
// Returns nil if the inner prefilter is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig creates a new tracker with custom configuration.
//
// Returns nil if the inner prefilter is nil.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	interval := config.CheckInterval
	if interval == 0 {
		interval = 1
	}
	t := &Tracker{
		inner:         inner,
		checkInterval: interval,
		minEfficiency: config.MinEfficiency,
		warmupPeriod:  config.WarmupPeriod,
	}
	t.active.Store(true)
	return t
}

// Reject asks the inner prefilter, or returns false once it is retired.
func (t *Tracker) Reject(haystack []byte) bool {
	if !t.active.Load() {
		return false
	}

	rejected := t.inner.Reject(haystack)
	if rejected {
		t.rejects.Add(1)
	}
	if n := t.checks.Add(1); n >= t.warmupPeriod && n%t.checkInterval == 0 {
		t.checkEffectiveness(n)
	}
	return rejected
}

// IsActive returns true if the prefilter is still being used.
func (t *Tracker) IsActive() bool {
	return t.active.Load()
}

// IsComplete delegates to the inner prefilter's IsComplete.
// A complete prefilter is never retired, so callers can skip the DFA for every
// name it passes.
func (t *Tracker) IsComplete() bool {
	return t.inner.IsComplete()
}

// HeapBytes returns the memory used by the inner prefilter.
func (t *Tracker) HeapBytes() int {
	return t.inner.HeapBytes()
}

// Stats returns the current tracking statistics.
//
// Returns (checks, rejects, efficiency, active).
func (t *Tracker) Stats() (checks, rejects uint64, efficiency float64, active bool) {
	checks = t.checks.Load()
	rejects = t.rejects.Load()
	if checks > 0 {
		efficiency = float64(rejects) / float64(checks)
	}
	active = t.active.Load()
	return
}

// Reset clears statistics and re-enables the prefilter.
func (t *Tracker) Reset() {
	t.checks.Store(0)
	t.rejects.Store(0)
	t.active.Store(true)
}

// Inner returns the underlying prefilter.
func (t *Tracker) Inner() Prefilter {
	return t.inner
}

// checkEffectiveness disables the prefilter if it rejects too rarely.
// Complete prefilters decide matches on their own and stay active.
func (t *Tracker) checkEffectiveness(checks uint64) {
	if t.inner.IsComplete() {
		return
	}
	efficiency := float64(t.rejects.Load()) / float64(checks)
	if efficiency < t.minEfficiency {
		t.active.Store(false)
	}
}
