package csp

// monitor.go: lock-free instrumentation for the propagation engine

import (
	"fmt"
	"sync/atomic"
)

// Stats holds counters describing propagation activity.
type Stats struct {
	Constraints  int64 // constraints posted
	Propagations int64 // propagator invocations
	Narrowings   int64 // strict domain changes
	Entailments  int64 // propagators retired as entailed
	Failures     int64 // postings that failed
	PeakStack    int64 // deepest pending work stack observed
}

// Monitor counts propagation activity using atomic operations so it can
// be read while a model is being driven. All methods are safe to call
// on a nil monitor, which makes instrumentation strictly optional.
type Monitor struct {
	stats Stats
}

// NewMonitor creates an empty monitor. Attach it with WithMonitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// Snapshot returns a copy of the counters. Each counter is read
// atomically on its own; the copy as a whole is not taken atomically.
// Returns nil if the monitor is nil.
func (m *Monitor) Snapshot() *Stats {
	if m == nil {
		return nil
	}
	return &Stats{
		Constraints:  atomic.LoadInt64(&m.stats.Constraints),
		Propagations: atomic.LoadInt64(&m.stats.Propagations),
		Narrowings:   atomic.LoadInt64(&m.stats.Narrowings),
		Entailments:  atomic.LoadInt64(&m.stats.Entailments),
		Failures:     atomic.LoadInt64(&m.stats.Failures),
		PeakStack:    atomic.LoadInt64(&m.stats.PeakStack),
	}
}

// RecordConstraint counts a posted constraint.
func (m *Monitor) RecordConstraint() {
	if m == nil {
		return
	}
	atomic.AddInt64(&m.stats.Constraints, 1)
}

// RecordPropagation counts one propagator invocation.
func (m *Monitor) RecordPropagation() {
	if m == nil {
		return
	}
	atomic.AddInt64(&m.stats.Propagations, 1)
}

// RecordNarrowing counts one strict domain change.
func (m *Monitor) RecordNarrowing() {
	if m == nil {
		return
	}
	atomic.AddInt64(&m.stats.Narrowings, 1)
}

// RecordEntailment counts a propagator retiring itself.
func (m *Monitor) RecordEntailment() {
	if m == nil {
		return
	}
	atomic.AddInt64(&m.stats.Entailments, 1)
}

// RecordFailure counts a failed posting.
func (m *Monitor) RecordFailure() {
	if m == nil {
		return
	}
	atomic.AddInt64(&m.stats.Failures, 1)
}

// RecordStackDepth tracks the deepest pending work stack seen.
func (m *Monitor) RecordStackDepth(depth int) {
	if m == nil {
		return
	}
	d := int64(depth)
	for {
		old := atomic.LoadInt64(&m.stats.PeakStack)
		if d <= old {
			return
		}
		if atomic.CompareAndSwapInt64(&m.stats.PeakStack, old, d) {
			return
		}
	}
}

// String returns a formatted summary of the counters.
func (s *Stats) String() string {
	return fmt.Sprintf(
		"Propagation Statistics:\n"+
			"  Constraints:   %d\n"+
			"  Propagations:  %d\n"+
			"  Narrowings:    %d\n"+
			"  Entailments:   %d\n"+
			"  Failures:      %d\n"+
			"  Peak Stack:    %d\n",
		s.Constraints,
		s.Propagations,
		s.Narrowings,
		s.Entailments,
		s.Failures,
		s.PeakStack,
	)
}
