// Package metric collects per-algorithm execution counters. Counters
// are stored in atomic values so a Measure snapshot can be taken while
// a network is being driven from another goroutine.
package metric

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metric contains algorithm Meters keyed by instance identifier.
type Metric struct {
	m      sync.Mutex
	meters map[string]map[string]*atomic.Value
}

// Measure is a snapshot of full metric with all counters.
type Measure map[string]map[string]interface{}

// addCounters to the metric. Metric is used to generate measures for
// all counters.
//
// If id matches existing counters, those will be replaced with new
// ones.
func (m *Metric) addCounters(id string, counters ...string) map[string]*atomic.Value {
	m.m.Lock()
	defer m.m.Unlock()

	if m.meters == nil {
		m.meters = make(map[string]map[string]*atomic.Value)
	} else {
		delete(m.meters, id)
	}

	meter := make(map[string]*atomic.Value)
	for _, counter := range counters {
		meter[counter] = &atomic.Value{}
	}

	m.meters[id] = meter
	return meter
}

// Measure returns Metric's measures.
func (m *Metric) Measure() Measure {
	if m == nil {
		return nil
	}
	r := make(map[string]map[string]interface{})
	m.m.Lock()
	defer m.m.Unlock()

	for meterName, meter := range m.meters {
		meterValues := make(map[string]interface{})
		for counterName, counter := range meter {
			meterValues[counterName] = counter.Load()
		}
		r[meterName] = meterValues
	}

	return r
}

// Meter creates a new meter with algorithm counters.
func (m *Metric) Meter(id string) *Meter {
	if m == nil {
		return nil
	}
	meter := Meter{
		startedAt:   time.Now(),
		processedAt: time.Now(),
	}

	meter.counters = m.addCounters(id, algorithmCounters...)
	store(meter.counters, StartCounter, meter.startedAt)

	return &meter
}

// Meter contains all counters of one algorithm instance.
type Meter struct {
	counters    map[string]*atomic.Value
	startedAt   time.Time     // StartCounter
	processes   int64         // ProcessCounter
	latency     time.Duration // LatencyCounter
	processedAt time.Time
	elapsed     time.Duration // ElapsedCounter
}

// Process captures metrics after a process call.
func (m *Meter) Process() *Meter {
	if m == nil {
		return nil
	}
	m.processes++
	m.latency = time.Since(m.processedAt)
	m.processedAt = time.Now()
	m.elapsed = time.Since(m.startedAt)

	store(m.counters, ProcessCounter, m.processes)
	store(m.counters, LatencyCounter, m.latency)
	store(m.counters, ElapsedCounter, m.elapsed)

	return m
}

const (
	// ProcessCounter measures number of process calls.
	ProcessCounter = "Processes"
	// StartCounter fixes when the meter started.
	StartCounter = "Start"
	// LatencyCounter measures time between process calls.
	LatencyCounter = "Latency"
	// ElapsedCounter measures time since the meter started.
	ElapsedCounter = "Elapsed"
)

var algorithmCounters = []string{ProcessCounter, StartCounter, LatencyCounter, ElapsedCounter}

// Store new counter value.
func store(m map[string]*atomic.Value, c string, v interface{}) {
	if counter, ok := m[c]; ok {
		counter.Store(v)
	}
}
