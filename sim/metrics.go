// Tracks run-wide performance metrics: latency accrual, drop counts, and the
// throughput inputs summarized into the final per-run Result.

package sim

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// ErrNoTransmissions marks a run that completed without a single successful
// transmission. The Result is still usable (all zeros); callers report the
// condition instead of aborting.
var ErrNoTransmissions = errors.New("no packets transmitted")

// Metrics aggregates statistics over one run. All counters are monotonic;
// MaxLatency tracks the running maximum.
type Metrics struct {
	Transmitted  int     // Successfully transmitted packets
	Dropped      int     // Packets lost to overflow, timeout, or ceiling
	TotalLatency float64 // Sum of per-packet latencies (seconds)
	MaxLatency   float64 // Largest single-packet latency seen

	latencies []float64 // Per-packet samples for the percentile summary
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordSuccess accounts one transmitted packet with the given latency.
func (m *Metrics) RecordSuccess(latency float64) {
	m.Transmitted++
	m.TotalLatency += latency
	if latency >= m.MaxLatency {
		m.MaxLatency = latency
	}
	m.latencies = append(m.latencies, latency)
}

// RecordDrop accounts one packet lost without transmission.
func (m *Metrics) RecordDrop() {
	m.Dropped++
}

// Result is the structured per-run record handed to the reporting layer.
type Result struct {
	Stations      int     // Population size of the run
	ThroughputBps float64 // Transmitted bits over final simulated time
	AvgLatency    float64 // Mean per-packet latency (seconds)
	P95Latency    float64 // 95th-percentile per-packet latency (seconds)
	MaxLatency    float64 // Largest per-packet latency (seconds)
	Transmitted   int
	Dropped       int
	SimTime       float64 // Final simulated clock (seconds)
	Aborted       bool    // Run ended by ceiling overflow during backoff
}

func (r Result) String() string {
	return fmt.Sprintf("Result: (Stations: %d, ThroughputBps: %.2f, AvgLatency: %.6f, MaxLatency: %.6f, Dropped: %d)",
		r.Stations, r.ThroughputBps, r.AvgLatency, r.MaxLatency, r.Dropped)
}

// Summarize folds the accumulated counters into a Result. finalClock is the
// run's final simulated time and packetBits the fixed frame size. A run with
// zero transmissions yields a zero-valued Result and ErrNoTransmissions; a
// zero finalClock guards throughput to 0 rather than dividing.
func (m *Metrics) Summarize(finalClock, packetBits float64) (Result, error) {
	res := Result{
		Transmitted: m.Transmitted,
		Dropped:     m.Dropped,
		SimTime:     finalClock,
	}
	if m.Transmitted == 0 {
		return res, ErrNoTransmissions
	}
	if finalClock > 0 {
		res.ThroughputBps = float64(m.Transmitted) * packetBits / finalClock
	}
	sorted := slices.Clone(m.latencies)
	slices.Sort(sorted)
	res.AvgLatency = stat.Mean(sorted, nil)
	res.P95Latency = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	res.MaxLatency = m.MaxLatency
	return res, nil
}
