package sim

import (
	"github.com/iti/rngstream"
)

// === Randomness ===
//
// All randomized decisions (contention backoff, station placement) draw from
// named rngstream streams derived from one master seed. Two simulations with
// the same seed and identical configuration MUST produce identical results.

// UniformSource yields U(0,1) variates. The production implementation is an
// *rngstream.RngStream; tests substitute a scripted sequence so scheduling
// decisions are fully deterministic.
type UniformSource interface {
	RandU01() float64
}

// Stream names used by the simulator. Each concern gets its own stream so
// adding draws to one does not perturb the others.
const (
	// StreamTopology places stations around the access point.
	StreamTopology = "topology"

	// StreamContention drives carrier sensing and backoff sampling.
	StreamContention = "contention"
)

// SeedStreams resets the package-wide rngstream master seed. Streams created
// afterwards replay the same variate sequences for the same seed.
func SeedStreams(seed int64) {
	rngstream.SetRngStreamMasterSeed(uint64(seed))
}

// NewStream creates a named U(0,1) stream. Call SeedStreams first for a
// reproducible run.
func NewStream(name string) UniformSource {
	return rngstream.New(name)
}
