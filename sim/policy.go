package sim

import (
	"errors"
	"fmt"
)

// Access policy names accepted by NewPolicy and RunConfig.Access.
const (
	AccessContention  = "contention"  // Single shared channel, random backoff
	AccessMultiStream = "multistream" // Interchangeable spatial streams, round-robin
	AccessSubChannel  = "subchannel"  // Per-width sub-channels, round-robin with timeout
)

// ErrCeilingExceeded signals that the simulated clock passed the run ceiling
// while accumulating backoff. It ends the current run; partial metrics are
// still summarized, and subsequent runs are unaffected.
var ErrCeilingExceeded = errors.New("simulated clock exceeded ceiling during backoff")

// AccessPolicy is the channel-access discipline driving one run. Each Step
// performs one scheduling pass over the stations: select a (station,
// resource) pair, acquire the resource, transmit, release, and record the
// outcome, repeating for each candidate the pass visits.
//
// A resource being unavailable is a scheduling condition, not an error; a
// pass resolves it by backoff (contention) or by moving to the next
// candidate (round-robin policies). The only error a Step returns is
// ErrCeilingExceeded.
type AccessPolicy interface {
	Name() string

	// BuildPool creates the run's resource pool: one contention channel,
	// Streams interchangeable streams, or one resource per sub-channel width.
	BuildPool(cfg RunConfig) *ResourcePool

	// Step runs one scheduling pass and returns the number of packets it
	// handled (transmitted or dropped).
	Step(s *Simulator) (int, error)
}

// NewPolicy creates an AccessPolicy by name.
// Valid names: "contention", "multistream", "subchannel".
func NewPolicy(name string) (AccessPolicy, error) {
	switch name {
	case AccessContention:
		return NewContentionPolicy(NewStream(StreamContention)), nil
	case AccessMultiStream:
		return &MultiStreamPolicy{}, nil
	case AccessSubChannel:
		return &SubChannelPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown access policy: %q (valid: %s, %s, %s)",
			name, AccessContention, AccessMultiStream, AccessSubChannel)
	}
}
