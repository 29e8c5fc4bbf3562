// CSMA-style contention access: one shared channel, carrier sensing, and
// uniformly sampled random backoff while the channel is sensed busy.

package sim

import (
	"github.com/sirupsen/logrus"
)

// ContentionPolicy models legacy single-channel access. The channel is
// sensed busy with probability (population-1)/population, abstracting
// collision pressure from the other stations; each busy sense adds a random
// backoff in [0, MaxBackoff) to the clock before the next sense. Backoff is
// the one place a run can spin, so the sense loop is bounded by the
// simulation ceiling.
type ContentionPolicy struct {
	src UniformSource
}

func NewContentionPolicy(src UniformSource) *ContentionPolicy {
	return &ContentionPolicy{src: src}
}

func (p *ContentionPolicy) Name() string { return AccessContention }

// BuildPool returns the single shared channel at full bandwidth.
func (p *ContentionPolicy) BuildPool(cfg RunConfig) *ResourcePool {
	return NewUniformPool(1, cfg.Channel.BandwidthHz)
}

// Step visits every station once. For each head-of-line packet the station
// contends until the channel is sensed free, then transmits on the shared
// channel at the full-bandwidth rate scaled by its power factor.
func (p *ContentionPolicy) Step(s *Simulator) (int, error) {
	handled := 0
	prFree := 1.0 / float64(len(s.Stations))
	for _, st := range s.Stations {
		if st.Empty() {
			continue
		}
		for p.src.RandU01() >= prFree {
			backoff := p.src.RandU01() * s.Config.MaxBackoff
			s.Clock += backoff
			logrus.Debugf("station %d: channel busy, backoff %.6fs to clock %.6fs", st.ID, backoff, s.Clock)
			if s.Clock > s.Config.Ceiling {
				return handled, ErrCeilingExceeded
			}
		}
		idx, ok := s.Pool.FindFree()
		if !ok {
			// Single channel, released after every send; cannot happen.
			continue
		}
		rate := s.Config.Channel.BandwidthHz * s.Config.Channel.ModulationBits *
			s.Config.Channel.CodingRate * st.PowerFactor(s.Config.Power)
		pkt := st.Pop()
		s.transmit(st, pkt, idx, rate)
		handled++
	}
	return handled, nil
}
