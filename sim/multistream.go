// Multi-stream access: a pool of interchangeable spatial streams shared
// round-robin among stations, modeling MU-MIMO spatial multiplexing.

package sim

// MultiStreamPolicy scans stations round-robin and sends each ready packet
// on any free stream; streams have no per-station affinity. There is no
// backoff: a missing free stream just skips the candidate for this pass.
// Spatial streams split total spectrum, so the per-stream rate divides
// bandwidth by the pool size.
type MultiStreamPolicy struct {
	next int // round-robin pointer into Stations
}

func (p *MultiStreamPolicy) Name() string { return AccessMultiStream }

// BuildPool returns Streams interchangeable resources, each describing its
// share of the total bandwidth.
func (p *MultiStreamPolicy) BuildPool(cfg RunConfig) *ResourcePool {
	return NewUniformPool(cfg.Streams, cfg.Channel.BandwidthHz/float64(cfg.Streams))
}

// Step makes one round-robin sweep over the stations. Empty queues are
// skipped and the pointer advances past them, so no station is visited twice
// before every other ready station has had a turn.
func (p *MultiStreamPolicy) Step(s *Simulator) (int, error) {
	handled := 0
	for range s.Stations {
		st := s.Stations[p.next]
		p.next = (p.next + 1) % len(s.Stations)
		if st.Empty() {
			continue
		}
		idx, ok := s.Pool.FindFree()
		if !ok {
			continue
		}
		rate := s.Pool.Bandwidth(idx) * s.Config.Channel.ModulationBits *
			s.Config.Channel.CodingRate * st.PowerFactor(s.Config.Power)
		pkt := st.Pop()
		s.transmit(st, pkt, idx, rate)
		handled++
	}
	return handled, nil
}
