// Sub-channel access: each resource is an OFDMA-style sub-channel with its
// own width, allocated to stations in strict round-robin order.

package sim

// SubChannelPolicy walks the sub-channels in index order each pass and
// serves the next ready station on each. The round-robin pointer advances
// past empty queues and only moves on a successful match of (free
// sub-channel, ready station). Head packets that waited longer than the
// timeout limit are dropped before any transmission attempt. Sub-channels
// are independent spectrum, so the rate uses each sub-channel's own width
// with no power scaling.
type SubChannelPolicy struct {
	next int // round-robin pointer into Stations
}

func (p *SubChannelPolicy) Name() string { return AccessSubChannel }

// BuildPool returns one resource per configured sub-channel width.
func (p *SubChannelPolicy) BuildPool(cfg RunConfig) *ResourcePool {
	bws := make([]float64, len(cfg.SubChannelsMHz))
	for i, mhz := range cfg.SubChannelsMHz {
		bws[i] = mhz * 1e6
	}
	return NewResourcePool(bws)
}

// Step makes one allocation pass over the sub-channels.
func (p *SubChannelPolicy) Step(s *Simulator) (int, error) {
	handled := 0
	for idx := 0; idx < s.Pool.Size(); idx++ {
		if s.Pool.Busy(idx) {
			continue
		}
		st := p.nextReady(s)
		if st == nil {
			return handled, nil
		}
		pkt := st.Peek()
		if s.Clock < pkt.ArrivalTime {
			// Wait for the head packet to arrive.
			s.Clock = pkt.ArrivalTime
		}
		if s.Clock-pkt.ArrivalTime > s.Config.Traffic.TimeoutLimit {
			st.Pop()
			st.Dropped++
			s.Metrics.RecordDrop()
			p.next = (p.next + 1) % len(s.Stations)
			handled++
			continue
		}
		rate := s.Pool.Bandwidth(idx) * s.Config.Channel.ModulationBits * s.Config.Channel.CodingRate
		st.Pop()
		s.transmit(st, pkt, idx, rate)
		p.next = (p.next + 1) % len(s.Stations)
		handled++
	}
	return handled, nil
}

// nextReady advances the round-robin pointer past empty queues and returns
// the first station with a queued packet, or nil when every queue is empty.
func (p *SubChannelPolicy) nextReady(s *Simulator) *Station {
	for range s.Stations {
		st := s.Stations[p.next]
		if st.Empty() {
			p.next = (p.next + 1) % len(s.Stations)
			continue
		}
		return st
	}
	return nil
}
