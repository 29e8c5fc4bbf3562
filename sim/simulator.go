// sim/simulator.go
package sim

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulated time, the station
// population, the resource pool, and the scheduling loop for one run.
//
// The model is single-threaded and event-stepped: "parallel" transmission in
// the multistream and subchannel policies is logical concurrency realized by
// sequential bookkeeping of the shared clock, never by goroutines. The clock
// only advances.
type Simulator struct {
	Config   RunConfig
	Clock    float64 // Simulated seconds, monotonically non-decreasing
	Stations []*Station
	Pool     *ResourcePool
	Metrics  *Metrics
	Policy   AccessPolicy
	Aborted  bool // Set when the run ended via ErrCeilingExceeded
}

// NewSimulator builds one run from cfg: it seeds the RNG streams, places
// stations uniformly within the cell, and instantiates the access policy and
// its resource pool. Runs share no state; each gets a fresh Simulator.
func NewSimulator(cfg RunConfig) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	SeedStreams(cfg.Seed)
	topo := NewStream(StreamTopology)
	stations := make([]*Station, cfg.Stations)
	for i := range stations {
		stations[i] = NewStation(i, topo.RandU01()*cfg.Power.MaxDistance)
	}
	policy, err := NewPolicy(cfg.Access)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		Config:   cfg,
		Stations: stations,
		Pool:     policy.BuildPool(cfg),
		Metrics:  NewMetrics(),
		Policy:   policy,
	}, nil
}

// Run seeds traffic at clock 0, then repeats scheduling passes until every
// queue drains, the clock passes the ceiling, or the policy aborts with
// ErrCeilingExceeded. Partial metrics are summarized on every exit path, so
// an aborted run still reports.
func (s *Simulator) Run() (Result, error) {
	logrus.Infof("starting %s run: %d stations, %d packets each, ceiling %.3fs",
		s.Policy.Name(), len(s.Stations), s.Config.Traffic.PacketsPerStation, s.Config.Ceiling)

	for _, st := range s.Stations {
		overflow := st.GeneratePackets(s.Config.Traffic.PacketsPerStation, s.Clock,
			s.Config.Traffic.ArrivalSpacing, s.Config.Traffic.QueueCapacity)
		for i := 0; i < overflow; i++ {
			s.Metrics.RecordDrop()
		}
	}

	for !s.allEmpty() {
		if s.Clock > s.Config.Ceiling {
			logrus.Infof("clock %.6fs passed ceiling %.3fs, ending run", s.Clock, s.Config.Ceiling)
			break
		}
		handled, err := s.Policy.Step(s)
		if errors.Is(err, ErrCeilingExceeded) {
			logrus.Warnf("run aborted: %v (clock %.6fs)", err, s.Clock)
			s.Aborted = true
			break
		}
		if handled == 0 {
			// A pass that touched nothing cannot make progress; queues are
			// effectively drained for this policy.
			break
		}
	}

	res, err := s.Metrics.Summarize(s.Clock, s.Config.Channel.PacketBits())
	res.Stations = len(s.Stations)
	res.Aborted = s.Aborted
	if err != nil {
		return res, err
	}
	logrus.Infof("run complete: %d transmitted, %d dropped, clock %.6fs",
		res.Transmitted, res.Dropped, s.Clock)
	return res, nil
}

// transmit executes one packet's transmission on resource idx at rateBps:
// reserve, stamp the transmission window, advance the clock, release, and
// record the outcome. The resource is released on every path. A transmission
// that would end past the ceiling is dropped instead, and the clock does not
// move. Callers remove the packet from its queue in both cases.
func (s *Simulator) transmit(st *Station, pkt *Packet, idx int, rateBps float64) bool {
	s.Pool.Reserve(idx)
	defer s.Pool.Release(idx)

	if s.Clock < pkt.ArrivalTime {
		s.Clock = pkt.ArrivalTime
	}
	pkt.TxStart = s.Clock
	pkt.TxEnd = s.Clock + s.Config.Channel.PacketBits()/rateBps
	if pkt.TxEnd > s.Config.Ceiling {
		logrus.Debugf("station %d packet %d: end %.6fs past ceiling, dropped", st.ID, pkt.ID, pkt.TxEnd)
		st.Dropped++
		s.Metrics.RecordDrop()
		return false
	}
	s.Clock = pkt.TxEnd
	s.Metrics.RecordSuccess(pkt.Latency())
	logrus.Debugf("station %d packet %d: sent on resource %d, %.6fs -> %.6fs",
		st.ID, pkt.ID, idx, pkt.TxStart, pkt.TxEnd)
	return true
}

// allEmpty reports whether every station's queue has drained.
func (s *Simulator) allEmpty() bool {
	for _, st := range s.Stations {
		if !st.Empty() {
			return false
		}
	}
	return true
}
