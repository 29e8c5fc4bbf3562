// Implements the Station, a traffic source owning a bounded FIFO queue of
// packets waiting for channel access.

package sim

import (
	"github.com/sirupsen/logrus"
)

// Station models one user contending for the medium. Packets are served
// strictly in arrival order. The queue is bounded: generation against a full
// queue drops the packet and counts it instead of blocking.
type Station struct {
	ID       int
	Distance float64 // Distance from the access point, meters
	Dropped  int     // Packets lost to queue overflow, timeout, or ceiling

	queue []*Packet
}

func NewStation(id int, distance float64) *Station {
	return &Station{ID: id, Distance: distance}
}

// GeneratePackets enqueues count packets with synthetic arrival timestamps
// spaced by spacing seconds, starting at baseTime. Packets that would push
// the queue past capacity are dropped. Returns the number dropped so the
// caller can fold overflow into the aggregate drop count.
func (st *Station) GeneratePackets(count int, baseTime, spacing float64, capacity int) int {
	overflow := 0
	for i := 0; i < count; i++ {
		if len(st.queue) >= capacity {
			st.Dropped++
			overflow++
			continue
		}
		st.queue = append(st.queue, &Packet{
			ID:          i,
			ArrivalTime: baseTime + float64(i)*spacing,
		})
	}
	if overflow > 0 {
		logrus.Debugf("station %d: queue full, dropped %d of %d generated packets", st.ID, overflow, count)
	}
	return overflow
}

// Peek returns the head packet without removing it, or nil if the queue is empty.
func (st *Station) Peek() *Packet {
	if len(st.queue) == 0 {
		return nil
	}
	return st.queue[0]
}

// Pop removes and returns the head packet, or nil if the queue is empty.
func (st *Station) Pop() *Packet {
	if len(st.queue) == 0 {
		return nil
	}
	head := st.queue[0]
	st.queue = st.queue[1:]
	return head
}

// Empty reports whether the station has no packets left to send.
func (st *Station) Empty() bool {
	return len(st.queue) == 0
}

// QueueLen returns the number of packets waiting at the station.
func (st *Station) QueueLen() int {
	return len(st.queue)
}

// PowerFactor derives the transmit power scaling from the station's distance
// to the access point: maxPower at the AP, tapering linearly to minPower at
// the far edge. The result is clamped to [MinPower, MaxPower].
func (st *Station) PowerFactor(pc PowerConfig) float64 {
	pf := pc.MaxPower - (st.Distance/pc.MaxDistance)*(pc.MaxPower-pc.MinPower)
	if pf < pc.MinPower {
		pf = pc.MinPower
	}
	if pf > pc.MaxPower {
		pf = pc.MaxPower
	}
	return pf
}
