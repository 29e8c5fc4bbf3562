// Defines the Packet struct that models a single MAC frame in the simulation.
// Tracks arrival time and the transmission window stamped at send time.

package sim

import "fmt"

// Packet models one fixed-size frame queued at a station.
// Timestamps are simulated seconds. TxStart and TxEnd stay zero until the
// packet is transmitted; they are stamped exactly once.
type Packet struct {
	ID          int     // Unique within the owning station's queue
	ArrivalTime float64 // When the packet entered the queue
	TxStart     float64 // Transmission start, set at send time
	TxEnd       float64 // Transmission end, set at send time
}

// Latency returns the elapsed simulated time between arrival and the end of
// transmission. Only meaningful once the packet has been transmitted.
func (p *Packet) Latency() float64 {
	return p.TxEnd - p.ArrivalTime
}

func (p Packet) String() string {
	return fmt.Sprintf("Packet: (ID: %d, ArrivalTime: %f, TxStart: %f, TxEnd: %f)", p.ID, p.ArrivalTime, p.TxStart, p.TxEnd)
}
