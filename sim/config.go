package sim

import "fmt"

// ChannelConfig groups the PHY-side parameters the timing math consumes.
type ChannelConfig struct {
	BandwidthHz     float64 // Total channel bandwidth (Hz, must be > 0)
	ModulationBits  float64 // Bits per symbol, e.g. 8 for 256-QAM
	CodingRate      float64 // Coding rate in (0, 1], e.g. 5/6
	PacketSizeBytes int     // Fixed frame payload size (must be > 0)
}

// PacketBits returns the frame size in bits.
func (c ChannelConfig) PacketBits() float64 {
	return float64(c.PacketSizeBytes) * 8
}

// TrafficConfig groups traffic generation and queueing parameters.
type TrafficConfig struct {
	PacketsPerStation int     // Packets seeded into each station's queue
	ArrivalSpacing    float64 // Seconds between consecutive synthetic arrivals
	QueueCapacity     int     // Max packets a station may hold
	TimeoutLimit      float64 // Max queue wait before a packet is dropped (sub-channel policy)
}

// PowerConfig groups the distance-based power control bounds.
type PowerConfig struct {
	MinPower    float64 // Power factor at MaxDistance
	MaxPower    float64 // Power factor at the access point
	MaxDistance float64 // Cell radius, meters
}

// RunConfig is the full configuration for one simulated run. The core
// consumes it; flag parsing and preset selection live in cmd.
type RunConfig struct {
	Access         string    // Policy name: "contention", "multistream", "subchannel"
	Stations       int       // Population size for this run
	Ceiling        float64   // Max simulated time (seconds); exceeded => run ends
	MaxBackoff     float64   // Upper bound of a single backoff draw (seconds)
	Streams        int       // Pool size for the multistream policy
	SubChannelsMHz []float64 // Per-sub-channel widths for the subchannel policy
	Seed           int64     // Master seed for all randomized decisions

	Channel ChannelConfig
	Traffic TrafficConfig
	Power   PowerConfig
}

// Validate rejects configurations the simulator cannot run. Scheduling
// conditions (full queues, busy resources) are never validation errors;
// this only guards structurally unusable inputs.
func (c RunConfig) Validate() error {
	if c.Stations <= 0 {
		return fmt.Errorf("stations must be > 0, got %d", c.Stations)
	}
	if c.Channel.BandwidthHz <= 0 {
		return fmt.Errorf("bandwidth must be > 0, got %f", c.Channel.BandwidthHz)
	}
	if c.Channel.ModulationBits <= 0 {
		return fmt.Errorf("modulation bits must be > 0, got %f", c.Channel.ModulationBits)
	}
	if c.Channel.CodingRate <= 0 || c.Channel.CodingRate > 1 {
		return fmt.Errorf("coding rate must be in (0, 1], got %f", c.Channel.CodingRate)
	}
	if c.Channel.PacketSizeBytes <= 0 {
		return fmt.Errorf("packet size must be > 0, got %d", c.Channel.PacketSizeBytes)
	}
	if c.Traffic.QueueCapacity <= 0 {
		return fmt.Errorf("queue capacity must be > 0, got %d", c.Traffic.QueueCapacity)
	}
	if c.Power.MaxDistance <= 0 {
		return fmt.Errorf("max distance must be > 0, got %f", c.Power.MaxDistance)
	}
	if c.Power.MinPower > c.Power.MaxPower {
		return fmt.Errorf("min power %f exceeds max power %f", c.Power.MinPower, c.Power.MaxPower)
	}
	switch c.Access {
	case AccessContention:
		if c.MaxBackoff <= 0 {
			return fmt.Errorf("max backoff must be > 0 for contention access, got %f", c.MaxBackoff)
		}
	case AccessMultiStream:
		if c.Streams <= 0 {
			return fmt.Errorf("streams must be > 0 for multistream access, got %d", c.Streams)
		}
	case AccessSubChannel:
		if len(c.SubChannelsMHz) == 0 {
			return fmt.Errorf("subchannel access requires at least one sub-channel width")
		}
		for _, w := range c.SubChannelsMHz {
			if w <= 0 {
				return fmt.Errorf("sub-channel width must be > 0, got %f", w)
			}
		}
		if c.Traffic.TimeoutLimit <= 0 {
			return fmt.Errorf("timeout limit must be > 0 for subchannel access, got %f", c.Traffic.TimeoutLimit)
		}
	default:
		return fmt.Errorf("unknown access policy %q", c.Access)
	}
	return nil
}
