package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPacketBits(t *testing.T) {
	c := ChannelConfig{PacketSizeBytes: 1024}
	assert.Equal(t, 8192.0, c.PacketBits())
}

func TestRunConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*RunConfig)
		wantErr bool
	}{
		{"valid contention", func(c *RunConfig) {}, false},
		{"valid multistream", func(c *RunConfig) { c.Access = AccessMultiStream }, false},
		{"valid subchannel", func(c *RunConfig) { c.Access = AccessSubChannel }, false},
		{"zero stations", func(c *RunConfig) { c.Stations = 0 }, true},
		{"zero bandwidth", func(c *RunConfig) { c.Channel.BandwidthHz = 0 }, true},
		{"coding rate above 1", func(c *RunConfig) { c.Channel.CodingRate = 1.5 }, true},
		{"zero packet size", func(c *RunConfig) { c.Channel.PacketSizeBytes = 0 }, true},
		{"zero queue capacity", func(c *RunConfig) { c.Traffic.QueueCapacity = 0 }, true},
		{"inverted power bounds", func(c *RunConfig) { c.Power.MinPower = 2.0; c.Power.MaxPower = 1.0 }, true},
		{"contention without backoff bound", func(c *RunConfig) { c.MaxBackoff = 0 }, true},
		{"multistream without streams", func(c *RunConfig) { c.Access = AccessMultiStream; c.Streams = 0 }, true},
		{"subchannel without widths", func(c *RunConfig) { c.Access = AccessSubChannel; c.SubChannelsMHz = nil }, true},
		{"subchannel with negative width", func(c *RunConfig) { c.Access = AccessSubChannel; c.SubChannelsMHz = []float64{2, -4} }, true},
		{"subchannel without timeout", func(c *RunConfig) { c.Access = AccessSubChannel; c.Traffic.TimeoutLimit = 0 }, true},
		{"unknown access policy", func(c *RunConfig) { c.Access = "tdma" }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(AccessContention, 10)
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPolicy_Names(t *testing.T) {
	for _, name := range []string{AccessContention, AccessMultiStream, AccessSubChannel} {
		p, err := NewPolicy(name)
		assert.NoError(t, err)
		assert.Equal(t, name, p.Name())
	}

	_, err := NewPolicy("csma-cd")
	assert.Error(t, err)
}
