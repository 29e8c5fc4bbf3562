// sim/simulator_test.go
package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SinglePacketDegenerate(t *testing.T) {
	// One station, one packet, flat power: exactly one transmission at the
	// full-bandwidth rate, and every latency statistic coincides.
	cfg := testConfig(AccessContention, 1)
	cfg.Traffic.PacketsPerStation = 1

	s, err := NewSimulator(cfg)
	require.NoError(t, err)
	res, err := s.Run()
	require.NoError(t, err)

	assert.Equal(t, 1, res.Transmitted)
	assert.Zero(t, res.Dropped)
	assert.False(t, res.Aborted)

	wantDur := 8192.0 / (20e6 * 8 * 5.0 / 6.0)
	assert.InDelta(t, wantDur, res.AvgLatency, 1e-12)
	assert.InDelta(t, res.AvgLatency, res.MaxLatency, 1e-12)
	assert.InDelta(t, 8192.0/wantDur, res.ThroughputBps, 1e-3)
}

func TestRun_SameSeedSameResult(t *testing.T) {
	cfg := testConfig(AccessContention, 10)
	cfg.Traffic.PacketsPerStation = 5
	cfg.Seed = 7

	s1, err := NewSimulator(cfg)
	require.NoError(t, err)
	res1, err := s1.Run()
	require.NoError(t, err)

	s2, err := NewSimulator(cfg)
	require.NoError(t, err)
	res2, err := s2.Run()
	require.NoError(t, err)

	assert.Equal(t, res1, res2)
}

func TestRun_PacketConservation(t *testing.T) {
	// 20 packets per station against a queue capacity of 8: the excess is
	// dropped at generation, the rest drains. Nothing vanishes.
	cfg := testConfig(AccessSubChannel, 5)
	cfg.Traffic.PacketsPerStation = 20
	cfg.Traffic.QueueCapacity = 8

	s, err := NewSimulator(cfg)
	require.NoError(t, err)
	res, err := s.Run()
	require.NoError(t, err)

	generated := cfg.Stations * cfg.Traffic.PacketsPerStation
	assert.LessOrEqual(t, res.Transmitted+res.Dropped, generated)
	assert.Equal(t, generated, res.Transmitted+res.Dropped)
	assert.Equal(t, 40, res.Transmitted)
	assert.Equal(t, 60, res.Dropped)
}

func TestRun_ZeroCeilingDropsEverything(t *testing.T) {
	cfg := testConfig(AccessMultiStream, 1)
	cfg.Traffic.PacketsPerStation = 1
	cfg.Ceiling = 0

	s, err := NewSimulator(cfg)
	require.NoError(t, err)
	res, err := s.Run()

	assert.ErrorIs(t, err, ErrNoTransmissions)
	assert.Zero(t, res.Transmitted)
	assert.Equal(t, 1, res.Dropped)
	assert.Zero(t, res.ThroughputBps)
}

func TestRun_MaxLatencyAtLeastAverage(t *testing.T) {
	cfg := testConfig(AccessMultiStream, 10)

	s, err := NewSimulator(cfg)
	require.NoError(t, err)
	res, err := s.Run()
	require.NoError(t, err)

	assert.Greater(t, res.Transmitted, 0)
	assert.GreaterOrEqual(t, res.MaxLatency, res.AvgLatency)
}

func TestRun_IndependentRunsShareNoState(t *testing.T) {
	// A ceiling abort in one run must not affect the next run's outcome.
	aborted := testConfig(AccessContention, 100)
	aborted.Ceiling = 0.001
	s1, err := NewSimulator(aborted)
	require.NoError(t, err)
	res1, _ := s1.Run()
	assert.True(t, res1.Aborted || res1.Transmitted+res1.Dropped > 0)

	clean := testConfig(AccessMultiStream, 2)
	clean.Traffic.PacketsPerStation = 2
	s2, err := NewSimulator(clean)
	require.NoError(t, err)
	res2, err := s2.Run()
	require.NoError(t, err)
	assert.Equal(t, 4, res2.Transmitted)
	assert.False(t, res2.Aborted)
}

func TestNewSimulator_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(AccessContention, 0)
	_, err := NewSimulator(cfg)
	assert.Error(t, err)
}

func TestNewSimulator_PlacesStationsWithinCell(t *testing.T) {
	cfg := testConfig(AccessMultiStream, 50)
	s, err := NewSimulator(cfg)
	require.NoError(t, err)

	require.Len(t, s.Stations, 50)
	for _, st := range s.Stations {
		assert.GreaterOrEqual(t, st.Distance, 0.0)
		assert.LessOrEqual(t, st.Distance, cfg.Power.MaxDistance)
	}
}
