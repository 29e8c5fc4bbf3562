package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/wlan-sim/wlan-sim/sim"
)

var (
	// CLI flags shared by every run
	accessMode  string // Channel-access policy name
	logLevel    string // Log verbosity level
	seed        int64  // Master seed for backoff and station placement
	populations []int  // Station population sizes, one independent run each

	// Channel / PHY parameters
	bandwidthMHz    float64 // Total channel bandwidth in MHz
	modulationBits  float64 // Bits per symbol (8 = 256-QAM)
	codingRate      float64 // Coding rate
	packetSizeBytes int     // Frame payload size in bytes

	// Traffic parameters
	packetsPerStation int     // Packets seeded into each station queue
	arrivalSpacing    float64 // Seconds between synthetic arrivals
	queueCapacity     int     // Max packets per station queue
	timeoutSec        float64 // Queue-wait timeout (subchannel policy)

	// Access-policy parameters
	ceilingSec    float64   // Max simulated run time in seconds
	maxBackoffSec float64   // Upper bound of one backoff draw
	streams       int       // Spatial stream count (multistream policy)
	subChannels   []float64 // Sub-channel widths in MHz (subchannel policy)

	// Power control
	minPower    float64 // Power factor at cell edge
	maxPower    float64 // Power factor at the access point
	maxDistance float64 // Cell radius in meters

	// Standards presets
	standardsFile string // YAML file with named parameter bundles
	standard      string // Preset name to apply, e.g. "80211ax"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "wlan-sim",
	Short: "Discrete-event simulator for WLAN MAC channel access",
}

// runCmd executes one simulation per configured population size
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the channel-access simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if standard != "" {
			ApplyStandard(standardsFile, standard)
		}

		logrus.Infof("Starting %s simulation: %.1f MHz, %v bits/symbol, coding rate %.4f, populations %v",
			accessMode, bandwidthMHz, modulationBits, codingRate, populations)

		// Each population size is an independent run; a ceiling overflow in
		// one run must not block the next.
		for _, population := range populations {
			cfg := sim.RunConfig{
				Access:         accessMode,
				Stations:       population,
				Ceiling:        ceilingSec,
				MaxBackoff:     maxBackoffSec,
				Streams:        streams,
				SubChannelsMHz: subChannels,
				Seed:           seed,
				Channel: sim.ChannelConfig{
					BandwidthHz:     bandwidthMHz * 1e6,
					ModulationBits:  modulationBits,
					CodingRate:      codingRate,
					PacketSizeBytes: packetSizeBytes,
				},
				Traffic: sim.TrafficConfig{
					PacketsPerStation: packetsPerStation,
					ArrivalSpacing:    arrivalSpacing,
					QueueCapacity:     queueCapacity,
					TimeoutLimit:      timeoutSec,
				},
				Power: sim.PowerConfig{
					MinPower:    minPower,
					MaxPower:    maxPower,
					MaxDistance: maxDistance,
				},
			}

			s, err := sim.NewSimulator(cfg)
			if err != nil {
				logrus.Fatalf("Invalid configuration for %d stations: %v", population, err)
			}

			startTime := time.Now()
			res, err := s.Run()
			if err != nil {
				// Degenerate run: nothing transmitted. Report it, keep going.
				logrus.Warnf("Run with %d stations: %v", population, err)
			}
			PrintResult(res, time.Since(startTime))
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {

	runCmd.Flags().StringVar(&accessMode, "access", sim.AccessContention, "Channel access policy (contention, multistream, subchannel)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for backoff sampling and station placement")
	runCmd.Flags().IntSliceVar(&populations, "populations", []int{1, 10, 100}, "Comma-separated station population sizes, one run each")

	// Channel / PHY parameters
	runCmd.Flags().Float64Var(&bandwidthMHz, "bandwidth-mhz", 20.0, "Total channel bandwidth in MHz")
	runCmd.Flags().Float64Var(&modulationBits, "modulation-bits", 8, "Bits per symbol (8 = 256-QAM)")
	runCmd.Flags().Float64Var(&codingRate, "coding-rate", 5.0/6.0, "Coding rate")
	runCmd.Flags().IntVar(&packetSizeBytes, "packet-size-bytes", 1024, "Frame payload size in bytes")

	// Traffic parameters
	runCmd.Flags().IntVar(&packetsPerStation, "packets-per-station", 10, "Packets generated per station")
	runCmd.Flags().Float64Var(&arrivalSpacing, "arrival-spacing", 0.01, "Seconds between synthetic packet arrivals")
	runCmd.Flags().IntVar(&queueCapacity, "queue-capacity", 50, "Maximum packets held in a station queue")
	runCmd.Flags().Float64Var(&timeoutSec, "timeout", 1.0, "Queue-wait timeout in seconds (subchannel policy)")

	// Access-policy parameters
	runCmd.Flags().Float64Var(&ceilingSec, "ceiling", 5000.0, "Maximum simulated run time in seconds")
	runCmd.Flags().Float64Var(&maxBackoffSec, "max-backoff", 0.01, "Upper bound of a single backoff draw in seconds")
	runCmd.Flags().IntVar(&streams, "streams", 4, "Number of spatial streams (multistream policy)")
	runCmd.Flags().Float64SliceVar(&subChannels, "sub-channels-mhz", []float64{2.0, 4.0, 10.0}, "Comma-separated sub-channel widths in MHz (subchannel policy)")

	// Power control
	runCmd.Flags().Float64Var(&minPower, "min-power", 0.5, "Transmit power factor at the cell edge")
	runCmd.Flags().Float64Var(&maxPower, "max-power", 1.5, "Transmit power factor at the access point")
	runCmd.Flags().Float64Var(&maxDistance, "max-distance", 1000.0, "Cell radius in meters")

	// Standards presets
	runCmd.Flags().StringVar(&standardsFile, "standards-file", "standards.yaml", "YAML file with named standard presets")
	runCmd.Flags().StringVar(&standard, "standard", "", "Standard preset to apply (e.g. 80211n, 80211ac, 80211ax)")

	rootCmd.AddCommand(runCmd)
}
