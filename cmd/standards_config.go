package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Define struct for YAML
type StandardsConfig struct {
	Standards map[string]Standard `yaml:"standards"`
}

// Standard is one named parameter bundle: the PHY numbers plus the access
// policy a given amendment is simulated with. Zero-valued fields leave the
// corresponding flag untouched.
type Standard struct {
	Access          string    `yaml:"access"`
	BandwidthMHz    float64   `yaml:"bandwidth_mhz"`
	ModulationBits  float64   `yaml:"modulation_bits"`
	CodingRate      float64   `yaml:"coding_rate"`
	PacketSizeBytes int       `yaml:"packet_size_bytes"`
	Streams         int       `yaml:"streams"`
	SubChannelsMHz  []float64 `yaml:"sub_channels_mhz"`
}

// ApplyStandard loads the presets file and overwrites the channel and policy
// flags with the named preset's values.
func ApplyStandard(standardsFilePath string, name string) {
	// Read YAML file
	data, err := os.ReadFile(standardsFilePath)
	if err != nil {
		logrus.Fatalf("unable to read standards file %s: %v", standardsFilePath, err)
	}

	// Parse YAML
	var cfg StandardsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Fatalf("unable to parse standards file %s: %v", standardsFilePath, err)
	}

	std, ok := cfg.Standards[name]
	if !ok {
		logrus.Fatalf("standard %q not found in %s", name, standardsFilePath)
	}
	logrus.Infof("Using standard preset %v\n", name)

	if std.Access != "" {
		accessMode = std.Access
	}
	if std.BandwidthMHz > 0 {
		bandwidthMHz = std.BandwidthMHz
	}
	if std.ModulationBits > 0 {
		modulationBits = std.ModulationBits
	}
	if std.CodingRate > 0 {
		codingRate = std.CodingRate
	}
	if std.PacketSizeBytes > 0 {
		packetSizeBytes = std.PacketSizeBytes
	}
	if std.Streams > 0 {
		streams = std.Streams
	}
	if len(std.SubChannelsMHz) > 0 {
		subChannels = std.SubChannelsMHz
	}
}
