// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-waverider/pkg/entity"
	"github.com/opd-ai/go-waverider/pkg/wave"
)

// SimConfig contains configuration for a simulation session
type SimConfig struct {
	QualityTier string        `json:"qualityTier" yaml:"quality_tier"`
	TimeStep    float64       `json:"timeStep" yaml:"time_step"`
	Wave        WaveConfig    `json:"wave" yaml:"wave"`
	Craft       CraftConfig   `json:"craft" yaml:"craft"`
	Display     DisplayConfig `json:"display" yaml:"display"`
}

// WaveConfig contains the wave field coefficients
type WaveConfig struct {
	SwellAmplitude float64 `json:"swellAmplitude" yaml:"swell_amplitude"`
	SwellFrequency float64 `json:"swellFrequency" yaml:"swell_frequency"`
	WaveAmplitude  float64 `json:"waveAmplitude" yaml:"wave_amplitude"`
	WaveFrequency  float64 `json:"waveFrequency" yaml:"wave_frequency"`
}

// CraftConfig contains the watercraft tuning parameters
type CraftConfig struct {
	MaxSpeed        float64 `json:"maxSpeed" yaml:"max_speed"`
	Acceleration    float64 `json:"acceleration" yaml:"acceleration"`
	TurnSpeed       float64 `json:"turnSpeed" yaml:"turn_speed"`
	BuoyancyForce   float64 `json:"buoyancyForce" yaml:"buoyancy_force"`
	LinearDamping   float64 `json:"linearDamping" yaml:"linear_damping"`
	AngularDamping  float64 `json:"angularDamping" yaml:"angular_damping"`
	BoostMultiplier float64 `json:"boostMultiplier" yaml:"boost_multiplier"`
	HullOffset      float64 `json:"hullOffset" yaml:"hull_offset"`
}

// DisplayConfig contains rendering-fidelity settings for the host
// renderer. OceanSegments follows the quality tier unless overridden.
type DisplayConfig struct {
	Width         int     `json:"width" yaml:"width"`
	Height        int     `json:"height" yaml:"height"`
	Fullscreen    bool    `json:"fullscreen" yaml:"fullscreen"`
	OceanSegments int     `json:"oceanSegments" yaml:"ocean_segments"`
	OceanExtent   float64 `json:"oceanExtent" yaml:"ocean_extent"`
	Shadows       bool    `json:"shadows" yaml:"shadows"`
}

// Tier parses the configured quality tier.
func (c *SimConfig) Tier() (wave.QualityTier, error) {
	return wave.ParseQualityTier(c.QualityTier)
}

// WaveParameters converts the wave section to field parameters.
func (c *SimConfig) WaveParameters() wave.Parameters {
	return wave.Parameters{
		SwellAmplitude: c.Wave.SwellAmplitude,
		SwellFrequency: c.Wave.SwellFrequency,
		WaveAmplitude:  c.Wave.WaveAmplitude,
		WaveFrequency:  c.Wave.WaveFrequency,
	}
}

// CraftStats converts the craft section to watercraft stats.
func (c *SimConfig) CraftStats() entity.Stats {
	return entity.Stats{
		MaxSpeed:        c.Craft.MaxSpeed,
		Acceleration:    c.Craft.Acceleration,
		TurnSpeed:       c.Craft.TurnSpeed,
		BuoyancyForce:   c.Craft.BuoyancyForce,
		LinearDamping:   c.Craft.LinearDamping,
		AngularDamping:  c.Craft.AngularDamping,
		BoostMultiplier: c.Craft.BoostMultiplier,
		HullOffset:      c.Craft.HullOffset,
	}
}

// LoadConfig loads a configuration from a JSON or YAML file, selected by
// extension.
func LoadConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a JSON or YAML file, selected by
// extension.
func SaveConfig(config *SimConfig, path string) error {
	var (
		data []byte
		err  error
	)
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnvOverrides applies environment variable overrides on top of a
// loaded configuration. WAVERIDER_QUALITY_TIER selects the tier and
// WAVERIDER_TIMESTEP the fixed timestep in seconds.
func ApplyEnvOverrides(config *SimConfig) error {
	if tier := os.Getenv("WAVERIDER_QUALITY_TIER"); tier != "" {
		if _, err := wave.ParseQualityTier(tier); err != nil {
			return fmt.Errorf("invalid WAVERIDER_QUALITY_TIER: %w", err)
		}
		config.QualityTier = tier
	}
	if step := os.Getenv("WAVERIDER_TIMESTEP"); step != "" {
		v, err := strconv.ParseFloat(step, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid WAVERIDER_TIMESTEP %q", step)
		}
		config.TimeStep = v
	}
	return nil
}

// DefaultConfig returns a default simulation configuration
func DefaultConfig() *SimConfig {
	return &SimConfig{
		QualityTier: "full",
		TimeStep:    1.0 / 60.0,
		Wave: WaveConfig{
			SwellAmplitude: 2.5,
			SwellFrequency: 0.05,
			WaveAmplitude:  1.5,
			WaveFrequency:  0.15,
		},
		Craft: CraftConfig{
			MaxSpeed:        20,
			Acceleration:    10,
			TurnSpeed:       1.5,
			BuoyancyForce:   8,
			LinearDamping:   0.9,
			AngularDamping:  0.92,
			BoostMultiplier: 2,
			HullOffset:      1,
		},
		Display: DisplayConfig{
			Width:         1024,
			Height:        768,
			Fullscreen:    false,
			OceanSegments: 48,
			OceanExtent:   120,
			Shadows:       true,
		},
	}
}

// ApplyTierDefaults lowers rendering-fidelity settings for the reduced
// tier: fewer ocean segments, shadows off. Explicit non-default values in
// the file are left alone.
func ApplyTierDefaults(config *SimConfig) {
	tier, err := config.Tier()
	if err != nil || tier != wave.TierReduced {
		return
	}
	defaults := DefaultConfig().Display
	if config.Display.OceanSegments == defaults.OceanSegments {
		config.Display.OceanSegments = 24
	}
	if config.Display.Shadows == defaults.Shadows {
		config.Display.Shadows = false
	}
}
