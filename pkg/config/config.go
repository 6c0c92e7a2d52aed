// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opd-ai/go-glider/pkg/aero"
	"github.com/opd-ai/go-glider/pkg/entity"
)

// SimConfig contains configuration for a glider simulation
type SimConfig struct {
	Gliders     []GliderConfig    `json:"gliders"`
	Environment EnvironmentConfig `json:"environment"`
	Simulation  SimulationConfig  `json:"simulation"`
	Tuning      TuningConfig      `json:"tuning"`
}

// GliderConfig contains configuration for one glider body
type GliderConfig struct {
	Name      string     `json:"name"`
	Mass      float64    `json:"mass"`
	Kinematic bool       `json:"kinematic"`
	Wing      WingConfig `json:"wing"`
}

// WingConfig contains the wing geometry parameters
type WingConfig struct {
	Chord      float64 `json:"chord"`
	Span       float64 `json:"span"`
	BaseDrag   float64 `json:"baseDrag"`
	Efficiency float64 `json:"efficiency"`
	Weight     float64 `json:"weight"`
}

// EnvironmentConfig contains the ambient environment constants
type EnvironmentConfig struct {
	AirDensity float64 `json:"airDensity"`
	Gravity    float64 `json:"gravity"`
}

// SimulationConfig contains tick and threshold settings
type SimulationConfig struct {
	TickRate   float64 `json:"tickRate"`   // ticks per second
	StallSpeed float64 `json:"stallSpeed"` // m/s, stall rotation engages below this
}

// TuningConfig contains the empirical flight-feel rates
type TuningConfig struct {
	TurnYawRate  float64 `json:"turnYawRate"`
	TurnRollRate float64 `json:"turnRollRate"`
	StallRate    float64 `json:"stallRate"`
}

// Stats converts a glider configuration into construction parameters.
func (g GliderConfig) Stats() entity.GliderStats {
	return entity.GliderStats{
		Mass: g.Mass,
		Wing: aero.WingStats{
			Chord:      g.Wing.Chord,
			Span:       g.Wing.Span,
			BaseDrag:   g.Wing.BaseDrag,
			Efficiency: g.Wing.Efficiency,
			Weight:     g.Wing.Weight,
		},
	}
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SimConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *SimConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that the configuration describes a simulable world.
func (c *SimConfig) Validate() error {
	if c.Environment.AirDensity <= 0 {
		return fmt.Errorf("airDensity must be positive, got %v", c.Environment.AirDensity)
	}
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %v", c.Simulation.TickRate)
	}
	if c.Simulation.StallSpeed < 0 {
		return fmt.Errorf("stallSpeed must not be negative, got %v", c.Simulation.StallSpeed)
	}
	for _, g := range c.Gliders {
		if g.Wing.Chord <= 0 || g.Wing.Span <= 0 {
			return fmt.Errorf("glider %q: chord and span must be positive", g.Name)
		}
		if g.Wing.Efficiency <= 0 || g.Wing.Efficiency > 1 {
			return fmt.Errorf("glider %q: efficiency must be in (0, 1], got %v", g.Name, g.Wing.Efficiency)
		}
		if g.Wing.BaseDrag < 0 {
			return fmt.Errorf("glider %q: baseDrag must not be negative", g.Name)
		}
		if g.Mass <= 0 {
			return fmt.Errorf("glider %q: mass must be positive", g.Name)
		}
	}
	return nil
}

// DefaultConfig returns a default simulation configuration: one hawk-sized
// glider in sea-level air.
func DefaultConfig() *SimConfig {
	return &SimConfig{
		Gliders: []GliderConfig{
			{
				Name: "hawk",
				Mass: 1.2,
				Wing: WingConfig{
					Chord:      0.7,
					Span:       1.715,
					BaseDrag:   aero.DefaultBaseDrag,
					Efficiency: 0.9,
					Weight:     1.2,
				},
			},
		},
		Environment: EnvironmentConfig{
			AirDensity: 1.225,
			Gravity:    9.81,
		},
		Simulation: SimulationConfig{
			TickRate:   60,
			StallSpeed: 4,
		},
		Tuning: TuningConfig{
			TurnYawRate:  aero.DefaultTurnYawRate,
			TurnRollRate: aero.DefaultTurnRollRate,
			StallRate:    aero.DefaultStallRate,
		},
	}
}
