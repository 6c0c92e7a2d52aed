// pkg/config/config_test.go
package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig() does not validate: %v", err)
	}
	if len(cfg.Gliders) == 0 {
		t.Fatal("DefaultConfig() has no gliders")
	}
}

func TestConfig_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	original := DefaultConfig()
	original.Gliders[0].Name = "roundtrip"
	original.Simulation.StallSpeed = 6.5

	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if loaded.Gliders[0].Name != "roundtrip" {
		t.Errorf("glider name = %q, want %q", loaded.Gliders[0].Name, "roundtrip")
	}
	if loaded.Simulation.StallSpeed != 6.5 {
		t.Errorf("stallSpeed = %v, want 6.5", loaded.Simulation.StallSpeed)
	}
	if loaded.Environment.AirDensity != original.Environment.AirDensity {
		t.Errorf("airDensity = %v, want %v", loaded.Environment.AirDensity, original.Environment.AirDensity)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("LoadConfig() of a missing file returned nil error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SimConfig)
		wantErr string
	}{
		{"zero air density", func(c *SimConfig) { c.Environment.AirDensity = 0 }, "airDensity"},
		{"negative tick rate", func(c *SimConfig) { c.Simulation.TickRate = -1 }, "tickRate"},
		{"negative stall speed", func(c *SimConfig) { c.Simulation.StallSpeed = -2 }, "stallSpeed"},
		{"zero chord", func(c *SimConfig) { c.Gliders[0].Wing.Chord = 0 }, "chord"},
		{"zero span", func(c *SimConfig) { c.Gliders[0].Wing.Span = 0 }, "span"},
		{"efficiency above one", func(c *SimConfig) { c.Gliders[0].Wing.Efficiency = 1.5 }, "efficiency"},
		{"zero efficiency", func(c *SimConfig) { c.Gliders[0].Wing.Efficiency = 0 }, "efficiency"},
		{"negative base drag", func(c *SimConfig) { c.Gliders[0].Wing.BaseDrag = -0.01 }, "baseDrag"},
		{"zero mass", func(c *SimConfig) { c.Gliders[0].Mass = 0 }, "mass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestGliderConfig_Stats(t *testing.T) {
	gc := GliderConfig{
		Name: "test",
		Mass: 2.5,
		Wing: WingConfig{
			Chord:      0.5,
			Span:       2,
			BaseDrag:   0.03,
			Efficiency: 0.8,
			Weight:     2.5,
		},
	}

	stats := gc.Stats()
	if stats.Mass != 2.5 {
		t.Errorf("Mass = %v, want 2.5", stats.Mass)
	}
	if stats.Wing.Chord != 0.5 || stats.Wing.Span != 2 {
		t.Errorf("Wing geometry = %+v, want chord 0.5, span 2", stats.Wing)
	}
	if stats.Wing.BaseDrag != 0.03 || stats.Wing.Efficiency != 0.8 {
		t.Errorf("Wing polar = %+v, want baseDrag 0.03, efficiency 0.8", stats.Wing)
	}
}
