// cmd/glidersim/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-glider/pkg/config"
	"github.com/opd-ai/go-glider/pkg/engine"
	"github.com/opd-ai/go-glider/pkg/event"
	"github.com/opd-ai/go-glider/pkg/logging"
	"github.com/opd-ai/go-glider/pkg/physics"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	launchSpeed := flag.Float64("speed", 12, "Initial airspeed in m/s")
	launchAltitude := flag.Float64("altitude", 100, "Initial altitude in meters")
	reportEvery := flag.Duration("report", time.Second, "Interval between state reports")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		defaultConfig := config.DefaultConfig()
		if err := config.SaveConfig(defaultConfig, *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	// Load configuration
	var simConfig *config.SimConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", *configPath,
		)
		simConfig = config.DefaultConfig()
	} else {
		simConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}

	sim := engine.NewSimulation(simConfig)

	sim.EventBus.Subscribe(event.StallEntered, func(e event.Event) {
		se := e.(*event.StallEvent)
		logger.Warn(ctx, "Glider stalled",
			"glider_id", se.GliderID,
			"airspeed", se.Airspeed,
		)
	})
	sim.EventBus.Subscribe(event.StallExited, func(e event.Event) {
		se := e.(*event.StallEvent)
		logger.Info(ctx, "Glider recovered from stall",
			"glider_id", se.GliderID,
			"airspeed", se.Airspeed,
		)
	})

	// Launch every configured glider level and forward at the requested
	// speed and altitude.
	for _, g := range sim.Gliders() {
		g.Position = mgl64.Vec3{0, *launchAltitude, 0}
		g.Velocity = physics.WorldForward.Mul(*launchSpeed)
	}

	logger.Info(ctx, "Starting simulation",
		"gliders", len(sim.Gliders()),
		"tick_rate", simConfig.Simulation.TickRate,
		"air_density", simConfig.Environment.AirDensity,
	)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info(ctx, "Shutdown signal received")
		cancel()
	}()

	go reportLoop(runCtx, sim, logger, *reportEvery)

	if err := sim.Run(runCtx); err != nil && err != context.Canceled {
		logger.Error(ctx, "Simulation stopped", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Simulation stopped")
}

// reportLoop periodically logs the state of every glider.
func reportLoop(ctx context.Context, sim *engine.Simulation, logger *logging.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, g := range sim.Gliders() {
				args := []any{
					"glider", g.Name,
					"tick", sim.CurrentTick,
					"altitude", g.Position.Y(),
					"airspeed", g.Airspeed(),
				}
				if sample, ok := sim.Sample(g); ok {
					args = append(args,
						"angle_of_attack", sample.AngleOfAttack,
						"lift", sample.LiftForce,
						"drag", sample.FormDrag+sample.InducedDrag,
					)
				}
				logger.Info(ctx, "Glider state", args...)
			}
		}
	}
}
