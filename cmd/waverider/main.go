// cmd/waverider/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-waverider/pkg/config"
	"github.com/opd-ai/go-waverider/pkg/engine"
	"github.com/opd-ai/go-waverider/pkg/event"
	"github.com/opd-ai/go-waverider/pkg/input"
	"github.com/opd-ai/go-waverider/pkg/logging"
	"github.com/opd-ai/go-waverider/pkg/render"
	engorender "github.com/opd-ai/go-waverider/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file (.json, .yaml, or .yml)")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo', 'terminal', or 'null'")
	quality := flag.String("quality", "", "Quality tier override: 'full' or 'reduced'")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (engo only)")
	width := flag.Int("width", 0, "Window width (engo only, overrides config)")
	height := flag.Int("height", 0, "Window height (engo only, overrides config)")
	flag.Parse()

	logger := logging.NewLogger().WithComponent("main")

	// Load configuration
	var simConfig *config.SimConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info("configuration file not found, using defaults", "path", *configPath)
		simConfig = config.DefaultConfig()
	} else {
		simConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	config.ApplyEnvOverrides(simConfig)

	// Command line flags win over both file and environment.
	if *quality != "" {
		simConfig.QualityTier = *quality
	}
	if *width > 0 {
		simConfig.Display.Width = *width
	}
	if *height > 0 {
		simConfig.Display.Height = *height
	}
	simConfig.Display.Fullscreen = *fullscreen

	config.ApplyTierDefaults(simConfig)

	eventBus := event.NewEventBus()

	switch *renderer {
	case "engo":
		runEngo(simConfig, eventBus, logger)
	case "terminal":
		runHeadless(simConfig, eventBus, logger, newTerminalRenderer(simConfig))
	case "null":
		runHeadless(simConfig, eventBus, logger, render.NewNullRenderer(logging.NewLogger()))
	default:
		log.Fatalf("Unknown renderer %q: want 'engo', 'terminal', or 'null'", *renderer)
	}
}

// runEngo opens a window and pilots the craft from the keyboard.
func runEngo(simConfig *config.SimConfig, eventBus *event.Bus, logger *logging.Logger) {
	session, err := engine.NewSession(simConfig, engorender.NewKeyboardProvider(), eventBus, logging.NewLogger())
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	scene := engorender.NewSimScene(session, eventBus, logging.NewLogger())

	opts := engo.RunOptions{
		Title:      "Waverider",
		Width:      simConfig.Display.Width,
		Height:     simConfig.Display.Height,
		Fullscreen: simConfig.Display.Fullscreen,
		VSync:      true,
	}

	logger.Info("starting windowed session",
		"width", simConfig.Display.Width,
		"height", simConfig.Display.Height,
		"quality", simConfig.QualityTier,
	)
	engo.Run(opts, scene)
}

// runHeadless drives the session on a fixed-step loop with no window,
// drawing each frame through the given renderer until interrupted.
func runHeadless(simConfig *config.SimConfig, eventBus *event.Bus, logger *logging.Logger, r render.Renderer) {
	session, err := engine.NewSession(simConfig, input.Neutral{}, eventBus, logging.NewLogger())
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutting down")
		cancel()
	}()

	session.Start()

	timeStep := simConfig.TimeStep
	if timeStep <= 0 {
		timeStep = 1.0 / 60.0
	}
	ticker := time.NewTicker(time.Duration(float64(time.Second) * timeStep))
	defer ticker.Stop()

	logger.Info("starting headless session", "quality", simConfig.QualityTier)
	for {
		select {
		case <-ctx.Done():
			session.Stop()
			return
		case <-ticker.C:
			session.Update()
			if tr, ok := r.(*render.TerminalRenderer); ok {
				frame := session.Snapshot()
				tr.SetCenter(frame.Craft.Position.X, frame.Craft.Position.Z)
			}
			render.DrawFrame(r, session)
		}
	}
}

// newTerminalRenderer sizes the ASCII view from the display config.
func newTerminalRenderer(simConfig *config.SimConfig) *render.TerminalRenderer {
	width := simConfig.Display.Width / 12
	height := simConfig.Display.Height / 24
	if width < 20 {
		width = 20
	}
	if height < 10 {
		height = 10
	}
	return render.NewTerminalRenderer(width, height, simConfig.Display.OceanExtent/float64(width))
}
