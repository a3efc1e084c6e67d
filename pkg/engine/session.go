// pkg/engine/session.go
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/opd-ai/go-waverider/pkg/camera"
	"github.com/opd-ai/go-waverider/pkg/config"
	"github.com/opd-ai/go-waverider/pkg/entity"
	"github.com/opd-ai/go-waverider/pkg/event"
	"github.com/opd-ai/go-waverider/pkg/input"
	"github.com/opd-ai/go-waverider/pkg/logging"
	"github.com/opd-ai/go-waverider/pkg/wave"
)

// maxDeltaTime caps per-frame elapsed time before any component consumes
// it, so a stalled host (backgrounded window, debugger pause) cannot feed
// the integrators a destabilizing step.
const maxDeltaTime = 0.1

// Session owns one complete simulation: the wave field, the craft, the
// camera rig, and the per-frame pipeline that connects them. All
// simulation state is owned here rather than living in package globals;
// construct a Session, run it, discard it.
type Session struct {
	Config   *config.SimConfig
	Field    *wave.Field
	Craft    *entity.Watercraft
	Camera   *camera.Rig
	EventBus *event.Bus

	provider input.Provider
	logger   *logging.Logger

	stateLock   sync.RWMutex
	running     bool
	currentTick uint64
	lastUpdate  time.Time
	lastInput   input.ControlInput
	prevBoost   bool

	now func() time.Time // injectable clock for tests
}

// NewSession builds a session from configuration. The quality tier and
// all tuning parameters are fixed here; invalid values fail construction
// rather than surfacing mid-run.
func NewSession(cfg *config.SimConfig, provider input.Provider, bus *event.Bus, logger *logging.Logger) (*Session, error) {
	tier, err := cfg.Tier()
	if err != nil {
		return nil, logging.WrapError(err, "resolving quality tier")
	}

	field, err := wave.NewField(cfg.WaveParameters(), tier)
	if err != nil {
		return nil, logging.WrapError(err, "creating wave field")
	}

	craft, err := entity.NewWatercraft(entity.GenerateID(), cfg.CraftStats())
	if err != nil {
		return nil, logging.WrapError(err, "creating watercraft")
	}

	if provider == nil {
		provider = input.Neutral{}
	}
	if bus == nil {
		bus = event.NewEventBus()
	}
	if logger == nil {
		logger = logging.NewLogger()
	}

	pose := craft.GetPose()
	return &Session{
		Config:   cfg,
		Field:    field,
		Craft:    craft,
		Camera:   camera.NewRig(pose.Position, pose.Yaw),
		EventBus: bus,
		provider: provider,
		logger:   logger.WithComponent("engine"),
		now:      time.Now,
	}, nil
}

// Start marks the session active and publishes the start event.
func (s *Session) Start() {
	s.stateLock.Lock()
	s.running = true
	s.lastUpdate = s.now()
	s.stateLock.Unlock()

	s.logger.Info("session started",
		"quality_tier", s.Field.Tier().String(),
		"time_step", s.Config.TimeStep,
	)
	s.EventBus.Publish(&event.BaseEvent{
		EventType: event.SessionStarted,
		Source:    s,
	})
}

// Stop halts frame scheduling and publishes the end event.
func (s *Session) Stop() {
	s.stateLock.Lock()
	wasRunning := s.running
	s.running = false
	s.stateLock.Unlock()

	if !wasRunning {
		return
	}
	s.logger.Info("session stopped", "ticks", s.Tick())
	s.EventBus.Publish(&event.BaseEvent{
		EventType: event.SessionEnded,
		Source:    s,
	})
}

// Running reports whether the session is accepting frames.
func (s *Session) Running() bool {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()
	return s.running
}

// Update advances the simulation by the wall-clock time since the last
// call, clamped to maxDeltaTime.
func (s *Session) Update() {
	s.stateLock.Lock()
	now := s.now()
	dt := now.Sub(s.lastUpdate).Seconds()
	s.lastUpdate = now
	events := s.step(dt)
	s.stateLock.Unlock()

	s.publish(events)
}

// Step advances the simulation by an explicit dt. Useful for fixed-step
// hosts and deterministic tests.
func (s *Session) Step(dt float64) {
	s.stateLock.Lock()
	events := s.step(dt)
	s.stateLock.Unlock()

	s.publish(events)
}

// step runs one frame of the fixed pipeline: clamp dt, poll input,
// advance the wave clock, update the craft, then the camera. The order
// must not change; the craft reads the already-advanced field, and the
// camera reads the already-updated craft pose. Events raised by the frame
// are returned rather than published: the caller holds stateLock, and
// handlers read session telemetry through it.
func (s *Session) step(dt float64) []event.Event {
	if dt < 0 {
		dt = 0
	}
	if dt > maxDeltaTime {
		dt = maxDeltaTime
	}

	ctl := s.provider.Poll()
	s.lastInput = ctl

	s.Field.Advance(dt)
	s.Craft.Update(dt, s.Field, ctl)

	pose := s.Craft.GetPose()
	if ctl.ResetRequested {
		// The one permitted camera discontinuity: follow the craft's
		// teleport back to spawn instead of sweeping across the ocean.
		s.Camera.Snap(pose.Position, pose.Yaw)
	} else {
		s.Camera.Update(pose.Position, pose.Yaw, ctl)
	}

	s.currentTick++
	return s.inputEvents(ctl)
}

// inputEvents collects edge-triggered events for external collaborators: a
// haptic pulse on boost engagement and a reset notification.
func (s *Session) inputEvents(ctl input.ControlInput) []event.Event {
	var events []event.Event

	if ctl.Boost && !s.prevBoost {
		events = append(events, event.NewCraftEvent(
			event.BoostEngaged, s, uint64(s.Craft.ID), s.currentTick,
		))
	}
	s.prevBoost = ctl.Boost

	if ctl.ResetRequested {
		events = append(events, event.NewCraftEvent(
			event.CraftReset, s, uint64(s.Craft.ID), s.currentTick,
		))
	}
	return events
}

// publish delivers frame events with stateLock released. Handlers are
// expected to read telemetry (SpeedAbs, Snapshot, Tick), all of which take
// the lock.
func (s *Session) publish(events []event.Event) {
	for _, e := range events {
		s.EventBus.Publish(e)
	}
}

// Run drives the session from a ticker at the configured timestep until
// the context is cancelled. Cancellation simply stops scheduling frames;
// there is no mid-frame interruption.
func (s *Session) Run(ctx context.Context) {
	s.Start()
	defer s.Stop()

	step := s.Config.TimeStep
	if step <= 0 {
		step = 1.0 / 60.0
	}
	ticker := time.NewTicker(time.Duration(step * float64(time.Second)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Update()
		}
	}
}

// Tick returns the number of frames stepped so far.
func (s *Session) Tick() uint64 {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()
	return s.currentTick
}
