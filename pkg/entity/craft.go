// pkg/entity/craft.go
package entity

import (
	"fmt"
	"math"

	"github.com/opd-ai/go-waverider/pkg/input"
	"github.com/opd-ai/go-waverider/pkg/physics"
)

// Surface is the wave field as seen by the craft: height and normal
// queries at a horizontal position.
type Surface interface {
	HeightAt(x, z float64) float64
	NormalAt(x, z float64) physics.Vector3
}

// Tuning constants shared by every craft. These shape the feel of the
// update and are not exposed as configuration.
const (
	deadzone      = 0.1  // axis magnitude below which input is neutral
	throttleDecay = 0.95 // per-frame speed decay with no throttle input
	alignRate     = 3.0  // exponential rate toward the surface normal
	bankFactor    = 0.2  // roll added per unit angular velocity at full speed
	bobRate       = 2.0  // bob phase advance per time unit
	bobAmplitude  = 0.05 // constant-amplitude heave on top of buoyancy
)

// spawnPosition is where every craft starts and returns to on reset.
var spawnPosition = physics.Vector3{X: 0, Y: 5, Z: 0}

// Stats contains the tuning parameters for a watercraft. All values must
// be positive.
type Stats struct {
	MaxSpeed        float64
	Acceleration    float64
	TurnSpeed       float64
	BuoyancyForce   float64
	LinearDamping   float64
	AngularDamping  float64
	BoostMultiplier float64
	HullOffset      float64
}

// DefaultStats returns the standard watercraft tuning.
func DefaultStats() Stats {
	return Stats{
		MaxSpeed:        20,
		Acceleration:    10,
		TurnSpeed:       1.5,
		BuoyancyForce:   8,
		LinearDamping:   0.9,
		AngularDamping:  0.92,
		BoostMultiplier: 2,
		HullOffset:      1,
	}
}

// validate rejects non-positive or non-finite stats. A zero MaxSpeed in
// particular would divide the update by zero.
func (s Stats) validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"maxSpeed", s.MaxSpeed},
		{"acceleration", s.Acceleration},
		{"turnSpeed", s.TurnSpeed},
		{"buoyancyForce", s.BuoyancyForce},
		{"linearDamping", s.LinearDamping},
		{"angularDamping", s.AngularDamping},
		{"boostMultiplier", s.BoostMultiplier},
		{"hullOffset", s.HullOffset},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) || c.value <= 0 {
			return fmt.Errorf("craft stat %s must be positive and finite, got %f", c.name, c.value)
		}
	}
	return nil
}

// Watercraft is the player's boat. It owns its full reduced-6-DOF state
// and is mutated only by Update and Reset.
type Watercraft struct {
	ID    ID
	Stats Stats

	Position        physics.Vector3
	Velocity        physics.Vector3
	Yaw             float64
	Pitch           float64
	Roll            float64
	Speed           float64 // signed, forward-positive
	AngularVelocity float64

	// Smoothing accumulators.
	bobPhase      float64
	pitchSmoothed float64
	rollSmoothed  float64
}

// NewWatercraft creates a craft at the spawn pose. Stats are validated;
// an invalid MaxSpeed is a construction-time failure, never a runtime one.
func NewWatercraft(id ID, stats Stats) (*Watercraft, error) {
	if err := stats.validate(); err != nil {
		return nil, err
	}
	return &Watercraft{
		ID:       id,
		Stats:    stats,
		Position: spawnPosition,
	}, nil
}

// Update advances the craft by one frame. The steps run in a fixed order:
// throttle, boost, turning, yaw, horizontal translation, buoyancy,
// orientation alignment and composition, bobbing, and finally the reset
// override. dt is assumed already clamped by the frame driver; input axes
// are assumed pre-clamped to [-1, 1].
func (w *Watercraft) Update(dt float64, surface Surface, ctl input.ControlInput) {
	w.updateThrottle(dt, ctl)
	w.updateBoost(dt, ctl)
	w.updateTurning(dt, ctl)
	w.integrateYaw(dt)
	w.translateHorizontal(dt)
	w.applyBuoyancy(dt, surface)
	w.alignToSurface(dt, surface)
	w.composeOrientation()
	w.applyBobbing(dt)

	// Reset is a terminal override for the frame, not blended with the
	// integration above.
	if ctl.ResetRequested {
		w.Reset()
	}
}

// updateThrottle integrates the throttle axis into signed speed, or decays
// speed toward rest when the axis is inside the deadzone.
func (w *Watercraft) updateThrottle(dt float64, ctl input.ControlInput) {
	if math.Abs(ctl.MoveY) > deadzone {
		w.Speed += ctl.MoveY * w.Stats.Acceleration * dt
		w.Speed = physics.Clamp(w.Speed, -0.5*w.Stats.MaxSpeed, w.Stats.MaxSpeed)
	} else {
		w.Speed *= throttleDecay
	}
}

// updateBoost applies the boost override. It runs unconditionally after
// the throttle step and is not gated by the throttle deadzone; it can push
// speed past the normal ceiling up to 1.5x MaxSpeed.
func (w *Watercraft) updateBoost(dt float64, ctl input.ControlInput) {
	if !ctl.Boost {
		return
	}
	boosted := w.Speed + w.Stats.Acceleration*w.Stats.BoostMultiplier*dt
	w.Speed = math.Min(boosted, 1.5*w.Stats.MaxSpeed)
}

// updateTurning sets angular velocity from the turn axis, or decays it
// exponentially when the axis is inside the deadzone.
func (w *Watercraft) updateTurning(dt float64, ctl input.ControlInput) {
	if math.Abs(ctl.MoveX) > deadzone {
		w.AngularVelocity = -ctl.MoveX * w.Stats.TurnSpeed
	} else {
		w.AngularVelocity *= w.Stats.AngularDamping
	}
}

// integrateYaw turns the craft, scaled by forward speed so it cannot turn
// in place.
func (w *Watercraft) integrateYaw(dt float64) {
	w.Yaw += w.AngularVelocity * dt * (math.Abs(w.Speed) / w.Stats.MaxSpeed)
}

// translateHorizontal moves the craft along its heading.
func (w *Watercraft) translateHorizontal(dt float64) {
	dir := physics.FromYaw(w.Yaw)
	w.Velocity.X = dir.X * w.Speed
	w.Velocity.Z = dir.Z * w.Speed
	w.Position.X += w.Velocity.X * dt
	w.Position.Z += w.Velocity.Z * dt
}

// applyBuoyancy pulls the hull toward the local wave height with a spring
// impulse, then damps vertical velocity. The spring-then-damp order is
// load-bearing: it determines how the craft settles onto the surface.
func (w *Watercraft) applyBuoyancy(dt float64, surface Surface) {
	target := surface.HeightAt(w.Position.X, w.Position.Z) + w.Stats.HullOffset
	w.Velocity.Y += (target - w.Position.Y) * w.Stats.BuoyancyForce * dt
	w.Velocity.Y *= w.Stats.LinearDamping
	w.Position.Y += w.Velocity.Y * dt
}

// alignToSurface smooths pitch and roll targets derived from the local
// surface normal.
func (w *Watercraft) alignToSurface(dt float64, surface Surface) {
	n := surface.NormalAt(w.Position.X, w.Position.Z)
	targetPitch := math.Atan2(n.Z, n.Y)
	targetRoll := math.Atan2(-n.X, n.Y)
	w.pitchSmoothed += (targetPitch - w.pitchSmoothed) * dt * alignRate
	w.rollSmoothed += (targetRoll - w.rollSmoothed) * dt * alignRate
}

// composeOrientation blends the smoothed surface alignment with a
// speed-dependent factor and adds banking roll while turning.
func (w *Watercraft) composeOrientation() {
	speedFactor := math.Abs(w.Speed) / w.Stats.MaxSpeed
	blend := 0.3 + 0.7*speedFactor
	w.Pitch = w.pitchSmoothed * blend
	w.Roll = w.rollSmoothed*blend + w.AngularVelocity*bankFactor*speedFactor
}

// applyBobbing adds a small constant-amplitude heave independent of
// buoyancy.
func (w *Watercraft) applyBobbing(dt float64) {
	w.bobPhase += dt * bobRate
	w.Position.Y += math.Sin(w.bobPhase) * bobAmplitude
}

// Reset returns the craft to the spawn pose with zero motion. Calling it
// twice yields the same state as calling it once.
func (w *Watercraft) Reset() {
	w.Position = spawnPosition
	w.Velocity = physics.Vector3{}
	w.Yaw = 0
	w.Pitch = 0
	w.Roll = 0
	w.Speed = 0
	w.AngularVelocity = 0
	w.bobPhase = 0
	w.pitchSmoothed = 0
	w.rollSmoothed = 0
}

// GetPose returns the craft's renderable transform.
func (w *Watercraft) GetPose() Pose {
	return Pose{
		Position: w.Position,
		Yaw:      w.Yaw,
		Pitch:    w.Pitch,
		Roll:     w.Roll,
	}
}
