// pkg/engine/telemetry.go
package engine

import (
	"math"

	"github.com/opd-ai/go-waverider/pkg/physics"
)

// CraftState is a read-only snapshot of the craft transform for
// rendering and telemetry.
type CraftState struct {
	Position physics.Vector3
	Yaw      float64
	Pitch    float64
	Roll     float64
	Speed    float64
}

// CameraState is a read-only snapshot of the active viewpoint.
type CameraState struct {
	Position   physics.Vector3
	LookTarget physics.Vector3
}

// FrameState is the complete per-frame output published to the rendering
// and telemetry collaborators. Nothing in it writes back into the core.
type FrameState struct {
	Tick       uint64
	WaveTime   float64
	Craft      CraftState
	Camera     CameraState
	WaveHeight float64 // surface height under the craft
}

// SpeedAbs returns the craft's current speed magnitude for display.
func (s *Session) SpeedAbs() float64 {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()
	return math.Abs(s.Craft.Speed)
}

// WaveHeightAtCraft returns the surface height directly beneath the
// craft for display.
func (s *Session) WaveHeightAtCraft() float64 {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()
	return s.Field.HeightAt(s.Craft.Position.X, s.Craft.Position.Z)
}

// Snapshot returns the current frame state.
func (s *Session) Snapshot() FrameState {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()

	return FrameState{
		Tick:     s.currentTick,
		WaveTime: s.Field.Time(),
		Craft: CraftState{
			Position: s.Craft.Position,
			Yaw:      s.Craft.Yaw,
			Pitch:    s.Craft.Pitch,
			Roll:     s.Craft.Roll,
			Speed:    s.Craft.Speed,
		},
		Camera: CameraState{
			Position:   s.Camera.Position,
			LookTarget: s.Camera.LookTarget,
		},
		WaveHeight: s.Field.HeightAt(s.Craft.Position.X, s.Craft.Position.Z),
	}
}
