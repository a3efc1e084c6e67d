// Package camera implements the trailing follow rig: an orbiting offset
// behind the craft with fixed-fraction positional smoothing.
package camera

import (
	"math"

	"github.com/opd-ai/go-waverider/pkg/input"
	"github.com/opd-ai/go-waverider/pkg/physics"
)

const (
	orbitGain     = 0.05 // orbit angle advance per unit look-X per frame
	heightGain    = 5.0  // orbit height per unit look-Y
	orbitDistance = 12.0 // horizontal distance behind the craft
	baseHeight    = 6.0  // vertical offset before look-Y adjustment
	smoothing     = 0.15 // per-call lerp fraction, deliberately not dt-scaled
)

// Rig owns the camera's orbit state and its smoothed position. The
// position never jumps discontinuously except through Snap, which the
// session invokes on craft reset.
type Rig struct {
	OrbitAngle  float64
	OrbitHeight float64
	Position    physics.Vector3
	LookTarget  physics.Vector3
}

// NewRig creates a rig already snapped behind the given pose so the first
// rendered frame does not sweep in from the origin.
func NewRig(craftPos physics.Vector3, craftYaw float64) *Rig {
	r := &Rig{}
	r.Snap(craftPos, craftYaw)
	return r
}

// offset computes the craft-relative camera offset for the current orbit
// state.
func (r *Rig) offset(craftYaw float64) physics.Vector3 {
	angle := craftYaw + r.OrbitAngle
	return physics.Vector3{
		X: math.Sin(angle) * orbitDistance,
		Y: baseHeight + r.OrbitHeight,
		Z: math.Cos(angle) * orbitDistance,
	}
}

// Update advances the orbit from look input and eases the camera toward
// its target by a fixed fraction per call. The fraction is intentionally
// not normalized by dt: the source tuning smooths per frame, and scaling
// it would change the feel under framerate variance.
func (r *Rig) Update(craftPos physics.Vector3, craftYaw float64, ctl input.ControlInput) {
	r.OrbitAngle += ctl.LookX * orbitGain
	r.OrbitHeight = ctl.LookY * heightGain

	target := craftPos.Add(r.offset(craftYaw))
	r.Position = r.Position.Lerp(target, smoothing)
	r.LookTarget = craftPos
}

// Snap moves the camera to its target immediately, bypassing smoothing.
// Used when the craft teleports on reset.
func (r *Rig) Snap(craftPos physics.Vector3, craftYaw float64) {
	r.Position = craftPos.Add(r.offset(craftYaw))
	r.LookTarget = craftPos
}
