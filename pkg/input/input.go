// Package input defines the control contract between input devices and
// the simulation core. Device handlers produce one immutable ControlInput
// snapshot per frame; the core only ever reads it, never reaches back into
// device state.
package input

import "github.com/opd-ai/go-waverider/pkg/physics"

// ControlInput is the normalized per-frame control record. Axis values are
// in [-1, 1]; Boost and ResetRequested are momentary flags, true only while
// asserted.
type ControlInput struct {
	MoveX float64 // turn axis, positive = starboard
	MoveY float64 // throttle axis, positive = forward
	LookX float64 // camera orbit axis
	LookY float64 // camera height axis

	Boost          bool
	ResetRequested bool
}

// Clamped returns a copy with all axes limited to [-1, 1]. Providers call
// this before publishing a snapshot so the core can assume the range.
func (c ControlInput) Clamped() ControlInput {
	c.MoveX = physics.Clamp(c.MoveX, -1, 1)
	c.MoveY = physics.Clamp(c.MoveY, -1, 1)
	c.LookX = physics.Clamp(c.LookX, -1, 1)
	c.LookY = physics.Clamp(c.LookY, -1, 1)
	return c
}

// Provider supplies one control snapshot per frame.
type Provider interface {
	Poll() ControlInput
}

// Neutral is a Provider that always reports released controls.
type Neutral struct{}

// Poll implements Provider.
func (Neutral) Poll() ControlInput {
	return ControlInput{}
}

// Script replays a fixed sequence of control snapshots, one per Poll,
// holding the last entry once exhausted. Useful for headless runs and
// tests.
type Script struct {
	Frames []ControlInput
	cursor int
}

// Poll implements Provider.
func (s *Script) Poll() ControlInput {
	if len(s.Frames) == 0 {
		return ControlInput{}
	}
	frame := s.Frames[s.cursor]
	if s.cursor < len(s.Frames)-1 {
		s.cursor++
	}
	return frame.Clamped()
}
