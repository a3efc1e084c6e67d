// pkg/render/renderer.go
package render

import (
	"github.com/opd-ai/go-waverider/pkg/engine"
	"github.com/opd-ai/go-waverider/pkg/logging"
	"github.com/opd-ai/go-waverider/pkg/wave"
)

// Renderer is the surface the simulation publishes each frame to. The
// ocean pass receives the wave field itself so backends can sample
// exactly as many vertices as their fidelity settings call for; the craft
// and camera passes receive read-only state snapshots.
type Renderer interface {
	Clear()
	RenderOcean(field *wave.Field, frame engine.FrameState)
	RenderCraft(craft engine.CraftState)
	RenderCamera(cam engine.CameraState)
	Present()
}

// NullRenderer discards every frame, logging at debug level. It stands in
// wherever a host runs headless.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &NullRenderer{logger: logger.WithComponent("render.null")}
}

// Clear implements Renderer.
func (r *NullRenderer) Clear() {}

// RenderOcean implements Renderer.
func (r *NullRenderer) RenderOcean(field *wave.Field, frame engine.FrameState) {
	r.logger.Debug("ocean pass", "wave_time", frame.WaveTime)
}

// RenderCraft implements Renderer.
func (r *NullRenderer) RenderCraft(craft engine.CraftState) {
	r.logger.Debug("craft pass",
		"x", craft.Position.X,
		"y", craft.Position.Y,
		"z", craft.Position.Z,
		"yaw", craft.Yaw,
	)
}

// RenderCamera implements Renderer.
func (r *NullRenderer) RenderCamera(cam engine.CameraState) {
	r.logger.Debug("camera pass", "x", cam.Position.X, "z", cam.Position.Z)
}

// Present implements Renderer.
func (r *NullRenderer) Present() {}

// DrawFrame pushes one complete frame from a session through a renderer
// in the fixed order ocean, craft, camera.
func DrawFrame(r Renderer, session *engine.Session) {
	frame := session.Snapshot()
	r.Clear()
	r.RenderOcean(session.Field, frame)
	r.RenderCraft(frame.Craft)
	r.RenderCamera(frame.Camera)
	r.Present()
}
