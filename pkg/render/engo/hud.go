// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-waverider/pkg/engine"
)

// HUDSystem draws the pilot telemetry overlay: speed, heading, wave height
// under the hull, and a boost indicator.
type HUDSystem struct {
	font *common.Font

	telemetry  *tileEntity
	boostLabel *tileEntity

	frame      engine.FrameState
	boostTicks int

	hudColor   color.Color
	boostColor color.Color
}

// NewHUDSystem creates the HUD. The font is loaded during scene setup.
func NewHUDSystem() *HUDSystem {
	return &HUDSystem{
		hudColor:   color.RGBA{255, 255, 255, 255},
		boostColor: color.RGBA{255, 200, 40, 255},
	}
}

// Add satisfies the ecs.System interface.
func (hud *HUDSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {}

// Initialize loads the HUD font and creates the text entities.
func (hud *HUDSystem) Initialize(renderSystem *common.RenderSystem) error {
	hud.font = &common.Font{
		URL:  "go.ttf",
		FG:   hud.hudColor,
		Size: 14,
	}
	if err := hud.font.CreatePreloaded(); err != nil {
		return fmt.Errorf("loading HUD font: %w", err)
	}

	hud.telemetry = newTextEntity(renderSystem, hud.font, 10, 10, hud.hudColor)
	hud.boostLabel = newTextEntity(renderSystem, hud.font, 10, 30, hud.boostColor)
	return nil
}

// UpdateFrame feeds the latest simulation snapshot into the HUD.
func (hud *HUDSystem) UpdateFrame(frame engine.FrameState) {
	hud.frame = frame
}

// FlashBoost lights the boost indicator for a short burst of frames.
func (hud *HUDSystem) FlashBoost() {
	hud.boostTicks = 30
}

// Update satisfies the ecs.System interface and redraws the overlay text.
func (hud *HUDSystem) Update(dt float32) {
	if hud.telemetry == nil {
		return
	}

	hud.telemetry.render.Drawable = common.Text{
		Font: hud.font,
		Text: telemetryText(hud.frame),
	}

	boostText := ""
	if hud.boostTicks > 0 {
		hud.boostTicks--
		boostText = "BOOST"
	}
	hud.boostLabel.render.Drawable = common.Text{
		Font: hud.font,
		Text: boostText,
	}
}

// telemetryText formats the overlay line. Speed is displayed as a
// magnitude; reversing reads the same as moving forward.
func telemetryText(frame engine.FrameState) string {
	return fmt.Sprintf("speed %5.1f  yaw %5.2f  wave %5.2f  tick %d",
		math.Abs(frame.Craft.Speed), frame.Craft.Yaw, frame.WaveHeight, frame.Tick)
}

// newTextEntity creates a screen-space text entity pinned to the camera.
func newTextEntity(renderSystem *common.RenderSystem, font *common.Font, x, y float32, c color.Color) *tileEntity {
	e := &tileEntity{
		basic: ecs.NewBasic(),
		render: &common.RenderComponent{
			Drawable: common.Text{Font: font, Text: ""},
			Color:    c,
		},
		space: &common.SpaceComponent{
			Position: engo.Point{X: x, Y: y},
			Width:    400,
			Height:   20,
		},
	}
	e.render.SetZIndex(100)
	e.render.SetShader(common.HUDShader)
	renderSystem.Add(&e.basic, e.render, e.space)
	return e
}
