// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-waverider/pkg/engine"
	"github.com/opd-ai/go-waverider/pkg/wave"
)

// pixelsPerUnit scales world distance to screen distance.
const pixelsPerUnit = 8.0

// tileEntity is one cell of the ocean grid with its live components.
type tileEntity struct {
	basic  ecs.BasicEntity
	render *common.RenderComponent
	space  *common.SpaceComponent
}

// SceneRenderer draws the simulation as a top-down view: an ocean tile
// grid tinted by sampled wave height, the craft sprite rotated to its yaw,
// and the chase camera's ground position. It implements render.Renderer.
type SceneRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem
	assets       *AssetManager

	segments int
	extent   float64
	shadows  bool

	tiles       []tileEntity
	craft       *tileEntity
	craftShadow *tileEntity
	cameraDot   *tileEntity
	boostPulse  *tileEntity
	pulseTicks  int
	viewCenter  engine.CameraState
}

// NewSceneRenderer creates a renderer over the given world. segments and
// extent control the ocean sampling grid around the craft; shadows enables
// the craft's drop shadow.
func NewSceneRenderer(world *ecs.World, segments int, extent float64, shadows bool) *SceneRenderer {
	if segments < 1 {
		segments = 1
	}
	return &SceneRenderer{
		world:    world,
		assets:   NewAssetManager(),
		segments: segments,
		extent:   extent,
		shadows:  shadows,
	}
}

// Initialize loads assets and registers the render system. Must run inside
// the scene's Setup, where a GL context exists.
func (r *SceneRenderer) Initialize() error {
	r.renderSystem = &common.RenderSystem{}
	r.world.AddSystem(r.renderSystem)

	if err := r.assets.LoadAssets(); err != nil {
		return err
	}

	r.createTileGrid()
	if r.shadows {
		r.craftShadow = r.newSpriteEntity(r.assets.GetCraftSprite(), 16, 16, 8)
		r.craftShadow.render.Color = color.RGBA{0, 0, 0, 90}
	}
	r.craft = r.newSpriteEntity(r.assets.GetCraftSprite(), 16, 16, 10)
	r.cameraDot = r.newSpriteEntity(r.assets.GetTileSprite(), 4, 4, 9)
	r.cameraDot.render.Color = color.RGBA{255, 255, 255, 180}
	r.boostPulse = r.newSpriteEntity(r.assets.GetPulseSprite(), 24, 24, 11)
	r.boostPulse.render.Hidden = true
	return nil
}

// FlashPulse shows the boost ring around the craft for a short burst of
// frames. Wired to the boost-engaged event by the scene.
func (r *SceneRenderer) FlashPulse() {
	r.pulseTicks = 30
}

// Clear implements render.Renderer. Engo clears the backbuffer itself.
func (r *SceneRenderer) Clear() {}

// RenderOcean implements render.Renderer. The grid is sampled centered on
// the craft so the visible patch follows it across the field.
func (r *SceneRenderer) RenderOcean(field *wave.Field, frame engine.FrameState) {
	r.viewCenter = frame.Camera

	limit := field.Params().SwellAmplitude + field.Params().WaveAmplitude
	if limit <= 0 {
		limit = 1
	}

	samples := field.SampleGrid(frame.Craft.Position.X, frame.Craft.Position.Z, r.extent, r.segments)
	tileSize := float32(2 * r.extent / float64(r.segments) * pixelsPerUnit)

	for i := range r.tiles {
		if i >= len(samples) {
			break
		}
		s := samples[i].Position
		tile := &r.tiles[i]

		pos := r.worldToScreen(s.X, s.Z)
		tile.space.Position = engo.Point{X: pos.X - tileSize/2, Y: pos.Y - tileSize/2}
		tile.space.Width = tileSize
		tile.space.Height = tileSize
		tile.render.Color = heightColor(s.Y, limit)
	}
}

// RenderCraft implements render.Renderer. The drop shadow (when enabled)
// trails the sprite by the craft's height over the water; the boost ring
// rides the craft while its flash is live.
func (r *SceneRenderer) RenderCraft(craft engine.CraftState) {
	pos := r.worldToScreen(craft.Position.X, craft.Position.Z)
	rotation := float32(craft.Yaw * 180 / math.Pi)

	r.craft.space.Position = engo.Point{X: pos.X - 8, Y: pos.Y - 8}
	r.craft.space.Rotation = rotation

	if r.craftShadow != nil {
		drop := float32(craft.Position.Y) * 0.6
		r.craftShadow.space.Position = engo.Point{X: pos.X - 8 + drop, Y: pos.Y - 8 + drop}
		r.craftShadow.space.Rotation = rotation
	}

	if r.pulseTicks > 0 {
		r.pulseTicks--
		r.boostPulse.render.Hidden = false
		r.boostPulse.space.Position = engo.Point{X: pos.X - 12, Y: pos.Y - 12}
	} else {
		r.boostPulse.render.Hidden = true
	}
}

// RenderCamera implements render.Renderer. The dot marks where the chase
// camera sits over the water.
func (r *SceneRenderer) RenderCamera(cam engine.CameraState) {
	pos := r.worldToScreen(cam.Position.X, cam.Position.Z)
	r.cameraDot.space.Position = engo.Point{X: pos.X - 2, Y: pos.Y - 2}
}

// Present implements render.Renderer. Engo presents through its own loop.
func (r *SceneRenderer) Present() {}

// createTileGrid allocates the fixed pool of ocean tiles.
func (r *SceneRenderer) createTileGrid() {
	count := (r.segments + 1) * (r.segments + 1)
	r.tiles = make([]tileEntity, count)

	for i := range r.tiles {
		tile := &r.tiles[i]
		tile.basic = ecs.NewBasic()
		tile.render = &common.RenderComponent{
			Drawable: r.assets.GetTileSprite(),
			Color:    color.RGBA{0, 80, 160, 255},
		}
		tile.render.SetZIndex(0)
		tile.space = &common.SpaceComponent{}
		r.renderSystem.Add(&tile.basic, tile.render, tile.space)
	}
}

// newSpriteEntity adds one sprite entity to the render system.
func (r *SceneRenderer) newSpriteEntity(drawable common.Drawable, w, h float32, z float32) *tileEntity {
	e := &tileEntity{
		basic: ecs.NewBasic(),
		render: &common.RenderComponent{
			Drawable: drawable,
			Color:    color.RGBA{255, 255, 255, 255},
		},
		space: &common.SpaceComponent{Width: w, Height: h},
	}
	e.render.SetZIndex(z)
	r.renderSystem.Add(&e.basic, e.render, e.space)
	return e
}

// worldToScreen projects world XZ coordinates into the window, keeping the
// chase camera's ground position at the window center.
func (r *SceneRenderer) worldToScreen(x, z float64) engo.Point {
	return engo.Point{
		X: float32(x-r.viewCenter.Position.X)*pixelsPerUnit + engo.GameWidth()/2,
		Y: float32(z-r.viewCenter.Position.Z)*pixelsPerUnit + engo.GameHeight()/2,
	}
}

// heightColor tints a tile from deep blue at the trough to pale cyan at
// the crest.
func heightColor(height, limit float64) color.RGBA {
	normalized := (height/limit + 1) / 2
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return color.RGBA{
		R: uint8(20 + normalized*120),
		G: uint8(70 + normalized*140),
		B: uint8(140 + normalized*115),
		A: 255,
	}
}
