package engo

import (
	"strings"
	"testing"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-waverider/pkg/engine"
	"github.com/opd-ai/go-waverider/pkg/physics"
)

// newBareEntity builds a sprite entity without a render system, so
// RenderCraft paths can run outside a GL context.
func newBareEntity() *tileEntity {
	return &tileEntity{
		basic:  ecs.NewBasic(),
		render: &common.RenderComponent{},
		space:  &common.SpaceComponent{},
	}
}

func TestNewAssetManager(t *testing.T) {
	am := NewAssetManager()

	if am == nil {
		t.Fatal("NewAssetManager() returned nil")
	}

	// Sprites are created by LoadAssets, which needs a GL context.
	if am.GetCraftSprite() != nil {
		t.Error("craft sprite should be nil before LoadAssets")
	}
	if am.GetTileSprite() != nil {
		t.Error("tile sprite should be nil before LoadAssets")
	}
}

func TestCraftPattern_Dimensions(t *testing.T) {
	pattern := craftPattern()

	if len(pattern) != 16 {
		t.Fatalf("pattern height = %d, want 16", len(pattern))
	}
	for i, row := range pattern {
		if len(row) != 16 {
			t.Errorf("row %d width = %d, want 16", i, len(row))
		}
	}
}

func TestPulsePattern_IsRing(t *testing.T) {
	pattern := pulsePattern()

	// Center and far corner must both be empty; only the ring band is set.
	if pattern[12][12] != 0 {
		t.Error("ring center should be empty")
	}
	if pattern[0][0] != 0 {
		t.Error("ring corner should be empty")
	}
	if pattern[12][3] != 1 {
		t.Error("ring band should be filled")
	}
}

func TestHeightColor_Range(t *testing.T) {
	tests := []struct {
		name   string
		height float64
	}{
		{"trough", -4},
		{"flat", 0},
		{"crest", 4},
		{"below trough", -100},
		{"above crest", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := heightColor(tt.height, 4)
			if c.A != 255 {
				t.Errorf("alpha = %d, want 255", c.A)
			}
		})
	}

	low := heightColor(-4, 4)
	high := heightColor(4, 4)
	if low.R >= high.R || low.G >= high.G {
		t.Errorf("crest should be brighter than trough: %v vs %v", low, high)
	}
}

func TestNewSceneRenderer_ClampsSegments(t *testing.T) {
	r := NewSceneRenderer(nil, 0, 50, false)

	if r.segments != 1 {
		t.Errorf("segments = %d, want clamp to 1", r.segments)
	}
	if r.extent != 50 {
		t.Errorf("extent = %v, want 50", r.extent)
	}
}

func TestSceneRenderer_BoostPulseFollowsFlash(t *testing.T) {
	r := NewSceneRenderer(nil, 4, 50, false)
	r.craft = newBareEntity()
	r.boostPulse = newBareEntity()
	r.boostPulse.render.Hidden = true

	r.RenderCraft(engine.CraftState{})
	if !r.boostPulse.render.Hidden {
		t.Error("pulse visible without a flash")
	}

	r.FlashPulse()
	r.RenderCraft(engine.CraftState{})
	if r.boostPulse.render.Hidden {
		t.Error("pulse hidden during an active flash")
	}

	// The flash lasts 30 frames; well past that it must be hidden again.
	for i := 0; i < 40; i++ {
		r.RenderCraft(engine.CraftState{})
	}
	if !r.boostPulse.render.Hidden {
		t.Error("pulse still visible after the flash expired")
	}
}

func TestSceneRenderer_ShadowTrailsCraft(t *testing.T) {
	r := NewSceneRenderer(nil, 4, 50, true)
	r.craft = newBareEntity()
	r.craftShadow = newBareEntity()
	r.boostPulse = newBareEntity()

	r.RenderCraft(engine.CraftState{Position: physics.Vector3{Y: 5}, Yaw: 1})

	if r.craftShadow.space.Position == r.craft.space.Position {
		t.Error("shadow should be offset from the craft by its height")
	}
	if r.craftShadow.space.Rotation != r.craft.space.Rotation {
		t.Errorf("shadow rotation = %v, want craft rotation %v",
			r.craftShadow.space.Rotation, r.craft.space.Rotation)
	}
}

func TestTelemetryText_SpeedMagnitude(t *testing.T) {
	text := telemetryText(engine.FrameState{
		Craft: engine.CraftState{Speed: -7.5},
	})

	if strings.Contains(text, "-7.5") {
		t.Errorf("telemetry shows signed speed: %q", text)
	}
	if !strings.Contains(text, "7.5") {
		t.Errorf("telemetry missing speed magnitude: %q", text)
	}
}

func TestNewKeyboardProvider(t *testing.T) {
	// Poll needs a running engo window; construction must not.
	if NewKeyboardProvider() == nil {
		t.Fatal("NewKeyboardProvider() returned nil")
	}
}
