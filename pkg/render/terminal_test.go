// pkg/render/terminal_test.go
package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/opd-ai/go-waverider/pkg/engine"
	"github.com/opd-ai/go-waverider/pkg/physics"
	"github.com/opd-ai/go-waverider/pkg/wave"
)

func newTestField(t *testing.T) *wave.Field {
	t.Helper()
	field, err := wave.NewField(wave.DefaultParameters(), wave.TierFull)
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}
	return field
}

func TestTerminalRenderer_CraftGlyphAtCenter(t *testing.T) {
	r := NewTerminalRenderer(21, 11, 2.0)
	r.SetCenter(0, 0)
	r.Clear()

	r.RenderCraft(engine.CraftState{Position: physics.Vector3{}, Yaw: 0})

	if got := r.buffer[5][10]; got != 'v' {
		t.Errorf("center cell = %q, want 'v'", got)
	}
}

func TestTerminalRenderer_HeadingGlyphs(t *testing.T) {
	tests := []struct {
		name string
		yaw  float64
		want rune
	}{
		{"forward", 0, 'v'},
		{"right", math.Pi / 2, '>'},
		{"back", math.Pi, '^'},
		{"left", -math.Pi / 2, '<'},
		{"wrapped", 2 * math.Pi, 'v'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := glyphForHeading(tt.yaw); got != tt.want {
				t.Errorf("glyphForHeading(%v) = %q, want %q", tt.yaw, got, tt.want)
			}
		})
	}
}

func TestTerminalRenderer_OffscreenCraftIgnored(t *testing.T) {
	r := NewTerminalRenderer(11, 11, 1.0)
	r.Clear()

	r.RenderCraft(engine.CraftState{Position: physics.Vector3{X: 500, Z: 500}})

	for y := range r.buffer {
		for x := range r.buffer[y] {
			if r.buffer[y][x] != ' ' {
				t.Fatalf("cell (%d,%d) = %q, want blank", x, y, r.buffer[y][x])
			}
		}
	}
}

func TestTerminalRenderer_OceanPassFillsBuffer(t *testing.T) {
	field := newTestField(t)
	r := NewTerminalRenderer(15, 9, 3.0)
	r.Clear()

	r.RenderOcean(field, engine.FrameState{})

	distinct := map[rune]bool{}
	for y := range r.buffer {
		for x := range r.buffer[y] {
			distinct[r.buffer[y][x]] = true
		}
	}
	if len(distinct) < 2 {
		t.Errorf("ocean pass produced %d distinct glyphs, want at least 2", len(distinct))
	}
}

func TestTerminalRenderer_PresentWritesFrame(t *testing.T) {
	field := newTestField(t)
	r := NewTerminalRenderer(10, 4, 2.0)
	var out bytes.Buffer
	r.SetOutput(&out)

	r.Clear()
	r.RenderOcean(field, engine.FrameState{Tick: 7, WaveHeight: 1.25})
	r.RenderCraft(engine.CraftState{})
	r.Present()

	text := out.String()
	if !strings.Contains(text, "+----------+") {
		t.Errorf("output missing border: %q", text)
	}
	if !strings.Contains(text, "tick 7") {
		t.Errorf("output missing telemetry line: %q", text)
	}
}

func TestGlyphForHeight_ClampsRange(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		want   rune
	}{
		{"deep trough", -100, heightGlyphs[0]},
		{"high crest", 100, heightGlyphs[len(heightGlyphs)-1]},
		{"flat", 0, heightGlyphs[len(heightGlyphs)/2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := glyphForHeight(tt.height, 4.0); got != tt.want {
				t.Errorf("glyphForHeight(%v, 4) = %q, want %q", tt.height, got, tt.want)
			}
		})
	}
}
