// pkg/render/terminal.go
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/opd-ai/go-waverider/pkg/engine"
	"github.com/opd-ai/go-waverider/pkg/wave"
)

// heightGlyphs maps normalized wave height, trough to crest, onto ASCII
// shading. Index 0 is the deepest trough.
var heightGlyphs = []rune{' ', '.', '-', '~', '=', '^'}

// headingGlyphs is indexed by the craft yaw quantized into four sectors:
// +Z, +X, -Z, -X.
var headingGlyphs = []rune{'v', '>', '^', '<'}

// TerminalRenderer is a top-down ASCII view of the ocean around the craft.
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64
	centerX   float64
	centerZ   float64
	out       io.Writer
	lastFrame engine.FrameState
}

// NewTerminalRenderer creates a terminal renderer with the given character
// dimensions. scale is world units per character cell.
func NewTerminalRenderer(width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
		out:    os.Stdout,
	}
}

// SetOutput redirects Present away from stdout.
func (r *TerminalRenderer) SetOutput(w io.Writer) {
	r.out = w
}

// SetCenter moves the view center to the given world position.
func (r *TerminalRenderer) SetCenter(x, z float64) {
	r.centerX = x
	r.centerZ = z
}

// worldToScreen converts world XZ coordinates to buffer coordinates.
func (r *TerminalRenderer) worldToScreen(x, z float64) (int, int) {
	screenX := int((x-r.centerX)/r.scale + float64(r.width)/2)
	screenY := int((z-r.centerZ)/r.scale + float64(r.height)/2)
	return screenX, screenY
}

// Clear implements Renderer.
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// RenderOcean implements Renderer. Each cell samples the field at its
// world position and is shaded by height relative to the swell amplitude.
func (r *TerminalRenderer) RenderOcean(field *wave.Field, frame engine.FrameState) {
	r.lastFrame = frame
	limit := field.Params().SwellAmplitude + field.Params().WaveAmplitude
	if limit <= 0 {
		limit = 1
	}

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			wx := r.centerX + (float64(x)-float64(r.width)/2)*r.scale
			wz := r.centerZ + (float64(y)-float64(r.height)/2)*r.scale
			r.buffer[y][x] = glyphForHeight(field.HeightAt(wx, wz), limit)
		}
	}
}

// RenderCraft implements Renderer.
func (r *TerminalRenderer) RenderCraft(craft engine.CraftState) {
	x, y := r.worldToScreen(craft.Position.X, craft.Position.Z)
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = glyphForHeading(craft.Yaw)
	}
}

// RenderCamera implements Renderer. The camera is drawn only when it falls
// inside the visible window.
func (r *TerminalRenderer) RenderCamera(cam engine.CameraState) {
	x, y := r.worldToScreen(cam.Position.X, cam.Position.Z)
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = '*'
	}
}

// Present implements Renderer.
func (r *TerminalRenderer) Present() {
	var sb strings.Builder

	// Home the cursor and clear the terminal.
	sb.WriteString("\033[H\033[2J")
	sb.WriteString("+" + strings.Repeat("-", r.width) + "+\n")
	for y := range r.buffer {
		sb.WriteString("|")
		sb.WriteString(string(r.buffer[y]))
		sb.WriteString("|\n")
	}
	sb.WriteString("+" + strings.Repeat("-", r.width) + "+\n")
	sb.WriteString(fmt.Sprintf("tick %d  speed %.2f  height %.2f\n",
		r.lastFrame.Tick, math.Abs(r.lastFrame.Craft.Speed), r.lastFrame.WaveHeight))

	fmt.Fprint(r.out, sb.String())
}

// glyphForHeight shades a sampled wave height against the field's
// amplitude ceiling.
func glyphForHeight(height, limit float64) rune {
	normalized := (height/limit + 1) / 2
	idx := int(normalized * float64(len(heightGlyphs)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(heightGlyphs) {
		idx = len(heightGlyphs) - 1
	}
	return heightGlyphs[idx]
}

// glyphForHeading quantizes yaw into four heading sectors.
func glyphForHeading(yaw float64) rune {
	sector := int(math.Round(yaw/(math.Pi/2))) % len(headingGlyphs)
	if sector < 0 {
		sector += len(headingGlyphs)
	}
	return headingGlyphs[sector]
}
