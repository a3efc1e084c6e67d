// pkg/render/engo/assets.go
package engo

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo/common"
)

// AssetManager builds and holds the textures the scene draws with. All
// sprites are generated in memory, so no files ship with the binary.
type AssetManager struct {
	craftSprite common.Drawable
	tileSprite  common.Drawable
	pulseSprite common.Drawable
}

// NewAssetManager creates an empty asset manager. LoadAssets must run
// inside an active GL context.
func NewAssetManager() *AssetManager {
	return &AssetManager{}
}

// LoadAssets generates the craft, ocean tile, and boost pulse sprites.
func (am *AssetManager) LoadAssets() error {
	am.craftSprite = am.createSprite(16, 16, craftPattern())
	am.tileSprite = am.createSprite(8, 8, tilePattern())
	am.pulseSprite = am.createSprite(24, 24, pulsePattern())
	return nil
}

// craftPattern is an arrow pointing down the +Y screen axis, matching a
// craft yaw of zero before rotation is applied.
func craftPattern() [][]int {
	return [][]int{
		{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 0},
		{1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1},
		{1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1},
		{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	}
}

// tilePattern is a solid square. Ocean tiles are tinted per frame, so the
// base texture is plain white.
func tilePattern() [][]int {
	pattern := make([][]int, 8)
	for i := range pattern {
		pattern[i] = make([]int, 8)
		for j := range pattern[i] {
			pattern[i][j] = 1
		}
	}
	return pattern
}

// pulsePattern is a hollow ring shown briefly when boost engages.
func pulsePattern() [][]int {
	const size = 24
	pattern := make([][]int, size)
	for y := range pattern {
		pattern[y] = make([]int, size)
		for x := range pattern[y] {
			dx := float64(x) - size/2
			dy := float64(y) - size/2
			r2 := dx*dx + dy*dy
			if r2 >= 64 && r2 <= 121 {
				pattern[y][x] = 1
			}
		}
	}
	return pattern
}

// createSprite builds a texture from a 2D pixel pattern.
func (am *AssetManager) createSprite(width, height int, pattern [][]int) common.Drawable {
	img := am.createBaseImage(width, height)
	am.drawPatternOnImage(img, pattern, width, height)
	return am.convertToEngoTexture(img)
}

// createBaseImage creates a transparent RGBA image with the specified dimensions.
func (am *AssetManager) createBaseImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	return img
}

// drawPatternOnImage draws a 2D pixel pattern onto the provided RGBA image.
func (am *AssetManager) drawPatternOnImage(img *image.RGBA, pattern [][]int, width, height int) {
	for y, row := range pattern {
		if y >= height {
			break
		}
		for x, pixel := range row {
			if x >= width {
				break
			}
			if pixel == 1 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
}

// convertToEngoTexture converts an RGBA image to an Engo-compatible texture.
func (am *AssetManager) convertToEngoTexture(img *image.RGBA) common.Drawable {
	bounds := img.Bounds()
	nrgbaImg := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			nrgbaImg.Set(x, y, img.At(x, y))
		}
	}

	texture := common.NewImageObject(nrgbaImg)
	return common.NewTextureSingle(texture)
}

// GetCraftSprite returns the watercraft texture.
func (am *AssetManager) GetCraftSprite() common.Drawable {
	return am.craftSprite
}

// GetTileSprite returns the ocean tile texture.
func (am *AssetManager) GetTileSprite() common.Drawable {
	return am.tileSprite
}

// GetPulseSprite returns the boost pulse texture.
func (am *AssetManager) GetPulseSprite() common.Drawable {
	return am.pulseSprite
}
