// Package wave implements the procedural ocean surface: a closed-form
// height field animated over time, with finite-difference surface normals.
// The same HeightAt function backs both the physics queries and the
// renderer's mesh deformation so the craft visibly rests on the drawn
// surface.
package wave

import (
	"fmt"
	"math"

	"github.com/opd-ai/go-waverider/pkg/physics"
)

// QualityTier selects which procedural terms are evaluated.
type QualityTier int

const (
	// TierFull evaluates the swell plus all higher-frequency detail terms.
	TierFull QualityTier = iota
	// TierReduced evaluates only the two large-scale swell terms.
	TierReduced
)

// String returns the tier name for logs and config files.
func (q QualityTier) String() string {
	switch q {
	case TierFull:
		return "full"
	case TierReduced:
		return "reduced"
	default:
		return "unknown"
	}
}

// ParseQualityTier converts a config string to a QualityTier.
func ParseQualityTier(s string) (QualityTier, error) {
	switch s {
	case "full", "":
		return TierFull, nil
	case "reduced":
		return TierReduced, nil
	default:
		return TierFull, fmt.Errorf("unknown quality tier %q", s)
	}
}

// waveSpeed scales elapsed real time into simulation time.
const waveSpeed = 0.5

// normalEpsilon is the finite-difference step for surface normals.
const normalEpsilon = 0.1

// Parameters holds the tunable wave field coefficients. Zero amplitudes
// are legal and produce a flat calm surface.
type Parameters struct {
	SwellAmplitude float64
	SwellFrequency float64
	WaveAmplitude  float64
	WaveFrequency  float64
}

// DefaultParameters returns the standard open-sea coefficients.
func DefaultParameters() Parameters {
	return Parameters{
		SwellAmplitude: 2.5,
		SwellFrequency: 0.05,
		WaveAmplitude:  1.5,
		WaveFrequency:  0.15,
	}
}

// validate rejects negative or non-finite coefficients.
func (p Parameters) validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"swellAmplitude", p.SwellAmplitude},
		{"swellFrequency", p.SwellFrequency},
		{"waveAmplitude", p.WaveAmplitude},
		{"waveFrequency", p.WaveFrequency},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("wave parameter %s is not finite", c.name)
		}
		if c.value < 0 {
			return fmt.Errorf("wave parameter %s must be non-negative, got %f", c.name, c.value)
		}
	}
	return nil
}

// Field is the procedural wave surface. It owns only its running
// simulation time and coefficients; height and normal queries are pure
// functions of (x, z, time).
type Field struct {
	params Parameters
	tier   QualityTier
	time   float64
}

// NewField creates a wave field with the given coefficients and quality
// tier. The tier is fixed for the lifetime of the field.
func NewField(params Parameters, tier QualityTier) (*Field, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &Field{
		params: params,
		tier:   tier,
	}, nil
}

// Advance moves the simulation clock forward. dt must be non-negative;
// the frame driver clamps it before calling.
func (f *Field) Advance(dt float64) {
	f.time += dt * waveSpeed
}

// Time returns the current simulation clock.
func (f *Field) Time() float64 {
	return f.time
}

// Tier returns the quality tier fixed at construction.
func (f *Field) Tier() QualityTier {
	return f.tier
}

// Params returns the wave coefficients fixed at construction.
func (f *Field) Params() Parameters {
	return f.params
}

// HeightAt returns the surface height at horizontal position (x, z).
// It is deterministic for a fixed (x, z, time, tier).
func (f *Field) HeightAt(x, z float64) float64 {
	p := f.params
	t := f.time

	h := p.SwellAmplitude * math.Sin(x*p.SwellFrequency+t)
	h += 0.7 * p.SwellAmplitude * math.Cos(z*p.SwellFrequency+0.7*t)

	if f.tier == TierFull {
		h += p.WaveAmplitude * math.Sin(2*p.WaveFrequency*x+2*t)
		h += 0.5 * p.WaveAmplitude * math.Cos(2*p.WaveFrequency*z+1.5*t)
		h += 0.3 * math.Sin(0.3*x+0.3*z+3*t)
	}

	return h
}

// NormalAt estimates the surface normal at (x, z) by forward finite
// differences. The result is unit length; a flat surface yields (0, 1, 0).
func (f *Field) NormalAt(x, z float64) physics.Vector3 {
	h := f.HeightAt(x, z)
	dx := (f.HeightAt(x+normalEpsilon, z) - h) / normalEpsilon
	dz := (f.HeightAt(x, z+normalEpsilon) - h) / normalEpsilon

	n := physics.Vector3{X: -dx, Y: 1, Z: -dz}.Normalize()
	if n == (physics.Vector3{}) {
		return physics.Vector3{Y: 1}
	}
	return n
}

// GridSample is one vertex of a sampled surface patch.
type GridSample struct {
	Position physics.Vector3
}

// SampleGrid evaluates a (segments+1)² vertex patch of side length 2·extent
// centered on (centerX, centerZ). The renderer deforms its ocean mesh from
// these samples; physics queries use HeightAt directly.
func (f *Field) SampleGrid(centerX, centerZ, extent float64, segments int) []GridSample {
	if segments < 1 {
		segments = 1
	}
	step := 2 * extent / float64(segments)
	samples := make([]GridSample, 0, (segments+1)*(segments+1))

	for i := 0; i <= segments; i++ {
		z := centerZ - extent + float64(i)*step
		for j := 0; j <= segments; j++ {
			x := centerX - extent + float64(j)*step
			samples = append(samples, GridSample{
				Position: physics.Vector3{X: x, Y: f.HeightAt(x, z), Z: z},
			})
		}
	}
	return samples
}
