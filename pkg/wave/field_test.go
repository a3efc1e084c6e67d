package wave

import (
	"math"
	"testing"

	"github.com/opd-ai/go-waverider/pkg/physics"
)

const epsilon = 1e-9

func mustField(t *testing.T, params Parameters, tier QualityTier) *Field {
	t.Helper()
	f, err := NewField(params, tier)
	if err != nil {
		t.Fatalf("NewField() unexpected error: %v", err)
	}
	return f
}

func TestNewField_RejectsBadParameters(t *testing.T) {
	tests := []struct {
		name   string
		params Parameters
	}{
		{
			name: "negative swell amplitude",
			params: Parameters{
				SwellAmplitude: -1, SwellFrequency: 0.05,
				WaveAmplitude: 1.5, WaveFrequency: 0.15,
			},
		},
		{
			name: "NaN wave frequency",
			params: Parameters{
				SwellAmplitude: 2.5, SwellFrequency: 0.05,
				WaveAmplitude: 1.5, WaveFrequency: math.NaN(),
			},
		},
		{
			name: "infinite swell frequency",
			params: Parameters{
				SwellAmplitude: 2.5, SwellFrequency: math.Inf(1),
				WaveAmplitude: 1.5, WaveFrequency: 0.15,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewField(tt.params, TierFull); err == nil {
				t.Errorf("NewField() expected error for %+v", tt.params)
			}
		})
	}
}

func TestNewField_AllowsFlatField(t *testing.T) {
	if _, err := NewField(Parameters{}, TierFull); err != nil {
		t.Errorf("NewField() with zero amplitudes should be legal, got %v", err)
	}
}

func TestField_Advance_ScalesByWaveSpeed(t *testing.T) {
	f := mustField(t, DefaultParameters(), TierFull)

	f.Advance(1.0)
	if !floatEqual(f.Time(), 0.5) {
		t.Errorf("Time() after Advance(1.0) = %f, want 0.5", f.Time())
	}

	f.Advance(0.5)
	if !floatEqual(f.Time(), 0.75) {
		t.Errorf("Time() after second Advance = %f, want 0.75", f.Time())
	}
}

func TestField_Advance_TimeNeverDecreases(t *testing.T) {
	f := mustField(t, DefaultParameters(), TierFull)
	prev := f.Time()
	for i := 0; i < 100; i++ {
		f.Advance(0.016)
		if f.Time() < prev {
			t.Fatalf("Time() decreased from %f to %f", prev, f.Time())
		}
		prev = f.Time()
	}
}

func TestField_HeightAt_Deterministic(t *testing.T) {
	f := mustField(t, DefaultParameters(), TierFull)
	f.Advance(3.7)

	first := f.HeightAt(12.5, -8.25)
	for i := 0; i < 10; i++ {
		if got := f.HeightAt(12.5, -8.25); got != first {
			t.Fatalf("HeightAt() not bit-identical: %v != %v", got, first)
		}
	}
}

func TestField_HeightAt_OriginAtTimeZero(t *testing.T) {
	// With default amplitudes the full-tier height at the origin is
	// 0.7*2.5 + 0.5*1.5 = 2.5 (all sine terms vanish at t=0).
	f := mustField(t, DefaultParameters(), TierFull)

	if got := f.HeightAt(0, 0); !floatEqual(got, 2.5) {
		t.Errorf("HeightAt(0,0) at t=0 = %f, want 2.5", got)
	}
}

func TestField_HeightAt_ReducedTierDropsDetailTerms(t *testing.T) {
	params := DefaultParameters()
	full := mustField(t, params, TierFull)
	reduced := mustField(t, params, TierReduced)

	// At the origin, t=0: full = 2.5, reduced keeps only the swell terms.
	wantReduced := 0.7 * params.SwellAmplitude
	if got := reduced.HeightAt(0, 0); !floatEqual(got, wantReduced) {
		t.Errorf("reduced HeightAt(0,0) = %f, want %f", got, wantReduced)
	}
	if full.HeightAt(0, 0) == reduced.HeightAt(0, 0) {
		t.Error("full and reduced tiers should differ at the origin")
	}
}

func TestField_NormalAt_UnitLength(t *testing.T) {
	f := mustField(t, DefaultParameters(), TierFull)
	f.Advance(2.0)

	positions := []struct{ x, z float64 }{
		{0, 0}, {10, 10}, {-37.5, 4.2}, {100, -250},
	}
	for _, pos := range positions {
		n := f.NormalAt(pos.x, pos.z)
		if !floatEqual(n.Length(), 1) {
			t.Errorf("NormalAt(%f, %f) length = %f, want 1", pos.x, pos.z, n.Length())
		}
		if n.Y <= 0 {
			t.Errorf("NormalAt(%f, %f).Y = %f, want positive", pos.x, pos.z, n.Y)
		}
	}
}

func TestField_NormalAt_FlatFieldIsUp(t *testing.T) {
	f := mustField(t, Parameters{}, TierFull)

	n := f.NormalAt(5, -3)
	want := physics.Vector3{Y: 1}
	if n != want {
		t.Errorf("NormalAt() on flat field = %v, want %v", n, want)
	}
}

func TestField_SampleGrid(t *testing.T) {
	f := mustField(t, DefaultParameters(), TierFull)
	f.Advance(1.0)

	segments := 4
	samples := f.SampleGrid(10, -5, 20, segments)

	wantCount := (segments + 1) * (segments + 1)
	if len(samples) != wantCount {
		t.Fatalf("SampleGrid() returned %d samples, want %d", len(samples), wantCount)
	}

	// Every sampled height must agree with a direct HeightAt query.
	for _, s := range samples {
		if got := f.HeightAt(s.Position.X, s.Position.Z); got != s.Position.Y {
			t.Errorf("sample at (%f, %f) height %f, HeightAt returns %f",
				s.Position.X, s.Position.Z, s.Position.Y, got)
		}
	}

	// Corners of the patch.
	first := samples[0].Position
	last := samples[len(samples)-1].Position
	if !floatEqual(first.X, -10) || !floatEqual(first.Z, -25) {
		t.Errorf("first sample at (%f, %f), want (-10, -25)", first.X, first.Z)
	}
	if !floatEqual(last.X, 30) || !floatEqual(last.Z, 15) {
		t.Errorf("last sample at (%f, %f), want (30, 15)", last.X, last.Z)
	}
}

func TestParseQualityTier(t *testing.T) {
	tests := []struct {
		input    string
		expected QualityTier
		wantErr  bool
	}{
		{"full", TierFull, false},
		{"reduced", TierReduced, false},
		{"", TierFull, false},
		{"ultra", TierFull, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseQualityTier(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseQualityTier(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("ParseQualityTier(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}
