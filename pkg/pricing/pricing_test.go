package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestBaseRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tier Tier
		want Range
	}{
		{TierA, Range{35, 75}},
		{TierB, Range{18, 40}},
		{TierC, Range{8, 20}},
		{Tier("Z"), Range{8, 20}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BaseRange(tt.tier))
		})
	}
}

func TestComputePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		signals       Signals
		wantRange     Range
		wantModifiers []string
	}{
		{
			name:          "tier A neutral",
			signals:       Signals{Tier: TierA, Uniqueness: Standard, ColorSaturation: Vibrant, SurfaceQuality: Polished},
			wantRange:     Range{Min: 40, Max: 80},
			wantModifiers: []string{},
		},
		{
			name:          "tier B neutral with shipping",
			signals:       Signals{Tier: TierB, ShippingCostUSD: ptr(4.5)},
			wantRange:     Range{Min: 28, Max: 50},
			wantModifiers: []string{},
		},
		{
			name: "tier C all modifiers with shipping",
			signals: Signals{
				Tier:            TierC,
				Uniqueness:      Standout,
				ColorSaturation: Muted,
				SurfaceQuality:  Rough,
				ShippingCostUSD: ptr(10),
			},
			// 8*1.15*0.85*0.85+15 = 21.647, 20*1.2*0.9*0.9+15 = 34.44
			wantRange: Range{Min: 22, Max: 34},
			wantModifiers: []string{
				"uniqueness:Standout:+15-20%",
				"color_saturation:Muted:-10-15%",
				"surface_quality:Rough:-10-15%",
			},
		},
		{
			name:          "standout only",
			signals:       Signals{Tier: TierB, Uniqueness: Standout},
			wantRange:     Range{Min: 26, Max: 53},
			wantModifiers: []string{"uniqueness:Standout:+15-20%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ComputePrice(tt.signals)
			assert.Equal(t, tt.wantRange, got.PriceRange)
			assert.Equal(t, tt.wantModifiers, got.ModifiersApplied)
			assert.True(t, got.ShippingIncluded)
			assert.InDelta(t, SafetyMargin, got.SafetyMargin, 0)
			assert.LessOrEqual(t, got.PriceRange.Min, got.PriceRange.Max)
		})
	}
}

func TestComputePrice_HalfRoundsUp(t *testing.T) {
	t.Parallel()

	// 18 + 0.5 + 5 = 23.5
	got := ComputePrice(Signals{Tier: TierB, ShippingCostUSD: ptr(0.5)})
	assert.InDelta(t, 24.0, got.PriceRange.Min, 0)
}

func TestRecommended(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "60.00", Recommended(Result{PriceRange: Range{40, 80}}))
	assert.Equal(t, "28.00", Recommended(Result{PriceRange: Range{22, 34}}))
	assert.Equal(t, "22.50", Recommended(Result{PriceRange: Range{20, 25}}))
	assert.Empty(t, Recommended(Result{}))
}

func TestNormalizeSignals(t *testing.T) {
	t.Parallel()

	t.Run("nil gives neutral defaults", func(t *testing.T) {
		t.Parallel()
		got := NormalizeSignals(nil)
		assert.Equal(t, Signals{Tier: TierB, Uniqueness: Standard, ColorSaturation: Vibrant, SurfaceQuality: Polished}, got)
	})

	t.Run("unknown values fall back", func(t *testing.T) {
		t.Parallel()
		got := NormalizeSignals(&RawSignals{Tier: "S", Uniqueness: "weird", ColorSaturation: "", SurfaceQuality: "Matte"})
		assert.Equal(t, TierB, got.Tier)
		assert.Equal(t, Standard, got.Uniqueness)
		assert.Equal(t, Vibrant, got.ColorSaturation)
		assert.Equal(t, Polished, got.SurfaceQuality)
		assert.Nil(t, got.ShippingCostUSD)
	})

	t.Run("known values kept", func(t *testing.T) {
		t.Parallel()
		got := NormalizeSignals(&RawSignals{
			Tier: "A", Uniqueness: Standout, ColorSaturation: Muted, SurfaceQuality: Rough,
			ShippingCostUSD: ptr(7.25),
		})
		assert.Equal(t, TierA, got.Tier)
		assert.Equal(t, Standout, got.Uniqueness)
		assert.Equal(t, Muted, got.ColorSaturation)
		assert.Equal(t, Rough, got.SurfaceQuality)
		assert.InDelta(t, 7.25, *got.ShippingCostUSD, 0)
	})

	t.Run("negative shipping dropped", func(t *testing.T) {
		t.Parallel()
		got := NormalizeSignals(&RawSignals{ShippingCostUSD: ptr(-3)})
		assert.Nil(t, got.ShippingCostUSD)
	})
}
