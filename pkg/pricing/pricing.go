// Package pricing computes a recommended price range for a specimen from
// coarse quality signals produced by image analysis.
package pricing

import (
	"fmt"
	"math"
)

// Tier is the coarse quality band of a specimen.
type Tier string

// Signal values. Anything outside these sets is treated as the neutral value.
const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"

	Standard = "Standard"
	Standout = "Standout"

	Vibrant = "Vibrant"
	Muted   = "Muted"

	Polished = "Polished"
	Rough    = "Rough"
)

// SafetyMargin is added to both bounds of every range, in USD.
const SafetyMargin = 5.0

// Signals are the pricing inputs extracted from photos.
type Signals struct {
	Tier            Tier     `json:"tier"`
	Uniqueness      string   `json:"uniqueness"`
	ColorSaturation string   `json:"color_saturation"`
	SurfaceQuality  string   `json:"surface_quality"`
	ShippingCostUSD *float64 `json:"shipping_cost_usd"`
}

// Range is an inclusive price range in USD.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Result describes a computed price range and how it was derived.
type Result struct {
	BaseRange        Range    `json:"base_range_usd"`
	ModifiersApplied []string `json:"modifiers_applied"`
	ShippingIncluded bool     `json:"shipping_included"`
	PriceRange       Range    `json:"price_range_usd"`
	SafetyMargin     float64  `json:"safety_margin_usd"`
}

// BaseRange returns the unmodified range for a tier. Unknown tiers price as C.
func BaseRange(t Tier) Range {
	switch t {
	case TierA:
		return Range{Min: 35, Max: 75}
	case TierB:
		return Range{Min: 18, Max: 40}
	default:
		return Range{Min: 8, Max: 20}
	}
}

type modifier struct {
	applies  func(Signals) bool
	minScale float64
	maxScale float64
	label    string
}

var modifiers = []modifier{
	{
		applies:  func(s Signals) bool { return s.Uniqueness == Standout },
		minScale: 1.15,
		maxScale: 1.2,
		label:    "uniqueness:Standout:+15-20%",
	},
	{
		applies:  func(s Signals) bool { return s.ColorSaturation == Muted },
		minScale: 0.85,
		maxScale: 0.9,
		label:    "color_saturation:Muted:-10-15%",
	},
	{
		applies:  func(s Signals) bool { return s.SurfaceQuality == Rough },
		minScale: 0.85,
		maxScale: 0.9,
		label:    "surface_quality:Rough:-10-15%",
	},
}

// ComputePrice derives a price range from the signals. The function is pure.
func ComputePrice(s Signals) Result {
	base := BaseRange(s.Tier)

	factorMin, factorMax := 1.0, 1.0
	applied := []string{}
	for _, m := range modifiers {
		if !m.applies(s) {
			continue
		}
		factorMin *= m.minScale
		factorMax *= m.maxScale
		applied = append(applied, m.label)
	}

	shipping := 0.0
	if s.ShippingCostUSD != nil {
		shipping = *s.ShippingCostUSD
	}

	lo := roundHalfUp(base.Min*factorMin + shipping + SafetyMargin)
	hi := roundHalfUp(base.Max*factorMax + shipping + SafetyMargin)

	return Result{
		BaseRange:        base,
		ModifiersApplied: applied,
		ShippingIncluded: true,
		PriceRange:       Range{Min: lo, Max: math.Max(lo, hi)},
		SafetyMargin:     SafetyMargin,
	}
}

// Recommended returns the midpoint of the computed range formatted with two
// decimals, or "" when the midpoint is not positive.
func Recommended(r Result) string {
	mid := (r.PriceRange.Min + r.PriceRange.Max) / 2
	if mid <= 0 || math.IsNaN(mid) {
		return ""
	}
	return fmt.Sprintf("%.2f", mid)
}

// RawSignals is the loosely-typed form an analyzer returns.
type RawSignals struct {
	Tier            string   `json:"tier"`
	Uniqueness      string   `json:"uniqueness"`
	ColorSaturation string   `json:"color_saturation"`
	SurfaceQuality  string   `json:"surface_quality"`
	ShippingCostUSD *float64 `json:"shipping_cost_usd"`
}

// NormalizeSignals maps missing or unknown values onto the neutral defaults:
// tier B, Standard, Vibrant, Polished and no shipping.
func NormalizeSignals(raw *RawSignals) Signals {
	s := Signals{
		Tier:            TierB,
		Uniqueness:      Standard,
		ColorSaturation: Vibrant,
		SurfaceQuality:  Polished,
	}
	if raw == nil {
		return s
	}

	switch Tier(raw.Tier) {
	case TierA, TierB, TierC:
		s.Tier = Tier(raw.Tier)
	}
	if raw.Uniqueness == Standout {
		s.Uniqueness = Standout
	}
	if raw.ColorSaturation == Muted {
		s.ColorSaturation = Muted
	}
	if raw.SurfaceQuality == Rough {
		s.SurfaceQuality = Rough
	}
	if raw.ShippingCostUSD != nil && *raw.ShippingCostUSD >= 0 && !math.IsInf(*raw.ShippingCostUSD, 0) {
		v := *raw.ShippingCostUSD
		s.ShippingCostUSD = &v
	}
	return s
}

// roundHalfUp rounds to the nearest integer with halves going up.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
