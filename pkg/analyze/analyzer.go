// Package analyze turns item photos into a best-effort listing draft using
// a vision-capable language model, abstracted behind an interface for
// testability.
package analyze

import (
	"context"
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/donaldgifford/droplist/pkg/pricing"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

// Draft defaults used when the model leaves a field out.
const (
	DefaultCategoryID  = "8822"
	DefaultTitle       = "Crystal / Mineral Specimen"
	DefaultDescription = "Mineral specimen. See photos for details."
	DefaultPrice       = "9.99"
	DefaultConfidence  = 0.5
)

// Draft is the analyzer's proposal for a listing.
type Draft struct {
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	CategoryID     string              `json:"categoryId"`
	Condition      string              `json:"condition"`
	Price          string              `json:"price"`
	Quantity       int                 `json:"quantity"`
	Specifics      map[string]string   `json:"specifics"`
	Confidence     float64             `json:"confidence"`
	Notes          []string            `json:"notes"`
	ExtractedText  string              `json:"extractedText,omitempty"`
	PricingSignals *pricing.RawSignals `json:"pricingSignals,omitempty"`
}

// Raw returns the JSON form of d stored alongside the draft for audit.
func (d *Draft) Raw() json.RawMessage {
	b, err := json.Marshal(d)
	if err != nil {
		return nil
	}
	return b
}

// Analyzer produces a draft from up to domain.MaxImages data URLs.
type Analyzer interface {
	Analyze(ctx context.Context, images []string) (*Draft, error)
}

// Normalize builds a Draft from loosely-typed model output, filling every
// missing or malformed field with its default.
func Normalize(parsed map[string]any) *Draft {
	d := &Draft{
		Title:       firstString(parsed["title"], DefaultTitle),
		Description: firstString(parsed["description"], DefaultDescription),
		CategoryID:  firstString(parsed["categoryId"], DefaultCategoryID),
		Condition:   domain.DefaultCondition,
		Price:       firstString(parsed["price"], DefaultPrice),
		Quantity:    1,
		Specifics:   map[string]string{},
		Confidence:  DefaultConfidence,
		Notes:       []string{},
	}

	if c := strings.TrimSpace(asString(parsed["condition"])); slices.Contains(domain.Conditions, c) {
		d.Condition = c
	}
	if q, ok := parsed["quantity"].(float64); ok && !math.IsInf(q, 0) && !math.IsNaN(q) {
		d.Quantity = domain.ClampQuantity(int(math.Floor(q)))
	}
	if c, ok := parsed["confidence"].(float64); ok {
		d.Confidence = c
	}
	if specs, ok := parsed["specifics"].(map[string]any); ok {
		for k, v := range specs {
			if s := asString(v); k != "" && s != "" {
				d.Specifics[k] = s
			}
		}
	}
	if notes, ok := parsed["notes"].([]any); ok {
		for _, n := range notes {
			d.Notes = append(d.Notes, asString(n))
		}
	}
	d.ExtractedText = asString(parsed["extractedText"])

	if sig, ok := parsed["pricingSignals"].(map[string]any); ok {
		d.PricingSignals = &pricing.RawSignals{
			Tier:            asString(sig["tier"]),
			Uniqueness:      asString(sig["uniqueness"]),
			ColorSaturation: asString(sig["color_saturation"]),
			SurfaceQuality:  asString(sig["surface_quality"]),
		}
		if v, ok := sig["shipping_cost_usd"].(float64); ok {
			d.PricingSignals.ShippingCostUSD = &v
		}
	}
	return d
}

func firstString(v any, fallback string) string {
	if s := strings.TrimSpace(asString(v)); s != "" {
		return s
	}
	return fallback
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
